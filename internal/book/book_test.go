package book

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/chess"
	"github.com/hailam/chesshash/internal/zobrist"
)

func TestKeyMatchesPolyglot(t *testing.T) {
	if got := Key(board.NewPosition()); got != 0x463b96181691fc9c {
		t.Errorf("Key(start) = %s, want 463b96181691fc9c", got)
	}
}

// entry encodes a single raw Polyglot book entry.
func entry(key zobrist.Hash64, move, weight uint16) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint64(key))
	binary.Write(&buf, binary.BigEndian, move)
	binary.Write(&buf, binary.BigEndian, weight)
	binary.Write(&buf, binary.BigEndian, uint32(0)) // learn
	return buf.Bytes()
}

func TestBookLoadAndProbe(t *testing.T) {
	pos := board.NewPosition()

	// move = to_file | (to_rank << 3) | (from_file << 6) | (from_rank << 9)
	e2e4 := uint16(4 | (3 << 3) | (4 << 6) | (1 << 9))

	book, err := LoadPolyglotReader(bytes.NewReader(entry(Key(pos), e2e4, 100)))
	if err != nil {
		t.Fatalf("Failed to load book: %v", err)
	}
	if book.Size() != 1 {
		t.Errorf("Expected book size 1, got %d", book.Size())
	}

	move, found := book.Probe(pos)
	if !found {
		t.Fatal("Expected to find move in book")
	}
	if move.From() != chess.E2 || move.To() != chess.E4 {
		t.Errorf("Expected e2e4, got %s", move)
	}

	// Probing through a hashed position uses its cached fingerprint.
	h := zobrist.Wrap[zobrist.Hash64, board.Move](pos)
	if got := book.ProbeKey(h.Position(), h.Fingerprint()); len(got) != 1 {
		t.Errorf("ProbeKey returned %d entries, want 1", len(got))
	}
}

func TestBookProbeMiss(t *testing.T) {
	book := New()
	if _, found := book.Probe(board.NewPosition()); found {
		t.Error("Empty book returned a move")
	}

	var nilBook *Book
	if got := nilBook.ProbeAll(board.NewPosition()); got != nil {
		t.Errorf("nil book returned %v", got)
	}
}

func TestBookSkipsIllegalMoves(t *testing.T) {
	pos := board.NewPosition()
	book := New()
	book.Add(Key(pos), board.NewMove(chess.E2, chess.E5), 10)
	book.Add(Key(pos), board.NewMove(chess.G1, chess.F3), 5)
	book.Add(Key(pos), board.NewMove(chess.D2, chess.D4), 20)

	got := book.ProbeAll(pos)
	if len(got) != 2 {
		t.Fatalf("ProbeAll returned %d entries, want 2", len(got))
	}
	if got[0].Move.String() != "d2d4" || got[1].Move.String() != "g1f3" {
		t.Errorf("ProbeAll = %v, want d2d4 then g1f3", got)
	}
}

func TestDecodePolyglotMove(t *testing.T) {
	sq := func(s string) uint16 {
		v, err := chess.ParseSquare(s)
		if err != nil {
			t.Fatal(err)
		}
		return uint16(v)
	}

	tests := []struct {
		name string
		data uint16
		want string
	}{
		{"quiet", sq("e4") | sq("e2")<<6, "e2e4"},
		{"white short castle", sq("h1") | sq("e1")<<6, "e1g1"},
		{"white long castle", sq("a1") | sq("e1")<<6, "e1c1"},
		{"black short castle", sq("h8") | sq("e8")<<6, "e8g8"},
		{"knight promotion", sq("b1") | sq("b2")<<6 | 1<<12, "b2b1n"},
		{"queen promotion", sq("a8") | sq("a7")<<6 | 4<<12, "a7a8q"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodePolyglotMove(tc.data).String(); got != tc.want {
				t.Errorf("decodePolyglotMove(%#x) = %s, want %s", tc.data, got, tc.want)
			}
		})
	}
}

func TestCastlingConversion(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	book := New()
	book.Add(Key(pos), decodePolyglotMove(uint16(chess.H1)|uint16(chess.E1)<<6), 1)

	got := book.ProbeAll(pos)
	if len(got) != 1 {
		t.Fatalf("ProbeAll returned %d entries, want 1", len(got))
	}
	if !got[0].Move.IsCastling() || got[0].Move.String() != "e1g1" {
		t.Errorf("book move = %s, want castling e1g1", got[0].Move)
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	pos := board.NewPosition()
	after, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	book := New()
	book.Add(Key(pos), board.NewMove(chess.E2, chess.E4), 30)
	book.Add(Key(pos), board.NewMove(chess.D2, chess.D4), 20)
	book.Add(Key(after), board.NewCastling(chess.E1, chess.C1), 7)

	var buf bytes.Buffer
	n, err := book.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 48 || buf.Len() != 48 {
		t.Fatalf("wrote %d bytes (buffer %d), want 48", n, buf.Len())
	}
	if first := binary.BigEndian.Uint64(buf.Bytes()[:8]); first > binary.BigEndian.Uint64(buf.Bytes()[32:40]) {
		t.Error("entries are not sorted by key")
	}

	path := filepath.Join(t.TempDir(), "book.bin")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadPolyglot(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Size() != 2 {
		t.Errorf("loaded %d positions, want 2", loaded.Size())
	}
	if got := loaded.ProbeAll(after); len(got) != 1 || got[0].Move.String() != "e1c1" || got[0].Weight != 7 {
		t.Errorf("ProbeAll(after) = %v", got)
	}
	if got := loaded.ProbeAll(pos); len(got) != 2 || got[0].Weight != 30 {
		t.Errorf("ProbeAll(start) = %v", got)
	}
}

func TestLoadPolyglotTruncated(t *testing.T) {
	data := entry(0x463b96181691fc9c, 0, 1)
	if _, err := LoadPolyglotReader(bytes.NewReader(data[:10])); err == nil {
		t.Error("truncated book loaded without error")
	}
}
