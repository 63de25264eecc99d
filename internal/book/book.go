// Package book reads and writes Polyglot opening books. Entries are keyed
// by the 64-bit position fingerprint, which is the Polyglot key.
package book

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"sort"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/chess"
	"github.com/hailam/chesshash/internal/zobrist"
)

// BookEntry represents a single book entry.
type BookEntry struct {
	Move   board.Move
	Weight uint16
}

// Book represents an opening book.
type Book struct {
	entries map[zobrist.Hash64][]BookEntry
}

// New creates an empty book.
func New() *Book {
	return &Book{
		entries: make(map[zobrist.Hash64][]BookEntry),
	}
}

// Key returns the book key of a position.
func Key(pos zobrist.Setup) zobrist.Hash64 {
	return zobrist.Compute[zobrist.Hash64](pos)
}

// LoadPolyglot loads a Polyglot format opening book from a file.
func LoadPolyglot(filename string) (*Book, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	b, err := LoadPolyglotReader(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return b, nil
}

// LoadPolyglotReader loads a Polyglot format book from a reader.
func LoadPolyglotReader(r io.Reader) (*Book, error) {
	book := New()

	// Polyglot entry format:
	// 8 bytes: position key (big-endian)
	// 2 bytes: move (big-endian)
	// 2 bytes: weight (big-endian)
	// 4 bytes: learn data (ignored)
	var entry [16]byte

	for n := 0; ; n++ {
		_, err := io.ReadFull(r, entry[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", n, err)
		}

		key := zobrist.Hash64(binary.BigEndian.Uint64(entry[0:8]))
		moveData := binary.BigEndian.Uint16(entry[8:10])
		weight := binary.BigEndian.Uint16(entry[10:12])

		move := decodePolyglotMove(moveData)
		if move != board.NoMove {
			book.Add(key, move, weight)
		}
	}

	return book, nil
}

// Add appends an entry for key.
func (b *Book) Add(key zobrist.Hash64, move board.Move, weight uint16) {
	b.entries[key] = append(b.entries[key], BookEntry{Move: move, Weight: weight})
}

// WriteTo writes the book in Polyglot format, sorted by key as Polyglot
// readers expect.
func (b *Book) WriteTo(w io.Writer) (int64, error) {
	keys := make([]zobrist.Hash64, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	bw := bufio.NewWriter(w)
	var written int64
	var entry [16]byte
	for _, k := range keys {
		for _, e := range b.entries[k] {
			binary.BigEndian.PutUint64(entry[0:8], k.Uint64())
			binary.BigEndian.PutUint16(entry[8:10], encodePolyglotMove(e.Move))
			binary.BigEndian.PutUint16(entry[10:12], e.Weight)
			n, err := bw.Write(entry[:])
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, bw.Flush()
}

// decodePolyglotMove converts a Polyglot move encoding to our Move type.
// Polyglot move format (bits):
// 0-5: to square
// 6-11: from square
// 12-14: promotion piece (0=none, 1=knight, 2=bishop, 3=rook, 4=queen)
func decodePolyglotMove(data uint16) board.Move {
	to := chess.Square(data & 0x3F)
	from := chess.Square((data >> 6) & 0x3F)
	promo := (data >> 12) & 7

	// Polyglot uses king-captures-rook encoding for castling
	switch {
	case from == chess.E1 && to == chess.H1:
		to = chess.G1
	case from == chess.E1 && to == chess.A1:
		to = chess.C1
	case from == chess.E8 && to == chess.H8:
		to = chess.G8
	case from == chess.E8 && to == chess.A8:
		to = chess.C8
	}

	if promo > 0 && promo <= 4 {
		return board.NewPromotion(from, to, chess.Knight+chess.Role(promo-1))
	}
	return board.NewMove(from, to)
}

// encodePolyglotMove is the inverse of decodePolyglotMove.
func encodePolyglotMove(m board.Move) uint16 {
	from, to := m.From(), m.To()
	if m.IsCastling() {
		rookFile := chess.File(7)
		if to.File() < from.File() {
			rookFile = 0
		}
		to = chess.NewSquare(rookFile, to.Rank())
	}
	data := uint16(to) | uint16(from)<<6
	if m.IsPromotion() {
		data |= uint16(m.Promotion()-chess.Knight+1) << 12
	}
	return data
}

// Probe looks up a position in the book and returns a move using weighted random selection.
func (b *Book) Probe(pos *board.Position) (board.Move, bool) {
	entries := b.ProbeAll(pos)
	if len(entries) == 0 {
		return board.NoMove, false
	}

	totalWeight := uint32(0)
	for _, e := range entries {
		totalWeight += uint32(e.Weight)
	}
	if totalWeight == 0 {
		return entries[0].Move, true
	}

	r := rand.Uint32() % totalWeight
	cumulative := uint32(0)
	for _, e := range entries {
		cumulative += uint32(e.Weight)
		if r < cumulative {
			return e.Move, true
		}
	}
	return entries[0].Move, true
}

// ProbeAll returns all legal book moves for the position, sorted by weight.
func (b *Book) ProbeAll(pos *board.Position) []BookEntry {
	return b.ProbeKey(pos, Key(pos))
}

// ProbeKey is ProbeAll with a precomputed key, e.g. the cached fingerprint
// of a hashed position.
func (b *Book) ProbeKey(pos *board.Position, key zobrist.Hash64) []BookEntry {
	if b == nil {
		return nil
	}
	entries, ok := b.entries[key]
	if !ok {
		return nil
	}

	legal := pos.LegalMoves()
	result := make([]BookEntry, 0, len(entries))
	for _, e := range entries {
		if m := verifyAndConvert(legal, e.Move); m != board.NoMove {
			result = append(result, BookEntry{Move: m, Weight: e.Weight})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Weight > result[j].Weight
	})
	return result
}

// verifyAndConvert finds the legal move matching a decoded book move, which
// carries no castling or en passant flags.
func verifyAndConvert(legal []board.Move, move board.Move) board.Move {
	for _, lm := range legal {
		if lm.From() == move.From() && lm.To() == move.To() && lm.Promotion() == move.Promotion() {
			return lm
		}
	}
	return board.NoMove
}

// Size returns the number of unique positions in the book.
func (b *Book) Size() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}
