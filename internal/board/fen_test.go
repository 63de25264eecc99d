package board

import (
	"errors"
	"testing"

	. "github.com/hailam/chesshash/internal/chess"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []struct {
		variant Variant
		fen     string
	}{
		{Standard, StartFEN},
		{Standard, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{Standard, "8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1"},
		{ThreeCheck, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3+3 0 1"},
		{ThreeCheck, "rnbqkbnr/ppp1pppp/8/1B1p4/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 2+3 1 2"},
		{Crazyhouse, "r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R[] w KQkq - 4 4"},
		{Crazyhouse, "2kr3r/pppq1ppp/2n5/3Q~4/8/8/PPP2PPP/R3K2R[BNPPbn] b KQ - 0 15"},
	}

	for _, tc := range tests {
		t.Run(tc.fen, func(t *testing.T) {
			pos, err := ParseVariantFEN(tc.variant, tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			if got := pos.FEN(); got != tc.fen {
				t.Errorf("FEN() = %s, want %s", got, tc.fen)
			}
		})
	}
}

func TestParseVariantFENForms(t *testing.T) {
	t.Run("checks given suffix", func(t *testing.T) {
		pos, err := ParseVariantFEN(ThreeCheck, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 +2+0")
		if err != nil {
			t.Fatal(err)
		}
		if w, _ := pos.RemainingChecks(White); w != 1 {
			t.Errorf("white has %d remaining checks, want 1", w)
		}
		if b, _ := pos.RemainingChecks(Black); b != 3 {
			t.Errorf("black has %d remaining checks, want 3", b)
		}
	})

	t.Run("pocket as ninth row", func(t *testing.T) {
		pos, err := ParseVariantFEN(Crazyhouse, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR/Qpp w KQkq - 0 1")
		if err != nil {
			t.Fatal(err)
		}
		if pos.Pocket(White, Queen) != 1 || pos.Pocket(Black, Pawn) != 2 {
			t.Errorf("pockets = %v", pos.pockets)
		}
	})

	t.Run("standard has no counters", func(t *testing.T) {
		pos := NewPosition()
		if _, ok := pos.RemainingChecks(White); ok {
			t.Error("standard position reports check counters")
		}
	})
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		fen     string
	}{
		{"too few fields", Standard, "8/8/8/8/8/8/8/8 w"},
		{"short rank", Standard, "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece", Standard, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad turn", Standard, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", Standard, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1"},
		{"bad ep", Standard, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"pocket in standard", Standard, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[Q] w KQkq - 0 1"},
		{"counters in standard", Standard, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3+3 0 1"},
		{"king in hand", Crazyhouse, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[K] w KQkq - 0 1"},
		{"remaining above three", ThreeCheck, "7k/8/8/8/8/8/8/KQ6 b - - 4+3 0 1"},
		{"both remaining above three", ThreeCheck, "7k/8/8/8/8/8/8/KQ6 b - - 5+5 0 1"},
		{"too many in hand", Crazyhouse, "4k3/8/8/8/8/8/8/4K3[PPPPPPPPPPPPPPPP] w - - 0 1"},
		{"bad counters", ThreeCheck, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x+3 0 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseVariantFEN(tc.variant, tc.fen); err == nil {
				t.Errorf("ParseVariantFEN(%q) succeeded", tc.fen)
			}
		})
	}
}

func TestEPD(t *testing.T) {
	pos, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if got, want := pos.EPD(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -"; got != want {
		t.Errorf("EPD() = %s, want %s", got, want)
	}
}

func TestParseUCI(t *testing.T) {
	pos := NewPosition()
	m, err := ParseUCI(pos, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if m.From() != E2 || m.To() != E4 || m.String() != "e2e4" {
		t.Errorf("ParseUCI(e2e4) = %v", m)
	}
	for _, s := range []string{"e2e5", "e7e5", "zz", "e1g1"} {
		if _, err := ParseUCI(pos, s); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("ParseUCI(%s) error = %v, want ErrIllegalMove", s, err)
		}
	}

	pos, _ = ParseFEN("r3k2r/8/8/8/8/8/1p6/R3K2R b KQkq - 0 1")
	for _, s := range []string{"e8c8", "e8g8", "b2a1q", "b2b1n"} {
		m, err := ParseUCI(pos, s)
		if err != nil {
			t.Errorf("ParseUCI(%s): %v", s, err)
			continue
		}
		if m.String() != s {
			t.Errorf("ParseUCI(%s).String() = %s", s, m)
		}
	}
}
