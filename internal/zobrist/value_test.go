package zobrist

import (
	"testing"

	"github.com/hailam/chesshash/internal/chess"
)

func allMasks() []Mask {
	masks := append([]Mask{}, pieceMasks[:]...)
	masks = append(masks, whiteTurnMask)
	masks = append(masks, castlingMasks[:]...)
	masks = append(masks, enPassantMasks[:]...)
	masks = append(masks, remainingChecksMasks[:]...)
	masks = append(masks, promotedMasks[:]...)
	return append(masks, pocketMasks[:]...)
}

func TestMaskTableHasNoAliases(t *testing.T) {
	seen := make(map[Mask]int)
	for i, m := range allMasks() {
		if j, ok := seen[m]; ok {
			t.Fatalf("mask %d duplicates mask %d: %016x%016x", i, j, m.Hi, m.Lo)
		}
		seen[m] = i
	}
	if len(seen) != 768+1+4+8+6+64+150 {
		t.Errorf("table has %d masks", len(seen))
	}
}

func TestPolyglotKeys(t *testing.T) {
	tests := []struct {
		name string
		got  Hash64
		want Hash64
	}{
		{"black pawn a1", ForPiece[Hash64](chess.A1, chess.NewPiece(chess.Pawn, chess.Black)), 0x9d39247e33776d41},
		{"white pawn a1", ForPiece[Hash64](chess.A1, chess.NewPiece(chess.Pawn, chess.White)), Hash64(pieceMasks[64].Hi)},
		{"white king h8", ForPiece[Hash64](chess.H8, chess.NewPiece(chess.King, chess.White)), Hash64(pieceMasks[767].Hi)},
		{"white turn", ForWhiteTurn[Hash64](), 0xf8d626aaaf278509},
		{"white O-O", ForCastlingRight[Hash64](chess.White, chess.KingSide), 0x31d71dce64b2c310},
		{"black O-O-O", ForCastlingRight[Hash64](chess.Black, chess.QueenSide), 0x1ef6e6dbb1961ec9},
		{"ep a-file", ForEnPassantFile[Hash64](0), 0x70cc73d90bc26e24},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %s, want %s", tc.got, tc.want)
			}
		})
	}
}

func TestNarrowKeepsHighBits(t *testing.T) {
	full := Hash128{Hi: 0x463b96181691fc9c, Lo: 0x3d71fe83987aab73}
	if got := Narrow[Hash64](full); got != 0x463b96181691fc9c {
		t.Errorf("Hash64 = %s", got)
	}
	if got := Narrow[Hash32](full); got != 0x463b9618 {
		t.Errorf("Hash32 = %s", got)
	}
	if got := Narrow[Hash16](full); got != 0x463b {
		t.Errorf("Hash16 = %s", got)
	}
	if got := Narrow[Hash8](full); got != 0x46 {
		t.Errorf("Hash8 = %s", got)
	}
	if got := Narrow[Hash128](full); got != full {
		t.Errorf("Hash128 = %s", got)
	}
}

func TestLookupsNarrowConsistently(t *testing.T) {
	check := func(t *testing.T, full Hash128, w8 Hash8, w16 Hash16, w32 Hash32, w64 Hash64) {
		t.Helper()
		if Narrow[Hash8](full) != w8 || Narrow[Hash16](full) != w16 ||
			Narrow[Hash32](full) != w32 || Narrow[Hash64](full) != w64 {
			t.Errorf("narrowing mismatch for %s: %s %s %s %s", full, w8, w16, w32, w64)
		}
	}
	for sq := chess.A1; sq <= chess.H8; sq++ {
		for _, c := range chess.Colors {
			for role := chess.Pawn; role <= chess.King; role++ {
				p := chess.NewPiece(role, c)
				check(t, ForPiece[Hash128](sq, p), ForPiece[Hash8](sq, p), ForPiece[Hash16](sq, p),
					ForPiece[Hash32](sq, p), ForPiece[Hash64](sq, p))
			}
		}
		check(t, ForPromoted[Hash128](sq), ForPromoted[Hash8](sq), ForPromoted[Hash16](sq),
			ForPromoted[Hash32](sq), ForPromoted[Hash64](sq))
	}
	for n := uint8(0); n < 3; n++ {
		check(t, ForRemainingChecks[Hash128](chess.Black, n), ForRemainingChecks[Hash8](chess.Black, n),
			ForRemainingChecks[Hash16](chess.Black, n), ForRemainingChecks[Hash32](chess.Black, n),
			ForRemainingChecks[Hash64](chess.Black, n))
	}
}

func TestRemainingChecksSaturate(t *testing.T) {
	for _, c := range chess.Colors {
		for _, n := range []uint8{3, 4, 200, 255} {
			if ForRemainingChecks[Hash128](c, n) != (Hash128{}) || ForRemainingChecks[Hash64](c, n) != 0 ||
				ForRemainingChecks[Hash8](c, n) != 0 {
				t.Errorf("%s with %d remaining checks contributes a mask", c, n)
			}
		}
		for n := uint8(0); n < 3; n++ {
			if ForRemainingChecks[Hash128](c, n) == (Hash128{}) {
				t.Errorf("%s with %d remaining checks contributes nothing", c, n)
			}
		}
	}
	if ForRemainingChecks[Hash64](chess.White, 0) == ForRemainingChecks[Hash64](chess.Black, 0) {
		t.Error("white and black counters share a mask")
	}
}

func TestPocketMasks(t *testing.T) {
	seen := make(map[Hash128]bool)
	for _, c := range chess.Colors {
		for role := chess.Pawn; role <= chess.Queen; role++ {
			if ForPocket[Hash128](c, role, 0) != (Hash128{}) {
				t.Errorf("empty %s %s pocket contributes a mask", c, role)
			}
			if ForPocket[Hash128](c, role, MaxPocketCount+1) != (Hash128{}) {
				t.Errorf("oversized %s %s pocket contributes a mask", c, role)
			}
			for n := uint8(1); n <= MaxPocketCount; n++ {
				h := ForPocket[Hash128](c, role, n)
				if seen[h] {
					t.Fatalf("pocket %s %s %d reuses a mask", c, role, n)
				}
				seen[h] = true
			}
		}
		if ForPocket[Hash64](c, chess.King, 1) != 0 {
			t.Errorf("%s king pocket contributes a mask", c)
		}
	}
	if len(seen) != len(pocketMasks) {
		t.Errorf("pockets use %d of %d masks", len(seen), len(pocketMasks))
	}
}

func TestXorIsSelfInverse(t *testing.T) {
	var acc accumulator[Hash128]
	acc.TogglePiece(chess.E4, chess.NewPiece(chess.Knight, chess.White))
	acc.ToggleCastlingRight(chess.Black, chess.KingSide)
	acc.TogglePocket(chess.White, chess.Queen, 2)
	before := acc.h

	acc.TogglePromoted(chess.C3)
	acc.ToggleEnPassantFile(5)
	acc.TogglePromoted(chess.C3)
	acc.ToggleEnPassantFile(5)

	if acc.h != before {
		t.Errorf("toggling twice changed the fingerprint: %s != %s", acc.h, before)
	}
}

func TestBytes(t *testing.T) {
	h := Hash128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}
	b := h.Bytes()
	if len(b) != 16 || b[0] != 1 || b[15] != 0x10 {
		t.Errorf("Hash128.Bytes() = %x", b)
	}
	if b := Hash64(0x0102030405060708).Bytes(); len(b) != 8 || b[7] != 8 {
		t.Errorf("Hash64.Bytes() = %x", b)
	}
	if s := Hash16(0xab).String(); s != "00ab" {
		t.Errorf("Hash16.String() = %q", s)
	}
}
