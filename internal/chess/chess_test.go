package chess

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
		ok   bool
	}{
		{"a1", A1, true},
		{"h1", H1, true},
		{"e4", E4, true},
		{"h8", H8, true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"e", NoSquare, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSquare(tc.in)
			if (err == nil) != tc.ok || got != tc.want {
				t.Errorf("ParseSquare(%q) = %v, %v", tc.in, got, err)
			}
			if tc.ok && got.String() != tc.in {
				t.Errorf("String() = %s, want %s", got, tc.in)
			}
		})
	}
}

func TestPieceChars(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p := PieceFromChar(c)
		if p == NoPiece || p.String() != string(c) {
			t.Errorf("PieceFromChar(%c) = %v", c, p)
		}
	}
	if PieceFromChar('x') != NoPiece {
		t.Error("PieceFromChar(x) is a piece")
	}
	if p := NewPiece(Queen, Black); p.Role() != Queen || p.Color() != Black {
		t.Errorf("NewPiece(Queen, Black) = %v %v", p.Role(), p.Color())
	}
}

func TestAttacks(t *testing.T) {
	tests := []struct {
		name string
		bb   Bitboard
		want int
	}{
		{"knight a1", KnightAttacks(A1), 2},
		{"knight d4", KnightAttacks(D4), 8},
		{"king h8", KingAttacks(H8), 3},
		{"king e4", KingAttacks(E4), 8},
		{"white pawn a2", PawnAttacks(White, A2), 1},
		{"black pawn e7", PawnAttacks(Black, E7), 2},
		{"rook a1 empty", RookAttacks(A1, 0), 14},
		{"bishop d4 empty", BishopAttacks(D4, 0), 13},
		{"queen d4 empty", QueenAttacks(D4, 0), 27},
		{"rook a1 blocked", RookAttacks(A1, SquareBB(A3)|SquareBB(C1)), 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bb.PopCount(); got != tc.want {
				t.Errorf("got %d squares, want %d\n%s", got, tc.want, tc.bb)
			}
		})
	}
}

func TestPopLSB(t *testing.T) {
	bb := SquareBB(C3) | SquareBB(A1) | SquareBB(H8)
	var got []Square
	for bb != 0 {
		got = append(got, bb.PopLSB())
	}
	if len(got) != 3 || got[0] != A1 || got[1] != C3 || got[2] != H8 {
		t.Errorf("PopLSB order = %v", got)
	}
	if Empty.LSB() != NoSquare {
		t.Error("LSB of empty set is a square")
	}
}

func TestRookSquare(t *testing.T) {
	if KingSide.RookSquare(White) != H1 || QueenSide.RookSquare(Black) != A8 {
		t.Error("wrong rook squares")
	}
}
