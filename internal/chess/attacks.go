package chess

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		f, r := int(sq.File()), int(sq.Rank())
		for _, d := range [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}} {
			knightAttacks[sq] |= bbAt(f+d[0], r+d[1])
		}
		for _, d := range [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}} {
			kingAttacks[sq] |= bbAt(f+d[0], r+d[1])
		}
		bb := SquareBB(sq)
		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

func bbAt(file, rank int) Bitboard {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Empty
	}
	return SquareBB(NewSquare(File(file), Rank(rank)))
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// slide walks each ray from sq until it leaves the board or hits a blocker,
// which is included in the result.
func slide(sq Square, occupied Bitboard, dirs *[4][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		f, r := int(sq.File())+d[0], int(sq.Rank())+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			s := NewSquare(File(f), Rank(r))
			attacks |= SquareBB(s)
			if occupied.Has(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// RookAttacks returns rook attacks from sq given the occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slide(sq, occupied, &rookDirs)
}

// BishopAttacks returns bishop attacks from sq given the occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slide(sq, occupied, &bishopDirs)
}

// QueenAttacks returns queen attacks from sq given the occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}
