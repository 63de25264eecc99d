package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit 0 = A1 through bit 63 = H8.
type Bitboard uint64

const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = 0x8080808080808080

	Rank1 Bitboard = 0x00000000000000FF
	Rank3 Bitboard = 0x0000000000FF0000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank8 Bitboard = 0xFF00000000000000

	Empty    Bitboard = 0
	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH
)

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of squares in the set.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest square in the set, or NoSquare.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// North shifts one rank up.
func (b Bitboard) North() Bitboard { return b << 8 }

// South shifts one rank down.
func (b Bitboard) South() Bitboard { return b >> 8 }

// NorthEast shifts one square toward h8.
func (b Bitboard) NorthEast() Bitboard { return (b << 9) & NotFileA }

// NorthWest shifts one square toward a8.
func (b Bitboard) NorthWest() Bitboard { return (b << 7) & NotFileH }

// SouthEast shifts one square toward h1.
func (b Bitboard) SouthEast() Bitboard { return (b >> 7) & NotFileA }

// SouthWest shifts one square toward a1.
func (b Bitboard) SouthWest() Bitboard { return (b >> 9) & NotFileH }

// String draws the set as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(File(file), Rank(rank))) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
