// Package chess defines the value types shared by the board, the fingerprint
// tables and their consumers: squares, colors, roles, pieces and bitboards.
package chess

import "fmt"

// Square is a board square (0-63) in little-endian rank-file order:
// A1=0, H1=7, A8=56, H8=63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File is a board file, 0 for the a-file through 7 for the h-file.
type File uint8

// Rank is a board rank, 0 for the first rank through 7 for the eighth.
type Rank uint8

// NewSquare creates a square from a file and a rank.
func NewSquare(file File, rank Rank) Square {
	return Square(rank)*8 + Square(file)
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// IsValid returns true for the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the rank as seen from the given side.
func (sq Square) RelativeRank(c Color) Rank {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// ParseSquare parses an algebraic square name.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}

// String returns the file letter.
func (f File) String() string {
	return string(rune('a' + f))
}

// CastlingSide selects the king side or queen side castling right.
type CastlingSide uint8

const (
	KingSide CastlingSide = iota
	QueenSide
)

// String returns "O-O" or "O-O-O".
func (cs CastlingSide) String() string {
	if cs == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// RookSquare returns the initial rook square for a standard castling right.
func (cs CastlingSide) RookSquare(c Color) Square {
	sq := H1
	if cs == QueenSide {
		sq = A1
	}
	if c == Black {
		sq += 56
	}
	return sq
}
