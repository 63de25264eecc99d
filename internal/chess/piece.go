package chess

// Color is the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Colors lists both colors, white first.
var Colors = [2]Color{White, Black}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Role is the kind of a piece. Roles start at 1 so that the zero value
// means "no role".
type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Char returns the lowercase FEN letter for the role.
func (r Role) Char() byte {
	return " pnbrqk"[r%7]
}

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// RoleFromChar converts a FEN letter of either case to a Role.
func RoleFromChar(c byte) Role {
	switch c | 0x20 {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoRole
	}
}

// Piece combines a Role and a Color, encoded as color<<3 | role.
type Piece uint8

// NoPiece is the empty square marker.
const NoPiece Piece = 0

// NewPiece creates a piece.
func NewPiece(r Role, c Color) Piece {
	if r == NoRole || r > King || c >= NoColor {
		return NoPiece
	}
	return Piece(c)<<3 | Piece(r)
}

// Role returns the role of the piece.
func (p Piece) Role() Role {
	return Role(p & 7)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p >> 3)
}

// String returns the FEN letter, uppercase for white.
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	c := p.Role().Char()
	if p.Color() == White {
		c -= 0x20
	}
	return string(c)
}

// PieceFromChar converts a FEN letter to a Piece.
func PieceFromChar(c byte) Piece {
	r := RoleFromChar(c)
	if r == NoRole {
		return NoPiece
	}
	if c >= 'a' {
		return NewPiece(r, Black)
	}
	return NewPiece(r, White)
}
