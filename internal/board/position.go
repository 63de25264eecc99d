// Package board is a bitboard chess position with legal move generation,
// in-place move application and the variant state (three-check counters,
// crazyhouse pockets and promoted markers) that the fingerprint covers.
package board

import (
	"fmt"
	"iter"
	"strings"

	. "github.com/hailam/chesshash/internal/chess"
)

// Variant selects the rule set a position follows.
type Variant uint8

const (
	Standard Variant = iota
	ThreeCheck
	Crazyhouse
)

// String returns the variant name as used on the command line.
func (v Variant) String() string {
	switch v {
	case ThreeCheck:
		return "threecheck"
	case Crazyhouse:
		return "crazyhouse"
	default:
		return "standard"
	}
}

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "", "standard", "chess":
		return Standard, nil
	case "threecheck", "3check", "three-check":
		return ThreeCheck, nil
	case "crazyhouse", "zh":
		return Crazyhouse, nil
	}
	return Standard, fmt.Errorf("unknown variant: %s", s)
}

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// castlingRight returns the single right for a color and side.
func castlingRight(c Color, side CastlingSide) CastlingRights {
	return 1 << (uint(c)*2 + uint(side))
}

// Has returns true if the right for c and side is held.
func (cr CastlingRights) Has(c Color, side CastlingSide) bool {
	return cr&castlingRight(c, side) != 0
}

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	for i, ch := range "KQkq" {
		if cr&(1<<i) != 0 {
			s += string(ch)
		}
	}
	return s
}

// castleMask[sq] holds the rights kept when a piece moves from or to sq.
var castleMask [64]CastlingRights

func init() {
	for sq := range castleMask {
		castleMask[sq] = AllCastling
	}
	castleMask[E1] &^= WhiteKingSideCastle | WhiteQueenSideCastle
	castleMask[E8] &^= BlackKingSideCastle | BlackQueenSideCastle
	castleMask[H1] &^= WhiteKingSideCastle
	castleMask[A1] &^= WhiteQueenSideCastle
	castleMask[H8] &^= BlackKingSideCastle
	castleMask[A8] &^= BlackQueenSideCastle
}

// Position represents a complete chess position.
type Position struct {
	// Piece bitboards: [Color][Role], index 0 unused
	pieces   [2][7]Bitboard
	occupied [2]Bitboard

	turn      Color
	castling  CastlingRights
	epSquare  Square // target square after a double push, NoSquare if none
	halfmoves int
	fullmoves int

	variant Variant
	// Three-check: checks each side still has to give.
	remaining [2]uint8
	// Crazyhouse: pieces that were pawns, and pieces in hand.
	promoted Bitboard
	pockets  [2][7]uint8
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// NewVariantPosition creates the starting position of a variant.
func NewVariantPosition(v Variant) *Position {
	pos := NewPosition()
	pos.variant = v
	if v == ThreeCheck {
		pos.remaining = [2]uint8{3, 3}
	}
	return pos
}

// Clone creates a deep copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Variant returns the rule set of the position.
func (p *Position) Variant() Variant { return p.variant }

// Pieces yields every occupied square with its piece, a1 first.
func (p *Position) Pieces() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for bb := p.Occupied(); bb != 0; {
			sq := bb.PopLSB()
			if !yield(sq, p.PieceAt(sq)) {
				return
			}
		}
	}
}

// Turn returns the side to move.
func (p *Position) Turn() Color { return p.turn }

// CastlingRights returns the castling rights still held.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// Castles reports whether c may still castle to side.
func (p *Position) Castles(c Color, side CastlingSide) bool {
	return p.castling.Has(c, side)
}

// EpSquare returns the en passant target only if the side to move has a
// legal en passant capture.
func (p *Position) EpSquare() (Square, bool) {
	if p.epSquare == NoSquare {
		return NoSquare, false
	}
	them := p.turn.Other()
	// pawns that could capture onto the target are attacked from it by them
	candidates := PawnAttacks(them, p.epSquare) & p.pieces[p.turn][Pawn]
	for candidates != 0 {
		if p.isLegal(NewEnPassant(candidates.PopLSB(), p.epSquare)) {
			return p.epSquare, true
		}
	}
	return NoSquare, false
}

// RawEpSquare returns the stored en passant target regardless of whether a
// capture is possible, as written in FEN.
func (p *Position) RawEpSquare() Square { return p.epSquare }

// RemainingChecks returns the checks c still has to give. ok is false
// outside three-check.
func (p *Position) RemainingChecks(c Color) (uint8, bool) {
	if p.variant != ThreeCheck {
		return 0, false
	}
	return p.remaining[c], true
}

// Promoted returns the squares holding pieces that were promoted from
// pawns. It is always empty outside crazyhouse.
func (p *Position) Promoted() Bitboard { return p.promoted }

// Pocket returns how many pieces of role c holds in hand.
func (p *Position) Pocket(c Color, role Role) uint8 {
	if role > King {
		return 0
	}
	return p.pockets[c][role]
}

// HalfMoveClock returns the number of half moves since the last capture or
// pawn move.
func (p *Position) HalfMoveClock() int { return p.halfmoves }

// FullMoveNumber returns the move counter, starting at 1.
func (p *Position) FullMoveNumber() int { return p.fullmoves }

// Occupied returns all occupied squares.
func (p *Position) Occupied() Bitboard {
	return p.occupied[White] | p.occupied[Black]
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	var c Color
	switch {
	case p.occupied[White]&bb != 0:
		c = White
	case p.occupied[Black]&bb != 0:
		c = Black
	default:
		return NoPiece
	}
	for r := Pawn; r <= King; r++ {
		if p.pieces[c][r]&bb != 0 {
			return NewPiece(r, c)
		}
	}
	return NoPiece
}

// KingSquare returns the square of c's king, or NoSquare.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King].LSB()
}

// setPiece places a piece on an empty square.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	bb := SquareBB(sq)
	p.pieces[piece.Color()][piece.Role()] |= bb
	p.occupied[piece.Color()] |= bb
}

// removePiece removes and returns the piece on sq.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	bb := SquareBB(sq)
	p.pieces[piece.Color()][piece.Role()] &^= bb
	p.occupied[piece.Color()] &^= bb
	return piece
}

// attackersByColor returns the pieces of color c attacking sq.
func (p *Position) attackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	return (PawnAttacks(c.Other(), sq) & p.pieces[c][Pawn]) |
		(KnightAttacks(sq) & p.pieces[c][Knight]) |
		(KingAttacks(sq) & p.pieces[c][King]) |
		(BishopAttacks(sq, occupied) & (p.pieces[c][Bishop] | p.pieces[c][Queen])) |
		(RookAttacks(sq, occupied) & (p.pieces[c][Rook] | p.pieces[c][Queen]))
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.attackersByColor(sq, by, p.Occupied()) != 0
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.kingAttacked(p.turn)
}

func (p *Position) kingAttacked(c Color) bool {
	ksq := p.KingSquare(c)
	return ksq != NoSquare && p.IsSquareAttacked(ksq, c.Other())
}

// IsVariantEnd returns true when the variant rules have ended the game
// regardless of the moves available.
func (p *Position) IsVariantEnd() bool {
	return p.variant == ThreeCheck && (p.remaining[White] == 0 || p.remaining[Black] == 0)
}

// Validate checks that the position is playable.
func (p *Position) Validate() error {
	if p.pieces[White][King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if (p.pieces[White][Pawn]|p.pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}
	if p.kingAttacked(p.turn.Other()) {
		return fmt.Errorf("side not to move is in check")
	}
	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(File(file), Rank(rank)))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.turn)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castling)
	fmt.Fprintf(&sb, "En passant: %s\n", p.epSquare)
	if p.variant != Standard {
		fmt.Fprintf(&sb, "Variant: %s\n", p.variant)
	}
	return sb.String()
}
