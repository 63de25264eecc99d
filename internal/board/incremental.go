package board

import (
	. "github.com/hailam/chesshash/internal/chess"
	"github.com/hailam/chesshash/internal/zobrist"
)

// PrepareIncremental toggles off everything m is about to change: the
// moving piece, any captured piece, a castling rook, and the turn,
// castling, en passant and check counter state. Crazyhouse positions are
// not supported.
func (p *Position) PrepareIncremental(t zobrist.Toggler, m Move) bool {
	if p.variant == Crazyhouse {
		return false
	}
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return false
	}
	t.TogglePiece(from, piece)

	switch {
	case m.IsCastling():
		rookFrom, _ := m.castlingRook()
		t.TogglePiece(rookFrom, p.PieceAt(rookFrom))
	case m.IsEnPassant():
		sq := m.capturedSquare()
		t.TogglePiece(sq, p.PieceAt(sq))
	default:
		if captured := p.PieceAt(to); captured != NoPiece {
			t.TogglePiece(to, captured)
		}
	}

	p.toggleState(t)
	return true
}

// FinalizeIncremental toggles on the state m produced. It runs after the
// move has been played.
func (p *Position) FinalizeIncremental(t zobrist.Toggler, m Move) bool {
	if p.variant == Crazyhouse {
		return false
	}
	to := m.To()
	t.TogglePiece(to, p.PieceAt(to))
	if m.IsCastling() {
		_, rookTo := m.castlingRook()
		t.TogglePiece(rookTo, p.PieceAt(rookTo))
	}

	p.toggleState(t)
	return true
}

// toggleState toggles the non-placement features of the position.
func (p *Position) toggleState(t zobrist.Toggler) {
	if p.turn == White {
		t.ToggleWhiteTurn()
	}
	for _, c := range Colors {
		for _, side := range []CastlingSide{KingSide, QueenSide} {
			if p.castling.Has(c, side) {
				t.ToggleCastlingRight(c, side)
			}
		}
		if n, ok := p.RemainingChecks(c); ok {
			t.ToggleRemainingChecks(c, n)
		}
	}
	if sq, ok := p.EpSquare(); ok {
		t.ToggleEnPassantFile(sq.File())
	}
}
