package board

import (
	. "github.com/hailam/chesshash/internal/chess"
	"github.com/hailam/chesshash/internal/zobrist"
)

// Play applies a legal move in place. Moves are not validated; use
// LegalMoves or ParseUCI to obtain them.
func (p *Position) Play(m Move) {
	us := p.turn
	them := us.Other()
	from, to := m.From(), m.To()

	piece := p.removePiece(from)
	if piece == NoPiece {
		return
	}
	fromPromoted := p.promoted.Has(from)
	p.promoted &^= SquareBB(from)

	p.halfmoves++
	if piece.Role() == Pawn {
		p.halfmoves = 0
	}

	if !m.IsCastling() {
		captureSq := to
		if m.IsEnPassant() {
			captureSq = m.capturedSquare()
		}
		if captured := p.removePiece(captureSq); captured != NoPiece {
			p.halfmoves = 0
			if p.variant == Crazyhouse {
				role := captured.Role()
				if p.promoted.Has(captureSq) {
					role = Pawn
				}
				// Counts past the last pocket mask would fingerprint like
				// an empty pocket.
				if p.pockets[us][role] < zobrist.MaxPocketCount {
					p.pockets[us][role]++
				}
			}
			p.promoted &^= SquareBB(captureSq)
		}
	}

	switch {
	case m.IsPromotion():
		p.setPiece(NewPiece(m.Promotion(), us), to)
		if p.variant == Crazyhouse {
			p.promoted |= SquareBB(to)
		}
	case m.IsCastling():
		p.setPiece(piece, to)
		rookFrom, rookTo := m.castlingRook()
		p.setPiece(p.removePiece(rookFrom), rookTo)
		if p.promoted.Has(rookFrom) {
			p.promoted ^= SquareBB(rookFrom) | SquareBB(rookTo)
		}
	default:
		p.setPiece(piece, to)
		if fromPromoted {
			p.promoted |= SquareBB(to)
		}
	}

	p.castling &= castleMask[from] & castleMask[to]

	p.epSquare = NoSquare
	if piece.Role() == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		p.epSquare = Square((int(from) + int(to)) / 2)
	}

	if us == Black {
		p.fullmoves++
	}
	p.turn = them

	if p.variant == ThreeCheck && p.remaining[us] > 0 && p.kingAttacked(them) {
		p.remaining[us]--
	}
}
