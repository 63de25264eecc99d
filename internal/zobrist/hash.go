package zobrist

import (
	"iter"

	"github.com/hailam/chesshash/internal/chess"
)

// Setup is the read-only view of a position that the fingerprint covers.
type Setup interface {
	// Pieces yields every occupied square with its piece.
	Pieces() iter.Seq2[chess.Square, chess.Piece]
	Turn() chess.Color
	Castles(c chess.Color, side chess.CastlingSide) bool
	// EpSquare reports the en passant target only when an en passant
	// capture is actually available.
	EpSquare() (chess.Square, bool)
}

// RemainingChecksSetup is implemented by positions that may track
// three-check counters. ok is false when the position has none.
type RemainingChecksSetup interface {
	RemainingChecks(c chess.Color) (remaining uint8, ok bool)
}

// PromotedSetup is implemented by positions that mark promoted pieces.
type PromotedSetup interface {
	Promoted() chess.Bitboard
}

// PocketsSetup is implemented by positions with pieces in hand.
type PocketsSetup interface {
	Pocket(c chess.Color, role chess.Role) uint8
}

var castlingSides = [2]chess.CastlingSide{chess.KingSide, chess.QueenSide}

// Compute folds every active feature of pos into a fingerprint of width V.
func Compute[V Value[V]](pos Setup) V {
	var h V
	for sq, piece := range pos.Pieces() {
		h = h.Xor(ForPiece[V](sq, piece))
	}
	if pos.Turn() == chess.White {
		h = h.Xor(ForWhiteTurn[V]())
	}
	for _, c := range chess.Colors {
		for _, side := range castlingSides {
			if pos.Castles(c, side) {
				h = h.Xor(ForCastlingRight[V](c, side))
			}
		}
	}
	if sq, ok := pos.EpSquare(); ok {
		h = h.Xor(ForEnPassantFile[V](sq.File()))
	}
	return h.Xor(variantTerms[V](pos))
}

func variantTerms[V Value[V]](pos Setup) V {
	var h V
	if rc, ok := pos.(RemainingChecksSetup); ok {
		for _, c := range chess.Colors {
			if n, ok := rc.RemainingChecks(c); ok {
				h = h.Xor(ForRemainingChecks[V](c, n))
			}
		}
	}
	if ps, ok := pos.(PromotedSetup); ok {
		for bb := ps.Promoted(); bb != 0; {
			h = h.Xor(ForPromoted[V](bb.PopLSB()))
		}
	}
	if pk, ok := pos.(PocketsSetup); ok {
		for _, c := range chess.Colors {
			for role := chess.Pawn; role <= chess.Queen; role++ {
				h = h.Xor(ForPocket[V](c, role, pk.Pocket(c, role)))
			}
		}
	}
	return h
}
