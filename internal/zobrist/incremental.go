package zobrist

import "github.com/hailam/chesshash/internal/chess"

// Toggler receives the features a move switches on or off. Each call XORs
// the corresponding mask, so toggling a feature twice is a no-op.
type Toggler interface {
	TogglePiece(sq chess.Square, piece chess.Piece)
	ToggleWhiteTurn()
	ToggleCastlingRight(c chess.Color, side chess.CastlingSide)
	ToggleEnPassantFile(file chess.File)
	ToggleRemainingChecks(c chess.Color, remaining uint8)
	TogglePromoted(sq chess.Square)
	TogglePocket(c chess.Color, role chess.Role, count uint8)
}

// Incremental is implemented by positions that can describe the effect of
// a move as feature toggles.
//
// PrepareIncremental is called before the move is played and
// FinalizeIncremental after it. Either may return false to report that it
// cannot describe this move, in which case the fingerprint must be
// recomputed from scratch.
type Incremental[M any] interface {
	PrepareIncremental(t Toggler, m M) bool
	FinalizeIncremental(t Toggler, m M) bool
}

// Unsupported can be embedded by positions that opt out of incremental
// updates explicitly.
type Unsupported[M any] struct{}

func (Unsupported[M]) PrepareIncremental(Toggler, M) bool  { return false }
func (Unsupported[M]) FinalizeIncremental(Toggler, M) bool { return false }

type accumulator[V Value[V]] struct {
	h V
}

func (a *accumulator[V]) TogglePiece(sq chess.Square, piece chess.Piece) {
	a.h = a.h.Xor(ForPiece[V](sq, piece))
}

func (a *accumulator[V]) ToggleWhiteTurn() {
	a.h = a.h.Xor(ForWhiteTurn[V]())
}

func (a *accumulator[V]) ToggleCastlingRight(c chess.Color, side chess.CastlingSide) {
	a.h = a.h.Xor(ForCastlingRight[V](c, side))
}

func (a *accumulator[V]) ToggleEnPassantFile(file chess.File) {
	a.h = a.h.Xor(ForEnPassantFile[V](file))
}

func (a *accumulator[V]) ToggleRemainingChecks(c chess.Color, remaining uint8) {
	a.h = a.h.Xor(ForRemainingChecks[V](c, remaining))
}

func (a *accumulator[V]) TogglePromoted(sq chess.Square) {
	a.h = a.h.Xor(ForPromoted[V](sq))
}

func (a *accumulator[V]) TogglePocket(c chess.Color, role chess.Role, count uint8) {
	a.h = a.h.Xor(ForPocket[V](c, role, count))
}

// Prepare runs the pre-move half of an incremental update on pos, which
// must not have played m yet. It returns false if pos does not support
// incremental updates for m.
func Prepare[V Value[V], M any](pos Setup, previous V, m M) (V, bool) {
	inc, ok := pos.(Incremental[M])
	if !ok {
		var zero V
		return zero, false
	}
	acc := accumulator[V]{h: previous}
	if !inc.PrepareIncremental(&acc, m) {
		var zero V
		return zero, false
	}
	return acc.h, true
}

// Finalize runs the post-move half of an incremental update on pos, which
// has just played m.
func Finalize[V Value[V], M any](pos Setup, intermediate V, m M) (V, bool) {
	inc, ok := pos.(Incremental[M])
	if !ok {
		var zero V
		return zero, false
	}
	acc := accumulator[V]{h: intermediate}
	if !inc.FinalizeIncremental(&acc, m) {
		var zero V
		return zero, false
	}
	return acc.h, true
}
