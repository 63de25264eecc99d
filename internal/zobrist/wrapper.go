package zobrist

// Position is a Setup that can play moves in place.
type Position[M any] interface {
	Setup
	Play(m M)
}

// Hashed binds a position to a cached fingerprint of width V.
//
// The cache is either empty or equal to Compute[V] of the current position.
// Play keeps it current when the position supports incremental updates and
// empties it otherwise; Fingerprint refills an empty cache.
type Hashed[V Value[V], M any, P Position[M]] struct {
	pos  P
	hash V
	ok   bool
}

// Wrap binds pos with an empty cache. Callers name V and M; P is inferred:
//
//	h := zobrist.Wrap[zobrist.Hash64, board.Move](pos)
func Wrap[V Value[V], M any, P Position[M]](pos P) *Hashed[V, M, P] {
	return &Hashed[V, M, P]{pos: pos}
}

// Position returns the wrapped position for reading. Mutating it directly
// bypasses the cache; call Invalidate afterwards.
func (h *Hashed[V, M, P]) Position() P {
	return h.pos
}

// Unwrap returns the position, discarding the cache.
func (h *Hashed[V, M, P]) Unwrap() P {
	return h.pos
}

// Play plays m on the wrapped position and updates the cache incrementally
// when possible.
func (h *Hashed[V, M, P]) Play(m M) {
	if h.ok {
		h.hash, h.ok = Prepare(h.pos, h.hash, m)
	}
	h.pos.Play(m)
	if h.ok {
		h.hash, h.ok = Finalize(h.pos, h.hash, m)
	}
}

// Cached returns the cached fingerprint without computing one.
func (h *Hashed[V, M, P]) Cached() (V, bool) {
	return h.hash, h.ok
}

// Fingerprint returns the cached fingerprint, computing and caching it
// first if the cache is empty.
func (h *Hashed[V, M, P]) Fingerprint() V {
	if !h.ok {
		h.hash = Compute[V](h.pos)
		h.ok = true
	}
	return h.hash
}

// Invalidate empties the cache.
func (h *Hashed[V, M, P]) Invalidate() {
	var zero V
	h.hash, h.ok = zero, false
}

// Cloner is implemented by pointer positions that can copy themselves.
type Cloner[P any] interface {
	Clone() P
}

// Clone returns an independent copy of the wrapper and its cache. Pointer
// positions are copied through Cloner; other positions are copied by value.
func (h *Hashed[V, M, P]) Clone() *Hashed[V, M, P] {
	c := *h
	if cl, ok := any(h.pos).(Cloner[P]); ok {
		c.pos = cl.Clone()
	}
	return &c
}
