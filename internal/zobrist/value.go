// Package zobrist computes and incrementally maintains Zobrist fingerprints
// of chess positions at 8, 16, 32, 64 or 128 bits.
//
// Every width is derived from one fixed table of 128-bit masks. A narrower
// fingerprint is the most significant bits of a wider one, so the 64-bit
// fingerprint of a standard chess position is its Polyglot key.
package zobrist

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/hailam/chesshash/internal/chess"
	"golang.org/x/exp/constraints"
)

// Mask is one full-width table entry.
type Mask struct {
	Hi, Lo uint64
}

// Value is implemented by fingerprint types. The zero value is the
// identity of Xor.
type Value[V any] interface {
	comparable
	Xor(V) V
	// FromMask narrows a table entry to the width of V. It is called on
	// the zero value and must not depend on the receiver.
	FromMask(Mask) V
}

type (
	Hash8  uint8
	Hash16 uint16
	Hash32 uint32
	Hash64 uint64
)

// Hash128 is the full-width fingerprint.
type Hash128 struct {
	Hi, Lo uint64
}

// top returns the most significant bits of m that fit in T.
func top[T constraints.Unsigned](m Mask) T {
	return T(m.Hi >> (64 - bits.Len64(uint64(^T(0)))))
}

func (h Hash8) Xor(o Hash8) Hash8       { return h ^ o }
func (Hash8) FromMask(m Mask) Hash8     { return top[Hash8](m) }
func (h Hash16) Xor(o Hash16) Hash16    { return h ^ o }
func (Hash16) FromMask(m Mask) Hash16   { return top[Hash16](m) }
func (h Hash32) Xor(o Hash32) Hash32    { return h ^ o }
func (Hash32) FromMask(m Mask) Hash32   { return top[Hash32](m) }
func (h Hash64) Xor(o Hash64) Hash64    { return h ^ o }
func (Hash64) FromMask(m Mask) Hash64   { return top[Hash64](m) }
func (h Hash128) Xor(o Hash128) Hash128 { return Hash128{h.Hi ^ o.Hi, h.Lo ^ o.Lo} }
func (Hash128) FromMask(m Mask) Hash128 { return Hash128(m) }

func (h Hash8) String() string   { return fmt.Sprintf("%02x", uint8(h)) }
func (h Hash16) String() string  { return fmt.Sprintf("%04x", uint16(h)) }
func (h Hash32) String() string  { return fmt.Sprintf("%08x", uint32(h)) }
func (h Hash64) String() string  { return fmt.Sprintf("%016x", uint64(h)) }
func (h Hash128) String() string { return fmt.Sprintf("%016x%016x", h.Hi, h.Lo) }

// Uint64 returns the fingerprint as a table index.
func (h Hash64) Uint64() uint64 { return uint64(h) }

// Bytes returns the big-endian encoding, suitable as a storage key.
func (h Hash64) Bytes() []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(h))
}

// Bytes returns the big-endian encoding, suitable as a storage key.
func (h Hash128) Bytes() []byte {
	b := binary.BigEndian.AppendUint64(make([]byte, 0, 16), h.Hi)
	return binary.BigEndian.AppendUint64(b, h.Lo)
}

// Narrow truncates a full-width fingerprint to the width of V. For any
// position, Narrow[V](Compute[Hash128](pos)) == Compute[V](pos).
func Narrow[V Value[V]](h Hash128) V {
	var zero V
	return zero.FromMask(Mask(h))
}

func lookup[V Value[V]](m Mask) V {
	var zero V
	return zero.FromMask(m)
}

// polyglotColor orders black before white, as the Polyglot table does.
func polyglotColor(c chess.Color) int {
	if c == chess.White {
		return 1
	}
	return 0
}

// ForPiece returns the mask for piece standing on sq.
func ForPiece[V Value[V]](sq chess.Square, piece chess.Piece) V {
	idx := (int(piece.Role())-1)*2 + polyglotColor(piece.Color())
	return lookup[V](pieceMasks[64*idx+int(sq)])
}

// ForWhiteTurn returns the mask folded in when white is to move. Nothing is
// folded in for black.
func ForWhiteTurn[V Value[V]]() V {
	return lookup[V](whiteTurnMask)
}

// ForCastlingRight returns the mask for one castling right.
func ForCastlingRight[V Value[V]](c chess.Color, side chess.CastlingSide) V {
	return lookup[V](castlingMasks[int(c)*2+int(side)])
}

// ForEnPassantFile returns the mask for an en passant capture on file.
func ForEnPassantFile[V Value[V]](file chess.File) V {
	return lookup[V](enPassantMasks[file])
}

// ForRemainingChecks returns the mask for a three-check counter. Counters
// of three or more saturate to the identity.
func ForRemainingChecks[V Value[V]](c chess.Color, remaining uint8) V {
	if remaining >= 3 {
		var zero V
		return zero
	}
	return lookup[V](remainingChecksMasks[int(remaining)+3*int(c)])
}

// ForPromoted returns the mask for a promoted piece standing on sq.
func ForPromoted[V Value[V]](sq chess.Square) V {
	return lookup[V](promotedMasks[sq])
}

// MaxPocketCount is the largest pocket count with its own mask.
const MaxPocketCount = 15

// ForPocket returns the mask for holding count pieces of the given role in
// hand. An empty pocket is the identity, as are counts above MaxPocketCount
// and kings, which never enter a pocket.
func ForPocket[V Value[V]](c chess.Color, role chess.Role, count uint8) V {
	if count == 0 || count > MaxPocketCount || role < chess.Pawn || role > chess.Queen {
		var zero V
		return zero
	}
	idx := (int(role)-1)*2 + polyglotColor(c)
	return lookup[V](pocketMasks[idx*MaxPocketCount+int(count)-1])
}
