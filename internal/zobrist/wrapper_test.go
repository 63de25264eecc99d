package zobrist

import (
	"testing"

	"github.com/hailam/chesshash/internal/chess"
)

var knightDance = []fakeMove{
	{chess.G1, chess.F3}, {chess.G8, chess.F6}, {chess.F3, chess.G1}, {chess.F6, chess.G8},
}

func TestWrapStartsEmpty(t *testing.T) {
	h := Wrap[Hash64, fakeMove](parseFake(startFEN))
	if _, ok := h.Cached(); ok {
		t.Fatal("new wrapper has a cached fingerprint")
	}
	if got := h.Fingerprint(); got != 0x463b96181691fc9c {
		t.Errorf("Fingerprint() = %s", got)
	}
	if got, ok := h.Cached(); !ok || got != 0x463b96181691fc9c {
		t.Errorf("Cached() = %s, %v after Fingerprint()", got, ok)
	}
}

func TestPlayWithoutHooksDropsCache(t *testing.T) {
	h := Wrap[Hash64, fakeMove](parseFake(startFEN))
	h.Fingerprint()

	h.Play(fakeMove{chess.E2, chess.E4})

	if _, ok := h.Cached(); ok {
		t.Fatal("cache survived a move on a position without incremental hooks")
	}
	if got, want := h.Fingerprint(), Compute[Hash64](h.Position()); got != want {
		t.Errorf("recomputed %s, want %s", got, want)
	}
}

func TestPlayWithUnsupportedHooksDropsCache(t *testing.T) {
	h := Wrap[Hash32, fakeMove](optOut{fakePosition: parseFake(startFEN)})
	h.Fingerprint()

	h.Play(fakeMove{chess.G1, chess.F3})

	if _, ok := h.Cached(); ok {
		t.Fatal("cache survived an unsupported incremental update")
	}
	if got, want := h.Fingerprint(), Compute[Hash32](h.Unwrap()); got != want {
		t.Errorf("recomputed %s, want %s", got, want)
	}
}

func TestPlayIncremental(t *testing.T) {
	pos := &incrementalPosition{fakePosition: parseFake(startFEN)}
	h := Wrap[Hash128, fakeMove](pos)
	start := h.Fingerprint()

	for i, m := range knightDance {
		h.Play(m)
		got, ok := h.Cached()
		if !ok {
			t.Fatalf("move %d: cache dropped", i)
		}
		if want := Compute[Hash128](h.Position()); got != want {
			t.Fatalf("move %d: cached %s, recomputed %s", i, got, want)
		}
	}
	if got, _ := h.Cached(); got != start {
		t.Errorf("knight dance ends at %s, want %s", got, start)
	}
}

func TestPlayIncrementalCapture(t *testing.T) {
	pos := &incrementalPosition{fakePosition: parseFake("4k3/8/8/3p4/4P3/8/8/4K3 w - d6 0 1")}
	h := Wrap[Hash64, fakeMove](pos)
	h.Fingerprint()

	h.Play(fakeMove{chess.E4, chess.D5})

	got, ok := h.Cached()
	if !ok {
		t.Fatal("cache dropped")
	}
	if want := Compute[Hash64](pos); got != want {
		t.Errorf("cached %s, recomputed %s", got, want)
	}
}

func TestPlaySkipsHooksWhenEmpty(t *testing.T) {
	pos := &incrementalPosition{fakePosition: parseFake(startFEN)}
	h := Wrap[Hash64, fakeMove](pos)

	h.Play(fakeMove{chess.E2, chess.E4})

	if pos.prepared != 0 {
		t.Errorf("prepare ran %d times on an empty cache", pos.prepared)
	}
	if _, ok := h.Cached(); ok {
		t.Error("empty cache became present without a recompute")
	}
}

func TestFinalizeFailureDropsCache(t *testing.T) {
	pos := &incrementalPosition{fakePosition: parseFake(startFEN), failFinalize: true}
	h := Wrap[Hash64, fakeMove](pos)
	before := h.Fingerprint()

	h.Play(fakeMove{chess.E2, chess.E4})

	if got, ok := h.Cached(); ok {
		t.Fatalf("cache kept %s after finalize failed", got)
	}
	if got := h.Fingerprint(); got == before {
		t.Error("fingerprint did not change after a pawn move")
	}
}

func TestInvalidate(t *testing.T) {
	h := Wrap[Hash16, fakeMove](parseFake(startFEN))
	h.Fingerprint()
	h.Invalidate()
	if _, ok := h.Cached(); ok {
		t.Error("Invalidate left a cached fingerprint")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos := &incrementalPosition{fakePosition: parseFake(startFEN)}
	h := Wrap[Hash64, fakeMove](pos)
	start := h.Fingerprint()

	branch := h.Clone()
	branch.Play(fakeMove{chess.E2, chess.E4})

	if got, _ := h.Cached(); got != start {
		t.Errorf("playing on a clone changed the original cache to %s", got)
	}
	if h.Position().squares[chess.E2] == chess.NoPiece {
		t.Error("playing on a clone moved a piece in the original")
	}
	if got, want := branch.Fingerprint(), Compute[Hash64](branch.Position()); got != want {
		t.Errorf("clone cached %s, recomputed %s", got, want)
	}
}
