// Package perft counts leaf nodes of the legal move tree. Root moves are
// searched in parallel, interior nodes are cached in a shared transposition
// table and finished results can be persisted in a store.
package perft

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/storage"
	"github.com/hailam/chesshash/internal/tt"
	"github.com/hailam/chesshash/internal/zobrist"
)

// ErrDepth is returned for negative depths.
var ErrDepth = errors.New("perft: depth must not be negative")

type hashed = zobrist.Hashed[zobrist.Hash64, board.Move, *board.Position]

// Options configures a count.
type Options struct {
	Depth int
	// Workers bounds the number of root moves searched at once. Zero means
	// one per CPU.
	Workers int
	// Table caches subtree counts by fingerprint. Optional.
	Table *tt.Table
	// Store persists the root result by 128-bit fingerprint. Optional.
	Store *storage.Store
}

// Branch is the node count below one root move.
type Branch struct {
	Move  board.Move
	Nodes uint64
}

// Result is the outcome of a count.
type Result struct {
	Nodes uint64
	// Divide holds per root move counts, sorted by move. It is empty when
	// the result came from the store.
	Divide []Branch
	// Stored reports that the result was read from the store.
	Stored  bool
	Elapsed time.Duration
}

// NPS returns nodes per second.
func (r Result) NPS() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed.Seconds())
}

// Count counts the leaf nodes at opts.Depth below pos. pos is not modified.
func Count(ctx context.Context, pos *board.Position, opts Options) (Result, error) {
	if opts.Depth < 0 {
		return Result{}, ErrDepth
	}
	start := time.Now()

	var key []byte
	epd := pos.EPD()
	if opts.Store != nil {
		root := zobrist.Compute[zobrist.Hash128](pos)
		key = storage.PerftKey(root, pos.Variant(), opts.Depth)
		rec, err := opts.Store.Get(key, epd)
		switch {
		case err == nil:
			return Result{Nodes: rec.Nodes, Stored: true, Elapsed: time.Since(start)}, nil
		case errors.Is(err, storage.ErrCollision):
			log.Printf("perft: %v, recounting", err)
		case !errors.Is(err, storage.ErrNotFound):
			return Result{}, err
		}
	}

	res, err := divide(ctx, pos, opts)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = time.Since(start)

	if opts.Store != nil {
		rec := storage.Record{EPD: epd, Depth: opts.Depth, Nodes: res.Nodes}
		if err := opts.Store.Put(key, rec); err != nil {
			return res, fmt.Errorf("perft: save result: %w", err)
		}
	}
	return res, nil
}

func divide(ctx context.Context, pos *board.Position, opts Options) (Result, error) {
	if opts.Depth == 0 {
		return Result{Nodes: 1}, nil
	}

	moves := pos.LegalMoves()
	branches := make([]Branch, len(moves))
	if opts.Table != nil {
		opts.Table.NewSearch()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	root := zobrist.Wrap[zobrist.Hash64, board.Move](pos.Clone())
	root.Fingerprint()

	var total atomic.Uint64
	for i, m := range moves {
		g.Go(func() error {
			child := root.Clone()
			child.Play(m)
			w := walker{ctx: ctx, table: opts.Table}
			n, err := w.count(child, opts.Depth-1)
			if err != nil {
				return err
			}
			branches[i] = Branch{Move: m, Nodes: n}
			total.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	slices.SortFunc(branches, func(a, b Branch) int {
		return strings.Compare(a.Move.String(), b.Move.String())
	})
	return Result{Nodes: total.Load(), Divide: branches}, nil
}

type walker struct {
	ctx   context.Context
	table *tt.Table
}

func (w *walker) count(h *hashed, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves := h.Position().LegalMoves()
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	key := h.Fingerprint()
	if w.table != nil {
		if n, ok := w.table.Probe(key, depth); ok {
			return n, nil
		}
	}
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, m := range moves {
		child := h.Clone()
		child.Play(m)
		n, err := w.count(child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if w.table != nil {
		w.table.Store(key, depth, nodes)
	}
	return nodes, nil
}
