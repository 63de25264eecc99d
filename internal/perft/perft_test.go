package perft

import (
	"context"
	"errors"
	"testing"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/storage"
	"github.com/hailam/chesshash/internal/tt"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name    string
		variant board.Variant
		fen     string
		depth   int
		nodes   uint64
		workers int
	}{
		{"start", board.Standard, board.StartFEN, 3, 8902, 0},
		{"start serial", board.Standard, board.StartFEN, 3, 8902, 1},
		{"kiwipete", board.Standard, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862, 4},
		{"position3", board.Standard, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238, 2},
		{"depth zero", board.Standard, board.StartFEN, 0, 1, 0},
		{"three-check over", board.ThreeCheck, "rnbqkbnr/ppp1pppp/8/1B1p4/4P3/8/PPPP1PPP/RNBQK1NR b KQkq - 0+2 1 2", 2, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := board.ParseVariantFEN(tc.variant, tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			before := pos.FEN()

			for _, table := range []*tt.Table{nil, tt.New(1)} {
				res, err := Count(context.Background(), pos, Options{Depth: tc.depth, Workers: tc.workers, Table: table})
				if err != nil {
					t.Fatal(err)
				}
				if res.Nodes != tc.nodes {
					t.Errorf("Count(%d) = %d, want %d (table %v)", tc.depth, res.Nodes, tc.nodes, table != nil)
				}
				var sum uint64
				for _, b := range res.Divide {
					sum += b.Nodes
				}
				if tc.depth > 0 && sum != res.Nodes {
					t.Errorf("divide sums to %d, total %d", sum, res.Nodes)
				}
			}
			if pos.FEN() != before {
				t.Errorf("position changed: %s", pos.FEN())
			}
		})
	}
}

func TestDivide(t *testing.T) {
	res, err := Count(context.Background(), board.NewPosition(), Options{Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Divide) != 20 {
		t.Fatalf("divide has %d moves, want 20", len(res.Divide))
	}
	if first := res.Divide[0].Move.String(); first != "a2a3" {
		t.Errorf("first move %s, want a2a3", first)
	}
	for _, b := range res.Divide {
		if b.Nodes != 20 {
			t.Errorf("%s: %d nodes, want 20", b.Move, b.Nodes)
		}
	}
}

func TestCountUsesStore(t *testing.T) {
	store, err := storage.Open(storage.Options{InMemory: true})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	pos := board.NewPosition()
	opts := Options{Depth: 3, Store: store}

	first, err := Count(context.Background(), pos, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Stored || first.Nodes != 8902 {
		t.Fatalf("first count = %+v", first)
	}

	second, err := Count(context.Background(), pos, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Stored || second.Nodes != 8902 {
		t.Errorf("second count = %d nodes (stored %v), want 8902 from store", second.Nodes, second.Stored)
	}

	// Same placement in three-check is a different key.
	tc, err := Count(context.Background(), board.NewVariantPosition(board.ThreeCheck), opts)
	if err != nil {
		t.Fatal(err)
	}
	if tc.Stored {
		t.Error("three-check count read the standard result")
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Records != 2 {
		t.Errorf("store holds %d records, want 2", stats.Records)
	}
}

func TestCountCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Count(ctx, board.NewPosition(), Options{Depth: 5})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Count on canceled context: %v", err)
	}
}

func TestCountNegativeDepth(t *testing.T) {
	if _, err := Count(context.Background(), board.NewPosition(), Options{Depth: -1}); !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want ErrDepth", err)
	}
}

func TestResultNPS(t *testing.T) {
	if (Result{Nodes: 10}).NPS() != 0 {
		t.Error("NPS with no elapsed time is not zero")
	}
}

func TestSharedTableAcrossCheckCounters(t *testing.T) {
	fens := []string{
		"7k/8/8/8/8/8/8/KQ6 b - - 3+3 0 1",
		"7k/8/8/8/8/8/8/KQ6 b - - 1+3 0 1",
		"7k/8/8/8/8/8/8/KQ6 b - - 2+3 0 1",
	}
	const depth = 4

	fresh := make([]uint64, len(fens))
	for i, fen := range fens {
		pos, err := board.ParseVariantFEN(board.ThreeCheck, fen)
		if err != nil {
			t.Fatal(err)
		}
		res, err := Count(context.Background(), pos, Options{Depth: depth, Table: tt.New(1)})
		if err != nil {
			t.Fatal(err)
		}
		fresh[i] = res.Nodes
	}

	shared := tt.New(1)
	for i, fen := range fens {
		pos, _ := board.ParseVariantFEN(board.ThreeCheck, fen)
		res, err := Count(context.Background(), pos, Options{Depth: depth, Table: shared})
		if err != nil {
			t.Fatal(err)
		}
		if res.Nodes != fresh[i] {
			t.Errorf("%s: shared table counts %d, fresh table %d", fen, res.Nodes, fresh[i])
		}
	}
}
