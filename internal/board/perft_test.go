package board

import "testing"

// perft counts the number of leaf nodes at the given depth.
// This is the standard way to verify move generation correctness.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		next := *p
		next.Play(m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		expected []int64
	}{
		{"start", StartFEN, []int64{20, 400, 8902}},
		// Castling, promotions and pins.
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", []int64{48, 2039, 97862}},
		// En passant edge cases.
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", []int64{14, 191, 2812, 43238}},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []int64{6, 264, 9467}},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []int64{44, 1486, 62379}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			for i, want := range tc.expected {
				if got := perft(pos, i+1); got != want {
					t.Errorf("perft(%d) = %d, want %d", i+1, got, want)
				}
			}
		})
	}
}

// TestPerftEnPassantPin tests the specific en passant horizontal pin edge case.
// Black pawn on e4 can capture en passant d3, but this would expose the black king
// on a4 to the white rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	for _, m := range pos.LegalMoves() {
		if m.IsEnPassant() {
			t.Errorf("En passant move %v should be illegal (horizontal pin)", m)
		}
	}
	if sq, ok := pos.EpSquare(); ok {
		t.Errorf("EpSquare() = %s, want none", sq)
	}
	if got := pos.RawEpSquare().String(); got != "d3" {
		t.Errorf("RawEpSquare() = %s, want d3", got)
	}

	// Depth 1: Ka3, Ka5, Kb3, Kb4, Kb5, e3 = 6 moves
	// Depth 2: After e4e3 (14), after king moves (16 each x5) = 14 + 80 = 94
	if got := perft(pos, 1); got != 6 {
		t.Errorf("perft(1) = %d, want 6", got)
	}
	if got := perft(pos, 2); got != 94 {
		t.Errorf("perft(2) = %d, want 94", got)
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		checkmate bool
		stalemate bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"back rank", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", false, false},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true, false},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, true},
		{"start", StartFEN, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			if got := pos.IsCheckmate(); got != tc.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tc.checkmate)
			}
			if got := pos.IsStalemate(); got != tc.stalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tc.stalemate)
			}
		})
	}
}
