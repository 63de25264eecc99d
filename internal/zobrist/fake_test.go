package zobrist

import (
	"iter"
	"strings"

	"github.com/hailam/chesshash/internal/chess"
)

// fakeMove relocates a piece and passes the turn. Captures replace the
// destination piece.
type fakeMove struct {
	from, to chess.Square
}

// fakePosition is a minimal Position without incremental support.
type fakePosition struct {
	squares  [64]chess.Piece
	turn     chess.Color
	castles  [2][2]bool
	ep       chess.Square
	reverse  bool
	checks   [2]uint8
	promoted chess.Bitboard
	pockets  [2][7]uint8
	variant  bool
}

func (p *fakePosition) Pieces() iter.Seq2[chess.Square, chess.Piece] {
	return func(yield func(chess.Square, chess.Piece) bool) {
		for i := 0; i < 64; i++ {
			sq := chess.Square(i)
			if p.reverse {
				sq = chess.Square(63 - i)
			}
			if p.squares[sq] == chess.NoPiece {
				continue
			}
			if !yield(sq, p.squares[sq]) {
				return
			}
		}
	}
}

func (p *fakePosition) Turn() chess.Color { return p.turn }

func (p *fakePosition) Castles(c chess.Color, side chess.CastlingSide) bool {
	return p.castles[c][side]
}

func (p *fakePosition) EpSquare() (chess.Square, bool) {
	return p.ep, p.ep != chess.NoSquare
}

func (p *fakePosition) Play(m fakeMove) {
	p.squares[m.to] = p.squares[m.from]
	p.squares[m.from] = chess.NoPiece
	p.turn = p.turn.Other()
	p.ep = chess.NoSquare
}

func (p *fakePosition) Clone() *fakePosition {
	c := *p
	return &c
}

// variantPosition exposes the optional variant features of fakePosition.
type variantPosition struct {
	*fakePosition
}

func (p variantPosition) RemainingChecks(c chess.Color) (uint8, bool) {
	return p.checks[c], p.variant
}

func (p variantPosition) Promoted() chess.Bitboard { return p.promoted }

func (p variantPosition) Pocket(c chess.Color, role chess.Role) uint8 {
	return p.pockets[c][role]
}

// optOut embeds Unsupported.
type optOut struct {
	*fakePosition
	Unsupported[fakeMove]
}

// incrementalPosition supports incremental updates for quiet and capturing
// moves. failFinalize makes the post-move hook report unsupported.
type incrementalPosition struct {
	*fakePosition
	failFinalize bool
	prepared     int
}

func (p *incrementalPosition) PrepareIncremental(t Toggler, m fakeMove) bool {
	p.prepared++
	t.TogglePiece(m.from, p.squares[m.from])
	if captured := p.squares[m.to]; captured != chess.NoPiece {
		t.TogglePiece(m.to, captured)
	}
	if p.turn == chess.White {
		t.ToggleWhiteTurn()
	}
	if sq, ok := p.EpSquare(); ok {
		t.ToggleEnPassantFile(sq.File())
	}
	return true
}

func (p *incrementalPosition) FinalizeIncremental(t Toggler, m fakeMove) bool {
	if p.failFinalize {
		return false
	}
	t.TogglePiece(m.to, p.squares[m.to])
	if p.turn == chess.White {
		t.ToggleWhiteTurn()
	}
	return true
}

func (p *incrementalPosition) Clone() *incrementalPosition {
	c := *p
	c.fakePosition = p.fakePosition.Clone()
	return &c
}

// parseFake reads the placement, turn and castling fields of a FEN.
func parseFake(fen string) *fakePosition {
	fields := strings.Fields(fen)
	p := &fakePosition{ep: chess.NoSquare}
	for i, row := range strings.Split(fields[0], "/") {
		file := 0
		for _, c := range []byte(row) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p.squares[chess.NewSquare(chess.File(file), chess.Rank(7-i))] = chess.PieceFromChar(c)
			file++
		}
	}
	if fields[1] == "b" {
		p.turn = chess.Black
	}
	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.castles[chess.White][chess.KingSide] = true
		case 'Q':
			p.castles[chess.White][chess.QueenSide] = true
		case 'k':
			p.castles[chess.Black][chess.KingSide] = true
		case 'q':
			p.castles[chess.Black][chess.QueenSide] = true
		}
	}
	if len(fields) > 3 && fields[3] != "-" {
		p.ep, _ = chess.ParseSquare(fields[3])
	}
	return p
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
