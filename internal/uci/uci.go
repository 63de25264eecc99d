// Package uci implements the subset of the Universal Chess Interface that
// makes sense without a search: position setup, book moves, perft and the
// Stockfish style "d" display with the position key.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/book"
	"github.com/hailam/chesshash/internal/perft"
	"github.com/hailam/chesshash/internal/storage"
	"github.com/hailam/chesshash/internal/tt"
	"github.com/hailam/chesshash/internal/zobrist"
)

type hashed = zobrist.Hashed[zobrist.Hash64, board.Move, *board.Position]

// Config holds the resources a session starts with.
type Config struct {
	HashMB  int
	Threads int
	Book    *book.Book
	Store   *storage.Store
}

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	cfg     Config
	table   *tt.Table
	variant board.Variant
	pos     *hashed

	// Fingerprints of every position since the last setup, for repetition
	// detection.
	history []zobrist.Hash64

	out   io.Writer
	outMu sync.Mutex

	// Search state
	cancel     context.CancelFunc
	searchDone chan struct{}
}

// New creates a new UCI protocol handler.
func New(cfg Config) *UCI {
	if cfg.HashMB <= 0 {
		cfg.HashMB = 16
	}
	u := &UCI{
		cfg:   cfg,
		table: tt.New(cfg.HashMB),
	}
	u.reset(board.NewPosition())
	return u
}

// Run reads commands from in until "quit", end of input or ctx is done.
// A running perft is waited for at end of input and canceled on "quit".
func (u *UCI) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	u.out = out
	defer u.wait()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			u.handleStop()
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(ctx, args)
		case "perft":
			u.handleGo(ctx, append([]string{"perft"}, args...))
		case "stop":
			u.handleStop()
		case "quit":
			u.handleStop()
			return nil
		case "setoption":
			u.handleSetOption(args)
		case "d":
			u.handleDisplay()
		default:
			u.printf("info string Unknown command: %s\n", cmd)
		}
	}
	return scanner.Err()
}

func (u *UCI) printf(format string, args ...any) {
	u.outMu.Lock()
	defer u.outMu.Unlock()
	fmt.Fprintf(u.out, format, args...)
}

func (u *UCI) println(s string) {
	u.printf("%s\n", s)
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	u.println("id name chesshash")
	u.println("id author chesshash authors")
	u.println("")
	u.printf("option name Hash type spin default %d min 1 max 4096\n", u.cfg.HashMB)
	u.printf("option name Threads type spin default %d min 0 max 512\n", u.cfg.Threads)
	u.println("option name UCI_Variant type combo default chess var chess var 3check var crazyhouse")
	u.println("uciok")
}

func (u *UCI) reset(pos *board.Position) {
	u.pos = zobrist.Wrap[zobrist.Hash64, board.Move](pos)
	u.history = []zobrist.Hash64{u.pos.Fingerprint()}
}

// handleNewGame resets the table and the position for a new game.
func (u *UCI) handleNewGame() {
	u.wait()
	u.table.Clear()
	u.reset(board.NewVariantPosition(u.variant))
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}
	u.wait()

	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i
			break
		}
	}

	var pos *board.Position
	switch args[0] {
	case "startpos":
		pos = board.NewVariantPosition(u.variant)
	case "fen":
		var err error
		pos, err = board.ParseVariantFEN(u.variant, strings.Join(args[1:moveStart], " "))
		if err != nil {
			u.printf("info string Invalid FEN: %v\n", err)
			return
		}
	default:
		return
	}
	u.reset(pos)

	if moveStart >= len(args) {
		return
	}
	for _, s := range args[moveStart+1:] {
		m, err := board.ParseUCI(u.pos.Position(), s)
		if err != nil {
			u.printf("info string Invalid move: %v\n", err)
			return
		}
		u.pos.Play(m)
		u.history = append(u.history, u.pos.Fingerprint())
	}
}

// handleGo answers "go perft <depth>" with a divide, and any other "go"
// with a book move.
func (u *UCI) handleGo(ctx context.Context, args []string) {
	u.wait()
	if len(args) > 0 && args[0] == "perft" {
		depth := 5
		if len(args) > 1 {
			d, err := strconv.Atoi(args[1])
			if err != nil || d < 0 {
				u.printf("info string Invalid perft depth: %s\n", args[1])
				return
			}
			depth = d
		}
		u.startPerft(ctx, depth)
		return
	}

	if m, ok := u.cfg.Book.Probe(u.pos.Position()); ok {
		u.printf("bestmove %s\n", m)
		return
	}
	u.println("info string no book move")
	u.println("bestmove 0000")
}

func (u *UCI) startPerft(ctx context.Context, depth int) {
	ctx, cancel := context.WithCancel(ctx)
	u.cancel = cancel
	u.searchDone = make(chan struct{})

	pos := u.pos.Position().Clone()
	opts := perft.Options{
		Depth:   depth,
		Workers: u.cfg.Threads,
		Table:   u.table,
		Store:   u.cfg.Store,
	}

	go func() {
		defer close(u.searchDone)
		defer cancel()

		res, err := perft.Count(ctx, pos, opts)
		if err != nil {
			u.printf("info string perft: %v\n", err)
			if res.Nodes == 0 {
				return
			}
		}
		for _, b := range res.Divide {
			u.printf("%s: %d\n", b.Move, b.Nodes)
		}
		u.println("")
		u.printf("Nodes searched: %d\n", res.Nodes)
		if res.Stored {
			u.println("info string result read from store")
		}
		log.Printf("perft %d: %s nodes in %v (%s nps), table %d%% full",
			depth, humanize.Comma(int64(res.Nodes)), res.Elapsed, humanize.Comma(int64(res.NPS())), u.table.HashFull()/10)
	}()
}

func (u *UCI) handleStop() {
	if u.cancel != nil {
		u.cancel()
	}
	u.wait()
}

// wait blocks until a running perft has finished.
func (u *UCI) wait() {
	if u.searchDone != nil {
		<-u.searchDone
		u.searchDone = nil
		u.cancel = nil
	}
}

// handleSetOption processes "setoption" commands.
func (u *UCI) handleSetOption(args []string) {
	// Format: setoption name <name> value <value>
	var name, value string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "name":
			if i+1 < len(args) {
				name = args[i+1]
				i++
			}
		case "value":
			value = strings.Join(args[i+1:], " ")
			i = len(args)
		}
	}
	u.wait()

	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil || mb < 1 {
			u.printf("info string Invalid hash size: %s\n", value)
			return
		}
		u.cfg.HashMB = mb
		u.table = tt.New(mb)
	case "threads":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			u.printf("info string Invalid thread count: %s\n", value)
			return
		}
		u.cfg.Threads = n
	case "uci_variant":
		v, err := board.ParseVariant(value)
		if err != nil {
			u.printf("info string %v\n", err)
			return
		}
		u.variant = v
		u.table.Clear()
		u.reset(board.NewVariantPosition(v))
	default:
		u.printf("info string Unknown option: %s\n", name)
	}
}

// handleDisplay prints the board, its FEN and its fingerprints.
func (u *UCI) handleDisplay() {
	pos := u.pos.Position()
	key := u.pos.Fingerprint()

	reps := 0
	for _, h := range u.history[:len(u.history)-1] {
		if h == key {
			reps++
		}
	}

	u.printf("%s\n", pos)
	u.printf("Fen: %s\n", pos.FEN())
	u.printf("Key: %s\n", strings.ToUpper(key.String()))
	u.printf("Fingerprint: %s\n", zobrist.Compute[zobrist.Hash128](pos))
	u.printf("Repetitions: %d\n", reps)
	if entries := u.cfg.Book.ProbeKey(pos, key); len(entries) > 0 {
		moves := make([]string, len(entries))
		for i, e := range entries {
			moves[i] = fmt.Sprintf("%s(%d)", e.Move, e.Weight)
		}
		u.printf("Book: %s\n", strings.Join(moves, " "))
	}
}
