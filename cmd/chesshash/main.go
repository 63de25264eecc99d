// Command chesshash prints position fingerprints, counts perft with a
// persistent result store, converts Polyglot books and speaks a small
// subset of UCI.
//
// Usage:
//
//	chesshash [flags] uci
//	chesshash [flags] hash [-variant v] [-fen fen] [moves...]
//	chesshash [flags] perft [-variant v] [-fen fen] [-depth n] [moves...]
//	chesshash [flags] book -file book.bin [-fen fen] [moves...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/hailam/chesshash/internal/board"
	"github.com/hailam/chesshash/internal/book"
	"github.com/hailam/chesshash/internal/perft"
	"github.com/hailam/chesshash/internal/storage"
	"github.com/hailam/chesshash/internal/tt"
	"github.com/hailam/chesshash/internal/uci"
	"github.com/hailam/chesshash/internal/zobrist"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dbDir      = flag.String("db", "", "perft result database directory (default: user data dir)")
	noDB       = flag.Bool("nodb", false, "do not persist perft results")
	hashMB     = flag.Int("hash", envInt("CHESSHASH_HASH_MB", 64), "transposition table size in MB")
	threads    = flag.Int("threads", 0, "perft workers, 0 for one per CPU")
	bookFile   = flag.String("book", os.Getenv("CHESSHASH_BOOK"), "Polyglot opening book for uci")
	verbose    = flag.Bool("v", false, "verbose database logging")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("chesshash: ")

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, args := "uci", []string(nil)
	if flag.NArg() > 0 {
		cmd, args = flag.Arg(0), flag.Args()[1:]
	}

	var err error
	switch cmd {
	case "uci":
		err = runUCI(ctx)
	case "hash":
		err = runHash(args)
	case "perft":
		err = runPerft(ctx, args)
	case "book":
		err = runBook(args)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Print(err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func envInt(name string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil {
		return v
	}
	return def
}

// openStore opens the perft result store unless disabled.
func openStore() (*storage.Store, error) {
	if *noDB {
		return nil, nil
	}
	dir := *dbDir
	if dir == "" {
		dir = os.Getenv("CHESSHASH_DB")
	}
	if dir == "" {
		var err error
		if dir, err = storage.DatabaseDir(); err != nil {
			return nil, err
		}
	}
	return storage.Open(storage.Options{Dir: dir, CacheEntries: 1 << 16, Verbose: *verbose})
}

// positionFlags are shared by the subcommands that take a position.
type positionFlags struct {
	variant *string
	fen     *string
}

func addPositionFlags(fs *flag.FlagSet) positionFlags {
	return positionFlags{
		variant: fs.String("variant", "standard", "variant: standard, threecheck or crazyhouse"),
		fen:     fs.String("fen", "", "position FEN (default: start position)"),
	}
}

// position builds the position and plays moves on it through the hashed
// wrapper.
func (pf positionFlags) position(moves []string) (*zobrist.Hashed[zobrist.Hash128, board.Move, *board.Position], error) {
	v, err := board.ParseVariant(*pf.variant)
	if err != nil {
		return nil, err
	}
	pos := board.NewVariantPosition(v)
	if *pf.fen != "" {
		if pos, err = board.ParseVariantFEN(v, *pf.fen); err != nil {
			return nil, err
		}
	}
	if err := pos.Validate(); err != nil {
		return nil, err
	}

	h := zobrist.Wrap[zobrist.Hash128, board.Move](pos)
	for _, s := range moves {
		m, err := board.ParseUCI(h.Position(), s)
		if err != nil {
			return nil, err
		}
		h.Play(m)
	}
	return h, nil
}

func runHash(args []string) error {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	pf := addPositionFlags(fs)
	fs.Parse(args)

	h, err := pf.position(fs.Args())
	if err != nil {
		return err
	}
	pos := h.Position()
	fp := h.Fingerprint()

	fmt.Printf("fen     %s\n", pos.FEN())
	fmt.Printf("hash128 %s\n", fp)
	fmt.Printf("hash64  %s\n", zobrist.Narrow[zobrist.Hash64](fp))
	fmt.Printf("hash32  %s\n", zobrist.Narrow[zobrist.Hash32](fp))
	fmt.Printf("hash16  %s\n", zobrist.Narrow[zobrist.Hash16](fp))
	fmt.Printf("hash8   %s\n", zobrist.Narrow[zobrist.Hash8](fp))
	return nil
}

func runPerft(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	pf := addPositionFlags(fs)
	depth := fs.Int("depth", 5, "perft depth")
	divide := fs.Bool("divide", false, "print per move counts")
	fs.Parse(args)

	h, err := pf.position(fs.Args())
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	table := tt.New(*hashMB)
	res, err := perft.Count(ctx, h.Position(), perft.Options{
		Depth:   *depth,
		Workers: *threads,
		Table:   table,
		Store:   store,
	})
	if err != nil {
		return err
	}

	if *divide {
		for _, b := range res.Divide {
			fmt.Printf("%s: %d\n", b.Move, b.Nodes)
		}
		fmt.Println()
	}
	fmt.Printf("Nodes: %d\n", res.Nodes)
	if res.Stored {
		fmt.Println("Source: store")
		return nil
	}
	fmt.Printf("Time: %v\n", res.Elapsed)
	fmt.Printf("NPS: %s\n", humanize.Comma(int64(res.NPS())))
	fmt.Printf("Table: %s\n", table)
	if store != nil {
		if st, err := store.Stats(); err == nil {
			fmt.Printf("Store: %s records, %s nodes\n", humanize.Comma(int64(st.Records)), humanize.Comma(int64(st.Nodes)))
		}
	}
	return nil
}

func runBook(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	pf := addPositionFlags(fs)
	file := fs.String("file", *bookFile, "Polyglot book file")
	fs.Parse(args)

	if *file == "" {
		return errors.New("book: no file given")
	}
	b, err := book.LoadPolyglot(*file)
	if err != nil {
		return err
	}
	h, err := pf.position(fs.Args())
	if err != nil {
		return err
	}

	key := zobrist.Narrow[zobrist.Hash64](h.Fingerprint())
	fmt.Printf("book    %s positions\n", humanize.Comma(int64(b.Size())))
	fmt.Printf("key     %s\n", key)
	entries := b.ProbeKey(h.Position(), key)
	if len(entries) == 0 {
		fmt.Println("no book moves")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-6s %d\n", e.Move, e.Weight)
	}
	return nil
}

func runUCI(ctx context.Context) error {
	var b *book.Book
	if *bookFile != "" {
		var err error
		if b, err = book.LoadPolyglot(*bookFile); err != nil {
			log.Printf("Warning: book not loaded: %v", err)
		} else {
			log.Printf("book loaded from %s (%s positions)", *bookFile, humanize.Comma(int64(b.Size())))
		}
	}

	store, err := openStore()
	if err != nil {
		log.Printf("Warning: perft store not opened: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	protocol := uci.New(uci.Config{HashMB: *hashMB, Threads: *threads, Book: b, Store: store})
	return protocol.Run(ctx, os.Stdin, os.Stdout)
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: chesshash [flags] uci|hash|perft|book [args]\n\n")
		flag.PrintDefaults()
	}
}
