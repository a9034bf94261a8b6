// perft counts the legal move paths of a chess position to a fixed depth.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/config"
	"github.com/lgbarn/mailbox-chess/internal/engine"
	"github.com/lgbarn/mailbox-chess/internal/errors"
	"github.com/lgbarn/mailbox-chess/internal/hashing"
	"github.com/lgbarn/mailbox-chess/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, cfg)
	if closeErr := closeFiles(cfg); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// closeFiles closes the output and log files opened from flags. Standard
// streams and other writers are left alone.
func closeFiles(cfg *config.Config) error {
	var firstErr error
	for _, w := range []io.Writer{cfg.OutputFile, cfg.LogFile} {
		f, ok := w.(*os.File)
		if !ok || f == os.Stdout || f == os.Stderr {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "close "+f.Name())
		}
	}
	return firstErr
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}
	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// logf writes a diagnostic line when the verbosity reaches level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

// run enumerates the configured position and writes the report.
func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	board, err := engine.NewBoardFromFEN(cfg.Perft.FEN)
	if err != nil {
		return errors.Wrap(err, "starting position")
	}
	report, err := newReport(board, cfg)
	if err != nil {
		return err
	}

	var cache engine.NodeCache
	var table *hashing.ThreadSafePerftTable
	if cfg.Cache.Enabled {
		table = hashing.NewThreadSafePerftTable(cfg.Cache.Capacity)
		cache = table
	}

	logf(cfg, 1, "perft %d of %s with %d worker(s)\n", cfg.Perft.Depth, cfg.Perft.FEN, cfg.Perft.Workers)

	start := time.Now()
	if err := enumerate(ctx, board, cfg, cache, report); err != nil {
		return err
	}
	report.Elapsed = time.Since(start)

	if table != nil {
		report.CacheEnabled = true
		report.CacheHits, report.CacheMisses = table.Stats()
		report.CacheEntries = table.Len()
	}
	for _, e := range report.Divide {
		logf(cfg, 2, "  %s: %d\n", e.UCI, e.Nodes)
	}
	logf(cfg, 1, "%d nodes in %s\n", report.Nodes, report.Elapsed)

	if !cfg.Perft.Divide {
		report.Divide = nil
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	if err := writer.WriteReport(report); err != nil {
		return errors.Wrap(err, "write report")
	}
	return writer.Close()
}

// newReport fills the parts of the report that describe the starting position.
func newReport(board *chess.Board, cfg *config.Config) (*output.Report, error) {
	status, err := engine.Status(board)
	if err != nil {
		return nil, err
	}
	report := &output.Report{
		FEN:     engine.BoardToFEN(board),
		Depth:   cfg.Perft.Depth,
		Status:  status,
		Workers: cfg.Perft.Workers,
	}
	if cfg.Output.ShowBoard {
		moves, err := engine.LegalMoves(board)
		if err != nil {
			return nil, err
		}
		report.Board = board.Clone()
		report.Moves = moves.Notations(board)
	}
	return report, nil
}

// enumerate counts the nodes, splitting by root move when a divide is
// requested, when root moves run in parallel or when progress is logged.
func enumerate(ctx context.Context, board *chess.Board, cfg *config.Config, cache engine.NodeCache, report *output.Report) error {
	perft := cfg.Perft
	if perft.Depth == 0 {
		report.Nodes = 1
		return nil
	}

	var entries []engine.DivideEntry
	var err error
	switch {
	case perft.Parallel():
		entries, err = engine.DivideParallel(ctx, board, perft.Depth, perft.Workers, cache)
	case perft.Divide || cfg.Verbosity >= 2:
		entries, err = engine.DivideCached(board, perft.Depth, cache)
	default:
		report.Nodes, err = engine.PerftCached(board, perft.Depth, cache)
		return err
	}
	if err != nil {
		return err
	}
	report.Divide = entries
	report.Nodes = engine.SumNodes(entries)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options] [depth]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move paths of a chess position to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  perft 5\n")
	fmt.Fprintf(os.Stderr, "  perft -divide -san -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\" 3\n")
	fmt.Fprintf(os.Stderr, "  perft -workers 8 -hash 1000000 -json 6\n")
}
