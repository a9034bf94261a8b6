// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/lgbarn/mailbox-chess/internal/config"
	"github.com/lgbarn/mailbox-chess/internal/errors"
)

var (
	// Enumeration options
	depth   = flag.Int("depth", 4, "Number of plies to enumerate")
	fen     = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	divide  = flag.Bool("divide", false, "Report the node count below each root move")
	workers = flag.Int("workers", 1, "Number of goroutines spread over the root moves")
	hash    = flag.Int("hash", 0, "Cache subtree counts in a table of N entries (0 = off)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	san        = flag.Bool("san", false, "Show short algebraic notation next to divide lines")
	showBoard  = flag.Bool("board", false, "Print the starting position and its legal moves")
	noTiming   = flag.Bool("notime", false, "Don't report elapsed time")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=per root move")
	quiet     = flag.Bool("s", false, "Silent mode: no diagnostics")

	// Misc
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
// A single positional argument overrides -depth.
func applyFlags(cfg *config.Config, args []string) error {
	applyPerftFlags(cfg)
	applyCacheFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile

	return applyPositionalArgs(cfg, args)
}

// applyPerftFlags configures the enumeration.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	if *fen != "" {
		cfg.Perft.FEN = *fen
	}
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
}

// applyCacheFlags configures the node-count cache.
func applyCacheFlags(cfg *config.Config) {
	cfg.Cache.Enabled = *hash > 0
	if cfg.Cache.Enabled {
		cfg.Cache.Capacity = *hash
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ShowNotation = *san
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowTiming = !*noTiming
}

// applyPositionalArgs accepts the depth as a bare argument.
func applyPositionalArgs(cfg *config.Config, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("depth argument %q is not a number: %w", args[0], errors.ErrInvalidConfig)
		}
		cfg.Perft.Depth = n
		return nil
	default:
		return fmt.Errorf("expected at most one argument, got %d: %w", len(args), errors.ErrInvalidConfig)
	}
}
