package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/mailbox-chess/internal/engine"
	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// MaxDepth bounds the requested depth; counts beyond it overflow uint64
// long before they finish.
const MaxDepth = 15

// PerftConfig holds settings for the enumeration itself.
type PerftConfig struct {
	// Depth is the number of plies to enumerate
	Depth int

	// FEN is the starting position
	FEN string

	// Divide reports the node count below each root move
	Divide bool

	// Workers is the number of goroutines spread over the root moves;
	// 1 runs serially
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		FEN:     engine.InitialFEN,
		Workers: 1,
	}
}

// Parallel reports whether more than one worker was requested.
func (p *PerftConfig) Parallel() bool {
	return p.Workers > 1
}

// Validate checks that the enumeration settings are usable.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if limit := 4 * runtime.NumCPU(); p.Workers > limit {
		return fmt.Errorf("workers %d exceeds %d: %w", p.Workers, limit, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth < 1 {
		return fmt.Errorf("divide needs depth >= 1: %w", errors.ErrInvalidConfig)
	}
	if p.FEN == "" {
		return fmt.Errorf("empty starting position: %w", errors.ErrInvalidConfig)
	}
	return nil
}
