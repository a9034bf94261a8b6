// Package output formats enumeration reports as text or JSON.
package output

import (
	"time"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/engine"
)

// Report is the result of one enumeration run.
type Report struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Status  engine.GameStatus
	Divide  []engine.DivideEntry
	Elapsed time.Duration
	Workers int

	// Board is the starting position, rendered when a diagram is requested.
	Board *chess.Board
	// Moves are the root moves in short algebraic form.
	Moves []string

	CacheEnabled bool
	CacheHits    int
	CacheMisses  int
	CacheEntries int
}

// NodesPerSecond returns the enumeration speed, 0 when no time was measured.
func (r *Report) NodesPerSecond() uint64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(r.Nodes) / r.Elapsed.Seconds())
}

// HitRate returns the fraction of cache lookups that hit.
func (r *Report) HitRate() float64 {
	total := r.CacheHits + r.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(r.CacheHits) / float64(total)
}
