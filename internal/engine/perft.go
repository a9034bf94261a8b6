package engine

import (
	"context"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/errors"
	"github.com/lgbarn/mailbox-chess/internal/hashing"
	"github.com/lgbarn/mailbox-chess/internal/worker"
)

// NodeCache stores node counts of enumerated subtrees keyed by position hash
// and remaining depth.
type NodeCache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move     chess.Action
	UCI      string
	Notation string
	Nodes    uint64
}

// Perft counts the distinct legal move paths of exactly depth plies.
// Depth 0 counts the current position once. Every applied action is undone,
// so the board is returned in the state it was given.
func Perft(b *chess.Board, depth int) (uint64, error) {
	return perft(b, depth, nil)
}

// PerftCached is Perft with subtree counts shared through cache.
// A nil cache disables caching.
func PerftCached(b *chess.Board, depth int, cache NodeCache) (uint64, error) {
	return perft(b, depth, cache)
}

func perft(b *chess.Board, depth int, cache NodeCache) (uint64, error) {
	if depth < 0 {
		return 0, errors.Wrapf(errors.ErrInvalidConfig, "negative depth %d", depth)
	}
	if depth == 0 {
		return 1, nil
	}

	var key uint64
	if cache != nil && depth > 1 {
		key = hashing.Hash(b)
		if nodes, ok := cache.Lookup(key, depth); ok {
			return nodes, nil
		}
	}

	moves, err := LegalMoves(b)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		n, err := perftChild(b, m, depth-1, cache)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes, nil
}

// perftChild applies m, enumerates below it and undoes it.
func perftChild(b *chess.Board, m chess.Action, depth int, cache NodeCache) (uint64, error) {
	if err := b.Apply(m); err != nil {
		return 0, errors.Wrapf(err, "apply %s", m.UCI())
	}
	n, err := perft(b, depth, cache)
	if err != nil {
		return 0, err
	}
	if err := b.UndoLast(); err != nil {
		return 0, errors.Wrapf(err, "undo %s", m.UCI())
	}
	return n, nil
}

// Divide returns the node count below each root move, in generation order.
func Divide(b *chess.Board, depth int) ([]DivideEntry, error) {
	return divide(b, depth, nil)
}

// DivideCached is Divide with subtree counts shared through cache.
func DivideCached(b *chess.Board, depth int, cache NodeCache) ([]DivideEntry, error) {
	return divide(b, depth, cache)
}

func divide(b *chess.Board, depth int, cache NodeCache) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide needs depth >= 1, got %d", depth)
	}
	moves, err := LegalMoves(b)
	if err != nil {
		return nil, err
	}
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		n, err := perftChild(b, m, depth-1, cache)
		if err != nil {
			return nil, err
		}
		entries = append(entries, newDivideEntry(b, m, n))
	}
	return entries, nil
}

func newDivideEntry(b *chess.Board, m chess.Action, nodes uint64) DivideEntry {
	return DivideEntry{Move: m, UCI: m.UCI(), Notation: m.Notation(b), Nodes: nodes}
}

// DivideParallel is Divide with each root move enumerated on its own board
// clone by a pool of workers. Results keep generation order. A nil cache
// disables caching; a shared cache must be safe for concurrent use.
func DivideParallel(ctx context.Context, b *chess.Board, depth, workers int, cache NodeCache) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide needs depth >= 1, got %d", depth)
	}
	moves, err := LegalMoves(b)
	if err != nil {
		return nil, err
	}

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: b.Clone(), Action: m, Depth: depth - 1}
	}
	process := func(item worker.WorkItem) worker.ProcessResult {
		n, err := perftChild(item.Board, item.Action, item.Depth, cache)
		return worker.ProcessResult{Index: item.Index, Action: item.Action, Nodes: n, Err: err}
	}

	results, err := worker.Run(ctx, items, process,
		worker.WithWorkers(workers), worker.WithBufferSize(len(items)))
	if err != nil {
		return nil, err
	}
	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = newDivideEntry(b, r.Action, r.Nodes)
	}
	return entries, nil
}

// PerftParallel is Perft with the root moves spread over a pool of workers.
func PerftParallel(ctx context.Context, b *chess.Board, depth, workers int, cache NodeCache) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	entries, err := DivideParallel(ctx, b, depth, workers, cache)
	if err != nil {
		return 0, err
	}
	return SumNodes(entries), nil
}

// SumNodes adds up the node counts of divide entries.
func SumNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
