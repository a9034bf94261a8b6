// Package worker spreads root-move enumeration over a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

// WorkItem is one root move to enumerate. Board is owned by the worker that
// receives the item; it must not be shared with other items.
type WorkItem struct {
	Board  *chess.Board
	Action chess.Action
	Depth  int // Remaining depth below the root move
	Index  int // Position of the root move in the generated list
}

// ProcessResult is the outcome of one WorkItem.
type ProcessResult struct {
	Index  int
	Action chess.Action
	Nodes  uint64
	Err    error
}

// ProcessFunc enumerates a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines.
type Pool struct {
	ctx     context.Context
	workers int
	buffer  int
	process ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	stopped atomic.Bool
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// WithContext binds the pool to ctx: once ctx is done, queued items are
// skipped and Submit stops blocking.
func WithContext(ctx context.Context) PoolOption {
	return func(p *Pool) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewPool creates a pool running process. Defaults: one worker, a buffer of
// ten items, context.Background.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		ctx:     context.Background(),
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for item := range p.items {
		if p.halted() {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.process(item)
	}
}

func (p *Pool) halted() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Submit queues an item, blocking while the buffer is full. It returns false
// without queueing once the pool is stopped or its context is done.
func (p *Pool) Submit(item WorkItem) bool {
	if p.halted() {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called or the context is done.
func (p *Pool) Stopped() bool {
	return p.halted()
}

// Skipped returns how many queued items were dropped without processing.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of processed items, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
