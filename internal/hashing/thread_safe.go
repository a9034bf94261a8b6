package hashing

import "sync"

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.Mutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the cached node count of a position at a given depth.
// It takes the write lock because lookups update the hit counters.
func (t *ThreadSafePerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records a node count.
func (t *ThreadSafePerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}

// Stats returns the lookup hit and miss counts.
func (t *ThreadSafePerftTable) Stats() (hits, misses int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Stats()
}
