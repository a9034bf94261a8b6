package hashing

// tableKey identifies a cached subtree: the position and the remaining depth.
type tableKey struct {
	hash  uint64
	depth int
}

// PerftTable caches node counts of already enumerated subtrees.
type PerftTable struct {
	entries map[tableKey]uint64
	// maxCapacity limits stored entries; 0 means unlimited.
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftTable creates an empty table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached node count of a position at a given depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a node count. It is silently dropped once the table is full.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[tableKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Stats returns the lookup hit and miss counts.
func (t *PerftTable) Stats() (hits, misses int) {
	return t.hits, t.misses
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits, t.misses = 0, 0
}
