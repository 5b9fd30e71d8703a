package cluster

// Memo skips recomputation while the container bounds stay the same.
//
// The key is (ContainerWidth, ContainerHeight) only. Any other input change
// (item count, spacing, alignment) needs an explicit Invalidate. A Memo is
// owned by one caller and is not safe for concurrent use.
type Memo struct {
	valid         bool
	width, height float64
	last          Result

	hits, misses int
}

// Compute returns the cached result when the bounds are unchanged, and
// computes a fresh one otherwise. The boolean is true on recomputation.
func (m *Memo) Compute(cfg LayoutConfig) (Result, bool) {
	if m.valid && m.width == cfg.ContainerWidth && m.height == cfg.ContainerHeight {
		m.hits++
		return m.last, false
	}
	m.last = Compute(cfg)
	m.width, m.height = cfg.ContainerWidth, cfg.ContainerHeight
	m.valid = true
	m.misses++
	return m.last, true
}

// Invalidate forces the next Compute to recompute.
func (m *Memo) Invalidate() {
	m.valid = false
}

// Stats returns how many calls were served from the cache and how many
// recomputed.
func (m *Memo) Stats() (hits, misses int) {
	return m.hits, m.misses
}
