package accel

import "sync"

// Linear is the "contiguous sequence of pointers, O(n) queries" variant
// named in spec §4.4, used where spatial pruning isn't worth the
// maintenance cost (a scene with a handful of lights, say).
type Linear struct {
	mu      sync.RWMutex
	entries []linearEntry
}

type linearEntry struct {
	p Primitive
}

// linearHandle is Linear's concrete Handle: the primitive itself. Indices
// shift on removal, so Remove finds the entry by an identity scan.
type linearHandle struct {
	p Primitive
}

// NewLinear returns an empty Linear structure.
func NewLinear() *Linear {
	return &Linear{}
}

func (l *Linear) Add(p Primitive) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, linearEntry{p: p})
	return linearHandle{p: p}
}

func (l *Linear) Remove(h Handle) {
	lh := h.(linearHandle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.p == lh.p {
			last := len(l.entries) - 1
			l.entries[i] = l.entries[last]
			l.entries = l.entries[:last]
			return
		}
	}
}

// Update is a no-op for Linear: every query rereads Primitive.Bounds()
// directly, so there is nothing cached to refresh.
func (l *Linear) Update(h Handle, newBounds Bounds) {}

func (l *Linear) QueryAABB(region Bounds, out []Primitive) []Primitive {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if region.Intersects(e.p.Bounds()) {
			out = append(out, e.p)
		}
	}
	return out
}

func (l *Linear) QueryFrustum(f Frustum, out []Primitive) []Primitive {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if f.Intersects(e.p.Bounds()) {
			out = append(out, e.p)
		}
	}
	return out
}

// Count returns the number of primitives currently stored.
func (l *Linear) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
