package accel

import (
	"sync"

	"github.com/kwcore/engine/math/lin"
)

// Octree implements spec §4.4's axis-aligned octree: a root cell (center,
// extent), lazily-created children, and per-node overflow storage for
// primitives that straddle a child boundary or have hit maxDepth.
type Octree struct {
	mu       sync.RWMutex
	maxDepth int
	root     *octNode
	count    int
}

type octNode struct {
	center   [3]float64
	extent   float64
	depth    int
	children [8]*octNode
	entries  []octEntry
}

type octEntry struct {
	p      Primitive
	bounds Bounds
}

// octHandle is Octree's concrete Handle: the node currently holding the
// primitive. Add returns a pointer to one of these, and Update mutates
// node in place when a primitive is reinserted elsewhere, so every copy of
// the Handle the caller is holding stays valid.
type octHandle struct {
	node *octNode
	p    Primitive
}

// NewOctree returns an empty octree covering [center-extent, center+extent]
// on every axis, subdividing up to maxDepth levels.
func NewOctree(center [3]float64, extent float64, maxDepth int) *Octree {
	return &Octree{
		maxDepth: maxDepth,
		root:     &octNode{center: center, extent: extent},
	}
}

func (o *Octree) Add(p Primitive) Handle {
	o.mu.Lock()
	defer o.mu.Unlock()
	node := o.insert(o.root, p.Bounds())
	node.entries = append(node.entries, octEntry{p: p, bounds: p.Bounds()})
	o.count++
	return &octHandle{node: node, p: p}
}

func (o *Octree) Remove(h Handle) {
	oh := h.(*octHandle)
	o.mu.Lock()
	defer o.mu.Unlock()
	if removeFromNode(oh.node, oh.p) {
		o.count--
	}
}

func removeFromNode(n *octNode, p Primitive) bool {
	for i, e := range n.entries {
		if e.p == p {
			last := len(n.entries) - 1
			n.entries[i] = n.entries[last]
			n.entries = n.entries[:last]
			return true
		}
	}
	return false
}

// Update implements spec §4.4's update rule: if newBounds still fits inside
// the entry's current node cell without straddling, just record the new
// bounds in place; otherwise remove and reinsert from the root.
func (o *Octree) Update(h Handle, newBounds Bounds) {
	oh := h.(*octHandle)
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, e := range oh.node.entries {
		if e.p == oh.p {
			if fitsWithoutStraddle(oh.node, newBounds) {
				oh.node.entries[i].bounds = newBounds
				return
			}
			last := len(oh.node.entries) - 1
			oh.node.entries[i] = oh.node.entries[last]
			oh.node.entries = oh.node.entries[:last]
			newNode := o.insert(o.root, newBounds)
			newNode.entries = append(newNode.entries, octEntry{p: oh.p, bounds: newBounds})
			oh.node = newNode // mutate in place: every copy of this Handle sees the move.
			return
		}
	}
}

func fitsWithoutStraddle(n *octNode, b Bounds) bool {
	cell := Bounds{
		Min: vmin(n.center, n.extent),
		Max: vmax(n.center, n.extent),
	}
	if !cell.Contains(b) {
		return false
	}
	return octantOf(n.center, b) >= 0
}

// insert descends from n, returning the deepest node that should own a
// primitive with the given bounds: the node straddles an axis of its own
// center, or maxDepth is reached, or the matching child doesn't exist yet
// and is created lazily.
func (o *Octree) insert(n *octNode, b Bounds) *octNode {
	for {
		if n.depth >= o.maxDepth {
			return n
		}
		oct := octantOf(n.center, b)
		if oct < 0 {
			return n // straddles an axis of this cell's center.
		}
		child := n.children[oct]
		if child == nil {
			child = newChild(n, oct)
			n.children[oct] = child
		}
		childCell := Bounds{Min: vmin(child.center, child.extent), Max: vmax(child.center, child.extent)}
		if !childCell.Contains(b) {
			return n // doesn't fully fit even the lazily-created child; store here.
		}
		n = child
	}
}

func newChild(parent *octNode, oct int) *octNode {
	half := parent.extent / 2
	center := parent.center
	if oct&1 != 0 {
		center[0] += half
	} else {
		center[0] -= half
	}
	if oct&2 != 0 {
		center[1] += half
	} else {
		center[1] -= half
	}
	if oct&4 != 0 {
		center[2] += half
	} else {
		center[2] -= half
	}
	return &octNode{center: center, extent: half, depth: parent.depth + 1}
}

// octantOf returns which of the 8 octants of a cell centered at center
// fully contains b, or -1 if b straddles center on any axis.
func octantOf(center [3]float64, b Bounds) int {
	oct := 0
	switch {
	case b.Min.X >= center[0]:
		oct |= 1
	case b.Max.X <= center[0]:
	default:
		return -1
	}
	switch {
	case b.Min.Y >= center[1]:
		oct |= 2
	case b.Max.Y <= center[1]:
	default:
		return -1
	}
	switch {
	case b.Min.Z >= center[2]:
		oct |= 4
	case b.Max.Z <= center[2]:
	default:
		return -1
	}
	return oct
}

func vmin(center [3]float64, extent float64) lin.V3 {
	return lin.V3{X: center[0] - extent, Y: center[1] - extent, Z: center[2] - extent}
}

func vmax(center [3]float64, extent float64) lin.V3 {
	return lin.V3{X: center[0] + extent, Y: center[1] + extent, Z: center[2] + extent}
}

func (o *Octree) QueryAABB(region Bounds, out []Primitive) []Primitive {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return queryAABB(o.root, region, out)
}

func queryAABB(n *octNode, region Bounds, out []Primitive) []Primitive {
	if n == nil {
		return out
	}
	cell := Bounds{Min: vmin(n.center, n.extent), Max: vmax(n.center, n.extent)}
	if !cell.Intersects(region) {
		return out
	}
	for _, e := range n.entries {
		if region.Intersects(e.bounds) {
			out = append(out, e.p)
		}
	}
	for _, c := range n.children {
		out = queryAABB(c, region, out)
	}
	return out
}

func (o *Octree) QueryFrustum(f Frustum, out []Primitive) []Primitive {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return queryFrustum(o.root, f, out)
}

func queryFrustum(n *octNode, f Frustum, out []Primitive) []Primitive {
	if n == nil {
		return out
	}
	cell := Bounds{Min: vmin(n.center, n.extent), Max: vmax(n.center, n.extent)}
	if !f.Intersects(cell) {
		return out
	}
	for _, e := range n.entries {
		if f.Intersects(e.bounds) {
			out = append(out, e.p)
		}
	}
	for _, c := range n.children {
		out = queryFrustum(c, f, out)
	}
	return out
}

// Count returns the number of primitives currently stored (successful Add
// minus successful Remove, per spec §8's get_count property).
func (o *Octree) Count() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.count
}
