package accel

import (
	"math/rand"
	"testing"

	"github.com/kwcore/engine/math/lin"
)

type testPrimitive struct {
	id     int
	bounds Bounds
}

func (p *testPrimitive) Bounds() Bounds { return p.bounds }

func unitBoundsAt(x, y, z, extent float64) Bounds {
	return Bounds{
		Min: lin.V3{X: x - extent, Y: y - extent, Z: z - extent},
		Max: lin.V3{X: x + extent, Y: y + extent, Z: z + extent},
	}
}

// TestOctreeThousandInsertFiveHundredRemove is spec §8 scenario #4: extent
// 256, max depth 6, insert 1000 random-bounds primitives, query the full
// extent and expect all 1000 back, remove 500 at random and expect
// Count()==500.
func TestOctreeThousandInsertFiveHundredRemove(t *testing.T) {
	o := NewOctree([3]float64{0, 0, 0}, 256, 6)
	rng := rand.New(rand.NewSource(1))

	handles := make([]Handle, 1000)
	prims := make([]*testPrimitive, 1000)
	for i := 0; i < 1000; i++ {
		x := rng.Float64()*512 - 256
		y := rng.Float64()*512 - 256
		z := rng.Float64()*512 - 256
		p := &testPrimitive{id: i, bounds: unitBoundsAt(x, y, z, 1)}
		prims[i] = p
		handles[i] = o.Add(p)
	}
	if o.Count() != 1000 {
		t.Fatalf("Count() = %d, want 1000", o.Count())
	}

	full := Bounds{Min: lin.V3{X: -256, Y: -256, Z: -256}, Max: lin.V3{X: 256, Y: 256, Z: 256}}
	got := o.QueryAABB(full, nil)
	if len(got) != 1000 {
		t.Fatalf("QueryAABB(full) returned %d primitives, want 1000", len(got))
	}

	order := rng.Perm(1000)
	for _, i := range order[:500] {
		o.Remove(handles[i])
	}
	if o.Count() != 500 {
		t.Fatalf("Count() after removing 500 = %d, want 500", o.Count())
	}
}

func TestOctreeAddQueryRemoveRoundTrip(t *testing.T) {
	o := NewOctree([3]float64{0, 0, 0}, 16, 4)
	p := &testPrimitive{bounds: unitBoundsAt(3, 3, 3, 0.5)}
	h := o.Add(p)
	if o.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", o.Count())
	}

	region := Bounds{Min: lin.V3{X: 0, Y: 0, Z: 0}, Max: lin.V3{X: 8, Y: 8, Z: 8}}
	got := o.QueryAABB(region, nil)
	if len(got) != 1 || got[0] != p {
		t.Fatalf("QueryAABB = %v, want [p]", got)
	}

	outside := Bounds{Min: lin.V3{X: -8, Y: -8, Z: -8}, Max: lin.V3{X: -1, Y: -1, Z: -1}}
	if got := o.QueryAABB(outside, nil); len(got) != 0 {
		t.Fatalf("QueryAABB(outside) = %v, want empty", got)
	}

	o.Remove(h)
	if o.Count() != 0 {
		t.Fatalf("Count() after Remove = %d, want 0", o.Count())
	}
}

func TestOctreeUpdateMovesEntryAcrossCells(t *testing.T) {
	o := NewOctree([3]float64{0, 0, 0}, 16, 4)
	p := &testPrimitive{bounds: unitBoundsAt(-5, -5, -5, 0.5)}
	h := o.Add(p)

	o.Update(h, unitBoundsAt(5, 5, 5, 0.5))

	near := Bounds{Min: lin.V3{X: 0, Y: 0, Z: 0}, Max: lin.V3{X: 16, Y: 16, Z: 16}}
	got := o.QueryAABB(near, nil)
	if len(got) != 1 || got[0] != p {
		t.Fatalf("QueryAABB after Update = %v, want [p] near the new location", got)
	}
	far := Bounds{Min: lin.V3{X: -16, Y: -16, Z: -16}, Max: lin.V3{X: 0, Y: 0, Z: 0}}
	if got := o.QueryAABB(far, nil); len(got) != 0 {
		t.Fatalf("QueryAABB at old location = %v, want empty after Update moved it", got)
	}

	if o.Count() != 1 {
		t.Fatalf("Count() after Update = %d, want 1 (Update must not change population)", o.Count())
	}
}

func TestOctreeQueryFrustumFiltersByPlane(t *testing.T) {
	o := NewOctree([3]float64{0, 0, 0}, 16, 4)
	inside := &testPrimitive{bounds: unitBoundsAt(1, 0, 0, 0.5)}
	outside := &testPrimitive{bounds: unitBoundsAt(-10, 0, 0, 0.5)}
	o.Add(inside)
	o.Add(outside)

	f := Frustum{Planes: [6]Plane{
		{Normal: lin.V3{X: 1}, D: 0}, // keep only x >= 0.
		{Normal: lin.V3{X: -1}, D: 1000},
		{Normal: lin.V3{Y: 1}, D: 1000},
		{Normal: lin.V3{Y: -1}, D: 1000},
		{Normal: lin.V3{Z: 1}, D: 1000},
		{Normal: lin.V3{Z: -1}, D: 1000},
	}}
	got := o.QueryFrustum(f, nil)
	if len(got) != 1 || got[0] != inside {
		t.Fatalf("QueryFrustum = %v, want [inside]", got)
	}
}
