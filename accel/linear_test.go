package accel

import (
	"testing"

	"github.com/kwcore/engine/math/lin"
)

func TestLinearAddQueryRemoveRoundTrip(t *testing.T) {
	l := NewLinear()
	a := &testPrimitive{bounds: unitBoundsAt(0, 0, 0, 0.5)}
	b := &testPrimitive{bounds: unitBoundsAt(100, 100, 100, 0.5)}
	ha := l.Add(a)
	l.Add(b)
	if l.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", l.Count())
	}

	region := Bounds{Min: lin.V3{X: -1, Y: -1, Z: -1}, Max: lin.V3{X: 1, Y: 1, Z: 1}}
	got := l.QueryAABB(region, nil)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("QueryAABB = %v, want [a]", got)
	}

	l.Remove(ha)
	if l.Count() != 1 {
		t.Fatalf("Count() after Remove = %d, want 1", l.Count())
	}
	if got := l.QueryAABB(region, nil); len(got) != 0 {
		t.Fatalf("QueryAABB after removing a = %v, want empty", got)
	}
}

func TestLinearUpdateIsNoopAndQueriesLiveBounds(t *testing.T) {
	l := NewLinear()
	p := &testPrimitive{bounds: unitBoundsAt(0, 0, 0, 0.5)}
	h := l.Add(p)

	// Mutate the primitive's own bounds directly rather than through
	// Update — Linear has nothing cached, so the query must see the change.
	p.bounds = unitBoundsAt(50, 50, 50, 0.5)
	l.Update(h, p.bounds) // documented no-op; must not panic or desync Count.

	if l.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", l.Count())
	}
	region := Bounds{Min: lin.V3{X: 49, Y: 49, Z: 49}, Max: lin.V3{X: 51, Y: 51, Z: 51}}
	got := l.QueryAABB(region, nil)
	if len(got) != 1 || got[0] != p {
		t.Fatalf("QueryAABB at moved location = %v, want [p]", got)
	}
}
