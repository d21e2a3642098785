// Package accel implements the spatial acceleration structures described in
// spec §4.3: an octree that buckets primitives by axis-aligned bounding box,
// and a linear fallback that just scans a flat slice. Both satisfy the same
// Structure contract so a scene can swap one for the other without touching
// callers.
package accel

import "github.com/kwcore/engine/math/lin"

// Bounds is an axis-aligned bounding box in world space.
type Bounds struct {
	Min lin.V3
	Max lin.V3
}

// Center returns the midpoint of b.
func (b Bounds) Center() lin.V3 {
	return lin.V3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Extent returns the half-widths of b along each axis.
func (b Bounds) Extent() lin.V3 {
	return lin.V3{
		X: (b.Max.X - b.Min.X) / 2,
		Y: (b.Max.Y - b.Min.Y) / 2,
		Z: (b.Max.Z - b.Min.Z) / 2,
	}
}

// Contains reports whether b fully contains o.
func (b Bounds) Contains(o Bounds) bool {
	return o.Min.X >= b.Min.X && o.Min.Y >= b.Min.Y && o.Min.Z >= b.Min.Z &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y && o.Max.Z <= b.Max.Z
}

// Intersects reports whether b and o overlap on every axis.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: lin.V3{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y), Z: min(b.Min.Z, o.Min.Z)},
		Max: lin.V3{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y), Z: max(b.Max.Z, o.Max.Z)},
	}
}

// Plane is one of the six half-spaces of a view frustum, expressed in
// point-normal form: a point p is inside the plane when p.Dot(Normal)+D >= 0.
type Plane struct {
	Normal lin.V3
	D      float64
}

// Frustum is an ordered set of clip planes. A Bounds is inside the frustum
// when it is not fully outside any single plane.
type Frustum struct {
	Planes [6]Plane
}

// Intersects reports whether b is at least partially inside f, using the
// standard box-vs-plane "most positive corner" test per plane.
func (f Frustum) Intersects(b Bounds) bool {
	for _, p := range f.Planes {
		px := b.Min.X
		if p.Normal.X >= 0 {
			px = b.Max.X
		}
		py := b.Min.Y
		if p.Normal.Y >= 0 {
			py = b.Max.Y
		}
		pz := b.Min.Z
		if p.Normal.Z >= 0 {
			pz = b.Max.Z
		}
		if p.Normal.X*px+p.Normal.Y*py+p.Normal.Z*pz+p.D < 0 {
			return false
		}
	}
	return true
}

// Primitive is the identity a Structure stores: anything that can report its
// own current bounds. AccelerationStructurePrimitive (package scene) is the
// concrete implementation; Structure itself only ever sees this interface.
type Primitive interface {
	Bounds() Bounds
}

// Handle is the opaque back-pointer a Structure hands back from Add, which
// the owning primitive stores and passes to Update/Remove. Its concrete type
// is private to each Structure implementation.
type Handle interface{}

// Structure is satisfied by both Octree and Linear (spec §4.3's "linear O(n)
// variant"). Add/Remove/Update take exclusive locks; Query takes a shared
// lock, per spec §5.
type Structure interface {
	// Add inserts p at its current bounds and returns the handle p must
	// keep and pass back to Update/Remove.
	Add(p Primitive) Handle
	// Remove evicts p, identified by the handle Add returned for it.
	Remove(h Handle)
	// Update is called by AccelerationStructurePrimitive.onGlobalTransformUpdated
	// before the primitive's own cached bounds are overwritten with
	// newBounds, per spec §4.1's "notified before new bounds assigned"
	// invariant.
	Update(h Handle, newBounds Bounds)
	// QueryAABB appends every stored primitive whose bounds intersect
	// region to out and returns the extended slice.
	QueryAABB(region Bounds, out []Primitive) []Primitive
	// QueryFrustum appends every stored primitive at least partially
	// inside f to out and returns the extended slice.
	QueryFrustum(f Frustum, out []Primitive) []Primitive
}
