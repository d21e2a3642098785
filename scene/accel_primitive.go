package scene

import (
	"github.com/kwcore/engine/accel"
	"github.com/kwcore/engine/math/lin"
)

// BoundsSource is implemented by whatever owns an
// AccelerationStructurePrimitive's actual geometry (a geometry primitive, a
// particle-system primitive) and knows how to compute model-space bounds
// from its own data. AccelerationStructurePrimitive combines that with the
// current global transform to get world-space bounds.
type BoundsSource interface {
	// ModelBounds returns bounds in the primitive's own local space.
	ModelBounds() accel.Bounds
}

// AccelerationStructurePrimitive is a Primitive that additionally maintains
// a world-space AABB and an opaque back-pointer into a host accel.Structure
// (spec §4.1/§4.3). Every time its global transform changes, it recomputes
// bounds and calls host.Update *before* the new bounds are assigned to
// itself, matching the ordering invariant spec §4.1 calls out explicitly.
type AccelerationStructurePrimitive struct {
	Primitive
	source accel.Primitive
	owner  BoundsSource
	host   accel.Structure
	handle accel.Handle
	bounds accel.Bounds
}

// accelAdapter gives the host Structure a Bounds() method backed by this
// primitive's own cached world-space bounds, without the Structure needing
// to know anything about scene.Transform.
type accelAdapter struct {
	p *AccelerationStructurePrimitive
}

func (a accelAdapter) Bounds() accel.Bounds { return a.p.bounds }

// NewAccelerationStructurePrimitive returns a primitive whose bounds are
// computed from owner and tracked in host. The primitive registers itself
// with host immediately, at its current (identity) transform.
func NewAccelerationStructurePrimitive(owner BoundsSource, host accel.Structure) *AccelerationStructurePrimitive {
	p := &AccelerationStructurePrimitive{Primitive: *NewPrimitive(), owner: owner, host: host}
	p.source = accelAdapter{p: p}
	p.bounds = transformBounds(owner.ModelBounds(), p.global)
	p.handle = host.Add(p.source)
	return p
}

// Bounds returns p's current world-space bounds.
func (p *AccelerationStructurePrimitive) Bounds() accel.Bounds { return p.bounds }

// SetLocalTransform overrides the promoted Primitive version so it routes
// through this type's own refreshGlobal override rather than Primitive's.
func (p *AccelerationStructurePrimitive) SetLocalTransform(t Transform) {
	p.local = t
	parentGlobal := Identity()
	if p.parent != nil {
		parentGlobal = p.parent.GlobalTransform()
	}
	p.refreshGlobal(parentGlobal)
}

// SetGlobalTransform overrides the promoted Primitive version for the same
// reason as SetLocalTransform above.
func (p *AccelerationStructurePrimitive) SetGlobalTransform(t Transform) {
	parentGlobal := Identity()
	if p.parent != nil {
		parentGlobal = p.parent.GlobalTransform()
	}
	p.local = Decompose(t, parentGlobal)
	newBounds := transformBounds(p.owner.ModelBounds(), t)
	p.host.Update(p.handle, newBounds)
	p.bounds = newBounds
	p.global = t
}

// refreshGlobal is AccelerationStructurePrimitive's override of the virtual
// global_transform_updated hook: recompute bounds, tell the host structure,
// then commit.
func (p *AccelerationStructurePrimitive) refreshGlobal(parentGlobal Transform) {
	p.Primitive.refreshGlobal(parentGlobal)
	newBounds := transformBounds(p.owner.ModelBounds(), p.global)
	p.host.Update(p.handle, newBounds) // notified before the new bounds are assigned, per spec §4.1.
	p.bounds = newBounds
}

// Release evicts p from its host structure. Called when the owning resource
// is unloaded or the resource manager evicts it.
func (p *AccelerationStructurePrimitive) Release() {
	p.host.Remove(p.handle)
}

// transformBounds maps model-space bounds through t by transforming all
// eight corners and taking their axis-aligned extent. This is exact
// regardless of rotation, unlike Transform composition of non-uniform
// scales.
func transformBounds(b accel.Bounds, t Transform) accel.Bounds {
	corners := [8][3]float64{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	first := t.Apply(vec3(corners[0]))
	out := accel.Bounds{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := t.Apply(vec3(c))
		out.Min.X, out.Max.X = min(out.Min.X, p.X), max(out.Max.X, p.X)
		out.Min.Y, out.Max.Y = min(out.Min.Y, p.Y), max(out.Max.Y, p.Y)
		out.Min.Z, out.Max.Z = min(out.Min.Z, p.Z), max(out.Max.Z, p.Z)
	}
	return out
}

func vec3(c [3]float64) lin.V3 { return lin.V3{X: c[0], Y: c[1], Z: c[2]} }
