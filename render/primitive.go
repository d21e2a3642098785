package render

import (
	"github.com/kwcore/engine/accel"
	"github.com/kwcore/engine/anim"
	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/particle"
	"github.com/kwcore/engine/scene"
)

// Kind distinguishes the four renderable primitive shapes spec §4 lists:
// static geometry, a skinned+animated mesh, a particle system, and a
// "motion geometry" primitive driven by a blend tree's output pose rather
// than a single clip.
type Kind int

const (
	KindGeometry Kind = iota
	KindAnimated
	KindParticle
	KindMotionGeometry
)

// Primitive is a render-side scene member: an AccelerationStructurePrimitive
// (so it participates in octree queries) plus exactly one payload matching
// its Kind. Fields for kinds other than the active one are nil.
type Primitive struct {
	scene.AccelerationStructurePrimitive
	Kind Kind

	Geometry *format.Geometry // KindGeometry, KindAnimated, KindMotionGeometry.
	Material *Material

	Pose  *anim.SkeletonPose // KindAnimated, KindMotionGeometry.
	Graph *anim.MotionGraph  // KindMotionGeometry.

	Particles *particle.Primitive // KindParticle.
}

// ModelBounds implements scene.BoundsSource. Geometry primitives use the
// decoded file's AABB; a KindParticle primitive defers to
// particle.Primitive.ModelBounds, its descriptor's max bounds.
func (p *Primitive) ModelBounds() accel.Bounds {
	if p.Kind == KindParticle && p.Particles != nil {
		return p.Particles.ModelBounds()
	}
	if p.Geometry != nil {
		return p.Geometry.Bounds
	}
	return accel.Bounds{}
}

// NewGeometryPrimitive returns a KindGeometry Primitive registered with
// host, rendering geometry with material.
func NewGeometryPrimitive(geometry *format.Geometry, material *Material, host accel.Structure) *Primitive {
	p := &Primitive{Kind: KindGeometry, Geometry: geometry, Material: material}
	p.AccelerationStructurePrimitive = *scene.NewAccelerationStructurePrimitive(p, host)
	return p
}

// NewAnimatedPrimitive returns a KindAnimated Primitive: geometry skinned by
// pose, registered with host.
func NewAnimatedPrimitive(geometry *format.Geometry, material *Material, pose *anim.SkeletonPose, host accel.Structure) *Primitive {
	p := &Primitive{Kind: KindAnimated, Geometry: geometry, Material: material, Pose: pose}
	p.AccelerationStructurePrimitive = *scene.NewAccelerationStructurePrimitive(p, host)
	return p
}

// NewParticlePrimitive returns a KindParticle Primitive backed by sys,
// registered with host.
func NewParticlePrimitive(sys *particle.Primitive, host accel.Structure) *Primitive {
	p := &Primitive{Kind: KindParticle, Particles: sys}
	p.AccelerationStructurePrimitive = *scene.NewAccelerationStructurePrimitive(p, host)
	return p
}
