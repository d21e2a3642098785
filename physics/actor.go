package physics

import "github.com/kwcore/engine/scene"

// Shape is the opaque handle an external physics engine returns for a
// cooked collision shape (heightfield, convex hull, primitive geometry...).
// UserData lets the owning RigidActor re-tag a shape to itself after an
// ownership transfer (AdoptShape), so collision callbacks can recover the
// owning entity from the shape alone.
type Shape struct {
	UserData any
}

// RigidActor bridges a scene-graph Primitive to a physics Scene: its
// transform is written by the physics engine's simulation step and read
// back into the scene graph, or the reverse for kinematic actors (spec §9:
// "rigid-actor and controller primitives bridging scene graph and physics
// scene"). The held shape is a Ref so its lifetime follows the physics
// engine's own counted-reference protocol rather than Go's GC.
type RigidActor struct {
	*scene.Primitive
	shape Ref[*Shape]
}

// NewRigidActor returns a RigidActor at the identity transform holding
// shape. shape may be the zero Ref for an actor whose shape is attached
// later (e.g. a heightfield actor awaiting its asset, spec §4.7).
func NewRigidActor(shape Ref[*Shape]) *RigidActor {
	a := &RigidActor{Primitive: scene.NewPrimitive(), shape: shape}
	a.tagShape()
	return a
}

// Shape returns the actor's current shape, or nil if none is attached.
func (a *RigidActor) Shape() *Shape { return a.shape.Get() }

// AdoptShape implements spec §9 open question #2 (the C++ move constructor
// that referenced a sibling class's private m_shape): a transferring into
// a takes the shape reference outright — no new acquire — and re-tags the
// shape's UserData to a. source is left with no shape and must not be used
// as an actor afterward.
func (a *RigidActor) AdoptShape(source *RigidActor) {
	a.shape.Release()
	a.shape = source.shape.take()
	a.tagShape()
}

// SetShape releases any previously held shape and takes ownership of ref.
func (a *RigidActor) SetShape(ref Ref[*Shape]) {
	a.shape.Release()
	a.shape = ref
	a.tagShape()
}

// Release drops the actor's shape reference. Call before removing the
// actor from its physics scene.
func (a *RigidActor) Release() { a.shape.Release() }

func (a *RigidActor) tagShape() {
	if s := a.shape.Get(); s != nil {
		s.UserData = a
	}
}

// Controller is the character-controller contract bridging a capsule-style
// kinematic actor and a physics scene's collide-and-slide move, separate
// from RigidActor since controllers are driven by desired-displacement
// input each frame rather than by the simulation's own integration.
type Controller interface {
	// Move attempts to displace the controller by disp over elapsed seconds,
	// sliding along contacts, and reports the displacement actually applied.
	Move(disp [3]float64, elapsed float64) (applied [3]float64)
	IsGrounded() bool
	Position() [3]float64
}
