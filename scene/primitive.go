package scene

import "fmt"

// Node is the common surface of every scene-graph member: Primitive,
// ContainerPrimitive, and AccelerationStructurePrimitive all satisfy it.
// Containers store children as Node so the three kinds can be mixed freely,
// matching spec §3's "ordered sequence of child primitives".
type Node interface {
	Parent() *ContainerPrimitive
	LocalTransform() Transform
	GlobalTransform() Transform
	SetLocalTransform(t Transform)
	SetGlobalTransform(t Transform)

	setParent(c *ContainerPrimitive)
	// refreshGlobal recomputes this node's global transform from its own
	// local transform and the (already up to date) parent global passed
	// in, then runs the node's own onGlobalTransformUpdated hook. Each
	// concrete Node type implements its own refreshGlobal instead of
	// overriding a base-class method.
	refreshGlobal(parentGlobal Transform)
}

// Primitive is a leaf scene-graph node: it owns a local transform, derives
// a global transform, and holds a non-owning back-reference to its parent
// container (spec §3).
type Primitive struct {
	parent *ContainerPrimitive
	local  Transform
	global Transform
}

// NewPrimitive returns a Primitive at the identity transform with no parent.
func NewPrimitive() *Primitive {
	return &Primitive{local: Identity(), global: Identity()}
}

func (p *Primitive) Parent() *ContainerPrimitive    { return p.parent }
func (p *Primitive) LocalTransform() Transform      { return p.local }
func (p *Primitive) GlobalTransform() Transform     { return p.global }
func (p *Primitive) setParent(c *ContainerPrimitive) { p.parent = c }

// SetLocalTransform sets p's local transform and recomputes its global
// transform from it and the parent's (unchanged) global, per spec §4.1.
func (p *Primitive) SetLocalTransform(t Transform) {
	p.local = t
	parentGlobal := Identity()
	if p.parent != nil {
		parentGlobal = p.parent.GlobalTransform()
	}
	p.refreshGlobal(parentGlobal)
}

// SetGlobalTransform sets p's global transform directly and recomputes the
// local transform that reproduces it under the current parent, per spec
// §4.1's "symmetric" set_global_transform.
func (p *Primitive) SetGlobalTransform(t Transform) {
	parentGlobal := Identity()
	if p.parent != nil {
		parentGlobal = p.parent.GlobalTransform()
	}
	p.local = Decompose(t, parentGlobal)
	p.global = t
}

func (p *Primitive) refreshGlobal(parentGlobal Transform) {
	p.global = Compose(p.local, parentGlobal)
}

// Unlink detaches p from its parent container without requiring the parent
// to still consider p a valid child first. Spec §3: "a primitive removed
// from its container while destructing uses this link to unlink itself;
// parent outlives child by invariant" — so this is safe to call from a
// Primitive's teardown path even if the container is mid-destruction, as
// long as the container itself is still alive.
func (p *Primitive) Unlink() {
	if p.parent == nil {
		return
	}
	p.parent.RemoveChild(p)
}

// String renders a short diagnostic form, useful in the resource managers'
// logging since primitives have no other human identity of their own.
func (p *Primitive) String() string {
	return fmt.Sprintf("Primitive(loc=%.2f,%.2f,%.2f)", p.global.Loc.X, p.global.Loc.Y, p.global.Loc.Z)
}
