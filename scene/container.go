package scene

import "fmt"

// ContainerPrimitive owns an ordered sequence of child nodes (spec §3):
// insertion order is preserved and duplicate children are forbidden. It is
// itself a Primitive, so containers nest.
type ContainerPrimitive struct {
	Primitive
	children []Node

	// onChildAdded/onChildRemoved are this container's own hooks, invoked
	// after the bubbled notification reaches it (spec §4.1: "calls
	// child_added(p) on this container and bubbles to ancestors"). A
	// Scene sets these on its root container to register new primitives
	// with its acceleration structure and physics scene.
	onChildAdded   func(Node)
	onChildRemoved func(Node)
}

// NewContainerPrimitive returns an empty container at the identity transform.
func NewContainerPrimitive() *ContainerPrimitive {
	return &ContainerPrimitive{Primitive: *NewPrimitive()}
}

// OnChildAdded registers f to run whenever a descendant is added anywhere
// under c, including through intermediate containers (spec §4.1 bubbling).
func (c *ContainerPrimitive) OnChildAdded(f func(Node)) { c.onChildAdded = f }

// OnChildRemoved registers f to run whenever a descendant is removed from
// anywhere under c.
func (c *ContainerPrimitive) OnChildRemoved(f func(Node)) { c.onChildRemoved = f }

// Children returns c's direct children in insertion order. The returned
// slice is owned by c and must not be mutated by the caller.
func (c *ContainerPrimitive) Children() []Node { return c.children }

// AddChild appends p to c's children. p must currently have no parent and
// must not already be a child of c (spec §4.1). p's global transform is
// recomputed from its own local transform and c's global transform, then
// the addition is announced to c and bubbled to every ancestor.
func (c *ContainerPrimitive) AddChild(p Node) error {
	if p.Parent() != nil {
		return fmt.Errorf("scene: AddChild: %v already has a parent", p)
	}
	for _, existing := range c.children {
		if existing == p {
			return fmt.Errorf("scene: AddChild: %v is already a child of this container", p)
		}
	}
	p.setParent(c)
	c.children = append(c.children, p)
	p.refreshGlobal(c.GlobalTransform())
	c.notifyChildAdded(p)
	return nil
}

// RemoveChild removes p from c's children by identity (unordered swap with
// the last element). child_removed fires before the unlink, per spec §4.1,
// so listeners still see p attached. p's transforms are left as they were
// at the moment of removal.
func (c *ContainerPrimitive) RemoveChild(p Node) {
	for i, existing := range c.children {
		if existing == p {
			c.notifyChildRemoved(p)
			last := len(c.children) - 1
			c.children[i] = c.children[last]
			c.children = c.children[:last]
			p.setParent(nil)
			return
		}
	}
}

func (c *ContainerPrimitive) notifyChildAdded(p Node) {
	if c.onChildAdded != nil {
		c.onChildAdded(p)
	}
	if c.parent != nil {
		c.parent.notifyChildAdded(p)
	}
}

func (c *ContainerPrimitive) notifyChildRemoved(p Node) {
	if c.onChildRemoved != nil {
		c.onChildRemoved(p)
	}
	if c.parent != nil {
		c.parent.notifyChildRemoved(p)
	}
}

// refreshGlobal recomputes c's own global transform from parentGlobal, then
// recurses into every child so the whole subtree stays consistent — this is
// ContainerPrimitive's override of the virtual global_transform_updated hook
// named in spec §4.1.
func (c *ContainerPrimitive) refreshGlobal(parentGlobal Transform) {
	c.Primitive.refreshGlobal(parentGlobal)
	childGlobal := c.GlobalTransform()
	for _, child := range c.children {
		child.refreshGlobal(childGlobal)
	}
}

// SetLocalTransform overrides Primitive.SetLocalTransform so container
// subtrees propagate through refreshGlobal's recursive override above
// rather than Primitive's leaf-only version.
func (c *ContainerPrimitive) SetLocalTransform(t Transform) {
	c.local = t
	parentGlobal := Identity()
	if c.parent != nil {
		parentGlobal = c.parent.GlobalTransform()
	}
	c.refreshGlobal(parentGlobal)
}

// SetGlobalTransform overrides Primitive.SetGlobalTransform for the same
// reason: the new global must propagate down to every descendant.
func (c *ContainerPrimitive) SetGlobalTransform(t Transform) {
	parentGlobal := Identity()
	if c.parent != nil {
		parentGlobal = c.parent.GlobalTransform()
	}
	c.local = Decompose(t, parentGlobal)
	c.global = t
	for _, child := range c.children {
		child.refreshGlobal(c.global)
	}
}

func (c *ContainerPrimitive) String() string {
	return fmt.Sprintf("ContainerPrimitive(%d children)", len(c.children))
}
