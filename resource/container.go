package resource

import (
	"fmt"
	"os"

	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/scene"
)

// ContainerPrototype holds a container/prefab's descriptor tree (spec
// §4.2's "container/prefab" resources), loaded via the markdown format.
// IsLoaded is derived from "root descriptor present" rather than a
// separate flag, matching spec text literally.
type ContainerPrototype struct {
	Root *format.PrimitiveDescriptor
}

func (c *ContainerPrototype) IsLoaded() bool { return c != nil && c.Root != nil }

// LoadContainerPrototype is the Loader[*ContainerPrototype] a
// resource.Manager uses to parse a container prototype file.
func LoadContainerPrototype(path string) (*ContainerPrototype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := format.ParseContainerPrototype(f)
	if err != nil {
		return nil, err
	}
	return &ContainerPrototype{Root: root}, nil
}

// NewContainerManager returns the container-prototype resource manager.
// Its notifier is re-entrant (notify.NewRecursive, via NewManagerRecursive)
// because Instantiate, called from inside this manager's own Notify
// fan-out, subscribes each freshly built primitive to other resources'
// notifiers re-entrantly (spec §4.2/§9).
func NewContainerManager() *Manager[*ContainerPrototype] {
	return NewManagerRecursive("container-prototype", LoadContainerPrototype)
}

// Instantiate walks proto's descriptor tree, building one scene.Node per
// descriptor via registry and attaching it under parent (nil for the root
// of a standalone instantiation): "clone the tree under a fresh parent".
// Every call produces a brand new set of primitives, never sharing state
// with a previous instantiation of the same prototype.
func Instantiate(proto *ContainerPrototype, registry *format.Registry, parent *scene.ContainerPrimitive) (scene.Node, error) {
	if proto == nil || proto.Root == nil {
		return nil, fmt.Errorf("resource: Instantiate: prototype not loaded")
	}
	return instantiateDescriptor(proto.Root, registry, parent)
}

func instantiateDescriptor(d *format.PrimitiveDescriptor, registry *format.Registry, parent *scene.ContainerPrimitive) (scene.Node, error) {
	built, err := registry.Build(d.Node)
	if err != nil {
		return nil, fmt.Errorf("resource: instantiating %q: %w", d.Type, err)
	}
	node, ok := built.(scene.Node)
	if !ok {
		return nil, fmt.Errorf("resource: type %q does not build a scene.Node", d.Type)
	}
	if parent != nil {
		if err := parent.AddChild(node); err != nil {
			return nil, fmt.Errorf("resource: attaching %q: %w", d.Type, err)
		}
	}
	if len(d.Children) == 0 {
		return node, nil
	}
	container, ok := node.(*scene.ContainerPrimitive)
	if !ok {
		return nil, fmt.Errorf("resource: type %q has children but does not build a container", d.Type)
	}
	for _, child := range d.Children {
		if _, err := instantiateDescriptor(child, registry, container); err != nil {
			return nil, err
		}
	}
	return node, nil
}
