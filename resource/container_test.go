package resource

import (
	"os"
	"strings"
	"testing"

	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/scene"
)

func testRegistry() *format.Registry {
	reg := format.NewRegistry()
	reg.Register("group", func() any { return scene.NewContainerPrimitive() })
	reg.Register("mesh", func() any { return scene.NewPrimitive() })
	return reg
}

func TestInstantiateBuildsSceneTreeFromDescriptor(t *testing.T) {
	root, err := format.ParseContainerPrototype(strings.NewReader(`
type: group
children:
  - type: mesh
  - type: mesh
`))
	if err != nil {
		t.Fatalf("ParseContainerPrototype: %v", err)
	}
	proto := &ContainerPrototype{Root: root}
	if !proto.IsLoaded() {
		t.Fatalf("IsLoaded() = false for a prototype with a root descriptor")
	}

	node, err := Instantiate(proto, testRegistry(), nil)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	container, ok := node.(*scene.ContainerPrimitive)
	if !ok {
		t.Fatalf("Instantiate returned %T, want *scene.ContainerPrimitive", node)
	}
	if len(container.Children()) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(container.Children()))
	}
}

func TestInstantiateTwiceProducesIndependentTrees(t *testing.T) {
	root, err := format.ParseContainerPrototype(strings.NewReader("type: group\nchildren:\n  - type: mesh\n"))
	if err != nil {
		t.Fatalf("ParseContainerPrototype: %v", err)
	}
	proto := &ContainerPrototype{Root: root}
	reg := testRegistry()

	a, err := Instantiate(proto, reg, nil)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	b, err := Instantiate(proto, reg, nil)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if a == b {
		t.Fatalf("two instantiations returned the same node")
	}
}

func TestLoadContainerPrototypeParsesFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "*.md")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.WriteString("type: group\nchildren:\n  - type: mesh\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	proto, err := LoadContainerPrototype(f.Name())
	if err != nil {
		t.Fatalf("LoadContainerPrototype: %v", err)
	}
	if proto.Root.Type != "group" || len(proto.Root.Children) != 1 {
		t.Fatalf("proto.Root = %+v", proto.Root)
	}
}

func TestInstantiateUnloadedPrototypeErrors(t *testing.T) {
	if _, err := Instantiate(&ContainerPrototype{}, testRegistry(), nil); err == nil {
		t.Fatalf("expected error instantiating an unloaded prototype")
	}
}
