package format

import (
	"strings"
	"testing"
)

type testMaterial struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

func TestRegistryBuildDispatchesOnTypeTag(t *testing.T) {
	node, err := ParseMarkdown(strings.NewReader("type: material\nname: rusty-metal\n"))
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	reg := NewRegistry()
	reg.Register("material", func() any { return &testMaterial{} })

	v, err := reg.Build(node)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m, ok := v.(*testMaterial)
	if !ok {
		t.Fatalf("Build returned %T, want *testMaterial", v)
	}
	if m.Name != "rusty-metal" {
		t.Fatalf("Name = %q, want rusty-metal", m.Name)
	}
}

func TestRegistryBuildUnknownTagFails(t *testing.T) {
	node, err := ParseMarkdown(strings.NewReader("type: nonexistent\n"))
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	reg := NewRegistry()
	if _, err := reg.Build(node); err == nil {
		t.Fatalf("expected error for unregistered type tag")
	}
}
