package format

import (
	"strings"
	"testing"
)

func TestParseContainerPrototypeWalksNestedChildren(t *testing.T) {
	src := strings.NewReader(`
type: group
children:
  - type: mesh
    path: crate.kwg
  - type: group
    children:
      - type: mesh
        path: wheel.kwg
`)
	root, err := ParseContainerPrototype(src)
	if err != nil {
		t.Fatalf("ParseContainerPrototype: %v", err)
	}
	if root.Type != "group" {
		t.Fatalf("root.Type = %q, want group", root.Type)
	}
	if len(root.Children) != 2 {
		t.Fatalf("len(root.Children) = %d, want 2", len(root.Children))
	}
	if root.Children[0].Type != "mesh" {
		t.Fatalf("Children[0].Type = %q, want mesh", root.Children[0].Type)
	}
	nested := root.Children[1]
	if nested.Type != "group" || len(nested.Children) != 1 || nested.Children[0].Type != "mesh" {
		t.Fatalf("nested descriptor = %+v", nested)
	}
}

func TestParseContainerPrototypeRequiresType(t *testing.T) {
	src := strings.NewReader("name: untyped\n")
	if _, err := ParseContainerPrototype(src); err == nil {
		t.Fatalf("expected error for descriptor with no type tag")
	}
}
