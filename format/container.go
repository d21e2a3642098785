package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// PrimitiveDescriptor is one node of a container prototype's serialized
// tree (spec §4.2/§9's "container/prefab" resources): a type tag plus
// whatever constructor fields that tag's factory expects, and an ordered
// list of child descriptors. Node retains the full markdown object so a
// Registry can later decode the type-specific fields straight off it.
type PrimitiveDescriptor struct {
	Type     string
	Node     *yaml.Node
	Children []*PrimitiveDescriptor
}

// wireDescriptor is only used to pull Type and Children back out of an
// arbitrary mapping node; every other field stays on Node for Registry.Build
// to decode later.
type wireDescriptor struct {
	Type     string      `yaml:"type"`
	Children []yaml.Node `yaml:"children"`
}

// ParseContainerPrototype decodes a markdown-format container/prefab
// descriptor tree: a root object with a `type` tag and an optional
// `children` array of the same shape, recursively.
func ParseContainerPrototype(r io.Reader) (*PrimitiveDescriptor, error) {
	root, err := ParseMarkdown(r)
	if err != nil {
		return nil, err
	}
	return parseDescriptor(root)
}

func parseDescriptor(node *yaml.Node) (*PrimitiveDescriptor, error) {
	if node.Kind != yaml.MappingNode {
		return nil, unsupportedErr("container-prototype", "descriptor node is not an object")
	}
	var wire wireDescriptor
	if err := node.Decode(&wire); err != nil {
		return nil, unsupportedErr("container-prototype", "decoding descriptor: "+err.Error())
	}
	if wire.Type == "" {
		return nil, unsupportedErr("container-prototype", "descriptor has no \"type\" field")
	}
	d := &PrimitiveDescriptor{Type: wire.Type, Node: node}
	for i := range wire.Children {
		child, err := parseDescriptor(&wire.Children[i])
		if err != nil {
			return nil, err
		}
		d.Children = append(d.Children, child)
	}
	return d, nil
}
