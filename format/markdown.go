package format

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Markdown decodes the JSON-like object/array/string/number/boolean trees
// spec §6 calls "markdown resource files" (used for materials, particle
// systems, motion graphs, blend trees, container prototypes, and scene
// descriptions). YAML 1.2 is a superset of JSON, so a yaml.v3 decode into
// *yaml.Node handles the documented grammar without a bespoke parser; a
// file that is strictly JSON decodes identically.
func ParseMarkdown(r io.Reader) (*yaml.Node, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &yaml.Node{Kind: yaml.MappingNode}, nil
		}
		return nil, unsupportedErr("markdown", fmt.Sprintf("decode: %v", err))
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

// Factory builds a zero-valued instance of one resource type tag. Registry
// calls it, then decodes the markdown node's fields onto the result.
type Factory func() any

// Registry is the "reflection layer [that] maps string type tags to
// primitive factories" (spec §6): each resource kind (material node,
// particle emitter, blend-tree node, ...) registers under the tag its
// markdown files use in a `type:` field, and Build dispatches on it.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates tag with f. Registering the same tag twice replaces
// the previous factory.
func (reg *Registry) Register(tag string, f Factory) {
	reg.factories[tag] = f
}

// Build reads node's `type` field, constructs the matching factory's
// value, decodes node's remaining fields onto it via yaml.Node.Decode, and
// returns the populated value. node must be a mapping node with a scalar
// `type` entry naming a registered tag.
func (reg *Registry) Build(node *yaml.Node) (any, error) {
	if node.Kind != yaml.MappingNode {
		return nil, unsupportedErr("markdown", "node is not an object")
	}
	tag, ok := mappingString(node, "type")
	if !ok {
		return nil, unsupportedErr("markdown", "object has no \"type\" field")
	}
	factory, ok := reg.factories[tag]
	if !ok {
		return nil, unsupportedErr("markdown", fmt.Sprintf("no factory registered for type %q", tag))
	}
	v := factory()
	if err := node.Decode(v); err != nil {
		return nil, unsupportedErr("markdown", fmt.Sprintf("decoding type %q: %v", tag, err))
	}
	return v, nil
}

// mappingString returns the string value of key in a YAML mapping node, and
// whether key was present with a scalar value.
func mappingString(node *yaml.Node, key string) (string, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].Value, node.Content[i+1].Kind == yaml.ScalarNode
		}
	}
	return "", false
}
