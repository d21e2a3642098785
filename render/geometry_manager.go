// Package render wires the scene graph's geometry/material/particle
// primitives to a frame graph, per spec §4.8's final task-chain stage
// ("frame-graph.acquire -> render-pass tasks -> frame-graph.present").
// Nothing here talks to a GPU; FrameGraph is the seam a real renderer
// binding implements, the same way package physics is a seam rather than
// an engine.
package render

import (
	"os"

	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/resource"
)

// LoadGeometry parses a *.kwg file at path into decoded vertex/index/joint
// data, per spec §6.
func LoadGeometry(path string) (*format.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return format.ParseGeometry(f)
}

// NewGeometryManager returns a resource.Manager serving Geometry resources,
// one per spec §4.3's per-asset-kind rule.
func NewGeometryManager() *resource.Manager[*format.Geometry] {
	return resource.NewManager[*format.Geometry]("geometry", LoadGeometry)
}
