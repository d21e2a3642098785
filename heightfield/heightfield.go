// Package heightfield implements spec §4.7's heightfield resource manager:
// parse a TSV into quantized signed-16-bit heights, hand the raw samples to
// an external physics engine's "cook" callback to build a collidable shape,
// and notify listening rigid-actor primitives once the shape is ready.
package heightfield

import (
	"os"

	"github.com/kwcore/engine/format"
	"github.com/kwcore/engine/physics"
	"github.com/kwcore/engine/resource"
)

// Cooked is the published result of loading one heightfield: the raw
// quantized samples (needed by listeners to size their shape geometry) and
// the physics engine's cooked shape.
type Cooked struct {
	Data  *format.Heightfield
	Shape physics.Ref[*physics.Shape]
}

// CookFunc is the physics engine's "dedicated insertion callback" (spec
// §4.7) that turns raw quantized heights into a collidable Shape. A real
// binding's CookFunc also wires up whatever acquire/release pair its
// library needs into the returned Ref.
type CookFunc func(data *format.Heightfield) (physics.Ref[*physics.Shape], error)

// NewManager returns a resource.Manager that loads heightfield TSV files
// from disk and cooks them with cook, per spec §4.7's load(path) contract.
func NewManager(cook CookFunc) *resource.Manager[Cooked] {
	return resource.NewManager[Cooked]("heightfield", func(path string) (Cooked, error) {
		f, err := os.Open(path)
		if err != nil {
			return Cooked{}, err
		}
		defer f.Close()

		data, err := format.ParseHeightfield(f)
		if err != nil {
			return Cooked{}, err
		}
		shape, err := cook(data)
		if err != nil {
			return Cooked{}, err
		}
		return Cooked{Data: data, Shape: shape}, nil
	})
}
