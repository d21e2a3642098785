package heightfield

import (
	"math"

	"github.com/kwcore/engine/physics"
	"github.com/kwcore/engine/resource"
)

// INT16Max mirrors spec §4.7's `INT16_MAX` divisor used to turn a quantized
// signed-16-bit height back into a unit-scale world height before applying
// the descriptor's vertical scale.
const INT16Max = math.MaxInt16

// Spacing is the per-axis world-space spacing a HeightFieldRigidActorPrimitive
// derives for its shape geometry once the cooked asset arrives: vertical
// step per height unit, and horizontal cell size on x/z (spec §4.7: "create
// their shape geometry with scale.y/INT16_MAX, scale.x, scale.z spacing").
type Spacing struct {
	Y, X, Z float64
}

// HeightFieldRigidActorPrimitive bridges a loaded heightfield resource to a
// physics rigid actor: it subscribes to a heightfield handle, and once the
// asset is cooked, attaches the resulting shape and records the spacing its
// render geometry needs.
type HeightFieldRigidActorPrimitive struct {
	*physics.RigidActor

	scaleX, scaleY, scaleZ float64
	rows, cols             int
	spacing                Spacing
	ready                  bool
}

// NewHeightFieldRigidActorPrimitive returns an unloaded actor that will
// adopt its shape once the heightfield handle it is given through Subscribe
// finishes loading. scaleX/scaleY/scaleZ are the descriptor's world-space scale
// factors (spec §4.7's `scale.x`, `scale.y`, `scale.z`).
func NewHeightFieldRigidActorPrimitive(scaleX, scaleY, scaleZ float64) *HeightFieldRigidActorPrimitive {
	return &HeightFieldRigidActorPrimitive{
		RigidActor: physics.NewRigidActor(physics.Ref[*physics.Shape]{}),
		scaleX:     scaleX, scaleY: scaleY, scaleZ: scaleZ,
	}
}

// Subscribe registers a as a listener on mgr's notifier for handle. If
// handle is already loaded, OnLoaded runs synchronously before Subscribe
// returns (notify.Notifier's documented behavior).
func (a *HeightFieldRigidActorPrimitive) Subscribe(mgr *resource.Manager[Cooked], handle *resource.Handle[Cooked]) {
	mgr.Notifier().Subscribe(handle, a)
}

// OnLoaded implements notify.Listener[*resource.Handle[Cooked]]: once the
// heightfield's shape is cooked, adopt it and compute the spacing the
// caller's render geometry should use.
func (a *HeightFieldRigidActorPrimitive) OnLoaded(h *resource.Handle[Cooked]) {
	if err := h.Err(); err != nil {
		return
	}
	data := h.Get()
	a.SetShape(data.Shape.Clone())
	a.rows, a.cols = data.Data.Rows, data.Data.Cols
	a.spacing = Spacing{
		Y: a.scaleY / INT16Max,
		X: a.scaleX,
		Z: a.scaleZ,
	}
	a.ready = true
}

// Spacing returns the spacing computed on load; valid only once Ready.
func (a *HeightFieldRigidActorPrimitive) Spacing() Spacing { return a.spacing }

// Dimensions returns the loaded heightfield's row/column counts.
func (a *HeightFieldRigidActorPrimitive) Dimensions() (rows, cols int) { return a.rows, a.cols }

// Ready reports whether OnLoaded has run successfully.
func (a *HeightFieldRigidActorPrimitive) Ready() bool { return a.ready }

// AdoptFrom implements spec §9 open question #2 for this concrete actor
// type: the destination takes the source's shape (and its already-computed
// spacing/dimensions), re-tagging the shape to itself; the source is left
// unready.
func (a *HeightFieldRigidActorPrimitive) AdoptFrom(source *HeightFieldRigidActorPrimitive) {
	a.RigidActor.AdoptShape(source.RigidActor)
	a.rows, a.cols = source.rows, source.cols
	a.spacing = source.spacing
	a.ready = source.ready
	source.rows, source.cols, source.ready = 0, 0, false
	source.spacing = Spacing{}
}
