package particle

import (
	"github.com/jinzhu/copier"

	"github.com/kwcore/engine/accel"
)

// Axes constrains which axes a particle's rotation/billboard is free to
// move on, per spec §3.
type Axes int

const (
	AxesNone Axes = iota
	AxesY
	AxesYZ
)

// Emitter returns the number of new particles to spawn this frame, given
// the system's current time-within-loop and the elapsed delta (spec
// glossary: "Emitter").
type Emitter interface {
	Count(systemTime, elapsed float64) int
}

// Generator produces initial values for the streams it declares, over a
// freshly-emitted particle range [begin, end) (spec glossary: "Generator").
// Exactly one generator per stream is permitted at load time (spec §4.6).
type Generator interface {
	Streams() []Stream
	Generate(p *Primitive, begin, end int, rng *RNG)
}

// Updater mutates one or more streams over the whole live range each frame
// (spec glossary: "Updater"), in the order Descriptor.Updaters declares.
type Updater interface {
	Update(p *Primitive, elapsed float64)
}

// Descriptor is spec §3's ParticleSystem: immutable once loaded. Its
// streamMask decides which streams a Primitive allocates at load time.
type Descriptor struct {
	Emitters   []Emitter
	Generators []Generator
	Updaters   []Updater

	MaxParticleCount int
	MaxBounds        accel.Bounds
	Duration         float64
	LoopCount        int // 0 = infinite, otherwise a literal count (spec §9 open question #3).

	SpritesheetCols int
	SpritesheetRows int
	Axes            Axes

	GeometryPath       string
	MaterialPath       string
	ShadowMaterialPath string // empty if the system casts no shadow.
}

// defaultDescriptor is a package-level value holding sane defaults that
// every fresh Descriptor starts from.
var defaultDescriptor = Descriptor{
	MaxParticleCount: 256,
	Duration:         1,
	LoopCount:        0,
	SpritesheetCols:  1,
	SpritesheetRows:  1,
	Axes:             AxesNone,
}

// NewDescriptor returns a Descriptor pre-populated with defaultDescriptor's
// values, ready for a format parser to overwrite with parsed fields. Uses
// copier rather than a literal struct copy so new default fields added
// later (slices, nested structs) are deep-copied correctly rather than
// silently aliased.
func NewDescriptor() *Descriptor {
	d := &Descriptor{}
	if err := copier.Copy(d, &defaultDescriptor); err != nil {
		panic("particle: NewDescriptor: " + err.Error())
	}
	return d
}

// streamMask returns the union of every stream a generator in d declares,
// plus TotalLifetime and CurrentLifetime, which the kill pass reads for
// every live particle. Updaters declare no streams, so a stream that only
// an updater touches is not allocated.
func (d *Descriptor) streamMask() Mask {
	m := Union(TotalLifetime, CurrentLifetime)
	for _, g := range d.Generators {
		for _, s := range g.Streams() {
			m = m.With(s)
		}
	}
	return m
}
