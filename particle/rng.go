package particle

import "math/rand"

// RNG is a non-cryptographic pseudo-random source producing uniforms in
// [0,1), per spec §4.6 ("not cryptographic; not thread-safe in general but
// used from a single worker per primitive"). Each Primitive owns its own RNG,
// created by NewPrimitive from the seed its caller passes, rather than
// sharing one process-wide instance, so concurrent primitive workers never
// contend on or race the same state.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG seeded with seed; the same seed yields the same
// sequence.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform in [0,1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Range returns a uniform in [lo, hi).
func (g *RNG) Range(lo, hi float64) float64 { return lo + g.r.Float64()*(hi-lo) }

// Vec3 returns three independent uniforms in [lo,hi), one per axis — the
// "SIMD-3" helper named in spec §4.6, applied to generators that fill a
// three-component stream group (position, scale, velocity).
func (g *RNG) Vec3(lo, hi [3]float64) [3]float64 {
	return [3]float64{g.Range(lo[0], hi[0]), g.Range(lo[1], hi[1]), g.Range(lo[2], hi[2])}
}

// Vec4 is Vec3's four-component counterpart, for the color rgba stream group.
func (g *RNG) Vec4(lo, hi [4]float64) [4]float64 {
	return [4]float64{
		g.Range(lo[0], hi[0]), g.Range(lo[1], hi[1]),
		g.Range(lo[2], hi[2]), g.Range(lo[3], hi[3]),
	}
}
