package particle

// RangeGenerator fills a three-component stream group (e.g. position,
// generated-scale, generated-velocity) with independent uniforms drawn
// from [Lo, Hi] per axis, using the RNG's SIMD-3 helper.
type RangeGenerator struct {
	Base   [3]Stream // x, y, z stream indices this generator fills.
	Lo, Hi [3]float64
}

func (g *RangeGenerator) Streams() []Stream { return g.Base[:] }

func (g *RangeGenerator) Generate(p *Primitive, begin, end int, rng *RNG) {
	for i := begin; i < end; i++ {
		v := rng.Vec3(g.Lo, g.Hi)
		for axis, s := range g.Base {
			p.streams[s][i] = float32(v[axis])
		}
	}
}

// ColorRangeGenerator is RangeGenerator's four-component counterpart, for
// the color rgba stream group.
type ColorRangeGenerator struct {
	Lo, Hi [4]float64
}

func (g *ColorRangeGenerator) Streams() []Stream {
	return []Stream{ColorR, ColorG, ColorB, ColorA}
}

func (g *ColorRangeGenerator) Generate(p *Primitive, begin, end int, rng *RNG) {
	for i := begin; i < end; i++ {
		v := rng.Vec4(g.Lo, g.Hi)
		p.streams[ColorR][i] = float32(v[0])
		p.streams[ColorG][i] = float32(v[1])
		p.streams[ColorB][i] = float32(v[2])
		p.streams[ColorA][i] = float32(v[3])
	}
}

// ScalarRangeGenerator fills a single stream (rotation, frame, or
// total-lifetime) with a uniform drawn from [Lo, Hi].
type ScalarRangeGenerator struct {
	Target Stream
	Lo, Hi float64
}

func (g *ScalarRangeGenerator) Streams() []Stream { return []Stream{g.Target} }

func (g *ScalarRangeGenerator) Generate(p *Primitive, begin, end int, rng *RNG) {
	for i := begin; i < end; i++ {
		p.streams[g.Target][i] = float32(rng.Range(g.Lo, g.Hi))
	}
}
