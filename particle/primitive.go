package particle

import (
	"github.com/kwcore/engine/accel"
	"github.com/kwcore/engine/arena"
)

// Primitive is spec §3's ParticleSystemPrimitive: up to streamCount dense
// f32 arrays sized to Descriptor.MaxParticleCount (rounded to a multiple of
// 4), plus the live-range bookkeeping the player's kill/emit/update passes
// mutate each frame.
type Primitive struct {
	desc *Descriptor
	rng  *RNG

	streams [streamCount][]float32
	mask    Mask

	particleCount int // live prefix length.
	capacity      int // rounded-up allocation length, shared by every stream.

	systemTime float64
	loopsDone  int
}

// NewPrimitive allocates a Primitive bound to desc. Streams are allocated
// from a, per spec §9 ("arenas + indices for all transient per-frame task
// data") — though a particle-system's streams outlive a single frame, so
// callers typically pass the persistent arena, not the per-frame one.
func NewPrimitive(a *arena.Arena, desc *Descriptor, seed int64) *Primitive {
	p := &Primitive{desc: desc, rng: NewRNG(seed)}
	p.onLoaded(a)
	return p
}

// onLoaded implements spec §4.6's "ParticleSystemPrimitive::on_loaded":
// allocate each stream in the descriptor's streamMask (the generators'
// streams plus the two lifetime streams), each length max_particle_count
// rounded up to a multiple of 4.
func (p *Primitive) onLoaded(a *arena.Arena) {
	p.mask = p.desc.streamMask()
	p.capacity = roundUp4(p.desc.MaxParticleCount)
	for s := Stream(0); s < streamCount; s++ {
		if p.mask.Has(s) {
			p.streams[s] = arena.AllocSlice[float32](a, p.capacity)
		}
	}
}

// ModelBounds satisfies scene.BoundsSource: a particle system's bounds are
// its descriptor's fixed max-bounds, not a per-frame recomputation from
// live particle positions (spec §4.6: "compute bounds as max_bounds ·
// global_transform").
func (p *Primitive) ModelBounds() accel.Bounds { return p.desc.MaxBounds }

// ParticleCount returns the current live prefix length.
func (p *Primitive) ParticleCount() int { return p.particleCount }

// Stream returns the live prefix of stream s, or nil if s isn't allocated.
func (p *Primitive) Stream(s Stream) []float32 {
	if !p.mask.Has(s) {
		return nil
	}
	return p.streams[s][:p.particleCount]
}

// kill implements spec §4.6 step 1: a single compaction pass that drops
// every particle whose current lifetime has reached its total, preserving
// the relative order of survivors across every allocated stream.
func (p *Primitive) kill() {
	write := 0
	for read := 0; read < p.particleCount; read++ {
		if p.streams[CurrentLifetime][read] >= p.streams[TotalLifetime][read] {
			continue // dead: skip, don't advance write.
		}
		if write != read {
			for s := Stream(0); s < streamCount; s++ {
				if p.mask.Has(s) {
					p.streams[s][write] = p.streams[s][read]
				}
			}
		}
		write++
	}
	p.particleCount = write
}

// emit implements spec §4.6 step 2: advance system time (wrapping at
// Duration), sum each emitter's contribution, clamp to MaxParticleCount,
// then run every generator over the freshly emitted range.
func (p *Primitive) emit(elapsed float64) {
	prevTime := p.systemTime
	p.systemTime += elapsed
	if p.desc.Duration > 0 && p.systemTime >= p.desc.Duration {
		p.systemTime -= p.desc.Duration
		p.loopsDone++
	}
	if p.desc.LoopCount > 0 && p.loopsDone >= p.desc.LoopCount {
		return // exhausted its finite loop budget; spawn nothing further.
	}

	newCount := 0
	for _, e := range p.desc.Emitters {
		newCount += e.Count(prevTime, elapsed)
	}
	if newCount <= 0 {
		return
	}

	begin := p.particleCount
	end := begin + newCount
	if end > p.desc.MaxParticleCount {
		end = p.desc.MaxParticleCount
	}
	if end <= begin {
		return
	}

	for i := begin; i < end; i++ {
		if p.mask.Has(CurrentLifetime) {
			p.streams[CurrentLifetime][i] = 0
		}
	}
	for _, g := range p.desc.Generators {
		g.Generate(p, begin, end, p.rng)
	}
	p.particleCount = end
}

// update implements spec §4.6 step 3: run every updater, in declared
// order, over the whole live range.
func (p *Primitive) update(elapsed float64) {
	for _, u := range p.desc.Updaters {
		u.Update(p, elapsed)
	}
}

// Step runs the kill, emit, and update passes in spec §4.6's order. The
// player's worker task calls this once per live primitive per frame.
func (p *Primitive) Step(elapsed float64) {
	p.kill()
	p.emit(elapsed)
	p.update(elapsed)
}
