package particle

import (
	"math"

	"github.com/tanema/gween/ease"
)

// LifetimeUpdater advances every live particle's current lifetime by the
// frame's elapsed time (spec §4.6 "cardinal example": Lifetime).
type LifetimeUpdater struct{}

func (LifetimeUpdater) Update(p *Primitive, elapsed float64) {
	if !p.mask.Has(CurrentLifetime) {
		return
	}
	s := p.streams[CurrentLifetime]
	for i := 0; i < p.particleCount; i++ {
		s[i] += float32(elapsed)
	}
}

// FrameUpdater advances the spritesheet frame stream at Framerate frames
// per second (spec §4.6 "Frame": frame += elapsed_time * framerate).
type FrameUpdater struct {
	Framerate float64
}

func (u FrameUpdater) Update(p *Primitive, elapsed float64) {
	if !p.mask.Has(Frame) {
		return
	}
	s := p.streams[Frame]
	delta := float32(elapsed * u.Framerate)
	for i := 0; i < p.particleCount; i++ {
		s[i] += delta
	}
}

// PositionUpdater integrates position from the generated-velocity and
// velocity streams (spec §4.6 "Position": position += generated_velocity
// ⊙ velocity * elapsed_time).
type PositionUpdater struct{}

func (PositionUpdater) Update(p *Primitive, elapsed float64) {
	if !p.mask.Has(PosX) || !p.mask.Has(GenVelX) || !p.mask.Has(VelX) {
		return
	}
	dt := float32(elapsed)
	for axis, pos := range [3]Stream{PosX, PosY, PosZ} {
		genVel := p.streams[[3]Stream{GenVelX, GenVelY, GenVelZ}[axis]]
		vel := p.streams[[3]Stream{VelX, VelY, VelZ}[axis]]
		out := p.streams[pos]
		for i := 0; i < p.particleCount; i++ {
			out[i] += genVel[i] * vel[i] * dt
		}
	}
}

// ScaleBySpeedUpdater multiplies each axis of the scale stream group by the
// particle's current speed (the length of generated-velocity ⊙ velocity)
// times SpeedScale (spec §4.6 "ScaleBySpeed").
type ScaleBySpeedUpdater struct {
	SpeedScale float64
}

func (u ScaleBySpeedUpdater) Update(p *Primitive, elapsed float64) {
	if !p.mask.Has(ScaleX) || !p.mask.Has(GenVelX) || !p.mask.Has(VelX) {
		return
	}
	genVel := [3][]float32{p.streams[GenVelX], p.streams[GenVelY], p.streams[GenVelZ]}
	vel := [3][]float32{p.streams[VelX], p.streams[VelY], p.streams[VelZ]}
	scale := [3][]float32{p.streams[ScaleX], p.streams[ScaleY], p.streams[ScaleZ]}
	speedScale := float32(u.SpeedScale)
	for i := 0; i < p.particleCount; i++ {
		var sumSq float32
		for axis := 0; axis < 3; axis++ {
			v := genVel[axis][i] * vel[axis][i]
			sumSq += v * v
		}
		speed := float32(math.Sqrt(float64(sumSq)))
		for axis := 0; axis < 3; axis++ {
			scale[axis][i] *= speed * speedScale
		}
	}
}

// OverLifetimeUpdater evaluates a sorted keyframe curve over each particle's
// normalized lifetime fraction u = current/total and writes the result into
// Targets (spec §4.6 "OverLifetime<T>"). Keys[0] must be 0 and Keys[len-1]
// must be 1; Values[k] holds one float per Target, evaluated at Keys[k].
// Segment interpolation is delegated to an ease.TweenFunc (defaulting to
// ease.Linear) rather than a hand-rolled lerp, so curves can use any of the
// library's easing shapes without this updater knowing about them.
type OverLifetimeUpdater struct {
	Targets []Stream
	Keys    []float64
	Values  [][]float64
	Ease    ease.TweenFunc
}

func (u OverLifetimeUpdater) Update(p *Primitive, elapsed float64) {
	if len(u.Keys) < 2 || !p.mask.Has(CurrentLifetime) || !p.mask.Has(TotalLifetime) {
		return
	}
	easeFn := u.Ease
	if easeFn == nil {
		easeFn = ease.Linear
	}
	cur := p.streams[CurrentLifetime]
	total := p.streams[TotalLifetime]

	out := make([][]float32, len(u.Targets))
	for c, s := range u.Targets {
		if !p.mask.Has(s) {
			return
		}
		out[c] = p.streams[s]
	}

	for i := 0; i < p.particleCount; i++ {
		u01 := 0.0
		if total[i] > 0 {
			u01 = float64(cur[i] / total[i])
		}
		if u01 < 0 {
			u01 = 0
		}
		if u01 > 1 {
			u01 = 1
		}
		seg := segmentFor(u.Keys, u01)
		k0, k1 := u.Keys[seg], u.Keys[seg+1]
		d := float32(k1 - k0)
		t := float32(u01 - k0)
		for c := range u.Targets {
			begin := float32(u.Values[seg][c])
			change := float32(u.Values[seg+1][c]) - begin
			if d <= 0 {
				out[c][i] = begin
			} else {
				out[c][i] = easeFn(t, begin, change, d)
			}
		}
	}
}

// segmentFor returns the index j such that keys[j] <= u <= keys[j+1],
// searching in 4-key strides per spec §4.6's "4-wide SIMD search over
// segments" — this package has no true SIMD backend, so the stride is a
// branch-reduction device rather than an actual vector instruction, but it
// keeps the per-particle segment search allocation-free and loop-shaped
// the way a vectorized version would be.
func segmentFor(keys []float64, u float64) int {
	j := 0
	for ; j+4 < len(keys)-1; j += 4 {
		if u <= keys[j+4] {
			break
		}
	}
	for j < len(keys)-2 && u > keys[j+1] {
		j++
	}
	return j
}
