package particle

import "math"

// OverLifetimeEmitter emits particles at a rate that varies linearly across
// the system's loop, from Rate(From) to Rate(To) (spec §4.6's emitter
// formula). Count computes floor(f(t))-floor(f(t-dt)) rather than
// rate*dt directly so fractional per-frame emission accumulates exactly
// and every emitted particle is accounted for exactly once regardless of
// how elapsed subdivides the loop.
type OverLifetimeEmitter struct {
	Duration float64 // the system's loop duration D.
	RateFrom float64
	RateTo   float64
}

// f implements spec §4.6's f(t) = (t/D · R + O) · t, where R and O are
// derived from RateFrom/RateTo so f is linear in rate across the loop:
// f(0) = 0, f'(0) = RateFrom, f'(D) = RateTo.
func (e *OverLifetimeEmitter) f(t float64) float64 {
	if e.Duration <= 0 {
		return e.RateFrom * t
	}
	r := (e.RateTo - e.RateFrom) / 2
	o := e.RateFrom
	return (t/e.Duration*r + o) * t
}

// Count returns the integer number of particles to emit over
// [systemTime, systemTime+elapsed), per spec §4.6.
func (e *OverLifetimeEmitter) Count(systemTime, elapsed float64) int {
	n := math.Floor(e.f(systemTime+elapsed)) - math.Floor(e.f(systemTime))
	if n < 0 {
		return 0
	}
	return int(n)
}

// BurstEmitter emits a single fixed count the first time its window is
// crossed, then nothing — used for one-shot effects (explosions, impacts)
// layered alongside a continuous OverLifetimeEmitter in the same Descriptor.
type BurstEmitter struct {
	At     float64
	Amount int
	fired  bool
}

// Count returns BurstEmitter.Amount exactly once, the first time the
// (systemTime, systemTime+elapsed] window crosses At.
func (e *BurstEmitter) Count(systemTime, elapsed float64) int {
	if e.fired || systemTime+elapsed < e.At {
		return 0
	}
	if systemTime >= e.At {
		return 0 // already past on a prior loop iteration without resetting.
	}
	e.fired = true
	return e.Amount
}
