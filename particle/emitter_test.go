package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverLifetimeEmitterConstantRateMatchesRateTimesElapsed(t *testing.T) {
	e := &OverLifetimeEmitter{Duration: 10, RateFrom: 20, RateTo: 20}
	n := e.Count(0, 1)
	assert.Equal(t, 20, n, "constant rate of 20/s over 1s should emit 20")
}

func TestOverLifetimeEmitterNeverDoubleCountsAcrossFrames(t *testing.T) {
	e := &OverLifetimeEmitter{Duration: 10, RateFrom: 5, RateTo: 50}
	total := 0
	var t0 float64
	step := 0.1
	for i := 0; i < 100; i++ {
		total += e.Count(t0, step)
		t0 += step
	}
	wholeRun := &OverLifetimeEmitter{Duration: 10, RateFrom: 5, RateTo: 50}
	single := wholeRun.Count(0, 10)
	assert.InDelta(t, single, total, 1, "summing per-frame counts should match one call over the whole window")
}

func TestBurstEmitterFiresOnceOnly(t *testing.T) {
	b := &BurstEmitter{At: 1.0, Amount: 50}
	assert.Equal(t, 0, b.Count(0, 0.5))
	assert.Equal(t, 50, b.Count(0.9, 0.2))
	assert.Equal(t, 0, b.Count(1.1, 0.5))
}
