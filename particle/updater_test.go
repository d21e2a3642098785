package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwcore/engine/arena"
)

func newStreamPrimitive(t *testing.T, streams Mask, count int) *Primitive {
	t.Helper()
	a := arena.New("test", 1<<20)
	p := &Primitive{desc: &Descriptor{MaxParticleCount: count}, mask: streams, capacity: roundUp4(count)}
	for s := Stream(0); s < streamCount; s++ {
		if streams.Has(s) {
			p.streams[s] = arena.AllocSlice[float32](a, p.capacity)
		}
	}
	p.particleCount = count
	return p
}

func TestPositionUpdaterIntegratesVelocity(t *testing.T) {
	p := newStreamPrimitive(t, Union(PosX, PosY, PosZ, GenVelX, GenVelY, GenVelZ, VelX, VelY, VelZ), 1)
	p.streams[GenVelX][0], p.streams[VelX][0] = 2, 3 // combined velocity 6/s on X.

	PositionUpdater{}.Update(p, 0.5)

	assert.InDelta(t, 3, p.streams[PosX][0], 1e-6)
}

func TestOverLifetimeUpdaterInterpolatesBetweenKeys(t *testing.T) {
	p := newStreamPrimitive(t, Union(ScaleX, CurrentLifetime, TotalLifetime), 1)
	p.streams[TotalLifetime][0] = 1
	p.streams[CurrentLifetime][0] = 0.5 // u = 0.5, halfway between the two keys.

	u := OverLifetimeUpdater{
		Targets: []Stream{ScaleX},
		Keys:    []float64{0, 1},
		Values:  [][]float64{{0}, {10}},
	}
	u.Update(p, 0)

	assert.InDelta(t, 5, p.streams[ScaleX][0], 1e-6)
}

func TestOverLifetimeUpdaterClampsPastLastKey(t *testing.T) {
	p := newStreamPrimitive(t, Union(ScaleX, CurrentLifetime, TotalLifetime), 1)
	p.streams[TotalLifetime][0] = 1
	p.streams[CurrentLifetime][0] = 1.5 // u = 1.5, past the last key; clamped to 1.

	u := OverLifetimeUpdater{
		Targets: []Stream{ScaleX},
		Keys:    []float64{0, 0.5, 1},
		Values:  [][]float64{{0}, {10}, {20}},
	}
	u.Update(p, 0)

	assert.InDelta(t, 20, p.streams[ScaleX][0], 1e-6)
}

func TestScaleBySpeedUpdaterScalesByMagnitude(t *testing.T) {
	p := newStreamPrimitive(t, Union(ScaleX, ScaleY, ScaleZ, GenVelX, GenVelY, GenVelZ, VelX, VelY, VelZ), 1)
	p.streams[GenVelX][0], p.streams[VelX][0] = 3, 1
	p.streams[GenVelY][0], p.streams[VelY][0] = 4, 1 // speed = |(3,4,0)| = 5.
	p.streams[ScaleX][0] = 1
	p.streams[ScaleY][0] = 1
	p.streams[ScaleZ][0] = 1

	ScaleBySpeedUpdater{SpeedScale: 2}.Update(p, 0)

	assert.InDelta(t, 10, p.streams[ScaleX][0], 1e-5)
}
