package anim

import (
	"math"

	"github.com/kwcore/engine/scene"
)

// Keyframe is a single timestamped joint-space transform sample.
type Keyframe struct {
	Timestamp float64
	Transform scene.Transform
}

// Animation is a loaded skeletal animation resource: one keyframe track per
// joint. Loaded by the format package's .kwa parser and served through a
// resource.Manager[*Animation].
type Animation struct {
	Joints [][]Keyframe
}

// Duration returns the largest keyframe timestamp across every joint track,
// or NaN if the animation has no keyframes at all. An Animation is loaded
// iff Duration does not return NaN.
func (a *Animation) Duration() float64 {
	max := math.NaN()
	for _, track := range a.Joints {
		for _, k := range track {
			if math.IsNaN(max) || k.Timestamp > max {
				max = k.Timestamp
			}
		}
	}
	return max
}

// IsLoaded reports whether a has at least one keyframe.
func (a *Animation) IsLoaded() bool { return !math.IsNaN(a.Duration()) }

// SampleJoint returns joint's interpolated transform at time t, with t
// wrapped into [0, duration) so playback loops. Joints with no keyframes,
// or an out-of-range joint index, sample to the identity transform.
func (a *Animation) SampleJoint(joint int, t float64) scene.Transform {
	if joint < 0 || joint >= len(a.Joints) || len(a.Joints[joint]) == 0 {
		return scene.Identity()
	}
	track := a.Joints[joint]
	if len(track) == 1 {
		return track[0].Transform
	}

	d := a.Duration()
	if d > 0 && !math.IsNaN(d) {
		t = math.Mod(t, d)
		if t < 0 {
			t += d
		}
	}

	if t <= track[0].Timestamp {
		return track[0].Transform
	}
	last := track[len(track)-1]
	if t >= last.Timestamp {
		return last.Transform
	}
	for i := 1; i < len(track); i++ {
		if t > track[i].Timestamp {
			continue
		}
		prev, next := track[i-1], track[i]
		span := next.Timestamp - prev.Timestamp
		factor := 0.0
		if span > 0 {
			factor = (t - prev.Timestamp) / span
		}
		return lerpTransform(prev.Transform, next.Transform, factor)
	}
	return last.Transform
}
