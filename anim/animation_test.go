package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwcore/engine/math/lin"
	"github.com/kwcore/engine/scene"
)

func TestSampleJointWrapsPastDurationByNormalizingTime(t *testing.T) {
	a := &Animation{
		Joints: [][]Keyframe{
			{
				{Timestamp: 0, Transform: scene.Transform{Loc: lin.V3{X: 0}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}}},
				{Timestamp: 1, Transform: scene.Transform{Loc: lin.V3{X: 10}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}}},
				{Timestamp: 2, Transform: scene.Transform{Loc: lin.V3{X: 0}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}}},
			},
		},
	}
	assert.InDelta(t, 2, a.Duration(), 1e-9)

	// t=3.0 normalizes to t=1.0 (3.0 mod 2.0), landing exactly on the middle keyframe.
	atThree := a.SampleJoint(0, 3.0)
	atOne := a.SampleJoint(0, 1.0)
	assert.InDelta(t, atOne.Loc.X, atThree.Loc.X, 1e-9)
	assert.InDelta(t, 10, atThree.Loc.X, 1e-9)
}

func TestSampleJointOutOfRangeJointIsIdentity(t *testing.T) {
	a := &Animation{Joints: [][]Keyframe{{{Timestamp: 0, Transform: scene.Identity()}}}}
	got := a.SampleJoint(5, 0)
	assert.Equal(t, scene.Identity(), got)
}

func TestSampleJointInterpolatesBetweenKeys(t *testing.T) {
	a := &Animation{
		Joints: [][]Keyframe{
			{
				{Timestamp: 0, Transform: scene.Transform{Loc: lin.V3{X: 0}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}}},
				{Timestamp: 4, Transform: scene.Transform{Loc: lin.V3{X: 8}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}}},
			},
		},
	}
	got := a.SampleJoint(0, 1.0)
	assert.InDelta(t, 2, got.Loc.X, 1e-9)
}

func TestDurationIsNaNWhenNoKeyframes(t *testing.T) {
	a := &Animation{Joints: [][]Keyframe{{}}}
	assert.False(t, a.IsLoaded())
}
