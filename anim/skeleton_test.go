package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwcore/engine/math/lin"
	"github.com/kwcore/engine/scene"
)

func TestBuildModelSpaceMatricesChainsParentBeforeChild(t *testing.T) {
	pose := NewSkeletonPose([]int32{-1, 0})
	pose.SetJointSpaceTransform(0, scene.Transform{Loc: lin.V3{X: 1}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})
	pose.SetJointSpaceTransform(1, scene.Transform{Loc: lin.V3{X: 0, Y: 2}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})

	model := pose.BuildModelSpaceMatrices()
	assert.InDelta(t, 1, model[0].Wx, 1e-9)
	assert.InDelta(t, 0, model[0].Wy, 1e-9)
	// joint 1's model-space position is its own local offset composed under joint 0's.
	assert.InDelta(t, 1, model[1].Wx, 1e-9)
	assert.InDelta(t, 2, model[1].Wy, 1e-9)
}

func TestBuildModelSpaceMatricesCachesUntilDirtied(t *testing.T) {
	pose := NewSkeletonPose([]int32{-1})
	first := pose.BuildModelSpaceMatrices()
	second := pose.BuildModelSpaceMatrices()
	assert.Same(t, &first[0], &second[0])

	pose.SetJointSpaceTransform(0, scene.Transform{Loc: lin.V3{X: 5}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})
	third := pose.BuildModelSpaceMatrices()
	assert.InDelta(t, 5, third[0].Wx, 1e-9)
}

func TestLerpPadsShorterPoseWithIdentity(t *testing.T) {
	a := NewSkeletonPose([]int32{-1})
	b := NewSkeletonPose([]int32{-1, 0})
	b.SetJointSpaceTransform(1, scene.Transform{Loc: lin.V3{X: 4}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})

	blended := a.Lerp(b, 0.5)
	assert.Equal(t, 2, blended.JointCount())
	assert.InDelta(t, 2, blended.JointSpaceTransform(1).Loc.X, 1e-9)
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	pose := NewSkeletonPose([]int32{-1})
	clone := pose.Clone()
	clone.SetJointSpaceTransform(0, scene.Transform{Loc: lin.V3{X: 9}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})
	assert.InDelta(t, 0, pose.JointSpaceTransform(0).Loc.X, 1e-9)
	assert.InDelta(t, 9, clone.JointSpaceTransform(0).Loc.X, 1e-9)
}
