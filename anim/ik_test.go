package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwcore/engine/math/lin"
	"github.com/kwcore/engine/scene"
)

func straightLeg() *SkeletonPose {
	pose := NewSkeletonPose([]int32{-1, 0, 1})
	pose.SetJointSpaceTransform(1, scene.Transform{Loc: lin.V3{Y: -1}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})
	pose.SetJointSpaceTransform(2, scene.Transform{Loc: lin.V3{Y: -1}, Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}})
	return pose
}

func TestSolveTwoJointIKMovesEndTowardReachableTarget(t *testing.T) {
	pose := straightLeg()
	target := IKTarget{Position: lin.V3{X: 1, Y: -1.5}, Weight: 1}

	SolveTwoJointIK(pose, 0, 1, 2, scene.Identity(), target)
	model := pose.BuildModelSpaceMatrices()
	end := translationOf(model[2])

	dist := distV3(end, target.Position)
	assert.Less(t, dist, 0.5, "end joint should land near the reachable target")
}

func TestSolveTwoJointIKZeroWeightLeavesPoseUnchanged(t *testing.T) {
	pose := straightLeg()
	before := pose.JointSpaceTransform(1)

	SolveTwoJointIK(pose, 0, 1, 2, scene.Identity(), IKTarget{Position: lin.V3{X: 1}, Weight: 0})
	after := pose.JointSpaceTransform(1)
	assert.Equal(t, before, after)
}

func TestSolveTwoJointIKClampsUnreachableTarget(t *testing.T) {
	pose := straightLeg()
	target := IKTarget{Position: lin.V3{X: 0, Y: -100}, Weight: 1}
	SolveTwoJointIK(pose, 0, 1, 2, scene.Identity(), target)
	model := pose.BuildModelSpaceMatrices()
	end := translationOf(model[2])
	assert.Less(t, end.Len(), 2.01, "end joint cannot exceed combined bone length")
}
