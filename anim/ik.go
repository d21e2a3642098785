package anim

import (
	"math"

	"github.com/kwcore/engine/math/lin"
	"github.com/kwcore/engine/scene"
)

// IKTarget is the desired world-space end-effector position for a
// two-joint IK chain, plus a blend weight so the solved pose can be faded
// in and out against the underlying animated pose (spec §4.7).
type IKTarget struct {
	Position lin.V3
	Weight   float64 // 0 = IK has no effect, 1 = end joint lands exactly on Position.
}

// SolveTwoJointIK bends the root/mid/end joint chain in pose so the end
// joint's model-space position approaches target, using the standard
// two-bone law-of-cosines solve: first a bend rotation at mid, pivoting
// only the end joint about mid, that gives the triangle the side lengths
// needed to reach the target distance from root; then a swing rotation at
// root, rigidly carrying mid and the now-correctly-spaced end, that aims
// the bent end joint at the target direction. primitiveGlobal is the
// owning primitive's current global transform, used to bring target from
// world space into the skeleton's model space via its inverse. pose's
// joint-space transforms for root and mid are mutated in place; the
// caller re-runs BuildModelSpaceMatrices (and ApplyInverseBindMatrices,
// for skinning) afterward to pick up the result.
func SolveTwoJointIK(pose *SkeletonPose, root, mid, end int, primitiveGlobal scene.Transform, target IKTarget) {
	if target.Weight <= 0 {
		return
	}

	model := pose.BuildModelSpaceMatrices()
	rootPos := translationOf(model[root])
	midPos := translationOf(model[mid])
	endPos := translationOf(model[end])

	targetModel := primitiveGlobal.ApplyInverse(target.Position)

	len1 := distV3(rootPos, midPos)
	len2 := distV3(midPos, endPos)
	const epsilon = 1e-5
	maxReach := len1 + len2 - epsilon

	var toTarget lin.V3
	toTarget.Sub(&targetModel, &rootPos)
	targetDist := toTarget.Len()
	switch {
	case targetDist < epsilon:
		targetDist = epsilon
	case targetDist > maxReach:
		targetDist = maxReach
	}

	currentAngle := interiorAngle(rootPos, midPos, endPos)
	desiredAngle := lawOfCosinesAngle(len1, len2, targetDist)

	var toMid, toEnd lin.V3
	toMid.Sub(&midPos, &rootPos)
	toEnd.Sub(&endPos, &midPos)
	bendAxis := planeNormal(toEnd, toMid)
	bendDelta := desiredAngle - currentAngle

	endBent := rotateAround(endPos, midPos, bendAxis, bendDelta)

	var toEndBent lin.V3
	toEndBent.Sub(&endBent, &rootPos)
	swingAxis, swingAngle := swingRotation(toEndBent, toTarget)

	r1 := axisAngleInJointSpace(pose, model, mid, bendAxis, bendDelta)
	r0 := axisAngleInJointSpace(pose, model, root, swingAxis, swingAngle)

	weight := clamp(target.Weight, 0, 1)
	blendQ(pose, root, r0, weight)
	blendQ(pose, mid, r1, weight)
}

// rotateAround rotates point by angle around axis, pivoting at pivot.
func rotateAround(point, pivot, axis lin.V3, angle float64) lin.V3 {
	var rel lin.V3
	rel.Sub(&point, &pivot)
	var q lin.Q
	q.SetAa(axis.X, axis.Y, axis.Z, angle)
	var rotated lin.V3
	rotated.MultQ(&rel, &q)
	var out lin.V3
	out.Add(&pivot, &rotated)
	return out
}

// translationOf reads the position a model-space matrix places its joint
// at. TranslateMT puts the affine offset in the matrix's W row.
func translationOf(m lin.M4) lin.V3 { return lin.V3{X: m.Wx, Y: m.Wy, Z: m.Wz} }

func distV3(a, b lin.V3) float64 {
	var d lin.V3
	d.Sub(&a, &b)
	return d.Len()
}

// planeNormal returns the unit normal of the plane spanned by a and b,
// falling back to the Z axis when they're parallel (a fully extended or
// fully collapsed limb has no well-defined bend plane).
func planeNormal(a, b lin.V3) lin.V3 {
	var n lin.V3
	n.Cross(&a, &b)
	if n.LenSqr() < 1e-10 {
		return lin.V3{X: 0, Y: 0, Z: 1}
	}
	return *n.Unit()
}

// interiorAngle returns the angle at b in the triangle a-b-c.
func interiorAngle(a, b, c lin.V3) float64 {
	var toA, toC lin.V3
	toA.Sub(&a, &b)
	toC.Sub(&c, &b)
	cos := toA.Dot(&toC) / (toA.Len() * toC.Len())
	return math.Acos(clamp(cos, -1, 1))
}

// lawOfCosinesAngle returns the angle at the vertex between the two sides
// of length len1 and len2, given the length dist of the side opposite that
// vertex: dist² = len1² + len2² - 2·len1·len2·cos(angle).
func lawOfCosinesAngle(len1, len2, dist float64) float64 {
	cos := (len1*len1 + len2*len2 - dist*dist) / (2 * len1 * len2)
	return math.Acos(clamp(cos, -1, 1))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// swingRotation returns the axis and angle that rotates from onto to.
func swingRotation(from, to lin.V3) (axis lin.V3, angle float64) {
	fu, tu := *from.Unit(), *to.Unit()
	angle = math.Acos(clamp(fu.Dot(&tu), -1, 1))
	axis.Cross(&fu, &tu)
	if axis.LenSqr() < 1e-10 {
		return lin.V3{X: 0, Y: 0, Z: 1}, angle
	}
	return *axis.Unit(), angle
}

// axisAngleInJointSpace builds the quaternion that, composed onto joint
// idx's existing local rotation, rotates idx's subtree by angle around a
// model-space axis. The axis must be expressed in the space idx's local
// transform is itself relative to, i.e. its parent's accumulated rotation
// (model[parent], or the skeleton's root space if idx has no parent) —
// NOT idx's own rotation, which is exactly the part this call is trying
// to change and so must not be folded into the conjugation. A model matrix's
// rotation block is the transpose of SetQ's (see toMatrix), so SetM of it
// yields the parent's inverse rotation directly.
func axisAngleInJointSpace(pose *SkeletonPose, model []lin.M4, idx int, axis lin.V3, angle float64) lin.Q {
	var inv lin.Q
	if parent := pose.parents[idx]; parent >= 0 {
		m := model[parent]
		rot := lin.M3{Xx: m.Xx, Xy: m.Xy, Xz: m.Xz, Yx: m.Yx, Yy: m.Yy, Yz: m.Yz, Zx: m.Zx, Zy: m.Zy, Zz: m.Zz}
		inv.SetM(&rot)
	} else {
		inv = lin.Q{W: 1}
	}
	var localAxis lin.V3
	localAxis.MultQ(&axis, &inv)
	var out lin.Q
	out.SetAa(localAxis.X, localAxis.Y, localAxis.Z, angle)
	return out
}

// blendQ slerps joint idx's current rotation toward current*delta by
// weight and writes the result back onto the pose.
func blendQ(pose *SkeletonPose, idx int, delta lin.Q, weight float64) {
	t := pose.JointSpaceTransform(idx)
	var target lin.Q
	target.Mult(&t.Rot, &delta)
	var blended lin.Q
	blended.Slerp(&t.Rot, &target, weight)
	t.Rot = blended
	pose.SetJointSpaceTransform(idx, t)
}
