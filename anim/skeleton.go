// Package anim implements spec §4.5-§4.7: Animation resources, SkeletonPose
// model-space derivation, the BlendTree/MotionGraph evaluation pipeline, and
// the two-joint IK solver.
package anim

import (
	"github.com/jinzhu/copier"

	"github.com/kwcore/engine/math/lin"
	"github.com/kwcore/engine/scene"
)

// SkeletonPose is spec §3's ordered sequence of joint-space transforms plus
// a lazily built parallel sequence of model-space matrices.
type SkeletonPose struct {
	parents []int32 // parent[i] < i for all i, or -1 for the root.
	joints  []scene.Transform

	dirty bool
	model []lin.M4
}

// NewSkeletonPose returns a pose with len(parents) joints, all at identity,
// whose parent chain is parents (parents[i] must be < i or -1).
func NewSkeletonPose(parents []int32) *SkeletonPose {
	joints := make([]scene.Transform, len(parents))
	for i := range joints {
		joints[i] = scene.Identity()
	}
	return &SkeletonPose{parents: append([]int32(nil), parents...), joints: joints, dirty: true}
}

// JointCount returns the number of joints in the pose.
func (p *SkeletonPose) JointCount() int { return len(p.joints) }

// JointSpaceTransform returns joint i's current local transform.
func (p *SkeletonPose) JointSpaceTransform(i int) scene.Transform { return p.joints[i] }

// SetJointSpaceTransform writes slot i and marks model-space dirty, per
// spec §4.5.
func (p *SkeletonPose) SetJointSpaceTransform(i int, t scene.Transform) {
	p.joints[i] = t
	p.dirty = true
}

// BuildModelSpaceMatrices recomputes (if dirty) and returns the model-space
// matrix for every joint, in joint order, where parents always precede
// children. The returned slice is owned by p; callers must not retain it
// across a later mutating call.
func (p *SkeletonPose) BuildModelSpaceMatrices() []lin.M4 {
	if !p.dirty && len(p.model) == len(p.joints) {
		return p.model
	}
	if len(p.model) != len(p.joints) {
		p.model = make([]lin.M4, len(p.joints))
	}
	for i, parent := range p.parents {
		local := toMatrix(p.joints[i])
		if parent < 0 {
			p.model[i] = local
			continue
		}
		p.model[i].Mult(&local, &p.model[parent])
	}
	p.dirty = false
	return p.model
}

// ApplyInverseBindMatrices multiplies each of p's model-space matrices by
// the skeleton's corresponding inverse-bind matrix, in place, per spec
// §4.5. Call BuildModelSpaceMatrices first; this does not itself trigger a
// rebuild since the two are meant to run back-to-back in a single pass.
func (p *SkeletonPose) ApplyInverseBindMatrices(inverseBind []lin.M4) {
	for i := range p.model {
		if i >= len(inverseBind) {
			break
		}
		p.model[i].Mult(&p.model[i], &inverseBind[i])
	}
}

// ModelSpaceMatrix returns joint i's most recently built model-space
// matrix without forcing a rebuild.
func (p *SkeletonPose) ModelSpaceMatrix(i int) lin.M4 { return p.model[i] }

// Lerp blends p and other joint-by-joint (translation/scale linear,
// rotation shortest-path slerp) by factor and returns a new pose. If the
// two poses have different joint counts, the shorter one is padded with
// identity transforms, per spec §4.5.
func (p *SkeletonPose) Lerp(other *SkeletonPose, factor float64) *SkeletonPose {
	n := len(p.joints)
	if len(other.joints) > n {
		n = len(other.joints)
	}
	out := &SkeletonPose{parents: longestParents(p, other), joints: make([]scene.Transform, n), dirty: true}
	for i := 0; i < n; i++ {
		a, b := scene.Identity(), scene.Identity()
		if i < len(p.joints) {
			a = p.joints[i]
		}
		if i < len(other.joints) {
			b = other.joints[i]
		}
		out.joints[i] = lerpTransform(a, b, factor)
	}
	return out
}

func longestParents(a, b *SkeletonPose) []int32 {
	if len(a.parents) >= len(b.parents) {
		return append([]int32(nil), a.parents...)
	}
	return append([]int32(nil), b.parents...)
}

// lerpTransform blends translation and scale linearly and rotation via
// shortest-path slerp, matching SkeletonPose.Lerp's joint-by-joint rule.
func lerpTransform(a, b scene.Transform, factor float64) scene.Transform {
	var loc, scaleV lin.V3
	loc.Lerp(&a.Loc, &b.Loc, factor)
	scaleV.Lerp(&a.Scale, &b.Scale, factor)
	var rot lin.Q
	rot.Slerp(&a.Rot, &b.Rot, factor)
	return scene.Transform{Loc: loc, Rot: rot, Scale: scaleV}
}

// toMatrix builds the scale-then-rotate-then-translate model matrix for a
// single joint transform. The matrix maps row vectors (translation in the W
// row, composed local-then-parent), so its rotation block is the transpose
// of what SetQ gives for t.Rot, i.e. SetQ of the inverse rotation.
func toMatrix(t scene.Transform) lin.M4 {
	var m lin.M4
	var rot lin.Q
	m.SetQ(rot.Inv(&t.Rot))
	m.ScaleSM(t.Scale.X, t.Scale.Y, t.Scale.Z)
	m.TranslateMT(t.Loc.X, t.Loc.Y, t.Loc.Z)
	return m
}

// Clone returns a deep copy of p, independent of any further mutation to
// either pose: the copy shares no backing slices with p.
func (p *SkeletonPose) Clone() *SkeletonPose {
	out := &SkeletonPose{}
	copier.Copy(out, p) //nolint:errcheck // copier.Copy only errors on mismatched exported field types; SkeletonPose -> SkeletonPose never does.
	out.parents = append([]int32(nil), p.parents...)
	out.joints = append([]scene.Transform(nil), p.joints...)
	out.model = append([]lin.M4(nil), p.model...)
	return out
}
