// Package scene implements the primitive/container scene graph of spec §3/§4.1:
// Primitive and ContainerPrimitive nodes linked by a non-owning parent
// pointer, with global transforms kept in sync as local transforms change.
package scene

import "github.com/kwcore/engine/math/lin"

// Transform is spec §3's Transform: translation, unit-quaternion rotation,
// and non-uniform per-axis scale, applied in that order when mapping a point
// from this transform's local space into its parent's space (matching the
// teacher's part.modelTransform: "scale is applied first... translate is
// applied last").
type Transform struct {
	Loc   lin.V3
	Rot   lin.Q
	Scale lin.V3
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{Rot: lin.Q{W: 1}, Scale: lin.V3{X: 1, Y: 1, Z: 1}}
}

// Apply maps p, a point in t's local space, into t's parent space:
// parent_p = t.Loc + t.Rot*(t.Scale ⊙ p).
func (t Transform) Apply(p lin.V3) lin.V3 {
	scaled := lin.V3{X: p.X * t.Scale.X, Y: p.Y * t.Scale.Y, Z: p.Z * t.Scale.Z}
	var rotated lin.V3
	rotated.MultQ(&scaled, &t.Rot)
	var out lin.V3
	out.Add(&t.Loc, &rotated)
	return out
}

// ApplyInverse maps p, a point in t's parent space, back into t's local
// space: local_p = t.Scale⁻¹ ⊙ (t.Rot⁻¹ * (p - t.Loc)). Used by the two-joint
// IK solver (spec §4.7) to bring a world-space target into a primitive's
// model space.
func (t Transform) ApplyInverse(p lin.V3) lin.V3 {
	var delta lin.V3
	delta.Sub(&p, &t.Loc)
	var inv lin.Q
	inv.Inv(&t.Rot)
	var rotated lin.V3
	rotated.MultQ(&delta, &inv)
	return lin.V3{X: rotated.X / t.Scale.X, Y: rotated.Y / t.Scale.Y, Z: rotated.Z / t.Scale.Z}
}

// InverseRotate rotates v by t's inverse rotation, ignoring translation and
// scale. Spec §4.7 pre-transforms each IK axis "by the inverse global
// rotation of the corresponding joint" before building the swing rotation.
func (t Transform) InverseRotate(v lin.V3) lin.V3 {
	var inv lin.Q
	inv.Inv(&t.Rot)
	var out lin.V3
	out.MultQ(&v, &inv)
	return out
}

// Compose returns the global transform of a node whose local transform is
// local and whose parent's global transform is parent, per spec §4.1:
// global = local * parent.global. Non-uniform parent scale combined with a
// rotated child is the one case where this is an approximation rather than
// an exact TRS composition (scale and rotation don't commute once the scale
// is non-uniform); every engine in this lineage accepts the same trade-off
// rather than representing shear.
func Compose(local, parent Transform) Transform {
	return Transform{
		Loc:   parent.Apply(local.Loc),
		Rot:   mulQ(local.Rot, parent.Rot),
		Scale: lin.V3{X: parent.Scale.X * local.Scale.X, Y: parent.Scale.Y * local.Scale.Y, Z: parent.Scale.Z * local.Scale.Z},
	}
}

// Decompose is Compose's inverse: given a desired global transform and the
// parent's current global transform, it returns the local transform that,
// composed with parent, reproduces global exactly. Spec §4.1's
// set_global_transform uses this to keep the local/global pair consistent.
func Decompose(global, parent Transform) Transform {
	var parentInv lin.Q
	parentInv.Inv(&parent.Rot)

	var delta lin.V3
	delta.Sub(&global.Loc, &parent.Loc)
	var rotatedBack lin.V3
	rotatedBack.MultQ(&delta, &parentInv)
	loc := lin.V3{X: rotatedBack.X / parent.Scale.X, Y: rotatedBack.Y / parent.Scale.Y, Z: rotatedBack.Z / parent.Scale.Z}

	return Transform{
		Loc:   loc,
		Rot:   mulQ(global.Rot, parentInv),
		Scale: lin.V3{X: global.Scale.X / parent.Scale.X, Y: global.Scale.Y / parent.Scale.Y, Z: global.Scale.Z / parent.Scale.Z},
	}
}

// mulQ returns a*b without requiring either operand to be addressable by the
// caller (lin.Q's Mult takes pointers to the two factors).
func mulQ(a, b lin.Q) lin.Q {
	var out lin.Q
	out.Mult(&a, &b)
	return out
}
