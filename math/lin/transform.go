package lin

import "math"

// T is a rigid transform: rotation plus translation, no scale or shear. It
// exists because most of what moves through the scene graph each frame
// (joints, cameras, physics actors) only ever needs rotate-then-translate,
// and carrying that as a Q/V3 pair instead of a full M4 skips the unused
// scale/shear terms on every composition.
type T struct {
	Loc *V3
	Rot *Q
}

// NewT allocates a transform at the origin with no rotation.
func NewT() *T { return &T{Loc: &V3{}, Rot: &Q{W: 1}} }

func (t *T) Eq(a *T) bool  { return t.Rot.Eq(a.Rot) && t.Loc.Eq(a.Loc) }
func (t *T) Aeq(a *T) bool { return t.Rot.Aeq(a.Rot) && t.Loc.Aeq(a.Loc) }

// Set copies transform a into t.
func (t *T) Set(a *T) *T {
	t.Loc.Set(a.Loc)
	t.Rot.Set(a.Rot)
	return t
}

// SetI resets t to the identity transform: origin, no rotation.
func (t *T) SetI() *T {
	t.Loc.SetS(0, 0, 0)
	t.Rot.Set(QI)
	return t
}

// SetVQ sets t's location and rotation directly.
func (t *T) SetVQ(loc *V3, rot *Q) *T {
	t.Loc.Set(loc)
	t.Rot.Set(rot)
	return t
}

// SetAa sets t's rotation from an axis and angle in radians, leaving the
// location unchanged.
func (t *T) SetAa(ax, ay, az, ang float64) *T {
	t.Rot.SetAa(ax, ay, az, ang)
	return t
}

// SetLoc sets t's location, leaving the rotation unchanged.
func (t *T) SetLoc(lx, ly, lz float64) *T {
	t.Loc.X, t.Loc.Y, t.Loc.Z = lx, ly, lz
	return t
}

// SetRot sets t's rotation directly from quaternion components, leaving the
// location unchanged.
func (t *T) SetRot(x, y, z, w float64) *T {
	t.Rot.X, t.Rot.Y, t.Rot.Z, t.Rot.W = x, y, z, w
	return t
}

// Mult sets t to the composite of transforms a and b: t.Loc is a.Loc plus
// b.Loc rotated by a.Rot, and t.Rot is Q.Mult(a.Rot, b.Rot), which applies
// a's rotation and then b's. t may alias a or b.
func (t *T) Mult(a, b *T) *T {
	lx, ly, lz := a.Loc.GetS() // snapshot before Loc is overwritten below.
	t.Loc.MultvQ(b.Loc, a.Rot)
	t.Loc.X, t.Loc.Y, t.Loc.Z = t.Loc.X+lx, t.Loc.Y+ly, t.Loc.Z+lz
	t.Rot.Mult(a.Rot, b.Rot)
	return t
}

// App applies t to point v in place (rotate then translate) and returns v.
func (t *T) App(v *V3) *V3 {
	v.MultvQ(v, t.Rot)
	return v.Add(v, t.Loc)
}

// AppS applies t to the scalar point (x, y, z), returning the transformed
// coordinates without requiring a V3 wrapper.
func (t *T) AppS(x, y, z float64) (vx, vy, vz float64) {
	vx, vy, vz = MultSQ(x, y, z, t.Rot)
	return vx + t.Loc.X, vy + t.Loc.Y, vz + t.Loc.Z
}

// AppR applies only t's rotation to (x, y, z), skipping the translation.
func (t *T) AppR(x, y, z float64) (vx, vy, vz float64) { return MultSQ(x, y, z, t.Rot) }

// Inv applies the inverse of t to point v in place (inverse translate then
// inverse rotate) and returns v.
func (t *T) Inv(v *V3) *V3 {
	v.Sub(v, t.Loc)
	v.X, v.Y, v.Z = t.appRInv(v.X, v.Y, v.Z)
	return v
}

// InvS applies the inverse of t to the scalar point (x, y, z).
func (t *T) InvS(x, y, z float64) (vx, vy, vz float64) {
	return t.appRInv(x-t.Loc.X, y-t.Loc.Y, z-t.Loc.Z)
}

// appRInv rotates (x, y, z) by the inverse of t's rotation, shared by Inv
// and InvS.
func (t *T) appRInv(x, y, z float64) (vx, vy, vz float64) {
	inv := &Q{X: -t.Rot.X, Y: -t.Rot.Y, Z: -t.Rot.Z, W: t.Rot.W}
	return MultSQ(x, y, z, inv)
}

// Integrate sets t to transform a advanced by linear velocity linv and
// angular velocity angv over duration dt. t and a must be distinct; linv
// and angv are read-only. Ported from bullet physics'
// btTransformUtil::integrateTransform, using the exponential-map approach
// from Grassia's "Practical Parameterization of Rotations".
func (t *T) Integrate(a *T, linv, angv *V3, dt float64) *T {
	t.Loc.X = a.Loc.X + linv.X*dt
	t.Loc.Y = a.Loc.Y + linv.Y*dt
	t.Loc.Z = a.Loc.Z + linv.Z*dt

	const motionLimit = 0.5 * HalfPi
	angLen := angv.Len()
	if angLen*dt > motionLimit {
		angLen = motionLimit / dt
	}

	var fac float64
	if angLen < 0.001 {
		fac = 0.5*dt - dt*dt*dt*0.020833333333*angLen*angLen // Taylor expansion of sinc.
	} else {
		fac = math.Sin(0.5*angLen*dt) / angLen
	}

	rx, ry, rz, rw := a.Rot.X, a.Rot.Y, a.Rot.Z, a.Rot.W
	sx, sy, sz, sw := angv.X*fac, angv.Y*fac, angv.Z*fac, math.Cos(angLen*dt*0.5)
	t.Rot.X = rw*sx + rx*sw - ry*sz + rz*sy
	t.Rot.Y = rw*sy + rx*sz + ry*sw - rz*sx
	t.Rot.Z = rw*sz - rx*sy + ry*sx + rz*sw
	t.Rot.W = rw*sw - rx*sx - ry*sy - rz*sz
	t.Rot.Unit()
	return t
}
