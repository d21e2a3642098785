package lin

// V3 and V4 are the 3- and 4-element vectors used for points, directions,
// and homogeneous coordinates throughout the engine. Every method writes
// its result into the receiver and returns the receiver, so callers chain
// calls without allocating intermediate vectors on the hot path (the scene
// graph's transform propagation runs this package's vector math once per
// primitive per frame).

import (
	"math"
)

// V3 is a three-element vector: X increases rightward, Y increases upward,
// Z increases out of the screen (right-handed view space). Also used as a
// plain 3D point.
type V3 struct {
	X, Y, Z float64
}

// V4 is a four-element vector. As a point W is 1; as a direction W is 0.
type V4 struct {
	X, Y, Z, W float64
}

// NewV3 allocates a zeroed 3D vector.
func NewV3() *V3 { return &V3{} }

// NewV3S allocates a 3D vector with the given components.
func NewV3S(x, y, z float64) *V3 { return &V3{X: x, Y: y, Z: z} }

// NewV4 allocates a zeroed 4D vector.
func NewV4() *V4 { return &V4{} }

// NewV4S allocates a 4D vector with the given components.
func NewV4S(x, y, z, w float64) *V4 { return &V4{X: x, Y: y, Z: z, W: w} }

// --- equality ---------------------------------------------------------

// Eq reports whether v and a have identical components.
func (v *V3) Eq(a *V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Eq reports whether v and a have identical components.
func (v *V4) Eq(a *V4) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z && v.W == a.W }

// Aeq reports whether v and a are equal to within Epsilon, component-wise.
func (v *V3) Aeq(a *V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// AeqZ reports whether v's squared length is close enough to zero to treat
// as the zero vector.
func (v *V3) AeqZ() bool { return v.Dot(v) < Epsilon }

// AeqZ reports whether v's squared length is close enough to zero to treat
// as the zero vector.
func (v *V4) AeqZ() bool { return v.Dot(v) < Epsilon }

// --- get/set/copy ------------------------------------------------------

// GetS returns v's components as separate values.
func (v *V3) GetS() (x, y, z float64) { return v.X, v.Y, v.Z }

// GetS returns v's components as separate values.
func (v *V4) GetS() (x, y, z, w float64) { return v.X, v.Y, v.Z, v.W }

// SetS assigns x, y, z to v's components and returns v.
func (v *V3) SetS(x, y, z float64) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// SetS assigns x, y, z, w to v's components and returns v.
func (v *V4) SetS(x, y, z, w float64) *V4 {
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// Set copies a's components into v and returns v.
func (v *V3) Set(a *V3) *V3 { return v.SetS(a.X, a.Y, a.Z) }

// Set copies a's components into v and returns v.
func (v *V4) Set(a *V4) *V4 { return v.SetS(a.X, a.Y, a.Z, a.W) }

// Swap exchanges v's and a's components and returns v.
func (v *V3) Swap(a *V3) *V3 {
	v.X, a.X = a.X, v.X
	v.Y, a.Y = a.Y, v.Y
	v.Z, a.Z = a.Z, v.Z
	return v
}

// Swap exchanges v's and a's components and returns v.
func (v *V4) Swap(a *V4) *V4 {
	v.X, a.X = a.X, v.X
	v.Y, a.Y = a.Y, v.Y
	v.Z, a.Z = a.Z, v.Z
	v.W, a.W = a.W, v.W
	return v
}

// --- component-wise extrema/abs/negate ---------------------------------

// Min sets v to the component-wise minimum of a and b, and returns v.
func (v *V3) Min(a, b *V3) *V3 {
	v.X, v.Y, v.Z = math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)
	return v
}

// Min sets v to the component-wise minimum of a and b, and returns v.
func (v *V4) Min(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z), math.Min(a.W, b.W)
	return v
}

// Max sets v to the component-wise maximum of a and b, and returns v.
func (v *V3) Max(a, b *V3) *V3 {
	v.X, v.Y, v.Z = math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)
	return v
}

// Max sets v to the component-wise maximum of a and b, and returns v.
func (v *V4) Max(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z), math.Max(a.W, b.W)
	return v
}

// Abs sets each of v's components to its own absolute value and returns v.
func (v *V3) Abs() *V3 {
	v.X, v.Y, v.Z = math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	return v
}

// Abs sets each of v's components to its own absolute value and returns v.
func (v *V4) Abs() *V4 {
	v.X, v.Y, v.Z, v.W = math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z), math.Abs(v.W)
	return v
}

// Neg sets v to the negation of a and returns v.
func (v *V3) Neg(a *V3) *V3 {
	v.X, v.Y, v.Z = -a.X, -a.Y, -a.Z
	return v
}

// Neg sets v to the negation of a and returns v.
func (v *V4) Neg(a *V4) *V4 {
	v.X, v.Y, v.Z, v.W = -a.X, -a.Y, -a.Z, -a.W
	return v
}

// --- arithmetic ---------------------------------------------------------

// Add sets v to a+b (component-wise) and returns v. v may alias a or b,
// so v.Add(v, b) works as +=.
func (v *V3) Add(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Add sets v to a+b (component-wise) and returns v.
func (v *V4) Add(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = a.X+b.X, a.Y+b.Y, a.Z+b.Z, a.W+b.W
	return v
}

// Sub sets v to a-b (component-wise) and returns v. v may alias a or b,
// so v.Sub(v, b) works as -=.
func (v *V3) Sub(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Sub sets v to a-b (component-wise) and returns v.
func (v *V4) Sub(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = a.X-b.X, a.Y-b.Y, a.Z-b.Z, a.W-b.W
	return v
}

// Mult sets v to the component-wise product of a and b and returns v.
func (v *V3) Mult(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X*b.X, a.Y*b.Y, a.Z*b.Z
	return v
}

// Mult sets v to the component-wise product of a and b and returns v.
func (v *V4) Mult(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = a.X*b.X, a.Y*b.Y, a.Z*b.Z, a.W*b.W
	return v
}

// Scale sets v to a scaled by s and returns v.
func (v *V3) Scale(a *V3, s float64) *V3 {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Scale sets v to a scaled by s and returns v.
func (v *V4) Scale(a *V4, s float64) *V4 {
	v.X, v.Y, v.Z, v.W = a.X*s, a.Y*s, a.Z*s, a.W*s
	return v
}

// Div divides each of v's components by s and returns v. v is left
// unchanged if s is zero.
func (v *V3) Div(s float64) *V3 {
	if s == 0 {
		return v
	}
	inv := 1 / s
	v.X, v.Y, v.Z = v.X*inv, v.Y*inv, v.Z*inv
	return v
}

// Div divides each of v's components by s and returns v. v is left
// unchanged if s is zero.
func (v *V4) Div(s float64) *V4 {
	if s == 0 {
		return v
	}
	inv := 1 / s
	v.X, v.Y, v.Z, v.W = v.X*inv, v.Y*inv, v.Z*inv, v.W*inv
	return v
}

// --- products, lengths, angles -----------------------------------------

// Dot returns the dot product of v and a.
func (v *V3) Dot(a *V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Dot returns the dot product of v and a.
func (v *V4) Dot(a *V4) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W }

// Len returns the Euclidean length of v.
func (v *V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of v, avoiding the square root.
func (v *V3) LenSqr() float64 { return v.Dot(v) }

// Len returns the Euclidean length of v.
func (v *V4) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of v, avoiding the square root.
func (v *V4) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between the points v and a.
func (v *V3) Dist(a *V3) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the squared distance between the points v and a.
func (v *V3) DistSqr(a *V3) float64 {
	dx, dy, dz := a.X-v.X, a.Y-v.Y, a.Z-v.Z
	return dx*dx + dy*dy + dz*dz
}

// Ang returns the angle in radians between v and a, or 0 if either has
// zero length.
func (v *V3) Ang(a *V3) float64 {
	denom := math.Sqrt(v.Dot(v) * a.Dot(a))
	if denom == 0 {
		return 0
	}
	return math.Acos(v.Dot(a) / denom)
}

// Unit scales v to unit length and returns v. v is left unchanged if its
// length is zero.
func (v *V3) Unit() *V3 {
	if l := v.Len(); l != 0 {
		return v.Div(l)
	}
	return v
}

// Unit scales v to unit length and returns v. v is left unchanged if its
// length is zero.
func (v *V4) Unit() *V4 {
	if l := v.Len(); l != 0 {
		return v.Div(l)
	}
	return v
}

// Cross sets v to the cross product a×b, the vector perpendicular to both
// a and b, and returns v.
func (v *V3) Cross(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X
	return v
}

// --- interpolation -------------------------------------------------------

// Lerp sets v to the linear interpolation between a and b by ratio (0
// returns a, 1 returns b) and returns v.
func (v *V3) Lerp(a, b *V3, ratio float64) *V3 {
	v.X, v.Y, v.Z = Lerp(a.X, b.X, ratio), Lerp(a.Y, b.Y, ratio), Lerp(a.Z, b.Z, ratio)
	return v
}

// Lerp sets v to the linear interpolation between a and b by ratio and
// returns v.
func (v *V4) Lerp(a, b *V4, ratio float64) *V4 {
	v.X, v.Y, v.Z, v.W = Lerp(a.X, b.X, ratio), Lerp(a.Y, b.Y, ratio), Lerp(a.Z, b.Z, ratio), Lerp(a.W, b.W, ratio)
	return v
}

// Nlerp sets v to the normalized linear interpolation between a and b by
// ratio and returns v: cheaper than a true spherical interpolation, and a
// reasonable approximation for small angles between a and b.
func (v *V3) Nlerp(a, b *V3, ratio float64) *V3 { return v.Lerp(a, b, ratio).Unit() }

// Nlerp sets v to the normalized linear interpolation between a and b by
// ratio and returns v.
func (v *V4) Nlerp(a, b *V4, ratio float64) *V4 { return v.Lerp(a, b, ratio).Unit() }

// Plane fills p and q with two vectors that, together with v, form an
// orthogonal basis: p and q are each perpendicular to v and to each other.
// v itself is treated as a normal and is unchanged.
func (v *V3) Plane(p, q *V3) {
	const invSqrt2 = 0.70710678118654752440
	if math.Abs(v.Z) > invSqrt2 {
		// v is mostly along Z: build p in the Y-Z plane, q = v × p.
		a := v.Y*v.Y + v.Z*v.Z
		k := 1 / math.Sqrt(a)
		p.X, p.Y, p.Z = 0, -v.Z*k, v.Y*k
		q.X, q.Y, q.Z = a*k, -v.X*p.Z, v.X*p.Y
		return
	}
	// v is mostly along X or Y: build p in the X-Y plane, q = v × p.
	a := v.X*v.X + v.Y*v.Y
	k := 1 / math.Sqrt(a)
	p.X, p.Y, p.Z = -v.Y*k, v.X*k, 0
	q.X, q.Y, q.Z = -v.Z*p.Y, v.Z*p.X, a*k
}

// --- vector * matrix -----------------------------------------------------

// MultvM sets v to the product of row vector rv and matrix m (rv * m) and
// returns v.
func (v *V3) MultvM(rv *V3, m *M3) *V3 {
	x := rv.X*m.Xx + rv.Y*m.Yx + rv.Z*m.Zx
	y := rv.X*m.Xy + rv.Y*m.Yy + rv.Z*m.Zy
	z := rv.X*m.Xz + rv.Y*m.Yz + rv.Z*m.Zz
	v.X, v.Y, v.Z = x, y, z
	return v
}

// MultvM sets v to the product of row vector rv and matrix m (rv * m) and
// returns v.
func (v *V4) MultvM(rv *V4, m *M4) *V4 {
	x := rv.X*m.Xx + rv.Y*m.Yx + rv.Z*m.Zx + rv.W*m.Wx
	y := rv.X*m.Xy + rv.Y*m.Yy + rv.Z*m.Zy + rv.W*m.Wy
	z := rv.X*m.Xz + rv.Y*m.Yz + rv.Z*m.Zz + rv.W*m.Wz
	w := rv.X*m.Xw + rv.Y*m.Yw + rv.Z*m.Zw + rv.W*m.Ww
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// MultMv sets v to the product of matrix m and column vector cv (m * cv)
// and returns v.
func (v *V3) MultMv(m *M3, cv *V3) *V3 {
	x := m.Xx*cv.X + m.Xy*cv.Y + m.Xz*cv.Z
	y := m.Yx*cv.X + m.Yy*cv.Y + m.Yz*cv.Z
	z := m.Zx*cv.X + m.Zy*cv.Y + m.Zz*cv.Z
	v.X, v.Y, v.Z = x, y, z
	return v
}

// MultMv sets v to the product of matrix m and column vector cv (m * cv)
// and returns v.
func (v *V4) MultMv(m *M4, cv *V4) *V4 {
	x := m.Xx*cv.X + m.Xy*cv.Y + m.Xz*cv.Z + m.Xw*cv.W
	y := m.Yx*cv.X + m.Yy*cv.Y + m.Yz*cv.Z + m.Yw*cv.W
	z := m.Zx*cv.X + m.Zy*cv.Y + m.Zz*cv.Z + m.Zw*cv.W
	w := m.Wx*cv.X + m.Wy*cv.Y + m.Wz*cv.Z + m.Ww*cv.W
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// --- vector * quaternion ---------------------------------------------------

// MultQ rotates vector a by quaternion q and stores the result in v. a and
// q are unchanged. Uses the cross-product form (two cross products instead
// of a full quaternion-conjugate sandwich) rather than the textbook
// q*v*q⁻¹ expansion.
func (v *V3) MultQ(a *V3, q *Q) *V3 {
	// t = 2 * (q.xyz × a)
	tx, ty, tz := 2*(q.Y*a.Z-q.Z*a.Y), 2*(q.Z*a.X-q.X*a.Z), 2*(q.X*a.Y-q.Y*a.X)
	// v' = a + q.w*t + (q.xyz × t)
	cx, cy, cz := q.Y*tz-q.Z*ty, q.Z*tx-q.X*tz, q.X*ty-q.Y*tx
	v.X, v.Y, v.Z = a.X+q.W*tx+cx, a.Y+q.W*ty+cy, a.Z+q.W*tz+cz
	return v
}

// MultvQ rotates vector a by quaternion q and stores the result in v, via
// the scalar form MultSQ.
func (v *V3) MultvQ(a *V3, q *Q) *V3 {
	v.X, v.Y, v.Z = MultSQ(a.X, a.Y, a.Z, q)
	return v
}

// MultSQ rotates the point (x, y, z) by quaternion q and returns the
// rotated coordinates, without requiring the caller to have them packaged
// in a V3.
func MultSQ(x, y, z float64, q *Q) (rx, ry, rz float64) {
	// Derivation: q*v*q⁻¹ expanded and regrouped to avoid building the
	// conjugate quaternion, following the standard "fast path" form.
	k0 := q.W*q.W - 0.5
	k1 := x*q.X + y*q.Y + z*q.Z // q.xyz . v

	rx = x*k0 + q.X*k1
	ry = y*k0 + q.Y*k1
	rz = z*k0 + q.Z*k1

	rx += q.W * (q.Y*z - q.Z*y)
	ry += q.W * (q.Z*x - q.X*z)
	rz += q.W * (q.X*y - q.Y*x)

	return rx + rx, ry + ry, rz + rz
}

// --- vector * transform ---------------------------------------------------

// AppT sets v to transform t applied to point a and returns v. a is
// unchanged.
func (v *V3) AppT(t *T, a *V3) *V3 {
	v.X, v.Y, v.Z = t.AppS(a.X, a.Y, a.Z)
	return v
}
