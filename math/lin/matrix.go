package lin

// M3 and M4 are row-major 3x3 and 4x4 matrices with individually addressable
// elements: Xx Xy Xz is the X axis, Yx Yy Yz the Y axis, and so on, with the
// translation of an M4 living in its W row. A vector-point (x,y,z,1) times a
// transform matrix always comes out as
//    x' = x*Xx + y*Yx + z*Zx + Wx
//    y' = x*Xy + y*Yy + z*Zy + Wy
//    z' = x*Xz + y*Yz + z*Zz + Wz
// regardless of whether a given graphics API calls that row- or
// column-major; what matters is that scale, rotate, translate get applied
// in that order consistently everywhere in this package.
//
// Rotation-by-matrix is intentionally absent: joints and cameras track
// orientation with a Q and convert to M3/M4 only at the point a renderer
// needs a matrix, via SetQ.

import "math"

type M3 struct {
	Xx, Xy, Xz float64
	Yx, Yy, Yz float64
	Zx, Zy, Zz float64
}

type M4 struct {
	Xx, Xy, Xz, Xw float64
	Yx, Yy, Yz, Yw float64
	Zx, Zy, Zz, Zw float64
	Wx, Wy, Wz, Ww float64
}

// M3Z and M4Z are shared zero-matrix references. Never write through them.
var (
	M3Z = &M3{}
	M4Z = &M4{}
)

// M3I and M4I are shared identity-matrix references. Never write through them.
var (
	M3I = &M3{Xx: 1, Yy: 1, Zz: 1}
	M4I = &M4{Xx: 1, Yy: 1, Zz: 1, Ww: 1}
)

// NewM3 and NewM4 allocate zero matrices.
func NewM3() *M3 { return &M3{} }
func NewM4() *M4 { return &M4{} }

// NewM3I and NewM4I allocate fresh identity matrices, for callers that
// need one they can mutate without disturbing M3I/M4I.
func NewM3I() *M3 { return &M3{Xx: 1, Yy: 1, Zz: 1} }
func NewM4I() *M4 { return &M4{Xx: 1, Yy: 1, Zz: 1, Ww: 1} }

// --- equality -----------------------------------------------------------

func (m *M3) Eq(a *M3) bool {
	return m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz
}

func (m *M4) Eq(a *M4) bool {
	return m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz && m.Xw == a.Xw &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz && m.Yw == a.Yw &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz && m.Zw == a.Zw &&
		m.Wx == a.Wx && m.Wy == a.Wy && m.Wz == a.Wz && m.Ww == a.Ww
}

func (m *M3) Aeq(a *M3) bool {
	return Aeq(m.Xx, a.Xx) && Aeq(m.Xy, a.Xy) && Aeq(m.Xz, a.Xz) &&
		Aeq(m.Yx, a.Yx) && Aeq(m.Yy, a.Yy) && Aeq(m.Yz, a.Yz) &&
		Aeq(m.Zx, a.Zx) && Aeq(m.Zy, a.Zy) && Aeq(m.Zz, a.Zz)
}

func (m *M4) Aeq(a *M4) bool {
	return Aeq(m.Xx, a.Xx) && Aeq(m.Xy, a.Xy) && Aeq(m.Xz, a.Xz) && Aeq(m.Xw, a.Xw) &&
		Aeq(m.Yx, a.Yx) && Aeq(m.Yy, a.Yy) && Aeq(m.Yz, a.Yz) && Aeq(m.Yw, a.Yw) &&
		Aeq(m.Zx, a.Zx) && Aeq(m.Zy, a.Zy) && Aeq(m.Zz, a.Zz) && Aeq(m.Zw, a.Zw) &&
		Aeq(m.Wx, a.Wx) && Aeq(m.Wy, a.Wy) && Aeq(m.Wz, a.Wz) && Aeq(m.Ww, a.Ww)
}

// --- copy/extract --------------------------------------------------------

// SetS assigns m's nine elements directly, row by row.
func (m *M3) SetS(xx, xy, xz, yx, yy, yz, zx, zy, zz float64) *M3 {
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// Set copies a into m.
func (m *M3) Set(a *M3) *M3 { return m.SetS(a.Xx, a.Xy, a.Xz, a.Yx, a.Yy, a.Yz, a.Zx, a.Zy, a.Zz) }

// Set copies a into m.
func (m *M4) Set(a *M4) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx, a.Xy, a.Xz, a.Xw
	m.Yx, m.Yy, m.Yz, m.Yw = a.Yx, a.Yy, a.Yz, a.Yw
	m.Zx, m.Zy, m.Zz, m.Zw = a.Zx, a.Zy, a.Zz, a.Zw
	m.Wx, m.Wy, m.Wz, m.Ww = a.Wx, a.Wy, a.Wz, a.Ww
	return m
}

// SetM4 takes the upper-left 3x3 block of a, discarding its translation row.
func (m *M3) SetM4(a *M4) *M3 {
	return m.SetS(a.Xx, a.Xy, a.Xz, a.Yx, a.Yy, a.Yz, a.Zx, a.Zy, a.Zz)
}

// Abs sets m's elements to the absolute value of a's corresponding elements.
func (m *M3) Abs(a *M3) *M3 {
	m.Xx, m.Xy, m.Xz = math.Abs(a.Xx), math.Abs(a.Xy), math.Abs(a.Xz)
	m.Yx, m.Yy, m.Yz = math.Abs(a.Yx), math.Abs(a.Yy), math.Abs(a.Yz)
	m.Zx, m.Zy, m.Zz = math.Abs(a.Zx), math.Abs(a.Zy), math.Abs(a.Zz)
	return m
}

// Transpose sets m to a reflected across its diagonal, swapping rows for
// columns. a may alias m.
func (m *M3) Transpose(a *M3) *M3 {
	xy, xz, yz := a.Xy, a.Xz, a.Yz
	m.Xx, m.Xy, m.Xz = a.Xx, a.Yx, a.Zx
	m.Yx, m.Yy, m.Yz = xy, a.Yy, a.Zy
	m.Zx, m.Zy, m.Zz = xz, yz, a.Zz
	return m
}

// Transpose sets m to a reflected across its diagonal. a may alias m.
func (m *M4) Transpose(a *M4) *M4 {
	xy, xz, yz := a.Xy, a.Xz, a.Yz
	xw, yw, zw := a.Xw, a.Yw, a.Zw
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx, a.Yx, a.Zx, a.Wx
	m.Yx, m.Yy, m.Yz, m.Yw = xy, a.Yy, a.Zy, a.Wy
	m.Zx, m.Zy, m.Zz, m.Zw = xz, yz, a.Zz, a.Wz
	m.Wx, m.Wy, m.Wz, m.Ww = xw, yw, zw, a.Ww
	return m
}

// --- add/sub/mult ---------------------------------------------------------

// Add sets m to a+b, element-wise. m may alias a or b, so m.Add(m, b) is +=.
func (m *M3) Add(a, b *M3) *M3 {
	m.Xx, m.Xy, m.Xz = a.Xx+b.Xx, a.Xy+b.Xy, a.Xz+b.Xz
	m.Yx, m.Yy, m.Yz = a.Yx+b.Yx, a.Yy+b.Yy, a.Yz+b.Yz
	m.Zx, m.Zy, m.Zz = a.Zx+b.Zx, a.Zy+b.Zy, a.Zz+b.Zz
	return m
}

// Add sets m to a+b, element-wise.
func (m *M4) Add(a, b *M4) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx+b.Xx, a.Xy+b.Xy, a.Xz+b.Xz, a.Xw+b.Xw
	m.Yx, m.Yy, m.Yz, m.Yw = a.Yx+b.Yx, a.Yy+b.Yy, a.Yz+b.Yz, a.Yw+b.Yw
	m.Zx, m.Zy, m.Zz, m.Zw = a.Zx+b.Zx, a.Zy+b.Zy, a.Zz+b.Zz, a.Zw+b.Zw
	m.Wx, m.Wy, m.Wz, m.Ww = a.Wx+b.Wx, a.Wy+b.Wy, a.Wz+b.Wz, a.Ww+b.Ww
	return m
}

// Sub sets m to a-b, element-wise. m may alias a or b, so m.Sub(m, b) is -=.
func (m *M3) Sub(a, b *M3) *M3 {
	m.Xx, m.Xy, m.Xz = a.Xx-b.Xx, a.Xy-b.Xy, a.Xz-b.Xz
	m.Yx, m.Yy, m.Yz = a.Yx-b.Yx, a.Yy-b.Yy, a.Yz-b.Yz
	m.Zx, m.Zy, m.Zz = a.Zx-b.Zx, a.Zy-b.Zy, a.Zz-b.Zz
	return m
}

// Mult sets m to the matrix product l*r. m may alias l or r, so m.Mult(m, r)
// is *=.
func (m *M3) Mult(l, r *M3) *M3 {
	xx, xy, xz := l.Xx*r.Xx+l.Xy*r.Yx+l.Xz*r.Zx, l.Xx*r.Xy+l.Xy*r.Yy+l.Xz*r.Zy, l.Xx*r.Xz+l.Xy*r.Yz+l.Xz*r.Zz
	yx, yy, yz := l.Yx*r.Xx+l.Yy*r.Yx+l.Yz*r.Zx, l.Yx*r.Xy+l.Yy*r.Yy+l.Yz*r.Zy, l.Yx*r.Xz+l.Yy*r.Yz+l.Yz*r.Zz
	zx, zy, zz := l.Zx*r.Xx+l.Zy*r.Yx+l.Zz*r.Zx, l.Zx*r.Xy+l.Zy*r.Yy+l.Zz*r.Zy, l.Zx*r.Xz+l.Zy*r.Yz+l.Zz*r.Zz
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// Mult sets m to the matrix product l*r.
func (m *M4) Mult(l, r *M4) *M4 {
	xx := l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx + l.Xw*r.Wx
	xy := l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy + l.Xw*r.Wy
	xz := l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz + l.Xw*r.Wz
	xw := l.Xx*r.Xw + l.Xy*r.Yw + l.Xz*r.Zw + l.Xw*r.Ww
	yx := l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx + l.Yw*r.Wx
	yy := l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy + l.Yw*r.Wy
	yz := l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz + l.Yw*r.Wz
	yw := l.Yx*r.Xw + l.Yy*r.Yw + l.Yz*r.Zw + l.Yw*r.Ww
	zx := l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx + l.Zw*r.Wx
	zy := l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy + l.Zw*r.Wy
	zz := l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz + l.Zw*r.Wz
	zw := l.Zx*r.Xw + l.Zy*r.Yw + l.Zz*r.Zw + l.Zw*r.Ww
	wx := l.Wx*r.Xx + l.Wy*r.Yx + l.Wz*r.Zx + l.Ww*r.Wx
	wy := l.Wx*r.Xy + l.Wy*r.Yy + l.Wz*r.Zy + l.Ww*r.Wy
	wz := l.Wx*r.Xz + l.Wy*r.Yz + l.Wz*r.Zz + l.Ww*r.Wz
	ww := l.Wx*r.Xw + l.Wy*r.Yw + l.Wz*r.Zw + l.Ww*r.Ww
	m.Xx, m.Xy, m.Xz, m.Xw = xx, xy, xz, xw
	m.Yx, m.Yy, m.Yz, m.Yw = yx, yy, yz, yw
	m.Zx, m.Zy, m.Zz, m.Zw = zx, zy, zz, zw
	m.Wx, m.Wy, m.Wz, m.Ww = wx, wy, wz, ww
	return m
}

// MultLtR sets m to the product of the transpose of lt with r, without
// materializing the transpose: a shortcut for inverse transforms that would
// otherwise need a separate Transpose call first.
func (m *M3) MultLtR(lt, r *M3) *M3 {
	xx, xy, xz := lt.Xx*r.Xx+lt.Yx*r.Yx+lt.Zx*r.Zx, lt.Xx*r.Xy+lt.Yx*r.Yy+lt.Zx*r.Zy, lt.Xx*r.Xz+lt.Yx*r.Yz+lt.Zx*r.Zz
	yx, yy, yz := lt.Xy*r.Xx+lt.Yy*r.Yx+lt.Zy*r.Zx, lt.Xy*r.Xy+lt.Yy*r.Yy+lt.Zy*r.Zy, lt.Xy*r.Xz+lt.Yy*r.Yz+lt.Zy*r.Zz
	zx, zy, zz := lt.Xz*r.Xx+lt.Yz*r.Yx+lt.Zz*r.Zx, lt.Xz*r.Xy+lt.Yz*r.Yy+lt.Zz*r.Zy, lt.Xz*r.Xz+lt.Yz*r.Yz+lt.Zz*r.Zz
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// --- translate/scale -------------------------------------------------------

// TranslateTM left-multiplies m by a translation built from x, y, z: the
// translation is applied before whatever m already represents.
func (m *M4) TranslateTM(x, y, z float64) *M4 {
	m.Wx, m.Wy, m.Wz, m.Ww =
		x*m.Xx+y*m.Yx+z*m.Zx+m.Wx,
		x*m.Xy+y*m.Yy+z*m.Zy+m.Wy,
		x*m.Xz+y*m.Yz+z*m.Zz+m.Wz,
		x*m.Xw+y*m.Yw+z*m.Zw+m.Ww
	return m
}

// TranslateMT right-multiplies m by a translation built from x, y, z: the
// translation is applied after whatever m already represents.
func (m *M4) TranslateMT(x, y, z float64) *M4 {
	m.Xx, m.Xy, m.Xz = m.Xx+m.Xw*x, m.Xy+m.Xw*y, m.Xz+m.Xw*z
	m.Yx, m.Yy, m.Yz = m.Yx+m.Yw*x, m.Yy+m.Yw*y, m.Yz+m.Yw*z
	m.Zx, m.Zy, m.Zz = m.Zx+m.Zw*x, m.Zy+m.Zw*y, m.Zz+m.Zw*z
	m.Wx, m.Wy, m.Wz = m.Wx+m.Ww*x, m.Wy+m.Ww*y, m.Wz+m.Ww*z
	return m
}

// Scale multiplies every element of m by s.
func (m *M3) Scale(s float64) *M3 {
	m.Xx, m.Xy, m.Xz = m.Xx*s, m.Xy*s, m.Xz*s
	m.Yx, m.Yy, m.Yz = m.Yx*s, m.Yy*s, m.Yz*s
	m.Zx, m.Zy, m.Zz = m.Zx*s, m.Zy*s, m.Zz*s
	return m
}

// Scale multiplies every element of m by s.
func (m *M4) Scale(s float64) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = m.Xx*s, m.Xy*s, m.Xz*s, m.Xw*s
	m.Yx, m.Yy, m.Yz, m.Yw = m.Yx*s, m.Yy*s, m.Yz*s, m.Yw*s
	m.Zx, m.Zy, m.Zz, m.Zw = m.Zx*s, m.Zy*s, m.Zz*s, m.Zw*s
	m.Wx, m.Wy, m.Wz, m.Ww = m.Wx*s, m.Wy*s, m.Wz*s, m.Ww*s
	return m
}

// ScaleS scales the columns of m by x, y, z respectively.
func (m *M3) ScaleS(x, y, z float64) *M3 {
	m.Xx, m.Xy, m.Xz = m.Xx*x, m.Xy*y, m.Xz*z
	m.Yx, m.Yy, m.Yz = m.Yx*x, m.Yy*y, m.Yz*z
	m.Zx, m.Zy, m.Zz = m.Zx*x, m.Zy*y, m.Zz*z
	return m
}

// ScaleV scales each column of m by the matching component of v.
func (m *M3) ScaleV(v *V3) *M3 { return m.ScaleS(v.X, v.Y, v.Z) }

// ScaleSM left-multiplies m by a diagonal scale matrix built from x, y, z:
// m's rows are scaled uniformly (row i scaled by the i-th of x, y, z).
func (m *M3) ScaleSM(x, y, z float64) *M3 {
	m.Xx, m.Xy, m.Xz = m.Xx*x, m.Xy*x, m.Xz*x
	m.Yx, m.Yy, m.Yz = m.Yx*y, m.Yy*y, m.Yz*y
	m.Zx, m.Zy, m.Zz = m.Zx*z, m.Zy*z, m.Zz*z
	return m
}

// ScaleSM left-multiplies m by a diagonal scale matrix built from x, y, z.
func (m *M4) ScaleSM(x, y, z float64) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = m.Xx*x, m.Xy*x, m.Xz*x, m.Xw*x
	m.Yx, m.Yy, m.Yz, m.Yw = m.Yx*y, m.Yy*y, m.Yz*y, m.Yw*y
	m.Zx, m.Zy, m.Zz, m.Zw = m.Zx*z, m.Zy*z, m.Zz*z, m.Zw*z
	return m
}

// ScaleMS right-multiplies m by a diagonal scale matrix built from x, y, z:
// m's columns are scaled (column 0 by x, column 1 by y, column 2 by z).
func (m *M4) ScaleMS(x, y, z float64) *M4 {
	m.Xx, m.Xy, m.Xz = m.Xx*x, m.Xy*y, m.Xz*z
	m.Yx, m.Yy, m.Yz = m.Yx*x, m.Yy*y, m.Yz*z
	m.Zx, m.Zy, m.Zz = m.Zx*x, m.Zy*y, m.Zz*z
	m.Wx, m.Wy, m.Wz = m.Wx*x, m.Wy*y, m.Wz*z
	return m
}

// --- rotation --------------------------------------------------------------

// SetQ sets m to the rotation matrix equivalent to unit quaternion q.
func (m *M3) SetQ(q *Q) *M3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	m.Xx, m.Xy, m.Xz = 1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy)
	m.Yx, m.Yy, m.Yz = 2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx)
	m.Zx, m.Zy, m.Zz = 2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy)
	return m
}

// SetQ sets m to the rotation matrix equivalent to unit quaternion q, with
// the translation row left as identity.
func (m *M4) SetQ(q *Q) *M4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	m.Xx, m.Xy, m.Xz, m.Xw = 1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy), 0
	m.Yx, m.Yy, m.Yz, m.Yw = 2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx), 0
	m.Zx, m.Zy, m.Zz, m.Zw = 2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy), 0
	m.Wx, m.Wy, m.Wz, m.Ww = 0, 0, 0, 1
	return m
}

// SetSkewSym sets m to the skew-symmetric matrix of v, satisfying
// m.MultMv(m, w) == v.Cross(v, w) for any w.
func (m *M3) SetSkewSym(v *V3) *M3 {
	m.Xx, m.Xy, m.Xz = 0, -v.Z, v.Y
	m.Yx, m.Yy, m.Yz = v.Z, 0, -v.X
	m.Zx, m.Zy, m.Zz = -v.Y, v.X, 0
	return m
}

// SetAa sets m to the rotation matrix for the given axis (ax, ay, az) and
// angle in radians. m is left unchanged if the axis has zero length.
func (m *M3) SetAa(ax, ay, az, ang float64) *M3 {
	lenSqr := ax*ax + ay*ay + az*az
	if lenSqr == 0 {
		return m
	}
	inv := 1 / math.Sqrt(lenSqr)
	ax, ay, az = ax*inv, ay*inv, az*inv

	c, s := math.Cos(ang), math.Sin(ang)
	t := 1 - c
	m.Xx, m.Xy, m.Xz = c+ax*ax*t, -az*s+ay*ax*t, ay*s+az*ax*t
	m.Yx, m.Yy, m.Yz = az*s+ax*ay*t, c+ay*ay*t, -ax*s+az*ay*t
	m.Zx, m.Zy, m.Zz = -ay*s+ax*az*t, ax*s+ay*az*t, c+az*az*t
	return m
}

// --- determinant/inverse ----------------------------------------------------

// Det returns the determinant of m, expanded along the top row.
func (m *M3) Det() float64 {
	return m.Xx*(m.Yy*m.Zz-m.Yz*m.Zy) + m.Xy*(m.Yz*m.Zx-m.Yx*m.Zz) + m.Xz*(m.Yx*m.Zy-m.Yy*m.Zx)
}

// Cof returns the cofactor of m for the minor formed by deleting row and col
// (each 0-2). Panics on an out-of-range (row, col) since every call site
// passes a literal pair and a bad one is a programming error, not runtime
// data.
func (m *M3) Cof(row, col int) float64 {
	switch row*3 + col {
	case 0:
		return m.Yy*m.Zz - m.Yz*m.Zy
	case 1:
		return m.Yz*m.Zx - m.Yx*m.Zz
	case 2:
		return m.Yx*m.Zy - m.Yy*m.Zx
	case 3:
		return m.Xz*m.Zy - m.Xy*m.Zz
	case 4:
		return m.Xx*m.Zz - m.Xz*m.Zx
	case 5:
		return m.Xy*m.Zx - m.Xx*m.Zy
	case 6:
		return m.Xy*m.Yz - m.Xz*m.Yy
	case 7:
		return m.Xz*m.Yx - m.Xx*m.Yz
	case 8:
		return m.Xx*m.Yy - m.Xy*m.Yx
	}
	panic("lin: M3.Cof: row/col out of range")
}

// Adj sets m to the adjoint of a: the transpose of a's cofactor matrix.
func (m *M3) Adj(a *M3) *M3 {
	xx, xy, xz := a.Cof(0, 0), a.Cof(1, 0), a.Cof(2, 0)
	yx, yy, yz := a.Cof(0, 1), a.Cof(1, 1), a.Cof(2, 1)
	zx, zy, zz := a.Cof(0, 2), a.Cof(1, 2), a.Cof(2, 2)
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	return m
}

// Inv sets m to the inverse of a. m is left unchanged if a is singular.
func (m *M3) Inv(a *M3) *M3 {
	det := a.Det()
	if det == 0 {
		return m
	}
	s := 1 / det
	m.Adj(a)
	return m.Scale(s)
}

// --- projection --------------------------------------------------------------

// Ortho sets m to an orthographic projection for the given clipping planes.
func (m *M4) Ortho(left, right, bottom, top, near, far float64) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = 2/(right-left), 0, 0, 0
	m.Yx, m.Yy, m.Yz, m.Yw = 0, 2/(top-bottom), 0, 0
	m.Zx, m.Zy, m.Zz, m.Zw = 0, 0, -2/(far-near), 0
	m.Wx = -(right + left) / (right - left)
	m.Wy = -(top + bottom) / (top - bottom)
	m.Wz = -(far + near) / (far - near)
	m.Ww = 1
	return m
}

// Persp sets m to a perspective projection for the given vertical field of
// view in degrees, aspect ratio (height/width), and clipping planes.
func (m *M4) Persp(fov, aspect, near, far float64) *M4 {
	f := 1 / math.Tan(Rad(fov)*0.5)
	m.Xx, m.Yx, m.Zx, m.Wx = f/aspect, 0, 0, 0
	m.Xy, m.Yy, m.Zy, m.Wy = 0, f, 0, 0
	m.Xz, m.Yz, m.Zz, m.Wz = 0, 0, (far+near)/(near-far), 2*far*near/(near-far)
	m.Xw, m.Yw, m.Zw, m.Ww = 0, 0, -1, 0
	return m
}

// PerspInv sets m to the inverse of the perspective projection Persp would
// build for the same arguments, for screen-to-world rays such as mouse
// picking.
func (m *M4) PerspInv(fov, aspect, near, far float64) *M4 {
	f := math.Tan(Rad(fov) * 0.5)
	c := 2 * far * near / (near - far)
	m.Xx, m.Yx, m.Zx, m.Wx = f*aspect, 0, 0, 0
	m.Xy, m.Yy, m.Zy, m.Wy = 0, f, 0, 0
	m.Xz, m.Yz, m.Zz, m.Wz = 0, 0, 0, -1
	m.Xw, m.Yw, m.Zw = 0, 0, 1/c
	m.Ww = -((far + near) / (near - far) / (-c))
	return m
}
