// Package lin is the CPU-side vector/matrix/quaternion/transform math used
// throughout the engine's scene graph, acceleration structures, animation
// blending, and render wiring. It has no dependency on anything else in
// this module so every other package can import it freely.
//
// Everything here favors pointer receivers and in-place writes over
// allocating fresh structs, since the hot path for most of these calls is
// once per primitive per frame: the scene graph's transform propagation,
// the octree's bounds checks, and the skeleton's pose composition all call
// into this package many times a frame.
package lin

import "math"

// Angle and tolerance constants shared by every file in this package.
const (
	PI     float64 = math.Pi
	PIx2   float64 = PI * 2
	HalfPi float64 = PIx2 * 0.25
	DegRad float64 = PIx2 / 360.0 // multiply degrees by this to get radians
	RadDeg float64 = 360.0 / PIx2 // multiply radians by this to get degrees

	Large float64 = math.MaxFloat32
	Sqrt2 float64 = math.Sqrt2
	Sqrt3 float64 = 1.73205

	// Epsilon bounds how close two floats need to be before Aeq/AeqZ treat
	// them as equal.
	Epsilon float64 = 0.000001
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * DegRad }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * RadDeg }

// AeqZ reports whether x is close enough to zero to treat as zero.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq reports whether a and b are close enough to treat as equal.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Lerp linearly interpolates between a and b by ratio, where ratio 0
// returns a and ratio 1 returns b.
func Lerp(a, b, ratio float64) float64 { return a + (b-a)*ratio }

// Max3 returns the largest of three values.
func Max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Min3 returns the smallest of three values.
func Min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Atan2F approximates atan2 with a bounded-error rational polynomial
// instead of the full trig implementation, for callers that run it every
// frame and don't need last-bit precision.
func Atan2F(y, x float64) float64 {
	const coeff1 = PI / 4
	const coeff2 = 3 * coeff1
	absY := math.Abs(y)

	var angle float64
	if x >= 0 {
		r := (x - absY) / (x + absY)
		angle = coeff1 - coeff1*r
	} else {
		r := (x + absY) / (absY - x)
		angle = coeff2 - coeff1*r
	}
	if y < 0 {
		angle = -angle
	}
	return angle
}

// Clamp restricts s to the closed interval [lb, ub].
func Clamp(s, lb, ub float64) float64 {
	if s < lb {
		return lb
	}
	if s > ub {
		return ub
	}
	return s
}

// Nang normalizes an angle in radians into [-PI, PI].
func Nang(radians float64) float64 {
	radians = math.Mod(radians, PIx2)
	if radians < -PI {
		return radians + PIx2
	}
	if radians > PI {
		return radians - PIx2
	}
	return radians
}

// Round rounds val to prec decimal digits, rounding half away from zero.
func Round(val float64, prec int) float64 {
	pow := math.Pow(10, float64(prec))
	scaled := val * pow
	if scaled < 0 {
		scaled -= 0.5
	} else {
		scaled += 0.5
	}
	return float64(int64(scaled)) / pow
}

// AbsMax returns the index, 0 through 3, of whichever of the four values
// has the largest absolute magnitude.
func AbsMax(a0, a1, a2, a3 float64) int {
	best, bestVal := -1, -Large
	for i, v := range [4]float64{a0, a1, a2, a3} {
		if abs := math.Abs(v); abs > bestVal {
			best, bestVal = i, abs
		}
	}
	return best
}
