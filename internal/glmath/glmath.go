// Package glmath is a small float32 vector, quaternion and matrix library laid out the way OpenGL
// expects it (column-major matrices, quaternions as x, y, z, w).
//
// Every operation writes into a caller-supplied out value and returns it, so calls can be chained
// and out may alias an input.
package glmath

import "github.com/chewxy/math32"

const (
	Pi = math32.Pi

	DegToRad = Pi / 180
	RadToDeg = 180 / Pi

	// halfDegToRad converts degrees to half-angle radians for quaternion construction.
	halfDegToRad = (0.5 * Pi) / 180
)

// NearlyEqual compares two floats with a relative error margin; exact equality (including matching
// infinities) short-circuits.
func NearlyEqual(a, b, epsilon float32) bool {
	if a == b {
		return true
	}
	diff := math32.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/(math32.Abs(a)+math32.Abs(b)) < epsilon
}
