package glmath

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector.
type Vec3 [3]float32

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func Vec3Add(out *Vec3, a, b Vec3) *Vec3 {
	out[0] = a[0] + b[0]
	out[1] = a[1] + b[1]
	out[2] = a[2] + b[2]
	return out
}

func Vec3Sub(out *Vec3, a, b Vec3) *Vec3 {
	out[0] = a[0] - b[0]
	out[1] = a[1] - b[1]
	out[2] = a[2] - b[2]
	return out
}

func Vec3Scale(out *Vec3, a Vec3, s float32) *Vec3 {
	out[0] = a[0] * s
	out[1] = a[1] * s
	out[2] = a[2] * s
	return out
}

func Vec3Cross(out *Vec3, a, b Vec3) *Vec3 {
	ax, ay, az := a[0], a[1], a[2]
	bx, by, bz := b[0], b[1], b[2]
	out[0] = ay*bz - az*by
	out[1] = az*bx - ax*bz
	out[2] = ax*by - ay*bx
	return out
}

func Vec3Length(a Vec3) float32 {
	return math32.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

// Vec3Normalize writes a/|a| into out. A zero-length a is copied through unchanged.
func Vec3Normalize(out *Vec3, a Vec3) *Vec3 {
	l := a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
	if l <= 0 {
		*out = a
		return out
	}
	l = 1 / math32.Sqrt(l)
	out[0] = a[0] * l
	out[1] = a[1] * l
	out[2] = a[2] * l
	return out
}
