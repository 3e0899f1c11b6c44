package glmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

/*	column first, as OpenGL
	+-          -+
	| 0  4  8 12 |
	| 1  5  9 13 |
	| 2  6 10 14 |
	| 3  7 11 15 |
	+-          -+
*/
type Mat4 [16]float32

func (m Mat4) String() string {
	r := ""
	for i, n := range m {
		if i > 0 && i%4 == 0 {
			r += "\n"
		}
		r += fmt.Sprintf("%8.3f ", n)
	}
	return r
}

// NearlyEqual reports whether every entry of m and o is within epsilon (relative).
func (m *Mat4) NearlyEqual(o *Mat4, epsilon float32) bool {
	for i := range m {
		if !NearlyEqual(m[i], o[i], epsilon) {
			return false
		}
	}
	return true
}

func IdentityMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Identity(out *Mat4) *Mat4 {
	*out = IdentityMat4()
	return out
}

// Mat4Multiply writes a*b into out; b is the transform applied first.
func Mat4Multiply(out, a, b *Mat4) *Mat4 {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	// cache one column of b at a time so out may alias b
	for c := 0; c < 4; c++ {
		b0, b1, b2, b3 := b[c*4], b[c*4+1], b[c*4+2], b[c*4+3]
		out[c*4] = b0*a00 + b1*a10 + b2*a20 + b3*a30
		out[c*4+1] = b0*a01 + b1*a11 + b2*a21 + b3*a31
		out[c*4+2] = b0*a02 + b1*a12 + b2*a22 + b3*a32
		out[c*4+3] = b0*a03 + b1*a13 + b2*a23 + b3*a33
	}
	return out
}

// Mat4Invert inverts a with the adjugate method. A singular a yields Inf/NaN entries.
func Mat4Invert(out, a *Mat4) *Mat4 {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := 1 / (b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06)

	out[0] = (a11*b11 - a12*b10 + a13*b09) * det
	out[1] = (a02*b10 - a01*b11 - a03*b09) * det
	out[2] = (a31*b05 - a32*b04 + a33*b03) * det
	out[3] = (a22*b04 - a21*b05 - a23*b03) * det
	out[4] = (a12*b08 - a10*b11 - a13*b07) * det
	out[5] = (a00*b11 - a02*b08 + a03*b07) * det
	out[6] = (a32*b02 - a30*b05 - a33*b01) * det
	out[7] = (a20*b05 - a22*b02 + a23*b01) * det
	out[8] = (a10*b10 - a11*b08 + a13*b06) * det
	out[9] = (a01*b08 - a00*b10 - a03*b06) * det
	out[10] = (a30*b04 - a31*b02 + a33*b00) * det
	out[11] = (a21*b02 - a20*b04 - a23*b00) * det
	out[12] = (a11*b07 - a10*b09 - a12*b06) * det
	out[13] = (a00*b09 - a01*b07 + a02*b06) * det
	out[14] = (a31*b01 - a30*b03 - a32*b00) * det
	out[15] = (a20*b03 - a21*b01 + a22*b00) * det
	return out
}

// Mat4FromRotationTranslationScale composes translation * rotation * scale.
func Mat4FromRotationTranslationScale(out *Mat4, q Quat, v, s Vec3) *Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z

	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	sx, sy, sz := s[0], s[1], s[2]

	out[0] = (1 - (yy + zz)) * sx
	out[1] = (xy + wz) * sx
	out[2] = (xz - wy) * sx
	out[3] = 0
	out[4] = (xy - wz) * sy
	out[5] = (1 - (xx + zz)) * sy
	out[6] = (yz + wx) * sy
	out[7] = 0
	out[8] = (xz + wy) * sz
	out[9] = (yz - wx) * sz
	out[10] = (1 - (xx + yy)) * sz
	out[11] = 0
	out[12] = v[0]
	out[13] = v[1]
	out[14] = v[2]
	out[15] = 1
	return out
}

// Mat4FromRotationTranslation composes translation * rotation.
func Mat4FromRotationTranslation(out *Mat4, q Quat, v Vec3) *Mat4 {
	return Mat4FromRotationTranslationScale(out, q, v, Vec3{1, 1, 1})
}

// Mat4Perspective builds a symmetric perspective projection. fovy is the vertical field of view in
// radians.
func Mat4Perspective(out *Mat4, fovy, aspect, near, far float32) *Mat4 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	*out = Mat4{}
	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) * nf
	out[11] = -1
	out[14] = 2 * far * near * nf
	return out
}

// TransformPoint applies m to the point p (w = 1) and performs the perspective divide.
func (m *Mat4) TransformPoint(p Vec3) Vec3 {
	x, y, z := p[0], p[1], p[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}
