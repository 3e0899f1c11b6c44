package glmath

// Mat3 is a column-major 3x3 matrix.
type Mat3 [9]float32

func Mat3Identity(out *Mat3) *Mat3 {
	*out = Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	return out
}

// Mat3FromMat4 copies the upper-left 3x3 block of a.
func Mat3FromMat4(out *Mat3, a *Mat4) *Mat3 {
	out[0] = a[0]
	out[1] = a[1]
	out[2] = a[2]
	out[3] = a[4]
	out[4] = a[5]
	out[5] = a[6]
	out[6] = a[8]
	out[7] = a[9]
	out[8] = a[10]
	return out
}

func Mat3Transpose(out, a *Mat3) *Mat3 {
	if out == a {
		// the diagonal stays; cache the upper triangle before it is overwritten
		a01, a02, a12 := a[1], a[2], a[5]
		out[1] = a[3]
		out[2] = a[6]
		out[3] = a01
		out[5] = a[7]
		out[6] = a02
		out[7] = a12
		return out
	}
	out[0] = a[0]
	out[1] = a[3]
	out[2] = a[6]
	out[3] = a[1]
	out[4] = a[4]
	out[5] = a[7]
	out[6] = a[2]
	out[7] = a[5]
	out[8] = a[8]
	return out
}

// Mat3Invert inverts a with the adjugate method. A singular a yields Inf/NaN entries.
func Mat3Invert(out, a *Mat3) *Mat3 {
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := 1 / (a00*b01 + a01*b11 + a02*b21)

	out[0] = b01 * det
	out[1] = (-a22*a01 + a02*a21) * det
	out[2] = (a12*a01 - a02*a11) * det
	out[3] = b11 * det
	out[4] = (a22*a00 - a02*a20) * det
	out[5] = (-a12*a00 + a02*a10) * det
	out[6] = b21 * det
	out[7] = (-a21*a00 + a01*a20) * det
	out[8] = (a11*a00 - a01*a10) * det
	return out
}

// Determinant returns the determinant of m.
func (m *Mat3) Determinant() float32 {
	return m[0]*(m[8]*m[4]-m[5]*m[7]) +
		m[1]*(-m[8]*m[3]+m[5]*m[6]) +
		m[2]*(m[7]*m[3]-m[4]*m[6])
}
