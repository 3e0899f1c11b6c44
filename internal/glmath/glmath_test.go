package glmath

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol, "want %v got %v", want, got)
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		A, B, Expected Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{-3, 6, -3}},
		{Vec3{2, 2, 2}, Vec3{2, 2, 2}, Vec3{0, 0, 0}},
	}

	for _, c := range tests {
		var out Vec3
		assert.Equal(t, c.Expected, *Vec3Cross(&out, c.A, c.B), "cross(%v, %v)", c.A, c.B)
	}
}

func TestVec3CrossAliased(t *testing.T) {
	a := Vec3{1, 2, 3}
	Vec3Cross(&a, a, Vec3{4, 5, 6})
	assert.Equal(t, Vec3{-3, 6, -3}, a)
}

func TestVec3Sub(t *testing.T) {
	var out Vec3
	assert.Equal(t, Vec3{-3, -3, -3}, *Vec3Sub(&out, Vec3{1, 2, 3}, Vec3{4, 5, 6}))
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		Value, Expected Vec3
	}{
		{Vec3{3, 0, 4}, Vec3{0.6, 0, 0.8}},
		{Vec3{0, -2, 0}, Vec3{0, -1, 0}},
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, c := range tests {
		var out Vec3
		got := *Vec3Normalize(&out, c.Value)
		assertVec3(t, c.Expected, got)
		for _, n := range got {
			assert.False(t, math32.IsNaN(n), "normalize(%v) produced NaN", c.Value)
		}
	}
}

func TestQuatFromEulerZeroIsIdentity(t *testing.T) {
	var q Quat
	assert.Equal(t, Quat{0, 0, 0, 1}, *QuatFromEuler(&q, 0, 0, 0))
	assert.Equal(t, IdentityQuat(), *QuatIdentity(&Quat{5, 6, 7, 8}))
}

func TestQuatFromEulerMatchesRotateY(t *testing.T) {
	var fromEuler, rotY Quat
	QuatFromEuler(&fromEuler, 0, 90, 0)
	QuatRotateY(&rotY, IdentityQuat(), Pi/2)

	assert.InDeltaSlice(t, rotY[:], fromEuler[:], tol)
	assert.InDelta(t, math32.Sqrt(2)/2, fromEuler[1], tol)
}

func TestQuatRotateYTransform(t *testing.T) {
	var q Quat
	QuatRotateY(&q, IdentityQuat(), Pi/2)
	assertVec3(t, Vec3{0, 0, -1}, q.TransformVec3(Vec3{1, 0, 0}))
	assertVec3(t, Vec3{0, 1, 0}, q.TransformVec3(Vec3{0, 1, 0}))

	// two quarter turns compose into a half turn
	QuatRotateY(&q, q, Pi/2)
	assertVec3(t, Vec3{-1, 0, 0}, q.TransformVec3(Vec3{1, 0, 0}))
}

func TestMat4FromRotationTranslationScaleIdentity(t *testing.T) {
	var m Mat4
	Mat4FromRotationTranslationScale(&m, IdentityQuat(), Vec3{0, 0, 0}, Vec3{1, 1, 1})
	assert.Equal(t, IdentityMat4(), m)

	Mat4FromRotationTranslation(&m, IdentityQuat(), Vec3{})
	assert.Equal(t, IdentityMat4(), m)
}

func TestMat4FromRotationTranslationScaleOrder(t *testing.T) {
	var q Quat
	QuatFromEuler(&q, 0, 0, 90)

	var m Mat4
	Mat4FromRotationTranslationScale(&m, q, Vec3{10, 0, 0}, Vec3{2, 1, 1})

	// scale first: (1,0,0) -> (2,0,0); rotate 90 about Z -> (0,2,0); translate -> (10,2,0)
	assertVec3(t, Vec3{10, 2, 0}, m.TransformPoint(Vec3{1, 0, 0}))
}

func TestMat4Multiply(t *testing.T) {
	var trans, scale, out Mat4
	Mat4FromRotationTranslation(&trans, IdentityQuat(), Vec3{1, 2, 3})
	Mat4FromRotationTranslationScale(&scale, IdentityQuat(), Vec3{}, Vec3{2, 2, 2})

	Mat4Multiply(&out, &trans, &scale)
	assertVec3(t, Vec3{3, 4, 5}, out.TransformPoint(Vec3{1, 1, 1}))

	Mat4Multiply(&out, &scale, &trans)
	assertVec3(t, Vec3{4, 6, 8}, out.TransformPoint(Vec3{1, 1, 1}))

	id := IdentityMat4()
	Mat4Multiply(&out, &trans, &id)
	assert.Equal(t, trans, out)
}

func TestMat4MultiplyAliased(t *testing.T) {
	var trans, scale, want Mat4
	Mat4FromRotationTranslation(&trans, IdentityQuat(), Vec3{1, 2, 3})
	Mat4FromRotationTranslationScale(&scale, IdentityQuat(), Vec3{}, Vec3{2, 3, 4})
	Mat4Multiply(&want, &trans, &scale)

	a := trans
	Mat4Multiply(&a, &a, &scale)
	assert.Equal(t, want, a)

	b := scale
	Mat4Multiply(&b, &trans, &b)
	assert.Equal(t, want, b)
}

func sampleMat4() Mat4 {
	var q Quat
	var m Mat4
	QuatFromEuler(&q, 30, 45, 60)
	return *Mat4FromRotationTranslationScale(&m, q, Vec3{1, -2, 3}, Vec3{2, 0.5, 1.5})
}

func TestMat4InvertTwice(t *testing.T) {
	tests := []Mat4{
		IdentityMat4(),
		sampleMat4(),
		{
			2, 0, 0, 0,
			0, 3, 0, 0,
			0, 0, 4, 0,
			5, 6, 7, 1,
		},
		{
			1, 2, 0, 0,
			0, 1, 3, 0,
			4, 0, 1, 0,
			0, 0, 0, 1,
		},
	}

	for _, m := range tests {
		var inv, back Mat4
		Mat4Invert(&inv, &m)
		Mat4Invert(&back, &inv)
		assert.InDeltaSlice(t, m[:], back[:], 1e-4, "invert(invert(\n%v))", m)

		var prod Mat4
		Mat4Multiply(&prod, &m, &inv)
		id := IdentityMat4()
		assert.InDeltaSlice(t, id[:], prod[:], 1e-4)
	}
}

func TestMat4InvertAliased(t *testing.T) {
	m := sampleMat4()
	var want Mat4
	Mat4Invert(&want, &m)
	Mat4Invert(&m, &m)
	assert.Equal(t, want, m)
}

func TestMat4InvertSingular(t *testing.T) {
	var zero, out Mat4
	require.NotPanics(t, func() { Mat4Invert(&out, &zero) })
	for _, n := range out {
		assert.True(t, math32.IsNaN(n) || math32.IsInf(n, 0))
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := Mat3{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	}

	var out Mat3
	assert.Equal(t, want, *Mat3Transpose(&out, &m))
	assert.Equal(t, m, *Mat3Transpose(&out, &out))

	aliased := m
	Mat3Transpose(&aliased, &aliased)
	assert.Equal(t, want, aliased)
	Mat3Transpose(&aliased, &aliased)
	assert.Equal(t, m, aliased)
}

func TestMat3FromMat4(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	var out Mat3
	assert.Equal(t, Mat3{1, 2, 3, 5, 6, 7, 9, 10, 11}, *Mat3FromMat4(&out, &m))
}

func TestMat3Invert(t *testing.T) {
	m := Mat3{
		2, 0, 0,
		0, 4, 0,
		1, 0, 1,
	}
	var inv, back Mat3
	Mat3Invert(&inv, &m)
	assert.InDelta(t, 1/m.Determinant(), inv.Determinant(), tol)
	Mat3Invert(&back, &inv)
	assert.InDeltaSlice(t, m[:], back[:], tol)

	var id Mat3
	Mat3Identity(&id)
	Mat3Invert(&inv, &id)
	assert.Equal(t, id, inv)
}

func TestMat3InvertSingular(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		2, 4, 6,
		0, 0, 1,
	}
	var out Mat3
	require.NotPanics(t, func() { Mat3Invert(&out, &m) })
	bad := false
	for _, n := range out {
		if math32.IsNaN(n) || math32.IsInf(n, 0) {
			bad = true
		}
	}
	assert.True(t, bad, "singular inverse should carry Inf or NaN, got %v", out)
}

func TestMat4Perspective(t *testing.T) {
	var m Mat4
	Mat4Perspective(&m, Pi/2, 2, 1, 3)

	want := Mat4{
		0.5, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -2, -1,
		0, 0, -3, 0,
	}
	assert.InDeltaSlice(t, want[:], m[:], tol)

	// near plane maps to -1, far plane to +1
	assert.InDelta(t, -1, m.TransformPoint(Vec3{0, 0, -1})[2], tol)
	assert.InDelta(t, 1, m.TransformPoint(Vec3{0, 0, -3})[2], tol)
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1, 1, 1e-6))
	assert.True(t, NearlyEqual(1, 1.0000001, 1e-6))
	assert.False(t, NearlyEqual(1, 1.1, 1e-6))
	assert.True(t, NearlyEqual(0, 1e-9, 1e-6))
	assert.True(t, NearlyEqual(math32.Inf(1), math32.Inf(1), 1e-6))
}

func BenchmarkMat4Invert(b *testing.B) {
	m := sampleMat4()
	var out Mat4
	for i := 0; i < b.N; i++ {
		Mat4Invert(&out, &m)
	}
}
