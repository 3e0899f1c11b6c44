package glmath

import "github.com/chewxy/math32"

// Quat is a rotation quaternion stored as x, y, z, w.
type Quat [4]float32

// IdentityQuat returns (0, 0, 0, 1).
func IdentityQuat() Quat {
	return Quat{0, 0, 0, 1}
}

func QuatIdentity(out *Quat) *Quat {
	out[0] = 0
	out[1] = 0
	out[2] = 0
	out[3] = 1
	return out
}

// QuatRotateY rotates a by rad radians around the Y axis.
func QuatRotateY(out *Quat, a Quat, rad float32) *Quat {
	rad *= 0.5
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	by := math32.Sin(rad)
	bw := math32.Cos(rad)
	out[0] = ax*bw - az*by
	out[1] = ay*bw + aw*by
	out[2] = az*bw + ax*by
	out[3] = aw*bw - ay*by
	return out
}

// QuatFromEuler builds a quaternion from Euler angles in degrees around X, Y and Z.
func QuatFromEuler(out *Quat, x, y, z float32) *Quat {
	x *= halfDegToRad
	y *= halfDegToRad
	z *= halfDegToRad
	sx, cx := math32.Sin(x), math32.Cos(x)
	sy, cy := math32.Sin(y), math32.Cos(y)
	sz, cz := math32.Sin(z), math32.Cos(z)
	out[0] = sx*cy*cz - cx*sy*sz
	out[1] = cx*sy*cz + sx*cy*sz
	out[2] = cx*cy*sz - sx*sy*cz
	out[3] = cx*cy*cz + sx*sy*sz
	return out
}

// TransformVec3 rotates v by q.
func (q Quat) TransformVec3(v Vec3) Vec3 {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	// t = 2 * cross(q.xyz, v)
	tx := 2 * (qy*v[2] - qz*v[1])
	ty := 2 * (qz*v[0] - qx*v[2])
	tz := 2 * (qx*v[1] - qy*v[0])
	return Vec3{
		v[0] + qw*tx + qy*tz - qz*ty,
		v[1] + qw*ty + qz*tx - qx*tz,
		v[2] + qw*tz + qx*ty - qy*tx,
	}
}
