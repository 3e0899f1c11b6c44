package scene

import (
	"scene-editor/internal/glmath"
)

// Camera is a free-flying viewer: a world position and an orientation. Only yaw is exposed to the
// user.
type Camera struct {
	Position    glmath.Vec3
	Orientation glmath.Quat
}

// NewCamera returns a camera one unit up and four units back from the origin, looking down -Z.
func NewCamera() *Camera {
	return &Camera{
		Position:    glmath.Vec3{0, 1, 4},
		Orientation: glmath.IdentityQuat(),
	}
}

// Move translates the camera along its own forward and right axes (yaw only) and the world up axis.
func (c *Camera) Move(forward, right, up float32) {
	fwd := c.Orientation.TransformVec3(glmath.Vec3{0, 0, -1})
	side := c.Orientation.TransformVec3(glmath.Vec3{1, 0, 0})

	var step glmath.Vec3
	glmath.Vec3Scale(&step, fwd, forward)
	glmath.Vec3Add(&c.Position, c.Position, step)
	glmath.Vec3Scale(&step, side, right)
	glmath.Vec3Add(&c.Position, c.Position, step)
	c.Position[1] += up
}

// Yaw turns the camera by rad radians around the world Y axis; positive turns left.
func (c *Camera) Yaw(rad float32) {
	glmath.QuatRotateY(&c.Orientation, c.Orientation, rad)
}

// ViewMatrix writes the world-to-camera matrix into out: the camera's own transform, inverted.
func (c *Camera) ViewMatrix(out *glmath.Mat4) *glmath.Mat4 {
	glmath.Mat4FromRotationTranslation(out, c.Orientation, c.Position)
	return glmath.Mat4Invert(out, out)
}
