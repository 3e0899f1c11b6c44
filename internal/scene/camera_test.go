package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-editor/internal/glmath"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, glmath.Vec3{0, 1, 4}, c.Position)
	assert.Equal(t, glmath.IdentityQuat(), c.Orientation)
}

func TestCameraMove(t *testing.T) {
	c := NewCamera()
	c.Move(1, 0, 0)
	assert.InDeltaSlice(t, []float32{0, 1, 3}, c.Position[:], 1e-6)

	c.Move(0, 2, 0.5)
	assert.InDeltaSlice(t, []float32{2, 1.5, 3}, c.Position[:], 1e-6)
}

func TestCameraYawThenMove(t *testing.T) {
	c := NewCamera()
	c.Position = glmath.Vec3{}
	c.Yaw(glmath.Pi / 2)
	// a quarter turn left looks down -X
	c.Move(1, 0, 0)
	assert.InDeltaSlice(t, []float32{-1, 0, 0}, c.Position[:], 1e-5)
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera()
	var view glmath.Mat4
	c.ViewMatrix(&view)

	// the camera position lands at the view-space origin
	p := view.TransformPoint(c.Position)
	assert.InDeltaSlice(t, []float32{0, 0, 0}, p[:], 1e-6)
	// the origin is four units in front of the camera and one below
	p = view.TransformPoint(glmath.Vec3{})
	assert.InDeltaSlice(t, []float32{0, -1, -4}, p[:], 1e-6)
}
