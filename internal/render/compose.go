// Package render turns the scene into per-frame draw calls and submits them to raylib.
//
// Compose is pure: the same objects, camera, viewport and spin always produce bit-identical
// matrices. Only Renderer touches the GPU.
package render

import (
	"scene-editor/internal/glmath"
	"scene-editor/internal/scene"
)

// Projection parameters are fixed.
const (
	FieldOfView = glmath.Pi / 2
	NearPlane   = 0.001
	FarPlane    = 3000
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height int
}

// Aspect returns width/height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// DrawCall is everything needed to draw one object.
type DrawCall struct {
	Kind  scene.Kind
	Color glmath.Vec3
	Model glmath.Mat4
	// NormalModelView and NormalModel are inverse-transpose matrices for lighting in view and world
	// space.
	NormalModelView glmath.Mat3
	NormalModel     glmath.Mat3
}

// Frame is one composed frame: shared view and projection plus one call per object in list order.
type Frame struct {
	View       glmath.Mat4
	Projection glmath.Mat4
	Camera     glmath.Vec3
	Calls      []DrawCall
}

// Compose builds the frame for objs as seen by cam. spin is added to every object's Euler rotation
// (degrees); pass the zero vector for none. objs is only read.
func Compose(objs []*scene.Object, cam *scene.Camera, vp Viewport, spin glmath.Vec3) Frame {
	f := Frame{
		Camera: cam.Position,
		Calls:  make([]DrawCall, 0, len(objs)),
	}
	cam.ViewMatrix(&f.View)
	glmath.Mat4Perspective(&f.Projection, FieldOfView, vp.Aspect(), NearPlane, FarPlane)

	var q glmath.Quat
	var modelView glmath.Mat4
	for _, obj := range objs {
		call := DrawCall{Kind: obj.Kind(), Color: obj.Color}

		r := obj.Rotation
		glmath.QuatFromEuler(&q, r[0]+spin[0], r[1]+spin[1], r[2]+spin[2])
		glmath.Mat4FromRotationTranslationScale(&call.Model, q, obj.Translation, obj.Scale)

		glmath.Mat4Multiply(&modelView, &f.View, &call.Model)
		normalMatrix(&call.NormalModelView, &modelView)
		normalMatrix(&call.NormalModel, &call.Model)

		f.Calls = append(f.Calls, call)
	}
	return f
}

func normalMatrix(out *glmath.Mat3, m *glmath.Mat4) {
	glmath.Mat3FromMat4(out, m)
	glmath.Mat3Transpose(out, out)
	glmath.Mat3Invert(out, out)
}
