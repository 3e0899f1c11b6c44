package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/scene"
)

// Controls moves the camera from the keyboard: W/S forward and back, A/D strafe, Q/E down and up,
// R/F yaw left and right. Speeds are per second.
type Controls struct {
	MoveSpeed float32
	YawSpeed  float32

	// KeyDown reports whether a key is held; nil uses raylib.
	KeyDown func(key int32) bool
}

func axis(down func(int32) bool, neg, pos int32) float32 {
	var v float32
	if down(neg) {
		v--
	}
	if down(pos) {
		v++
	}
	return v
}

// Update applies the held keys to cam over dt seconds.
func (c Controls) Update(cam *scene.Camera, dt float32) {
	down := c.KeyDown
	if down == nil {
		down = rl.IsKeyDown
	}
	step := c.MoveSpeed * dt
	forward := axis(down, rl.KeyS, rl.KeyW)
	right := axis(down, rl.KeyA, rl.KeyD)
	up := axis(down, rl.KeyQ, rl.KeyE)
	if forward != 0 || right != 0 || up != 0 {
		cam.Move(forward*step, right*step, up*step)
	}
	if yaw := axis(down, rl.KeyF, rl.KeyR); yaw != 0 {
		cam.Yaw(yaw * c.YawSpeed * dt)
	}
}
