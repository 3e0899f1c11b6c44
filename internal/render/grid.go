package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinorColor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajorColor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisXColor     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisYColor     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZColor     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and the three axes through the
// origin (X red, Y green, Z blue).
func drawEditorGrid() {
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMajorColor
		if i%gridMajorStep != 0 {
			c = gridMinorColor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)

		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisXColor)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisYColor)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZColor)
}
