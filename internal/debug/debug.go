// Package debug builds the optional stats overlay (FPS, heap, scene summary) drawn top-left.
package debug

import (
	"fmt"
	"runtime"

	"scene-editor/internal/glmath"
	"scene-editor/internal/scene"
	"scene-editor/internal/ui"
)

// updateInterval is how many frames the heap figure is reused before it is read again.
const updateInterval = 30

// Stats is the per-frame input to the overlay.
type Stats struct {
	FPS     int32
	Objects int
	Camera  glmath.Vec3
	Spin    glmath.Vec3
}

// Overlay holds the overlay switches and its reusable nodes. All overlays are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowScene    bool

	frameCount uint32
	memText    string
	memStats   runtime.MemStats
	readMem    func(*runtime.MemStats)
	lines      []*ui.Node
	nodes      []*ui.Node
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{readMem: runtime.ReadMemStats}
}

// Nodes returns one label per enabled line, styled by the .stats class.
func (o *Overlay) Nodes(s Stats) []*ui.Node {
	o.frameCount++
	o.nodes = o.nodes[:0]
	if o.ShowFPS {
		o.add(fmt.Sprintf("FPS: %d", s.FPS))
	}
	if o.ShowMemAlloc {
		if o.memText == "" || o.frameCount%updateInterval == 0 {
			o.readMem(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		o.add(o.memText)
	}
	if o.ShowScene {
		o.add(fmt.Sprintf("Objects: %d", s.Objects))
		o.add("Camera: " + scene.FormatVector(s.Camera))
		if s.Spin != (glmath.Vec3{}) {
			o.add("Spin: " + scene.FormatVector(s.Spin))
		}
	}
	return o.nodes
}

func (o *Overlay) add(text string) {
	i := len(o.nodes)
	for len(o.lines) <= i {
		o.lines = append(o.lines, &ui.Node{Type: "label", Class: "stats", Row: len(o.lines)})
	}
	o.lines[i].Text = text
	o.nodes = append(o.nodes, o.lines[i])
}
