package debug

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-editor/internal/glmath"
)

func texts(t *testing.T, o *Overlay, s Stats) []string {
	t.Helper()
	var out []string
	for i, n := range o.Nodes(s) {
		assert.Equal(t, "stats", n.Class)
		assert.Equal(t, i, n.Row)
		out = append(out, n.Text)
	}
	return out
}

func TestOverlayHiddenByDefault(t *testing.T) {
	assert.Empty(t, New().Nodes(Stats{FPS: 60}))
}

func TestOverlayLines(t *testing.T) {
	o := New()
	reads := 0
	o.readMem = func(m *runtime.MemStats) {
		reads++
		m.Alloc = uint64(reads) * 1024 * 1024
	}
	o.ShowFPS = true
	o.ShowMemAlloc = true
	o.ShowScene = true

	s := Stats{FPS: 59, Objects: 2, Camera: glmath.Vec3{0, 1, 4}}
	assert.Equal(t, []string{"FPS: 59", "Mem: 1.00 MiB", "Objects: 2", "Camera: 0, 1, 4"}, texts(t, o, s))

	s.Spin = glmath.Vec3{0, 2, 0}
	assert.Equal(t, "Spin: 0, 2, 0", texts(t, o, s)[4])
	assert.Equal(t, 1, reads)
}

func TestOverlayRefreshesMem(t *testing.T) {
	o := New()
	reads := 0
	o.readMem = func(*runtime.MemStats) { reads++ }
	o.ShowMemAlloc = true
	for i := 0; i < updateInterval*2; i++ {
		o.Nodes(Stats{})
	}
	assert.Equal(t, 3, reads)
}
