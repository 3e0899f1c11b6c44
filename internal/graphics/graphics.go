// Package graphics owns the raylib window and the frame loop.
package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window Run opens.
type Window struct {
	Title         string
	Width, Height int
	// TickInterval is the period of the fixed-rate tick callback; zero disables it.
	TickInterval time.Duration
}

// Loop holds the callbacks Run drives. Any of them may be nil.
type Loop struct {
	// Init runs once after the window and GL context exist.
	Init func()
	// Update runs once per frame before drawing, with the frame time in seconds.
	Update func(dt float32)
	// Tick runs once per elapsed TickInterval; several times in a row after a slow frame.
	Tick func()
	// Draw runs between BeginDrawing and EndDrawing after the screen is cleared.
	Draw func()
	// Close runs once before the window is destroyed.
	Close func()
}

// maxCatchUp caps how many ticks one frame may run after a stall.
const maxCatchUp = 10

// Run opens a resizable window and runs the loop until the window is closed. ESC toggles the
// terminal rather than quitting.
func Run(w Window, loop Loop) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	if loop.Init != nil {
		loop.Init()
	}
	var ticks Ticker
	ticks.Reset(w.TickInterval, time.Now())

	for !rl.WindowShouldClose() {
		if loop.Update != nil {
			loop.Update(rl.GetFrameTime())
		}
		if loop.Tick != nil {
			for n := ticks.Due(time.Now()); n > 0; n-- {
				loop.Tick()
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	if loop.Close != nil {
		loop.Close()
	}
}

// Ticker counts fixed-interval ticks against a clock.
type Ticker struct {
	interval time.Duration
	next     time.Time
}

// Reset starts counting from now. A non-positive interval never ticks.
func (t *Ticker) Reset(interval time.Duration, now time.Time) {
	t.interval = interval
	t.next = now.Add(interval)
}

// Due returns how many ticks have elapsed by now, at most maxCatchUp. After a longer stall the
// schedule restarts from now instead of replaying every missed tick.
func (t *Ticker) Due(now time.Time) int {
	if t.interval <= 0 || now.Before(t.next) {
		return 0
	}
	n := int(now.Sub(t.next)/t.interval) + 1
	if n > maxCatchUp {
		t.next = now.Add(t.interval)
		return maxCatchUp
	}
	t.next = t.next.Add(time.Duration(n) * t.interval)
	return n
}

// ScreenSize returns the current framebuffer size in pixels.
func ScreenSize() (width, height int) {
	return int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
}

// FPS returns raylib's current frames-per-second estimate.
func FPS() int32 {
	return int32(rl.GetFPS())
}
