// Package terminal is the ESC-toggled input bar at the bottom of the window. Every edit to the scene
// is typed here as "cmd <name> ...".
package terminal

import (
	"errors"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/logger"
	"scene-editor/internal/scene"
	"scene-editor/internal/store"
	"scene-editor/internal/ui"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the terminal is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
	maxHistory       = 100
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the input bar. When open it captures the keyboard (the camera does not move) and
// draws the recent log above the bar; when closed nothing is drawn.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	histPos  int // index into history while browsing with Up/Down; len(history) when not browsing
	font     rl.Font
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the terminal is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetOpen shows or hides the terminal.
func (t *Terminal) SetOpen(open bool) {
	t.open = open
}

// SetFont sets the font used to draw the terminal (e.g. the UI font).
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Input returns the text typed so far.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Submit echoes line to the log and runs it. Non-command lines get a hint. Failures are logged with
// their kind so the user can tell bad input from a missing selection or a cache problem.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	t.remember(line)

	args, isCmd, err := commands.Parse(line)
	switch {
	case !isCmd:
		t.log.Log(`commands start with "cmd" (try: cmd help)`)
	case err != nil:
		t.log.Log(Describe(err))
	default:
		if err := t.reg.Execute(args); err != nil {
			t.log.Log(Describe(err))
		}
	}
}

// Describe formats an edit failure for the log.
func Describe(err error) string {
	var (
		perr *scene.ParseError
		serr *scene.SelectionError
		cerr *store.PersistenceError
		uerr *commands.UsageError
	)
	switch {
	case errors.As(err, &perr):
		return "invalid input: " + err.Error()
	case errors.As(err, &serr):
		return "selection: " + err.Error()
	case errors.As(err, &cerr):
		return "cache: " + err.Error()
	case errors.As(err, &uerr):
		return "usage: " + err.Error()
	default:
		return "error: " + err.Error()
	}
}

func (t *Terminal) remember(line string) {
	if n := len(t.history); n == 0 || t.history[n-1] != line {
		t.history = append(t.history, line)
		if len(t.history) > maxHistory {
			t.history = t.history[1:]
		}
	}
	t.histPos = len(t.history)
}

// browse moves through the history; delta -1 is older, +1 newer.
func (t *Terminal) browse(delta int) {
	pos := t.histPos + delta
	switch {
	case pos < 0 || len(t.history) == 0:
		return
	case pos >= len(t.history):
		t.histPos = len(t.history)
		t.inputBuf = ""
	default:
		t.histPos = pos
		t.inputBuf = t.history[pos]
	}
}

// Update handles ESC (toggle), and when open: typing, paste, backspace, history and enter. Call
// once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.browse(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.browse(1)
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// clip shortens line to at most n bytes, ending in "..." when cut. The cut falls on a rune boundary.
func clip(line string, n int) string {
	if len(line) <= n {
		return line
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + "..."
}

// Draw draws the input bar at the bottom and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	chatHeight := int32(maxLinesOnScreen * lineHeight)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, chatY, screenW, chatHeight, termChatBgColor)
	}
	for i, line := range t.log.Tail(maxLinesOnScreen) {
		line = clip(line, maxLineLen)
		ui.DrawText(t.font, line, padding, chatY+int32(i*lineHeight)+padding, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, termBarColor)
	rl.DrawRectangle(0, barY, screenW, 1, termLineColor)
	ui.DrawText(t.font, prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
