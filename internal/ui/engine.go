package ui

import (
	"fmt"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Engine holds the stylesheet and nodes and draws them with raylib in node order.
// Resolved styles are cached until the sheet, the node list or a node's class or id changes.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	keys         []string // class and id of each node when its style was resolved
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font // zero texture ID: raylib's default font
}

// New creates an empty UI engine.
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file, replacing the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF/OTF font for text. Call after the window exists; on failure the engine keeps
// the previous font.
func (e *Engine) LoadFont(path string) (rl.Font, error) {
	if _, err := os.Stat(path); err != nil {
		return e.font, err
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return e.font, fmt.Errorf("ui: cannot load font %s", path)
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return f, nil
}

// SetNodes replaces all nodes. Passing the same nodes as last time keeps the style cache.
func (e *Engine) SetNodes(nodes []*Node) {
	if e.cacheValid && e.same(nodes) {
		return
	}
	e.nodes = append(e.nodes[:0], nodes...)
	e.cacheValid = false
}

func (e *Engine) same(nodes []*Node) bool {
	if len(e.nodes) != len(nodes) {
		return false
	}
	for i, n := range nodes {
		if e.nodes[i] != n || e.keys[i] != styleKey(n) {
			return false
		}
	}
	return true
}

func styleKey(n *Node) string {
	return n.Class + "#" + n.ID
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = e.cachedStyles[:0]
	e.keys = e.keys[:0]
	for _, n := range e.nodes {
		e.keys = append(e.keys, styleKey(n))
		st := ResolveProps(e.sheet.Match(n))
		if st.Width > 0 {
			n.Bounds.Width = float32(st.Width)
		}
		if st.Height > 0 {
			n.Bounds.Height = float32(st.Height)
		}
		e.cachedStyles = append(e.cachedStyles, st)
	}
	e.cacheValid = true
}

// Draw draws every node: background, 1px border, then text.
func (e *Engine) Draw() {
	e.resolve()
	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		st := e.cachedStyles[i]
		x, y := st.Place(n, screenW, screenH)
		n.Bounds.X, n.Bounds.Y = float32(x), float32(y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if st.Background.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, toRL(st.Background))
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, toRL(st.Border))
		}
		if n.Text != "" {
			DrawText(e.font, n.Text, x+st.Padding, y+st.Padding, st.FontSize, toRL(st.Color))
		}
	}
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// DrawText draws with font, or with raylib's default font when font is not loaded.
func DrawText(font rl.Font, text string, x, y, size int32, c rl.Color) {
	if font.Texture.ID != 0 {
		rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(text, x, y, size, c)
}
