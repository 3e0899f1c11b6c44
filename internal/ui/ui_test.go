package ui

import (
	"image/color"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.panel { background: #333; width: 300px }
#main, .label { color: #ff8000; top: 50%; }
div { color: #fff; }
.a .b { color: #000; }
@media (max-width: 600px) { .panel { width: 10px; } }
.panel { width: 320px; }
`)
	require.NoError(t, err)

	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".panel", "#main", ".label", ".panel"}, sels)
	assert.Equal(t, "#333", sheet.Rules[0].Props["background"])
	assert.Equal(t, "300px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "50%", sheet.Rules[1].Props["top"])
	assert.Equal(t, "#ff8000", sheet.Rules[2].Props["color"])
	assert.Equal(t, "320px", sheet.Rules[3].Props["width"])
}

func TestEditorStylesheet(t *testing.T) {
	data, err := os.ReadFile("../../assets/ui/editor.css")
	require.NoError(t, err)
	sheet, err := ParseCSS(string(data))
	require.NoError(t, err)

	st := ResolveProps(sheet.Match(&Node{Class: "inspector-row-selected"}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, st.Color)
	assert.Equal(t, int32(48), st.Top)
	assert.Equal(t, int32(22), st.LineHeight)

	panel := ResolveProps(sheet.Match(&Node{Class: "inspector"}))
	assert.Equal(t, int32(340), panel.Width)
	assert.Equal(t, color.RGBA{0x18, 0x18, 0x18, 0xe0}, panel.Background)
}

func TestMatchLastWins(t *testing.T) {
	sheet := &Stylesheet{Rules: []Rule{
		{Selector: ".x", Props: map[string]string{"color": "#111", "width": "5"}},
		{Selector: "#id", Props: map[string]string{"color": "#222"}},
		{Selector: ".y", Props: map[string]string{"color": "#333"}},
	}}
	props := sheet.Match(&Node{Class: "x", ID: "id"})
	assert.Equal(t, map[string]string{"color": "#222", "width": "5"}, props)
	assert.Empty(t, (*Stylesheet)(nil).Match(&Node{Class: "x"}))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#1234", color.RGBA{0x11, 0x22, 0x33, 0x44}, true},
		{"#00ff80", color.RGBA{0, 255, 128, 255}, true},
		{" #0000ff80 ", color.RGBA{0, 0, 255, 128}, true},
		{"#12", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"red", color.RGBA{}, false},
	}
	for _, tc := range tests {
		c, ok := ParseHexColor(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, c, tc.in)
	}
}

func TestResolveAndPlace(t *testing.T) {
	st := ResolveProps(map[string]string{
		"width": "100px", "height": "40", "right": "10px", "top": "50%",
		"line-height": "20px", "padding": "-3", "font-size": "nope",
	})
	assert.Equal(t, int32(4), st.Padding)
	assert.Equal(t, int32(18), st.FontSize)

	n := &Node{Bounds: Rect{Width: 100, Height: 40}, Row: 2}
	x, y := st.Place(n, 800, 600)
	assert.Equal(t, int32(690), x)
	assert.Equal(t, int32(280+40), y)

	st = ResolveProps(map[string]string{"left": "25%", "top": "7px"})
	x, y = st.Place(&Node{Bounds: Rect{Width: 200}}, 1000, 600)
	assert.Equal(t, int32(200), x)
	assert.Equal(t, int32(7), y)
}

func TestInspector(t *testing.T) {
	in := NewInspector()
	assert.Nil(t, in.Nodes(false, Listing{Names: []string{"a"}}))

	nodes := in.Nodes(true, Listing{Selected: -1})
	require.Len(t, nodes, 3)
	assert.Equal(t, "inspector-empty", nodes[2].Class)

	nodes = in.Nodes(true, Listing{
		Names:    []string{"new cube", "new sphere"},
		Selected: 1,
		Fields:   []Field{{"Name", "new sphere"}, {"Scale", "1, 1, 1"}},
	})
	var texts, classes []string
	for _, n := range nodes[2:] {
		texts = append(texts, n.Text)
		classes = append(classes, n.Class)
	}
	assert.Equal(t, []string{"  0 new cube", "> 1 new sphere", "Selected", "Name: new sphere", "Scale: 1, 1, 1"}, texts)
	assert.Equal(t, []string{"inspector-row", "inspector-row-selected", "inspector-header", "inspector-field", "inspector-field"}, classes)
	assert.Equal(t, 1, nodes[3].Row)
	assert.Equal(t, 1, nodes[6].Row)
}

func TestInspectorScrollsToSelection(t *testing.T) {
	in := NewInspector()
	names := make([]string, 30)
	for i := range names {
		names[i] = "obj"
	}
	nodes := in.Nodes(true, Listing{Names: names, Selected: 20})
	rows := nodes[2:]
	require.Len(t, rows, maxListRows)
	assert.Equal(t, "  9 obj", rows[0].Text)
	assert.Equal(t, "> 20 obj", rows[maxListRows-1].Text)
}
