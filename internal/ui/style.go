package ui

import (
	"image/color"
	"strconv"
	"strings"
)

// Rule is a single CSS rule: one selector and its property values as raw strings.
type Rule struct {
	Selector string            // ".panel" or "#menu"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Match returns the merged properties for n (class and id selectors, last wins).
func (s *Stylesheet) Match(n *Node) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		if sel == "" {
			continue
		}
		var ok bool
		switch sel[0] {
		case '.':
			ok = n.Class != "" && n.Class == sel[1:]
		case '#':
			ok = n.ID != "" && n.ID == sel[1:]
		}
		if !ok {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// ComputedStyle holds the resolved values used for drawing. LeftPct/TopPct are 0-100 for
// percentage positioning, or -1 to use Left/Top as pixels. Right, when set, anchors the node to the
// right edge instead of the left.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	Right      int32
	HasRight   bool
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	LineHeight int32
}

// DefaultComputedStyle returns transparent background, white 18px text, no border, zero size.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:      color.RGBA{255, 255, 255, 255},
		Border:     color.RGBA{0, 0, 0, 255},
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   18,
		LineHeight: 22,
	}
}

// ParseHexColor parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.RGBA{}, false
		}
		digits[i] = d
	}
	switch len(hex) {
	case 3, 4:
		c := color.RGBA{digits[0] * 17, digits[1] * 17, digits[2] * 17, 255}
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
		return c, true
	case 6, 8:
		c := color.RGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], 255}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, true
	default:
		return color.RGBA{}, false
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ParsePx parses a number with optional "px" suffix. Unitless is pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0-100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from merged properties. Unparseable values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "right":
			if n, ok := ParsePx(v); ok {
				out.Right, out.HasRight = n, true
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "line-height":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.LineHeight = n
			}
		}
	}
	return out
}

// Place returns the top-left corner of a node with style st on a screen of the given size.
func (st ComputedStyle) Place(n *Node, screenW, screenH int32) (x, y int32) {
	w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
	x, y = st.Left, st.Top
	switch {
	case st.HasRight:
		x = screenW - w - st.Right
	case st.LeftPct >= 0:
		x = (screenW - w) * st.LeftPct / 100
	}
	if st.TopPct >= 0 {
		y = (screenH - h) * st.TopPct / 100
	}
	return x, y + int32(n.Row)*st.LineHeight
}
