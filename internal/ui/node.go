package ui

// Rect is a node's box in screen pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// bounds resolved from the stylesheet, and optional text for labels.
type Node struct {
	Type   string // "panel", "label"
	Class  string // e.g. "inspector" for .inspector
	ID     string // e.g. "main" for #main
	Bounds Rect
	Text   string
	// Row offsets the node down by Row line-heights from its styled top, for list entries.
	Row int
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
