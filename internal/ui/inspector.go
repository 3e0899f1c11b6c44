package ui

import "strconv"

// maxListRows bounds the object list; the selected row is kept in view.
const maxListRows = 12

// Field is one labelled value in the inspector.
type Field struct {
	Label string
	Value string
}

// Listing holds what the inspector shows: every object name in list order, the selected index (-1
// for none) and the selected object's fields. ui does not depend on the scene package; the caller
// fills this in each frame.
type Listing struct {
	Names    []string
	Selected int
	Fields   []Field
}

// Inspector is a right-side panel: the object list on top, the selected object's fields below.
// It reuses its nodes between frames so the engine's style cache stays valid while the shape of
// the listing does not change.
type Inspector struct {
	panel  *Node
	title  *Node
	empty  *Node
	header *Node
	rows   []*Node
	fields []*Node
	nodes  []*Node
}

// NewInspector creates an Inspector styled by the .inspector* classes.
func NewInspector() *Inspector {
	return &Inspector{
		panel:  NewNode("panel", "inspector", "", ""),
		title:  NewNode("label", "inspector-title", "", "Objects"),
		empty:  NewNode("label", "inspector-empty", "", "(empty: cmd add cube)"),
		header: NewNode("label", "inspector-header", "", "Selected"),
	}
}

// Nodes returns the inspector's nodes for l, or nil when hidden.
func (in *Inspector) Nodes(visible bool, l Listing) []*Node {
	if !visible {
		return nil
	}
	in.nodes = append(in.nodes[:0], in.panel, in.title)
	if len(l.Names) == 0 {
		in.nodes = append(in.nodes, in.empty)
	}

	first := 0
	if l.Selected >= maxListRows {
		first = l.Selected - maxListRows + 1
	}
	last := min(len(l.Names), first+maxListRows)
	for i := first; i < last; i++ {
		row := in.row(i - first)
		row.Class = "inspector-row"
		mark := "  "
		if i == l.Selected {
			row.Class = "inspector-row-selected"
			mark = "> "
		}
		row.Text = mark + strconv.Itoa(i) + " " + l.Names[i]
		in.nodes = append(in.nodes, row)
	}

	if l.Selected >= 0 && len(l.Fields) > 0 {
		in.nodes = append(in.nodes, in.header)
		for i, f := range l.Fields {
			n := in.field(i)
			n.Text = f.Label + ": " + f.Value
			in.nodes = append(in.nodes, n)
		}
	}
	return in.nodes
}

func (in *Inspector) row(i int) *Node {
	for len(in.rows) <= i {
		in.rows = append(in.rows, &Node{Type: "label", Row: len(in.rows)})
	}
	return in.rows[i]
}

func (in *Inspector) field(i int) *Node {
	for len(in.fields) <= i {
		in.fields = append(in.fields, &Node{Type: "label", Class: "inspector-field", Row: len(in.fields)})
	}
	return in.fields[i]
}
