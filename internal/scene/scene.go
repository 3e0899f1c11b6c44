package scene

// noSelection is the selected index when nothing is selected.
const noSelection = -1

// Scene is the ordered object list plus the current selection. Insertion order is list order and
// display order. Objects are identified by index, never by value.
// Scene is not safe for concurrent use; the editor owns it on the main loop.
type Scene struct {
	objects  []*Object
	selected int
}

// New returns an empty scene with nothing selected.
func New() *Scene {
	return &Scene{selected: noSelection}
}

// Add appends a new object of the given kind and selects it.
func (s *Scene) Add(kind Kind) *Object {
	obj := NewObject(kind)
	s.objects = append(s.objects, obj)
	s.selected = len(s.objects) - 1
	return obj
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the live object list in display order. Callers must not modify it; use Snapshot
// for a copy that can be handed off.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// At returns the object at index i.
func (s *Scene) At(i int) (*Object, bool) {
	if i < 0 || i >= len(s.objects) {
		return nil, false
	}
	return s.objects[i], true
}

// Select makes the object at index i the current selection.
func (s *Scene) Select(i int) error {
	if i < 0 || i >= len(s.objects) {
		return &SelectionError{Action: "select", Index: i}
	}
	s.selected = i
	return nil
}

// SelectedIndex returns the selected index, or -1 when nothing is selected.
func (s *Scene) SelectedIndex() int {
	return s.selected
}

// Selected returns the selected object.
func (s *Scene) Selected() (*Object, error) {
	if s.selected == noSelection {
		return nil, &SelectionError{Action: "edit", Index: noSelection}
	}
	return s.objects[s.selected], nil
}

// DeleteSelected removes the selected object. The selection moves to the previous entry (or the new
// first entry) and is cleared once the list is empty.
func (s *Scene) DeleteSelected() error {
	if s.selected == noSelection {
		return &SelectionError{Action: "delete", Index: noSelection}
	}
	i := s.selected
	copy(s.objects[i:], s.objects[i+1:])
	s.objects[len(s.objects)-1] = nil
	s.objects = s.objects[:len(s.objects)-1]

	switch {
	case len(s.objects) == 0:
		s.selected = noSelection
	case i > 0:
		s.selected = i - 1
	default:
		s.selected = 0
	}
	return nil
}

// Snapshot returns a deep copy of the object list, safe to hand to the renderer or the store.
func (s *Scene) Snapshot() []*Object {
	out := make([]*Object, len(s.objects))
	for i, o := range s.objects {
		c := *o
		out[i] = &c
	}
	return out
}

// Replace installs objs as the scene (e.g. after loading the cache) and clears the selection.
func (s *Scene) Replace(objs []*Object) {
	s.objects = append(s.objects[:0:0], objs...)
	s.selected = noSelection
}

// Clear removes every object.
func (s *Scene) Clear() {
	s.Replace(nil)
}
