package scene

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by ParseVector for blank input. Editors treat it as "nothing typed yet".
var ErrEmptyInput = errors.New("empty input")

// ParseError reports malformed numeric input. The field it was meant for is left unchanged.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SelectionError reports an action that needs a selected object when there is none (or the
// requested index does not exist). The action is a no-op.
type SelectionError struct {
	Action string
	Index  int // requested index, -1 when the action used the current selection
}

func (e *SelectionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: no object at index %d", e.Action, e.Index)
	}
	return fmt.Sprintf("%s: no object selected", e.Action)
}
