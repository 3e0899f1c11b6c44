package scene

import (
	"strconv"
	"strings"

	"scene-editor/internal/glmath"
)

// ParseVector parses a comma-separated list of one to three floats such as "1, 2.5, -3".
// Missing trailing components are zero. More than three components, or any component that is not a
// number, is a *ParseError; blank input is ErrEmptyInput.
func ParseVector(text string) (glmath.Vec3, error) {
	var out glmath.Vec3
	if strings.TrimSpace(text) == "" {
		return out, ErrEmptyInput
	}
	parts := strings.Split(text, ",")
	if len(parts) > len(out) {
		return out, &ParseError{Input: text, Reason: "expected at most 3 components, got " + strconv.Itoa(len(parts))}
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return glmath.Vec3{}, &ParseError{Input: text, Reason: "component " + strconv.Itoa(i+1) + " is not a number", Err: err}
		}
		out[i] = float32(f)
	}
	return out, nil
}

// FormatVector renders v the way ParseVector reads it back.
func FormatVector(v glmath.Vec3) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return strings.Join(parts, ", ")
}
