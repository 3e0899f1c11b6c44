package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/glmath"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		in   string
		want glmath.Vec3
	}{
		{"1", glmath.Vec3{1, 0, 0}},
		{"1,2", glmath.Vec3{1, 2, 0}},
		{"1, 2, 3", glmath.Vec3{1, 2, 3}},
		{" -0.5 ,1e2, 3.25 ", glmath.Vec3{-0.5, 100, 3.25}},
		{"0", glmath.Vec3{}},
	}

	for _, tc := range tests {
		got, err := ParseVector(tc.in)
		require.NoError(t, err, "ParseVector(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseVector(%q)", tc.in)
		assert.Len(t, got, 3)
	}
}

func TestParseVectorRejects(t *testing.T) {
	for _, in := range []string{"1,2,3,4", "a", "1,,2", "1,2,x", "1;2;3"} {
		_, err := ParseVector(in)
		var perr *ParseError
		assert.True(t, errors.As(err, &perr), "ParseVector(%q) err=%v", in, err)
	}
}

func TestParseVectorEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		_, err := ParseVector(in)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestFormatVectorRoundTrip(t *testing.T) {
	v := glmath.Vec3{1.5, -2, 0.125}
	assert.Equal(t, "1.5, -2, 0.125", FormatVector(v))
	got, err := ParseVector(FormatVector(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
