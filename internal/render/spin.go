package render

import (
	"github.com/chewxy/math32"

	"scene-editor/internal/glmath"
)

// DefaultSpinInterval is how often, in milliseconds, the spinner advances.
const DefaultSpinInterval = 20

// Spinner accumulates an extra rotation applied to every object. Each Tick advances every axis by
// its speed (degrees per tick), wrapped into (-360, 360).
type Spinner struct {
	speed  glmath.Vec3
	angles glmath.Vec3
}

// NewSpinner returns a spinner with the given per-tick speed.
func NewSpinner(speed glmath.Vec3) *Spinner {
	return &Spinner{speed: speed}
}

func (s *Spinner) Speed() glmath.Vec3 { return s.speed }

// SetSpeed changes the per-tick speed; the current angles are kept.
func (s *Spinner) SetSpeed(speed glmath.Vec3) { s.speed = speed }

// Angles returns the accumulated rotation in degrees.
func (s *Spinner) Angles() glmath.Vec3 { return s.angles }

// Tick advances the rotation by one step.
func (s *Spinner) Tick() {
	for i := range s.angles {
		s.angles[i] = math32.Mod(s.angles[i]+s.speed[i], 360)
	}
}

// Reset returns every angle to zero.
func (s *Spinner) Reset() {
	s.angles = glmath.Vec3{}
}
