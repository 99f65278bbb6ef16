package sim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/physics"
)

const (
	MinSpeed  = 0.1
	MaxSpeed  = 10.0
	SpeedStep = 1.5
)

// State is everything a tick mutates. It is owned by exactly one
// Controller.
type State struct {
	Attractor *physics.Body
	Bodies    []*physics.Body
	Speed     float64
	TrailsOn  bool
}

// NewState returns the solar system at 1x speed with trails enabled.
func NewState() *State {
	sun, bodies := physics.SolarSystem()
	return &State{
		Attractor: sun,
		Bodies:    bodies,
		Speed:     1.0,
		TrailsOn:  true,
	}
}

// Clone returns an independent deep copy.
func (s *State) Clone() *State {
	c := &State{
		Attractor: s.Attractor.Clone(),
		Bodies:    make([]*physics.Body, len(s.Bodies)),
		Speed:     s.Speed,
		TrailsOn:  s.TrailsOn,
	}
	for i, b := range s.Bodies {
		c.Bodies[i] = b.Clone()
	}
	return c
}

func (s *State) Validate() error {
	if s.Attractor == nil || len(s.Bodies) == 0 {
		return ErrNoBodies
	}
	if s.Attractor.Mass <= 0 {
		return fmt.Errorf("attractor mass %g: %w", s.Attractor.Mass, ErrParameterBounds)
	}
	if s.Speed < MinSpeed || s.Speed > MaxSpeed {
		return fmt.Errorf("speed %g outside [%g, %g]: %w", s.Speed, MinSpeed, MaxSpeed, ErrParameterBounds)
	}
	return nil
}

// Body returns the orbiting body with the given name, or nil.
func (s *State) Body(name string) *physics.Body {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

func speedUp(m float64) float64 {
	return min(m*SpeedStep, MaxSpeed)
}

func slowDown(m float64) float64 {
	return max(m/SpeedStep, MinSpeed)
}
