package integrators

import (
	"github.com/san-kum/orbitsim/internal/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

// Euler is the semi-implicit Euler step: velocity first, then position
// from the updated velocity. It drifts in energy over long runs.
type Euler struct {
	Bounds physics.Bounds
}

func NewEuler() *Euler {
	return &Euler{Bounds: physics.Viewport}
}

func (e *Euler) Name() string { return "euler" }

// Advance moves b one step of dt under attractor's pull and clamps the
// result into the bounds. It reports false, leaving b untouched, when b
// sits on the attractor.
func (e *Euler) Advance(b, attractor *physics.Body, dt float64) bool {
	acc, ok := physics.Acceleration(b.Pos, attractor)
	if !ok {
		return false
	}

	b.Vel = r2.Add(b.Vel, r2.Scale(dt, acc))
	b.Pos = e.Bounds.Clamp(r2.Add(b.Pos, r2.Scale(dt, b.Vel)))
	return true
}
