package integrators

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/physics"
)

// Leapfrog is the kick-drift-kick scheme. It is only used to compare
// energy drift against Euler; the live loop always runs Euler.
type Leapfrog struct {
	Bounds physics.Bounds
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{Bounds: physics.Viewport}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Advance(b, attractor *physics.Body, dt float64) bool {
	acc, ok := physics.Acceleration(b.Pos, attractor)
	if !ok {
		return false
	}

	halfDt := 0.5 * dt
	half := r2.Add(b.Vel, r2.Scale(halfDt, acc))
	pos := r2.Add(b.Pos, r2.Scale(dt, half))

	// a drift landing on the attractor gets no second kick
	accNew, ok := physics.Acceleration(pos, attractor)
	if !ok {
		accNew = r2.Vec{}
	}

	b.Vel = r2.Add(half, r2.Scale(halfDt, accNew))
	b.Pos = l.Bounds.Clamp(pos)
	return true
}
