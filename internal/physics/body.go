package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// G is the simulation-tuned gravitational constant.
	G = 0.1

	// BaseTimestep is the nominal per-tick time delta before speed scaling.
	BaseTimestep = 3.0

	// Epsilon is the separation below which a step is skipped.
	Epsilon = 1e-6

	// TrailCapacity is the number of past positions a trail retains.
	TrailCapacity = 500
)

// Body is a simulated celestial object. Mass only matters when the body
// acts as an attractor. Radius and Color are display-only.
type Body struct {
	Name   string
	Mass   float64
	Radius float64
	Color  string
	Pos    r2.Vec
	Vel    r2.Vec
	Trail  Trail
}

// NewBody returns a body at pos moving with vel and an empty trail.
func NewBody(name string, mass float64, pos, vel r2.Vec) *Body {
	return &Body{
		Name: name,
		Mass: mass,
		Pos:  pos,
		Vel:  vel,
	}
}

// Clone returns a deep copy, trail included.
func (b *Body) Clone() *Body {
	c := *b
	return &c
}

// IsValid reports whether position and velocity are finite.
func (b *Body) IsValid() bool {
	for _, v := range [4]float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return r2.Norm(b.Vel)
}

// DistanceTo returns the Euclidean distance between two bodies.
func (b *Body) DistanceTo(o *Body) float64 {
	return r2.Norm(r2.Sub(o.Pos, b.Pos))
}
