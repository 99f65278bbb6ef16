package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds is the drawable area positions are clamped into.
type Bounds struct {
	Width, Height float64
}

// Viewport is the 1000x800 display area.
var Viewport = Bounds{Width: 1000, Height: 800}

// Clamp pins p componentwise into [0, Width] x [0, Height].
func (b Bounds) Clamp(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Max(0, math.Min(b.Width, p.X)),
		Y: math.Max(0, math.Min(b.Height, p.Y)),
	}
}

// Contains reports whether p lies inside the closed bounds.
func (b Bounds) Contains(p r2.Vec) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// OnEdge reports whether p touches any side of the bounds.
func (b Bounds) OnEdge(p r2.Vec) bool {
	return p.X == 0 || p.Y == 0 || p.X == b.Width || p.Y == b.Height
}

// Acceleration returns the pull of attractor on a point at pos.
// It returns false when pos is within Epsilon of the attractor; the
// caller must then leave the body untouched.
func Acceleration(pos r2.Vec, attractor *Body) (r2.Vec, bool) {
	dx := attractor.Pos.X - pos.X
	dy := attractor.Pos.Y - pos.Y
	distSq := dx*dx + dy*dy
	dist := math.Sqrt(distSq)
	if dist < Epsilon {
		return r2.Vec{}, false
	}

	force := G * attractor.Mass / distSq
	theta := math.Atan2(dy, dx)
	return r2.Vec{X: force * math.Cos(theta), Y: force * math.Sin(theta)}, true
}
