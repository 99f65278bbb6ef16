package physics

import "gonum.org/v1/gonum/spatial/r2"

// SolarSystem returns the Sun and the orbiting bodies in render order.
// Every call builds fresh bodies.
func SolarSystem() (*Body, []*Body) {
	cx, cy := Viewport.Width/2, Viewport.Height/2

	sun := NewBody("Sun", 10000, r2.Vec{X: cx, Y: cy}, r2.Vec{})
	sun.Radius, sun.Color = 20, "#ffff00"

	earth := NewBody("Earth", 10, r2.Vec{X: cx + 300, Y: cy}, r2.Vec{X: 0, Y: 1.4})
	earth.Radius, earth.Color = 10, "#0000ff"

	// Mars turns chaotic at high speed multipliers; 3.1 keeps it smooth.
	mars := NewBody("Mars", 8, r2.Vec{X: cx + 100, Y: cy}, r2.Vec{X: 0, Y: 2.2})
	mars.Radius, mars.Color = 8, "#ff0000"

	jupiter := NewBody("Jupiter", 15, r2.Vec{X: cx + 450, Y: cy}, r2.Vec{X: 0, Y: 1.2})
	jupiter.Radius, jupiter.Color = 15, "#808080"

	return sun, []*Body{earth, mars, jupiter}
}
