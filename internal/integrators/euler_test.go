package integrators

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/physics"
)

func sunAt(x, y float64) *physics.Body {
	return physics.NewBody("Sun", 10000, r2.Vec{X: x, Y: y}, r2.Vec{})
}

func TestEulerEarthStep(t *testing.T) {
	sun := sunAt(500, 400)
	earth := physics.NewBody("Earth", 10, r2.Vec{X: 800, Y: 400}, r2.Vec{X: 0, Y: 1.4})

	if !NewEuler().Advance(earth, sun, 3) {
		t.Fatal("step was skipped")
	}

	if math.Abs(earth.Vel.X-(-0.0333333)) > 1e-6 {
		t.Errorf("vx = %.7f, want ~-0.0333333", earth.Vel.X)
	}
	if math.Abs(earth.Vel.Y-1.4) > 1e-9 {
		t.Errorf("vy = %.7f, want ~1.4", earth.Vel.Y)
	}
	if math.Abs(earth.Pos.X-799.9) > 1e-6 {
		t.Errorf("x = %.7f, want ~799.9", earth.Pos.X)
	}
	if math.Abs(earth.Pos.Y-404.2) > 1e-6 {
		t.Errorf("y = %.7f, want ~404.2", earth.Pos.Y)
	}
}

func TestEulerMatchesFormula(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel r2.Vec
		dt       float64
	}{
		{"earth", r2.Vec{X: 800, Y: 400}, r2.Vec{Y: 1.4}, 3},
		{"mars fast", r2.Vec{X: 600, Y: 400}, r2.Vec{Y: 2.2}, 30},
		{"diagonal", r2.Vec{X: 321.5, Y: 612.25}, r2.Vec{X: -0.7, Y: 0.3}, 0.3},
	}

	sun := sunAt(500, 400)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := physics.NewBody("b", 1, tt.pos, tt.vel)
			NewEuler().Advance(b, sun, tt.dt)

			dx, dy := sun.Pos.X-tt.pos.X, sun.Pos.Y-tt.pos.Y
			distSq := dx*dx + dy*dy
			force := physics.G * sun.Mass / distSq
			theta := math.Atan2(dy, dx)
			vx := tt.vel.X + force*math.Cos(theta)*tt.dt
			vy := tt.vel.Y + force*math.Sin(theta)*tt.dt
			x := math.Max(0, math.Min(1000, tt.pos.X+vx*tt.dt))
			y := math.Max(0, math.Min(800, tt.pos.Y+vy*tt.dt))

			const tol = 1e-12
			if math.Abs(b.Vel.X-vx) > tol || math.Abs(b.Vel.Y-vy) > tol {
				t.Errorf("velocity = %v, want (%v, %v)", b.Vel, vx, vy)
			}
			if math.Abs(b.Pos.X-x) > tol || math.Abs(b.Pos.Y-y) > tol {
				t.Errorf("position = %v, want (%v, %v)", b.Pos, x, y)
			}
		})
	}
}

func TestEulerSkipsNearZero(t *testing.T) {
	sun := sunAt(500, 400)
	tests := []r2.Vec{
		{X: 500, Y: 400},
		{X: 500 + 5e-7, Y: 400},
		{X: 500, Y: 400 - 9e-7},
	}

	for _, pos := range tests {
		b := physics.NewBody("b", 1, pos, r2.Vec{X: 3, Y: -2})
		b.Trail.Append(pos)
		before := *b

		if NewEuler().Advance(b, sun, 3) {
			t.Errorf("step at %v should be skipped", pos)
		}
		if *b != before {
			t.Errorf("skipped step mutated body: %+v -> %+v", before.Pos, b.Pos)
		}
	}
}

func TestEulerDeterministic(t *testing.T) {
	sun := sunAt(500, 400)
	a := physics.NewBody("a", 1, r2.Vec{X: 700, Y: 300}, r2.Vec{X: 0.4, Y: 1.1})
	b := a.Clone()

	integ := NewEuler()
	for i := 0; i < 1000; i++ {
		integ.Advance(a, sun, 4.5)
		integ.Advance(b, sun, 4.5)
	}
	if a.Pos != b.Pos || a.Vel != b.Vel {
		t.Errorf("runs diverged: %v/%v vs %v/%v", a.Pos, a.Vel, b.Pos, b.Vel)
	}
}

func TestEulerClampsToViewport(t *testing.T) {
	sun := sunAt(500, 400)
	b := physics.NewBody("runaway", 1, r2.Vec{X: 990, Y: 790}, r2.Vec{X: 50, Y: 50})

	integ := NewEuler()
	for i := 0; i < 200; i++ {
		integ.Advance(b, sun, 30)
		if !physics.Viewport.Contains(b.Pos) {
			t.Fatalf("step %d left the viewport: %v", i, b.Pos)
		}
	}
}
