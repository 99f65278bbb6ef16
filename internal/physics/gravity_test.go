package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBounds_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   r2.Vec
		want r2.Vec
	}{
		{"inside", r2.Vec{X: 10, Y: 20}, r2.Vec{X: 10, Y: 20}},
		{"left", r2.Vec{X: -5, Y: 20}, r2.Vec{X: 0, Y: 20}},
		{"right", r2.Vec{X: 1200, Y: 20}, r2.Vec{X: 1000, Y: 20}},
		{"top", r2.Vec{X: 10, Y: -1}, r2.Vec{X: 10, Y: 0}},
		{"bottom corner", r2.Vec{X: 5000, Y: 900}, r2.Vec{X: 1000, Y: 800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Viewport.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBounds_OnEdge(t *testing.T) {
	if !Viewport.OnEdge(r2.Vec{X: 0, Y: 300}) {
		t.Error("x=0 should be on edge")
	}
	if !Viewport.OnEdge(r2.Vec{X: 300, Y: 800}) {
		t.Error("y=800 should be on edge")
	}
	if Viewport.OnEdge(r2.Vec{X: 300, Y: 300}) {
		t.Error("interior point reported on edge")
	}
}

func TestAcceleration(t *testing.T) {
	sun := NewBody("Sun", 10000, r2.Vec{X: 500, Y: 400}, r2.Vec{})

	acc, ok := Acceleration(r2.Vec{X: 800, Y: 400}, sun)
	if !ok {
		t.Fatal("expected acceleration at distance 300")
	}

	want := 0.1 * 10000 / 90000.0
	if math.Abs(acc.X+want) > 1e-12 {
		t.Errorf("ax = %v, want %v", acc.X, -want)
	}
	if math.Abs(acc.Y) > 1e-12 {
		t.Errorf("ay = %v, want ~0", acc.Y)
	}
}

func TestAcceleration_NearZero(t *testing.T) {
	sun := NewBody("Sun", 10000, r2.Vec{X: 500, Y: 400}, r2.Vec{})

	if _, ok := Acceleration(r2.Vec{X: 500, Y: 400}, sun); ok {
		t.Error("coincident point should be skipped")
	}
	if _, ok := Acceleration(r2.Vec{X: 500 + 1e-7, Y: 400}, sun); ok {
		t.Error("point within epsilon should be skipped")
	}
}
