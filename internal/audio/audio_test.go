package audio

import (
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/input"
)

func block() [][]float32 {
	return [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
}

func energy(out [][]float32) float64 {
	sum := 0.0
	for _, ch := range out {
		for _, v := range ch {
			sum += float64(v) * float64(v)
		}
	}
	return sum
}

func TestRender_BoundedAndAudible(t *testing.T) {
	p := NewProcessor()
	out := block()
	for i := 0; i < 20; i++ {
		p.Render(out)
	}

	if energy(out) == 0 {
		t.Fatal("expected non-silent output")
	}
	for _, ch := range out {
		for _, v := range ch {
			if math.IsNaN(float64(v)) || math.Abs(float64(v)) > 1 {
				t.Fatalf("sample out of range: %v", v)
			}
		}
	}
}

func TestCue_Blip(t *testing.T) {
	quiet, loud := NewProcessor(), NewProcessor()
	loud.Cue(input.SpeedUp, 1)

	a, b := block(), block()
	quiet.Render(a)
	loud.Render(b)

	if energy(b) <= energy(a) {
		t.Errorf("blip should add energy: %v <= %v", energy(b), energy(a))
	}

	// the blip is shorter than four blocks
	for i := 0; i < 3; i++ {
		loud.Render(b)
	}
	loud.mu.Lock()
	left := loud.blipLeft
	loud.mu.Unlock()
	if left != 0 {
		t.Errorf("expected blip to finish, %d samples left", left)
	}
}

func TestCue_QuitIsSilent(t *testing.T) {
	p := NewProcessor()
	p.Cue(input.Quit, 2.25)
	if p.blipLeft != 0 {
		t.Error("quit should not blip")
	}
	if p.speed != 2.25 {
		t.Errorf("expected speed 2.25, got %v", p.speed)
	}
}

func TestPadRatio(t *testing.T) {
	tests := []struct {
		speed, want float64
	}{
		{1, 1},
		{10, 2},
		{0.1, 0.5},
	}
	for _, tt := range tests {
		if got := padRatio(tt.speed); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("padRatio(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestNop(t *testing.T) {
	var p Player = Nop{}
	p.Cue(input.SpeedUp, 1.5)
	if err := p.Close(); err != nil {
		t.Error(err)
	}
}
