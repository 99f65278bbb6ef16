package physics

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrail_AppendAndOrder(t *testing.T) {
	var tr Trail
	for i := 0; i < 3; i++ {
		tr.Append(r2.Vec{X: float64(i)})
	}

	if tr.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", tr.Len())
	}
	for i, p := range tr.Points() {
		if p.X != float64(i) {
			t.Errorf("sample %d: expected x=%d, got %v", i, i, p.X)
		}
	}
	last, ok := tr.Last()
	if !ok || last.X != 2 {
		t.Errorf("Last() = %v, %v", last, ok)
	}
}

func TestTrail_EvictsOldest(t *testing.T) {
	var tr Trail
	total := TrailCapacity + 137
	for i := 0; i < total; i++ {
		tr.Append(r2.Vec{X: float64(i)})
	}

	if tr.Len() != TrailCapacity {
		t.Fatalf("expected %d samples, got %d", TrailCapacity, tr.Len())
	}
	if first := tr.At(0); first.X != 137 {
		t.Errorf("oldest sample should be 137, got %v", first.X)
	}
	if last, _ := tr.Last(); last.X != float64(total-1) {
		t.Errorf("newest sample should be %d, got %v", total-1, last.X)
	}

	prev := -1.0
	tr.Each(func(i int, p r2.Vec) {
		if p.X != prev+1 && i > 0 {
			t.Fatalf("sample %d out of order: %v after %v", i, p.X, prev)
		}
		prev = p.X
	})
}

func TestTrail_Clear(t *testing.T) {
	var tr Trail
	for i := 0; i < TrailCapacity*2; i++ {
		tr.Append(r2.Vec{Y: float64(i)})
	}
	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("expected empty trail, got %d", tr.Len())
	}
	if _, ok := tr.Last(); ok {
		t.Error("Last() on empty trail should report false")
	}
	if len(tr.Points()) != 0 {
		t.Error("Points() on empty trail should be empty")
	}

	tr.Append(r2.Vec{X: 7})
	if tr.Len() != 1 || tr.At(0).X != 7 {
		t.Errorf("trail did not restart from empty: %v", tr.Points())
	}
}
