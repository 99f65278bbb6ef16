package physics

import "gonum.org/v1/gonum/spatial/r2"

// Trail is a fixed-capacity ring of past positions. Appending to a full
// trail overwrites the oldest sample.
type Trail struct {
	buf  [TrailCapacity]r2.Vec
	head int // index of the oldest sample
	n    int
}

// Append records p as the newest sample.
func (t *Trail) Append(p r2.Vec) {
	if t.n < TrailCapacity {
		t.buf[(t.head+t.n)%TrailCapacity] = p
		t.n++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % TrailCapacity
}

// Clear drops every sample.
func (t *Trail) Clear() {
	t.head = 0
	t.n = 0
}

// Len returns the number of samples held.
func (t *Trail) Len() int { return t.n }

// At returns the i-th sample, oldest first.
func (t *Trail) At(i int) r2.Vec {
	return t.buf[(t.head+i)%TrailCapacity]
}

// Last returns the newest sample and false when the trail is empty.
func (t *Trail) Last() (r2.Vec, bool) {
	if t.n == 0 {
		return r2.Vec{}, false
	}
	return t.At(t.n - 1), true
}

// Points copies the samples, oldest first, into a new slice.
func (t *Trail) Points() []r2.Vec {
	pts := make([]r2.Vec, t.n)
	for i := range pts {
		pts[i] = t.At(i)
	}
	return pts
}

// Each calls fn for every sample, oldest first.
func (t *Trail) Each(fn func(i int, p r2.Vec)) {
	for i := 0; i < t.n; i++ {
		fn(i, t.At(i))
	}
}
