package metrics

import (
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// EdgeContacts is the fraction of ticks in which at least one body was
// pinned to the viewport edge by clamping.
type EdgeContacts struct {
	name     string
	bounds   physics.Bounds
	contacts int
	samples  int
}

func NewEdgeContacts(bounds physics.Bounds) *EdgeContacts {
	return &EdgeContacts{
		name:   "edge_contacts",
		bounds: bounds,
	}
}

func (e *EdgeContacts) Name() string {
	return e.name
}

func (e *EdgeContacts) Observe(f *sim.Frame) {
	e.samples++
	for _, b := range f.Bodies {
		if e.bounds.OnEdge(b.Pos) {
			e.contacts++
			break
		}
	}
}

func (e *EdgeContacts) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return float64(e.contacts) / float64(e.samples)
}

func (e *EdgeContacts) Reset() {
	e.contacts = 0
	e.samples = 0
}
