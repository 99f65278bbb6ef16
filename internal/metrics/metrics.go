// Package metrics provides sim.Metric implementations for orbit runs.
package metrics

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

var registry = map[string]func() sim.Metric{
	"energy":        func() sim.Metric { return NewEnergy() },
	"energy_drift":  func() sim.Metric { return NewEnergyDrift() },
	"edge_contacts": func() sim.Metric { return NewEdgeContacts(physics.Viewport) },
	"mean_speed":    func() sim.Metric { return NewMeanSpeed() },
}

// New returns a fresh metric by name.
func New(name string) (sim.Metric, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", name)
	}
	return factory(), nil
}

// Names lists the registered metrics in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Defaults returns one fresh instance of every registered metric.
func Defaults() []sim.Metric {
	out := make([]sim.Metric, 0, len(registry))
	for _, n := range Names() {
		out = append(out, registry[n]())
	}
	return out
}
