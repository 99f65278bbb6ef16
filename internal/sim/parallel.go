package sim

import (
	"context"
	"fmt"
	"sync"
)

// Trial is one independent run of an Ensemble. Every trial owns its
// state; nothing is shared between goroutines.
type Trial struct {
	Name       string
	State      *State
	Integrator Integrator
	Script     Source
	// Metrics builds fresh metric instances for this trial.
	Metrics func() []Metric
}

type Ensemble struct {
	trials []Trial
	cfg    Config
}

func NewEnsemble(cfg Config, trials ...Trial) *Ensemble {
	cfg.Rate = 0
	return &Ensemble{trials: trials, cfg: cfg}
}

// Run executes every trial concurrently and returns results in trial
// order. The first error is returned after all trials finish.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.trials))
	errs := make([]error, len(e.trials))

	var wg sync.WaitGroup
	for i := range e.trials {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			tr := e.trials[idx]
			c := NewController(tr.State, tr.Integrator, e.cfg)
			if tr.Metrics != nil {
				for _, m := range tr.Metrics() {
					c.AddMetric(m)
				}
			}

			results[idx], errs[idx] = c.Run(ctx, tr.Script, nil)
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return results, fmt.Errorf("trial %s: %w", e.trials[i].Name, err)
		}
	}

	return results, nil
}
