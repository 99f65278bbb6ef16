package experiment

import (
	"context"

	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

type Config struct {
	Integrator    string
	Ticks         int
	Speed         float64
	TrailsOn      bool
	Script        Script
	SampleEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Integrator:  "euler",
		Ticks:       1200,
		Speed:       1.0,
		TrailsOn:    true,
		SampleEvery: 1,
	}
}

// Experiment is a headless, scripted run of the solar system.
type Experiment struct {
	cfg        Config
	controller *sim.Controller
	recorder   *sim.Recorder
	metrics    []sim.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(reg *Registry) error {
	integ, err := reg.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}

	state, err := e.initialState()
	if err != nil {
		return err
	}

	e.controller = sim.NewController(state, integ, e.simConfig())
	e.recorder = sim.NewRecorder(e.cfg.SampleEvery)
	e.controller.AddObserver(e.recorder)

	e.metrics = reg.DefaultMetrics()
	for _, m := range e.metrics {
		e.controller.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.controller == nil {
		return nil, ErrNotSetup
	}
	return e.controller.Run(ctx, e.cfg.Script.Source(e.controller), nil)
}

// Trial returns an independent ensemble trial for this configuration.
func (e *Experiment) Trial(reg *Registry) (sim.Trial, error) {
	integ, err := reg.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return sim.Trial{}, err
	}
	state, err := e.initialState()
	if err != nil {
		return sim.Trial{}, err
	}

	tr := sim.Trial{
		Name:       e.cfg.Integrator,
		State:      state,
		Integrator: integ,
		Metrics:    reg.DefaultMetrics,
	}
	if len(e.cfg.Script) > 0 {
		tr.Script = scriptByCount(e.cfg.Script)
	}
	return tr, nil
}

// Compare runs the configuration once per integrator concurrently.
func Compare(ctx context.Context, reg *Registry, cfg Config, names []string) ([]*sim.Result, error) {
	trials := make([]sim.Trial, 0, len(names))
	for _, name := range names {
		c := cfg
		c.Integrator = name
		tr, err := New(c).Trial(reg)
		if err != nil {
			return nil, err
		}
		trials = append(trials, tr)
	}
	simCfg := sim.Config{BaseDt: physics.BaseTimestep, MaxTicks: cfg.Ticks, ValidateState: cfg.ValidateState}
	return sim.NewEnsemble(simCfg, trials...).Run(ctx)
}

func (e *Experiment) Controller() *sim.Controller { return e.controller }

func (e *Experiment) Recorder() *sim.Recorder { return e.recorder }

func (e *Experiment) Metrics() []sim.Metric { return e.metrics }

func (e *Experiment) initialState() (*sim.State, error) {
	state := sim.NewState()
	if e.cfg.Speed != 0 {
		state.Speed = e.cfg.Speed
	}
	state.TrailsOn = e.cfg.TrailsOn
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}

func (e *Experiment) simConfig() sim.Config {
	return sim.Config{
		BaseDt:        physics.BaseTimestep,
		MaxTicks:      e.cfg.Ticks,
		ValidateState: e.cfg.ValidateState,
	}
}

// scriptByCount replays s without a controller handle by counting polls.
// Run polls exactly once per tick, so the count is the upcoming tick.
func scriptByCount(s Script) sim.Source {
	tick := 0
	return sim.SourceFunc(func() []input.Command {
		tick++
		return s[tick]
	})
}
