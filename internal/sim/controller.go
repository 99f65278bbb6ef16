package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orbitsim/internal/input"
)

// Controller runs the per-tick pipeline: apply commands, advance every
// body, maintain trails, publish the frame.
type Controller struct {
	state      *State
	integrator Integrator
	cfg        Config
	metrics    []Metric
	observers  []Observer
	frame      Frame
	tick       int
	quit       bool
}

func NewController(state *State, integrator Integrator, cfg Config) *Controller {
	if cfg.BaseDt <= 0 {
		cfg.BaseDt = DefaultConfig().BaseDt
	}
	return &Controller{
		state:      state,
		integrator: integrator,
		cfg:        cfg,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (c *Controller) AddMetric(m Metric)     { c.metrics = append(c.metrics, m) }
func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) State() *State          { return c.state }
func (c *Controller) Integrator() Integrator { return c.integrator }
func (c *Controller) Ticks() int             { return c.tick }
func (c *Controller) Done() bool             { return c.quit }

// EffectiveDt is the timestep at the current speed multiplier.
func (c *Controller) EffectiveDt() float64 {
	return c.cfg.BaseDt * c.state.Speed
}

// Apply executes a single command. It returns false for Quit.
func (c *Controller) Apply(cmd input.Command) bool {
	s := c.state
	switch cmd {
	case input.ToggleTrails:
		s.TrailsOn = !s.TrailsOn
		log.Debug("trails", "on", s.TrailsOn)
	case input.SpeedUp:
		s.Speed = speedUp(s.Speed)
		log.Debug("speed", "multiplier", s.Speed)
	case input.SlowDown:
		s.Speed = slowDown(s.Speed)
		log.Debug("speed", "multiplier", s.Speed)
	case input.Quit:
		c.quit = true
		return false
	}
	return true
}

// Tick applies cmds in order and advances the simulation by one step.
// A Quit command ends the tick before any physics runs and Tick returns
// false; commands after it are ignored.
func (c *Controller) Tick(cmds []input.Command) bool {
	if c.quit {
		return false
	}
	for _, cmd := range cmds {
		if !c.Apply(cmd) {
			return false
		}
	}

	s := c.state
	dt := c.EffectiveDt()
	for _, b := range s.Bodies {
		c.integrator.Advance(b, s.Attractor, dt)
		if s.TrailsOn {
			b.Trail.Append(b.Pos)
		} else {
			b.Trail.Clear()
		}
	}
	c.tick++

	f := c.Frame()
	for _, m := range c.metrics {
		m.Observe(f)
	}
	for _, o := range c.observers {
		o.OnTick(f)
	}
	return true
}

// Frame returns the view of the current state. The returned value is
// reused across ticks.
func (c *Controller) Frame() *Frame {
	s := c.state
	c.frame = Frame{
		Tick:      c.tick,
		Dt:        c.EffectiveDt(),
		Speed:     s.Speed,
		TrailsOn:  s.TrailsOn,
		Attractor: s.Attractor,
		Bodies:    s.Bodies,
	}
	return &c.frame
}

// Run ticks until src yields Quit, MaxTicks is reached or ctx is done.
// With a positive Rate ticks are paced by a ticker; the timestep stays
// nominal regardless of wall-clock jitter.
func (c *Controller) Run(ctx context.Context, src Source, r Renderer) (*Result, error) {
	if err := c.state.Validate(); err != nil {
		return nil, err
	}
	for _, m := range c.metrics {
		m.Reset()
	}

	var pace <-chan time.Time
	if c.cfg.Rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(c.cfg.Rate))
		defer ticker.Stop()
		pace = ticker.C
	}

	result := &Result{Metrics: make(map[string]float64)}
	defer func() {
		result.Ticks = c.tick
		result.Quit = c.quit
		result.Speed = c.state.Speed
		for _, m := range c.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}()

	for c.cfg.MaxTicks <= 0 || c.tick < c.cfg.MaxTicks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-pace:
			}
		} else {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}
		}

		var cmds []input.Command
		if src != nil {
			cmds = src.Poll()
		}
		if !c.Tick(cmds) {
			return result, nil
		}

		if c.cfg.ValidateState {
			if err := c.validate(); err != nil {
				return result, err
			}
		}

		if r != nil {
			if err := r.Render(c.Frame()); err != nil {
				return result, fmt.Errorf("render tick %d: %w", c.tick, err)
			}
		}
	}
	return result, nil
}

func (c *Controller) validate() error {
	for _, b := range c.state.Bodies {
		if !b.IsValid() {
			return &SimError{Tick: c.tick, Body: b.Name, Wrapped: ErrInvalidState}
		}
	}
	return nil
}
