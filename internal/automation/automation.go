// Package automation runs batches of headless sessions described in
// YAML scenarios or generated as speed sweeps.
package automation

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario is a named sequence of scripted runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one headless run. Commands use the tick:command
// script syntax.
type ScenarioStep struct {
	Name       string   `yaml:"name"`
	Integrator string   `yaml:"integrator"`
	Frames     int      `yaml:"frames"`
	Speed      float64  `yaml:"speed"`
	Trails     *bool    `yaml:"trails"`
	Commands   []string `yaml:"commands"`
}

// StepResult pairs a step with its outcome.
type StepResult struct {
	Step   ScenarioStep
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScenario(f)
}

func ParseScenario(r io.Reader) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.NewDecoder(r).Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

func (s ScenarioStep) config() (experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	if s.Integrator != "" {
		cfg.Integrator = s.Integrator
	}
	if s.Frames > 0 {
		cfg.Ticks = s.Frames
	}
	if s.Speed != 0 {
		cfg.Speed = s.Speed
	}
	if s.Trails != nil {
		cfg.TrailsOn = *s.Trails
	}
	script, err := experiment.ParseScript(s.Commands)
	if err != nil {
		return cfg, err
	}
	cfg.Script = script
	return cfg, nil
}

// RunScenario executes the steps in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		log.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(scenario.Steps)), "name", step.Name)

		cfg, err := step.config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(registry); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Result: result})
	}

	return results, nil
}

// SpeedSweep runs the same session at evenly spaced speed multipliers.
type SpeedSweep struct {
	Integrator string
	MinSpeed   float64
	MaxSpeed   float64
	NumSteps   int
	Frames     int
}

type SweepResult struct {
	Speed        float64
	EnergyDrift  float64
	EdgeContacts float64
	// Stable is false when a body touched the viewport edge or the
	// energy became non-finite.
	Stable bool
}

func (s *SpeedSweep) validate() error {
	if s.Frames < 1 {
		return sim.ErrNoFrames
	}
	if s.NumSteps < 1 {
		return fmt.Errorf("sweep needs at least one step: %w", sim.ErrParameterBounds)
	}
	if s.MinSpeed < sim.MinSpeed || s.MaxSpeed > sim.MaxSpeed || s.MinSpeed > s.MaxSpeed {
		return fmt.Errorf("sweep range [%g, %g] outside [%g, %g]: %w",
			s.MinSpeed, s.MaxSpeed, sim.MinSpeed, sim.MaxSpeed, sim.ErrParameterBounds)
	}
	return nil
}

// Speeds returns the multipliers the sweep visits.
func (s *SpeedSweep) Speeds() []float64 {
	if s.NumSteps == 1 {
		return []float64{s.MinSpeed}
	}
	step := (s.MaxSpeed - s.MinSpeed) / float64(s.NumSteps-1)
	out := make([]float64, s.NumSteps)
	for i := range out {
		out[i] = s.MinSpeed + float64(i)*step
	}
	return out
}

// RunSweep runs every speed of the sweep concurrently.
func RunSweep(ctx context.Context, sweep *SpeedSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if err := sweep.validate(); err != nil {
		return nil, err
	}

	speeds := sweep.Speeds()
	trials := make([]sim.Trial, 0, len(speeds))
	for _, speed := range speeds {
		cfg := experiment.DefaultConfig()
		cfg.Integrator = sweep.Integrator
		cfg.Ticks = sweep.Frames
		cfg.Speed = speed
		tr, err := experiment.New(cfg).Trial(registry)
		if err != nil {
			return nil, err
		}
		tr.Name = fmt.Sprintf("%s@%.2fx", tr.Name, speed)
		trials = append(trials, tr)
	}

	runs, err := sim.NewEnsemble(sim.Config{BaseDt: sim.DefaultConfig().BaseDt, MaxTicks: sweep.Frames}, trials...).Run(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(runs))
	for i, r := range runs {
		drift, edges := r.Metrics["energy_drift"], r.Metrics["edge_contacts"]
		results[i] = SweepResult{
			Speed:        speeds[i],
			EnergyDrift:  drift,
			EdgeContacts: edges,
			Stable:       edges == 0 && !math.IsNaN(drift) && !math.IsInf(drift, 0),
		}
		log.Debug("sweep point", "speed", speeds[i], "drift", drift, "edges", edges)
	}
	return results, nil
}

// SweepStats counts stable and unstable sweep points.
func SweepStats(results []SweepResult) (stableCount int, unstableCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			unstableCount++
		}
	}
	return
}

// MaxStableSpeed returns the largest speed below the first unstable
// point, or false when the slowest point is already unstable.
func MaxStableSpeed(results []SweepResult) (float64, bool) {
	best, ok := 0.0, false
	for _, r := range results {
		if !r.Stable {
			break
		}
		best, ok = r.Speed, true
	}
	return best, ok
}
