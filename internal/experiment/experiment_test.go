package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/orbitsim/internal/input"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	names := reg.ListIntegrators()
	if len(names) != 2 || names[0] != "euler" || names[1] != "leapfrog" {
		t.Errorf("unexpected integrators %v", names)
	}

	for _, n := range names {
		integ, err := reg.GetIntegrator(n)
		if err != nil {
			t.Fatalf("GetIntegrator(%q): %v", n, err)
		}
		if integ.Name() != n {
			t.Errorf("integrator %q reports name %q", n, integ.Name())
		}
	}

	if _, err := reg.GetIntegrator("rk4"); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]string{"3:speed-up", " 3:toggle-trails ", "10:quit"})
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(s[3]) != 2 || s[3][0] != input.SpeedUp || s[3][1] != input.ToggleTrails {
		t.Errorf("tick 3 = %v", s[3])
	}
	if got := s.String(); got != "3:speed-up 3:toggle-trails 10:quit" {
		t.Errorf("String() = %q", got)
	}

	bad := []string{"speed-up", "x:quit", "0:quit", "5:warp"}
	for _, b := range bad {
		if _, err := ParseScript([]string{b}); err == nil {
			t.Errorf("ParseScript(%q) should fail", b)
		}
	}
}

func TestExperimentRun(t *testing.T) {
	script, err := ParseScript([]string{"1:speed-up", "1:speed-up", "50:toggle-trails", "51:toggle-trails", "80:quit"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Ticks = 200
	cfg.Script = script
	cfg.ValidateState = true

	exp := New(cfg)
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
	if err := exp.Setup(NewRegistry()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !result.Quit || result.Ticks != 79 {
		t.Errorf("expected quit after 79 ticks, got quit=%v ticks=%d", result.Quit, result.Ticks)
	}
	if math.Abs(result.Speed-2.25) > 1e-12 {
		t.Errorf("expected speed 2.25, got %v", result.Speed)
	}
	if got := result.Metrics["mean_speed"]; math.Abs(got-2.25) > 1e-12 {
		t.Errorf("expected mean speed 2.25, got %v", got)
	}
	if exp.Recorder().Len() != 79 {
		t.Errorf("expected 79 samples, got %d", exp.Recorder().Len())
	}
	if n := exp.Controller().State().Body("Earth").Trail.Len(); n != 29 {
		t.Errorf("expected 29 trail points after re-enabling, got %d", n)
	}
}

func TestExperimentSetup_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Integrator = "rk45"
	if err := New(cfg).Setup(NewRegistry()); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Speed = 42
	if err := New(cfg).Setup(NewRegistry()); err == nil {
		t.Error("expected speed bounds error")
	}
}

func TestExperimentRun_NotSetup(t *testing.T) {
	_, err := New(DefaultConfig()).Run(context.Background())
	if !errors.Is(err, ErrNotSetup) {
		t.Errorf("expected ErrNotSetup, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ticks = 600
	cfg.Script = Script{10: {input.SpeedUp}}

	results, err := Compare(context.Background(), NewRegistry(), cfg, []string{"euler", "leapfrog"})
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Ticks != 600 {
			t.Errorf("expected 600 ticks, got %d", r.Ticks)
		}
		if math.Abs(r.Speed-1.5) > 1e-12 {
			t.Errorf("script not applied, speed %v", r.Speed)
		}
		if _, ok := r.Metrics["energy_drift"]; !ok {
			t.Error("missing energy_drift metric")
		}
	}

	if _, err := Compare(context.Background(), NewRegistry(), cfg, []string{"euler", "bogus"}); !errors.Is(err, ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}
