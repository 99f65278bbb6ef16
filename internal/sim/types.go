package sim

import (
	"fmt"

	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/physics"
)

// Integrator advances one body against a fixed attractor in place. It
// returns false when the step was skipped and the body left untouched.
type Integrator interface {
	Advance(b, attractor *physics.Body, dt float64) bool
	Name() string
}

// Source yields the commands decoded since the previous poll.
type Source interface {
	Poll() []input.Command
}

// Renderer receives the frame at the end of every tick. Frames are only
// valid for the duration of the call.
type Renderer interface {
	Render(f *Frame) error
}

type Metric interface {
	Name() string
	Observe(f *Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(f *Frame)
}

// Frame is the read-only view of the state handed out after a tick.
type Frame struct {
	Tick      int
	Dt        float64
	Speed     float64
	TrailsOn  bool
	Attractor *physics.Body
	Bodies    []*physics.Body
}

// SpeedLabel is the speed readout shown by every front end.
func (f *Frame) SpeedLabel() string {
	return fmt.Sprintf("Speed: %.2fx", f.Speed)
}

type Config struct {
	// BaseDt is the nominal timestep before speed scaling.
	BaseDt float64
	// Rate paces Run at this many ticks per second. Zero runs unpaced.
	Rate int
	// MaxTicks stops Run after this many ticks. Zero means until quit.
	MaxTicks int
	// ValidateState aborts Run when a body goes NaN or infinite.
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{BaseDt: physics.BaseTimestep, Rate: 60}
}

type Result struct {
	Ticks   int
	Quit    bool
	Speed   float64
	Metrics map[string]float64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []input.Command

func (f SourceFunc) Poll() []input.Command { return f() }

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f *Frame) error

func (f RendererFunc) Render(fr *Frame) error { return f(fr) }
