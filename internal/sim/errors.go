package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrParameterBounds indicates a parameter value is outside its valid range.
	ErrParameterBounds = errors.New("sim: parameter out of valid bounds")

	// ErrInvalidState indicates a body position or velocity went NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrNoBodies indicates a state without an attractor or orbiting bodies.
	ErrNoBodies = errors.New("sim: state has no bodies")

	// ErrNoFrames indicates a headless run was asked for zero ticks.
	ErrNoFrames = errors.New("sim: headless run needs a positive frame count")
)

// SimError wraps an error with the tick it happened on.
type SimError struct {
	Tick    int
	Body    string
	Wrapped error
}

func (e *SimError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("tick %d: %s: %v", e.Tick, e.Body, e.Wrapped)
	}
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
