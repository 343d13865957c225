package dynamo

import (
	"errors"
	"fmt"

	"github.com/san-kum/golfsim/internal/vec"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidArgument indicates a malformed configuration value such as a
	// non-positive timestep or physical constant.
	ErrInvalidArgument = errors.New("dynamo: invalid argument")

	// ErrDivisionByZero indicates a normalization or spin ratio on a zero vector.
	ErrDivisionByZero = vec.ErrDivisionByZero

	// ErrInvalidState indicates a state with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrFlightFinished indicates a flight was advanced after reaching a terminal status.
	ErrFlightFinished = errors.New("dynamo: flight already finished")
)

// SimulationError wraps an error with the tick it happened on.
type SimulationError struct {
	Tick    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %v", e.Tick, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
