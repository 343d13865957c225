package integrators

import (
	"fmt"

	"github.com/san-kum/golfsim/internal/dynamo"
)

// Euler is the explicit forward Euler scheme. Position advances with the
// velocity from the start of the step, not the updated one.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, dt float64) (dynamo.State, dynamo.Forces, error) {
	if dt <= 0 {
		return x, dynamo.Forces{}, fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidArgument, dt)
	}

	f, err := sys.Forces(x.Velocity, x.Spin)
	if err != nil {
		return x, f, err
	}

	linear, err := f.Net.Div(sys.Mass())
	if err != nil {
		return x, f, fmt.Errorf("linear acceleration: %w", err)
	}
	angular, err := f.Torque.Neg().Div(sys.MomentOfInertia())
	if err != nil {
		return x, f, fmt.Errorf("angular acceleration: %w", err)
	}

	return dynamo.State{
		Velocity: linear.Scale(dt).Add(x.Velocity),
		Spin:     angular.Scale(dt).Add(x.Spin),
		Position: x.Velocity.Scale(dt).Add(x.Position),
		Time:     x.Time + dt,
	}, f, nil
}
