package integrators

import (
	"errors"
	"testing"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

// constantForce pushes with a fixed force and torque regardless of state.
type constantForce struct {
	force, torque   vec.Vector3
	mass, inertia   float64
	calls           int
	failOnZeroSpeed bool
}

func (c *constantForce) Forces(v, w vec.Vector3) (dynamo.Forces, error) {
	c.calls++
	if c.failOnZeroSpeed && v.IsZero() {
		return dynamo.Forces{}, dynamo.ErrDivisionByZero
	}
	return dynamo.Forces{Net: c.force, Torque: c.torque}, nil
}

func (c *constantForce) Mass() float64            { return c.mass }
func (c *constantForce) MomentOfInertia() float64 { return c.inertia }

func TestEulerStep(t *testing.T) {
	sys := &constantForce{
		force:   vec.New(0, 0, -2),
		torque:  vec.New(4, 0, 0),
		mass:    2,
		inertia: 0.5,
	}
	x := dynamo.State{
		Velocity: vec.New(1, 10, 5),
		Spin:     vec.New(100, 0, 0),
		Position: vec.New(0, 0, 1),
	}

	next, forces, err := NewEuler().Step(sys, x, 0.5)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if want := vec.New(1, 10, 4.5); next.Velocity != want {
		t.Errorf("velocity = %v, want %v", next.Velocity, want)
	}
	// angular acceleration is -torque / inertia
	if want := vec.New(96, 0, 0); next.Spin != want {
		t.Errorf("spin = %v, want %v", next.Spin, want)
	}
	if want := vec.New(0.5, 5, 3.5); next.Position != want {
		t.Errorf("position = %v, want %v", next.Position, want)
	}
	if next.Time != 0.5 {
		t.Errorf("time = %v, want 0.5", next.Time)
	}
	if forces.Net != sys.force {
		t.Errorf("forces not reported: %v", forces.Net)
	}
}

func TestEulerUsesPreStepVelocity(t *testing.T) {
	sys := &constantForce{force: vec.New(0, 0, -10), mass: 1, inertia: 1}
	x := dynamo.State{Velocity: vec.New(0, 0, 3), Position: vec.New(0, 0, 10)}
	dt := 0.1

	next, _, err := NewEuler().Step(sys, x, dt)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	preStep := x.Position.Add(x.Velocity.Scale(dt))
	postStep := x.Position.Add(next.Velocity.Scale(dt))
	if preStep == postStep {
		t.Fatal("test case does not separate the two orderings")
	}
	if next.Position != preStep {
		t.Errorf("position = %v, want %v (pre-step velocity)", next.Position, preStep)
	}
}

func TestEulerDeterministic(t *testing.T) {
	sys := &constantForce{force: vec.New(0.3, -0.7, -0.45), torque: vec.New(1e-5, 0, 0), mass: 0.04593, inertia: 8.37e-6}
	x := dynamo.State{
		Velocity: vec.New(0, 82.75, 19.41),
		Spin:     vec.New(183.26, 0, 0),
		Position: vec.New(0.1, 2.2, 3.3),
		Time:     1.2,
	}

	a, fa, errA := NewEuler().Step(sys, x, 0.1)
	b, fb, errB := NewEuler().Step(sys, x, 0.1)
	if errA != nil || errB != nil {
		t.Fatalf("step failed: %v, %v", errA, errB)
	}
	if a != b || fa != fb {
		t.Errorf("non-deterministic step: %+v vs %+v", a, b)
	}
}

func TestEulerInvalidDt(t *testing.T) {
	sys := &constantForce{mass: 1, inertia: 1}
	for _, dt := range []float64{0, -0.1} {
		_, _, err := NewEuler().Step(sys, dynamo.State{}, dt)
		if !errors.Is(err, dynamo.ErrInvalidArgument) {
			t.Errorf("dt=%v: err = %v, want ErrInvalidArgument", dt, err)
		}
	}
	if sys.calls != 0 {
		t.Errorf("forces evaluated %d times for invalid dt", sys.calls)
	}
}

func TestEulerPropagatesForceError(t *testing.T) {
	sys := &constantForce{mass: 1, inertia: 1, failOnZeroSpeed: true}
	_, _, err := NewEuler().Step(sys, dynamo.State{}, 0.1)
	if !errors.Is(err, dynamo.ErrDivisionByZero) {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}
