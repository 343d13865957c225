package physics

import (
	"fmt"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

// Model is an aerodynamic force model. Every term is exposed on its own so
// the breakdown can be inspected, and none of them has side effects.
type Model interface {
	dynamo.System
	Name() string
	Ball() Ball
	GravityModel() GravityModel
	Lift(v, w vec.Vector3) (vec.Vector3, error)
	Drag(v, w vec.Vector3) (vec.Vector3, error)
	Torque(v, w vec.Vector3) (vec.Vector3, error)
	Gravity(v vec.Vector3) (vec.Vector3, error)
}

const (
	ModelFixed     = "fixed"
	ModelSpinRatio = "spin_ratio"
)

type options struct {
	gravity GravityModel
}

type Option func(*options)

// WithGravity replaces the model's default gravity strategy.
func WithGravity(g GravityModel) Option {
	return func(o *options) {
		if g != nil {
			o.gravity = g
		}
	}
}

func buildOptions(def GravityModel, opts []Option) options {
	o := options{gravity: def}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// liftDirection is the unit vector along v x w. A zero cross product, which
// happens when there is no spin or the spin axis is parallel to the
// velocity, gives no lift rather than an error. Zero velocity still fails.
func liftDirection(v, w vec.Vector3) (vec.Vector3, error) {
	if v.IsZero() {
		return vec.Zero, fmt.Errorf("lift direction: %w", vec.ErrDivisionByZero)
	}
	c := v.Cross(w)
	if c.IsZero() {
		return vec.Zero, nil
	}
	return c.Normalize()
}

// evaluate sums lift, drag and gravity into the net force and adds torque.
func evaluate(m Model, v, w vec.Vector3) (dynamo.Forces, error) {
	var f dynamo.Forces
	var err error

	if f.Lift, err = m.Lift(v, w); err != nil {
		return dynamo.Forces{}, fmt.Errorf("%s lift: %w", m.Name(), err)
	}
	if f.Drag, err = m.Drag(v, w); err != nil {
		return dynamo.Forces{}, fmt.Errorf("%s drag: %w", m.Name(), err)
	}
	if f.Gravity, err = m.Gravity(v); err != nil {
		return dynamo.Forces{}, fmt.Errorf("%s gravity: %w", m.Name(), err)
	}
	if f.Torque, err = m.Torque(v, w); err != nil {
		return dynamo.Forces{}, fmt.Errorf("%s torque: %w", m.Name(), err)
	}
	f.Net = f.Lift.Add(f.Drag).Add(f.Gravity)
	return f, nil
}

// New builds a model by name with its default coefficients.
func New(name string, ball Ball, opts ...Option) (Model, error) {
	switch name {
	case ModelFixed:
		return NewFixedCoefficients(ball, DefaultCoefficients(), opts...)
	case ModelSpinRatio:
		return NewSpinRatio(ball, DefaultPolynomial(), opts...)
	default:
		return nil, fmt.Errorf("unknown model: %s", name)
	}
}
