package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

// Polynomial holds the spin ratio fits
//
//	C_L(s) = A + B*s + C*s^2
//	C_D(s) = D + E*s + F*s^2
//	C_M(s) = G*s
type Polynomial struct {
	A, B, C float64
	D, E, F float64
	G       float64
}

func DefaultPolynomial() Polynomial {
	return Polynomial{
		A: 0.1304, B: 0.9287, C: -0.8259,
		D: 0.0504, E: 1.2031, F: -1.1490,
		G: 0.01,
	}
}

func (p Polynomial) Lift(s float64) float64   { return p.A + p.B*s + p.C*(s*s) }
func (p Polynomial) Drag(s float64) float64   { return p.D + p.E*s + p.F*(s*s) }
func (p Polynomial) Moment(s float64) float64 { return p.G * s }

// SpinRatio is the force model whose coefficients depend on the spin ratio.
// Drag, lift and torque act along unit directions and gravity defaults to
// [DirectionScaledGravity].
type SpinRatio struct {
	ball    Ball
	poly    Polynomial
	gravity GravityModel
}

func NewSpinRatio(ball Ball, p Polynomial, opts ...Option) (*SpinRatio, error) {
	if err := ball.Validate(); err != nil {
		return nil, err
	}
	for _, v := range []float64{p.A, p.B, p.C, p.D, p.E, p.F, p.G} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: polynomial constants must be finite, got %+v", dynamo.ErrInvalidArgument, p)
		}
	}
	o := buildOptions(DirectionScaledGravity{}, opts)
	return &SpinRatio{ball: ball, poly: p, gravity: o.gravity}, nil
}

func (m *SpinRatio) Name() string               { return ModelSpinRatio }
func (m *SpinRatio) Ball() Ball                 { return m.ball }
func (m *SpinRatio) Polynomial() Polynomial     { return m.poly }
func (m *SpinRatio) GravityModel() GravityModel { return m.gravity }
func (m *SpinRatio) Mass() float64              { return m.ball.Mass }
func (m *SpinRatio) MomentOfInertia() float64   { return m.ball.MomentOfInertia() }

// Ratio is r*|w| / |v|.
func (m *SpinRatio) Ratio(v, w vec.Vector3) (float64, error) {
	speed := v.Length()
	if speed == 0 {
		return 0, fmt.Errorf("spin ratio: %w", vec.ErrDivisionByZero)
	}
	return m.ball.Radius * w.Length() / speed, nil
}

// Drag is -C_D(s) * q * A * unit(v).
func (m *SpinRatio) Drag(v, w vec.Vector3) (vec.Vector3, error) {
	s, err := m.Ratio(v, w)
	if err != nil {
		return vec.Zero, err
	}
	dir, err := v.Normalize()
	if err != nil {
		return vec.Zero, err
	}
	q := m.ball.DynamicPressure(v)
	return dir.Scale(-m.poly.Drag(s) * q * m.ball.Area()), nil
}

// Lift is C_L(s) * q * A * unit(v x w).
func (m *SpinRatio) Lift(v, w vec.Vector3) (vec.Vector3, error) {
	dir, err := liftDirection(v, w)
	if err != nil {
		return vec.Zero, err
	}
	s, err := m.Ratio(v, w)
	if err != nil {
		return vec.Zero, err
	}
	q := m.ball.DynamicPressure(v)
	return dir.Scale(m.poly.Lift(s) * q * m.ball.Area()), nil
}

// Torque is -C_M(s) * q * d * A * unit(w), zero when there is no spin.
func (m *SpinRatio) Torque(v, w vec.Vector3) (vec.Vector3, error) {
	s, err := m.Ratio(v, w)
	if err != nil {
		return vec.Zero, err
	}
	if w.IsZero() {
		return vec.Zero, nil
	}
	dir, err := w.Normalize()
	if err != nil {
		return vec.Zero, err
	}
	q := m.ball.DynamicPressure(v)
	return dir.Scale(-m.poly.Moment(s) * q * m.ball.Diameter() * m.ball.Area()), nil
}

func (m *SpinRatio) Gravity(v vec.Vector3) (vec.Vector3, error) {
	return m.gravity.Force(m.ball, v)
}

func (m *SpinRatio) Forces(v, w vec.Vector3) (dynamo.Forces, error) {
	return evaluate(m, v, w)
}
