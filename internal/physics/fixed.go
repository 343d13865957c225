package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

// Coefficients are the fixed lift, drag and moment coefficients.
type Coefficients struct {
	Lift   float64
	Drag   float64
	Moment float64
}

func DefaultCoefficients() Coefficients {
	return Coefficients{Lift: 0.1, Drag: 0.1, Moment: 0.01}
}

// FixedCoefficients is the constant-coefficient force model. Drag and torque
// scale with the velocity and spin vectors themselves rather than their unit
// directions, and gravity defaults to [VelocityScaledGravity].
type FixedCoefficients struct {
	ball    Ball
	coeff   Coefficients
	gravity GravityModel
}

func NewFixedCoefficients(ball Ball, c Coefficients, opts ...Option) (*FixedCoefficients, error) {
	if err := ball.Validate(); err != nil {
		return nil, err
	}
	for _, v := range []float64{c.Lift, c.Drag, c.Moment} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: coefficients must be finite, got %+v", dynamo.ErrInvalidArgument, c)
		}
	}
	o := buildOptions(VelocityScaledGravity{}, opts)
	return &FixedCoefficients{ball: ball, coeff: c, gravity: o.gravity}, nil
}

func (m *FixedCoefficients) Name() string               { return ModelFixed }
func (m *FixedCoefficients) Ball() Ball                 { return m.ball }
func (m *FixedCoefficients) Coefficients() Coefficients { return m.coeff }
func (m *FixedCoefficients) GravityModel() GravityModel { return m.gravity }
func (m *FixedCoefficients) Mass() float64              { return m.ball.Mass }
func (m *FixedCoefficients) MomentOfInertia() float64   { return m.ball.MomentOfInertia() }

// Drag is -C_D * q * A * v.
func (m *FixedCoefficients) Drag(v, w vec.Vector3) (vec.Vector3, error) {
	q := m.ball.DynamicPressure(v)
	return v.Scale(-m.coeff.Drag * q * m.ball.Area()), nil
}

// Lift is C_L * q * A * unit(v x w).
func (m *FixedCoefficients) Lift(v, w vec.Vector3) (vec.Vector3, error) {
	dir, err := liftDirection(v, w)
	if err != nil {
		return vec.Zero, err
	}
	q := m.ball.DynamicPressure(v)
	return dir.Scale(m.coeff.Lift * q * m.ball.Area()), nil
}

// Torque is -C_M * q * d * A * w.
func (m *FixedCoefficients) Torque(v, w vec.Vector3) (vec.Vector3, error) {
	q := m.ball.DynamicPressure(v)
	return w.Scale(-m.coeff.Moment * q * m.ball.Diameter() * m.ball.Area()), nil
}

func (m *FixedCoefficients) Gravity(v vec.Vector3) (vec.Vector3, error) {
	return m.gravity.Force(m.ball, v)
}

func (m *FixedCoefficients) Forces(v, w vec.Vector3) (dynamo.Forces, error) {
	return evaluate(m, v, w)
}
