package physics

import (
	"fmt"

	"github.com/san-kum/golfsim/internal/vec"
)

// GravityModel computes the gravitational force term of the net force.
//
// The two legacy strategies scale weight by a velocity component instead of
// applying a constant downward force. They are kept because trajectories
// produced by the fixed and spin-ratio models depend on them.
type GravityModel interface {
	Name() string
	Force(b Ball, v vec.Vector3) (vec.Vector3, error)
}

const (
	GravityVelocityScaled  = "velocity_scaled"
	GravityDirectionScaled = "direction_scaled"
	GravityConstant        = "constant"
	GravityNone            = "none"
)

// VelocityScaledGravity is (0, 0, -m*g*v.z).
type VelocityScaledGravity struct{}

func (VelocityScaledGravity) Name() string { return GravityVelocityScaled }

func (VelocityScaledGravity) Force(b Ball, v vec.Vector3) (vec.Vector3, error) {
	return vec.New(0, 0, -b.Mass*b.Gravity*v.Z()), nil
}

// DirectionScaledGravity is (0, 0, -m*g*(v/|v|).z). Fails on zero velocity.
type DirectionScaledGravity struct{}

func (DirectionScaledGravity) Name() string { return GravityDirectionScaled }

func (DirectionScaledGravity) Force(b Ball, v vec.Vector3) (vec.Vector3, error) {
	k, err := v.Normalize()
	if err != nil {
		return vec.Zero, fmt.Errorf("gravity direction: %w", err)
	}
	return vec.New(0, 0, -b.Mass*b.Gravity*k.Z()), nil
}

// ConstantGravity is the true weight (0, 0, -m*g).
type ConstantGravity struct{}

func (ConstantGravity) Name() string { return GravityConstant }

func (ConstantGravity) Force(b Ball, v vec.Vector3) (vec.Vector3, error) {
	return vec.New(0, 0, -b.Mass*b.Gravity), nil
}

type NoGravity struct{}

func (NoGravity) Name() string { return GravityNone }

func (NoGravity) Force(b Ball, v vec.Vector3) (vec.Vector3, error) {
	return vec.Zero, nil
}

// GravityByName resolves a strategy name.
func GravityByName(name string) (GravityModel, error) {
	switch name {
	case GravityVelocityScaled:
		return VelocityScaledGravity{}, nil
	case GravityDirectionScaled:
		return DirectionScaledGravity{}, nil
	case GravityConstant:
		return ConstantGravity{}, nil
	case GravityNone:
		return NoGravity{}, nil
	default:
		return nil, fmt.Errorf("unknown gravity model: %s", name)
	}
}
