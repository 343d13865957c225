package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/vec"
)

const (
	DefaultRadius     = 0.02135 // m
	DefaultMass       = 0.04593 // kg
	DefaultAirDensity = 1.225   // kg/m^3
	DefaultGravity    = 9.8     // m/s^2
)

// Ball is the set of physical constants for one run. It is passed by value so
// a model's copy cannot change under it.
type Ball struct {
	Radius     float64
	Mass       float64
	AirDensity float64
	Gravity    float64
}

func DefaultBall() Ball {
	return Ball{
		Radius:     DefaultRadius,
		Mass:       DefaultMass,
		AirDensity: DefaultAirDensity,
		Gravity:    DefaultGravity,
	}
}

func NewBall(radius, mass, airDensity, gravity float64) (Ball, error) {
	b := Ball{Radius: radius, Mass: mass, AirDensity: airDensity, Gravity: gravity}
	if err := b.Validate(); err != nil {
		return Ball{}, err
	}
	return b, nil
}

func (b Ball) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"radius", b.Radius},
		{"mass", b.Mass},
		{"air density", b.AirDensity},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", dynamo.ErrInvalidArgument, p.name, p.value)
		}
	}
	if !(b.Gravity >= 0) || math.IsInf(b.Gravity, 0) {
		return fmt.Errorf("%w: gravity must be non-negative, got %g", dynamo.ErrInvalidArgument, b.Gravity)
	}
	return nil
}

func (b Ball) Diameter() float64 { return 2 * b.Radius }

// Area is the cross-sectional area.
func (b Ball) Area() float64 { return math.Pi * (b.Radius * b.Radius) }

// MomentOfInertia of a solid sphere.
func (b Ball) MomentOfInertia() float64 { return (2.0 / 5.0) * b.Mass * (b.Radius * b.Radius) }

// DynamicPressure is q = rho * |v|^2 / 2.
func (b Ball) DynamicPressure(v vec.Vector3) float64 {
	return 0.5 * b.AirDensity * v.LengthSquared()
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
