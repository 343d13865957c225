package metrics

import (
	"github.com/san-kum/golfsim/internal/dynamo"
)

// Energy tracks the mechanical energy of the ball (translational, rotational
// and potential) and reports the value at the last observed tick.
type Energy struct {
	name    string
	mass    float64
	inertia float64
	gravity float64
	samples int
	initial float64
	current float64
}

func NewEnergy(mass, inertia, gravity float64) *Energy {
	return &Energy{
		name:    "energy",
		mass:    mass,
		inertia: inertia,
		gravity: gravity,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Of(x dynamo.State) float64 {
	ke := 0.5 * e.mass * x.Velocity.LengthSquared()
	keRot := 0.5 * e.inertia * x.Spin.LengthSquared()
	pe := e.mass * e.gravity * x.Position.Z()
	return ke + keRot + pe
}

func (e *Energy) Observe(s dynamo.Snapshot) {
	energy := e.Of(s.State)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.current
}

// Change is the energy at the last tick minus the energy at the first.
func (e *Energy) Change() float64 {
	return e.current - e.initial
}

func (e *Energy) Reset() {
	e.initial = 0
	e.current = 0
	e.samples = 0
}
