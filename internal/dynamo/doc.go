// Package dynamo provides the core simulation primitives for a spinning ball
// in flight.
//
// The package defines the state, interfaces and loop that drive a flight:
//
//   - [State]: velocity, spin, position and elapsed time of the ball
//   - [System]: aerodynamic force and torque evaluation
//   - [Integrator]: fixed-step state advance
//   - [Simulator]: builds flights from launch parameters
//   - [Flight]: one run, consumed as a lazy single-pass sequence of [Snapshot]
//
// # Example
//
//	model, _ := physics.NewFixedCoefficients(physics.DefaultBall(), physics.DefaultCoefficients())
//	s := dynamo.New(model, integrators.NewEuler())
//	result, _ := s.Run(ctx, launch, dynamo.DefaultConfig())
//
// # Thread Safety
//
// A Flight owns its state and must not be shared between goroutines. Flights
// started from the same Simulator share its metrics and observers, so run
// them one at a time or use one Simulator per goroutine.
package dynamo
