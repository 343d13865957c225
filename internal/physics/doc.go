// Package physics provides the aerodynamic force models for a spinning golf
// ball.
//
// Each model implements [Model], and through it [dynamo.System]:
//
//   - [FixedCoefficients]: constant lift, drag and moment coefficients
//   - [SpinRatio]: coefficients as quadratic functions of the spin ratio
//
// The two models are physically distinct and produce different trajectories
// for the same launch. Gravity is a separate [GravityModel] strategy so the
// legacy velocity-scaled forms can be swapped for [ConstantGravity]:
//
//	model, err := physics.NewSpinRatio(physics.DefaultBall(), physics.DefaultPolynomial(),
//	    physics.WithGravity(physics.ConstantGravity{}))
//
// # Degenerate States
//
// Terms that need a unit direction fail with [vec.ErrDivisionByZero] on a
// zero velocity. A zero spin is not an error: lift and spin-ratio torque are
// zero.
package physics
