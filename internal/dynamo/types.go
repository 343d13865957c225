package dynamo

import (
	"math"

	"github.com/san-kum/golfsim/internal/vec"
)

// State is the ball in flight. Units are m/s, rad/s, m and s.
type State struct {
	Velocity vec.Vector3
	Spin     vec.Vector3
	Position vec.Vector3
	Time     float64
}

func (s State) IsValid() bool {
	return s.Velocity.IsFinite() && s.Spin.IsFinite() && s.Position.IsFinite() &&
		!math.IsNaN(s.Time) && !math.IsInf(s.Time, 0)
}

// Launch holds the initial conditions of a shot. Angles are radians.
type Launch struct {
	Speed       float64
	LaunchAngle float64
	Azimuth     float64
	// Spin is (backspin, rifle spin, side spin) in rad/s.
	Spin vec.Vector3
}

// InitialVelocity decomposes speed along the launch angle and azimuth. The y
// axis points down range at zero azimuth and z points up.
func InitialVelocity(speed, launchAngle, azimuth float64) vec.Vector3 {
	return vec.New(
		speed*math.Cos(launchAngle)*math.Sin(azimuth),
		speed*math.Cos(launchAngle)*math.Cos(azimuth),
		speed*math.Sin(launchAngle),
	)
}

// State returns the t=0 state for the launch, at the origin.
func (l Launch) State() State {
	return State{
		Velocity: InitialVelocity(l.Speed, l.LaunchAngle, l.Azimuth),
		Spin:     l.Spin,
		Position: vec.Zero,
	}
}

// Forces is the breakdown of one force evaluation. Torque is not part of Net.
type Forces struct {
	Lift    vec.Vector3
	Drag    vec.Vector3
	Gravity vec.Vector3
	Net     vec.Vector3
	Torque  vec.Vector3
}

// System evaluates the forces acting on the ball for a given velocity and spin.
type System interface {
	Forces(v, w vec.Vector3) (Forces, error)
	Mass() float64
	MomentOfInertia() float64
}

type Integrator interface {
	Step(sys System, x State, dt float64) (State, Forces, error)
}

type Status int

const (
	Running Status = iota
	Landed
	MaxTicksExceeded
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Landed:
		return "landed"
	case MaxTicksExceeded:
		return "max_ticks_exceeded"
	default:
		return "unknown"
	}
}

func (s Status) Terminal() bool { return s != Running }

// DistanceMetric measures how far p is from the origin o.
type DistanceMetric func(p, o vec.Vector3) float64

func HorizontalDistance(p, o vec.Vector3) float64 { return p.HorizontalDistance(o) }
func Distance3D(p, o vec.Vector3) float64         { return p.Distance3D(o) }

// Snapshot is the observable outcome of one tick.
type Snapshot struct {
	Tick   int
	State  State
	Forces Forces
	Status Status
	// Distance from the launch point in meters.
	Distance float64
}

type Observer interface {
	OnTick(s Snapshot)
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Config struct {
	Dt             float64
	MaxTicks       int
	Distance       DistanceMetric
	KeepTrajectory bool
}

const (
	DefaultDt       = 0.1
	DefaultMaxTicks = 1000
)

func DefaultConfig() Config {
	return Config{
		Dt:             DefaultDt,
		MaxTicks:       DefaultMaxTicks,
		Distance:       HorizontalDistance,
		KeepTrajectory: true,
	}
}

type Result struct {
	Initial    State
	Final      State
	Status     Status
	Ticks      int
	Elapsed    float64
	Distance   float64
	Trajectory []Snapshot
	Metrics    map[string]float64
}
