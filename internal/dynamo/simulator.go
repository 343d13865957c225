package dynamo

import (
	"context"
	"iter"

	"github.com/rs/zerolog"

	"github.com/san-kum/golfsim/internal/vec"
)

type Simulator struct {
	sys        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
	logger     zerolog.Logger
}

type Option func(*Simulator)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

func New(sys System, integrator Integrator, opts ...Option) *Simulator {
	s := &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) System() System         { return s.sys }

// Launch starts a flight at the origin from launch parameters.
func (s *Simulator) Launch(l Launch, cfg Config) (*Flight, error) {
	if l.Speed < 0 {
		return nil, invalidArgument("launch speed must be non-negative, got %f", l.Speed)
	}
	return s.NewFlight(l.State(), cfg)
}

// NewFlight starts a flight from an arbitrary state. Distances are measured
// from x0.Position.
func (s *Simulator) NewFlight(x0 State, cfg Config) (*Flight, error) {
	cfg, err := s.validateConfig(cfg)
	if err != nil {
		return nil, err
	}
	if !x0.IsValid() {
		return nil, ErrInvalidState
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Debug().
		Stringer("velocity", x0.Velocity).
		Stringer("spin", x0.Spin).
		Stringer("position", x0.Position).
		Float64("dt", cfg.Dt).
		Int("max_ticks", cfg.MaxTicks).
		Msg("flight started")

	return &Flight{
		sim:     s,
		cfg:     cfg,
		origin:  x0.Position,
		initial: x0,
		state:   x0,
		status:  Running,
	}, nil
}

// Run launches and drains a flight.
func (s *Simulator) Run(ctx context.Context, l Launch, cfg Config) (*Result, error) {
	f, err := s.Launch(l, cfg)
	if err != nil {
		return nil, err
	}
	return f.Run(ctx)
}

func (s *Simulator) validateConfig(cfg Config) (Config, error) {
	if cfg.Dt <= 0 {
		return cfg, invalidArgument("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.MaxTicks <= 0 {
		return cfg, invalidArgument("max ticks must be positive, got %d", cfg.MaxTicks)
	}
	if cfg.Distance == nil {
		cfg.Distance = HorizontalDistance
	}
	return cfg, nil
}

// Flight is a single run. It is advanced tick by tick until the ball lands or
// the tick bound is reached, and cannot be restarted.
type Flight struct {
	sim     *Simulator
	cfg     Config
	origin  vec.Vector3
	initial State
	state   State
	status  Status
	tick    int
	err     error
}

func (f *Flight) State() State   { return f.state }
func (f *Flight) Initial() State { return f.initial }
func (f *Flight) Status() Status { return f.status }
func (f *Flight) Tick() int      { return f.tick }
func (f *Flight) Config() Config { return f.cfg }

// Distance from the launch point of the current position.
func (f *Flight) Distance() float64 { return f.cfg.Distance(f.state.Position, f.origin) }

// Step advances the flight by one tick.
func (f *Flight) Step() (Snapshot, error) {
	if f.err != nil {
		return Snapshot{}, f.err
	}
	if f.status.Terminal() {
		return Snapshot{}, ErrFlightFinished
	}

	next, forces, err := f.sim.integrator.Step(f.sim.sys, f.state, f.cfg.Dt)
	if err == nil && !next.IsValid() {
		err = ErrInvalidState
	}
	if err != nil {
		f.err = &SimulationError{Tick: f.tick + 1, Time: f.state.Time, State: f.state, Wrapped: err}
		return Snapshot{}, f.err
	}

	f.tick++
	f.state = next
	if next.Position.Z() <= 0 {
		f.status = Landed
	} else if f.tick >= f.cfg.MaxTicks {
		f.status = MaxTicksExceeded
	}

	snap := Snapshot{
		Tick:     f.tick,
		State:    next,
		Forces:   forces,
		Status:   f.status,
		Distance: f.Distance(),
	}

	for _, m := range f.sim.metrics {
		m.Observe(snap)
	}
	for _, o := range f.sim.observers {
		o.OnTick(snap)
	}

	if f.status.Terminal() {
		f.sim.logger.Debug().
			Stringer("status", f.status).
			Int("ticks", f.tick).
			Float64("time", next.Time).
			Float64("distance", snap.Distance).
			Msg("flight finished")
	}

	return snap, nil
}

// Ticks returns the remaining ticks of the flight as a lazy sequence. The
// context is checked between ticks. Once the flight is terminal the sequence
// is empty.
func (f *Flight) Ticks(ctx context.Context) iter.Seq2[Snapshot, error] {
	return func(yield func(Snapshot, error) bool) {
		for !f.status.Terminal() {
			select {
			case <-ctx.Done():
				yield(Snapshot{}, ctx.Err())
				return
			default:
			}

			snap, err := f.Step()
			if err != nil {
				yield(snap, err)
				return
			}
			if !yield(snap, nil) {
				return
			}
		}
	}
}

// Run drains the flight. On error the partial result is returned with it.
func (f *Flight) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		Initial: f.initial,
		Metrics: make(map[string]float64),
	}
	if f.cfg.KeepTrajectory {
		result.Trajectory = make([]Snapshot, 0, 64)
	}

	var runErr error
	for snap, err := range f.Ticks(ctx) {
		if err != nil {
			runErr = err
			break
		}
		if f.cfg.KeepTrajectory {
			result.Trajectory = append(result.Trajectory, snap)
		}
	}

	result.Final = f.state
	result.Status = f.status
	result.Ticks = f.tick
	result.Elapsed = f.state.Time - f.initial.Time
	result.Distance = f.Distance()
	for _, m := range f.sim.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}
