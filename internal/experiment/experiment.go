package experiment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/san-kum/golfsim/internal/config"
	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/physics"
)

// Experiment wires a config into a ready-to-run simulator.
type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	model     physics.Model
	simulator *dynamo.Simulator
	simCfg    dynamo.Config
	logger    zerolog.Logger
}

type Option func(*Experiment)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Experiment) { e.logger = l }
}

func WithRegistry(r *Registry) Option {
	return func(e *Experiment) { e.registry = r }
}

// New validates cfg and builds the model, integrator and simulator it names.
func New(cfg *config.Config, opts ...Option) (*Experiment, error) {
	e := &Experiment{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	if err := e.setup(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Experiment) setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	ball, err := e.cfg.PhysicalBall()
	if err != nil {
		return err
	}

	var opts []physics.Option
	if e.cfg.Gravity != "" {
		g, err := physics.GravityByName(e.cfg.Gravity)
		if err != nil {
			return fmt.Errorf("%w: %v", dynamo.ErrInvalidArgument, err)
		}
		opts = append(opts, physics.WithGravity(g))
	}

	model, err := e.registry.GetModel(e.cfg.Model, ball, e.cfg, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", dynamo.ErrInvalidArgument, err)
	}
	integ, err := e.registry.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return fmt.Errorf("%w: %v", dynamo.ErrInvalidArgument, err)
	}
	dist, err := e.registry.GetDistance(e.cfg.Distance)
	if err != nil {
		return fmt.Errorf("%w: %v", dynamo.ErrInvalidArgument, err)
	}

	e.model = model
	e.simulator = dynamo.New(model, integ, dynamo.WithLogger(e.logger))
	for _, m := range e.registry.DefaultMetrics(ball) {
		e.simulator.AddMetric(m)
	}
	e.simCfg = dynamo.Config{
		Dt:             e.cfg.Dt,
		MaxTicks:       e.cfg.MaxTicks,
		Distance:       dist,
		KeepTrajectory: true,
	}

	e.logger.Debug().
		Str("model", model.Name()).
		Str("gravity", model.GravityModel().Name()).
		Str("integrator", e.cfg.Integrator).
		Str("distance", e.cfg.Distance).
		Msg("experiment ready")
	return nil
}

func (e *Experiment) Config() *config.Config       { return e.cfg }
func (e *Experiment) Model() physics.Model         { return e.model }
func (e *Experiment) Simulator() *dynamo.Simulator { return e.simulator }
func (e *Experiment) SimConfig() dynamo.Config     { return e.simCfg }

// Launch starts a flight from the configured launch parameters.
func (e *Experiment) Launch() (*dynamo.Flight, error) {
	return e.simulator.Launch(e.cfg.LaunchParams(), e.simCfg)
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	return e.simulator.Run(ctx, e.cfg.LaunchParams(), e.simCfg)
}
