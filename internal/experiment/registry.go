package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/golfsim/internal/config"
	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/integrators"
	"github.com/san-kum/golfsim/internal/metrics"
	"github.com/san-kum/golfsim/internal/physics"
)

type ModelFactory func(ball physics.Ball, cfg *config.Config, opts ...physics.Option) (physics.Model, error)

type Registry struct {
	models      map[string]ModelFactory
	integrators map[string]func() dynamo.Integrator
	distances   map[string]dynamo.DistanceMetric
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]ModelFactory),
		integrators: make(map[string]func() dynamo.Integrator),
		distances:   make(map[string]dynamo.DistanceMetric),
	}

	r.models[physics.ModelFixed] = func(b physics.Ball, cfg *config.Config, opts ...physics.Option) (physics.Model, error) {
		return physics.NewFixedCoefficients(b, cfg.PhysicsCoefficients(), opts...)
	}
	r.models[physics.ModelSpinRatio] = func(b physics.Ball, cfg *config.Config, opts ...physics.Option) (physics.Model, error) {
		return physics.NewSpinRatio(b, cfg.PhysicsPolynomial(), opts...)
	}

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }

	r.distances["horizontal"] = dynamo.HorizontalDistance
	r.distances["3d"] = dynamo.Distance3D

	return r
}

// RegisterModel adds or replaces a model factory.
func (r *Registry) RegisterModel(name string, fn ModelFactory) { r.models[name] = fn }

func (r *Registry) GetModel(name string, ball physics.Ball, cfg *config.Config, opts ...physics.Option) (physics.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(ball, cfg, opts...)
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetDistance(name string) (dynamo.DistanceMetric, error) {
	d, ok := r.distances[name]
	if !ok {
		return nil, fmt.Errorf("unknown distance metric: %s", name)
	}
	return d, nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(ball physics.Ball) []dynamo.Metric {
	return metrics.Default(ball.Mass, ball.MomentOfInertia(), ball.Gravity)
}
