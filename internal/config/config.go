package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/physics"
	"github.com/san-kum/golfsim/internal/vec"
)

const (
	DefaultModel      = physics.ModelFixed
	DefaultIntegrator = "euler"
	DefaultDistance   = "horizontal"
	DefaultUnits      = "yards"

	DefaultSpeed       = 85.0   // m/s
	DefaultLaunchAngle = 13.2   // degrees
	DefaultBackSpin    = 183.26 // rad/s
)

// Environment variables read by LoadEnv.
const (
	EnvConfig   = "GOLFSIM_CONFIG"
	EnvPreset   = "GOLFSIM_PRESET"
	EnvLogLevel = "GOLFSIM_LOG_LEVEL"
)

type Config struct {
	Model        string             `yaml:"model"`
	Gravity      string             `yaml:"gravity,omitempty"`
	Integrator   string             `yaml:"integrator"`
	Distance     string             `yaml:"distance"`
	Units        string             `yaml:"units"`
	Dt           float64            `yaml:"dt"`
	MaxTicks     int                `yaml:"max_ticks"`
	Launch       LaunchConfig       `yaml:"launch"`
	Ball         BallConfig         `yaml:"ball"`
	Air          AirConfig          `yaml:"air"`
	Coefficients CoefficientsConfig `yaml:"coefficients"`
	Polynomial   PolynomialConfig   `yaml:"polynomial"`
}

// LaunchConfig angles are in degrees, spins in rad/s.
type LaunchConfig struct {
	Speed       float64 `yaml:"speed"`
	LaunchAngle float64 `yaml:"launch_angle"`
	Azimuth     float64 `yaml:"azimuth"`
	BackSpin    float64 `yaml:"back_spin"`
	RifleSpin   float64 `yaml:"rifle_spin"`
	SideSpin    float64 `yaml:"side_spin"`
}

type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

type AirConfig struct {
	Density float64 `yaml:"density"`
	Gravity float64 `yaml:"gravity"`
}

type CoefficientsConfig struct {
	Lift   float64 `yaml:"lift"`
	Drag   float64 `yaml:"drag"`
	Moment float64 `yaml:"moment"`
}

type PolynomialConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
	E float64 `yaml:"e"`
	F float64 `yaml:"f"`
	G float64 `yaml:"g"`
}

func DefaultConfig() *Config {
	coeff := physics.DefaultCoefficients()
	poly := physics.DefaultPolynomial()
	return &Config{
		Model:      DefaultModel,
		Integrator: DefaultIntegrator,
		Distance:   DefaultDistance,
		Units:      DefaultUnits,
		Dt:         dynamo.DefaultDt,
		MaxTicks:   dynamo.DefaultMaxTicks,
		Launch: LaunchConfig{
			Speed:       DefaultSpeed,
			LaunchAngle: DefaultLaunchAngle,
			BackSpin:    DefaultBackSpin,
		},
		Ball: BallConfig{
			Radius: physics.DefaultRadius,
			Mass:   physics.DefaultMass,
		},
		Air: AirConfig{
			Density: physics.DefaultAirDensity,
			Gravity: physics.DefaultGravity,
		},
		Coefficients: CoefficientsConfig{
			Lift:   coeff.Lift,
			Drag:   coeff.Drag,
			Moment: coeff.Moment,
		},
		Polynomial: PolynomialConfig{
			A: poly.A, B: poly.B, C: poly.C,
			D: poly.D, E: poly.E, F: poly.F,
			G: poly.G,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy. Config holds no references so a value copy is enough.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", dynamo.ErrInvalidArgument, fmt.Sprintf(format, args...))
	}

	switch c.Model {
	case physics.ModelFixed, physics.ModelSpinRatio:
	default:
		return invalid("unknown model %q", c.Model)
	}
	if c.Gravity != "" {
		if _, err := physics.GravityByName(c.Gravity); err != nil {
			return invalid("%v", err)
		}
	}
	switch c.Distance {
	case "horizontal", "3d":
	default:
		return invalid("unknown distance metric %q", c.Distance)
	}
	switch c.Units {
	case "yards", "meters":
	default:
		return invalid("unknown units %q", c.Units)
	}
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return invalid("dt must be positive, got %g", c.Dt)
	}
	if c.MaxTicks <= 0 {
		return invalid("max_ticks must be positive, got %d", c.MaxTicks)
	}
	if !(c.Launch.Speed >= 0) {
		return invalid("launch speed must be non-negative, got %g", c.Launch.Speed)
	}
	if _, err := c.PhysicalBall(); err != nil {
		return err
	}
	return nil
}

// PhysicalBall builds the validated constants bundle.
func (c *Config) PhysicalBall() (physics.Ball, error) {
	return physics.NewBall(c.Ball.Radius, c.Ball.Mass, c.Air.Density, c.Air.Gravity)
}

func (c *Config) PhysicsCoefficients() physics.Coefficients {
	return physics.Coefficients{
		Lift:   c.Coefficients.Lift,
		Drag:   c.Coefficients.Drag,
		Moment: c.Coefficients.Moment,
	}
}

func (c *Config) PhysicsPolynomial() physics.Polynomial {
	p := c.Polynomial
	return physics.Polynomial{A: p.A, B: p.B, C: p.C, D: p.D, E: p.E, F: p.F, G: p.G}
}

// LaunchParams converts the launch section to radians and a spin vector.
func (c *Config) LaunchParams() dynamo.Launch {
	return dynamo.Launch{
		Speed:       c.Launch.Speed,
		LaunchAngle: physics.DegToRad(c.Launch.LaunchAngle),
		Azimuth:     physics.DegToRad(c.Launch.Azimuth),
		Spin:        vec.New(c.Launch.BackSpin, c.Launch.RifleSpin, c.Launch.SideSpin),
	}
}

// Env holds the settings that can come from the environment or a .env file.
type Env struct {
	ConfigPath string
	Preset     string
	LogLevel   string
}

// LoadEnv loads the given .env files (".env" when none are given) without
// overriding variables already set, then reads the GOLFSIM_* variables. A
// missing .env file is not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Env{
		ConfigPath: os.Getenv(EnvConfig),
		Preset:     os.Getenv(EnvPreset),
		LogLevel:   os.Getenv(EnvLogLevel),
	}, nil
}
