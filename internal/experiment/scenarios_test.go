package experiment_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golfsim/internal/config"
	"github.com/san-kum/golfsim/internal/dynamo"
	"github.com/san-kum/golfsim/internal/experiment"
	"github.com/san-kum/golfsim/internal/physics"
	"github.com/san-kum/golfsim/internal/vec"
)

func build(cfg *config.Config) *experiment.Experiment {
	GinkgoHelper()
	e, err := experiment.New(cfg)
	Expect(err).NotTo(HaveOccurred())
	return e
}

func heights(r *dynamo.Result) []float64 {
	zs := []float64{r.Initial.Position.Z()}
	for _, s := range r.Trajectory {
		zs = append(zs, s.State.Position.Z())
	}
	return zs
}

func expectSingleApex(zs []float64) {
	GinkgoHelper()
	falling := false
	for i := 1; i < len(zs); i++ {
		if zs[i] < zs[i-1] {
			falling = true
		} else {
			Expect(falling).To(BeFalse(), "height rose again at sample %d", i)
		}
	}
}

func expectMonotonicTime(r *dynamo.Result, dt float64) {
	GinkgoHelper()
	prev := r.Initial.Time
	for i, s := range r.Trajectory {
		Expect(s.Tick).To(Equal(i + 1))
		Expect(s.State.Time).To(BeNumerically(">", prev))
		Expect(s.State.Time - prev).To(BeNumerically("~", dt, 1e-12))
		prev = s.State.Time
	}
}

var _ = Describe("Flight scenarios", func() {
	ctx := context.Background()

	Context("fixed coefficients reference shot", func() {
		var result *dynamo.Result

		BeforeEach(func() {
			var err error
			result, err = build(config.GetPreset("fixed", "reference")).Run(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("lands on the second tick", func() {
			Expect(result.Status).To(Equal(dynamo.Landed))
			Expect(result.Ticks).To(Equal(2))
			Expect(result.Trajectory).To(HaveLen(2))
			Expect(result.Final.Position.Z()).To(BeNumerically("<=", 0))
		})

		It("rises before it falls", func() {
			zs := heights(result)
			Expect(zs[1]).To(BeNumerically("~", 1.941, 1e-3))
			Expect(zs[2]).To(BeNumerically("~", -0.833, 1e-3))
			expectSingleApex(zs)
		})

		It("advances time by dt each tick", func() {
			expectMonotonicTime(result, 0.1)
			Expect(result.Elapsed).To(BeNumerically("~", 0.2, 1e-12))
		})

		It("reports a finite positive distance", func() {
			Expect(result.Distance).To(BeNumerically(">", 0))
			Expect(result.Distance).To(BeNumerically("~", 5.165, 1e-3))
			Expect(result.Final.IsValid()).To(BeTrue())
		})
	})

	Context("spin ratio reference shot", func() {
		var result *dynamo.Result

		BeforeEach(func() {
			var err error
			result, err = build(config.GetPreset("spin_ratio", "reference")).Run(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("lands on the thirteenth tick", func() {
			Expect(result.Status).To(Equal(dynamo.Landed))
			Expect(result.Ticks).To(Equal(13))
			Expect(result.Elapsed).To(BeNumerically("~", 1.3, 1e-9))
		})

		It("carries about 83 meters", func() {
			Expect(result.Distance).To(BeNumerically("~", 83.397, 1e-2))
			Expect(result.Metrics["carry"]).To(Equal(result.Distance))
		})

		It("peaks once near six and a half meters", func() {
			zs := heights(result)
			expectSingleApex(zs)
			Expect(result.Metrics["apex"]).To(BeNumerically("~", 6.47, 1e-2))
			Expect(result.Trajectory[4].State.Position.Z()).To(Equal(result.Metrics["apex"]))
		})

		It("keeps time monotonic", func() {
			expectMonotonicTime(result, 0.1)
		})

		It("grows the spin magnitude", func() {
			Expect(result.Final.Spin.Length()).To(BeNumerically(">", result.Initial.Spin.Length()))
			Expect(result.Final.Spin.Length()).To(BeNumerically("~", 2270, 1))
		})
	})

	Context("with constant gravity", func() {
		DescribeTable("lands later than the default gravity",
			func(preset string, ticks int) {
				cfg := config.GetPreset(preset, "reference")
				cfg.Gravity = physics.GravityConstant
				result, err := build(cfg).Run(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(dynamo.Landed))
				Expect(result.Ticks).To(Equal(ticks))
			},
			Entry("fixed", "fixed", 4),
			Entry("spin ratio", "spin_ratio", 11),
		)
	})

	Context("level flight without spin", func() {
		start := dynamo.State{
			Velocity: vec.New(0, 30, 0),
			Position: vec.New(0, 0, 1),
		}

		DescribeTable("never lands and stops at the tick bound",
			func(model, gravity string) {
				cfg := config.DefaultConfig()
				cfg.Model = model
				cfg.Gravity = gravity
				e := build(cfg)

				f, err := e.Simulator().NewFlight(start, e.SimConfig())
				Expect(err).NotTo(HaveOccurred())
				result, err := f.Run(ctx)
				Expect(err).NotTo(HaveOccurred())

				Expect(result.Status).To(Equal(dynamo.MaxTicksExceeded))
				Expect(result.Ticks).To(Equal(1000))
				Expect(result.Final.Position.Z()).To(Equal(1.0))
				Expect(result.Final.Spin.IsZero()).To(BeTrue())
				for _, s := range result.Trajectory {
					Expect(s.Forces.Lift.IsZero()).To(BeTrue())
				}
			},
			Entry("fixed without gravity", physics.ModelFixed, physics.GravityNone),
			Entry("fixed with default gravity", physics.ModelFixed, ""),
			Entry("spin ratio without gravity", physics.ModelSpinRatio, physics.GravityNone),
			Entry("spin ratio with default gravity", physics.ModelSpinRatio, ""),
		)
	})

	Context("stepping a flight by hand", func() {
		It("matches a full run tick for tick", func() {
			e := build(config.GetPreset("spin_ratio", "reference"))
			want, err := e.Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			f, err := e.Launch()
			Expect(err).NotTo(HaveOccurred())
			var got []dynamo.Snapshot
			for snap, err := range f.Ticks(ctx) {
				Expect(err).NotTo(HaveOccurred())
				got = append(got, snap)
			}
			Expect(got).To(Equal(want.Trajectory))

			_, err = f.Step()
			Expect(errors.Is(err, dynamo.ErrFlightFinished)).To(BeTrue())
		})
	})

	Context("invalid configuration", func() {
		DescribeTable("is rejected before any tick",
			func(mutate func(*config.Config)) {
				cfg := config.DefaultConfig()
				mutate(cfg)
				_, err := experiment.New(cfg)
				Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
			},
			Entry("zero dt", func(c *config.Config) { c.Dt = 0 }),
			Entry("no ticks", func(c *config.Config) { c.MaxTicks = 0 }),
			Entry("massless ball", func(c *config.Config) { c.Ball.Mass = 0 }),
			Entry("unknown model", func(c *config.Config) { c.Model = "magnus" }),
			Entry("unknown integrator", func(c *config.Config) { c.Integrator = "leapfrog" }),
		)

		It("rejects a negative launch speed at launch", func() {
			e := build(config.DefaultConfig())
			_, err := e.Simulator().Launch(dynamo.Launch{Speed: -1}, e.SimConfig())
			Expect(err).To(MatchError(dynamo.ErrInvalidArgument))
		})
	})
})

var _ = Describe("Registry", func() {
	r := experiment.NewRegistry()

	It("lists the aerodynamic models", func() {
		Expect(r.ListModels()).To(Equal([]string{physics.ModelFixed, physics.ModelSpinRatio}))
	})

	It("uses each model's default gravity", func() {
		cfg := config.DefaultConfig()
		m, err := r.GetModel(physics.ModelFixed, physics.DefaultBall(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.GravityModel().Name()).To(Equal(physics.GravityVelocityScaled))

		m, err = r.GetModel(physics.ModelSpinRatio, physics.DefaultBall(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.GravityModel().Name()).To(Equal(physics.GravityDirectionScaled))
	})

	It("resolves distance metrics", func() {
		d, err := r.GetDistance("3d")
		Expect(err).NotTo(HaveOccurred())
		Expect(d(vec.New(0, 3, 4), vec.Zero)).To(Equal(5.0))

		_, err = r.GetDistance("manhattan")
		Expect(err).To(HaveOccurred())
	})

	It("builds the default metrics", func() {
		names := []string{}
		for _, m := range r.DefaultMetrics(physics.DefaultBall()) {
			names = append(names, m.Name())
		}
		Expect(names).To(ContainElements("apex", "carry", "hang_time", "max_speed"))
	})
})
