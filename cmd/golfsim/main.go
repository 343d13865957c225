package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/golfsim/internal/config"
	"github.com/san-kum/golfsim/internal/experiment"
	"github.com/san-kum/golfsim/internal/export"
	"github.com/san-kum/golfsim/internal/report"
	"github.com/san-kum/golfsim/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string

	model     string
	gravity   string
	distance  string
	units     string
	dt        float64
	maxTicks  int
	speed     float64
	angle     float64
	azimuth   float64
	backSpin  float64
	rifleSpin float64
	sideSpin  float64

	trace      bool
	series     string
	plotWidth  int
	plotHeight int
	format     string
	frameRate  int
	theme      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "golfsim",
		Short:             "golf ball flight simulator",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "preset as model/name, e.g. spin_ratio/reference")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one shot and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runShot,
	}
	addShotFlags(runCmd)
	runCmd.Flags().BoolVar(&trace, "trace", false, "print the per-tick trace")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "simulate one shot and plot it",
		Args:  cobra.NoArgs,
		RunE:  plotShot,
	}
	addShotFlags(plotCmd)
	plotCmd.Flags().StringVar(&series, "series", "height", "series to plot (height, distance, speed, spin)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "simulate one shot and write the trajectory to stdout",
		Args:  cobra.NoArgs,
		RunE:  exportShot,
	}
	addShotFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json, cbor)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step through a shot in the terminal",
		Args:  cobra.NoArgs,
		RunE:  liveShot,
	}
	addShotFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "ticks per second")
	liveCmd.Flags().StringVar(&theme, "theme", "fairway", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, plotCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShotFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().StringVar(&model, "model", def.Model, "aerodynamic model (fixed, spin_ratio)")
	cmd.Flags().StringVar(&gravity, "gravity", "", "gravity model (velocity_scaled, direction_scaled, constant, none); empty uses the model default")
	cmd.Flags().StringVar(&distance, "distance", def.Distance, "distance metric (horizontal, 3d)")
	cmd.Flags().StringVar(&units, "units", def.Units, "output units (yards, meters)")
	cmd.Flags().Float64Var(&dt, "dt", def.Dt, "timestep in seconds")
	cmd.Flags().IntVar(&maxTicks, "max-ticks", def.MaxTicks, "tick bound")
	cmd.Flags().Float64Var(&speed, "speed", def.Launch.Speed, "ball speed in m/s")
	cmd.Flags().Float64Var(&angle, "angle", def.Launch.LaunchAngle, "launch angle in degrees")
	cmd.Flags().Float64Var(&azimuth, "azimuth", def.Launch.Azimuth, "azimuth in degrees")
	cmd.Flags().Float64Var(&backSpin, "backspin", def.Launch.BackSpin, "back spin in rad/s")
	cmd.Flags().Float64Var(&rifleSpin, "rifle-spin", def.Launch.RifleSpin, "rifle spin in rad/s")
	cmd.Flags().Float64Var(&sideSpin, "sidespin", def.Launch.SideSpin, "side spin in rad/s")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	level := logLevel
	if level == "" {
		level = env.LogLevel
	}
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	return nil
}

// loadConfig resolves defaults, the config file, the preset and flags, in
// that order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	path := configFile
	if path == "" {
		path = env.ConfigPath
	}
	name := preset
	if name == "" {
		name = env.Preset
	}

	cfg := config.DefaultConfig()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		log.Debug().Str("path", path).Msg("loaded config")
	}

	if name != "" {
		presetModel, presetName, ok := strings.Cut(name, "/")
		if !ok {
			presetModel, presetName = cfg.Model, name
			if cmd.Flags().Changed("model") {
				presetModel = model
			}
		}
		p := config.GetPreset(presetModel, presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s/%s", presetModel, presetName)
		}
		cfg = p
		log.Debug().Str("preset", presetModel+"/"+presetName).Msg("using preset")
	}

	f := cmd.Flags()
	if f.Changed("model") {
		cfg.Model = model
	}
	if f.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if f.Changed("distance") {
		cfg.Distance = distance
	}
	if f.Changed("units") {
		cfg.Units = units
	}
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("max-ticks") {
		cfg.MaxTicks = maxTicks
	}
	if f.Changed("speed") {
		cfg.Launch.Speed = speed
	}
	if f.Changed("angle") {
		cfg.Launch.LaunchAngle = angle
	}
	if f.Changed("azimuth") {
		cfg.Launch.Azimuth = azimuth
	}
	if f.Changed("backspin") {
		cfg.Launch.BackSpin = backSpin
	}
	if f.Changed("rifle-spin") {
		cfg.Launch.RifleSpin = rifleSpin
	}
	if f.Changed("sidespin") {
		cfg.Launch.SideSpin = sideSpin
	}

	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (*experiment.Experiment, report.Units, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	u, err := report.ParseUnits(cfg.Units)
	if err != nil {
		return nil, "", err
	}
	e, err := experiment.New(cfg, experiment.WithLogger(log.Logger))
	if err != nil {
		return nil, "", err
	}
	e.Simulator().AddObserver(report.NewLogObserver(log.Logger))
	return e, u, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runShot(cmd *cobra.Command, args []string) error {
	e, u, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	f, err := e.Launch()
	if err != nil {
		return err
	}

	var tr *report.Trace
	if trace {
		tr = report.NewTrace(os.Stdout, e.Model(), e.Config().Dt, u)
		e.Simulator().AddObserver(tr)
		tr.Begin(f.Initial())
	}

	result, err := f.Run(ctx)
	if err != nil {
		return err
	}

	if tr != nil {
		tr.End(result)
		if err := tr.Err(); err != nil {
			return err
		}
		fmt.Println()
	}
	return report.WriteSummary(os.Stdout, result, u)
}

func plotShot(cmd *cobra.Command, args []string) error {
	s, err := report.ParseSeries(series)
	if err != nil {
		return err
	}
	e, u, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	result, err := e.Run(ctx)
	if err != nil {
		return err
	}
	chart, err := report.Plot(result, s, u, plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	fmt.Println()
	return report.WriteSummary(os.Stdout, result, u)
}

func exportShot(cmd *cobra.Command, args []string) error {
	fm, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	e, _, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	result, err := e.Run(ctx)
	if err != nil {
		return err
	}
	cfg := e.Config()
	meta := export.Meta{
		Model:    e.Model().Name(),
		Gravity:  e.Model().GravityModel().Name(),
		Distance: cfg.Distance,
		Dt:       cfg.Dt,
	}
	return export.Write(os.Stdout, fm, export.NewRun(meta, result))
}

func liveShot(cmd *cobra.Command, args []string) error {
	e, u, err := setup(cmd)
	if err != nil {
		return err
	}
	// Log events would tear the alternate screen.
	zerolog.SetGlobalLevel(zerolog.Disabled)

	rate := time.Second / 10
	if frameRate > 0 {
		rate = time.Second / time.Duration(frameRate)
	}
	m, err := viz.NewModel(e.Launch, u, viz.WithRate(rate), viz.WithTheme(theme))
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func listPresets(cmd *cobra.Command, args []string) error {
	for _, m := range config.ListModels() {
		for _, name := range config.ListPresets(m) {
			p := config.GetPreset(m, name)
			fmt.Printf("%s/%s\tspeed=%.1f m/s angle=%.1f° spin=(%.1f, %.1f, %.1f) rad/s\n",
				m, name, p.Launch.Speed, p.Launch.LaunchAngle,
				p.Launch.BackSpin, p.Launch.RifleSpin, p.Launch.SideSpin)
		}
	}
	return nil
}
