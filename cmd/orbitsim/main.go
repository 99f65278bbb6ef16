package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/audio"
	"github.com/san-kum/orbitsim/internal/automation"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/experiment"
	"github.com/san-kum/orbitsim/internal/export"
	"github.com/san-kum/orbitsim/internal/gui"
	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string

	integrator string
	frames     int
	speed      float64
	noTrails   bool
	script     []string
	validate   bool
	plot       bool
	jsonOut    string
	csvOut     string
	svgOut     string
	theme      string
	sound      bool

	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

// cfg is resolved once per invocation in the root PersistentPreRunE.
var cfg *config.Config

func main() {
	rootCmd := &cobra.Command{
		Use:               "orbitsim",
		Short:             "2d orbital simulator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch cfg.Renderer {
			case "tui":
				return runTUI(cmd, args)
			case "none":
				return runHeadless(cmd, args)
			default:
				return runGUI(cmd, args)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulator window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&sound, "sound", false, "enable audio cues")

	tuiCmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"live"},
		Short:   "run the simulator in the terminal",
		RunE:    runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	tuiCmd.Flags().BoolVar(&sound, "sound", false, "enable audio cues")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted headless simulation",
		Example: `  orbitsim run --frames 600 --cmd 100:speed-up --cmd 300:toggle-trails
  orbitsim run --frames 2048 --plot --json report.json`,
		RunE: runHeadless,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write a JSON report to path")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write recorded tracks as CSV to path")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final frame as SVG to path")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot orbital radii")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "run headless and write the final frame as SVG to stdout",
		RunE:  renderSVG,
	}
	addRunFlags(svgCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "run the same session under several integrators",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addRunFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRENDERER\tSPEED\tTRAILS\tFPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%.3f\t%v\t%d\n", name, p.Renderer, p.Speed, p.Trails, p.FPS)
			}
			w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Encode(os.Stdout)
		},
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			log.Info("config written", "path", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	integratorsCmd := &cobra.Command{
		Use:   "integrators",
		Short: "list available integrators",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range experiment.NewRegistry().ListIntegrators() {
				fmt.Println(name)
			}
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "find the fastest speed that keeps every body off the viewport edge",
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.5, "slowest speed")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 5, "fastest speed")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of speeds")

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, svgCmd, compareCmd, scenarioCmd, sweepCmd, presetsCmd, configCmd, integratorsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&integrator, "integrator", "", "integrator (euler, leapfrog)")
	cmd.Flags().IntVar(&frames, "frames", 0, "number of ticks to simulate")
	cmd.Flags().Float64Var(&speed, "speed", 0, "initial speed multiplier")
	cmd.Flags().BoolVar(&noTrails, "no-trails", false, "start with trails disabled")
	cmd.Flags().StringArrayVar(&script, "cmd", nil, "scripted command as tick:command ("+commandList()+"), repeatable")
	cmd.Flags().BoolVar(&validate, "validate", false, "fail on non-finite state")
}

// setup resolves the configuration: preset or defaults, then the
// config file and environment, then explicit flags.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		if configFile != "" {
			log.Warn("--config ignored when --preset is set", "preset", preset)
		}
	} else if cfg, err = config.Load(configFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("no-trails") {
		cfg.Trails = !noTrails
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("sound") {
		cfg.Sound = sound
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(level == log.DebugLevel)
	return nil
}

// interactive builds a controller for a front end that ticks once per
// rendered frame.
func interactive() (*sim.Controller, error) {
	integ, err := experiment.NewRegistry().GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	state := sim.NewState()
	state.Speed = cfg.Speed
	state.TrailsOn = cfg.Trails
	log.Debug("starting session", "integrator", integ.Name(), "speed", state.Speed, "trails", state.TrailsOn)
	return sim.NewController(state, integ, sim.Config{BaseDt: physics.BaseTimestep}), nil
}

func openAudio() audio.Player {
	if !cfg.Sound {
		return audio.Nop{}
	}
	return audio.Open()
}

func runGUI(cmd *cobra.Command, args []string) error {
	ctrl, err := interactive()
	if err != nil {
		return err
	}
	player := openAudio()
	defer player.Close()

	gui.Run(ctrl, gui.Options{FPS: cfg.FPS, Audio: player})
	log.Debug("session ended", "ticks", ctrl.Ticks())
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctrl, err := interactive()
	if err != nil {
		return err
	}
	player := openAudio()
	defer player.Close()

	return viz.Run(ctrl, viz.Options{FPS: cfg.FPS, Theme: cfg.Theme, Audio: player})
}

func experimentConfig() (experiment.Config, error) {
	parsed, err := experiment.ParseScript(script)
	if err != nil {
		return experiment.Config{}, err
	}
	ec := experiment.DefaultConfig()
	ec.Integrator = cfg.Integrator
	ec.Ticks = cfg.Frames
	ec.Speed = cfg.Speed
	ec.TrailsOn = cfg.Trails
	ec.Script = parsed
	ec.ValidateState = validate
	return ec, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	ec, err := experimentConfig()
	if err != nil {
		return err
	}
	if ec.Ticks == 0 {
		return sim.ErrNoFrames
	}

	exp := experiment.New(ec)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}

	log.Info("running", "integrator", ec.Integrator, "frames", ec.Ticks, "script", ec.Script.String())
	start := time.Now()
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	log.Info("done", "ticks", result.Ticks, "quit", result.Quit, "elapsed", time.Since(start).Round(time.Millisecond))

	ctrl, rec := exp.Controller(), exp.Recorder()
	center := ctrl.State().Attractor.Pos

	report := export.NewReport(ec.Integrator, result)
	report.Script = ec.Script.String()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ticks\t%d\n", result.Ticks)
	fmt.Fprintf(w, "speed\t%.2fx\n", result.Speed)
	fmt.Fprintf(w, "trails\t%v\n", ctrl.State().TrailsOn)
	for _, m := range exp.Metrics() {
		fmt.Fprintf(w, "%s\t%.6g\n", m.Name(), m.Value())
	}
	for _, name := range rec.Names() {
		period, err := analysis.CrossingPeriod(analysis.Crossings(rec.Track(name), center))
		if errors.Is(err, analysis.ErrNoPeriod) {
			if period, err = analysis.EstimatePeriod(rec.Xs(name)); err != nil {
				fmt.Fprintf(w, "period %s\t-\n", name)
				continue
			}
		}
		period *= float64(ec.SampleEvery)
		report.Periods[name] = period
		fmt.Fprintf(w, "period %s\t%.1f ticks\n", name, period)
	}
	w.Flush()

	if plot {
		for _, name := range rec.Names() {
			radii := rec.Radii(name, center)
			if len(radii) < 2 {
				continue
			}
			fmt.Println()
			fmt.Println(asciigraph.Plot(radii, asciigraph.Height(8), asciigraph.Width(70), asciigraph.Caption(name+" radius")))
		}
	}

	if err := writeFile(jsonOut, func(f *os.File) error { return export.WriteJSON(f, report) }); err != nil {
		return err
	}
	if err := writeFile(csvOut, func(f *os.File) error { return export.WriteTracksCSV(f, rec) }); err != nil {
		return err
	}
	return writeFile(svgOut, func(f *os.File) error { return export.FrameToSVG(f, ctrl.Frame()) })
}

func renderSVG(cmd *cobra.Command, args []string) error {
	ec, err := experimentConfig()
	if err != nil {
		return err
	}
	if ec.Ticks == 0 {
		return sim.ErrNoFrames
	}
	exp := experiment.New(ec)
	if err := exp.Setup(experiment.NewRegistry()); err != nil {
		return err
	}
	if _, err := exp.Run(cmd.Context()); err != nil {
		return err
	}
	return export.FrameToSVG(os.Stdout, exp.Controller().Frame())
}

func writeFile(path string, write func(f *os.File) error) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("wrote", "path", path)
	return f.Close()
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	ec, err := experimentConfig()
	if err != nil {
		return err
	}
	if ec.Ticks == 0 {
		return sim.ErrNoFrames
	}

	start := time.Now()
	results, err := experiment.Compare(cmd.Context(), experiment.NewRegistry(), ec, args)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators over %d ticks (%s)\n\n", ec.Ticks, time.Since(start).Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tTICKS\tSPEED\tENERGY_DRIFT\tEDGE_CONTACTS\tMEAN_SPEED")
	for i, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.2fx\t%.4e\t%.3f\t%.4f\n",
			args[i], r.Ticks, r.Speed, r.Metrics["energy_drift"], r.Metrics["edge_contacts"], r.Metrics["mean_speed"])
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	log.Info("scenario", "name", sc.Name, "steps", len(sc.Steps))

	results, err := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTICKS\tQUIT\tSPEED\tENERGY_DRIFT")
	for i, r := range results {
		name := r.Step.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%.2fx\t%.4e\n", name, r.Result.Ticks, r.Result.Quit, r.Result.Speed, r.Result.Metrics["energy_drift"])
	}
	w.Flush()
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &automation.SpeedSweep{
		Integrator: cfg.Integrator,
		MinSpeed:   sweepMin,
		MaxSpeed:   sweepMax,
		NumSteps:   sweepSteps,
		Frames:     cfg.Frames,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED\tENERGY_DRIFT\tEDGE_CONTACTS\tSTABLE")
	for _, r := range results {
		fmt.Fprintf(w, "%.2fx\t%.4e\t%.3f\t%v\n", r.Speed, r.EnergyDrift, r.EdgeContacts, r.Stable)
	}
	w.Flush()

	stable, unstable := automation.SweepStats(results)
	if best, ok := automation.MaxStableSpeed(results); ok {
		log.Info("sweep done", "stable", stable, "unstable", unstable, "max_stable_speed", best)
	} else {
		log.Warn("no stable speed in range", "min", sweepMin, "unstable", unstable)
	}
	return nil
}

// commandList renders the scriptable command names for help text.
func commandList() string {
	names := make([]string, 0, 4)
	for _, c := range []input.Command{input.ToggleTrails, input.SpeedUp, input.SlowDown, input.Quit} {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
