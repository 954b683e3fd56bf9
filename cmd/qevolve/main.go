package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/qevolve/internal/analysis"
	"github.com/san-kum/qevolve/internal/automation"
	"github.com/san-kum/qevolve/internal/config"
	"github.com/san-kum/qevolve/internal/experiment"
	"github.com/san-kum/qevolve/internal/logger"
	"github.com/san-kum/qevolve/internal/quantum"
	"github.com/san-kum/qevolve/internal/report"
)

var (
	logLevel string
	pretty   bool
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// paramFlags holds the run parameters of one command. Each command gets its
// own copy so defaults do not leak between commands.
type paramFlags struct {
	states     int
	freq       float64
	coupling   float64
	steps      int
	integrator string
	configFile string
	preset     string
	trace      int
}

func (f *paramFlags) register(cmd *cobra.Command, defaultSteps int) {
	cmd.Flags().IntVar(&f.states, "states", quantum.DefaultStates, "number of basis states")
	cmd.Flags().Float64Var(&f.freq, "freq", quantum.DefaultFreq, "horizon is pi/freq")
	cmd.Flags().Float64Var(&f.coupling, "coupling", quantum.DefaultCoupling, "nearest-neighbour coupling")
	cmd.Flags().IntVar(&f.steps, "steps", defaultSteps, "steps per horizon (dt = period/steps)")
	cmd.Flags().StringVar(&f.integrator, "integrator", "rk4", "integrator")
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use preset configuration")
}

// main is the entry point for the qevolve CLI. It exits with status 1 if the
// command returns an error.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootFlags := &paramFlags{}
	rootCmd := &cobra.Command{
		Use:          "qevolve",
		Short:        "fixed-step schrodinger evolution of a coupled ladder",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, rootFlags)
		},
	}
	rootFlags.register(rootCmd, quantum.DefaultSteps)
	rootCmd.Flags().IntVar(&rootFlags.trace, "trace", 0, "log the norm every N steps at debug level")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human readable logs")

	runFlags := &paramFlags{}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and print the final state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, runFlags)
		},
	}
	runFlags.register(runCmd, quantum.DefaultSteps)
	runCmd.Flags().IntVar(&runFlags.trace, "trace", 0, "log the norm every N steps at debug level")

	convergeFlags := &paramFlags{}
	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "compare dt and dt/2 against the exact propagator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvergence(cmd, convergeFlags)
		},
	}
	convergeFlags.register(convergeCmd, 40)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTATES\tFREQ\tCOUPLING\tSTEPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%d\n", name, p.States, p.Freq, p.Coupling, p.Steps)
			}
			return w.Flush()
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every entry of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, args[0])
		},
	}

	sweepFlags := &paramFlags{}
	var sweepParam string
	var sweepMin, sweepMax float64
	var sweepPoints int
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and tabulate norm drift and survival",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, sweepFlags)
			if err != nil {
				return err
			}
			return runSweep(cmd, cfg, &automation.ParameterSweep{
				Base:       cfg.Params(),
				Integrator: sweepFlags.integrator,
				ParamName:  sweepParam,
				ParamMin:   sweepMin,
				ParamMax:   sweepMax,
				NumPoints:  sweepPoints,
			})
		},
	}
	sweepFlags.register(sweepCmd, 1000)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "coupling", "parameter to vary (coupling, freq, states, steps)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", -20, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "last value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 5, "number of values")

	rootCmd.AddCommand(runCmd, convergeCmd, presetsCmd, scenarioCmd, sweepCmd)
	return rootCmd
}

// resolveConfig layers the command's defaults, preset, config file and
// explicitly set flags, in that order of increasing precedence.
func resolveConfig(cmd *cobra.Command, f *paramFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Steps = f.steps

	if f.preset != "" {
		p := config.GetPreset(f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets())
		}
		cfg = p
	}

	if f.configFile != "" {
		if err := config.LoadInto(f.configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("states") {
		cfg.States = f.states
	}
	if flags.Changed("freq") {
		cfg.Freq = f.freq
	}
	if flags.Changed("coupling") {
		cfg.Coupling = f.coupling
	}
	if flags.Changed("steps") {
		cfg.Steps = f.steps
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("pretty") {
		cfg.Log.Pretty = pretty
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logger.NewWithWriter(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	}, cmd.ErrOrStderr())
}

type traceObserver struct {
	log   zerolog.Logger
	every int
}

func (o *traceObserver) OnStep(step int, psi quantum.Vector, t float64) {
	if step%o.every != 0 {
		return
	}
	o.log.Debug().
		Int("step", step).
		Float64("t", t).
		Float64("norm", psi.Norm()).
		Msg("step")
}

func runSimulation(cmd *cobra.Command, f *paramFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	p := cfg.Params()

	exp, err := experiment.New(p)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	stepper, err := registry.GetStepper(f.integrator)
	if err != nil {
		return err
	}
	if err := exp.Setup(stepper, registry.DefaultMetrics(exp)); err != nil {
		return err
	}
	if f.trace > 0 {
		exp.GetSimulator().AddObserver(&traceObserver{log: log, every: f.trace})
	}

	out := cmd.OutOrStdout()
	if err := report.Initial(out, exp.InitialState()); err != nil {
		return err
	}

	log.Info().
		Int("states", p.States).
		Float64("freq", p.Freq).
		Float64("coupling", p.Coupling).
		Int("steps", p.Steps).
		Float64("dt", p.Dt()).
		Float64("period", p.Period()).
		Str("integrator", f.integrator).
		Msg("starting run")

	start := time.Now()
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	ev := log.Info().
		Int("steps", result.Steps).
		Float64("time", result.Time).
		Float64("norm", result.FinalNorm).
		Dur("elapsed", time.Since(start))
	for name, val := range result.Metrics {
		ev = ev.Float64(name, val)
	}
	ev.Msg("run complete")

	return report.Final(out, result.Final)
}

func runConvergence(cmd *cobra.Command, f *paramFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	newStepper, err := experiment.NewRegistry().StepperFactory(f.integrator)
	if err != nil {
		return err
	}

	p := cfg.Params()
	log.Info().Int("states", p.States).Int("steps", p.Steps).Msg("starting convergence check")

	rep, err := analysis.Convergence(cmd.Context(), p, newStepper)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tDT\tTIME\tERROR")
	for _, e := range []analysis.StepError{rep.Coarse, rep.Fine} {
		fmt.Fprintf(w, "%d\t%.4e\t%.6f\t%.4e\n", e.Steps, e.Dt, e.Time, e.Error)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nratio: %.2f  order: %.2f\n", rep.Ratio, rep.Order)
	switch {
	case rep.Fine.Error < 1e-12:
		fmt.Fprintln(out, dimStyle.Render("errors at round-off level; use fewer steps"))
	case rep.Order >= 3.5:
		fmt.Fprintln(out, passStyle.Render("fourth order convergence"))
	default:
		fmt.Fprintln(out, failStyle.Render("order below 4"))
	}
	return nil
}

func runScenario(cmd *cobra.Command, path string) error {
	scenario, err := automation.LoadScenario(path)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	cfg.Log.Level = logLevel
	cfg.Log.Pretty = pretty
	log := newLogger(cmd, cfg)

	outcomes, err := automation.RunScenario(cmd.Context(), scenario, experiment.NewRegistry(), log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTATES\tFREQ\tCOUPLING\tSTEPS\tTIME\tNORM\tSURVIVAL")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%d\t%.6f\t%.10f\t%.6f\n",
			o.Name, o.Params.States, o.Params.Freq, o.Params.Coupling,
			o.Result.Steps, o.Result.Time, o.Result.FinalNorm, o.Result.Metrics["survival"])
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, cfg *config.Config, sweep *automation.ParameterSweep) error {
	log := newLogger(cmd, cfg)

	results, err := automation.RunSweep(cmd.Context(), sweep, experiment.NewRegistry(), log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tNORM\tNORM DRIFT\tSURVIVAL\n", strings.ToUpper(sweep.ParamName))
	for _, r := range results {
		fmt.Fprintf(w, "%g\t%.10f\t%.3e\t%.6f\n", r.ParamValue, r.FinalNorm, r.NormDrift, r.Survival)
	}
	return w.Flush()
}
