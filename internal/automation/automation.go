package automation

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/qevolve/internal/experiment"
	"github.com/san-kum/qevolve/internal/quantum"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun is one run in a scenario. Zero fields take the defaults;
// Coupling is a pointer so that an explicit 0 survives.
type ScenarioRun struct {
	Name       string   `yaml:"name"`
	Integrator string   `yaml:"integrator"`
	States     int      `yaml:"states"`
	Freq       float64  `yaml:"freq"`
	Coupling   *float64 `yaml:"coupling"`
	Steps      int      `yaml:"steps"`
}

func (r ScenarioRun) Params() quantum.Params {
	p := quantum.DefaultParams()
	if r.States != 0 {
		p.States = r.States
	}
	if r.Freq != 0 {
		p.Freq = r.Freq
	}
	if r.Coupling != nil {
		p.Coupling = *r.Coupling
	}
	if r.Steps != 0 {
		p.Steps = r.Steps
	}
	return p
}

// Outcome summarises one finished run.
type Outcome struct {
	Name   string
	Params quantum.Params
	Result *quantum.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", scenario.Name)
	}

	return &scenario, nil
}

// RunScenario executes all runs in order
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, log zerolog.Logger) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}
		integrator := run.Integrator
		if integrator == "" {
			integrator = "rk4"
		}

		log.Info().Str("scenario", scenario.Name).Str("run", name).Int("index", i+1).Int("total", len(scenario.Runs)).Msg("running")

		p := run.Params()
		result, err := runOnce(ctx, registry, p, integrator)
		if err != nil {
			return outcomes, fmt.Errorf("run %d (%s): %w", i+1, name, err)
		}

		outcomes = append(outcomes, Outcome{Name: name, Params: p, Result: result})
	}

	return outcomes, nil
}

// ParameterSweep varies one parameter over an evenly spaced range
type ParameterSweep struct {
	Base       quantum.Params
	Integrator string
	ParamName  string // coupling, freq, states or steps
	ParamMin   float64
	ParamMax   float64
	NumPoints  int
}

// SweepResult holds one point of a parameter sweep
type SweepResult struct {
	ParamValue float64
	Params     quantum.Params
	FinalNorm  float64
	NormDrift  float64
	Survival   float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry, log zerolog.Logger) ([]SweepResult, error) {
	if sweep.NumPoints < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 points, got %d", sweep.NumPoints)
	}

	integrator := sweep.Integrator
	if integrator == "" {
		integrator = "rk4"
	}

	values := floats.Span(make([]float64, sweep.NumPoints), sweep.ParamMin, sweep.ParamMax)
	results := make([]SweepResult, 0, len(values))

	for i, v := range values {
		p, err := applyParam(sweep.Base, sweep.ParamName, v)
		if err != nil {
			return nil, err
		}

		result, err := runOnce(ctx, registry, p, integrator)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%g: %w", sweep.ParamName, v, err)
		}

		results = append(results, SweepResult{
			ParamValue: v,
			Params:     p,
			FinalNorm:  result.FinalNorm,
			NormDrift:  result.Metrics["norm_drift"],
			Survival:   result.Metrics["survival"],
		})

		log.Debug().Int("point", i+1).Int("total", len(values)).Str("param", sweep.ParamName).Float64("value", v).Msg("sweep")
	}

	return results, nil
}

func applyParam(base quantum.Params, name string, v float64) (quantum.Params, error) {
	p := base
	switch name {
	case "coupling":
		p.Coupling = v
	case "freq":
		p.Freq = v
	case "states":
		p.States = int(math.Round(v))
	case "steps":
		p.Steps = int(math.Round(v))
	default:
		return p, fmt.Errorf("unknown sweep parameter: %s", name)
	}
	return p, nil
}

func runOnce(ctx context.Context, registry *experiment.Registry, p quantum.Params, integrator string) (*quantum.Result, error) {
	exp, err := experiment.New(p)
	if err != nil {
		return nil, err
	}

	stepper, err := registry.GetStepper(integrator)
	if err != nil {
		return nil, err
	}

	if err := exp.Setup(stepper, registry.DefaultMetrics(exp)); err != nil {
		return nil, err
	}

	return exp.Run(ctx)
}
