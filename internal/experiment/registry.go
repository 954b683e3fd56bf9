package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/qevolve/internal/integrators"
	"github.com/san-kum/qevolve/internal/metrics"
	"github.com/san-kum/qevolve/internal/quantum"
)

type Registry struct {
	steppers map[string]func() quantum.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func() quantum.Stepper),
	}

	r.steppers["rk4"] = func() quantum.Stepper { return integrators.NewRK4() }

	return r
}

func (r *Registry) GetStepper(name string) (quantum.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// StepperFactory returns the constructor for name, for callers that need a
// fresh stepper per run.
func (r *Registry) StepperFactory(name string) (func() quantum.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn, nil
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(e *Experiment) []quantum.Metric {
	return []quantum.Metric{
		metrics.NewNormDrift(),
		metrics.NewEnergyDrift(e.System()),
		metrics.NewSurvival(e.Params().MiddleIndex()),
	}
}
