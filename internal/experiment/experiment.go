package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/qevolve/internal/quantum"
)

// Experiment owns one run: the Hamiltonian built from params, the Schrödinger
// system over it and the simulator that evolves the initial state.
type Experiment struct {
	params    quantum.Params
	h         *quantum.Hamiltonian
	sys       *quantum.Schrodinger
	simulator *quantum.Simulator
}

func New(p quantum.Params) (*Experiment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h := quantum.NewLadder(p)
	return &Experiment{
		params: p,
		h:      h,
		sys:    quantum.NewSchrodinger(h),
	}, nil
}

func (e *Experiment) Setup(stepper quantum.Stepper, metrics []quantum.Metric) error {
	if stepper == nil {
		return fmt.Errorf("experiment: nil stepper")
	}
	e.simulator = quantum.New(e.sys, stepper)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*quantum.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.InitialState(), e.params.SimConfig())
}

func (e *Experiment) Params() quantum.Params { return e.params }

func (e *Experiment) Hamiltonian() *quantum.Hamiltonian { return e.h }

func (e *Experiment) System() *quantum.Schrodinger { return e.sys }

func (e *Experiment) InitialState() quantum.Vector { return quantum.InitialState(e.params) }

// GetSimulator exposes the simulator so callers can attach observers before Run.
func (e *Experiment) GetSimulator() *quantum.Simulator {
	return e.simulator
}
