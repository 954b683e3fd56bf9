package analysis

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/san-kum/qevolve/internal/quantum"
)

// StepError is the distance between one fixed-step run and the exact state at
// the time that run stopped.
type StepError struct {
	Steps int
	Dt    float64
	Time  float64
	Error float64
}

type ConvergenceReport struct {
	Coarse StepError
	Fine   StepError
	Ratio  float64
	Order  float64
}

// Convergence runs p with p.Steps and with twice as many steps, measures the
// L2 error of each final state against the exact propagator and reports the
// ratio coarse/fine and the observed order log2(ratio).
func Convergence(ctx context.Context, p quantum.Params, newStepper func() quantum.Stepper) (*ConvergenceReport, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	h := quantum.NewLadder(p)
	prop, err := NewPropagator(h)
	if err != nil {
		return nil, err
	}

	fine := p
	fine.Steps = 2 * p.Steps

	coarseErr, err := runError(ctx, h, prop, p, newStepper())
	if err != nil {
		return nil, fmt.Errorf("coarse run: %w", err)
	}
	fineErr, err := runError(ctx, h, prop, fine, newStepper())
	if err != nil {
		return nil, fmt.Errorf("fine run: %w", err)
	}

	rep := &ConvergenceReport{Coarse: coarseErr, Fine: fineErr}
	if fineErr.Error > 0 {
		rep.Ratio = coarseErr.Error / fineErr.Error
		rep.Order = math.Log2(rep.Ratio)
	}
	return rep, nil
}

func runError(ctx context.Context, h *quantum.Hamiltonian, prop *Propagator, p quantum.Params, stepper quantum.Stepper) (StepError, error) {
	psi0 := quantum.InitialState(p)
	sim := quantum.New(quantum.NewSchrodinger(h), stepper)

	result, err := sim.Run(ctx, psi0, p.SimConfig())
	if err != nil {
		return StepError{}, err
	}

	exact := prop.Evolve(psi0, result.Time)
	return StepError{
		Steps: result.Steps,
		Dt:    p.Dt(),
		Time:  result.Time,
		Error: cmplxs.Distance(result.Final, exact, 2),
	}, nil
}
