package quantum

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	sys       System
	stepper   Stepper
	metrics   []Metric
	observers []Observer
}

func New(sys System, stepper Stepper) *Simulator {
	return &Simulator{
		sys:       sys,
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances psi0 in fixed steps of cfg.Dt. The loop stops after the first
// step whose end time exceeds cfg.Period, so the final time overshoots the
// horizon by less than one step. psi0 is not modified.
func (s *Simulator) Run(ctx context.Context, psi0 Vector, cfg Config) (*Result, error) {
	if err := s.validate(psi0, cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	psi := psi0.Clone()
	t := 0.0
	result := &Result{
		InitialNorm: psi.Norm(),
		Metrics:     make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Observe(psi, t)
	}
	initialEnergy := s.computeEnergy(psi)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		psi = s.stepper.Step(s.sys, psi, t, cfg.Dt)
		t += cfg.Dt
		result.Steps++

		for _, m := range s.metrics {
			m.Observe(psi, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(result.Steps, psi, t)
		}

		if t > cfg.Period {
			break
		}
	}

	result.Final = psi
	result.Time = t
	result.FinalNorm = psi.Norm()

	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.computeEnergy(psi)-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validate(psi0 Vector, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g: %w", cfg.Dt, ErrInvalidParams)
	}
	if cfg.Period <= 0 {
		return fmt.Errorf("period must be positive, got %g: %w", cfg.Period, ErrInvalidParams)
	}
	if len(psi0) != s.sys.Dim() {
		return fmt.Errorf("state has %d amplitudes, system has %d: %w", len(psi0), s.sys.Dim(), ErrDimensionMismatch)
	}
	return nil
}

func (s *Simulator) computeEnergy(psi Vector) float64 {
	if ec, ok := s.sys.(EnergyComputer); ok {
		return ec.Energy(psi)
	}
	return 0
}
