package metrics

import (
	"math"

	"github.com/san-kum/qevolve/internal/quantum"
)

// EnergyDrift tracks the largest relative change of ⟨ψ|H|ψ⟩ from its first
// observed value. States with zero initial energy report absolute drift.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
	sys           quantum.EnergyComputer
}

func NewEnergyDrift(sys quantum.EnergyComputer) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		sys:  sys,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(psi quantum.Vector, t float64) {
	energy := e.sys.Energy(psi)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	drift := math.Abs(energy - e.initialEnergy)
	if e.initialEnergy != 0 {
		drift /= math.Abs(e.initialEnergy)
	}
	e.maxDrift = math.Max(e.maxDrift, drift)
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
