package quantum

import "math"

const (
	DefaultStates   = 11
	DefaultFreq     = 20.0
	DefaultCoupling = -10.0
	DefaultSteps    = 10000
)

// Params describes one run: the ladder size, the coupling between
// neighbouring rungs and the time grid. The horizon is π/Freq and the step is
// horizon/Steps.
type Params struct {
	States   int
	Freq     float64
	Coupling float64
	Steps    int
}

func DefaultParams() Params {
	return Params{
		States:   DefaultStates,
		Freq:     DefaultFreq,
		Coupling: DefaultCoupling,
		Steps:    DefaultSteps,
	}
}

func (p Params) Validate() error {
	if p.States < 3 {
		return &ParamError{Field: "states", Value: float64(p.States), Rule: "must be at least 3"}
	}
	if p.Freq <= 0 || math.IsInf(p.Freq, 0) || math.IsNaN(p.Freq) {
		return &ParamError{Field: "freq", Value: p.Freq, Rule: "must be positive and finite"}
	}
	if math.IsInf(p.Coupling, 0) || math.IsNaN(p.Coupling) {
		return &ParamError{Field: "coupling", Value: p.Coupling, Rule: "must be finite"}
	}
	if p.Steps <= 0 {
		return &ParamError{Field: "steps", Value: float64(p.Steps), Rule: "must be positive"}
	}
	return nil
}

func (p Params) Period() float64 {
	return math.Pi / p.Freq
}

func (p Params) Dt() float64 {
	return p.Period() / float64(p.Steps)
}

// MiddleIndex is the basis state that carries the initial amplitude.
func (p Params) MiddleIndex() int {
	return (p.States - 1) / 2
}

func (p Params) SimConfig() Config {
	return Config{Dt: p.Dt(), Period: p.Period()}
}
