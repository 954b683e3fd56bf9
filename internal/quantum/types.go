package quantum

import (
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Vector holds complex amplitudes indexed by basis state.
type Vector []complex128

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, a := range v {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return false
		}
	}
	return true
}

// Norm returns Σ conj(a)·a over all amplitudes, the squared length of v.
// Unitary evolution keeps it at 1.
func (v Vector) Norm() float64 {
	return real(cmplxs.Dot(v, v))
}

// Sum returns the plain sum of the amplitudes.
func (v Vector) Sum() complex128 {
	return cmplxs.Sum(v)
}

// AddScaledReal stores x + f·y in dst and returns it. It is the one place a
// real step fraction is turned into a complex scalar; dst may alias x.
func AddScaledReal(dst, x Vector, f float64, y Vector) Vector {
	cmplxs.AddScaledTo(dst, x, complex(f, 0), y)
	return dst
}

// System is the right-hand side of dψ/dt = f(ψ, t).
type System interface {
	Derive(psi Vector, t float64) Vector
	Dim() int
}

// EnergyComputer is implemented by systems with a conserved energy.
type EnergyComputer interface {
	Energy(psi Vector) float64
}

type Stepper interface {
	Step(sys System, psi Vector, t float64, dt float64) Vector
}

type Metric interface {
	Name() string
	Observe(psi Vector, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(step int, psi Vector, t float64)
}

type Config struct {
	Dt     float64
	Period float64
}

type Result struct {
	Final       Vector
	Time        float64
	Steps       int
	InitialNorm float64
	FinalNorm   float64
	EnergyDrift float64
	Metrics     map[string]float64
}
