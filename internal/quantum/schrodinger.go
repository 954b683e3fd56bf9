package quantum

import "gonum.org/v1/gonum/cmplxs"

// minusI is the factor in dψ/dt = −i·H·ψ.
const minusI = complex(0, -1)

// Schrodinger is the right-hand side of the Schrödinger equation for a
// time-independent Hamiltonian.
type Schrodinger struct {
	H *Hamiltonian
}

func NewSchrodinger(h *Hamiltonian) *Schrodinger {
	return &Schrodinger{H: h}
}

func (s *Schrodinger) Dim() int {
	return s.H.Dim()
}

// Derive returns a new vector −i·(H·psi). t is ignored; H does not depend on
// time.
func (s *Schrodinger) Derive(psi Vector, t float64) Vector {
	dpsi := s.H.Apply(make(Vector, len(psi)), psi)
	cmplxs.Scale(minusI, dpsi)
	return dpsi
}

// Energy returns ⟨ψ|H|ψ⟩.
func (s *Schrodinger) Energy(psi Vector) float64 {
	return s.H.Expectation(psi)
}
