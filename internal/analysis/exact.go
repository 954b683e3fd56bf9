package analysis

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qevolve/internal/quantum"
)

// ErrFactorize indicates that the symmetric eigendecomposition did not converge.
var ErrFactorize = errors.New("analysis: eigendecomposition failed")

// Propagator evolves states exactly under a real symmetric Hamiltonian
// H = V·diag(λ)·Vᵀ, so that exp(−iHt) = V·diag(e^{−iλt})·Vᵀ.
type Propagator struct {
	values  []float64
	vectors *mat.Dense
}

func NewPropagator(h *quantum.Hamiltonian) (*Propagator, error) {
	sym, err := h.RealSym()
	if err != nil {
		return nil, fmt.Errorf("propagator: %w", err)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, ErrFactorize
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	return &Propagator{
		values:  eig.Values(nil),
		vectors: &vectors,
	}, nil
}

// Energies returns the eigenvalues of H in ascending order.
func (p *Propagator) Energies() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)
	return out
}

// Evolve returns exp(−iHt)·psi. psi is not modified.
func (p *Propagator) Evolve(psi quantum.Vector, t float64) quantum.Vector {
	n := len(p.values)
	if len(psi) != n {
		panic(quantum.ErrDimensionMismatch)
	}

	// Coefficients in the eigenbasis, each advanced by its phase.
	coeffs := make([]complex128, n)
	for k := 0; k < n; k++ {
		var c complex128
		for i := 0; i < n; i++ {
			c += complex(p.vectors.At(i, k), 0) * psi[i]
		}
		coeffs[k] = c * cmplx.Exp(complex(0, -p.values[k]*t))
	}

	out := make(quantum.Vector, n)
	for i := 0; i < n; i++ {
		var a complex128
		for k := 0; k < n; k++ {
			a += complex(p.vectors.At(i, k), 0) * coeffs[k]
		}
		out[i] = a
	}
	return out
}
