package quantum

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Hamiltonian is a dense square complex operator. It is never mutated after
// construction.
type Hamiltonian struct {
	m *mat.CDense
}

// NewHamiltonian copies a row-major n×n matrix.
func NewHamiltonian(n int, data []complex128) *Hamiltonian {
	if len(data) != n*n {
		panic(fmt.Sprintf("quantum: hamiltonian data length %d, want %d", len(data), n*n))
	}
	buf := make([]complex128, n*n)
	copy(buf, data)
	return &Hamiltonian{m: mat.NewCDense(n, n, buf)}
}

// NewLadder builds the tridiagonal ladder model: a diagonal of p.States
// evenly spaced energies from −(N−1) to N−1, plus p.Coupling on (i, i+1) and
// (i+1, i) for 1 ≤ i ≤ N−2. The pair (0, 1) stays uncoupled.
// p must satisfy Validate.
func NewLadder(p Params) *Hamiltonian {
	n := p.States
	top := float64(n - 1)
	energies := floats.Span(make([]float64, n), -top, top)

	h0 := mat.NewCDense(n, n, nil)
	for i, e := range energies {
		h0.Set(i, i, complex(e, 0))
	}

	h1 := mat.NewCDense(n, n, nil)
	c := complex(p.Coupling, 0)
	for i := 1; i < n-1; i++ {
		h1.Set(i, i+1, h1.At(i, i+1)+c)
		h1.Set(i+1, i, h1.At(i+1, i)+c)
	}

	cmplxs.Add(h0.RawCMatrix().Data, h1.RawCMatrix().Data)
	return &Hamiltonian{m: h0}
}

func (h *Hamiltonian) Dim() int {
	r, _ := h.m.Dims()
	return r
}

func (h *Hamiltonian) At(i, j int) complex128 {
	return h.m.At(i, j)
}

// Diagonal returns the real parts of the diagonal entries.
func (h *Hamiltonian) Diagonal() []float64 {
	n := h.Dim()
	d := make([]float64, n)
	for i := range d {
		d[i] = real(h.m.At(i, i))
	}
	return d
}

// Apply stores H·x in dst and returns it. dst must not alias x.
func (h *Hamiltonian) Apply(dst, x Vector) Vector {
	n := h.Dim()
	if len(x) != n || len(dst) != n {
		panic(ErrDimensionMismatch)
	}
	cblas128.Gemv(blas.NoTrans, 1, h.m.RawCMatrix(),
		cblas128.Vector{N: n, Inc: 1, Data: x},
		0, cblas128.Vector{N: n, Inc: 1, Data: dst})
	return dst
}

// Expectation returns ⟨ψ|H|ψ⟩, the energy of psi.
func (h *Hamiltonian) Expectation(psi Vector) float64 {
	hpsi := h.Apply(make(Vector, len(psi)), psi)
	return real(cmplxs.Dot(psi, hpsi))
}

// IsHermitian reports whether H[i][j] and conj(H[j][i]) agree within tol.
func (h *Hamiltonian) IsHermitian(tol float64) bool {
	n := h.Dim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(h.m.At(i, j)-cmplx.Conj(h.m.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// RealSym returns H as a real symmetric matrix. It fails with ErrNotReal when
// any entry has a non-zero imaginary part.
func (h *Hamiltonian) RealSym() (*mat.SymDense, error) {
	n := h.Dim()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.m.At(i, j)
			if imag(v) != 0 {
				return nil, fmt.Errorf("entry (%d,%d)=%v: %w", i, j, v, ErrNotReal)
			}
			data[i*n+j] = real(v)
		}
	}
	if !h.IsHermitian(0) {
		return nil, fmt.Errorf("matrix is not symmetric: %w", ErrNotReal)
	}
	return mat.NewSymDense(n, data), nil
}
