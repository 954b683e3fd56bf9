package quantum_test

import (
	"errors"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qevolve/internal/quantum"
)

func ladder(n int) *quantum.Hamiltonian {
	p := quantum.DefaultParams()
	p.States = n
	return quantum.NewLadder(p)
}

var _ = Describe("NewLadder", func() {
	DescribeTable("is real symmetric",
		func(n int) {
			h := ladder(n)
			Expect(h.Dim()).To(Equal(n))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					Expect(h.At(i, j)).To(Equal(h.At(j, i)), "H[%d][%d]", i, j)
					Expect(imag(h.At(i, j))).To(BeZero())
				}
			}
			Expect(h.IsHermitian(0)).To(BeTrue())
		},
		Entry("N=3", 3),
		Entry("N=4", 4),
		Entry("N=11", 11),
		Entry("N=24", 24),
	)

	DescribeTable("has an evenly spaced diagonal from -(N-1) to N-1",
		func(n int) {
			h := ladder(n)
			for i := 0; i < n; i++ {
				Expect(h.At(i, i)).To(Equal(complex(float64(2*i-(n-1)), 0)), "H[%d][%d]", i, i)
			}
			Expect(h.Diagonal()[0]).To(Equal(-float64(n - 1)))
			Expect(h.Diagonal()[n-1]).To(Equal(float64(n - 1)))
		},
		Entry("N=3", 3),
		Entry("N=11", 11),
		Entry("N=24", 24),
	)

	It("couples interior neighbours only", func() {
		n := 11
		h := ladder(n)
		for i := 1; i <= n-2; i++ {
			Expect(h.At(i, i+1)).To(Equal(complex(-10, 0)), "H[%d][%d]", i, i+1)
			Expect(h.At(i+1, i)).To(Equal(complex(-10, 0)), "H[%d][%d]", i+1, i)
		}
		Expect(h.At(0, 1)).To(BeZero())
		Expect(h.At(1, 0)).To(BeZero())
	})

	It("leaves everything beyond the first off-diagonal empty", func() {
		n := 11
		h := ladder(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i-j > 1 || j-i > 1 {
					Expect(h.At(i, j)).To(BeZero())
				}
			}
		}
	})

	It("uses the configured coupling", func() {
		p := quantum.DefaultParams()
		p.Coupling = 2.5
		h := quantum.NewLadder(p)
		Expect(h.At(3, 4)).To(Equal(complex(2.5, 0)))

		p.Coupling = 0
		h = quantum.NewLadder(p)
		for i := 0; i < p.States-1; i++ {
			Expect(h.At(i, i+1)).To(BeZero())
		}
	})
})

var _ = Describe("Hamiltonian", func() {
	var h *quantum.Hamiltonian

	BeforeEach(func() {
		h = quantum.NewHamiltonian(2, []complex128{
			1, 2i,
			-2i, 3,
		})
	})

	It("applies the matrix to a vector", func() {
		dst := h.Apply(make(quantum.Vector, 2), quantum.Vector{1, 1})
		Expect(dst).To(Equal(quantum.Vector{1 + 2i, 3 - 2i}))
	})

	It("computes the energy expectation", func() {
		Expect(h.Expectation(quantum.Vector{1, 0})).To(BeNumerically("~", 1, 1e-15))
		Expect(h.Expectation(quantum.Vector{0, 1})).To(BeNumerically("~", 3, 1e-15))
	})

	It("copies its input data", func() {
		data := []complex128{1, 0, 0, 1}
		m := quantum.NewHamiltonian(2, data)
		data[0] = 42
		Expect(m.At(0, 0)).To(Equal(complex(1, 0)))
	})

	It("detects non-Hermitian matrices", func() {
		Expect(h.IsHermitian(0)).To(BeTrue())
		bad := quantum.NewHamiltonian(2, []complex128{1, 2, 3, 4})
		Expect(bad.IsHermitian(1e-12)).To(BeFalse())
	})

	It("refuses a real symmetric view of a complex matrix", func() {
		_, err := h.RealSym()
		Expect(errors.Is(err, quantum.ErrNotReal)).To(BeTrue())
	})

	It("exposes the ladder as a real symmetric matrix", func() {
		l := ladder(5)
		sym, err := l.RealSym()
		Expect(err).NotTo(HaveOccurred())
		Expect(sym.SymmetricDim()).To(Equal(5))
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				Expect(complex(sym.At(i, j), 0)).To(Equal(l.At(i, j)))
			}
		}
	})

	It("panics on mismatched dimensions", func() {
		Expect(func() { h.Apply(make(quantum.Vector, 3), quantum.Vector{1, 2, 3}) }).To(Panic())
		Expect(func() { quantum.NewHamiltonian(3, []complex128{1}) }).To(Panic())
	})

	It("keeps applied vectors independent of the input", func() {
		x := quantum.Vector{1, 0}
		dst := h.Apply(make(quantum.Vector, 2), x)
		Expect(cmplx.Abs(x[0] - 1)).To(BeZero())
		Expect(x[1]).To(BeZero())
		Expect(dst[1]).To(Equal(complex(0, -2)))
	})
})
