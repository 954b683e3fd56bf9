package quantum_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qevolve/internal/quantum"
)

var _ = Describe("Schrodinger", func() {
	var (
		h   *quantum.Hamiltonian
		sys *quantum.Schrodinger
	)

	BeforeEach(func() {
		h = quantum.NewHamiltonian(2, []complex128{
			2, -1,
			-1, 0,
		})
		sys = quantum.NewSchrodinger(h)
	})

	It("returns -i times H psi", func() {
		d := sys.Derive(quantum.Vector{1, 1i}, 0)
		// H·ψ = (2 - i, -1); multiplied by -i.
		Expect(d).To(Equal(quantum.Vector{-1 - 2i, 1i}))
	})

	It("ignores the time argument", func() {
		psi := quantum.Vector{0.6, 0.8i}
		Expect(sys.Derive(psi, 0)).To(Equal(sys.Derive(psi, 123.4)))
	})

	It("leaves its input untouched", func() {
		psi := quantum.Vector{1, 1i}
		d := sys.Derive(psi, 0)
		d[0] = 99
		Expect(psi).To(Equal(quantum.Vector{1, 1i}))
		Expect(h.At(0, 0)).To(Equal(complex(2, 0)))
	})

	It("reports the dimension and energy of its operator", func() {
		Expect(sys.Dim()).To(Equal(2))
		Expect(sys.Energy(quantum.Vector{1, 0})).To(Equal(2.0))
	})

	It("is orthogonal to psi for a Hermitian operator", func() {
		// d/dt ⟨ψ|ψ⟩ = 2 Re⟨ψ|dψ/dt⟩ = 0.
		p := quantum.DefaultParams()
		ladder := quantum.NewSchrodinger(quantum.NewLadder(p))
		psi := quantum.Vector{0.3, 0.1i, -0.2, 0.5, 0.1, 0.4i, 0.2, -0.3i, 0.1, 0.2, 0.3}
		d := ladder.Derive(psi, 0)
		var inner complex128
		for i := range psi {
			inner += complex(real(psi[i]), -imag(psi[i])) * d[i]
		}
		Expect(real(inner)).To(BeNumerically("~", 0, 1e-12))
	})
})
