package quantum_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qevolve/internal/quantum"
)

var _ = Describe("InitialState", func() {
	It("populates the middle rung only", func() {
		psi := quantum.InitialState(quantum.DefaultParams())
		Expect(psi).To(HaveLen(11))
		for i, a := range psi {
			if i == 5 {
				Expect(a).To(Equal(complex(1, 0)))
			} else {
				Expect(a).To(BeZero())
			}
		}
	})

	It("has a norm of exactly one", func() {
		for _, n := range []int{3, 4, 11, 50} {
			p := quantum.DefaultParams()
			p.States = n
			Expect(quantum.InitialState(p).Norm()).To(Equal(1.0))
		}
	})

	It("rounds the middle index down for even sizes", func() {
		p := quantum.DefaultParams()
		p.States = 4
		Expect(p.MiddleIndex()).To(Equal(1))
		Expect(quantum.InitialState(p)[1]).To(Equal(complex(1, 0)))
	})
})

var _ = Describe("Vector", func() {
	It("computes the squared norm from conjugate products", func() {
		v := quantum.Vector{3, 4i}
		Expect(v.Norm()).To(Equal(25.0))
	})

	It("sums amplitudes", func() {
		Expect(quantum.Vector{1, 2i, -1}.Sum()).To(Equal(complex(0, 2)))
	})

	It("stores x + f*y in place", func() {
		x := quantum.Vector{1, 2}
		quantum.AddScaledReal(x, x, 2, quantum.Vector{1i, 1})
		Expect(x).To(Equal(quantum.Vector{1 + 2i, 4}))
	})

	It("flags NaN and Inf amplitudes", func() {
		Expect(quantum.Vector{1, 1i}.IsValid()).To(BeTrue())
		Expect(quantum.Vector{complex(math.NaN(), 0)}.IsValid()).To(BeFalse())
		Expect(quantum.Vector{complex(0, math.Inf(1))}.IsValid()).To(BeFalse())
	})

	It("clones into independent storage", func() {
		v := quantum.Vector{1, 2}
		c := v.Clone()
		c[0] = 9
		Expect(v[0]).To(Equal(complex(1, 0)))
	})
})

var _ = Describe("Params", func() {
	It("reproduces the reference grid by default", func() {
		p := quantum.DefaultParams()
		Expect(p.Validate()).To(Succeed())
		Expect(p.Period()).To(Equal(math.Pi / 20))
		period := math.Pi / p.Freq
		Expect(p.Dt()).To(Equal(period / float64(p.Steps)))
		Expect(p.SimConfig()).To(Equal(quantum.Config{Dt: p.Dt(), Period: p.Period()}))
	})

	DescribeTable("rejects unusable values",
		func(mutate func(*quantum.Params), field string) {
			p := quantum.DefaultParams()
			mutate(&p)
			err := p.Validate()
			Expect(errors.Is(err, quantum.ErrInvalidParams)).To(BeTrue())
			var pe *quantum.ParamError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Field).To(Equal(field))
		},
		Entry("two states", func(p *quantum.Params) { p.States = 2 }, "states"),
		Entry("zero freq", func(p *quantum.Params) { p.Freq = 0 }, "freq"),
		Entry("negative freq", func(p *quantum.Params) { p.Freq = -1 }, "freq"),
		Entry("NaN coupling", func(p *quantum.Params) { p.Coupling = math.NaN() }, "coupling"),
		Entry("zero steps", func(p *quantum.Params) { p.Steps = 0 }, "steps"),
	)
})
