package metrics

import (
	"math/cmplx"

	"github.com/san-kum/qevolve/internal/quantum"
)

// Survival averages the population |a_k|² of one basis state over all
// observations. Tracking the starting rung gives the mean survival probability.
type Survival struct {
	name    string
	index   int
	sum     float64
	samples int
}

func NewSurvival(index int) *Survival {
	return &Survival{
		name:  "survival",
		index: index,
	}
}

func (s *Survival) Name() string {
	return s.name
}

func (s *Survival) Observe(psi quantum.Vector, t float64) {
	if s.index < 0 || s.index >= len(psi) {
		return
	}
	a := cmplx.Abs(psi[s.index])
	s.sum += a * a
	s.samples++
}

func (s *Survival) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *Survival) Reset() {
	s.sum = 0
	s.samples = 0
}
