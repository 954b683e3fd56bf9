package metrics

import (
	"math"

	"github.com/san-kum/qevolve/internal/quantum"
)

// NormDrift is the largest |Σ|a|² − 1| seen during a run.
type NormDrift struct {
	name     string
	maxDrift float64
	last     float64
}

func NewNormDrift() *NormDrift {
	return &NormDrift{name: "norm_drift"}
}

func (n *NormDrift) Name() string { return n.name }

func (n *NormDrift) Observe(psi quantum.Vector, t float64) {
	n.last = psi.Norm()
	n.maxDrift = math.Max(n.maxDrift, math.Abs(n.last-1))
}

func (n *NormDrift) Value() float64 { return n.maxDrift }

// Last returns the most recently observed norm.
func (n *NormDrift) Last() float64 { return n.last }

func (n *NormDrift) Reset() {
	n.maxDrift = 0
	n.last = 0
}
