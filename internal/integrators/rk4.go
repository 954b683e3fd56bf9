package integrators

import "github.com/san-kum/qevolve/internal/quantum"

// RK4 is the classical fourth-order Runge-Kutta stepper. The stage buffers are
// reused between steps; the returned state is always a fresh vector.
type RK4 struct {
	k1, k2, k3, k4 quantum.Vector
	scratch        quantum.Vector
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(quantum.Vector, n)
		r.k2 = make(quantum.Vector, n)
		r.k3 = make(quantum.Vector, n)
		r.k4 = make(quantum.Vector, n)
		r.scratch = make(quantum.Vector, n)
	}
}

func (r *RK4) Step(sys quantum.System, psi quantum.Vector, t, dt float64) quantum.Vector {
	n := len(psi)
	r.ensureScratch(n)
	half := dt * 0.5

	copy(r.k1, sys.Derive(psi, t))

	quantum.AddScaledReal(r.scratch, psi, half, r.k1)
	copy(r.k2, sys.Derive(r.scratch, t+half))

	quantum.AddScaledReal(r.scratch, psi, half, r.k2)
	copy(r.k3, sys.Derive(r.scratch, t+half))

	quantum.AddScaledReal(r.scratch, psi, dt, r.k3)
	copy(r.k4, sys.Derive(r.scratch, t+dt))

	for i := 0; i < n; i++ {
		r.scratch[i] = r.k1[i] + 2*r.k2[i] + 2*r.k3[i] + r.k4[i]
	}

	result := make(quantum.Vector, n)
	return quantum.AddScaledReal(result, psi, dt/6.0, r.scratch)
}
