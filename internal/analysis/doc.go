// Package analysis provides reference solutions and accuracy checks for
// fixed-step evolution.
//
//   - [Propagator]: exact exp(−iHt)ψ from the eigendecomposition of a real
//     symmetric Hamiltonian
//   - [Convergence]: error of a stepper at dt and dt/2 against the exact
//     propagator, and the observed order
//
// # Order Check
//
// A fourth-order method shrinks the global error by about 2⁴ when the step is
// halved:
//
//	rep, _ := analysis.Convergence(ctx, p, func() quantum.Stepper { return integrators.NewRK4() })
//	if rep.Order < 3.5 {
//	    // stepper is not fourth order
//	}
package analysis
