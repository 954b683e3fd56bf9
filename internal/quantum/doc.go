// Package quantum provides the core primitives for evolving a finite
// dimensional quantum state under a time-independent Hamiltonian.
//
// The package defines the fundamental types for integrating the
// Schrödinger equation i·dψ/dt = H·ψ (ħ = 1):
//
//   - [Vector]: complex amplitudes indexed by basis state
//   - [Hamiltonian]: dense complex operator built once per run
//   - [Schrodinger]: the right-hand side dψ/dt = −i·H·ψ
//   - [Stepper]: fixed-step integrator interface
//   - [Simulator]: drives time from 0 past the configured horizon
//
// # Example
//
//	p := quantum.DefaultParams()
//	h := quantum.NewLadder(p)
//	sim := quantum.New(quantum.NewSchrodinger(h), integrators.NewRK4())
//	result, _ := sim.Run(ctx, quantum.InitialState(p), p.SimConfig())
//
// # Thread Safety
//
// A Hamiltonian is read-only after construction and may be shared.
// Simulator instances are NOT thread-safe.
package quantum
