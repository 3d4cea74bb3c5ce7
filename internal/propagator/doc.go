// Package propagator builds single-step time-evolution maps for closed
// (Hamiltonian) and open (Lindblad) quantum systems.
//
// Each factory takes a fixed step dt and a [Generator] and returns a value
// implementing [Stepper]: a pure map from (time, state) to the state one dt
// later. Five strategies are provided, interchangeable inside the trajectory
// driver:
//
//   - [NewHamKet], [NewHamDensity], [NewSHam]: exact unitary step via
//     exp(-i dt H)
//   - [NewHamRK4Ket], [NewHamRK4Density]: classical 4th-order Runge-Kutta,
//     the right choice for time-dependent Hamiltonians
//   - [NewLind]: approximate dissipative step by the jump/no-jump unraveling
//   - [NewLindRK4]: RK4 over the full Lindblad master equation
//   - [NewSLind]: exact exponential of the full generator superoperator
//
// Exact propagators built from a time-varying generator re-exponentiate on
// every call, treating H as constant across a single dt. That is adequate
// only when H varies slowly on the dt scale; it is a documented limitation,
// not a guarantee.
//
// Propagators hold only matrices precomputed at construction, read-only
// afterwards, so a single value is safe to reuse across sequential calls.
package propagator
