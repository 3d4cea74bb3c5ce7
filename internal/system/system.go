// Package system assembles the Hamiltonians, jump operators and initial
// states of the built-in few-level models the CLI can simulate.
package system

import (
	"math"

	"github.com/san-kum/qevolve/internal/propagator"
	"github.com/san-kum/qevolve/internal/quant"
)

// Params are the physical knobs shared by the built-in systems. Unused
// fields are ignored by systems that have no meaning for them.
type Params struct {
	Omega     float64 // drive / precession frequency
	Detuning  float64 // detuning from resonance
	Gamma     float64 // relaxation rate
	Dephasing float64 // pure dephasing rate
	Kappa     float64 // cavity decay rate
	Dim       int     // cavity truncation dimension
	Level     int     // initial basis level
	Plus      bool    // start in (|0> + |1>)/sqrt(2) instead of a basis state
}

// System is one simulatable model: its generator, dissipative channels and
// initial state in both ket and density form.
type System struct {
	Name        string
	Dim         int
	Hamiltonian propagator.Generator
	Jumps       []*quant.Operator
	InitKet     *quant.Ket
	InitDensity *quant.Operator
	TimeVarying bool
}

// Qubit is a two-level system H = (omega/2) sigma-x + (detuning/2) sigma-z
// with optional relaxation (sqrt(gamma) sigma-minus) and pure dephasing
// (sqrt(dephasing/2) sigma-z) channels.
func Qubit(p Params) *System {
	h := quant.SigmaX().Scale(complex(p.Omega/2, 0)).
		Add(quant.SigmaZ().Scale(complex(p.Detuning/2, 0)))

	var jumps []*quant.Operator
	if p.Gamma > 0 {
		jumps = append(jumps, quant.SigmaMinus().Scale(complex(math.Sqrt(p.Gamma), 0)))
	}
	if p.Dephasing > 0 {
		jumps = append(jumps, quant.SigmaZ().Scale(complex(math.Sqrt(p.Dephasing/2), 0)))
	}

	init := initKet(2, p)
	return &System{
		Name:        "qubit",
		Dim:         2,
		Hamiltonian: propagator.Constant(h),
		Jumps:       jumps,
		InitKet:     init,
		InitDensity: init.Density(),
	}
}

// Driven is a qubit under a sinusoidally ramped drive,
// H(t) = (detuning/2) sigma-z + (omega/2) cos(omega t) sigma-x. Its
// generator is genuinely time-dependent, so the Runge-Kutta propagators are
// the appropriate integrators.
func Driven(p Params) *System {
	sz := quant.SigmaZ().Scale(complex(p.Detuning/2, 0))
	sx := quant.SigmaX()
	h := func(t float64) *quant.Operator {
		amp := p.Omega / 2 * math.Cos(p.Omega*t)
		return sz.Add(sx.Scale(complex(amp, 0)))
	}

	var jumps []*quant.Operator
	if p.Gamma > 0 {
		jumps = append(jumps, quant.SigmaMinus().Scale(complex(math.Sqrt(p.Gamma), 0)))
	}

	init := initKet(2, p)
	return &System{
		Name:        "driven",
		Dim:         2,
		Hamiltonian: propagator.TimeVarying(h),
		Jumps:       jumps,
		InitKet:     init,
		InitDensity: init.Density(),
		TimeVarying: true,
	}
}

// Cavity is a truncated harmonic oscillator H = detuning * n with photon
// loss at rate kappa.
func Cavity(p Params) *System {
	dim := p.Dim
	if dim < 2 {
		dim = 10
	}
	h := quant.NumberOp(dim).Scale(complex(p.Detuning, 0))

	var jumps []*quant.Operator
	if p.Kappa > 0 {
		jumps = append(jumps, quant.Destroy(dim).Scale(complex(math.Sqrt(p.Kappa), 0)))
	}

	init := initKet(dim, p)
	return &System{
		Name:        "cavity",
		Dim:         dim,
		Hamiltonian: propagator.Constant(h),
		Jumps:       jumps,
		InitKet:     init,
		InitDensity: init.Density(),
	}
}

func initKet(dim int, p Params) *quant.Ket {
	if p.Plus && dim == 2 {
		s := complex(1/math.Sqrt2, 0)
		return quant.NewKet([]complex128{s, s})
	}
	level := p.Level
	if level < 0 || level >= dim {
		level = 0
	}
	return quant.BasisKet(dim, level)
}
