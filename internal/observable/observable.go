// Package observable provides ready-made observable functions for the
// trajectory driver, one set per state representation.
package observable

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/qevolve/internal/quant"
	"github.com/san-kum/qevolve/internal/trajectory"
)

// PopulationKet records |<i|psi>|^2.
func PopulationKet(i int) trajectory.Observable[*quant.Ket] {
	return trajectory.Observable[*quant.Ket]{
		Name: fmt.Sprintf("p%d", i),
		Fn: func(psi *quant.Ket) float64 {
			a := psi.At(i)
			return real(a)*real(a) + imag(a)*imag(a)
		},
	}
}

// PopulationDensity records the diagonal element <i|rho|i>.
func PopulationDensity(i int) trajectory.Observable[*quant.Operator] {
	return trajectory.Observable[*quant.Operator]{
		Name: fmt.Sprintf("p%d", i),
		Fn: func(rho *quant.Operator) float64 {
			return real(rho.At(i, i))
		},
	}
}

// PopulationVec records <i|rho|i> of a vectorized density matrix.
func PopulationVec(n, i int) trajectory.Observable[*quant.Vector] {
	return trajectory.Observable[*quant.Vector]{
		Name: fmt.Sprintf("p%d", i),
		Fn: func(v *quant.Vector) float64 {
			return real(v.At(i*n + i))
		},
	}
}

// ExpectationKet records Re <psi|op|psi>.
func ExpectationKet(name string, op *quant.Operator) trajectory.Observable[*quant.Ket] {
	return trajectory.Observable[*quant.Ket]{
		Name: name,
		Fn: func(psi *quant.Ket) float64 {
			return real(psi.Dot(op.MulKet(psi)))
		},
	}
}

// ExpectationDensity records Re tr(op rho).
func ExpectationDensity(name string, op *quant.Operator) trajectory.Observable[*quant.Operator] {
	return trajectory.Observable[*quant.Operator]{
		Name: name,
		Fn: func(rho *quant.Operator) float64 {
			return real(op.Mul(rho).Trace())
		},
	}
}

// ImagExpectationDensity records Im tr(op rho), for non-Hermitian op.
func ImagExpectationDensity(name string, op *quant.Operator) trajectory.Observable[*quant.Operator] {
	return trajectory.Observable[*quant.Operator]{
		Name: name,
		Fn: func(rho *quant.Operator) float64 {
			return imag(op.Mul(rho).Trace())
		},
	}
}

// Purity records tr(rho^2), 1 for pure states.
func Purity() trajectory.Observable[*quant.Operator] {
	return trajectory.Observable[*quant.Operator]{
		Name: "purity",
		Fn: func(rho *quant.Operator) float64 {
			return real(rho.Mul(rho).Trace())
		},
	}
}

// TraceReal records Re tr(rho), a cheap sanity probe for trace drift.
func TraceReal() trajectory.Observable[*quant.Operator] {
	return trajectory.Observable[*quant.Operator]{
		Name: "trace",
		Fn: func(rho *quant.Operator) float64 {
			return real(rho.Trace())
		},
	}
}

// Coherence records |<i|rho|j>|, the magnitude of an off-diagonal element.
func Coherence(i, j int) trajectory.Observable[*quant.Operator] {
	return trajectory.Observable[*quant.Operator]{
		Name: fmt.Sprintf("c%d%d", i, j),
		Fn: func(rho *quant.Operator) float64 {
			return cmplx.Abs(rho.At(i, j))
		},
	}
}

// VecObservable lifts a density-matrix observable to the vectorized
// representation used by the superoperator propagators.
func VecObservable(o trajectory.Observable[*quant.Operator]) trajectory.Observable[*quant.Vector] {
	return trajectory.Observable[*quant.Vector]{
		Name: o.Name,
		Fn: func(v *quant.Vector) float64 {
			return o.Fn(quant.Unvec(v))
		},
	}
}
