package propagator

import "github.com/san-kum/qevolve/internal/quant"

// HamRK4Ket integrates d psi/dt = -i H(t) psi with the classical 4th-order
// Runge-Kutta formula. Local truncation error is O(dt^5), global O(dt^4).
type HamRK4Ket struct {
	dt  float64
	gen Generator
}

// NewHamRK4Ket builds the RK4 ket propagator. A constant Hamiltonian is
// handled by the same four-stage routine as a time-varying one.
func NewHamRK4Ket(dt float64, gen Generator) (*HamRK4Ket, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	return &HamRK4Ket{dt: dt, gen: gen}, nil
}

func (p *HamRK4Ket) Step(t float64, psi *quant.Ket) *quant.Ket {
	dt := p.dt
	deriv := func(tt float64, s *quant.Ket) *quant.Ket {
		return p.gen.Eval(tt).MulKet(s).Scale(complex(0, -1))
	}

	k1 := deriv(t, psi)
	k2 := deriv(t+dt/2, psi.AddScaled(complex(dt/2, 0), k1))
	k3 := deriv(t+dt/2, psi.AddScaled(complex(dt/2, 0), k2))
	k4 := deriv(t+dt, psi.AddScaled(complex(dt, 0), k3))

	incr := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return psi.AddScaled(complex(dt/6, 0), incr)
}

// HamRK4Density integrates d rho/dt = -i [H(t), rho] with the same
// four-stage combination.
type HamRK4Density struct {
	dt  float64
	gen Generator
}

// NewHamRK4Density builds the RK4 density-matrix propagator.
func NewHamRK4Density(dt float64, gen Generator) (*HamRK4Density, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	return &HamRK4Density{dt: dt, gen: gen}, nil
}

func (p *HamRK4Density) Step(t float64, rho *quant.Operator) *quant.Operator {
	deriv := func(tt float64, r *quant.Operator) *quant.Operator {
		h := p.gen.Eval(tt)
		return h.Mul(r).Sub(r.Mul(h)).Scale(complex(0, -1))
	}
	return rk4Density(t, p.dt, rho, deriv)
}

// rk4Density runs one classical RK4 step for an operator-valued derivative.
// Shared by the unitary and Lindblad Runge-Kutta propagators.
func rk4Density(t, dt float64, rho *quant.Operator, deriv func(float64, *quant.Operator) *quant.Operator) *quant.Operator {
	half := complex(dt/2, 0)

	k1 := deriv(t, rho)
	k2 := deriv(t+dt/2, rho.Add(k1.Scale(half)))
	k3 := deriv(t+dt/2, rho.Add(k2.Scale(half)))
	k4 := deriv(t+dt, rho.Add(k3.Scale(complex(dt, 0))))

	incr := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return rho.Add(incr.Scale(complex(dt/6, 0)))
}
