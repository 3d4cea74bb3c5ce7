package propagator

import "github.com/san-kum/qevolve/internal/quant"

// expU returns the one-step unitary exp(-i dt H).
func expU(dt float64, h *quant.Operator) *quant.Operator {
	return quant.Expm(h.Scale(complex(0, -dt)))
}

// HamKet is the exact unitary propagator for ket states.
type HamKet struct {
	dt  float64
	gen Generator
	u   *quant.Operator // precomputed for constant generators
}

// NewHamKet builds the exact ket propagator psi -> exp(-i dt H) psi. For a
// constant generator the unitary is exponentiated once here; a time-varying
// generator is re-exponentiated on every Step.
func NewHamKet(dt float64, gen Generator) (*HamKet, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	p := &HamKet{dt: dt, gen: gen}
	if gen.IsConstant() {
		p.u = expU(dt, gen.Eval(0))
	}
	return p, nil
}

func (p *HamKet) Step(t float64, psi *quant.Ket) *quant.Ket {
	u := p.u
	if u == nil {
		u = expU(p.dt, p.gen.Eval(t))
	}
	return u.MulKet(psi)
}

// HamDensity is the exact unitary propagator for density matrices,
// rho -> U rho U^dag.
type HamDensity struct {
	dt      float64
	gen     Generator
	u, udag *quant.Operator
}

// NewHamDensity builds the exact density-matrix propagator, precomputing U
// and U^dag once for constant generators.
func NewHamDensity(dt float64, gen Generator) (*HamDensity, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	p := &HamDensity{dt: dt, gen: gen}
	if gen.IsConstant() {
		p.u = expU(dt, gen.Eval(0))
		p.udag = p.u.Adjoint()
	}
	return p, nil
}

func (p *HamDensity) Step(t float64, rho *quant.Operator) *quant.Operator {
	u, udag := p.u, p.udag
	if u == nil {
		u = expU(p.dt, p.gen.Eval(t))
		udag = u.Adjoint()
	}
	return u.Mul(rho).Mul(udag)
}

// SHam is the exact unitary propagator in superoperator form, acting on
// vectorized density matrices.
type SHam struct {
	dt  float64
	gen Generator
	l   *quant.Operator
}

// NewSHam builds the superoperator form of the exact unitary step:
// L = SPre(U) SPost(U^dag), v -> L v.
func NewSHam(dt float64, gen Generator) (*SHam, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	p := &SHam{dt: dt, gen: gen}
	if gen.IsConstant() {
		p.l = unitarySuper(expU(dt, gen.Eval(0)))
	}
	return p, nil
}

func (p *SHam) Step(t float64, v *quant.Vector) *quant.Vector {
	l := p.l
	if l == nil {
		l = unitarySuper(expU(p.dt, p.gen.Eval(t)))
	}
	return l.MulVec(v)
}

func unitarySuper(u *quant.Operator) *quant.Operator {
	return quant.SPre(u).Mul(quant.SPost(u.Adjoint()))
}
