package propagator

import (
	"errors"
	"fmt"

	"github.com/san-kum/qevolve/internal/quant"
)

// Lind is the jump/no-jump Lindblad propagator: a fast approximation of the
// master-equation step that separates the decay ("jump") branch from the
// informational-backaction ("no jump") branch. Trace is preserved only to
// leading order in dt; that is inherent to the method.
type Lind struct {
	dt       float64
	unitary  *HamDensity
	nojump   *quant.Operator // sqrt(I - dt sum A^dag A), nil without jumps
	jumps    []*quant.Operator
	adjoints []*quant.Operator
}

// NewLind builds the jump/no-jump propagator. The no-jump operator depends
// only on dt and the jump list and is computed once here. Construction fails
// with ErrStepTooLarge when I - dt sum A^dag A is not positive semi-definite,
// i.e. when dt is too large relative to the dissipation rates.
func NewLind(dt float64, gen Generator, jumps []*quant.Operator) (*Lind, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	unitary, err := NewHamDensity(dt, gen)
	if err != nil {
		return nil, err
	}
	p := &Lind{dt: dt, unitary: unitary}
	if len(jumps) == 0 {
		return p, nil
	}

	n := jumps[0].Dim()
	sum := quant.Identity(n)
	for _, a := range jumps {
		ad := a.Adjoint()
		p.jumps = append(p.jumps, a)
		p.adjoints = append(p.adjoints, ad)
		sum = sum.Sub(ad.Mul(a).Scale(complex(dt, 0)))
	}
	nojump, err := quant.SqrtmHermitian(sum, 1e-12)
	if err != nil {
		if errors.Is(err, quant.ErrNotPositive) {
			return nil, fmt.Errorf("%w: dt=%g", ErrStepTooLarge, dt)
		}
		return nil, err
	}
	p.nojump = nojump
	return p, nil
}

func (p *Lind) Step(t float64, rho *quant.Operator) *quant.Operator {
	rhoU := p.unitary.Step(t, rho)
	if p.nojump == nil {
		return rhoU
	}

	out := p.nojump.Mul(rhoU).Mul(p.nojump)
	for k, a := range p.jumps {
		out = out.Add(a.Mul(rhoU).Mul(p.adjoints[k]).Scale(complex(p.dt, 0)))
	}
	return out
}
