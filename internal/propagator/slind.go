package propagator

import "github.com/san-kum/qevolve/internal/quant"

// SLind is the exact Lindblad propagator in superoperator form: the full
// generator L = -i [H, .] + sum_k D[A_k] is built and exponentiated at
// N^2-by-N^2 size, then applied to vectorized density matrices. Exact in dt,
// and the most memory- and compute-hungry option; meant for generators that
// do not change over the simulated interval, where the single exponential is
// reused across many steps.
type SLind struct {
	dt    float64
	gen   Generator
	dissi *quant.Operator // sum of dissipator superoperators, nil without jumps
	u     *quant.Operator // exp(dt L) for constant generators
}

// NewSLind builds the exact superoperator propagator. With a time-varying
// generator the full superoperator is rebuilt and re-exponentiated on every
// call, inheriting the slowly-varying-H caveat of the exact unitary step.
func NewSLind(dt float64, gen Generator, jumps []*quant.Operator) (*SLind, error) {
	if dt <= 0 {
		return nil, ErrInvalidTimeStep
	}
	p := &SLind{dt: dt, gen: gen}
	if len(jumps) > 0 {
		d := quant.Dissipator(jumps[0])
		for _, a := range jumps[1:] {
			d = d.Add(quant.Dissipator(a))
		}
		p.dissi = d
	}
	if gen.IsConstant() {
		p.u = p.expGenerator(gen.Eval(0))
	}
	return p, nil
}

func (p *SLind) Step(t float64, v *quant.Vector) *quant.Vector {
	u := p.u
	if u == nil {
		u = p.expGenerator(p.gen.Eval(t))
	}
	return u.MulVec(v)
}

func (p *SLind) expGenerator(h *quant.Operator) *quant.Operator {
	l := quant.Commutator(h).Scale(complex(0, -1))
	if p.dissi != nil {
		l = l.Add(p.dissi)
	}
	return quant.Expm(l.Scale(complex(p.dt, 0)))
}
