package propagator

import "github.com/san-kum/qevolve/internal/quant"

// Generator describes the operator generating the evolution: either a fixed
// operator or a function of time returning one. Factories accept both forms
// through this variant instead of overloading on argument type.
type Generator struct {
	op *quant.Operator
	fn func(t float64) *quant.Operator
}

// Constant wraps a time-independent operator.
func Constant(op *quant.Operator) Generator {
	return Generator{op: op}
}

// TimeVarying wraps a time-to-operator function.
func TimeVarying(fn func(t float64) *quant.Operator) Generator {
	return Generator{fn: fn}
}

// Eval returns the generator operator at time t.
func (g Generator) Eval(t float64) *quant.Operator {
	if g.op != nil {
		return g.op
	}
	return g.fn(t)
}

// IsConstant reports whether the generator is time-independent.
func (g Generator) IsConstant() bool { return g.op != nil }
