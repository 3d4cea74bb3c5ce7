package quant

import "math"

const expmTol = 1e-16

// Expm returns the matrix exponential exp(A) by scaling-and-squaring with a
// Taylor series on the scaled matrix. gonum's mat.Dense carries an Exp for
// real matrices only, so the complex case is computed here.
func Expm(a *Operator) *Operator {
	n := a.n

	// Scale so the series converges in a handful of terms.
	norm := infNorm(a)
	s := 0
	if norm > 0.5 {
		s = int(math.Ceil(math.Log2(norm/0.5))) + 1
	}
	scaled := a.Scale(complex(1/math.Pow(2, float64(s)), 0))

	sum := Identity(n)
	term := Identity(n)
	for k := 1; k <= 64; k++ {
		term = term.Mul(scaled).Scale(complex(1/float64(k), 0))
		sum = sum.Add(term)
		if term.MaxAbs() < expmTol {
			break
		}
	}

	for i := 0; i < s; i++ {
		sum = sum.Mul(sum)
	}
	return sum
}

// infNorm returns the maximum absolute row sum.
func infNorm(a *Operator) float64 {
	max := 0.0
	for i := 0; i < a.n; i++ {
		row := 0.0
		for j := 0; j < a.n; j++ {
			v := a.At(i, j)
			row += math.Hypot(real(v), imag(v))
		}
		if row > max {
			max = row
		}
	}
	return max
}
