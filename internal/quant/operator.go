package quant

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Operator is a finite-dimensional complex linear map on a Hilbert space,
// backed by a dense square matrix. Operators are immutable by convention:
// arithmetic methods allocate and return new operators, and propagators
// never mutate the operators they were built from.
type Operator struct {
	n int
	m *mat.CDense
}

// NewOperator builds an n-by-n operator from row-major data. The data slice
// is used directly; pass nil for a zero operator.
func NewOperator(n int, data []complex128) *Operator {
	return &Operator{n: n, m: mat.NewCDense(n, n, data)}
}

// Zeros returns the n-by-n zero operator.
func Zeros(n int) *Operator {
	return NewOperator(n, nil)
}

// Dim returns the Hilbert-space dimension.
func (a *Operator) Dim() int { return a.n }

// At returns the matrix element at row i, column j.
func (a *Operator) At(i, j int) complex128 { return a.m.At(i, j) }

// Set assigns the matrix element at row i, column j. It is intended for
// construction only; operators in use are treated as read-only.
func (a *Operator) Set(i, j int, v complex128) { a.m.Set(i, j, v) }

// Clone returns a deep copy.
func (a *Operator) Clone() *Operator {
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.m.Set(i, j, a.m.At(i, j))
		}
	}
	return c
}

// Add returns a + b.
func (a *Operator) Add(b *Operator) *Operator {
	if a.n != b.n {
		panic(ErrDimensionMismatch)
	}
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.m.Set(i, j, a.m.At(i, j)+b.m.At(i, j))
		}
	}
	return c
}

// Sub returns a - b.
func (a *Operator) Sub(b *Operator) *Operator {
	if a.n != b.n {
		panic(ErrDimensionMismatch)
	}
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.m.Set(i, j, a.m.At(i, j)-b.m.At(i, j))
		}
	}
	return c
}

// Scale returns s * a.
func (a *Operator) Scale(s complex128) *Operator {
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.m.Set(i, j, s*a.m.At(i, j))
		}
	}
	return c
}

// Mul returns the matrix product a * b.
func (a *Operator) Mul(b *Operator) *Operator {
	if a.n != b.n {
		panic(ErrDimensionMismatch)
	}
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			var sum complex128
			for k := 0; k < a.n; k++ {
				sum += a.m.At(i, k) * b.m.At(k, j)
			}
			c.m.Set(i, j, sum)
		}
	}
	return c
}

// Adjoint returns the conjugate transpose.
func (a *Operator) Adjoint() *Operator {
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.m.Set(i, j, cmplx.Conj(a.m.At(j, i)))
		}
	}
	return c
}

// Trace returns the sum of diagonal elements.
func (a *Operator) Trace() complex128 {
	var tr complex128
	for i := 0; i < a.n; i++ {
		tr += a.m.At(i, i)
	}
	return tr
}

// MulKet returns a applied to the ket psi.
func (a *Operator) MulKet(psi *Ket) *Ket {
	if a.n != psi.Dim() {
		panic(ErrDimensionMismatch)
	}
	out := NewKet(make([]complex128, a.n))
	for i := 0; i < a.n; i++ {
		var s complex128
		for j := 0; j < a.n; j++ {
			s += a.m.At(i, j) * psi.amp[j]
		}
		out.amp[i] = s
	}
	return out
}

// MulVec returns a applied to the vectorized state v. The operator must act
// on the vectorized space, i.e. its dimension is the square of v's
// Hilbert-space dimension.
func (a *Operator) MulVec(v *Vector) *Vector {
	if a.n != len(v.data) {
		panic(ErrDimensionMismatch)
	}
	out := &Vector{n: v.n, data: make([]complex128, a.n)}
	for i := 0; i < a.n; i++ {
		var s complex128
		for j := 0; j < a.n; j++ {
			s += a.m.At(i, j) * v.data[j]
		}
		out.data[i] = s
	}
	return out
}

// MaxAbs returns the largest element magnitude.
func (a *Operator) MaxAbs() float64 {
	max := 0.0
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if v := cmplx.Abs(a.m.At(i, j)); v > max {
				max = v
			}
		}
	}
	return max
}

// IsHermitian reports whether a equals its adjoint within tol.
func (a *Operator) IsHermitian(tol float64) bool {
	for i := 0; i < a.n; i++ {
		for j := i; j < a.n; j++ {
			if cmplx.Abs(a.m.At(i, j)-cmplx.Conj(a.m.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether every element is finite.
func (a *Operator) IsValid() bool {
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			v := a.m.At(i, j)
			if math.IsNaN(real(v)) || math.IsNaN(imag(v)) ||
				math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
				return false
			}
		}
	}
	return true
}

// EqualWithin reports whether a and b agree elementwise within tol.
func (a *Operator) EqualWithin(b *Operator, tol float64) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if cmplx.Abs(a.m.At(i, j)-b.m.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}
