package quant

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	jacobiMaxSweeps = 100
	jacobiTol       = 1e-13
)

// HermitianEigen computes the eigendecomposition of a Hermitian operator by
// cyclic complex Jacobi rotations. It returns the real eigenvalues and a
// unitary operator whose columns are the matching eigenvectors, so
// a = V diag(vals) V^dag. The input must be Hermitian; this is checked.
func HermitianEigen(a *Operator) ([]float64, *Operator, error) {
	if !a.IsHermitian(1e-10) {
		return nil, nil, ErrNotHermitian
	}

	n := a.n
	w := a.Clone()
	v := Identity(n)

	scale := infNorm(a)
	if scale == 0 {
		return make([]float64, n), v, nil
	}

	for sweep := 0; sweep < jacobiMaxSweeps; sweep++ {
		if offDiagNorm(w) < jacobiTol*scale {
			vals := make([]float64, n)
			for i := 0; i < n; i++ {
				vals[i] = real(w.At(i, i))
			}
			return vals, v, nil
		}
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(w, v, p, q)
			}
		}
	}
	return nil, nil, ErrNoConvergence
}

// rotate zeroes the (p, q) element of the Hermitian work matrix w with a
// phased Jacobi rotation, accumulating the rotation into v.
func rotate(w, v *Operator, p, q int) {
	apq := w.At(p, q)
	r := cmplx.Abs(apq)
	if r == 0 {
		return
	}
	phase := apq / complex(r, 0)

	app := real(w.At(p, p))
	aqq := real(w.At(q, q))
	tau := (aqq - app) / (2 * r)
	var t float64
	if tau >= 0 {
		t = 1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = -1 / (-tau + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	// 2x2 block of the composite rotation: a diagonal phase absorbing
	// arg(apq) followed by a real Jacobi rotation.
	m00 := complex(c, 0)
	m01 := complex(s, 0)
	m10 := -complex(s, 0) * cmplx.Conj(phase)
	m11 := complex(c, 0) * cmplx.Conj(phase)

	n := w.Dim()
	for i := 0; i < n; i++ {
		wip, wiq := w.At(i, p), w.At(i, q)
		w.Set(i, p, wip*m00+wiq*m10)
		w.Set(i, q, wip*m01+wiq*m11)
	}
	for j := 0; j < n; j++ {
		wpj, wqj := w.At(p, j), w.At(q, j)
		w.Set(p, j, cmplx.Conj(m00)*wpj+cmplx.Conj(m10)*wqj)
		w.Set(q, j, cmplx.Conj(m01)*wpj+cmplx.Conj(m11)*wqj)
	}
	for i := 0; i < n; i++ {
		vip, viq := v.At(i, p), v.At(i, q)
		v.Set(i, p, vip*m00+viq*m10)
		v.Set(i, q, vip*m01+viq*m11)
	}
}

func offDiagNorm(a *Operator) float64 {
	sum := 0.0
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if i == j {
				continue
			}
			v := a.At(i, j)
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return math.Sqrt(sum)
}

// SqrtmHermitian returns the principal square root of a Hermitian positive
// semi-definite operator via its eigendecomposition. Eigenvalues below -tol
// produce ErrNotPositive; small negative values inside the tolerance are
// clamped to zero.
func SqrtmHermitian(a *Operator, tol float64) (*Operator, error) {
	vals, v, err := HermitianEigen(a)
	if err != nil {
		return nil, err
	}

	n := a.n
	d := Zeros(n)
	for i, val := range vals {
		if val < -tol {
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrNotPositive, val)
		}
		if val < 0 {
			val = 0
		}
		d.Set(i, i, complex(math.Sqrt(val), 0))
	}
	return v.Mul(d).Mul(v.Adjoint()), nil
}
