package quant

import "math/cmplx"

// Vec flattens a density matrix row-major into a vectorized state. With this
// convention vec(A X B) = (A kron B^T) vec(X); every superoperator builder
// below relies on it.
func Vec(rho *Operator) *Vector {
	n := rho.n
	data := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = rho.At(i, j)
		}
	}
	return &Vector{n: n, data: data}
}

// Unvec reshapes a vectorized state back into a density matrix.
func Unvec(v *Vector) *Operator {
	rho := Zeros(v.n)
	for i := 0; i < v.n; i++ {
		for j := 0; j < v.n; j++ {
			rho.Set(i, j, v.data[i*v.n+j])
		}
	}
	return rho
}

// Kron returns the Kronecker product a kron b.
func Kron(a, b *Operator) *Operator {
	n := a.n * b.n
	out := Zeros(n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < b.n; k++ {
				for l := 0; l < b.n; l++ {
					out.Set(i*b.n+k, j*b.n+l, aij*b.At(k, l))
				}
			}
		}
	}
	return out
}

// transpose returns the plain (non-conjugated) transpose.
func transpose(a *Operator) *Operator {
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.Set(i, j, a.At(j, i))
		}
	}
	return c
}

// conjugate returns the elementwise complex conjugate.
func conjugate(a *Operator) *Operator {
	c := Zeros(a.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			c.Set(i, j, cmplx.Conj(a.At(i, j)))
		}
	}
	return c
}

// SPre returns the left-multiplication superoperator: SPre(A) vec(X) = vec(A X).
func SPre(a *Operator) *Operator {
	return Kron(a, Identity(a.n))
}

// SPost returns the right-multiplication superoperator: SPost(A) vec(X) = vec(X A).
func SPost(a *Operator) *Operator {
	return Kron(Identity(a.n), transpose(a))
}

// Commutator returns the superoperator of [H, .]: it maps vec(X) to
// vec(H X - X H).
func Commutator(h *Operator) *Operator {
	return SPre(h).Sub(SPost(h))
}

// Dissipator returns the Lindblad dissipator superoperator of jump operator
// A, mapping vec(rho) to vec(A rho A^dag - (A^dag A rho + rho A^dag A)/2).
func Dissipator(a *Operator) *Operator {
	ad := a.Adjoint()
	ada := ad.Mul(a)
	jump := Kron(a, conjugate(a))
	anti := SPre(ada).Add(SPost(ada)).Scale(0.5)
	return jump.Sub(anti)
}
