package quant

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Ket is a pure quantum state vector.
type Ket struct {
	amp []complex128
}

// NewKet wraps the amplitude slice as a ket. The slice is used directly.
func NewKet(amp []complex128) *Ket {
	return &Ket{amp: amp}
}

// BasisKet returns the n-dimensional computational basis state |i>.
func BasisKet(n, i int) *Ket {
	amp := make([]complex128, n)
	amp[i] = 1
	return &Ket{amp: amp}
}

// Dim returns the Hilbert-space dimension.
func (k *Ket) Dim() int { return len(k.amp) }

// At returns the amplitude of basis state i.
func (k *Ket) At(i int) complex128 { return k.amp[i] }

// Clone returns a deep copy.
func (k *Ket) Clone() *Ket {
	amp := make([]complex128, len(k.amp))
	copy(amp, k.amp)
	return &Ket{amp: amp}
}

// Add returns k + other.
func (k *Ket) Add(other *Ket) *Ket {
	if len(k.amp) != len(other.amp) {
		panic(ErrDimensionMismatch)
	}
	out := k.Clone()
	cmplxs.Add(out.amp, other.amp)
	return out
}

// AddScaled returns k + s*other.
func (k *Ket) AddScaled(s complex128, other *Ket) *Ket {
	if len(k.amp) != len(other.amp) {
		panic(ErrDimensionMismatch)
	}
	out := k.Clone()
	cmplxs.AddScaled(out.amp, s, other.amp)
	return out
}

// Scale returns s * k.
func (k *Ket) Scale(s complex128) *Ket {
	out := k.Clone()
	cmplxs.Scale(s, out.amp)
	return out
}

// Dot returns the inner product <k|other>.
func (k *Ket) Dot(other *Ket) complex128 {
	if len(k.amp) != len(other.amp) {
		panic(ErrDimensionMismatch)
	}
	var s complex128
	for i := range k.amp {
		s += cmplx.Conj(k.amp[i]) * other.amp[i]
	}
	return s
}

// Norm returns the Euclidean norm.
func (k *Ket) Norm() float64 {
	return math.Sqrt(real(k.Dot(k)))
}

// Normalize returns k scaled to unit norm.
func (k *Ket) Normalize() *Ket {
	return k.Scale(complex(1/k.Norm(), 0))
}

// Outer returns the operator |k><other|.
func (k *Ket) Outer(other *Ket) *Operator {
	if len(k.amp) != len(other.amp) {
		panic(ErrDimensionMismatch)
	}
	n := len(k.amp)
	op := Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			op.Set(i, j, k.amp[i]*cmplx.Conj(other.amp[j]))
		}
	}
	return op
}

// Density returns the density matrix |k><k|.
func (k *Ket) Density() *Operator {
	return k.Outer(k)
}

// IsValid reports whether every amplitude is finite.
func (k *Ket) IsValid() bool {
	for _, v := range k.amp {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) ||
			math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
			return false
		}
	}
	return true
}

// Vector is a density matrix flattened row-major into a column of length
// n*n, the state representation consumed by superoperator propagators.
type Vector struct {
	n    int
	data []complex128
}

// HilbertDim returns the dimension n of the underlying Hilbert space.
func (v *Vector) HilbertDim() int { return v.n }

// Len returns the vectorized length n*n.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i of the vectorized state.
func (v *Vector) At(i int) complex128 { return v.data[i] }

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	data := make([]complex128, len(v.data))
	copy(data, v.data)
	return &Vector{n: v.n, data: data}
}
