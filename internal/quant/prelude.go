package quant

import "math"

// Elementary operators for few-level systems. Two-level conventions follow
// the computational basis |0>, |1> with sigma-z = diag(1, -1).

// Identity returns the n-by-n identity operator.
func Identity(n int) *Operator {
	op := Zeros(n)
	for i := 0; i < n; i++ {
		op.Set(i, i, 1)
	}
	return op
}

// SigmaX returns the Pauli x operator.
func SigmaX() *Operator {
	return NewOperator(2, []complex128{0, 1, 1, 0})
}

// SigmaY returns the Pauli y operator.
func SigmaY() *Operator {
	return NewOperator(2, []complex128{0, complex(0, -1), complex(0, 1), 0})
}

// SigmaZ returns the Pauli z operator.
func SigmaZ() *Operator {
	return NewOperator(2, []complex128{1, 0, 0, -1})
}

// SigmaPlus returns the raising operator |1><0|.
func SigmaPlus() *Operator {
	return NewOperator(2, []complex128{0, 0, 1, 0})
}

// SigmaMinus returns the lowering operator |0><1|.
func SigmaMinus() *Operator {
	return NewOperator(2, []complex128{0, 1, 0, 0})
}

// Destroy returns the n-level truncated annihilation operator a, with
// a|k> = sqrt(k)|k-1>.
func Destroy(n int) *Operator {
	op := Zeros(n)
	for k := 1; k < n; k++ {
		op.Set(k-1, k, complex(math.Sqrt(float64(k)), 0))
	}
	return op
}

// Create returns the n-level truncated creation operator, the adjoint of
// [Destroy].
func Create(n int) *Operator {
	return Destroy(n).Adjoint()
}

// NumberOp returns the n-level number operator diag(0, 1, ..., n-1).
func NumberOp(n int) *Operator {
	op := Zeros(n)
	for k := 0; k < n; k++ {
		op.Set(k, k, complex(float64(k), 0))
	}
	return op
}

// Projector returns |i><i| in dimension n.
func Projector(n, i int) *Operator {
	op := Zeros(n)
	op.Set(i, i, 1)
	return op
}
