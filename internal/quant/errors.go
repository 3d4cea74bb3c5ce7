package quant

import "errors"

// Domain errors for quantum-object construction and evolution.
var (
	// ErrDimensionMismatch indicates operators or states of incompatible size.
	ErrDimensionMismatch = errors.New("quant: dimension mismatch")

	// ErrNotSquare indicates a non-square matrix where an operator is required.
	ErrNotSquare = errors.New("quant: operator matrix must be square")

	// ErrNotHermitian indicates a matrix that is not Hermitian within tolerance.
	ErrNotHermitian = errors.New("quant: matrix is not Hermitian")

	// ErrNotPositive indicates a matrix with an eigenvalue below zero where
	// positive semi-definiteness is required.
	ErrNotPositive = errors.New("quant: matrix is not positive semi-definite")

	// ErrInvalidState indicates a state with NaN or Inf entries.
	ErrInvalidState = errors.New("quant: invalid state (NaN or Inf detected)")

	// ErrNoConvergence indicates an iterative decomposition failed to converge.
	ErrNoConvergence = errors.New("quant: eigendecomposition did not converge")
)
