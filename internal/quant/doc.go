// Package quant provides the quantum objects the evolution engine is built
// on: operators (square complex matrices), ket state vectors, vectorized
// density matrices, and the superoperator algebra connecting them.
//
// Operators wrap [mat.CDense] and are treated as immutable once constructed;
// every arithmetic method returns a fresh operator. Dense algorithms that
// gonum does not provide for complex matrices live here too:
//
//   - [Expm]: matrix exponential by scaling-and-squaring
//   - [SqrtmHermitian]: principal square root of a Hermitian matrix
//   - [HermitianEigen]: eigendecomposition by cyclic Jacobi rotations
//
// Vectorization is row-major (row stacking), so vec(AXB) = (A kron B^T) vec(X).
// The superoperator builders [SPre], [SPost], [Commutator] and [Dissipator]
// all assume this convention, as do [Vec] and [Unvec].
package quant
