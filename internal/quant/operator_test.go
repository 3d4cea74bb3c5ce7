package quant

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPauliAlgebra(t *testing.T) {
	sx, sy, sz := SigmaX(), SigmaY(), SigmaZ()

	// sigma_x sigma_y = i sigma_z
	got := sx.Mul(sy)
	want := sz.Scale(complex(0, 1))
	if !got.EqualWithin(want, 1e-15) {
		t.Error("sigma_x sigma_y != i sigma_z")
	}

	// squares are the identity
	for _, s := range []*Operator{sx, sy, sz} {
		if !s.Mul(s).EqualWithin(Identity(2), 1e-15) {
			t.Error("Pauli square is not identity")
		}
	}

	// traceless
	for _, s := range []*Operator{sx, sy, sz} {
		if cmplx.Abs(s.Trace()) > 1e-15 {
			t.Errorf("Pauli trace = %v, want 0", s.Trace())
		}
	}
}

func TestMul(t *testing.T) {
	a := NewOperator(2, []complex128{
		1, complex(0, 1),
		2, 0,
	})
	b := NewOperator(2, []complex128{
		0, 1,
		1, complex(0, -1),
	})

	want := NewOperator(2, []complex128{
		complex(0, 1), 2,
		0, 2,
	})
	if got := a.Mul(b); !got.EqualWithin(want, 1e-15) {
		t.Errorf("a*b = %v", got)
	}

	// order matters
	if b.Mul(a).EqualWithin(want, 1e-15) {
		t.Error("b*a should differ from a*b")
	}

	if got := a.Mul(Identity(2)); !got.EqualWithin(a, 1e-15) {
		t.Error("a*I != a")
	}

	// 3x3 ladder commutator [n, a] = -a
	n := NumberOp(3)
	d := Destroy(3)
	if got, want := n.Mul(d), d.Mul(n).Sub(d); !got.EqualWithin(want, 1e-14) {
		t.Error("[n, a] != -a")
	}
}

func TestAdjoint(t *testing.T) {
	a := NewOperator(2, []complex128{
		complex(1, 2), complex(3, -1),
		complex(0, 5), complex(-2, 0),
	})
	ad := a.Adjoint()

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if ad.At(i, j) != cmplx.Conj(a.At(j, i)) {
				t.Fatalf("adjoint element (%d,%d) wrong", i, j)
			}
		}
	}

	if !a.Adjoint().Adjoint().EqualWithin(a, 1e-15) {
		t.Error("double adjoint is not the original")
	}
}

func TestHermiticityCheck(t *testing.T) {
	if !SigmaY().IsHermitian(1e-15) {
		t.Error("sigma_y should be Hermitian")
	}
	if SigmaMinus().IsHermitian(1e-15) {
		t.Error("sigma_minus should not be Hermitian")
	}
}

func TestLadderOperators(t *testing.T) {
	n := 5
	a := Destroy(n)
	ad := Create(n)

	// a|k> = sqrt(k)|k-1>
	for k := 1; k < n; k++ {
		got := a.MulKet(BasisKet(n, k))
		want := math.Sqrt(float64(k))
		if math.Abs(real(got.At(k-1))-want) > 1e-15 {
			t.Errorf("a|%d> amplitude = %v, want %v", k, got.At(k-1), want)
		}
	}

	// a^dag a is the number operator
	if !ad.Mul(a).EqualWithin(NumberOp(n), 1e-12) {
		t.Error("a^dag a != number operator")
	}
}

func TestKetArithmetic(t *testing.T) {
	psi := BasisKet(2, 0)
	phi := BasisKet(2, 1)

	sum := psi.Add(phi).Scale(complex(1/math.Sqrt2, 0))
	if math.Abs(sum.Norm()-1) > 1e-15 {
		t.Errorf("norm = %v, want 1", sum.Norm())
	}

	if cmplx.Abs(psi.Dot(phi)) > 1e-15 {
		t.Error("basis states should be orthogonal")
	}

	rho := sum.Density()
	if math.Abs(real(rho.Trace())-1) > 1e-15 {
		t.Errorf("density trace = %v, want 1", rho.Trace())
	}
	if !rho.IsHermitian(1e-15) {
		t.Error("density matrix should be Hermitian")
	}
	if math.Abs(real(rho.At(0, 1))-0.5) > 1e-15 {
		t.Errorf("coherence = %v, want 0.5", rho.At(0, 1))
	}
}

func TestIsValid(t *testing.T) {
	good := Identity(2)
	if !good.IsValid() {
		t.Error("identity should be valid")
	}

	bad := Zeros(2)
	bad.Set(0, 1, complex(math.NaN(), 0))
	if bad.IsValid() {
		t.Error("NaN entry should be invalid")
	}

	psi := NewKet([]complex128{complex(math.Inf(1), 0), 0})
	if psi.IsValid() {
		t.Error("Inf amplitude should be invalid")
	}
}
