package quant

import (
	"math"
	"testing"
)

func testDensity() *Operator {
	// mixed state with coherences
	return NewOperator(2, []complex128{
		complex(0.7, 0), complex(0.2, 0.1),
		complex(0.2, -0.1), complex(0.3, 0),
	})
}

func TestVecUnvecRoundtrip(t *testing.T) {
	rho := testDensity()
	back := Unvec(Vec(rho))
	if !back.EqualWithin(rho, 1e-15) {
		t.Error("Vec/Unvec roundtrip changed the matrix")
	}
}

func TestVecRowMajor(t *testing.T) {
	rho := NewOperator(2, []complex128{1, 2, 3, 4})
	v := Vec(rho)
	want := []complex128{1, 2, 3, 4}
	for i, w := range want {
		if v.At(i) != w {
			t.Fatalf("vec[%d] = %v, want %v (row-major stacking)", i, v.At(i), w)
		}
	}
}

func TestSPreSPost(t *testing.T) {
	a := NewOperator(2, []complex128{
		complex(1, 0), complex(0, 2),
		complex(3, -1), complex(0, 0),
	})
	rho := testDensity()

	left := Unvec(SPre(a).MulVec(Vec(rho)))
	if !left.EqualWithin(a.Mul(rho), 1e-13) {
		t.Error("SPre(A) vec(rho) != vec(A rho)")
	}

	right := Unvec(SPost(a).MulVec(Vec(rho)))
	if !right.EqualWithin(rho.Mul(a), 1e-13) {
		t.Error("SPost(A) vec(rho) != vec(rho A)")
	}
}

func TestCommutatorSuper(t *testing.T) {
	h := SigmaZ().Scale(0.5)
	rho := testDensity()

	got := Unvec(Commutator(h).MulVec(Vec(rho)))
	want := h.Mul(rho).Sub(rho.Mul(h))
	if !got.EqualWithin(want, 1e-13) {
		t.Error("commutator superoperator disagrees with direct commutator")
	}
}

func TestDissipatorSuper(t *testing.T) {
	a := SigmaMinus().Scale(complex(math.Sqrt(0.8), 0))
	rho := testDensity()

	got := Unvec(Dissipator(a).MulVec(Vec(rho)))

	ad := a.Adjoint()
	ada := ad.Mul(a)
	want := a.Mul(rho).Mul(ad).
		Sub(ada.Mul(rho).Add(rho.Mul(ada)).Scale(0.5))
	if !got.EqualWithin(want, 1e-13) {
		t.Error("dissipator superoperator disagrees with direct formula")
	}

	// dissipators annihilate the trace: tr(D[A] rho) = 0
	if math.Abs(real(got.Trace())) > 1e-13 || math.Abs(imag(got.Trace())) > 1e-13 {
		t.Errorf("dissipator output trace = %v, want 0", got.Trace())
	}
}

func TestKron(t *testing.T) {
	a := NewOperator(2, []complex128{1, 2, 3, 4})
	got := Kron(a, Identity(2))

	if got.Dim() != 4 {
		t.Fatalf("kron dim = %d, want 4", got.Dim())
	}
	if got.At(0, 0) != 1 || got.At(1, 1) != 1 || got.At(0, 2) != 2 || got.At(3, 3) != 4 {
		t.Error("kron block structure wrong")
	}
}
