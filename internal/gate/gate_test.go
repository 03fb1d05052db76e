package gate

import "testing"

func TestHHIsIdentity(t *testing.T) {
	hh := MatH.Mul(MatH)
	if !hh.Equal(MatI) {
		t.Errorf("H*H != I")
	}
}

func TestXXIsIdentity(t *testing.T) {
	xx := MatX.Mul(MatX)
	if !xx.Equal(MatI) {
		t.Errorf("X*X != I")
	}
}

func TestTToTheEighthIsIdentity(t *testing.T) {
	m := MatI
	for i := 0; i < 8; i++ {
		m = MatT.Mul(m)
	}
	if !m.Equal(MatI) {
		t.Errorf("T^8 != I")
	}
}

func TestGateStringRoundTrip(t *testing.T) {
	g, err := FromString("HTSX")
	if err != nil {
		t.Fatalf("FromString failed: %v", err)
	}
	if got := g.ToString(); got != "HTSX" {
		t.Errorf("ToString() = %q, want HTSX", got)
	}
	if g.CountT() != 1 {
		t.Errorf("CountT() = %d, want 1", g.CountT())
	}
	if g.IsClifford() {
		t.Error("HTSX should not be reported Clifford (contains T)")
	}
}

func TestGateMulMatchesMatrixProduct(t *testing.T) {
	a, _ := FromString("H")
	b, _ := FromString("S")
	ab := a.Mul(b)
	want := MatS.Mul(MatH)
	if !ab.Mat().Equal(want) {
		t.Errorf("Gate composition does not match matrix product")
	}
}

func TestCliffordDatabaseSizes(t *testing.T) {
	if got := len(globalCliffordDB.entries); got != 192 {
		t.Errorf("len(C1) = %d, want 192", got)
	}
	if got := len(globalCliffordDB.moveNext); got != 64 {
		t.Errorf("len(C_T) = %d, want 64", got)
	}
}

func TestNormalizeIsIdempotentOnClifford(t *testing.T) {
	g, _ := FromString("HSX")
	n1 := g.Normalize()
	n2 := n1.Normalize()
	if n1.ToString() != n2.ToString() {
		t.Errorf("Normalize is not idempotent: %q then %q", n1, n2)
	}
	if !n1.Mat().Equal(g.Mat()) {
		t.Error("Normalize changed the represented matrix")
	}
}

func TestDecomposeIdentity(t *testing.T) {
	d := NewUnitaryDecomposer()
	g := d.Decompose(MatI)
	if !g.Mat().Equal(MatI) {
		t.Errorf("Decompose(I) does not represent I: %v", g)
	}
}

func TestDecomposeT(t *testing.T) {
	d := NewUnitaryDecomposer()
	g := d.Decompose(MatT)
	if !g.Mat().Equal(MatT) {
		t.Errorf("Decompose(T) does not represent T: %v", g)
	}
}
