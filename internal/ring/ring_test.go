package ring

// Algebraic property tests for the exact number towers: distributivity,
// conjugate involutions, and norm multiplicativity. These
// mirror the style of the field-arithmetic test suites this package is
// grounded on -- plain table-driven testing.TestXxx functions, no
// assertion library.

import (
	"math/big"
	"testing"
)

func TestZ2MulDistributesOverAdd(t *testing.T) {
	a := NewZ2(big.NewInt(3), big.NewInt(-2))
	b := NewZ2(big.NewInt(1), big.NewInt(5))
	c := NewZ2(big.NewInt(-4), big.NewInt(7))

	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	if !lhs.Equal(rhs) {
		t.Errorf("Z2 distributivity failed: %v != %v", lhs, rhs)
	}
}

func TestZ2Adj2Involution(t *testing.T) {
	a := NewZ2(big.NewInt(5), big.NewInt(-3))
	if !a.Adj2().Adj2().Equal(a) {
		t.Errorf("Adj2(Adj2(a)) != a for %v", a)
	}
}

func TestZ2NormMultiplicative(t *testing.T) {
	a := NewZ2(big.NewInt(3), big.NewInt(2))
	b := NewZ2(big.NewInt(-1), big.NewInt(4))
	prod := a.Mul(b)
	lhs := prod.Norm()
	rhs := new(big.Int).Mul(a.Norm(), b.Norm())
	if lhs.Cmp(rhs) != 0 {
		t.Errorf("N(ab) = %s, want N(a)N(b) = %s", lhs, rhs)
	}
}

func TestZ2DivSqrtRoundTrip(t *testing.T) {
	a := NewZ2(big.NewInt(6), big.NewInt(4))
	got := a.DivSqrt().MulSqrt()
	if !got.Equal(a) {
		t.Errorf("DivSqrt then MulSqrt = %v, want %v", got, a)
	}
}

func TestDyadicLowestTerms(t *testing.T) {
	cases := []struct {
		num    int64
		denExp int32
		wantN  int64
		wantE  int32
	}{
		{0, 5, 0, 0},
		{4, 2, 1, 0},
		{6, 1, 3, 0},
		{3, 4, 3, 4},
	}
	for _, c := range cases {
		d := NewDyadic(big.NewInt(c.num), c.denExp)
		if d.Num().Int64() != c.wantN || d.DenExp() != c.wantE {
			t.Errorf("NewDyadic(%d, %d) = %s/2^%d, want %d/2^%d",
				c.num, c.denExp, d.Num(), d.DenExp(), c.wantN, c.wantE)
		}
	}
}

func TestDyadicCmpMatchesFloat(t *testing.T) {
	a := NewDyadic(big.NewInt(3), 2) // 0.75
	b := NewDyadic(big.NewInt(1), 1) // 0.5
	if a.Cmp(b) <= 0 {
		t.Errorf("expected 3/4 > 1/2, got Cmp = %d", a.Cmp(b))
	}
}

func TestZOmegaAdjInvolution(t *testing.T) {
	x := NewZOmega(big.NewInt(1), big.NewInt(2), big.NewInt(-3), big.NewInt(4))
	if !x.Adj().Adj().Equal(x) {
		t.Errorf("Adj(Adj(x)) != x for %v", x)
	}
}

func TestZOmegaAdj2Involution(t *testing.T) {
	x := NewZOmega(big.NewInt(1), big.NewInt(2), big.NewInt(-3), big.NewInt(4))
	if !x.Adj2().Adj2().Equal(x) {
		t.Errorf("Adj2(Adj2(x)) != x for %v", x)
	}
}

func TestZOmegaNormMultiplicative(t *testing.T) {
	a := NewZOmega(big.NewInt(1), big.NewInt(0), big.NewInt(1), big.NewInt(0))
	b := NewZOmega(big.NewInt(2), big.NewInt(-1), big.NewInt(0), big.NewInt(1))
	prod := a.Mul(b)
	lhs := prod.Norm()
	rhs := new(big.Int).Mul(a.Norm(), b.Norm())
	if lhs.Cmp(rhs) != 0 {
		t.Errorf("N(ab) = %s, want N(a)N(b) = %s", lhs, rhs)
	}
}

func TestOmegaToTheFourthIsMinusOne(t *testing.T) {
	w := OmegaZOmega()
	w4 := PowZOmega(w, 4)
	want := NewZOmega(big.NewInt(-1), big.NewInt(0), big.NewInt(0), big.NewInt(0))
	if !w4.Equal(want) {
		t.Errorf("w^4 = %v, want -1", w4)
	}
}

func TestEuclidGCDZ2DividesBoth(t *testing.T) {
	a := NewZ2(big.NewInt(12), big.NewInt(8))
	b := NewZ2(big.NewInt(6), big.NewInt(4))
	g := EuclidGCDZ2(a, b)
	if g.IsZero() {
		t.Fatal("gcd of nonzero elements must not be zero")
	}
	n := g.Norm()
	for _, x := range []Z2{a, b} {
		q := x.Mul(g.Adj2())
		if new(big.Int).Rem(q.A, n).Sign() != 0 || new(big.Int).Rem(q.B, n).Sign() != 0 {
			t.Errorf("gcd %v does not divide %v", g, x)
		}
	}
}

func TestSqrtModKnownResidue(t *testing.T) {
	p := big.NewInt(13)
	n := big.NewInt(4) // 2^2 = 4 mod 13
	root, ok := SqrtMod(n, p)
	if !ok {
		t.Fatal("4 is a quadratic residue mod 13")
	}
	sq := new(big.Int).Mod(new(big.Int).Mul(root, root), p)
	if sq.Cmp(n) != 0 {
		t.Errorf("sqrt(4) mod 13 = %s, but %s^2 mod 13 = %s", root, root, sq)
	}
}

func TestSqrtModNonResidue(t *testing.T) {
	p := big.NewInt(7)
	n := big.NewInt(3) // 3 is a non-residue mod 7
	_, ok := SqrtMod(n, p)
	if ok {
		t.Error("3 should be a non-residue mod 7")
	}
}
