package diophantine

import (
	"math/big"
	"testing"

	"github.com/quantumlang/gridsynth/internal/ring"
)

func TestFactorizeSmallComposite(t *testing.T) {
	n := big.NewInt(360) // 2^3 * 3^2 * 5
	factors := factorize(n)
	got := map[string]int{}
	for _, f := range factors {
		got[f.p.String()] = f.exp
	}
	want := map[string]int{"2": 3, "3": 2, "5": 1}
	for p, exp := range want {
		if got[p] != exp {
			t.Errorf("factorize(360)[%s] = %d, want %d", p, got[p], exp)
		}
	}
}

func TestFactorizeLargePrimeSquare(t *testing.T) {
	p := big.NewInt(1_000_003) // prime
	n := new(big.Int).Mul(p, p)
	factors := factorize(n)
	if len(factors) != 1 || factors[0].p.Cmp(p) != 0 || factors[0].exp != 2 {
		t.Errorf("factorize(p^2) = %v, want single factor %v^2", factors, p)
	}
}

func TestSolveTrivialZero(t *testing.T) {
	d := New()
	got, ok := d.Solve(ring.ZeroD2())
	if !ok || !got.IsZero() {
		t.Errorf("Solve(0) = (%v, %v), want (0, true)", got, ok)
	}
}

func TestSolvePrimeResidueClasses(t *testing.T) {
	// Two representative primes per odd residue class mod 8 (3 and 11, 5 and
	// 13, 7 and 23, 17 and 41): classes 3, 5 and 7 exercise the
	// inert/split-without-complex-layer branches, class 1 the
	// split-completely (p = 1 mod 8) path.
	for _, p := range []int64{3, 5, 7, 11, 13, 17, 23, 41} {
		p := p
		t.Run(big.NewInt(p).String(), func(t *testing.T) {
			d := New()
			xi := ring.D2FromInt64(p)
			got, ok := d.Solve(xi)
			if !ok {
				t.Fatalf("Solve(%d) failed to find a witness", p)
			}
			gotZ2, conv := tryD2ToZ2(got.Mul(got.Adj()).Real())
			if !conv {
				t.Fatalf("witness t*Adj(t) did not collapse to Z[sqrt2]")
			}
			if !gotZ2.Equal(ring.Z2FromInt64(p)) {
				t.Errorf("t*Adj(t) = %v, want %d", gotZ2, p)
			}
		})
	}
}

func TestSolveTwoFindsWitness(t *testing.T) {
	d := New()
	xi := ring.D2FromInt64(2)
	t_, ok := d.Solve(xi)
	if !ok {
		t.Fatalf("Solve(2) failed to find a witness")
	}
	got := t_.Mul(t_.Adj())
	gotZ2, err := tryD2ToZ2(got.Real())
	if !err {
		t.Fatalf("witness t*Adj(t) did not collapse to Z[sqrt2]")
	}
	if !gotZ2.Equal(ring.Z2FromInt64(2)) {
		t.Errorf("t*Adj(t) = %v, want 2", gotZ2)
	}
}
