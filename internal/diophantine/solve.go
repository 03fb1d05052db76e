package diophantine

import (
	"math/big"

	"github.com/quantumlang/gridsynth/internal/ring"
)

// Diophantine solves t*Adj(t) = xi for t in Z[omega], the norm equation the
// synthesizer needs to complete a grid-problem candidate u into a full
// SU(2) matrix (u, -Adj(t); t, Adj(u)).
//
// Solve handles every rational prime dividing Norm(xi) by its residue mod
// 8: p=2 contributes a power of Delta; p=1 mod 8 splits completely in
// Z[omega] into four degree-1 primes (the real Z[sqrt2] prime and its
// further Z[omega] splitting); p=7 mod 8 splits only at the Z[sqrt2] level
// (the real prime embeds directly); p=3 and p=5 mod 8 stay inert in
// Z[sqrt2] but split into two conjugate degree-2 primes of Z[omega],
// reached via a root of u^2=-2 (p=3) or u^2=-1 (p=5). Every case divides
// the accumulated remainder to discover the true per-prime valuation
// rather than trusting the rational factorization's exponent directly, so
// a prime that turns out not to admit a solution (wrong associate chosen,
// or genuinely no witness) simply leaves a nonzero cofactor that the final
// unit-correction comparison catches.
type Diophantine struct{}

// New returns a Diophantine solver. It carries no state; the type exists so
// call sites read the same way the rest of the synthesizer's stateful
// solvers do.
func New() Diophantine { return Diophantine{} }

// Solve attempts to find t with t*Adj(t) = xi.
func (Diophantine) Solve(xi ring.D2) (ring.ZOmega, bool) {
	xiZ2, ok := tryD2ToZ2(xi)
	if !ok {
		return ring.ZOmega{}, false
	}
	if xiZ2.IsZero() {
		return ring.ZeroZOmega(), true
	}
	if !isTotallyNonNegative(xiZ2) {
		return ring.ZOmega{}, false
	}

	n := xiZ2.Norm()
	if n.Sign() <= 0 {
		return ring.ZOmega{}, false
	}

	factors := factorize(n)
	t := ring.OneZOmega()
	remaining := xiZ2

	for _, f := range factors {
		p := f.p
		r8 := new(big.Int).Mod(p, big.NewInt(8))
		switch {
		case p.Cmp(big.NewInt(2)) == 0:
			j, cofactor := valuationZ2(remaining, ring.SqrtZ2)
			remaining = cofactor
			t = t.Mul(ring.PowZOmega(ring.DeltaZOmega, uint(j)))
		case r8.Cmp(big.NewInt(1)) == 0:
			pi, ok := splitPrimeZ2(p)
			if !ok {
				return ring.ZOmega{}, false
			}
			g, ok := splitPrimeZOmega(p)
			if !ok {
				return ring.ZOmega{}, false
			}
			gAdjG, _ := tryD2ToZ2(g.Mul(g.Adj()).Real())
			if associatesZ2(gAdjG, pi) {
				piExp, adj2Exp := valuationZ2(remaining, pi)
				remaining = adj2Exp
				t = t.Mul(ring.PowZOmega(g, uint(piExp)))
				piExp2, cofactor2 := valuationZ2(remaining, pi.Adj2())
				remaining = cofactor2
				t = t.Mul(ring.PowZOmega(g.Adj(), uint(piExp2)))
			} else {
				piExp, cofactor := valuationZ2(remaining, pi)
				remaining = cofactor
				t = t.Mul(ring.PowZOmega(g.Adj(), uint(piExp)))
				piExp2, cofactor2 := valuationZ2(remaining, pi.Adj2())
				remaining = cofactor2
				t = t.Mul(ring.PowZOmega(g, uint(piExp2)))
			}
		case r8.Cmp(big.NewInt(7)) == 0:
			// 2 is a QR mod p but -1 is not: p splits at the Z[sqrt2]
			// level (same witness as the p=1 case) but no further in
			// Z[omega], so the two real Z[sqrt2] primes embed directly.
			pi, ok := splitPrimeZ2(p)
			if !ok {
				return ring.ZOmega{}, false
			}
			piExp, cofactor := valuationZ2(remaining, pi)
			remaining = cofactor
			t = t.Mul(ring.PowZOmega(ring.ZOmegaFromZ2(pi), uint(piExp)))
			piExp2, cofactor2 := valuationZ2(remaining, pi.Adj2())
			remaining = cofactor2
			t = t.Mul(ring.PowZOmega(ring.ZOmegaFromZ2(pi.Adj2()), uint(piExp2)))
		case r8.Cmp(big.NewInt(3)) == 0:
			// -2 is a QR mod p but 2 is not: p stays inert in Z[sqrt2]
			// and splits into two conjugate degree-2 primes of Z[omega],
			// found via a root of u^2 = -2.
			g, ok := splitPrimeZOmegaInert(p, big.NewInt(-2))
			if !ok {
				return ring.ZOmega{}, false
			}
			gAdjG, ok := tryD2ToZ2(g.Mul(g.Adj()).Real())
			if !ok {
				return ring.ZOmega{}, false
			}
			val, cofactor := valuationZ2(remaining, gAdjG)
			remaining = cofactor
			t = t.Mul(ring.PowZOmega(g, uint(val)))
		case r8.Cmp(big.NewInt(5)) == 0:
			// -1 is a QR mod p but 2 is not: same structure as p=3 mod 8,
			// reached via a root of u^2 = -1.
			g, ok := splitPrimeZOmegaInert(p, big.NewInt(-1))
			if !ok {
				return ring.ZOmega{}, false
			}
			gAdjG, ok := tryD2ToZ2(g.Mul(g.Adj()).Real())
			if !ok {
				return ring.ZOmega{}, false
			}
			val, cofactor := valuationZ2(remaining, gAdjG)
			remaining = cofactor
			t = t.Mul(ring.PowZOmega(g, uint(val)))
		default:
			panic("diophantine: prime residue mod 8 outside {0,1,3,5,7}")
		}
	}

	return fixUpUnit(t, xiZ2)
}

func tryD2ToZ2(x ring.D2) (z ring.Z2, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return x.ToZ2(), true
}

// isTotallyNonNegative reports whether z and its sqrt2-conjugate are both
// non-negative real numbers, the necessary condition for z to be a norm.
func isTotallyNonNegative(z ring.Z2) bool {
	const prec = 256
	v := z.ToBigFloat(prec)
	adjV := z.Adj2().ToBigFloat(prec)
	return v.Sign() >= 0 && adjV.Sign() >= 0
}

// divExactZ2 divides a by b exactly in Z[sqrt2], reporting ok=false if b
// does not divide a.
func divExactZ2(a, b ring.Z2) (ring.Z2, bool) {
	if b.IsZero() {
		return ring.Z2{}, false
	}
	num := a.Mul(b.Adj2())
	n := b.Norm()
	qa, ra := new(big.Int).QuoRem(num.A, n, new(big.Int))
	qb, rb := new(big.Int).QuoRem(num.B, n, new(big.Int))
	if ra.Sign() != 0 || rb.Sign() != 0 {
		return ring.Z2{}, false
	}
	q := ring.NewZ2(qa, qb)
	if !q.Mul(b).Equal(a) {
		return ring.Z2{}, false
	}
	return q, true
}

// valuationZ2 returns how many times pi divides z exactly, together with
// the cofactor once every factor of pi has been divided out.
func valuationZ2(z ring.Z2, pi ring.Z2) (int, ring.Z2) {
	val := 0
	cur := z
	for {
		q, ok := divExactZ2(cur, pi)
		if !ok {
			return val, cur
		}
		cur = q
		val++
	}
}

// associatesZ2 reports whether a and b generate the same ideal in
// Z[sqrt2], i.e. their Euclidean gcd has the same absolute norm as each of
// them individually.
func associatesZ2(a, b ring.Z2) bool {
	g := ring.EuclidGCDZ2(a, b)
	na := new(big.Int).Abs(a.Norm())
	nb := new(big.Int).Abs(b.Norm())
	ng := new(big.Int).Abs(g.Norm())
	return ng.Cmp(na) == 0 && ng.Cmp(nb) == 0
}

// splitPrimeZ2 finds a Z[sqrt2] element of absolute norm p, for a rational
// prime p with 2 a quadratic residue mod p (p = 1 or 7 mod 8).
func splitPrimeZ2(p *big.Int) (ring.Z2, bool) {
	s, ok := ring.SqrtMod(big.NewInt(2), p)
	if !ok {
		return ring.Z2{}, false
	}
	candidate := ring.NewZ2(s, big.NewInt(-1))
	g := ring.EuclidGCDZ2(ring.NewZ2(p, big.NewInt(0)), candidate)
	gn := new(big.Int).Abs(g.Norm())
	if gn.Cmp(p) == 0 {
		return g, true
	}
	return ring.Z2{}, false
}

// splitPrimeZOmega finds a Z[omega] element of rational norm p, for a prime
// p = 1 mod 8 (the residue class for which omega's minimal polynomial
// x^4+1 has a root mod p, since the multiplicative group mod p then has an
// element of order 8).
func splitPrimeZOmega(p *big.Int) (ring.ZOmega, bool) {
	minusOne := new(big.Int).Sub(p, big.NewInt(1))
	m, ok := ring.SqrtMod(minusOne, p)
	if !ok {
		return ring.ZOmega{}, false
	}
	r, ok := ring.SqrtMod(m, p)
	if !ok {
		return ring.ZOmega{}, false
	}
	candidate := ring.NewZOmega(r, big.NewInt(-1), big.NewInt(0), big.NewInt(0))
	g := ring.EuclidGCDZOmega(ring.NewZOmega(p, big.NewInt(0), big.NewInt(0), big.NewInt(0)), candidate)
	gn := new(big.Int).Abs(g.Norm())
	if gn.Cmp(p) == 0 {
		return g, true
	}
	return ring.ZOmega{}, false
}

// splitPrimeZOmegaInert finds a Z[omega] element of full (degree-4) norm
// p^2, for a rational prime p that stays inert in Z[sqrt2] (p = 3 or 5
// mod 8) but splits into two conjugate primes of Z[omega] above a root u
// of u^2 = target mod p: target=-2 for p = 3 mod 8 (the root contributes
// i*sqrt2 = w+w^3), target=-1 for p = 5 mod 8 (the root contributes
// i = w^2).
func splitPrimeZOmegaInert(p, target *big.Int) (ring.ZOmega, bool) {
	u, ok := ring.SqrtMod(target, p)
	if !ok {
		return ring.ZOmega{}, false
	}
	var candidate ring.ZOmega
	if target.Cmp(big.NewInt(-2)) == 0 {
		candidate = ring.NewZOmega(u, big.NewInt(1), big.NewInt(0), big.NewInt(1))
	} else {
		candidate = ring.NewZOmega(u, big.NewInt(0), big.NewInt(1), big.NewInt(0))
	}
	g := ring.EuclidGCDZOmega(ring.NewZOmega(p, big.NewInt(0), big.NewInt(0), big.NewInt(0)), candidate)
	gn := new(big.Int).Abs(g.Norm())
	pSquared := new(big.Int).Mul(p, p)
	if gn.Cmp(pSquared) == 0 {
		return g, true
	}
	return ring.ZOmega{}, false
}

// fixUpUnit corrects the global unit ambiguity left by splitPrimeZ2/
// splitPrimeZOmega's choice of generator: t*Adj(t) is guaranteed to equal
// xi up to a power of lambda^2 (the only units of Z[sqrt2] that preserve
// total positivity), so a bounded search over that exponent finds the
// exact correction.
func fixUpUnit(t ring.ZOmega, xi ring.Z2) (ring.ZOmega, bool) {
	got, ok := tryD2ToZ2(t.Mul(t.Adj()).Real())
	if !ok {
		return ring.ZOmega{}, false
	}
	const searchRadius = 64
	for k := -searchRadius; k <= searchRadius; k++ {
		var scaled ring.Z2
		if k >= 0 {
			scaled = got.Mul(ring.PowZ2(ring.LambdaZ2, uint(2*k)))
		} else {
			scaled = got.Mul(ring.PowZ2(ring.InvLambdaZ2, uint(-2*k)))
		}
		if scaled.Equal(xi) {
			lambdaPower := ring.OneZOmega()
			sqrt2Omega := ring.OmegaZOmega().Sub(ring.PowZOmega(ring.OmegaZOmega(), 3))
			lambdaOmega := ring.OneZOmega().Add(sqrt2Omega)
			invLambdaOmega := ring.NewZOmega(big.NewInt(-1), big.NewInt(0), big.NewInt(0), big.NewInt(0)).Add(sqrt2Omega)
			if k >= 0 {
				lambdaPower = ring.PowZOmega(lambdaOmega, uint(k))
			} else {
				lambdaPower = ring.PowZOmega(invLambdaOmega, uint(-k))
			}
			return t.Mul(lambdaPower), true
		}
	}
	return ring.ZOmega{}, false
}
