package ring

import "math/big"

// roundDiv returns round(a/b) for integers a, b (b != 0), rounding halves
// away from zero. This is the elementary step the Euclidean algorithm in a
// non-trivial Euclidean domain is built on: exact division in the fraction
// field, then rounding to the nearest ring element.
func roundDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	r2 := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	babs := new(big.Int).Abs(b)
	if r2.Cmp(babs) >= 0 {
		if (a.Sign() < 0) != (b.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// roundDivZ2 rounds a/n (n a positive integer) in Z[sqrt2].
func roundDivZ2(a Z2, n *big.Int) Z2 {
	return NewZ2(roundDiv(a.A, n), roundDiv(a.B, n))
}

// roundDivZOmega rounds a/n (n a positive integer) in Z[w].
func roundDivZOmega(a ZOmega, n *big.Int) ZOmega {
	return NewZOmega(roundDiv(a.X0, n), roundDiv(a.X1, n), roundDiv(a.X2, n), roundDiv(a.X3, n))
}

// EuclidGCDZ2 returns a generator of the ideal (a, b) in Z[sqrt2], computed
// by the Euclidean algorithm with rounded division in the fraction field:
// q = round(a * Adj2(b) / N(b)), r = a - q*b.
func EuclidGCDZ2(a, b Z2) Z2 {
	if a.Norm().CmpAbs(b.Norm()) < 0 {
		a, b = b, a
	}
	for !b.IsZero() {
		n := b.Norm()
		q := roundDivZ2(a.Mul(b.Adj2()), n)
		r := a.Sub(q.Mul(b))
		a, b = b, r
	}
	return a
}

// EuclidGCDZOmega returns a generator of the ideal (a, b) in Z[w], using the
// rational norm N(b) = b * Adj(b) * Adj2(b * Adj(b)) to rationalize the
// division a/b before rounding.
func EuclidGCDZOmega(a, b ZOmega) ZOmega {
	normAbs := func(x ZOmega) *big.Int { return new(big.Int).Abs(x.Norm()) }
	if normAbs(a).Cmp(normAbs(b)) < 0 {
		a, b = b, a
	}
	for !b.IsZero() {
		n := b.Norm()
		bAdj := b.Adj()
		rationalized := b.Mul(bAdj).Adj2()
		numerator := a.Mul(bAdj).Mul(rationalized)
		q := roundDivZOmega(numerator, n)
		r := a.Sub(q.Mul(b))
		a, b = b, r
	}
	return a
}

// Pow raises an arbitrary ring element (anything with a Mul and a
// multiplicative identity) to a non-negative integer power via binary
// exponentiation. Go generics can't express "has Mul" cleanly across the
// concrete ring types here without a shared interface, so each call site
// below supplies one.
type mulElem[T any] interface {
	Mul(T) T
}

func powGeneric[T mulElem[T]](base T, one T, n uint) T {
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// PowZ2 returns base^n in Z[sqrt2].
func PowZ2(base Z2, n uint) Z2 { return powGeneric[Z2](base, OneZ2(), n) }

// PowZOmega returns base^n in Z[w].
func PowZOmega(base ZOmega, n uint) ZOmega { return powGeneric[ZOmega](base, OneZOmega(), n) }

// ModPowInt returns base^exp mod m for non-negative exp.
func ModPowInt(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}
