// Package ring implements the exact algebraic number towers the synthesizer
// runs on: dyadic fractions, Z[sqrt2]/D[sqrt2], and the Z[omega]/D[omega]
// rings used for single-qubit Clifford+T unitaries. Every operation here is
// exact -- no float64 ever enters a comparison or an arithmetic step.
package ring

import "math/big"

// Dyadic is an exact dyadic fraction num / 2^denExp, kept in lowest terms:
// num is odd whenever denExp > 0 (an integer has denExp == 0 and any num),
// and zero is always 0 / 2^0.
type Dyadic struct {
	num    *big.Int
	denExp int32
}

// NewDyadic builds a Dyadic from an integer numerator and a denominator
// exponent, normalizing to lowest terms.
func NewDyadic(num *big.Int, denExp int32) Dyadic {
	return Dyadic{num: new(big.Int).Set(num), denExp: denExp}.lowestTerms()
}

// DyadicFromInt64 builds a Dyadic equal to the given integer.
func DyadicFromInt64(n int64) Dyadic {
	return NewDyadic(big.NewInt(n), 0)
}

// ZeroDyadic is the additive identity.
func ZeroDyadic() Dyadic { return Dyadic{num: big.NewInt(0), denExp: 0} }

// Num returns the numerator in lowest terms.
func (d Dyadic) Num() *big.Int { return new(big.Int).Set(d.num) }

// DenExp returns the denominator exponent in lowest terms.
func (d Dyadic) DenExp() int32 { return d.denExp }

// lowestTerms divides out common factors of two from num, decreasing
// denExp, until num is odd (or zero).
func (d Dyadic) lowestTerms() Dyadic {
	if d.num.Sign() == 0 {
		return Dyadic{num: big.NewInt(0), denExp: 0}
	}
	num := new(big.Int).Set(d.num)
	denExp := d.denExp
	two := big.NewInt(2)
	for denExp > 0 {
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(num, two, r)
		if r.Sign() != 0 {
			break
		}
		num = q
		denExp--
	}
	return Dyadic{num: num, denExp: denExp}
}

// commonDenExp rescales a and b to a shared denominator exponent.
func commonDenExp(a, b Dyadic) (na, nb *big.Int, denExp int32) {
	denExp = a.denExp
	if b.denExp > denExp {
		denExp = b.denExp
	}
	na = new(big.Int).Lsh(a.num, uint(denExp-a.denExp))
	nb = new(big.Int).Lsh(b.num, uint(denExp-b.denExp))
	return na, nb, denExp
}

// Add returns a + b.
func (a Dyadic) Add(b Dyadic) Dyadic {
	na, nb, e := commonDenExp(a, b)
	return NewDyadic(new(big.Int).Add(na, nb), e)
}

// Sub returns a - b.
func (a Dyadic) Sub(b Dyadic) Dyadic {
	na, nb, e := commonDenExp(a, b)
	return NewDyadic(new(big.Int).Sub(na, nb), e)
}

// Neg returns -a.
func (a Dyadic) Neg() Dyadic {
	return Dyadic{num: new(big.Int).Neg(a.num), denExp: a.denExp}
}

// Mul returns a * b.
func (a Dyadic) Mul(b Dyadic) Dyadic {
	return NewDyadic(new(big.Int).Mul(a.num, b.num), a.denExp+b.denExp)
}

// Sign returns -1, 0, or 1.
func (a Dyadic) Sign() int { return a.num.Sign() }

// Equal reports whether a == b.
func (a Dyadic) Equal(b Dyadic) bool {
	return a.num.Cmp(b.num) == 0 && a.denExp == b.denExp
}

// Cmp compares a and b without float conversion.
func (a Dyadic) Cmp(b Dyadic) int {
	na, nb, _ := commonDenExp(a, b)
	return na.Cmp(nb)
}

// MulPow2 returns a * 2^k (k may be negative).
func (a Dyadic) MulPow2(k int32) Dyadic {
	return NewDyadic(a.num, a.denExp-k)
}

// ToBigFloat converts a to an arbitrary-precision float at the given
// precision, for use in the approximate geometry layer only.
func (a Dyadic) ToBigFloat(prec uint) *big.Float {
	f := new(big.Float).SetPrec(prec).SetInt(a.num)
	if a.denExp == 0 {
		return f
	}
	denom := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(a.denExp)))
	return f.Quo(f, denom)
}

// Float64 converts a to a float64. Only used for diagnostics, never for
// correctness-affecting comparisons.
func (a Dyadic) Float64() float64 {
	f := a.ToBigFloat(128)
	v, _ := f.Float64()
	return v
}

func (a Dyadic) String() string {
	if a.denExp == 0 {
		return a.num.String()
	}
	return a.num.String() + "/2^" + itoa32(a.denExp)
}

func itoa32(v int32) string {
	return big.NewInt(int64(v)).String()
}
