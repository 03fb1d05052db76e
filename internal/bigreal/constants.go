package bigreal

import (
	"math/big"
	"sync"
)

var (
	piOnce  sync.Once
	piValue *big.Float
	ln2Once sync.Once
	ln2Value *big.Float
)

// Pi returns the circle constant at the package's working precision,
// computed once via the Gauss-Legendre iteration (quadratic convergence,
// so floor(log2(prec))+4 iterations, 14 at the working precision plus
// guard bits, comfortably clear 1728 bits).
func Pi() Real {
	piOnce.Do(func() {
		piValue = gaussLegendrePi(Prec + 64)
	})
	return Real{v: new(big.Float).SetPrec(Prec).Set(piValue)}
}

func gaussLegendrePi(prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	four := new(big.Float).SetPrec(prec).SetInt64(4)

	a := new(big.Float).SetPrec(prec).Set(one)
	b := new(big.Float).SetPrec(prec).Quo(one, new(big.Float).SetPrec(prec).Sqrt(two))
	t := new(big.Float).SetPrec(prec).Quo(one, four)
	p := new(big.Float).SetPrec(prec).Set(one)

	iterations := 0
	for bits := prec; bits > 1; bits >>= 1 {
		iterations++
	}
	iterations += 4

	for i := 0; i < iterations; i++ {
		aNext := new(big.Float).SetPrec(prec).Quo(new(big.Float).Add(a, b), two)
		ab := new(big.Float).SetPrec(prec).Mul(a, b)
		bNext := new(big.Float).SetPrec(prec).Sqrt(ab)
		diff := new(big.Float).SetPrec(prec).Sub(a, aNext)
		diff.Mul(diff, diff)
		tNext := new(big.Float).SetPrec(prec).Sub(t, new(big.Float).Mul(p, diff))
		pNext := new(big.Float).SetPrec(prec).Mul(p, two)

		a, b, t, p = aNext, bNext, tNext, pNext
	}

	sum := new(big.Float).SetPrec(prec).Add(a, b)
	sum.Mul(sum, sum)
	denom := new(big.Float).SetPrec(prec).Mul(four, t)
	return new(big.Float).SetPrec(prec).Quo(sum, denom)
}

// ln2 returns ln(2) at the package's working precision, via the fast
// atanh-style series ln2 = 2*atanh(1/3).
func ln2() *big.Float {
	ln2Once.Do(func() {
		ln2Value = atanhSeries(big.NewRat(1, 3), Prec+64)
		ln2Value.Mul(ln2Value, big.NewFloat(2).SetPrec(Prec+64))
	})
	return new(big.Float).SetPrec(Prec).Set(ln2Value)
}

// atanhSeries evaluates atanh(z) = z + z^3/3 + z^5/5 + ... for a small
// rational z (the factor of two in 2*atanh(z) is applied by callers that
// need ln(1+2z)-style identities).
func atanhSeries(z *big.Rat, prec uint) *big.Float {
	zf := new(big.Float).SetPrec(prec).SetRat(z)
	z2 := new(big.Float).SetPrec(prec).Mul(zf, zf)

	term := new(big.Float).SetPrec(prec).Set(zf)
	sum := new(big.Float).SetPrec(prec)
	threshold := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1).SetPrec(prec), -int(prec))

	for n := int64(1); ; n += 2 {
		contrib := new(big.Float).SetPrec(prec).Quo(term, big.NewFloat(float64(n)).SetPrec(prec))
		sum.Add(sum, contrib)
		if contrib.Abs(contrib).Cmp(threshold) < 0 {
			break
		}
		term.Mul(term, z2)
	}
	return sum
}
