package bigreal

import "math/big"

// Exp returns e^x, range-reduced so the Taylor series only has to converge
// on an argument of magnitude below ln(2).
func (x Real) Exp() Real {
	prec := Prec + 64
	xv := new(big.Float).SetPrec(prec).Set(x.v)

	l2 := new(big.Float).SetPrec(prec).Set(ln2())
	kf := new(big.Float).SetPrec(prec).Quo(xv, l2)
	kBig, _ := kf.Int(nil)
	k := kBig.Int64()

	r := new(big.Float).SetPrec(prec).Sub(xv, new(big.Float).SetPrec(prec).Mul(big.NewFloat(float64(k)).SetPrec(prec), l2))

	// Taylor series for e^r.
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1).SetPrec(prec), -int(prec)+8)
	for n := int64(1); n < 100000; n++ {
		term.Mul(term, r)
		term.Quo(term, big.NewFloat(float64(n)).SetPrec(prec))
		sum.Add(sum, term)
		if new(big.Float).SetPrec(prec).Abs(term).Cmp(threshold) < 0 {
			break
		}
	}

	result := new(big.Float).SetPrec(Prec).SetMantExp(sum, int(k))
	return Real{v: result}
}

// Log returns ln(x) for x > 0, by extracting x = m*2^e with m in [1,2) via
// (*big.Float).MantExp and combining ln(m) (fast atanh series) with e*ln2.
func (x Real) Log() Real {
	prec := Prec + 64
	if x.v.Sign() <= 0 {
		panic("bigreal: Log called on a non-positive value")
	}
	mant := new(big.Float).SetPrec(prec)
	e := x.v.MantExp(mant) // x = mant * 2^e, mant in [0.5, 1)
	// Rescale so m = 2*mant is in [1, 2), i.e. x = m * 2^(e-1).
	m := new(big.Float).SetPrec(prec).Mul(mant, big.NewFloat(2).SetPrec(prec))
	exp := e - 1

	// z = (m-1)/(m+1), so ln(m) = 2*atanh(z).
	num := new(big.Float).SetPrec(prec).Sub(m, big.NewFloat(1).SetPrec(prec))
	den := new(big.Float).SetPrec(prec).Add(m, big.NewFloat(1).SetPrec(prec))
	z := new(big.Float).SetPrec(prec).Quo(num, den)
	zRat, _ := z.Rat(nil)
	var lnM *big.Float
	if zRat != nil {
		lnM = atanhSeries(zRat, prec)
	} else {
		lnM = new(big.Float).SetPrec(prec)
	}
	lnM.Mul(lnM, big.NewFloat(2).SetPrec(prec))

	expTerm := new(big.Float).SetPrec(prec).Mul(big.NewFloat(float64(exp)).SetPrec(prec), ln2())
	result := new(big.Float).SetPrec(Prec).Add(lnM, expTerm)
	return Real{v: result}
}

// Pow returns x^y for x > 0, via exp(y*ln(x)).
func (x Real) Pow(y Real) Real {
	return x.Log().Mul(y).Exp()
}
