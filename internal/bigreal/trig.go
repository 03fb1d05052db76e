package bigreal

import "math/big"

// reduceToHalfPi reduces x modulo 2*pi, then removes whole multiples of
// pi/2 (truncated toward zero) and returns the remaining argument, which
// lies in (-pi/2, pi/2), together with a quadrant count (multiples of pi/2
// mod 4) so Sin/Cos can be evaluated from a Taylor series over a small range.
func reduceToHalfPi(x *big.Float, prec uint) (r *big.Float, quadrant int64) {
	pi := new(big.Float).SetPrec(prec).Set(Pi().v)
	twoPi := new(big.Float).SetPrec(prec).Mul(pi, big.NewFloat(2).SetPrec(prec))

	reduced := new(big.Float).SetPrec(prec).Set(x)
	k := new(big.Float).SetPrec(prec).Quo(reduced, twoPi)
	kInt, _ := k.Int(nil)
	reduced.Sub(reduced, new(big.Float).SetPrec(prec).Mul(new(big.Float).SetPrec(prec).SetInt(kInt), twoPi))

	halfPi := new(big.Float).SetPrec(prec).Quo(pi, big.NewFloat(2).SetPrec(prec))
	q := new(big.Float).SetPrec(prec).Quo(reduced, halfPi)
	qInt, _ := q.Int(nil)
	quadrant = new(big.Int).Mod(qInt, big.NewInt(4)).Int64()
	if quadrant < 0 {
		quadrant += 4
	}
	reduced.Sub(reduced, new(big.Float).SetPrec(prec).Mul(new(big.Float).SetPrec(prec).SetInt(qInt), halfPi))
	return reduced, quadrant
}

// sinSeriesSmall evaluates sin(r) via its Taylor series for |r| < pi/2.
func sinSeriesSmall(r *big.Float, prec uint) *big.Float {
	r2 := new(big.Float).SetPrec(prec).Mul(r, r)
	term := new(big.Float).SetPrec(prec).Set(r)
	sum := new(big.Float).SetPrec(prec).Set(r)
	threshold := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1).SetPrec(prec), -int(prec)+8)
	sign := -1
	for n := int64(3); n < 100000; n += 2 {
		term.Mul(term, r2)
		denom := new(big.Float).SetPrec(prec).SetInt64(n * (n - 1))
		term.Quo(term, denom)
		contrib := new(big.Float).SetPrec(prec).Set(term)
		if sign < 0 {
			contrib.Neg(contrib)
		}
		sum.Add(sum, contrib)
		sign = -sign
		if new(big.Float).SetPrec(prec).Abs(term).Cmp(threshold) < 0 {
			break
		}
	}
	return sum
}

func cosSeriesSmall(r *big.Float, prec uint) *big.Float {
	r2 := new(big.Float).SetPrec(prec).Mul(r, r)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1).SetPrec(prec), -int(prec)+8)
	sign := -1
	for n := int64(2); n < 100000; n += 2 {
		term.Mul(term, r2)
		denom := new(big.Float).SetPrec(prec).SetInt64(n * (n - 1))
		term.Quo(term, denom)
		contrib := new(big.Float).SetPrec(prec).Set(term)
		if sign < 0 {
			contrib.Neg(contrib)
		}
		sum.Add(sum, contrib)
		sign = -sign
		if new(big.Float).SetPrec(prec).Abs(term).Cmp(threshold) < 0 {
			break
		}
	}
	return sum
}

// Sin returns sin(x) via quadrant-reduced Taylor series.
func (x Real) Sin() Real {
	prec := Prec + 64
	r, q := reduceToHalfPi(x.v, prec)
	s := sinSeriesSmall(r, prec)
	c := cosSeriesSmall(r, prec)
	var result *big.Float
	switch q {
	case 0:
		result = s
	case 1:
		result = c
	case 2:
		result = new(big.Float).SetPrec(prec).Neg(s)
	default:
		result = new(big.Float).SetPrec(prec).Neg(c)
	}
	return Real{v: new(big.Float).SetPrec(Prec).Set(result)}
}

// Cos returns cos(x) via quadrant-reduced Taylor series.
func (x Real) Cos() Real {
	prec := Prec + 64
	r, q := reduceToHalfPi(x.v, prec)
	s := sinSeriesSmall(r, prec)
	c := cosSeriesSmall(r, prec)
	var result *big.Float
	switch q {
	case 0:
		result = c
	case 1:
		result = new(big.Float).SetPrec(prec).Neg(s)
	case 2:
		result = new(big.Float).SetPrec(prec).Neg(c)
	default:
		result = s
	}
	return Real{v: new(big.Float).SetPrec(Prec).Set(result)}
}
