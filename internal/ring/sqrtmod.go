package ring

import "math/big"

// modPowPair raises the quadratic-extension element (a + b*sqrt(d)) of
// F_p[sqrt(d)] to the power exp, reducing modulo p at every step. This is
// the inner loop Cipolla's algorithm needs once it has picked a
// non-residue a^2-n to adjoin a square root of.
func modPowPair(a, b, d, exp, p *big.Int) (ra, rb *big.Int) {
	ra, rb = big.NewInt(1), big.NewInt(0)
	ca, cb := new(big.Int).Mod(a, p), new(big.Int).Mod(b, p)
	e := new(big.Int).Set(exp)
	zero := big.NewInt(0)
	two := big.NewInt(2)
	for e.Cmp(zero) > 0 {
		if e.Bit(0) == 1 {
			ra, rb = mulPair(ra, rb, ca, cb, d, p)
		}
		ca, cb = mulPair(ca, cb, ca, cb, d, p)
		e.Rsh(e, 1)
	}
	_ = two
	return ra, rb
}

// mulPair multiplies (a+b*sqrt(d)) by (c+e*sqrt(d)) mod p.
func mulPair(a, b, c, e, d, p *big.Int) (*big.Int, *big.Int) {
	ac := new(big.Int).Mul(a, c)
	bed := new(big.Int).Mul(new(big.Int).Mul(b, e), d)
	re := new(big.Int).Mod(new(big.Int).Add(ac, bed), p)
	ae := new(big.Int).Mul(a, e)
	bc := new(big.Int).Mul(b, c)
	im := new(big.Int).Mod(new(big.Int).Add(ae, bc), p)
	return re, im
}

// SqrtMod returns a square root of n modulo the odd prime p via Cipolla's
// algorithm, or ok=false if n is a quadratic non-residue mod p.
func SqrtMod(n, p *big.Int) (root *big.Int, ok bool) {
	n = new(big.Int).Mod(n, p)
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	if legendre(n, p) != 1 {
		return nil, false
	}
	one := big.NewInt(1)
	pMinus1Over2 := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)

	// Find a such that a^2 - n is a non-residue mod p.
	a := big.NewInt(1)
	var d *big.Int
	for {
		cand := new(big.Int).Sub(new(big.Int).Mul(a, a), n)
		cand.Mod(cand, p)
		if legendre(cand, p) == -1 {
			d = cand
			break
		}
		a.Add(a, one)
	}

	exp := new(big.Int).Add(pMinus1Over2, one)
	ra, rb := modPowPair(a, one, d, exp, p)
	if rb.Sign() != 0 {
		// The result should collapse into F_p; a broken non-residue search
		// is the only way this can happen.
		return nil, false
	}
	ra.Mod(ra, p)
	return ra, true
}

// legendre returns the Legendre symbol (a/p) as -1, 0, or 1 for odd prime p.
func legendre(a, p *big.Int) int64 {
	a = new(big.Int).Mod(a, p)
	if a.Sign() == 0 {
		return 0
	}
	one := big.NewInt(1)
	exp := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)
	r := new(big.Int).Exp(a, exp, p)
	if r.Cmp(one) == 0 {
		return 1
	}
	return -1
}
