package ring

import "math/big"

// ZOmega is an element x0 + x1*w + x2*w^2 + x3*w^3 of Z[w], where
// w = exp(i*pi/4) is a primitive eighth root of unity (w^4 = -1).
type ZOmega struct {
	X0, X1, X2, X3 *big.Int
}

// NewZOmega builds x0 + x1*w + x2*w^2 + x3*w^3.
func NewZOmega(x0, x1, x2, x3 *big.Int) ZOmega {
	return ZOmega{
		X0: new(big.Int).Set(x0), X1: new(big.Int).Set(x1),
		X2: new(big.Int).Set(x2), X3: new(big.Int).Set(x3),
	}
}

// ZOmegaFromInt64 builds an integer element of Z[w].
func ZOmegaFromInt64(x0 int64) ZOmega {
	z := big.NewInt(0)
	return NewZOmega(big.NewInt(x0), z, z, z)
}

// ZeroZOmega is the additive identity.
func ZeroZOmega() ZOmega { return ZOmegaFromInt64(0) }

// OneZOmega is the multiplicative identity.
func OneZOmega() ZOmega { return ZOmegaFromInt64(1) }

// OmegaZOmega is w itself.
func OmegaZOmega() ZOmega {
	z, o := big.NewInt(0), big.NewInt(1)
	return NewZOmega(z, o, z, z)
}

func (x ZOmega) Add(y ZOmega) ZOmega {
	return NewZOmega(
		new(big.Int).Add(x.X0, y.X0), new(big.Int).Add(x.X1, y.X1),
		new(big.Int).Add(x.X2, y.X2), new(big.Int).Add(x.X3, y.X3),
	)
}

func (x ZOmega) Sub(y ZOmega) ZOmega {
	return NewZOmega(
		new(big.Int).Sub(x.X0, y.X0), new(big.Int).Sub(x.X1, y.X1),
		new(big.Int).Sub(x.X2, y.X2), new(big.Int).Sub(x.X3, y.X3),
	)
}

func (x ZOmega) Neg() ZOmega {
	return NewZOmega(
		new(big.Int).Neg(x.X0), new(big.Int).Neg(x.X1),
		new(big.Int).Neg(x.X2), new(big.Int).Neg(x.X3),
	)
}

// Mul returns x*y modulo the relation w^4 = -1.
func (x ZOmega) Mul(y ZOmega) ZOmega {
	mul := func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
	sum := func(terms ...*big.Int) *big.Int {
		r := big.NewInt(0)
		for _, t := range terms {
			r.Add(r, t)
		}
		return r
	}
	neg := func(v *big.Int) *big.Int { return new(big.Int).Neg(v) }

	z0 := sum(mul(x.X0, y.X0), neg(mul(x.X1, y.X3)), neg(mul(x.X2, y.X2)), neg(mul(x.X3, y.X1)))
	z1 := sum(mul(x.X0, y.X1), mul(x.X1, y.X0), neg(mul(x.X2, y.X3)), neg(mul(x.X3, y.X2)))
	z2 := sum(mul(x.X0, y.X2), mul(x.X1, y.X1), mul(x.X2, y.X0), neg(mul(x.X3, y.X3)))
	z3 := sum(mul(x.X0, y.X3), mul(x.X1, y.X2), mul(x.X2, y.X1), mul(x.X3, y.X0))
	return NewZOmega(z0, z1, z2, z3)
}

// Adj is the complex conjugate: conj(w) = -w^3.
func (x ZOmega) Adj() ZOmega {
	return NewZOmega(x.X0, new(big.Int).Neg(x.X3), new(big.Int).Neg(x.X2), new(big.Int).Neg(x.X1))
}

// Adj2 is the sqrt2-conjugate: since sqrt2 = w - w^3, negating the odd
// coefficients negates the sqrt2 component.
func (x ZOmega) Adj2() ZOmega {
	return NewZOmega(x.X0, new(big.Int).Neg(x.X1), x.X2, new(big.Int).Neg(x.X3))
}

func (x ZOmega) Equal(y ZOmega) bool {
	return x.X0.Cmp(y.X0) == 0 && x.X1.Cmp(y.X1) == 0 && x.X2.Cmp(y.X2) == 0 && x.X3.Cmp(y.X3) == 0
}

func (x ZOmega) IsZero() bool {
	return x.X0.Sign() == 0 && x.X1.Sign() == 0 && x.X2.Sign() == 0 && x.X3.Sign() == 0
}

// Norm returns x * Adj(x) * Adj2(x * Adj(x)), which lies entirely in the
// rational subring and is returned as the X0 coefficient -- the Galois norm
// down to Z described in 1206.5236 section 3.
func (x ZOmega) Norm() *big.Int {
	xx := x.Mul(x.Adj())
	real := xx.Mul(xx.Adj2())
	if real.X1.Sign() != 0 || real.X2.Sign() != 0 || real.X3.Sign() != 0 {
		panic("ring: ZOmega.Norm produced a non-rational result; invariant broken")
	}
	return real.X0
}

// Real returns the D2 real part of x when interpreted as a complex number:
// Re(x) = x0 + (x1-x3)/sqrt2 = x0 + (x1-x3)*sqrt2/2.
func (x ZOmega) Real() D2 {
	diff := new(big.Int).Sub(x.X1, x.X3)
	return NewD2(NewDyadic(x.X0, 0), NewDyadic(diff, 1))
}

// Imag returns the D2 imaginary part: Im(x) = x2 + (x1+x3)/sqrt2.
func (x ZOmega) Imag() D2 {
	sum := new(big.Int).Add(x.X1, x.X3)
	return NewD2(NewDyadic(x.X2, 0), NewDyadic(sum, 1))
}

// ToBigFloat evaluates x as a complex number and returns (re, im) at the
// given precision.
func (x ZOmega) ToBigFloat(prec uint) (re, im *big.Float) {
	return x.Real().ToBigFloat(prec), x.Imag().ToBigFloat(prec)
}

func (x ZOmega) String() string {
	return x.X0.String() + "+" + x.X1.String() + "w+" + x.X2.String() + "w^2+" + x.X3.String() + "w^3"
}
