package ring

import "math/big"

// D2 is an element a + b*sqrt2 of D[sqrt2], the ring of dyadic fractions
// adjoined with sqrt2.
type D2 struct {
	A, B Dyadic
}

// NewD2 builds a + b*sqrt2.
func NewD2(a, b Dyadic) D2 { return D2{A: a, B: b} }

// D2FromZ2 lifts an integer element into D[sqrt2].
func D2FromZ2(x Z2) D2 { return D2{A: DyadicFromInt64(0), B: DyadicFromInt64(0)}.addInts(x) }

func (D2) addInts(x Z2) D2 {
	return D2{A: NewDyadic(x.A, 0), B: NewDyadic(x.B, 0)}
}

// D2FromInt64 builds an integer element of D[sqrt2].
func D2FromInt64(a int64) D2 { return NewD2(DyadicFromInt64(a), DyadicFromInt64(0)) }

// ZeroD2 is the additive identity.
func ZeroD2() D2 { return D2FromInt64(0) }

// OneD2 is the multiplicative identity.
func OneD2() D2 { return D2FromInt64(1) }

func (x D2) Add(y D2) D2 { return NewD2(x.A.Add(y.A), x.B.Add(y.B)) }
func (x D2) Sub(y D2) D2 { return NewD2(x.A.Sub(y.A), x.B.Sub(y.B)) }
func (x D2) Neg() D2     { return NewD2(x.A.Neg(), x.B.Neg()) }

// Mul returns x*y: (a1+b1 r)(a2+b2 r) = (a1a2+2b1b2) + (a1b2+a2b1) r.
func (x D2) Mul(y D2) D2 {
	two := DyadicFromInt64(2)
	a := x.A.Mul(y.A).Add(two.Mul(x.B.Mul(y.B)))
	b := x.A.Mul(y.B).Add(x.B.Mul(y.A))
	return NewD2(a, b)
}

// Adj2 is the sqrt2-conjugate: a - b*sqrt2.
func (x D2) Adj2() D2 { return NewD2(x.A, x.B.Neg()) }

// Norm returns a^2 - 2b^2 as a Dyadic.
func (x D2) Norm() Dyadic {
	two := DyadicFromInt64(2)
	return x.A.Mul(x.A).Sub(two.Mul(x.B.Mul(x.B)))
}

func (x D2) Equal(y D2) bool { return x.A.Equal(y.A) && x.B.Equal(y.B) }

func (x D2) IsZero() bool { return x.A.Sign() == 0 && x.B.Sign() == 0 }

// ToBigFloat evaluates x as a real number at the given precision.
func (x D2) ToBigFloat(prec uint) *big.Float {
	sqrt2 := new(big.Float).SetPrec(prec).Sqrt(big.NewFloat(2))
	a := x.A.ToBigFloat(prec)
	b := x.B.ToBigFloat(prec)
	return a.Add(a, new(big.Float).SetPrec(prec).Mul(b, sqrt2))
}

// DivSqrt divides x by sqrt2: (a+b*sqrt2)/sqrt2 = b + (a/2)*sqrt2.
func (x D2) DivSqrt() D2 {
	return NewD2(x.B, x.A.MulPow2(-1))
}

// MulSqrt multiplies x by sqrt2: (a+b*sqrt2)*sqrt2 = 2b + a*sqrt2.
func (x D2) MulSqrt() D2 {
	two := DyadicFromInt64(2)
	return NewD2(two.Mul(x.B), x.A)
}

// ToZ2 converts x to Z2, panicking if x has a fractional part; used once the
// diophantine solver has cleared denominators.
func (x D2) ToZ2() Z2 {
	if x.A.DenExp() != 0 || x.B.DenExp() != 0 {
		panic("ring: D2 value is not an integer element of Z[sqrt2]")
	}
	return NewZ2(x.A.Num(), x.B.Num())
}

func (x D2) String() string { return "(" + x.A.String() + ")+(" + x.B.String() + ")*sqrt2" }
