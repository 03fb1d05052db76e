package ring

import "math/big"

// Z2 is an element a + b*sqrt2 of Z[sqrt2].
type Z2 struct {
	A, B *big.Int
}

// NewZ2 builds a + b*sqrt2.
func NewZ2(a, b *big.Int) Z2 {
	return Z2{A: new(big.Int).Set(a), B: new(big.Int).Set(b)}
}

// Z2FromInt64 builds an integer element of Z[sqrt2].
func Z2FromInt64(a int64) Z2 { return NewZ2(big.NewInt(a), big.NewInt(0)) }

// ZeroZ2 is the additive identity.
func ZeroZ2() Z2 { return Z2FromInt64(0) }

// OneZ2 is the multiplicative identity.
func OneZ2() Z2 { return Z2FromInt64(1) }

func (x Z2) Add(y Z2) Z2 { return NewZ2(new(big.Int).Add(x.A, y.A), new(big.Int).Add(x.B, y.B)) }
func (x Z2) Sub(y Z2) Z2 { return NewZ2(new(big.Int).Sub(x.A, y.A), new(big.Int).Sub(x.B, y.B)) }
func (x Z2) Neg() Z2     { return NewZ2(new(big.Int).Neg(x.A), new(big.Int).Neg(x.B)) }

// Mul returns x*y in Z[sqrt2]: (a1+b1 r)(a2+b2 r) = (a1a2+2b1b2) + (a1b2+a2b1) r.
func (x Z2) Mul(y Z2) Z2 {
	a := new(big.Int).Add(
		new(big.Int).Mul(x.A, y.A),
		new(big.Int).Mul(big.NewInt(2), new(big.Int).Mul(x.B, y.B)),
	)
	b := new(big.Int).Add(
		new(big.Int).Mul(x.A, y.B),
		new(big.Int).Mul(x.B, y.A),
	)
	return NewZ2(a, b)
}

// Adj2 is the sqrt2-conjugate: a - b*sqrt2.
func (x Z2) Adj2() Z2 { return NewZ2(x.A, new(big.Int).Neg(x.B)) }

// Norm returns a^2 - 2b^2, the Galois norm down to Z.
func (x Z2) Norm() *big.Int {
	a2 := new(big.Int).Mul(x.A, x.A)
	b2 := new(big.Int).Mul(big.NewInt(2), new(big.Int).Mul(x.B, x.B))
	return a2.Sub(a2, b2)
}

func (x Z2) Equal(y Z2) bool { return x.A.Cmp(y.A) == 0 && x.B.Cmp(y.B) == 0 }

func (x Z2) IsZero() bool { return x.A.Sign() == 0 && x.B.Sign() == 0 }

// ToBigFloat evaluates x as a real number at the given precision.
func (x Z2) ToBigFloat(prec uint) *big.Float {
	sqrt2 := new(big.Float).SetPrec(prec).Sqrt(big.NewFloat(2))
	a := new(big.Float).SetPrec(prec).SetInt(x.A)
	b := new(big.Float).SetPrec(prec).SetInt(x.B)
	return a.Add(a, b.Mul(b, sqrt2))
}

func (x Z2) String() string { return x.A.String() + "+" + x.B.String() + "*sqrt2" }

// DivSqrt divides x by sqrt2 exactly, requiring x to be divisible by sqrt2
// (i.e. A must be even): (a + b*sqrt2)/sqrt2 = b + (a/2)*sqrt2.
func (x Z2) DivSqrt() Z2 {
	a := new(big.Int).Rsh(new(big.Int).Set(x.A), 1)
	return NewZ2(x.B, a)
}

// MulSqrt multiplies x by sqrt2: (a + b*sqrt2)*sqrt2 = 2b + a*sqrt2.
func (x Z2) MulSqrt() Z2 {
	return NewZ2(new(big.Int).Mul(big.NewInt(2), x.B), x.A)
}
