package ring

import "math/big"

// CZ2 is a complex element re + im*i of Z[sqrt2][i].
type CZ2 struct {
	Re, Im Z2
}

// NewCZ2 builds re + im*i.
func NewCZ2(re, im Z2) CZ2 { return CZ2{Re: re, Im: im} }

// ZeroCZ2 is the additive identity.
func ZeroCZ2() CZ2 { return CZ2{Re: ZeroZ2(), Im: ZeroZ2()} }

func (x CZ2) Add(y CZ2) CZ2 { return NewCZ2(x.Re.Add(y.Re), x.Im.Add(y.Im)) }
func (x CZ2) Sub(y CZ2) CZ2 { return NewCZ2(x.Re.Sub(y.Re), x.Im.Sub(y.Im)) }
func (x CZ2) Neg() CZ2      { return NewCZ2(x.Re.Neg(), x.Im.Neg()) }

// Mul returns x*y: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (x CZ2) Mul(y CZ2) CZ2 {
	re := x.Re.Mul(y.Re).Sub(x.Im.Mul(y.Im))
	im := x.Re.Mul(y.Im).Add(x.Im.Mul(y.Re))
	return NewCZ2(re, im)
}

// Conj is the complex conjugate.
func (x CZ2) Conj() CZ2 { return NewCZ2(x.Re, x.Im.Neg()) }

// Adj2 is the sqrt2-conjugate applied componentwise.
func (x CZ2) Adj2() CZ2 { return NewCZ2(x.Re.Adj2(), x.Im.Adj2()) }

func (x CZ2) Equal(y CZ2) bool { return x.Re.Equal(y.Re) && x.Im.Equal(y.Im) }

// CD2 is a complex element re + im*i of D[sqrt2][i].
type CD2 struct {
	Re, Im D2
}

// NewCD2 builds re + im*i.
func NewCD2(re, im D2) CD2 { return CD2{Re: re, Im: im} }

// ZeroCD2 is the additive identity.
func ZeroCD2() CD2 { return CD2{Re: ZeroD2(), Im: ZeroD2()} }

// CD2FromCZ2 lifts an integer complex element into D[sqrt2][i].
func CD2FromCZ2(x CZ2) CD2 { return NewCD2(D2FromZ2(x.Re), D2FromZ2(x.Im)) }

func (x CD2) Add(y CD2) CD2 { return NewCD2(x.Re.Add(y.Re), x.Im.Add(y.Im)) }
func (x CD2) Sub(y CD2) CD2 { return NewCD2(x.Re.Sub(y.Re), x.Im.Sub(y.Im)) }
func (x CD2) Neg() CD2      { return NewCD2(x.Re.Neg(), x.Im.Neg()) }

// Mul returns x*y: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (x CD2) Mul(y CD2) CD2 {
	re := x.Re.Mul(y.Re).Sub(x.Im.Mul(y.Im))
	im := x.Re.Mul(y.Im).Add(x.Im.Mul(y.Re))
	return NewCD2(re, im)
}

// Conj is the complex conjugate.
func (x CD2) Conj() CD2 { return NewCD2(x.Re, x.Im.Neg()) }

// Adj2 is the sqrt2-conjugate applied componentwise.
func (x CD2) Adj2() CD2 { return NewCD2(x.Re.Adj2(), x.Im.Adj2()) }

// Real returns the real part.
func (x CD2) Real() D2 { return x.Re }

// Imag returns the imaginary part.
func (x CD2) Imag() D2 { return x.Im }

// Norm returns x*conj(x), a real element of D[sqrt2]: re^2 + im^2.
func (x CD2) Norm() D2 { return x.Re.Mul(x.Re).Add(x.Im.Mul(x.Im)) }

func (x CD2) Equal(y CD2) bool { return x.Re.Equal(y.Re) && x.Im.Equal(y.Im) }

func (x CD2) IsZero() bool { return x.Re.IsZero() && x.Im.IsZero() }

// ToComplexBigFloat evaluates x into a pair of big.Float (real, imag) at the
// given precision.
func (x CD2) ToComplexBigFloat(prec uint) (re, im *big.Float) {
	return x.Re.ToBigFloat(prec), x.Im.ToBigFloat(prec)
}

func (x CD2) String() string { return "(" + x.Re.String() + ")+(" + x.Im.String() + ")i" }
