package ring

// DOmega is an element x0 + x1*w + x2*w^2 + x3*w^3 of D[w], the ring of
// dyadic fractions adjoined with the eighth root of unity w.
type DOmega struct {
	X0, X1, X2, X3 Dyadic
}

// NewDOmega builds x0 + x1*w + x2*w^2 + x3*w^3.
func NewDOmega(x0, x1, x2, x3 Dyadic) DOmega {
	return DOmega{X0: x0, X1: x1, X2: x2, X3: x3}
}

// DOmegaFromZOmega lifts an integer element into D[w].
func DOmegaFromZOmega(x ZOmega) DOmega {
	return NewDOmega(
		NewDyadic(x.X0, 0), NewDyadic(x.X1, 0), NewDyadic(x.X2, 0), NewDyadic(x.X3, 0),
	)
}

// ZeroDOmega is the additive identity.
func ZeroDOmega() DOmega {
	z := ZeroDyadic()
	return NewDOmega(z, z, z, z)
}

func (x DOmega) Add(y DOmega) DOmega {
	return NewDOmega(x.X0.Add(y.X0), x.X1.Add(y.X1), x.X2.Add(y.X2), x.X3.Add(y.X3))
}

func (x DOmega) Sub(y DOmega) DOmega {
	return NewDOmega(x.X0.Sub(y.X0), x.X1.Sub(y.X1), x.X2.Sub(y.X2), x.X3.Sub(y.X3))
}

func (x DOmega) Neg() DOmega {
	return NewDOmega(x.X0.Neg(), x.X1.Neg(), x.X2.Neg(), x.X3.Neg())
}

// Mul returns x*y modulo the relation w^4 = -1.
func (x DOmega) Mul(y DOmega) DOmega {
	z0 := x.X0.Mul(y.X0).Sub(x.X1.Mul(y.X3)).Sub(x.X2.Mul(y.X2)).Sub(x.X3.Mul(y.X1))
	z1 := x.X0.Mul(y.X1).Add(x.X1.Mul(y.X0)).Sub(x.X2.Mul(y.X3)).Sub(x.X3.Mul(y.X2))
	z2 := x.X0.Mul(y.X2).Add(x.X1.Mul(y.X1)).Add(x.X2.Mul(y.X0)).Sub(x.X3.Mul(y.X3))
	z3 := x.X0.Mul(y.X3).Add(x.X1.Mul(y.X2)).Add(x.X2.Mul(y.X1)).Add(x.X3.Mul(y.X0))
	return NewDOmega(z0, z1, z2, z3)
}

// Adj is the complex conjugate: conj(w) = -w^3.
func (x DOmega) Adj() DOmega {
	return NewDOmega(x.X0, x.X3.Neg(), x.X2.Neg(), x.X1.Neg())
}

// Adj2 is the sqrt2-conjugate.
func (x DOmega) Adj2() DOmega {
	return NewDOmega(x.X0, x.X1.Neg(), x.X2, x.X3.Neg())
}

func (x DOmega) Equal(y DOmega) bool {
	return x.X0.Equal(y.X0) && x.X1.Equal(y.X1) && x.X2.Equal(y.X2) && x.X3.Equal(y.X3)
}

func (x DOmega) IsZero() bool {
	return x.X0.Sign() == 0 && x.X1.Sign() == 0 && x.X2.Sign() == 0 && x.X3.Sign() == 0
}

// Real returns the D2 real part: Re(x) = x0 + (x1-x3)*sqrt2/2.
func (x DOmega) Real() D2 {
	half := DyadicFromInt64(1).MulPow2(-1)
	return NewD2(x.X0, x.X1.Sub(x.X3).Mul(half))
}

// Imag returns the D2 imaginary part: Im(x) = x2 + (x1+x3)*sqrt2/2.
func (x DOmega) Imag() D2 {
	half := DyadicFromInt64(1).MulPow2(-1)
	return NewD2(x.X2, x.X1.Add(x.X3).Mul(half))
}

// ToZOmega converts x to ZOmega, panicking if any coefficient has a
// fractional part.
func (x DOmega) ToZOmega() ZOmega {
	check := func(d Dyadic) {
		if d.DenExp() != 0 {
			panic("ring: DOmega value is not an integer element of Z[w]")
		}
	}
	check(x.X0)
	check(x.X1)
	check(x.X2)
	check(x.X3)
	return NewZOmega(x.X0.Num(), x.X1.Num(), x.X2.Num(), x.X3.Num())
}

func (x DOmega) String() string {
	return x.X0.String() + "+" + x.X1.String() + "w+" + x.X2.String() + "w^2+" + x.X3.String() + "w^3"
}
