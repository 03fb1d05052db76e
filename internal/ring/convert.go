package ring

import "math/big"

// ToD2 returns the real part of a Z[w] element as a D[sqrt2] value.
func ToD2(x ZOmega) D2 { return x.Real() }

// ToCD2 returns x embedded as a complex D[sqrt2] value.
func ToCD2(x ZOmega) CD2 { return NewCD2(x.Real(), x.Imag()) }

// ToCD2FromDOmega returns x embedded as a complex D[sqrt2] value.
func ToCD2FromDOmega(x DOmega) CD2 { return NewCD2(x.Real(), x.Imag()) }

// ZOmegaFromZ2 embeds a + b*sqrt2 into Z[w] via the identity sqrt2 = w - w^3.
func ZOmegaFromZ2(z Z2) ZOmega {
	zero := new(big.Int)
	return NewZOmega(z.A, z.B, zero, new(big.Int).Neg(z.B))
}
