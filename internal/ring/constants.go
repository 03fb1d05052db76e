package ring

import "math/big"

var (
	// LambdaZ2 is the silver ratio 1+sqrt2, the fundamental unit of Z[sqrt2].
	LambdaZ2 = NewZ2(big.NewInt(1), big.NewInt(1))
	// InvLambdaZ2 is (1+sqrt2)^-1 = -1+sqrt2.
	InvLambdaZ2 = NewZ2(big.NewInt(-1), big.NewInt(1))
	// SqrtZ2 is sqrt2 itself as an element of Z[sqrt2].
	SqrtZ2 = NewZ2(big.NewInt(0), big.NewInt(1))

	// LambdaD2 and InvLambdaD2 mirror LambdaZ2/InvLambdaZ2 over D[sqrt2].
	LambdaD2    = D2FromZ2(LambdaZ2)
	InvLambdaD2 = D2FromZ2(InvLambdaZ2)
	SqrtD2      = D2FromZ2(SqrtZ2)

	// OmegaZOmegaConst is w = exp(i*pi/4) in Z[w].
	OmegaZOmegaConst = OmegaZOmega()
	// Omega3ZOmega is w^3.
	Omega3ZOmega = func() ZOmega {
		z, o := big.NewInt(0), big.NewInt(1)
		return NewZOmega(z, z, z, o)
	}()
	// DeltaZOmega is 1-w, a generator used when factoring the prime 2 in the
	// diophantine solver (Delta^2 is sqrt2 times a unit, so 2 is Delta^4 up
	// to a unit).
	DeltaZOmega = OneZOmega().Sub(OmegaZOmegaConst)

	// InvSqrt2D2 is 1/sqrt2 = sqrt2/2, the normalization factor in the
	// Hadamard gate.
	InvSqrt2D2 = NewD2(ZeroDyadic(), DyadicFromInt64(1).MulPow2(-1))
)
