package linalg

import (
	"math/big"

	"github.com/quantumlang/gridsynth/internal/ring"
)

// FloatMatrix is a 2x2 matrix of arbitrary-precision reals, used only for
// diagnostics and for geometric operations that are inherently approximate
// (bounding boxes, ellipse containment) -- never for correctness-affecting
// equality or ordering of exact ring values.
type FloatMatrix struct {
	M00, M01, M10, M11 *big.Float
}

// ComplexFloat is a complex number backed by a pair of arbitrary-precision
// reals.
type ComplexFloat struct {
	Re, Im *big.Float
}

// ComplexFloatMatrix is a 2x2 matrix of ComplexFloat entries.
type ComplexFloatMatrix struct {
	M00, M01, M10, M11 ComplexFloat
}

// ToMat evaluates a real D[sqrt2] matrix at the given precision.
func ToMat(m Matrix[ring.D2], prec uint) FloatMatrix {
	return FloatMatrix{
		M00: m.M00.ToBigFloat(prec), M01: m.M01.ToBigFloat(prec),
		M10: m.M10.ToBigFloat(prec), M11: m.M11.ToBigFloat(prec),
	}
}

// ToMatC evaluates a complex D[sqrt2] matrix at the given precision.
func ToMatC(m Matrix[ring.CD2], prec uint) ComplexFloatMatrix {
	cast := func(x ring.CD2) ComplexFloat {
		re, im := x.ToComplexBigFloat(prec)
		return ComplexFloat{Re: re, Im: im}
	}
	return ComplexFloatMatrix{
		M00: cast(m.M00), M01: cast(m.M01),
		M10: cast(m.M10), M11: cast(m.M11),
	}
}
