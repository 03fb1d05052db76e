package gate

import (
	"github.com/quantumlang/gridsynth/internal/linalg"
	"github.com/quantumlang/gridsynth/internal/ring"
)

var (
	zeroD2 = ring.ZeroD2()
	oneD2  = ring.OneD2()
	negD2  = oneD2.Neg()

	// invSqrt2 is 1/sqrt2, the Hadamard normalization factor.
	invSqrt2    = ring.InvSqrt2D2
	negInvSqrt2 = invSqrt2.Neg()

	// omegaRe/omegaIm are the real/imaginary D[sqrt2] parts of
	// omega = exp(i*pi/4) = 1/sqrt2 + i/sqrt2.
	omegaRe = invSqrt2
	omegaIm = invSqrt2

	zeroCD2 = ring.NewCD2(zeroD2, zeroD2)
	oneCD2  = ring.NewCD2(oneD2, zeroD2)
	negCD2  = ring.NewCD2(negD2, zeroD2)
	iCD2    = ring.NewCD2(zeroD2, oneD2)
	negICD2 = ring.NewCD2(zeroD2, negD2)

	// omegaCD2 is exp(i*pi/4), omega3CD2 is exp(3i*pi/4) = conj(omega)*(-1).
	omegaCD2  = ring.NewCD2(omegaRe, omegaIm)
	omega3CD2 = ring.NewCD2(negInvSqrt2, invSqrt2)
	// omegaInvCD2 = conj(omega) = exp(-i*pi/4) = -omega^3.
	omegaInvCD2 = ring.NewCD2(invSqrt2, negInvSqrt2)

	invSqrt2CD2    = ring.NewCD2(invSqrt2, zeroD2)
	negInvSqrt2CD2 = ring.NewCD2(negInvSqrt2, zeroD2)
)

// MatI, MatH, ... are the exact unitary matrices of the eight Clifford+T
// generators, over D[sqrt2][i].
var (
	MatI = New(oneCD2, zeroCD2, zeroCD2, oneCD2)
	MatX = New(zeroCD2, oneCD2, oneCD2, zeroCD2)
	MatY = New(zeroCD2, negICD2, iCD2, zeroCD2)
	MatZ = New(oneCD2, zeroCD2, zeroCD2, negCD2)
	MatH = New(invSqrt2CD2, invSqrt2CD2, invSqrt2CD2, negInvSqrt2CD2)
	MatS = New(oneCD2, zeroCD2, zeroCD2, iCD2)
	MatT = New(oneCD2, zeroCD2, zeroCD2, omegaCD2)
	MatW = New(omegaCD2, zeroCD2, zeroCD2, omegaCD2)
	MatTDag = New(oneCD2, zeroCD2, zeroCD2, omegaInvCD2)
)

// New builds an exact unitary matrix from its four CD2 entries.
func New(m00, m01, m10, m11 ring.CD2) Mat {
	return linalg.New(m00, m01, m10, m11)
}
