// Package gridsolver implements the one- and two-dimensional grid problem
// solvers of 1403.2975 sections 4 and 5: enumerating elements of Z[sqrt2]
// (and, for the 2D case, Z[omega]) that land inside a pair of intervals, or
// inside a pair of ellipses, respectively.
package gridsolver

import (
	"math/big"

	"github.com/quantumlang/gridsynth/internal/bigreal"
	"github.com/quantumlang/gridsynth/internal/ring"
)

// oneDimConversion records which balancing step was applied to the search
// box, so found solutions can be rescaled back into the caller's original
// coordinates once enumeration in the balanced box is done.
type oneDimConversion int

const (
	doLambda oneDimConversion = iota
	doInvLambda
)

// OneDimGridSolver finds every a + b*sqrt2 in Z[sqrt2] such that
// x0 <= a+b*sqrt2 <= x1 and y0 <= a-b*sqrt2 <= y1.
type OneDimGridSolver struct {
	x0, x1, y0, y1 bigreal.Real
	history        []oneDimConversion
	solutions      []ring.Z2
}

// NewOneDimGridSolver builds a solver for the given box.
func NewOneDimGridSolver(x0, x1, y0, y1 bigreal.Real) *OneDimGridSolver {
	return &OneDimGridSolver{x0: x0, x1: x1, y0: y0, y1: y1}
}

// GetSolutions returns every solution found by EnumerateAllSolutions.
func (s *OneDimGridSolver) GetSolutions() []ring.Z2 { return s.solutions }

func width(lo, hi bigreal.Real) bigreal.Real { return hi.Sub(lo) }

var lambdaFloat = bigreal.FromInt64(1).Add(bigreal.FromInt64(2).Sqrt())
var invLambdaFloat = bigreal.FromInt64(1).Neg().Add(bigreal.FromInt64(2).Sqrt())

func (s *OneDimGridSolver) doLambda() {
	s.x0, s.x1 = s.x0.Mul(lambdaFloat), s.x1.Mul(lambdaFloat)
	// The conjugate of lambda is 1-sqrt2 = -1/lambda.
	s.y0, s.y1 = s.y0.Mul(invLambdaFloat.Neg()), s.y1.Mul(invLambdaFloat.Neg())
	if s.y0.Cmp(s.y1) > 0 {
		s.y0, s.y1 = s.y1, s.y0
	}
	s.history = append(s.history, doLambda)
}

func (s *OneDimGridSolver) doInvLambda() {
	s.x0, s.x1 = s.x0.Mul(invLambdaFloat), s.x1.Mul(invLambdaFloat)
	// The conjugate of 1/lambda is -1-sqrt2 = -lambda.
	s.y0, s.y1 = s.y0.Mul(lambdaFloat.Neg()), s.y1.Mul(lambdaFloat.Neg())
	if s.y0.Cmp(s.y1) > 0 {
		s.y0, s.y1 = s.y1, s.y0
	}
	s.history = append(s.history, doInvLambda)
}

// balance repeatedly scales the box by lambda or 1/lambda until the x- and
// y-widths are within a constant factor of each other, which bounds the
// number of lattice points inside the resulting box by a small constant
// independent of how small the original epsilon was.
func (s *OneDimGridSolver) balance() {
	const maxRounds = 4096
	four := bigreal.FromInt64(4)
	for i := 0; i < maxRounds; i++ {
		dx := width(s.x0, s.x1)
		dy := width(s.y0, s.y1)
		if dx.Sign() <= 0 || dy.Sign() <= 0 {
			return
		}
		ratio := dx.Quo(dy)
		if ratio.Cmp(four) > 0 {
			s.doInvLambda()
			continue
		}
		invRatio := dy.Quo(dx)
		if invRatio.Cmp(four) > 0 {
			s.doLambda()
			continue
		}
		return
	}
}

// enumerateBalancedBox performs the bounded direct search once the box has
// been balanced: a ranges over every integer whose interval of compatible
// b values is non-empty, and b ranges over the intersection of the two
// constraints translated through a.
func (s *OneDimGridSolver) enumerateBalancedBox() []ring.Z2 {
	sqrt2 := bigreal.FromInt64(2).Sqrt()
	// a = (alpha + conj(alpha))/2 with alpha in [x0, x1], conj in [y0, y1].
	two := bigreal.FromInt64(2)
	aLo := s.x0.Add(s.y0).Quo(two).Floor()
	aHi := s.x1.Add(s.y1).Quo(two).Ceil()

	var out []ring.Z2
	const maxA = 1_000_000
	count := 0
	for a := aLo; a.Cmp(aHi) <= 0 && count < maxA; a = a.Add(bigreal.FromInt64(1)) {
		count++
		// b*sqrt2 in [x0-a, x1-a] and -b*sqrt2 in [y0-a, y1-a].
		bLoX := s.x0.Sub(a).Quo(sqrt2)
		bHiX := s.x1.Sub(a).Quo(sqrt2)
		bLoY := a.Sub(s.y1).Quo(sqrt2)
		bHiY := a.Sub(s.y0).Quo(sqrt2)

		bLo := bLoX
		if bLoY.Cmp(bLo) > 0 {
			bLo = bLoY
		}
		bHi := bHiX
		if bHiY.Cmp(bHi) < 0 {
			bHi = bHiY
		}
		if bLo.Cmp(bHi) > 0 {
			continue
		}
		bLoInt := bLo.Ceil()
		bHiInt := bHi.Floor()
		for b := bLoInt; b.Cmp(bHiInt) <= 0; b = b.Add(bigreal.FromInt64(1)) {
			aBig, _ := a.Float().Int(nil)
			bBig, _ := b.Float().Int(nil)
			out = append(out, ring.NewZ2(aBig, bBig))
		}
	}
	return out
}

// unscaleZ2 maps a solution found in the balanced box back to the solver's
// original coordinates by replaying the recorded history in reverse,
// multiplying by lambda or 1/lambda exactly in Z[sqrt2] at every step.
func unscaleZ2(z ring.Z2, history []oneDimConversion) ring.Z2 {
	for i := len(history) - 1; i >= 0; i-- {
		switch history[i] {
		case doLambda:
			z = z.Mul(ring.InvLambdaZ2)
		case doInvLambda:
			z = z.Mul(ring.LambdaZ2)
		}
	}
	return z
}

// EnumerateAllSolutions finds every solution in the solver's original box.
func (s *OneDimGridSolver) EnumerateAllSolutions() {
	saved := *s
	s.balance()
	found := s.enumerateBalancedBox()
	history := s.history
	*s = saved

	seen := make(map[string]bool)
	for _, z := range found {
		orig := unscaleZ2(z, history)
		if s.isValidSolution(orig) {
			key := orig.A.String() + "," + orig.B.String()
			if !seen[key] {
				seen[key] = true
				s.solutions = append(s.solutions, orig)
			}
		}
	}
}

func floatFromBigInt(n *big.Int) bigreal.Real {
	return bigreal.New(new(big.Float).SetPrec(bigreal.Prec).SetInt(n))
}

func (s *OneDimGridSolver) isValidSolution(z ring.Z2) bool {
	sqrt2 := bigreal.FromInt64(2).Sqrt()
	aR := floatFromBigInt(z.A)
	bR := floatFromBigInt(z.B)
	plus := aR.Add(bR.Mul(sqrt2))
	minus := aR.Sub(bR.Mul(sqrt2))
	return plus.Cmp(s.x0) >= 0 && plus.Cmp(s.x1) <= 0 && minus.Cmp(s.y0) >= 0 && minus.Cmp(s.y1) <= 0
}
