// Package gridop implements FindGridOperator, the ellipse-pair reduction
// step from 1403.2975 section 6 that builds a grid operator G in
// GL2(D[sqrt2]) turning two arbitrary bounding ellipses into ellipses close
// enough to circles that the lattice enumerator in internal/gridsolver can
// search them directly.
package gridop

import (
	"math/big"

	"github.com/quantumlang/gridsynth/internal/bigreal"
	"github.com/quantumlang/gridsynth/internal/geom"
	"github.com/quantumlang/gridsynth/internal/linalg"
	"github.com/quantumlang/gridsynth/internal/ring"
)

// Op is a 2x2 grid operator over D[sqrt2].
type Op = linalg.Matrix[ring.D2]

func d2i(n int64) ring.D2 { return ring.D2FromInt64(n) }

func opNew(a, b, c, d ring.D2) Op { return linalg.New(a, b, c, d) }

// halfSqrt is sqrt2/2, the normalization factor the R and K steps are built
// from (Ross-Selinger's "half-sqrt" grid operators).
var halfSqrt = ring.InvSqrt2D2

// step vocabulary: the named operators the reduction loop's region partition
// picks from at every round (1403.2975 section 6.2, lemma 24). Z and X are
// involutions and Shift(n) is a diagonal lambda-power scaling, used to
// normalize bias and sign; R and K are the two
// order-eight "rotation-like" steps; A(n) and B(n) are integer shears used
// once the pair is axis-aligned enough that a shear reduces skew faster than
// a rotation would.
var (
	stepZ = opNew(d2i(1), d2i(0), d2i(0), d2i(-1))
	stepX = opNew(d2i(0), d2i(1), d2i(1), d2i(0))
	stepR = opNew(halfSqrt, halfSqrt.Neg(), halfSqrt, halfSqrt)
	stepK = opNew(halfSqrt.Sub(d2i(1)), halfSqrt.Neg(), halfSqrt.Add(d2i(1)), halfSqrt)
)

// stepShift(n) is the diagonal multiply by (lambda^n, lambda^-n), built
// exactly as Z[sqrt2] powers rather than as a float approximation.
func stepShift(n int64) Op {
	var lam, invLam ring.Z2
	if n >= 0 {
		lam = ring.PowZ2(ring.LambdaZ2, uint(n))
		invLam = ring.PowZ2(ring.InvLambdaZ2, uint(n))
	} else {
		lam = ring.PowZ2(ring.InvLambdaZ2, uint(-n))
		invLam = ring.PowZ2(ring.LambdaZ2, uint(-n))
	}
	return opNew(ring.D2FromZ2(lam), d2i(0), d2i(0), ring.D2FromZ2(invLam))
}

func stepA(n int64) Op { return opNew(d2i(1), d2i(-2*n), d2i(0), d2i(1)) }

func stepB(n int64) Op {
	nSqrt2 := ring.NewD2(ring.ZeroDyadic(), ring.DyadicFromInt64(n))
	return opNew(d2i(1), d2i(0), nSqrt2, d2i(1))
}

// EllipsePair holds the two ellipses a reduction round acts on, in
// approximate (bigreal) form. The exact D[sqrt2] operator accumulated
// alongside them is what FindGridOperator returns once skew drops below
// the threshold the lattice enumerator can search directly.
type EllipsePair struct {
	E1, E2 geom.Ellipse
}

// pairState is the exponent-format view of an EllipsePair that the named
// step vocabulary and its region partition operate on: each ellipse's
// diagonal shape-matrix entries (a, d) are tracked as (e, z) with
// e^2 = a*d, z = log_lambda(d/e), and the off-diagonal entry b is carried
// directly (1403.2975 section 6.1).
type pairState struct {
	e1, b1, z1 bigreal.Real
	e2, b2, z2 bigreal.Real
}

func toPairState(p EllipsePair) pairState {
	ef1 := geom.ToExponentFormat(p.E1.A, p.E1.Dd)
	ef2 := geom.ToExponentFormat(p.E2.A, p.E2.Dd)
	return pairState{
		e1: ef1.E, b1: p.E1.B, z1: ef1.Z,
		e2: ef2.E, b2: p.E2.B, z2: ef2.Z,
	}
}

// toEllipsePair reconstructs the shape matrices from exponent format,
// keeping the centers of the original pair fixed: the reduction steps only
// ever act on the shape matrices, never on the ellipses' positions.
func (s pairState) toEllipsePair(centers EllipsePair) EllipsePair {
	a1, d1 := (geom.ExponentFormat{E: s.e1, Z: s.z1}).ToNormalFormat()
	a2, d2 := (geom.ExponentFormat{E: s.e2, Z: s.z2}).ToNormalFormat()
	return EllipsePair{
		E1: geom.NewEllipse(a1, s.b1, d1, centers.E1.CenterX, centers.E1.CenterY),
		E2: geom.NewEllipse(a2, s.b2, d2, centers.E2.CenterX, centers.E2.CenterY),
	}
}

func (s pairState) skew() bigreal.Real { return s.b1.Mul(s.b1).Add(s.b2.Mul(s.b2)) }
func (s pairState) bias() bigreal.Real { return s.z2.Sub(s.z1) }

// skewThreshold is the point below which the 1D/2D lattice enumerators in
// internal/gridsolver can search the remaining region directly without
// risking an unbounded candidate count.
const skewThreshold = 15.0

var (
	lambdaReal = bigreal.FromInt64(1).Add(bigreal.FromInt64(2).Sqrt())
	sqrt2Real  = bigreal.FromInt64(2).Sqrt()
	one        = bigreal.FromInt64(1)
	two        = bigreal.FromInt64(2)
	four       = bigreal.FromInt64(4)
)

func mustReal(s string) bigreal.Real {
	r, err := bigreal.FromString(s)
	if err != nil {
		panic("gridop: bad constant literal " + s)
	}
	return r
}

// Region-partition thresholds from FindGridOperator::Step (1403.2975
// section 6.2).
var (
	thresholdM08 = mustReal("-0.8")
	thresholdM02 = mustReal("-0.2")
	thresholdP03 = mustReal("0.3")
	thresholdP08 = mustReal("0.8")
)

func sinhL(x bigreal.Real) bigreal.Real {
	return lambdaReal.Pow(x).Sub(lambdaReal.Pow(x.Neg())).Quo(two)
}

func coshL(x bigreal.Real) bigreal.Real {
	return lambdaReal.Pow(x).Add(lambdaReal.Pow(x.Neg())).Quo(two)
}

// toInt64 truncates a bigreal.Real known to already be an integer (the
// result of Floor/Ceil) to an int64.
func toInt64(x bigreal.Real) int64 {
	i := new(big.Int)
	x.Float().Int(i)
	return i.Int64()
}

func minReal(a, b bigreal.Real) bigreal.Real {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}

// reduction replays one call to FindGridOperator::Step: Shift, Z and X are
// each applied unconditionally but are no-ops unless their trigger
// condition holds, then exactly one of R, K, A(n), B(n) is chosen by the
// exponent-format region partition. ops is returned in application order.
type reduction struct {
	state pairState
	ops   []Op
}

func (r *reduction) apply(op Op) { r.ops = append(r.ops, op) }

// shift normalizes bias (z2-z1) back into [-1, 1] by an even diagonal
// rescaling; an odd shift also flips the sign of b2, which R/K/A/B alone
// never need to correct for.
func (r *reduction) shift() {
	bias := r.state.bias()
	if bias.Cmp(one.Neg()) >= 0 && bias.Cmp(one) <= 0 {
		return
	}
	n := toInt64(one.Sub(bias).Quo(two).Floor())
	r.state.z1 = r.state.z1.Sub(bigreal.FromInt64(n))
	r.state.z2 = r.state.z2.Add(bigreal.FromInt64(n))
	if n%2 != 0 {
		r.state.b2 = r.state.b2.Neg()
	}
	r.apply(stepShift(n))
}

// z flips both ellipses' b sign so that b2 is non-negative.
func (r *reduction) z() {
	if r.state.b2.Sign() < 0 {
		r.state.b1 = r.state.b1.Neg()
		r.state.b2 = r.state.b2.Neg()
		r.apply(stepZ)
	}
}

// x flips both ellipses' z sign so that z1+z2 is non-negative.
func (r *reduction) x() {
	if r.state.z1.Add(r.state.z2).Sign() < 0 {
		r.state.z1 = r.state.z1.Neg()
		r.state.z2 = r.state.z2.Neg()
		r.apply(stepX)
	}
}

func (r *reduction) applyR() {
	{
		s := &r.state
		b := s.e1.Mul(sinhL(s.z1))
		x := s.e1.Mul(coshL(s.z1)).Add(s.b1)
		y := s.e1.Mul(coshL(s.z1)).Sub(s.b1)
		ef := geom.ToExponentFormat(x, y)
		s.e1, s.z1 = ef.E, ef.Z
		s.b1 = b
	}
	{
		s := &r.state
		b := s.e2.Mul(sinhL(s.z2))
		x := s.e2.Mul(coshL(s.z2)).Add(s.b2)
		y := s.e2.Mul(coshL(s.z2)).Sub(s.b2)
		ef := geom.ToExponentFormat(x, y)
		s.e2, s.z2 = ef.E, ef.Z
		s.b2 = b
	}
	r.apply(stepR)
}

func (r *reduction) applyK() {
	{
		s := &r.state
		b := s.e1.Mul(coshL(s.z1.Add(one))).Sub(sqrt2Real.Mul(s.b1))
		x := s.e1.Mul(coshL(s.z1.Add(two))).Sub(s.b1)
		y := s.e1.Mul(coshL(s.z1)).Sub(s.b1)
		ef := geom.ToExponentFormat(x, y)
		s.e1, s.z1 = ef.E, ef.Z
		s.b1 = b
	}
	{
		s := &r.state
		b := sqrt2Real.Mul(s.b2).Sub(s.e2.Mul(coshL(s.z2.Sub(one))))
		x := s.e2.Mul(coshL(s.z2.Sub(two))).Sub(s.b2)
		y := s.e2.Mul(coshL(s.z2)).Sub(s.b2)
		ef := geom.ToExponentFormat(x, y)
		s.e2, s.z2 = ef.E, ef.Z
		s.b2 = b
	}
	r.apply(stepK)
}

func (r *reduction) applyA() {
	n := toInt64(lambdaReal.Pow(minReal(r.state.z1, r.state.z2)).Quo(two).Floor())
	if n < 1 {
		n = 1
	}
	m := bigreal.FromInt64(n)
	{
		s := &r.state
		x := s.e1.Mul(lambdaReal.Pow(s.z1.Neg()))
		b := s.b1.Sub(two.Mul(m).Mul(x))
		y := four.Mul(m).Mul(m).Mul(x).Sub(four.Mul(m).Mul(s.b1)).Add(s.e1.Mul(lambdaReal.Pow(s.z1)))
		ef := geom.ToExponentFormat(x, y)
		s.e1, s.z1 = ef.E, ef.Z
		s.b1 = b
	}
	{
		s := &r.state
		x := s.e2.Mul(lambdaReal.Pow(s.z2.Neg()))
		b := s.b2.Sub(two.Mul(m).Mul(x))
		y := four.Mul(m).Mul(m).Mul(x).Sub(four.Mul(m).Mul(s.b2)).Add(s.e2.Mul(lambdaReal.Pow(s.z2)))
		ef := geom.ToExponentFormat(x, y)
		s.e2, s.z2 = ef.E, ef.Z
		s.b2 = b
	}
	r.apply(stepA(n))
}

func (r *reduction) applyB() {
	n := toInt64(lambdaReal.Pow(minReal(r.state.z1, r.state.z2)).Quo(sqrt2Real).Floor())
	if n < 1 {
		n = 1
	}
	m := bigreal.FromInt64(n)
	{
		s := &r.state
		x := s.e1.Mul(lambdaReal.Pow(s.z1.Neg()))
		b := s.b1.Add(sqrt2Real.Mul(m).Mul(x))
		y := two.Mul(m).Mul(m).Mul(x).Add(two.Mul(sqrt2Real).Mul(m).Mul(s.b1)).Add(s.e1.Mul(lambdaReal.Pow(s.z1)))
		ef := geom.ToExponentFormat(x, y)
		s.e1, s.z1 = ef.E, ef.Z
		s.b1 = b
	}
	{
		s := &r.state
		x := s.e2.Mul(lambdaReal.Pow(s.z2.Neg()))
		b := s.b2.Sub(sqrt2Real.Mul(m).Mul(x))
		y := two.Mul(m).Mul(m).Mul(x).Sub(two.Mul(sqrt2Real).Mul(m).Mul(s.b2)).Add(s.e2.Mul(lambdaReal.Pow(s.z2)))
		ef := geom.ToExponentFormat(x, y)
		s.e2, s.z2 = ef.E, ef.Z
		s.b2 = b
	}
	r.apply(stepB(n))
}

func inRange(x, lo, hi bigreal.Real) bool { return lo.Cmp(x) <= 0 && x.Cmp(hi) <= 0 }

// step runs one full round of FindGridOperator::Step: normalize with
// Shift/Z/X, then pick exactly one of R, K, A, B by the exponent-format
// region partition 1403.2975 lemma 24 splits into. The two "none of the
// above" branches are unreachable once Shift/Z/X have normalized bias,
// sign and z1+z2 -- reaching them means the region partition's invariants
// were violated upstream, which is a bug, not a recoverable case.
func (r *reduction) step() {
	r.shift()
	r.z()
	r.x()

	z1, z2, b1 := r.state.z1, r.state.z2, r.state.b1

	if b1.Sign() >= 0 {
		switch {
		case inRange(z1, thresholdM08, thresholdP08) && inRange(z2, thresholdM08, thresholdP08):
			r.applyR()
		case z1.Cmp(thresholdP03) <= 0 && z2.Cmp(thresholdP08) >= 0:
			r.applyK()
		case z1.Cmp(thresholdP03) >= 0 && z2.Cmp(thresholdP03) >= 0:
			r.applyA()
		case z1.Cmp(thresholdP08) >= 0 && z2.Cmp(thresholdP03) <= 0:
			r.applyK()
		default:
			panic("gridop: unreachable region in Step (b1 >= 0 case)")
		}
		return
	}

	switch {
	case inRange(z1, thresholdM08, thresholdP08) && inRange(z2, thresholdM08, thresholdP08):
		r.applyR()
	case z1.Cmp(thresholdM02) >= 0 && z2.Cmp(thresholdM02) >= 0:
		r.applyB()
	default:
		panic("gridop: unreachable region in Step (b1 < 0 case)")
	}
}

// FindGridOperator runs the Ross-Selinger reduction loop (1403.2975 section
// 6.2): repeatedly apply one round of the named step vocabulary to the
// ellipse pair's exponent-format state until skew(e1,e2) = b1^2+b2^2 drops
// to skewThreshold or below, accumulating the exact D[sqrt2] operator in
// the same order the steps were applied. It returns the accumulated
// operator and the two correspondingly-transformed ellipses.
func FindGridOperator(e1, e2 geom.Ellipse) (Op, geom.Ellipse, geom.Ellipse) {
	centers := EllipsePair{E1: e1, E2: e2}
	r := &reduction{state: toPairState(centers)}
	accum := opNew(d2i(1), d2i(0), d2i(0), d2i(1))

	for r.state.skew().Float64() > skewThreshold {
		r.ops = r.ops[:0]
		r.step()
		for _, op := range r.ops {
			accum = op.Mul(accum)
		}
	}

	reduced := r.state.toEllipsePair(centers)
	return accum, reduced.E1, reduced.E2
}

// Inv returns the exact inverse of a unimodular D[sqrt2] operator.
func Inv(op Op) Op { return op.Inv(ring.OneD2()) }
