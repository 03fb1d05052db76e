package gridsolver

import (
	"math/big"

	"github.com/quantumlang/gridsynth/internal/bigreal"
	"github.com/quantumlang/gridsynth/internal/geom"
	"github.com/quantumlang/gridsynth/internal/gridop"
	"github.com/quantumlang/gridsynth/internal/linalg"
	"github.com/quantumlang/gridsynth/internal/ring"
)

// TwoDimGridSolver finds elements u of Z[omega] such that u lies in e1 and
// the sqrt2-conjugate pair of u lies in e2 (1403.2975 section 5-6). Every
// u = p + q*omega is tracked through its coordinate pair (p, q) in
// Z[sqrt2]^2, which is exactly the representation gridop.FindGridOperator's
// D[sqrt2] operators act on.
type TwoDimGridSolver struct {
	e1, e2    geom.Ellipse
	op        gridop.Op
	opInv     gridop.Op
	reducedE1 geom.Ellipse
	reducedE2 geom.Ellipse
	level     int64
	solutions []ring.ZOmega
}

// NewTwoDimGridSolver runs FindGridOperator once up front so enumeration can
// search the reduced, near-circular ellipse pair directly.
func NewTwoDimGridSolver(e1, e2 geom.Ellipse) *TwoDimGridSolver {
	op, r1, r2 := gridop.FindGridOperator(e1, e2)
	return &TwoDimGridSolver{
		e1: e1, e2: e2,
		op: op, opInv: gridop.Inv(op),
		reducedE1: r1, reducedE2: r2,
	}
}

// GetSolutions returns every Z[omega] point found so far.
func (s *TwoDimGridSolver) GetSolutions() []ring.ZOmega { return s.solutions }

// zOmegaFromPQ builds p + q*omega as a ZOmega, using the identity
// sqrt2 = omega - omega^3 to express p, q in Z[sqrt2] over the omega basis.
func zOmegaFromPQ(p, q ring.Z2) ring.ZOmega {
	// p = p.A + p.B*(omega - omega^3) -> (p.A, p.B, 0, -p.B)
	// q*omega: q = (q.A, q.B, 0, -q.B); multiplying a ZOmega (x0,x1,x2,x3) by
	// omega gives (-x3, x0, x1, x2).
	qx0, qx1, qx2, qx3 := q.A, q.B, big.NewInt(0), new(big.Int).Neg(q.B)
	qOmega0 := new(big.Int).Neg(qx3)
	qOmega1 := qx0
	qOmega2 := qx1
	qOmega3 := qx2

	x0 := new(big.Int).Add(p.A, qOmega0)
	x1 := new(big.Int).Add(p.B, qOmega1)
	x2 := new(big.Int).Set(qOmega2)
	x3 := new(big.Int).Add(new(big.Int).Neg(p.B), qOmega3)
	return ring.NewZOmega(x0, x1, x2, x3)
}

// enumerateReducedBox performs the bounded direct search over the reduced
// ellipse pair's bounding box.
func (s *TwoDimGridSolver) enumerateReducedBox() []linalg.Vector[ring.D2] {
	bbox1 := s.reducedE1.CalcBBox()
	one := bigreal.FromInt64(1)

	pLo := bbox1.X0.Sub(one).Floor()
	pHi := bbox1.X1.Add(one).Ceil()
	qLo := bbox1.Y0.Sub(one).Floor()
	qHi := bbox1.Y1.Add(one).Ceil()

	var out []linalg.Vector[ring.D2]
	const maxCandidates = 2_000_000
	count := 0
	for p := pLo; p.Cmp(pHi) <= 0 && count < maxCandidates; p = p.Add(one) {
		for q := qLo; q.Cmp(qHi) <= 0 && count < maxCandidates; q = q.Add(one) {
			count++
			if !pointInEllipse(s.reducedE1, p, q) {
				continue
			}
			if !pointInEllipse(s.reducedE2, p, q) {
				continue
			}
			pBig, _ := p.Float().Int(nil)
			qBig, _ := q.Float().Int(nil)
			pD2 := ring.D2FromZ2(ring.NewZ2(pBig, big.NewInt(0)))
			qD2 := ring.D2FromZ2(ring.NewZ2(qBig, big.NewInt(0)))
			out = append(out, linalg.NewVector(pD2, qD2))
		}
	}
	return out
}

func pointInEllipse(e geom.Ellipse, x, y bigreal.Real) bool {
	dx := x.Sub(e.CenterX)
	dy := y.Sub(e.CenterY)
	q := dx.Mul(e.A).Mul(dx).Add(dx.Mul(e.B).Mul(dy).Mul(bigreal.FromInt64(2))).Add(dy.Mul(e.Dd).Mul(dy))
	return q.Cmp(bigreal.FromInt64(1)) <= 0
}

// EnumerateAllSolutions searches the reduced box, maps every candidate back
// through the accumulated grid operator's inverse, and keeps the ones that
// exactly land back in (p, q) coordinates (i.e. the D[sqrt2] coordinates
// rationalize to Z[sqrt2]) and validate against the original ellipses.
func (s *TwoDimGridSolver) EnumerateAllSolutions() {
	candidates := s.enumerateReducedBox()
	for _, v := range candidates {
		orig := linalg.MulVec(s.opInv, v)
		p, ok1 := tryToZ2(orig.X0)
		q, ok2 := tryToZ2(orig.X1)
		if !ok1 || !ok2 {
			continue
		}
		u := zOmegaFromPQ(p, q)
		if s.validate(u) {
			s.solutions = append(s.solutions, u)
		}
	}
}

func tryToZ2(x ring.D2) (z ring.Z2, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return x.ToZ2(), true
}

func (s *TwoDimGridSolver) validate(u ring.ZOmega) bool {
	re, im := u.Real(), u.Imag()
	prec := bigreal.Prec + 64
	x := bigreal.New(re.ToBigFloat(prec))
	y := bigreal.New(im.ToBigFloat(prec))
	if !pointInEllipse(s.e1, x, y) {
		return false
	}
	c := u.Adj2()
	cx := bigreal.New(c.Real().ToBigFloat(prec))
	cy := bigreal.New(c.Imag().ToBigFloat(prec))
	return pointInEllipse(s.e2, cx, cy)
}

// EnumerateNextLevelAllSolutions rescales the reduced ellipse pair by
// diag(lambda, 1/lambda) (the same balancing step the 1D solver uses),
// folds that scaling into the grid operator, and searches again, appending
// what it finds to the solutions of earlier levels. The rescaling keeps
// each ellipse's area, so a level searches a different set of lattice
// points rather than a larger one. The driver calls it when a pass finds
// nothing.
func (s *TwoDimGridSolver) EnumerateNextLevelAllSolutions() {
	s.level++
	scaleOp := linalg.New(ring.LambdaD2, ring.ZeroD2(), ring.ZeroD2(), ring.InvLambdaD2)
	s.op = scaleOp.Mul(s.op)
	s.opInv = gridop.Inv(s.op)

	lambdaF := bigreal.FromInt64(1).Add(bigreal.FromInt64(2).Sqrt())
	invLambdaF := bigreal.FromInt64(1).Neg().Add(bigreal.FromInt64(2).Sqrt())
	s.reducedE1 = rescaleEllipse(s.reducedE1, lambdaF, invLambdaF)
	s.reducedE2 = rescaleEllipse(s.reducedE2, lambdaF, invLambdaF)
	s.EnumerateAllSolutions()
}

func rescaleEllipse(e geom.Ellipse, sx, sy bigreal.Real) geom.Ellipse {
	return geom.NewEllipse(
		e.A.Quo(sx.Mul(sx)),
		e.B.Quo(sx.Mul(sy)),
		e.Dd.Quo(sy.Mul(sy)),
		e.CenterX.Mul(sx),
		e.CenterY.Mul(sy),
	)
}
