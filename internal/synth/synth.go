// Package synth is the top-level driver that turns an axial rotation angle
// and a target precision into an exact Clifford+T gate sequence. It
// composes the angle parser, the two-dimensional grid solver, the
// Diophantine norm-equation solver and the unitary decomposer exactly the
// way the reference driver's GridSynth routine does: search an
// epsilon-region around Rz(theta) for grid points, try to lift each one to
// an exact unitary via the Diophantine solver, decompose every unitary that
// lifts, and keep the gate word with the fewest T gates.
package synth

import (
	"fmt"
	"sort"

	"github.com/quantumlang/gridsynth/internal/bigreal"
	"github.com/quantumlang/gridsynth/internal/diophantine"
	"github.com/quantumlang/gridsynth/internal/gate"
	"github.com/quantumlang/gridsynth/internal/geom"
	"github.com/quantumlang/gridsynth/internal/gridsolver"
	"github.com/quantumlang/gridsynth/internal/log"
	"github.com/quantumlang/gridsynth/internal/parser"
	"github.com/quantumlang/gridsynth/internal/ring"
)

// maxSearchLevels bounds how many times the driver moves the grid-problem
// search to its next level (EnumerateNextLevelAllSolutions) before giving
// up. Each level rescales the reduced ellipse pair by diag(lambda,
// 1/lambda), which keeps its area, so a level searches a different set of
// lattice points rather than a larger one.
const maxSearchLevels = 60

// Options controls a single synthesis run.
type Options struct {
	// Digits is d in epsilon = 10^-d, the approximation precision.
	Digits uint32
}

// Result is the outcome of a successful synthesis.
type Result struct {
	// Gate is the resulting Clifford+T gate word, normalized.
	Gate gate.Gate
	// Levels is how many next-level searches were needed.
	Levels int
}

// synthLog looks up log.Default() on every call, so it follows a default
// logger installed after package initialization (the CLI's --verbosity).
func synthLog() *log.Logger { return log.Default().Module("synth") }

// Synthesize parses thetaExpr (an arithmetic expression over "pi", e.g.
// "pi/128") and returns the shortest Clifford+T gate word found that
// approximates Rz(theta) to within 10^-opts.Digits.
func Synthesize(thetaExpr string, opts Options) (Result, error) {
	theta, err := parser.Eval(thetaExpr)
	if err != nil {
		return Result{}, fmt.Errorf("synth: parsing angle: %w", err)
	}
	return SynthesizeAngle(theta, opts)
}

// SynthesizeAngle is Synthesize for a pre-evaluated angle, useful for
// callers that already hold a bigreal.Real (tests, batch sweeps).
func SynthesizeAngle(theta bigreal.Real, opts Options) (Result, error) {
	if opts.Digits == 0 {
		return Result{}, fmt.Errorf("synth: digits must be positive")
	}

	eps := epsilonFromDigits(opts.Digits)
	// The reference driver searches around -theta/2: Rz(theta) = diag(e^
	// (-i theta/2), e^(i theta/2)) up to global phase, and the grid
	// problem is stated in terms of the angle of the upper-left entry.
	target := theta.Neg().Quo(bigreal.FromInt64(2))

	e1, e2 := buildRegion(target, eps)
	solver := gridsolver.NewTwoDimGridSolver(e1, e2)
	dioph := diophantine.New()
	decomposer := gate.NewUnitaryDecomposer()

	solver.EnumerateAllSolutions()

	for level := 0; level < maxSearchLevels; level++ {
		candidates := solver.GetSolutions()
		synthLog().Debug("search level", "level", level, "candidates", len(candidates))

		best, found := bestCandidate(candidates, dioph, decomposer)
		if found {
			synthLog().Info("synthesis succeeded",
				"digits", opts.Digits, "level", level, "tcount", best.CountT())
			return Result{Gate: best, Levels: level}, nil
		}

		solver.EnumerateNextLevelAllSolutions()
	}

	return Result{}, fmt.Errorf("synth: no solution found within %d search levels", maxSearchLevels)
}

// epsilonFromDigits returns 10^-digits as a bigreal.Real.
func epsilonFromDigits(digits uint32) bigreal.Real {
	ten := bigreal.FromInt64(10)
	eps := bigreal.FromInt64(1)
	for i := uint32(0); i < digits; i++ {
		eps = eps.Quo(ten)
	}
	return eps
}

// buildRegion returns the ellipse pair the grid solver searches: e1 is a
// thin rectangle of half-width eps, tangent to the unit circle at angle
// target, and e2 is the unit circle itself, the "bullet state" bound every
// grid-problem solution's conjugate coordinate must also satisfy (1403.2975,
// section 5).
func buildRegion(target, eps bigreal.Real) (e1, e2 geom.Ellipse) {
	cx := target.Cos()
	cy := target.Sin()

	// A rectangle tangent to the unit circle at (cx, cy): long in the
	// tangential direction (angle + pi/2), thin (width 2*eps) in the
	// radial direction.
	halfWidth := eps
	halfHeight := bigreal.FromInt64(4)
	// FromRectangle lays halfWidth along angle, so angle is the radial one.
	angle := target

	e1 = geom.FromRectangle(halfWidth, halfHeight, angle, cx, cy)
	e2 = geom.FromCircle()
	return e1, e2
}

// bestCandidate tries to lift every grid-problem solution u to an exact
// unitary via the Diophantine solver, decomposes every one that lifts, and
// returns the gate word with the fewest T gates.
func bestCandidate(candidates []ring.ZOmega, dioph diophantine.Diophantine, decomposer *gate.UnitaryDecomposer) (gate.Gate, bool) {
	var best gate.Gate
	found := false

	ordered := sortedByRealImag(candidates)
	for _, u := range ordered {
		xi := ring.OneD2().Sub(u.Mul(u.Adj()).Real())
		t, ok := dioph.Solve(xi)
		if !ok {
			continue
		}

		mat := gate.New(ring.ToCD2(u), ring.ToCD2(t.Adj()).Neg(), ring.ToCD2(t), ring.ToCD2(u.Adj()))
		g := decomposer.Decompose(mat).Normalize()

		if !found || g.CountT() < best.CountT() {
			best, found = g, true
		}
	}
	return best, found
}

// sortedByRealImag returns candidates sorted lexicographically on
// (Re(u), Im(u)), so that which candidate wins a CountT tie is a
// deterministic property of the input rather than of map/slice iteration
// order upstream in the grid solver.
func sortedByRealImag(candidates []ring.ZOmega) []ring.ZOmega {
	ordered := make([]ring.ZOmega, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		ri, ii := ordered[i].Real().ToBigFloat(bigreal.Prec), ordered[i].Imag().ToBigFloat(bigreal.Prec)
		rj, ij := ordered[j].Real().ToBigFloat(bigreal.Prec), ordered[j].Imag().ToBigFloat(bigreal.Prec)
		if c := ri.Cmp(rj); c != 0 {
			return c < 0
		}
		return ii.Cmp(ij) < 0
	})
	return ordered
}
