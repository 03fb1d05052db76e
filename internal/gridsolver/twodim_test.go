package gridsolver

import (
	"testing"

	"github.com/quantumlang/gridsynth/internal/geom"
)

func TestTwoDimGridSolverFindsOriginAroundCircle(t *testing.T) {
	e1 := geom.FromCircle()
	e2 := geom.FromCircle()

	s := NewTwoDimGridSolver(e1, e2)
	s.EnumerateAllSolutions()

	found := false
	for _, u := range s.GetSolutions() {
		if u.IsZero() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the zero solution inside the unit circle pair, got %d solutions", len(s.GetSolutions()))
	}
}

func TestTwoDimGridSolverValidatesEverySolution(t *testing.T) {
	e1 := geom.FromCircle()
	e2 := geom.FromCircle()

	s := NewTwoDimGridSolver(e1, e2)
	s.EnumerateAllSolutions()
	for _, u := range s.GetSolutions() {
		if !s.validate(u) {
			t.Errorf("solution %v failed re-validation", u)
		}
	}
}

func TestTwoDimGridSolverNextLevelNeverShrinksSolutions(t *testing.T) {
	e1 := geom.FromCircle()
	e2 := geom.FromCircle()

	s := NewTwoDimGridSolver(e1, e2)
	before := len(s.GetSolutions())
	s.EnumerateNextLevelAllSolutions()
	if len(s.GetSolutions()) < before {
		t.Errorf("EnumerateNextLevelAllSolutions should never shrink the solution set")
	}
}
