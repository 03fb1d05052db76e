package gridsolver

import (
	"testing"

	"github.com/quantumlang/gridsynth/internal/bigreal"
)

func realFromString(t *testing.T, s string) bigreal.Real {
	t.Helper()
	v, err := bigreal.FromString(s)
	if err != nil {
		t.Fatalf("bigreal.FromString(%q): %v", s, err)
	}
	return v
}

func TestOneDimGridSolverFindsKnownSolution(t *testing.T) {
	x0 := realFromString(t, "-0.5")
	x1 := realFromString(t, "0.5")
	y0 := realFromString(t, "-0.5")
	y1 := realFromString(t, "0.5")

	s := NewOneDimGridSolver(x0, x1, y0, y1)
	s.EnumerateAllSolutions()

	found := false
	for _, z := range s.GetSolutions() {
		if z.IsZero() {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the zero solution in a box around the origin, got %v", s.GetSolutions())
	}
}

func TestOneDimGridSolverRespectsBounds(t *testing.T) {
	x0 := realFromString(t, "10")
	x1 := realFromString(t, "10.001")
	y0 := realFromString(t, "10")
	y1 := realFromString(t, "10.001")

	s := NewOneDimGridSolver(x0, x1, y0, y1)
	s.EnumerateAllSolutions()
	for _, z := range s.GetSolutions() {
		if !s.isValidSolution(z) {
			t.Errorf("solution %v failed re-validation against the original box", z)
		}
	}
}
