package bigreal

import (
	"math"
	"testing"
)

func closeEnough(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tol
}

func TestPiMatchesMath(t *testing.T) {
	if !closeEnough(Pi().Float64(), math.Pi, 1e-12) {
		t.Errorf("Pi() = %v, want approx %v", Pi().Float64(), math.Pi)
	}
}

func TestSinCosIdentity(t *testing.T) {
	x, _ := FromString("0.7")
	s, c := x.Sin(), x.Cos()
	one := s.Mul(s).Add(c.Mul(c))
	if !closeEnough(one.Float64(), 1.0, 1e-9) {
		t.Errorf("sin^2+cos^2 = %v, want 1", one.Float64())
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	x, _ := FromString("2.5")
	got := x.Log().Exp()
	if !closeEnough(got.Float64(), x.Float64(), 1e-9) {
		t.Errorf("exp(log(2.5)) = %v, want 2.5", got.Float64())
	}
}

func TestFloorCeil(t *testing.T) {
	x, _ := FromString("3.7")
	if x.Floor().Float64() != 3 {
		t.Errorf("Floor(3.7) = %v, want 3", x.Floor().Float64())
	}
	if x.Ceil().Float64() != 4 {
		t.Errorf("Ceil(3.7) = %v, want 4", x.Ceil().Float64())
	}
	neg, _ := FromString("-3.2")
	if neg.Floor().Float64() != -4 {
		t.Errorf("Floor(-3.2) = %v, want -4", neg.Floor().Float64())
	}
	if neg.Ceil().Float64() != -3 {
		t.Errorf("Ceil(-3.2) = %v, want -3", neg.Ceil().Float64())
	}
}
