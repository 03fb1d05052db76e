package parser

import (
	"math"
	"testing"
)

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"2*3+4", 10},
		{"2*(3+4)", 14},
		{"-3+5", 2},
		{"10/4", 2.5},
		{"-(2+3)", -5},
	}
	for _, c := range cases {
		got, err := Eval(c.expr)
		if err != nil {
			t.Fatalf("Eval(%q) returned error: %v", c.expr, err)
		}
		if math.Abs(got.Float64()-c.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", c.expr, got.Float64(), c.want)
		}
	}
}

func TestEvalPi(t *testing.T) {
	got, err := Eval("pi/4")
	if err != nil {
		t.Fatalf("Eval(pi/4) returned error: %v", err)
	}
	if math.Abs(got.Float64()-math.Pi/4) > 1e-9 {
		t.Errorf("Eval(pi/4) = %v, want %v", got.Float64(), math.Pi/4)
	}
}

func TestEvalRejectsUnknownIdentifier(t *testing.T) {
	if _, err := Eval("tau"); err == nil {
		t.Errorf("Eval(tau) should have failed")
	}
}

func TestEvalRejectsTrailingGarbage(t *testing.T) {
	if _, err := Eval("1+2)"); err == nil {
		t.Errorf("Eval(1+2)) should have failed on the unmatched paren")
	}
}

func TestEvalRejectsDoubleDecimalPoint(t *testing.T) {
	if _, err := Eval("1.2.3"); err == nil {
		t.Errorf("Eval(1.2.3) should have failed")
	}
}
