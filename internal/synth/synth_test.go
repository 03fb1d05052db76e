package synth

import (
	"testing"

	"github.com/quantumlang/gridsynth/internal/bigreal"
)

func TestSynthesizeTrivialAngleIsShort(t *testing.T) {
	// theta = 0 should synthesize to (close to) the empty gate word: the
	// identity grid point u=1 always lifts via xi=0.
	res, err := SynthesizeAngle(bigreal.FromInt64(0), Options{Digits: 3})
	if err != nil {
		t.Fatalf("SynthesizeAngle(0) failed: %v", err)
	}
	if res.Gate.CountT() != 0 {
		t.Errorf("CountT() = %d, want 0 for theta=0", res.Gate.CountT())
	}
}

func TestSynthesizeRejectsZeroDigits(t *testing.T) {
	if _, err := Synthesize("pi/4", Options{Digits: 0}); err == nil {
		t.Errorf("Synthesize with Digits=0 should have failed")
	}
}

func TestSynthesizePropagatesParseError(t *testing.T) {
	if _, err := Synthesize("tau", Options{Digits: 3}); err == nil {
		t.Errorf("Synthesize(tau) should have failed to parse")
	}
}

func TestEpsilonFromDigits(t *testing.T) {
	eps := epsilonFromDigits(3)
	got := eps.Float64()
	want := 0.001
	if got-want > 1e-12 || want-got > 1e-12 {
		t.Errorf("epsilonFromDigits(3) = %v, want %v", got, want)
	}
}
