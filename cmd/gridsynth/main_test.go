package main

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	cfg, exit, code := parseFlags([]string{"pi/4"})
	if exit {
		t.Fatalf("parseFlags should not exit, code=%d", code)
	}
	if cfg.Theta != "pi/4" {
		t.Errorf("Theta = %q, want pi/4", cfg.Theta)
	}
	if cfg.Digits != 10 {
		t.Errorf("Digits = %d, want 10", cfg.Digits)
	}
	if cfg.Format != "color" {
		t.Errorf("Format = %q, want color", cfg.Format)
	}
}

func TestParseFlagsDigitsShorthand(t *testing.T) {
	cfg, exit, _ := parseFlags([]string{"-d", "5", "pi/8"})
	if exit {
		t.Fatal("parseFlags should not exit")
	}
	if cfg.Digits != 5 {
		t.Errorf("Digits = %d, want 5", cfg.Digits)
	}
	if cfg.Theta != "pi/8" {
		t.Errorf("Theta = %q, want pi/8", cfg.Theta)
	}
}

func TestParseFlagsRejectsMissingTheta(t *testing.T) {
	_, exit, code := parseFlags([]string{"-digits", "5"})
	if !exit || code != 2 {
		t.Errorf("expected exit with code 2, got exit=%v code=%d", exit, code)
	}
}

func TestParseFlagsRejectsTooManyArgs(t *testing.T) {
	_, exit, code := parseFlags([]string{"pi/4", "pi/8"})
	if !exit || code != 2 {
		t.Errorf("expected exit with code 2, got exit=%v code=%d", exit, code)
	}
}

func TestParseFlagsVersion(t *testing.T) {
	_, exit, code := parseFlags([]string{"-version"})
	if !exit || code != 0 {
		t.Errorf("expected exit with code 0, got exit=%v code=%d", exit, code)
	}
}

func TestRunRejectsBadAngle(t *testing.T) {
	code := run([]string{"not-an-angle"})
	if code != 1 {
		t.Errorf("run(not-an-angle) = %d, want 1", code)
	}
}

func TestVerbosityToLevel(t *testing.T) {
	if verbosityToLevel(3) >= verbosityToLevel(1) {
		t.Errorf("higher verbosity should map to a lower (more permissive) slog level")
	}
}
