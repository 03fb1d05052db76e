// Command gridsynth synthesizes an exact Clifford+T approximation to a
// single-qubit axial rotation Rz(theta), to a chosen decimal precision.
//
// Usage:
//
//	gridsynth [flags] <theta>
//
// Flags:
//
//	--digits, -d   approximation precision epsilon = 10^-digits (default: 10)
//	--verbosity    log level: 0 silent, 1 info, 2 warn, 3 or more debug (default: 1)
//	--format       human progress output format: text, color, json (default: color)
//	--version      print version and exit
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/quantumlang/gridsynth/internal/log"
	"github.com/quantumlang/gridsynth/internal/synth"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// config holds the resolved CLI configuration.
type config struct {
	Theta     string
	Digits    uint
	Verbosity uint
	Format    string
}

func defaultConfig() config {
	return config{
		Digits:    10,
		Verbosity: 1,
		Format:    "color",
	}
}

// run is the actual entry point, returning an exit code. It accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	log.SetDefault(log.New(verbosityToLevel(cfg.Verbosity)))

	formatter := formatterFor(cfg.Format)
	progress := func(msg string, fields map[string]interface{}) {
		fmt.Fprintln(os.Stderr, formatter.Format(logEntry(msg, fields)))
	}

	progress("starting synthesis", map[string]interface{}{
		"theta": cfg.Theta, "digits": cfg.Digits,
	})

	result, err := synth.Synthesize(cfg.Theta, synth.Options{Digits: uint32(cfg.Digits)})
	if err != nil {
		progress("synthesis failed", map[string]interface{}{"error": err.Error()})
		return 1
	}

	progress("synthesis succeeded", map[string]interface{}{
		"tcount": result.Gate.CountT(), "levels": result.Levels,
	})

	fmt.Println(result.Gate.ToString())
	return 0
}

func logEntry(msg string, fields map[string]interface{}) log.LogEntry {
	return log.LogEntry{Timestamp: time.Now(), Level: log.INFO, Message: msg, Fields: fields}
}

func formatterFor(name string) log.LogFormatter {
	switch name {
	case "text":
		return &log.TextFormatter{}
	case "json":
		return &log.JSONFormatter{}
	default:
		return &log.ColorFormatter{}
	}
}

func verbosityToLevel(v uint) slog.Level {
	switch v {
	case 0:
		return slog.Level(100) // above any defined level: effectively silent
	case 1:
		return slog.LevelInfo
	case 2:
		return slog.LevelWarn
	case 3:
		return slog.LevelDebug
	default:
		return slog.LevelDebug
	}
}

// parseFlags parses CLI arguments into a config. Returns the config,
// whether the caller should exit immediately, and the exit code.
func parseFlags(args []string) (config, bool, int) {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg)

	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}

	if *showVersion {
		fmt.Printf("gridsynth %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one positional argument: theta")
		fs.Usage()
		return cfg, true, 2
	}
	cfg.Theta = rest[0]

	return cfg, false, 0
}

// newFlagSet creates a flag.FlagSet that binds all CLI flags to the given
// config. The FlagSet uses ContinueOnError so callers control the error
// handling behavior.
func newFlagSet(cfg *config) *flagSet {
	fs := newCustomFlagSet("gridsynth")
	fs.UintVar(&cfg.Digits, "digits", cfg.Digits, "approximation precision: epsilon = 10^-digits")
	fs.UintVar(&cfg.Digits, "d", cfg.Digits, "shorthand for -digits")
	fs.UintVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level (0=silent, 1=info, 2=warn, 3 or more=debug)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "progress output format: text, color, json")
	return fs
}
