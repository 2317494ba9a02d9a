// Package config defines the application configuration and its resolution
// chain: CLI flags override environment variables, which override defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
)

// Run modes selected by the -mode flag.
const (
	// ModeBench runs the single-threaded calibrated microbenchmark.
	ModeBench = "bench"
	// ModeStress runs the multithreaded verification stress harness.
	ModeStress = "stress"
)

// Oracle backends for stress verification.
const (
	// OracleBig checks kernel results against math/big.
	OracleBig = "big"
	// OracleGMP checks kernel results against GNU GMP (requires building
	// with the gmp tag; selecting it otherwise is a configuration error).
	OracleGMP = "gmp"
)

// Default values for flags and their env overrides.
const (
	DefaultDatasetSize = 8192
	DefaultDuration    = 10 * time.Second
	DefaultTimeout     = 5 * time.Minute
	DefaultSeed        = 42
)

// AppConfig holds the complete, resolved application configuration.
type AppConfig struct {
	// Mode selects bench or stress execution.
	Mode string
	// Workers is the stress worker count (defaults to GOMAXPROCS).
	Workers int
	// DatasetSize is the number of pre-generated operand sets; data
	// generation is kept out of the measured/stressed hot path.
	DatasetSize int
	// Duration bounds a stress run; the run also ends on ctx cancellation.
	Duration time.Duration
	// BenchTarget is the wall time the bench calibrator aims at per kernel.
	BenchTarget time.Duration
	// Seed makes dataset generation reproducible.
	Seed uint64
	// Oracle selects the stress verification backend (big or gmp).
	Oracle string
	// MetricsAddr, when nonempty, serves Prometheus metrics during stress
	// runs (e.g. ":9090").
	MetricsAddr string
	// Timeout bounds the whole invocation.
	Timeout time.Duration
	// TUI enables the live dashboard for stress runs.
	TUI bool
	// Quiet reduces output to the final summary line.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Version requests version output and exit.
	Version bool
}

// ParseConfig parses command-line arguments and environment overrides into
// an AppConfig. Errors are returned as apperrors.ConfigError; flag.ErrHelp
// passes through so callers can exit cleanly on -h.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Mode, "mode", ModeBench, "run mode: bench or stress")
	fs.IntVar(&cfg.Workers, "workers", runtime.GOMAXPROCS(0), "stress worker goroutines")
	fs.IntVar(&cfg.DatasetSize, "dataset", DefaultDatasetSize, "pre-generated operand sets per kernel")
	fs.DurationVar(&cfg.Duration, "duration", DefaultDuration, "stress run duration")
	fs.DurationVar(&cfg.BenchTarget, "bench-target", time.Second, "target wall time per benchmarked kernel")
	fs.Uint64Var(&cfg.Seed, "seed", DefaultSeed, "dataset generation seed")
	fs.StringVar(&cfg.Oracle, "oracle", OracleBig, "stress verification oracle: big or gmp")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during stress runs")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "global invocation timeout")
	fs.BoolVar(&cfg.TUI, "tui", false, "live dashboard for stress runs")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the final summary")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the final summary (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug-level logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug-level logging (shorthand)")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration for consistency.
func (c AppConfig) Validate() error {
	switch c.Mode {
	case ModeBench, ModeStress:
	default:
		return apperrors.NewConfigError("invalid -mode %q: must be %q or %q", c.Mode, ModeBench, ModeStress)
	}
	switch c.Oracle {
	case OracleBig, OracleGMP:
	default:
		return apperrors.NewConfigError("invalid -oracle %q: must be %q or %q", c.Oracle, OracleBig, OracleGMP)
	}
	if c.Workers <= 0 {
		return apperrors.NewConfigError("invalid -workers %d: must be positive", c.Workers)
	}
	if c.DatasetSize <= 0 {
		return apperrors.NewConfigError("invalid -dataset %d: must be positive", c.DatasetSize)
	}
	if c.Duration <= 0 {
		return apperrors.NewConfigError("invalid -duration %s: must be positive", c.Duration)
	}
	if c.BenchTarget <= 0 {
		return apperrors.NewConfigError("invalid -bench-target %s: must be positive", c.BenchTarget)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("invalid -timeout %s: must be positive", c.Timeout)
	}
	if c.TUI && c.Mode != ModeStress {
		return apperrors.NewConfigError("-tui requires -mode=%s", ModeStress)
	}
	return nil
}
