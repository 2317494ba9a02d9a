package config

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("bignum", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Mode != ModeBench {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeBench)
	}
	if cfg.Oracle != OracleBig {
		t.Errorf("Oracle = %q, want %q", cfg.Oracle, OracleBig)
	}
	if cfg.DatasetSize != DefaultDatasetSize {
		t.Errorf("DatasetSize = %d, want %d", cfg.DatasetSize, DefaultDatasetSize)
	}
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want positive default", cfg.Workers)
	}
	if cfg.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", cfg.Seed, DefaultSeed)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"-mode", "stress",
		"-workers", "4",
		"-dataset", "128",
		"-duration", "2s",
		"-seed", "7",
		"-metrics-addr", ":9090",
		"-q",
	}
	cfg, err := ParseConfig("bignum", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Mode != ModeStress || cfg.Workers != 4 || cfg.DatasetSize != 128 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Duration != 2*time.Second {
		t.Errorf("Duration = %s, want 2s", cfg.Duration)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want :9090", cfg.MetricsAddr)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set by -q")
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"MODE", "stress")
	t.Setenv(EnvPrefix+"WORKERS", "3")
	t.Setenv(EnvPrefix+"DURATION", "4s")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	cfg, err := ParseConfig("bignum", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Mode != ModeStress || cfg.Workers != 3 || cfg.Duration != 4*time.Second || !cfg.Quiet {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestParseConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"WORKERS", "99")

	cfg, err := ParseConfig("bignum", []string{"-workers", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want CLI flag value 2", cfg.Workers)
	}
}

func TestParseConfig_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad mode", []string{"-mode", "race"}},
		{"bad oracle", []string{"-oracle", "sage"}},
		{"zero workers", []string{"-workers", "0"}},
		{"negative dataset", []string{"-dataset", "-5"}},
		{"zero duration", []string{"-duration", "0s"}},
		{"tui without stress", []string{"-tui"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("bignum", tt.args, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
