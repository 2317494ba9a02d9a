package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
)

func TestNew(t *testing.T) {
	a, err := New([]string{"bignum", "-mode", "stress", "-workers", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if a.Config.Mode != config.ModeStress || a.Config.Workers != 2 {
		t.Errorf("unexpected config: %+v", a.Config)
	}
	if a.Log == nil {
		t.Error("Log should be initialized")
	}
}

func TestNew_InvalidFlags(t *testing.T) {
	if _, err := New([]string{"bignum", "-mode", "race"}, io.Discard); err == nil {
		t.Error("invalid mode should fail")
	}
	_, err := New([]string{"bignum", "-h"}, io.Discard)
	if !IsHelpError(err) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
}

func TestRun_Version(t *testing.T) {
	a, err := New([]string{"bignum", "-version"}, io.Discard)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	var buf bytes.Buffer
	if code := a.Run(context.Background(), &buf); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "bignum") {
		t.Errorf("version output = %q", buf.String())
	}
}

func TestRun_Bench(t *testing.T) {
	a, err := New([]string{"bignum", "-mode", "bench", "-bench-target", "10ms", "-q"}, io.Discard)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	var buf bytes.Buffer
	if code := a.Run(context.Background(), &buf); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "ns/op") {
		t.Errorf("quiet bench output = %q", buf.String())
	}
}

func TestRun_Stress(t *testing.T) {
	a, err := New([]string{
		"bignum", "-mode", "stress",
		"-workers", "2", "-dataset", "64",
		"-duration", "150ms", "-q",
	}, io.Discard)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	var buf bytes.Buffer
	if code := a.Run(context.Background(), &buf); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, buf.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "ok ") {
		t.Errorf("quiet stress output = %q", buf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"-mode", "bench", "-version"}) {
		t.Error("-version should be detected")
	}
	if HasVersionFlag([]string{"-mode", "bench"}) {
		t.Error("absent flag should not be detected")
	}
}

func TestExitCodeForRun(t *testing.T) {
	bg := context.Background()

	if got := exitCodeForRun(bg, nil); got != apperrors.ExitSuccess {
		t.Errorf("clean run = %d", got)
	}
	mm := apperrors.MismatchError{Kernel: "sub", Detail: "x", Case: 1}
	if got := exitCodeForRun(bg, mm); got != apperrors.ExitErrorMismatch {
		t.Errorf("mismatch = %d", got)
	}
	if got := exitCodeForRun(bg, apperrors.NewConfigError("x")); got != apperrors.ExitErrorGeneric {
		t.Errorf("generic = %d", got)
	}

	canceled, cancel := context.WithCancel(bg)
	cancel()
	if got := exitCodeForRun(canceled, nil); got != apperrors.ExitErrorCanceled {
		t.Errorf("canceled = %d", got)
	}

	expired, cancel2 := context.WithTimeout(bg, time.Nanosecond)
	defer cancel2()
	<-expired.Done()
	if got := exitCodeForRun(expired, nil); got != apperrors.ExitErrorTimeout {
		t.Errorf("timed out = %d", got)
	}
}
