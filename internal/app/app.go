// Package app wires configuration, logging and the run modes into the
// application entry point used by cmd/bignum.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
	"github.com/kirill-bayborodov/bignum/internal/logging"
	"github.com/kirill-bayborodov/bignum/internal/ui"
)

// Application represents one configured invocation of the tool.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       logging.Logger
}

// New creates an Application by parsing command-line arguments. args is the
// full argv including the program name.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "bignum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Log:       logging.NewDefaultLogger(),
	}, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Mode == config.ModeStress {
		return a.runStress(ctx, out)
	}
	return a.runBench(ctx, out)
}

// exitCodeForRun maps a finished run and its surrounding context to the
// process exit code. The configured duration elapsing is a normal end; the
// global timeout and SIGINT are not.
func exitCodeForRun(ctx context.Context, err error) int {
	var mm apperrors.MismatchError
	canceled := errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled)
	timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded)
	switch {
	case errors.As(err, &mm):
		return apperrors.ExitErrorMismatch
	case canceled:
		return apperrors.ExitErrorCanceled
	case timedOut:
		return apperrors.ExitErrorTimeout
	case err != nil:
		return apperrors.ExitErrorGeneric
	default:
		return apperrors.ExitSuccess
	}
}

// IsHelpError checks whether the error came from the -h flag.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
