package app

import (
	"context"
	"io"
	"sync"

	"github.com/kirill-bayborodov/bignum/internal/bench"
	"github.com/kirill-bayborodov/bignum/internal/cli"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
	"github.com/kirill-bayborodov/bignum/internal/harness"
	"github.com/kirill-bayborodov/bignum/internal/logging"
	"github.com/kirill-bayborodov/bignum/internal/server"
	"github.com/kirill-bayborodov/bignum/internal/tui"
)

// runBench executes the calibrated microbenchmark mode.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	if !a.Config.Quiet {
		cli.DisplayHostInfo(out, bench.CollectHostInfo())
	}

	results, err := bench.Run(ctx, a.Config, a.Log)
	if err != nil {
		a.Log.Error("benchmark aborted", err)
		return exitCodeForRun(ctx, err)
	}

	if a.Config.Quiet {
		cli.DisplayQuietBenchResults(out, results)
	} else {
		cli.DisplayBenchResults(out, results)
	}
	return exitCodeForRun(ctx, nil)
}

// runStress executes the verification stress mode, with or without the
// live dashboard.
func (a *Application) runStress(ctx context.Context, out io.Writer) int {
	var metrics *server.Metrics
	var metricsWg sync.WaitGroup
	metricsCtx, stopMetrics := context.WithCancel(ctx)
	defer stopMetrics()
	if a.Config.MetricsAddr != "" {
		metrics = server.NewMetrics()
		metricsWg.Add(1)
		go func() {
			defer metricsWg.Done()
			metrics.Serve(metricsCtx, a.Config.MetricsAddr, a.Log)
		}()
		defer metricsWg.Wait()
	}

	runner, err := harness.NewRunner(a.Config, a.Log, metrics)
	if err != nil {
		a.Log.Error("stress setup failed", err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.TUI {
		return tui.Run(ctx, runner, a.Config, Version)
	}

	// Plain mode: spinner with live figures unless quiet.
	progressCtx, stopProgress := context.WithCancel(ctx)
	var progressWg sync.WaitGroup
	if !a.Config.Quiet {
		progressWg.Add(1)
		go func() {
			defer progressWg.Done()
			cli.DisplayStressProgress(progressCtx, cli.NewSpinner(), runner.Snapshot)
		}()
	}

	summary, runErr := runner.Run(ctx)
	stopProgress()
	progressWg.Wait()

	if runErr != nil {
		a.Log.Error("stress run failed", runErr,
			logging.Uint64("mismatches", summary.Mismatches))
	}
	if a.Config.Quiet {
		cli.DisplayQuietStressResult(out, summary)
	} else {
		cli.DisplayStressSummary(out, summary)
	}
	return exitCodeForRun(ctx, runErr)
}
