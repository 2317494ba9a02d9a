// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer] and
//     handle colorization.
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kirill-bayborodov/bignum/internal/bench"
	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/format"
	"github.com/kirill-bayborodov/bignum/internal/harness"
	"github.com/kirill-bayborodov/bignum/internal/ui"
)

// DisplayHostInfo prints the benchmark host context.
func DisplayHostInfo(out io.Writer, info bench.HostInfo) {
	theme := ui.GetCurrentTheme()
	features := "none detected"
	if len(info.Features) > 0 {
		features = strings.Join(info.Features, ", ")
	}
	fmt.Fprintf(out, "%sHost:%s %s, %d CPUs, features: %s\n",
		theme.Bold, theme.Reset, info.Arch, info.NumCPU, features)
}

// DisplayBenchResults prints a per-scenario benchmark table.
func DisplayBenchResults(out io.Writer, results []bench.Result) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "\n%s%-12s %-15s %12s %14s %16s %4s%s\n",
		theme.Bold, "KERNEL", "SCENARIO", "ITERATIONS", "NS/OP", "THROUGHPUT", "GC", theme.Reset)
	fmt.Fprintln(out, strings.Repeat("-", 79))
	for _, r := range results {
		fmt.Fprintf(out, "%-12s %-15s %12s %14.1f %s%16s%s %4d\n",
			r.Kernel, r.Scenario,
			format.FormatCount(float64(r.Iterations)),
			r.NsPerOp,
			theme.Success, format.FormatOpsPerSecond(r.OpsPerSecond()), theme.Reset,
			r.GCCycles)
	}
}

// FormatQuietBenchResult renders one result as a single machine-friendly
// line for quiet mode.
func FormatQuietBenchResult(r bench.Result) string {
	return fmt.Sprintf("%s/%s %.1f ns/op", r.Kernel, r.Scenario, r.NsPerOp)
}

// DisplayQuietBenchResults prints one line per scenario, nothing else.
func DisplayQuietBenchResults(out io.Writer, results []bench.Result) {
	for _, r := range results {
		fmt.Fprintln(out, FormatQuietBenchResult(r))
	}
}

// DisplayStressSummary prints the end-of-run stress report: run context,
// per-status operation counts and the verification verdict.
func DisplayStressSummary(out io.Writer, s harness.Summary) {
	theme := ui.GetCurrentTheme()

	fmt.Fprintf(out, "\n%sStress run finished%s in %s\n",
		theme.Bold, theme.Reset, format.FormatExecutionDuration(s.Elapsed))
	fmt.Fprintf(out, "  workers: %d, dataset: %d cases, oracle: %s, seed: %d\n",
		s.Workers, s.DatasetSize, s.Oracle, s.Seed)
	fmt.Fprintf(out, "  total: %s ops (%s)\n",
		format.FormatCount(float64(s.TotalOps())),
		format.FormatOpsPerSecond(s.OpsPerSecond()))

	fmt.Fprintf(out, "  %s:\n", harness.KernelSub)
	for i, n := range s.SubStatus {
		if n > 0 {
			fmt.Fprintf(out, "    %-18s %s\n", bignum.SubStatus(i).String(), format.FormatCount(float64(n)))
		}
	}
	fmt.Fprintf(out, "  %s:\n", harness.KernelShiftLeft)
	for i, n := range s.ShiftStatus {
		if n > 0 {
			fmt.Fprintf(out, "    %-18s %s\n", bignum.ShiftStatus(i).String(), format.FormatCount(float64(n)))
		}
	}

	if s.Mismatches > 0 {
		fmt.Fprintf(out, "\n%sVerdict: FAILURE%s (%d oracle mismatches)\n",
			theme.Error, theme.Reset, s.Mismatches)
		return
	}
	fmt.Fprintf(out, "\n%sVerdict: all results consistent with the %s oracle%s\n",
		theme.Success, s.Oracle, theme.Reset)
}

// FormatQuietStressResult renders the stress outcome as a single line.
func FormatQuietStressResult(s harness.Summary) string {
	verdict := "ok"
	if s.Mismatches > 0 {
		verdict = "mismatch"
	}
	return fmt.Sprintf("%s %d ops %d mismatches", verdict, s.TotalOps(), s.Mismatches)
}

// DisplayQuietStressResult prints the single-line stress outcome.
func DisplayQuietStressResult(out io.Writer, s harness.Summary) {
	fmt.Fprintln(out, FormatQuietStressResult(s))
}
