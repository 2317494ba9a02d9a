// Package bench implements the calibrated single-threaded microbenchmark
// mode. Each scenario is first calibrated with doubling warm-up rounds, then
// measured over an iteration count sized to the configured target wall time.
package bench

import (
	"context"
	"time"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
	"github.com/kirill-bayborodov/bignum/internal/harness"
	"github.com/kirill-bayborodov/bignum/internal/logging"
	"github.com/kirill-bayborodov/bignum/internal/metrics"
)

// Calibration parameters. The warm-up stops once a round runs long enough
// for its per-op time to be trustworthy.
const (
	calibrationStartIters = 1 << 10
	calibrationMinRound   = 20 * time.Millisecond
	maxIterations         = 1 << 40
)

// Result is the measured outcome of one benchmark scenario.
type Result struct {
	// Kernel is the operation under test ("sub" or "shift_left").
	Kernel string
	// Scenario distinguishes operand shapes within a kernel.
	Scenario string
	// Iterations is the measured iteration count after calibration.
	Iterations uint64
	// Total is the wall time of the measured run.
	Total time.Duration
	// NsPerOp is the average cost of one kernel call.
	NsPerOp float64
	// GCCycles counts garbage collections during the measured run. The
	// kernels are allocation-free, so anything above background noise
	// points at a regression.
	GCCycles uint32
}

// OpsPerSecond returns the scenario throughput.
func (r Result) OpsPerSecond() float64 {
	if r.NsPerOp <= 0 {
		return 0
	}
	return 1e9 / r.NsPerOp
}

// scenario is one benchmarkable operand shape. run executes iters kernel
// calls and must keep all inputs in registers or pre-built state so the
// loop measures the kernel, not setup.
type scenario struct {
	kernel string
	name   string
	run    func(iters uint64)
}

// scenarios builds the fixed operand shapes under test. Operands live in
// captured variables so repeated calls reuse the same memory.
func scenarios() []scenario {
	fullA, fullB := fullCapacityPair()
	var fullRes bignum.FixedBigNum

	smallA := bignum.FromWords(0xFFFFFFFF)
	smallB := bignum.FromWords(0x0F0F0F0F)
	var smallRes bignum.FixedBigNum

	return []scenario{
		{
			kernel: harness.KernelSub,
			name:   "full_capacity",
			run: func(iters uint64) {
				for i := uint64(0); i < iters; i++ {
					bignum.Sub(&fullRes, &fullA, &fullB)
				}
			},
		},
		{
			kernel: harness.KernelSub,
			name:   "single_limb",
			run: func(iters uint64) {
				for i := uint64(0); i < iters; i++ {
					bignum.Sub(&smallRes, &smallA, &smallB)
				}
			},
		},
		{
			kernel: harness.KernelShiftLeft,
			name:   "words_only",
			run: func(iters uint64) {
				num := bignum.FromWords(0xDEADBEEF)
				for i := uint64(0); i < iters; i++ {
					// Shift up one limb then back down by re-seeding; the
					// re-seed is a single struct store, negligible next to
					// the shift itself.
					bignum.ShiftLeft(&num, bignum.WordBits)
					num = bignum.FromWords(0xDEADBEEF)
				}
			},
		},
		{
			kernel: harness.KernelShiftLeft,
			name:   "mixed",
			run: func(iters uint64) {
				num := bignum.FromWords(0xDEADBEEF, 0xCAFE)
				for i := uint64(0); i < iters; i++ {
					bignum.ShiftLeft(&num, 67)
					num = bignum.FromWords(0xDEADBEEF, 0xCAFE)
				}
			},
		},
	}
}

// fullCapacityPair returns a worst-case subtraction: every limb occupied
// and a borrow rippling through the whole length.
func fullCapacityPair() (a, b bignum.FixedBigNum) {
	var words [bignum.Capacity]uint64
	for i := range words {
		words[i] = ^uint64(0)
	}
	a = bignum.FromWords(words[:]...)
	b = bignum.FromWords(1)
	// a - b borrows across all limbs when the low limb underflows.
	a.Words[0] = 0
	return a, b
}

// Run executes every scenario and returns the measured results in order.
// Cancellation is honored between calibration rounds and scenarios.
func Run(ctx context.Context, cfg config.AppConfig, log logging.Logger) ([]Result, error) {
	results := make([]Result, 0, 4)
	for _, sc := range scenarios() {
		res, err := runScenario(ctx, sc, cfg.BenchTarget, log)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func runScenario(ctx context.Context, sc scenario, target time.Duration, log logging.Logger) (Result, error) {
	log.Debug("calibrating scenario",
		logging.String("kernel", sc.kernel),
		logging.String("scenario", sc.name))

	// Doubling warm-up until one round is long enough to extrapolate from.
	iters := uint64(calibrationStartIters)
	var elapsed time.Duration
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, apperrors.WrapError(err, "benchmark %s/%s interrupted", sc.kernel, sc.name)
		}
		start := time.Now()
		sc.run(iters)
		elapsed = time.Since(start)
		if elapsed >= calibrationMinRound || iters >= maxIterations {
			break
		}
		iters *= 2
	}

	// Size the measured run to the target wall time.
	perOp := float64(elapsed.Nanoseconds()) / float64(iters)
	measured := uint64(float64(target.Nanoseconds()) / perOp)
	if measured < 1 {
		measured = 1
	}
	if measured > maxIterations {
		measured = maxIterations
	}

	if err := ctx.Err(); err != nil {
		return Result{}, apperrors.WrapError(err, "benchmark %s/%s interrupted", sc.kernel, sc.name)
	}
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	start := time.Now()
	sc.run(measured)
	total := time.Since(start)
	delta := collector.Snapshot().DeltaSince(before)

	return Result{
		Kernel:     sc.kernel,
		Scenario:   sc.name,
		Iterations: measured,
		Total:      total,
		NsPerOp:    float64(total.Nanoseconds()) / float64(measured),
		GCCycles:   delta.GCCycles,
	}, nil
}
