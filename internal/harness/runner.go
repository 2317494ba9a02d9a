package harness

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
	"github.com/kirill-bayborodov/bignum/internal/logging"
	"github.com/kirill-bayborodov/bignum/internal/server"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/kirill-bayborodov/bignum/internal/harness"

// metricsFlushInterval is how often accumulated op counts are pushed to the
// Prometheus collectors. Per-op counter updates would dominate the hot path.
const metricsFlushInterval = time.Second

// numSubStatuses and numShiftStatuses size the per-status counter arrays.
const (
	numSubStatuses   = int(bignum.SubErrBufferOverlap) + 1
	numShiftStatuses = int(bignum.ShiftErrOverflow) + 1
)

// Snapshot is a point-in-time view of a running (or finished) stress run,
// consumed by the live dashboard and the final summary.
type Snapshot struct {
	Elapsed     time.Duration
	SubOps      uint64
	ShiftOps    uint64
	SubStatus   [numSubStatuses]uint64
	ShiftStatus [numShiftStatuses]uint64
	Mismatches  uint64
}

// TotalOps returns the combined kernel invocation count.
func (s Snapshot) TotalOps() uint64 { return s.SubOps + s.ShiftOps }

// OpsPerSecond returns the overall throughput.
func (s Snapshot) OpsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalOps()) / s.Elapsed.Seconds()
}

// Summary is the final outcome of a stress run.
type Summary struct {
	Snapshot
	Workers     int
	DatasetSize int
	Oracle      string
	Seed        uint64
}

// Runner drives a stress run: a shared read-only dataset, a pool of
// workers and an oracle checking every result.
type Runner struct {
	cfg     config.AppConfig
	log     logging.Logger
	oracle  Oracle
	dataset *Dataset
	metrics *server.Metrics

	start       time.Time
	subOps      atomic.Uint64
	shiftOps    atomic.Uint64
	subStatus   [numSubStatuses]atomic.Uint64
	shiftStatus [numShiftStatuses]atomic.Uint64
	mismatches  atomic.Uint64
}

// NewRunner builds a Runner from the resolved configuration. Dataset
// generation happens here, before any worker starts. metrics may be nil
// when no exporter is configured.
func NewRunner(cfg config.AppConfig, log logging.Logger, metrics *server.Metrics) (*Runner, error) {
	oracle, err := NewOracle(cfg.Oracle)
	if err != nil {
		return nil, err
	}
	log.Debug("generating dataset",
		logging.Int("size", cfg.DatasetSize),
		logging.Uint64("seed", cfg.Seed))
	r := &Runner{
		cfg:     cfg,
		log:     log,
		oracle:  oracle,
		dataset: NewDataset(cfg.DatasetSize, cfg.Seed),
		metrics: metrics,
	}
	if metrics != nil {
		metrics.SetDatasetSize(cfg.DatasetSize)
	}
	return r, nil
}

// Snapshot returns the current counters. Safe to call concurrently with a
// running stress loop.
func (r *Runner) Snapshot() Snapshot {
	s := Snapshot{
		Elapsed:    time.Since(r.start),
		SubOps:     r.subOps.Load(),
		ShiftOps:   r.shiftOps.Load(),
		Mismatches: r.mismatches.Load(),
	}
	for i := range r.subStatus {
		s.SubStatus[i] = r.subStatus[i].Load()
	}
	for i := range r.shiftStatus {
		s.ShiftStatus[i] = r.shiftStatus[i].Load()
	}
	return s
}

// Run executes the stress loop until the configured duration elapses or ctx
// is canceled. The first oracle mismatch aborts the run and is returned as
// an apperrors.MismatchError; context expiry is a normal end of run, not an
// error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "stress.run", trace.WithAttributes(
		attribute.Int("workers", r.cfg.Workers),
		attribute.Int("dataset_size", r.cfg.DatasetSize),
		attribute.String("oracle", r.oracle.Name()),
		attribute.Int64("seed", int64(r.cfg.Seed)),
	))
	defer span.End()

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
	defer cancel()

	r.start = time.Now()
	r.log.Info("stress run started",
		logging.Int("workers", r.cfg.Workers),
		logging.String("oracle", r.oracle.Name()),
		logging.String("duration", r.cfg.Duration.String()))

	if r.metrics != nil {
		go r.flushMetrics(runCtx)
	}

	g, runCtx := errgroup.WithContext(runCtx)
	// The oracle is the expensive half of each iteration (it allocates).
	// Bound concurrent verifications to the core count so a large worker
	// count oversubscribes the kernels, not the allocator.
	verifiers := runtime.GOMAXPROCS(0)
	if verifiers > r.cfg.Workers {
		verifiers = r.cfg.Workers
	}
	sem := semaphore.NewWeighted(int64(verifiers))
	for w := 0; w < r.cfg.Workers; w++ {
		worker := w
		g.Go(func() error {
			if r.metrics != nil {
				r.metrics.IncrementActiveWorkers()
				defer r.metrics.DecrementActiveWorkers()
			}
			return r.workerLoop(runCtx, worker, sem)
		})
	}

	err := g.Wait()
	summary := Summary{
		Snapshot:    r.Snapshot(),
		Workers:     r.cfg.Workers,
		DatasetSize: r.cfg.DatasetSize,
		Oracle:      r.oracle.Name(),
		Seed:        r.cfg.Seed,
	}
	if err != nil && !apperrors.IsContextError(err) {
		span.RecordError(err)
		return summary, err
	}
	return summary, nil
}

// workerLoop walks the dataset round-robin from a per-worker offset so
// workers do not march over the same cases in lockstep.
func (r *Runner) workerLoop(ctx context.Context, worker int, sem *semaphore.Weighted) error {
	var scratch bignum.FixedBigNum
	size := len(r.dataset.Subs)
	for i := worker; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		idx := i % size

		sub := &r.dataset.Subs[idx]
		status := bignum.Sub(&scratch, &sub.A, &sub.B)
		r.subOps.Add(1)
		r.subStatus[status].Add(1)
		if err := r.verifySub(ctx, sem, sub, &scratch, status, idx); err != nil {
			return err
		}

		shift := r.dataset.Shifts[idx]
		shiftStatus := bignum.ShiftLeft(&shift.Num, shift.Amount)
		r.shiftOps.Add(1)
		r.shiftStatus[shiftStatus].Add(1)
		if err := r.verifyShift(ctx, sem, &r.dataset.Shifts[idx], &shift.Num, shiftStatus, idx); err != nil {
			return err
		}
	}
}

func (r *Runner) verifySub(ctx context.Context, sem *semaphore.Weighted, c *SubCase, got *bignum.FixedBigNum, status bignum.SubStatus, idx int) error {
	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sem.Release(1)
	if err := r.oracle.VerifySub(c, got, status, idx); err != nil {
		r.mismatches.Add(1)
		if r.metrics != nil {
			r.metrics.ObserveMismatch()
		}
		r.log.Error("oracle mismatch", err, logging.String("kernel", KernelSub), logging.Int("case", idx))
		return err
	}
	return nil
}

func (r *Runner) verifyShift(ctx context.Context, sem *semaphore.Weighted, c *ShiftCase, after *bignum.FixedBigNum, status bignum.ShiftStatus, idx int) error {
	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sem.Release(1)
	if err := r.oracle.VerifyShift(c, after, status, idx); err != nil {
		r.mismatches.Add(1)
		if r.metrics != nil {
			r.metrics.ObserveMismatch()
		}
		r.log.Error("oracle mismatch", err, logging.String("kernel", KernelShiftLeft), logging.Int("case", idx))
		return err
	}
	return nil
}

// flushMetrics periodically pushes counter deltas to Prometheus.
func (r *Runner) flushMetrics(ctx context.Context) {
	ticker := time.NewTicker(metricsFlushInterval)
	defer ticker.Stop()

	var last Snapshot
	flush := func() {
		cur := r.Snapshot()
		for i := range cur.SubStatus {
			if d := cur.SubStatus[i] - last.SubStatus[i]; d > 0 {
				r.metrics.ObserveKernelOps(KernelSub, bignum.SubStatus(i).String(), float64(d))
			}
		}
		for i := range cur.ShiftStatus {
			if d := cur.ShiftStatus[i] - last.ShiftStatus[i]; d > 0 {
				r.metrics.ObserveKernelOps(KernelShiftLeft, bignum.ShiftStatus(i).String(), float64(d))
			}
		}
		last = cur
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-ticker.C:
			flush()
		}
	}
}
