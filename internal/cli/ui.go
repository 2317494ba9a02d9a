//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/kirill-bayborodov/bignum/internal/format"
	"github.com/kirill-bayborodov/bignum/internal/harness"
)

// ProgressRefreshRate is the spinner animation and snapshot poll interval.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so progress display can be tested
// without a TTY.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner glyph.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// NewSpinner is the default Spinner factory, replaceable in tests.
var NewSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayStressProgress animates a spinner with live throughput figures
// until ctx is canceled. snapshot must be safe to call concurrently with
// the running harness. Used for stress runs without the TUI dashboard.
func DisplayStressProgress(ctx context.Context, sp Spinner, snapshot func() harness.Snapshot) {
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sp.UpdateSuffix(FormatProgressSuffix(snapshot()))
		}
	}
}

// FormatProgressSuffix renders a snapshot as a one-line spinner suffix.
func FormatProgressSuffix(s harness.Snapshot) string {
	return fmt.Sprintf(" %s ops | %s | %d mismatches",
		format.FormatCount(float64(s.TotalOps())),
		format.FormatOpsPerSecond(s.OpsPerSecond()),
		s.Mismatches)
}
