// Package format provides human-readable rendering of durations, rates and
// counts for CLI and log output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows nanoseconds for sub-microsecond durations, microseconds for
// durations less than a millisecond, milliseconds for durations less than a
// second, and the default string representation otherwise. This approach
// provides a more human-readable output for the short durations typical of
// single kernel calls.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatOpsPerSecond renders an operation rate with an SI suffix, e.g.
// "12.3M ops/s".
func FormatOpsPerSecond(rate float64) string {
	return FormatCount(rate) + " ops/s"
}

// FormatCount renders a count with an SI suffix (K, M, G), keeping one
// decimal above 1000.
func FormatCount(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fG", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	}
	return fmt.Sprintf("%.0f", v)
}
