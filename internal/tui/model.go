// Package tui implements the live stress dashboard: throughput and system
// load sparklines over the running harness, refreshed twice a second.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
	"github.com/kirill-bayborodov/bignum/internal/format"
	"github.com/kirill-bayborodov/bignum/internal/harness"
	"github.com/kirill-bayborodov/bignum/internal/sysmon"
)

// tickInterval is the dashboard refresh period.
const tickInterval = 500 * time.Millisecond

// sparklineCapacity bounds the history kept per chart.
const sparklineCapacity = 120

// TickMsg drives the periodic refresh.
type TickMsg time.Time

// SysStatsMsg carries one system load sample.
type SysStatsMsg sysmon.Stats

// RunDoneMsg reports the end of the stress run.
type RunDoneMsg struct {
	Summary harness.Summary
	Err     error
}

// Model is the root bubbletea model for the stress dashboard.
type Model struct {
	runner  *harness.Runner
	cfg     config.AppConfig
	version string
	keymap  KeyMap
	help    help.Model

	width  int
	height int

	start    time.Time
	last     harness.Snapshot
	opsRate  *RingBuffer
	cpuLoad  *RingBuffer
	memLoad  *RingBuffer
	paused   bool
	done     bool
	summary  harness.Summary
	runErr   error
	exitCode int
}

// NewModel creates the dashboard model for a prepared runner.
func NewModel(runner *harness.Runner, cfg config.AppConfig, version string) Model {
	return Model{
		runner:   runner,
		cfg:      cfg,
		version:  version,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		start:    time.Now(),
		opsRate:  NewRingBuffer(sparklineCapacity),
		cpuLoad:  NewRingBuffer(sparklineCapacity),
		memLoad:  NewRingBuffer(sparklineCapacity),
		exitCode: apperrors.ExitSuccess,
	}
}

// Init starts the stress run and the refresh loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), sampleSysStatsCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Pause):
			m.paused = !m.paused
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			cur := m.runner.Snapshot()
			dt := cur.Elapsed - m.last.Elapsed
			if dt > 0 {
				rate := float64(cur.TotalOps()-m.last.TotalOps()) / dt.Seconds()
				m.opsRate.Push(rate)
			}
			m.last = cur
			return m, tea.Batch(tickCmd(), sampleSysStatsCmd())
		}
		return m, tickCmd()

	case SysStatsMsg:
		if !m.paused {
			m.cpuLoad.Push(msg.CPUPercent)
			m.memLoad.Push(msg.MemPercent)
		}
		return m, nil

	case RunDoneMsg:
		m.done = true
		m.summary = msg.Summary
		m.runErr = msg.Err
		m.last = msg.Summary.Snapshot
		m.exitCode = exitCodeFor(msg.Summary, msg.Err)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render("bignum stress") + " " + versionStyle.Render(m.version)
	header := fmt.Sprintf("%s  %s",
		title,
		metricLabelStyle.Render(fmt.Sprintf("workers=%d dataset=%d oracle=%s seed=%d",
			m.cfg.Workers, m.cfg.DatasetSize, m.cfg.Oracle, m.cfg.Seed)))

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.metricsPanel(),
		m.chartsPanel(),
	)

	footer := footerStyle.Render(m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) metricsPanel() string {
	s := m.last
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(metricLabelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(metricValueStyle.Render(value))
		b.WriteByte('\n')
	}
	row("elapsed", format.FormatExecutionDuration(s.Elapsed))
	row("total ops", format.FormatCount(float64(s.TotalOps())))
	row("throughput", format.FormatOpsPerSecond(s.OpsPerSecond()))
	row(harness.KernelSub, statusLine(s.SubStatus[:], subStatusName))
	row(harness.KernelShiftLeft, statusLine(s.ShiftStatus[:], shiftStatusName))
	b.WriteString(m.statusLine())
	return panelStyle.Width(m.innerWidth()).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) chartsPanel() string {
	var b strings.Builder
	b.WriteString(metricLabelStyle.Render("ops/s "))
	b.WriteString(opsSparkStyle.Render(RenderScaledSparkline(m.opsRate.Slice())))
	b.WriteByte('\n')
	b.WriteString(metricLabelStyle.Render("cpu%  "))
	b.WriteString(cpuSparkStyle.Render(RenderSparkline(m.cpuLoad.Slice())))
	b.WriteByte('\n')
	b.WriteString(metricLabelStyle.Render("mem%  "))
	b.WriteString(cpuSparkStyle.Render(RenderSparkline(m.memLoad.Slice())))
	return panelStyle.Width(m.innerWidth()).Render(b.String())
}

func (m Model) statusLine() string {
	switch {
	case !m.done && m.paused:
		return statusWarnStyle.Render("PAUSED (display only, harness keeps running)")
	case !m.done:
		return statusOKStyle.Render("RUNNING")
	case m.summary.Mismatches > 0 || m.runErr != nil:
		return statusErrStyle.Render(fmt.Sprintf("FAILED (%d mismatches)", m.summary.Mismatches))
	default:
		return statusOKStyle.Render("DONE, all results consistent (press q)")
	}
}

func (m Model) innerWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// statusLine renders nonzero per-status counters as "name:count" pairs.
func statusLine(counts []uint64, name func(int) string) string {
	parts := make([]string, 0, len(counts))
	for i, n := range counts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%s", name(i), format.FormatCount(float64(n))))
		}
	}
	if len(parts) == 0 {
		return "idle"
	}
	return strings.Join(parts, "  ")
}

func subStatusName(i int) string { return bignum.SubStatus(i).String() }

func shiftStatusName(i int) string { return bignum.ShiftStatus(i).String() }

// exitCodeFor maps a finished run to the process exit code.
func exitCodeFor(s harness.Summary, err error) int {
	var mm apperrors.MismatchError
	switch {
	case errors.As(err, &mm) || s.Mismatches > 0:
		return apperrors.ExitErrorMismatch
	case err != nil && apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	case err != nil:
		return apperrors.ExitErrorGeneric
	default:
		return apperrors.ExitSuccess
	}
}

// Run drives a full TUI session: it launches the stress run, renders until
// the user quits, and returns the process exit code.
func Run(ctx context.Context, runner *harness.Runner, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(runner, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		summary, err := runner.Run(ctx)
		p.Send(RunDoneMsg{Summary: summary, Err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd schedules the next refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory load off the UI loop.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}
