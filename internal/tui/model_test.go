package tui

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
	"github.com/kirill-bayborodov/bignum/internal/harness"
	"github.com/kirill-bayborodov/bignum/internal/logging"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.AppConfig{
		Mode:        config.ModeStress,
		Workers:     1,
		DatasetSize: 16,
		Duration:    time.Second,
		Seed:        42,
		Oracle:      config.OracleBig,
	}
	runner, err := harness.NewRunner(cfg, logging.NewStdLoggerAdapter(log.New(io.Discard, "", 0)), nil)
	if err != nil {
		t.Fatalf("NewRunner() error: %v", err)
	}
	return NewModel(runner, cfg, "test")
}

func TestModel_View_BeforeSize(t *testing.T) {
	m := testModel(t)
	if got := m.View(); !strings.Contains(got, "Initializing") {
		t.Errorf("unsized view = %q", got)
	}
}

func TestModel_WindowSizeAndView(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"bignum stress", "workers=1", "RUNNING", "ops/s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_PauseToggle(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updated.(Model)
	if !m.paused {
		t.Fatal("p should pause the display")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say so")
	}

	// Samples are dropped while paused.
	updated, _ = m.Update(SysStatsMsg{CPUPercent: 50})
	m = updated.(Model)
	if m.cpuLoad.Len() != 0 {
		t.Error("paused model should not record samples")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updated.(Model)
	if m.paused {
		t.Error("second p should resume")
	}
}

func TestModel_Quit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}

func TestModel_RunDone(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	clean := harness.Summary{Oracle: config.OracleBig}
	updated, _ = m.Update(RunDoneMsg{Summary: clean})
	m = updated.(Model)
	if !m.done || m.exitCode != apperrors.ExitSuccess {
		t.Errorf("clean finish: done=%v exitCode=%d", m.done, m.exitCode)
	}
	if !strings.Contains(m.View(), "DONE") {
		t.Error("finished view should report DONE")
	}

	// Ticks after completion must not reschedule sampling.
	if _, cmd := m.Update(TickMsg(time.Now())); cmd != nil {
		t.Error("tick after completion should be inert")
	}
}

func TestModel_RunDone_Mismatch(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	bad := harness.Summary{}
	bad.Mismatches = 2
	updated, _ = m.Update(RunDoneMsg{
		Summary: bad,
		Err:     apperrors.MismatchError{Kernel: harness.KernelSub, Detail: "forced", Case: 1},
	})
	m = updated.(Model)
	if m.exitCode != apperrors.ExitErrorMismatch {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(m.View(), "FAILED") {
		t.Error("mismatching view should report FAILED")
	}
}

func TestExitCodeFor(t *testing.T) {
	if got := exitCodeFor(harness.Summary{}, nil); got != apperrors.ExitSuccess {
		t.Errorf("clean = %d", got)
	}
	s := harness.Summary{}
	s.Mismatches = 1
	if got := exitCodeFor(s, nil); got != apperrors.ExitErrorMismatch {
		t.Errorf("mismatch = %d", got)
	}
	if got := exitCodeFor(harness.Summary{}, apperrors.NewConfigError("x")); got != apperrors.ExitErrorGeneric {
		t.Errorf("generic = %d", got)
	}
}
