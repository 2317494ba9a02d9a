package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kirill-bayborodov/bignum/internal/ui"
)

// Style variables for the dashboard, rebuilt from the active ui theme.
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	opsSparkStyle    lipgloss.Style
	cpuSparkStyle    lipgloss.Style
	statusOKStyle    lipgloss.Style
	statusWarnStyle  lipgloss.Style
	statusErrStyle   lipgloss.Style
	footerStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Called at
// package init and again from Run after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	versionStyle = lipgloss.NewStyle().Foreground(t.Dim)
	metricLabelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	metricValueStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	opsSparkStyle = lipgloss.NewStyle().Foreground(t.Accent)
	cpuSparkStyle = lipgloss.NewStyle().Foreground(t.Warning)
	statusOKStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	statusWarnStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	statusErrStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(t.Dim)
}
