package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/etivemor/ciicalc/internal/report"
)

// Colour palette.
const (
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHeader    = report.ColorHeader
	ColorHighlight = lipgloss.Color("229")
	ColorSelected  = lipgloss.Color("57")
	ColorBorder    = lipgloss.Color("240")
)

//nolint:gochecknoglobals // Shared immutable styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorLabel).Italic(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorLabel)

	TableHeaderStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(ColorBorder).BorderBottom(true).Bold(true)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Background(ColorSelected).Bold(false)
	DetailBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
)
