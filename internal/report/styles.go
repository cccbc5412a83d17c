package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/etivemor/ciicalc/internal/cii"
)

// Rating colours, from green (A) to red (E).
const (
	ColorRatingA = lipgloss.Color("34")
	ColorRatingB = lipgloss.Color("112")
	ColorRatingC = lipgloss.Color("220")
	ColorRatingD = lipgloss.Color("208")
	ColorRatingE = lipgloss.Color("196")
	ColorMuted   = lipgloss.Color("245")
	ColorHeader  = lipgloss.Color("39")
)

//nolint:gochecknoglobals // Shared immutable styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorRatingE).Bold(true)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorRatingA)
)

// RatingStyle returns the style used to print a rating letter.
func RatingStyle(r cii.Rating) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch r {
	case cii.RatingA:
		return base.Foreground(ColorRatingA)
	case cii.RatingB:
		return base.Foreground(ColorRatingB)
	case cii.RatingC:
		return base.Foreground(ColorRatingC)
	case cii.RatingD:
		return base.Foreground(ColorRatingD)
	case cii.RatingE:
		return base.Foreground(ColorRatingE)
	case cii.RatingUnknown:
		return base.Foreground(ColorMuted)
	default:
		return base
	}
}
