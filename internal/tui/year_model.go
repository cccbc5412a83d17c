// Package tui provides the interactive terminal view of a CII assessment.
package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/engine"
	"github.com/etivemor/ciicalc/internal/report"
)

// Layout constants.
const (
	tableHeight   = 12
	detailWidth   = 44
	columnYear    = 7
	columnNumber  = 12
	columnRating  = 6
	chromeHeight  = 6
	minTableLines = 3
)

// YearModel is the Bubble Tea model that lists the 12 rated years and
// shows the boundaries of the selected one.
type YearModel struct {
	assessment *engine.Assessment
	table      table.Model
	precision  int
	width      int
	height     int
	quitting   bool
}

// NewYearModel builds the model for a, printing figures with precision
// decimals. The cursor starts on the measured year when there is one.
func NewYearModel(a *engine.Assessment, precision int) *YearModel {
	columns := []table.Column{
		{Title: "Year", Width: columnYear},
		{Title: "Required", Width: columnNumber},
		{Title: "Attained", Width: columnNumber},
		{Title: "Ratio", Width: columnNumber},
		{Title: "Rating", Width: columnRating},
	}

	results := a.Result.Results
	rows := make([]table.Row, len(results))
	cursor := 0
	for i, yr := range results {
		year := strconv.Itoa(yr.Year)
		if yr.IsMeasuredYear {
			year += "*"
			cursor = i
		}
		rows[i] = table.Row{
			year,
			report.FormatFloat(yr.RequiredCII, precision),
			report.FormatFloat(yr.AttainedCII, precision),
			report.FormatFloat(yr.Ratio, precision),
			yr.Rating.String(),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	t.SetCursor(cursor)

	return &YearModel{assessment: a, table: t, precision: precision}
}

// Init implements tea.Model.
func (m *YearModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, quitting and resizing. Up/down and j/k are
// handled by the table's key map.
func (m *YearModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(minTableLines, min(tableHeight, msg.Height-chromeHeight)))
		m.scrollToCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// scrollToCursor re-derives the table viewport after a height change so the
// selected row stays visible.
func (m *YearModel) scrollToCursor() {
	cursor := m.table.Cursor()
	m.table.GotoTop()
	m.table.MoveDown(cursor)
}

// Selected returns the year under the cursor.
func (m *YearModel) Selected() (cii.YearResult, bool) {
	i := m.table.Cursor()
	results := m.assessment.Result.Results
	if i < 0 || i >= len(results) {
		return cii.YearResult{}, false
	}
	return results[i], true
}

// View implements tea.Model.
func (m *YearModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	title := "CII ASSESSMENT  " + m.assessment.Ship.Type.String()
	if m.assessment.ShipName != "" {
		title += "  " + m.assessment.ShipName
	}
	sb.WriteString(HeaderStyle.Render(title))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.table.View(),
		"  ",
		m.renderDetail(),
	))
	sb.WriteString("\n\n")
	sb.WriteString(HelpStyle.Render("↑/↓ j/k navigate • q quit • * measured year"))
	sb.WriteString("\n")
	return sb.String()
}

func (m *YearModel) renderDetail() string {
	yr, ok := m.Selected()
	if !ok {
		return DetailBoxStyle.Width(detailWidth).Render(InfoStyle.Render("No year selected."))
	}

	var sb strings.Builder
	kind := "estimated"
	if yr.IsMeasuredYear {
		kind = "measured"
	}
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("YEAR %d (%s)", yr.Year, kind)))
	sb.WriteString("\n")

	writeDetail(&sb, "Rating:", report.RatingStyle(yr.Rating).Render(yr.Rating.String()))
	writeDetail(&sb, "Required CII:", report.FormatFloat(yr.RequiredCII, m.precision))
	writeDetail(&sb, "Attained CII:", report.FormatFloat(yr.AttainedCII, m.precision))
	sb.WriteString("\n")

	b := yr.Boundaries
	for _, boundary := range cii.Boundaries() {
		writeDetail(&sb, boundary.String()+":", report.FormatFloat(b.Value(boundary), m.precision))
	}
	writeDetail(&sb, "Capacity unit:", strings.ToUpper(b.CapacityUnit.String()))
	writeDetail(&sb, "Weight class:", formatWeightClass(b.WeightClassification))

	return DetailBoxStyle.Width(detailWidth).Render(sb.String())
}

func writeDetail(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-15s", label)))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

func formatWeightClass(w cii.WeightClassification) string {
	upper := "unbounded"
	if !math.IsInf(w.Upper, 1) {
		upper = report.FormatFloat(w.Upper, 0)
	}
	return fmt.Sprintf("%s to %s DWT", report.FormatFloat(w.Lower, 0), upper)
}

// Run shows the interactive view until the user quits or ctx is cancelled.
func Run(ctx context.Context, a *engine.Assessment, precision int) error {
	p := tea.NewProgram(NewYearModel(a, precision), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}
	return nil
}
