package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/netarea/core"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(13).Foreground(lipgloss.Color("245"))
	focusStyle   = lipgloss.NewStyle().Width(13).Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	curveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	sparkletters = []rune("▁▂▃▄▅▆▇█")
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("netarea · net signed area estimator"))
	b.WriteString("\n")

	for f := field(0); f < fieldCount; f++ {
		if !m.visible(f) {
			continue
		}
		label := labelStyle.Render(labels[f])
		if f == m.focus {
			label = focusStyle.Render("› " + labels[f])
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(m.fieldView(f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.result.ErrorMessage != "":
		b.WriteString(errorStyle.Render(m.result.ErrorMessage))
	case m.result.NetAreaText != "":
		b.WriteString(resultStyle.Render("Net area: " + m.result.NetAreaText))
		if m.summary != "" {
			b.WriteString("\n" + dimStyle.Render(m.summary))
		}
		if m.curve != "" {
			b.WriteString("\n" + curveStyle.Render(m.curve))
		}
	default:
		b.WriteString(dimStyle.Render("Fill in the form to compute the net area."))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("tab/↑↓ move · ←/→ change choice · ctrl+r clear · esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) fieldView(f field) string {
	switch f {
	case fieldMethod:
		return choiceView(methodChoices[m.method])
	case fieldEndpoint:
		return choiceView(endpointChoices[m.endpoint])
	default:
		return m.inputs[f].View()
	}
}

func choiceView(v string) string {
	if v == "" {
		return dimStyle.Render("‹ not selected ›")
	}
	return "‹ " + v + " ›"
}

// sparkline renders the curve as one row of block glyphs, averaging the
// points that fall into each column.
func sparkline(pts []core.Point, width int) string {
	if len(pts) < 2 || width < 1 {
		return ""
	}
	x0, x1 := pts[0].X, pts[len(pts)-1].X
	if !(x1 > x0) {
		return ""
	}

	sums := make([]float64, width)
	counts := make([]int, width)
	for _, p := range pts {
		col := int(float64(width) * (p.X - x0) / (x1 - x0))
		if col >= width {
			col = width - 1
		}
		sums[col] += p.Y
		counts[col]++
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range sums {
		if counts[i] == 0 {
			continue
		}
		sums[i] /= float64(counts[i])
		lo, hi = math.Min(lo, sums[i]), math.Max(hi, sums[i])
	}

	var b strings.Builder
	top := len(sparkletters) - 1
	for i := range sums {
		switch {
		case counts[i] == 0:
			b.WriteRune(' ')
		case hi == lo:
			b.WriteRune(sparkletters[top/2])
		default:
			b.WriteRune(sparkletters[int(math.Round((sums[i]-lo)/(hi-lo)*float64(top)))])
		}
	}

	return b.String()
}
