package renderer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the number of terminal rows of the revenue plot.
const chartHeight = 10

// PanelText renders the statistics panel on one line, each amount colored by its sign.
func PanelText(p Panel) string {
	parts := make([]string, len(p.Stats))
	for i, s := range p.Stats {
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color)).Render(s.Text)
		parts[i] = s.Label + " " + value
	}
	return strings.Join(parts, "   ")
}

// NoticeText renders a notification as a colored badge.
func NoticeText(n Notice) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(n.Kind.Color())).
		Padding(0, 1)
	return style.Render(noticeSymbol(n.Kind) + " " + n.Message)
}

func noticeSymbol(k NoticeKind) string {
	switch k {
	case Success:
		return "✔"
	case Error:
		return "✖"
	default:
		return "ℹ"
	}
}

// Plot draws the revenue chart for a terminal: the line plot, the x axis
// labels and the tooltip of every displayed point.
func Plot(c Chart) string {
	if c.Empty != nil {
		return c.Empty.Title + "\n"
	}
	var b strings.Builder
	b.WriteString(asciigraph.Plot(c.Values,
		asciigraph.Height(chartHeight),
		asciigraph.Precision(0),
		asciigraph.Caption(c.Title+" ("+c.Period.String()+")"),
	))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(c.Labels, "  "))
	b.WriteString("\n\n")
	for i := range c.Len() {
		tip, _ := c.Tooltip(i)
		fmt.Fprintf(&b, "%-8s %s\n", c.Labels[i], tip)
	}
	return b.String()
}
