// Package charts draws the dashboard's bar, donut and line charts and KPI
// cards as plain lipgloss strings sized to a given cell box.
package charts

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/ui/styles"
)

// eighths are the partial block glyphs used for the top cell of a bar.
var eighths = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Bar is a vertical bar chart. Values are percentages of the plot height;
// anything outside 0..100 is clamped.
type Bar struct {
	Title    string
	Chip1    string
	Chip2    string
	Labels   []string
	Values   []float64
	Tooltips []string
}

// BarHeights converts percentages to bar heights in eighths of a cell for
// a plot that is height cells tall.
func BarHeights(values []float64, height int) []int {
	out := make([]int, len(values))
	if height <= 0 {
		return out
	}
	for i, v := range values {
		v = math.Max(0, math.Min(100, v))
		out[i] = int(math.Round(v / 100 * float64(height*8)))
	}
	return out
}

// Tooltip returns the "label tooltip" text shown for bar i, e.g. "Fri 9.2k".
func (b Bar) Tooltip(i int) string {
	var label, tip string
	if i < len(b.Labels) {
		label = b.Labels[i]
	}
	if i < len(b.Tooltips) {
		tip = b.Tooltips[i]
	}
	return strings.TrimSpace(label + " " + tip)
}

// Render draws the chart in width x height cells: the bars, then a row of
// tooltips and a row of labels. The tallest bar's tooltip is highlighted.
func (b Bar) Render(width, height int) string {
	n := len(b.Values)
	if n == 0 || width <= 0 || height < 3 {
		return ""
	}
	plot := height - 2
	slot := max(width/n, 1)
	barWidth := max(slot-1, 1)

	heights := BarHeights(b.Values, plot)
	barStyle := lipgloss.NewStyle().Foreground(styles.ChartBarColor)

	rows := make([]string, plot)
	for r := range plot {
		// r counts from the top; level is the eighths covered below this row.
		level := (plot - 1 - r) * 8
		var line strings.Builder
		for i := range n {
			fill := max(0, min(heights[i]-level, 8))
			line.WriteString(barStyle.Render(strings.Repeat(eighths[fill], barWidth)))
			line.WriteString(strings.Repeat(" ", slot-barWidth))
		}
		rows[r] = line.String()
	}

	peak := 0
	for i, v := range b.Values {
		if v > b.Values[peak] {
			peak = i
		}
	}

	tips := make([]string, n)
	labels := make([]string, n)
	for i := range n {
		var tip string
		if i < len(b.Tooltips) {
			tip = b.Tooltips[i]
		}
		tipStyle := styles.MutedStyle
		if i == peak && b.Values[peak] > 0 {
			tipStyle = styles.KPIValueStyle
		}
		tips[i] = tipStyle.Render(styles.PadRight(tip, slot))

		var label string
		if i < len(b.Labels) {
			label = b.Labels[i]
		}
		labels[i] = styles.MutedStyle.Render(styles.PadRight(label, slot))
	}

	rows = append(rows, strings.Join(tips, ""), strings.Join(labels, ""))
	return strings.Join(rows, "\n")
}
