package charts

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/ui/styles"
)

// Line is a min/max scaled line chart over a small series, typically twelve
// months.
type Line struct {
	Title  string
	Chip   string
	Months []string
	Values []float64
}

// Scale maps each value to a level in [0, levels-1], with the minimum at 0
// and the maximum at levels-1. A flat series sits at level 0.
func Scale(values []float64, levels int) []int {
	out := make([]int, len(values))
	if len(values) == 0 || levels <= 1 {
		return out
	}
	lo, hi := slices.Min(values), slices.Max(values)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i, v := range values {
		t := (v - lo) / span
		out[i] = int(math.Round(t * float64(levels-1)))
	}
	return out
}

// Columns spreads n points across width cells, first at 0 and last at
// width-1. A single point sits at 0.
func Columns(n, width int) []int {
	out := make([]int, n)
	if n <= 1 || width <= 1 {
		return out
	}
	step := float64(width-1) / float64(n-1)
	for i := range out {
		out[i] = int(math.Round(step * float64(i)))
	}
	return out
}

// PointLabel is the hover text for point i, e.g. "Feb: 14.2k". Months that
// are missing are named M1, M2, ...
func (l Line) PointLabel(i int) string {
	label := fmt.Sprintf("M%d", i+1)
	if i < len(l.Months) && l.Months[i] != "" {
		label = l.Months[i]
	}
	if i >= len(l.Values) {
		return label
	}
	return label + ": " + strconv.FormatFloat(l.Values[i], 'f', -1, 64) + "k"
}

// Render plots the series in width x height cells: the plot, then a row
// with the first, middle and last month labels.
func (l Line) Render(width, height int) string {
	n := len(l.Values)
	if n == 0 || width <= 0 || height < 2 {
		return ""
	}
	plot := height - 1
	levels := Scale(l.Values, plot)
	cols := Columns(n, width)

	grid := make([][]rune, plot)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	set := func(x, level int, r rune) {
		row := plot - 1 - level
		if row >= 0 && row < plot && x >= 0 && x < width && grid[row][x] == ' ' {
			grid[row][x] = r
		}
	}

	// Points first so connecting segments never overwrite them.
	for i := range n {
		set(cols[i], levels[i], '●')
	}
	for i := 1; i < n; i++ {
		x0, x1 := cols[i-1], cols[i]
		y0, y1 := levels[i-1], levels[i]
		for x := x0 + 1; x < x1; x++ {
			t := float64(x-x0) / float64(x1-x0)
			y := int(math.Round(float64(y0) + t*float64(y1-y0)))
			set(x, y, '·')
		}
	}

	lineStyle := lipgloss.NewStyle().Foreground(styles.ChartLineColor)
	rows := make([]string, 0, height)
	for _, r := range grid {
		rows = append(rows, lineStyle.Render(string(r)))
	}
	rows = append(rows, styles.MutedStyle.Render(l.axis(width)))
	return strings.Join(rows, "\n")
}

// axis renders the first, middle and last month labels under the plot.
func (l Line) axis(width int) string {
	if len(l.Months) == 0 {
		return strings.Repeat(" ", width)
	}
	line := []rune(strings.Repeat(" ", width))
	put := func(x int, s string) {
		for i, r := range []rune(s) {
			if x+i >= 0 && x+i < width {
				line[x+i] = r
			}
		}
	}
	first, last := l.Months[0], l.Months[len(l.Months)-1]
	put(0, first)
	if len(l.Months) > 2 {
		mid := l.Months[len(l.Months)/2]
		put((width-len([]rune(mid)))/2, mid)
	}
	put(width-len([]rune(last)), last)
	return string(line)
}
