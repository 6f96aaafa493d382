package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/ui/styles"
)

// Donut is a single-percentage ring with a legend. Legend entries take the
// swatch colors yellow, blue, green in turn.
type Donut struct {
	Title   string
	Chip    string
	Percent int
	Legend  []string
}

// ringCell classifies one cell of the ring grid.
type ringCell int

const (
	cellEmpty ringCell = iota
	cellFilled
	cellTrack
)

// Ring lays out a ring of the given outer radius (in lines) and returns a
// grid of cells. Terminal cells are about twice as tall as wide, so the grid
// is 4r+1 columns by 2r+1 lines. Filled cells run clockwise from 12 o'clock
// and cover percent of the ring.
func Ring(radius, percent int) [][]ringCell {
	if radius <= 0 {
		return nil
	}
	percent = max(0, min(percent, 100))
	inner := float64(radius) * 0.55
	outer := float64(radius) + 0.5

	grid := make([][]ringCell, 2*radius+1)
	for y := range grid {
		grid[y] = make([]ringCell, 4*radius+1)
		dy := float64(y - radius)
		for x := range grid[y] {
			dx := float64(x-2*radius) / 2
			d := math.Hypot(dx, dy)
			if d < inner || d > outer {
				continue
			}
			// Clockwise angle from 12 o'clock, in [0, 1).
			frac := math.Atan2(dx, -dy) / (2 * math.Pi)
			if frac < 0 {
				frac++
			}
			if frac < float64(percent)/100 {
				grid[y][x] = cellFilled
			} else {
				grid[y][x] = cellTrack
			}
		}
	}
	return grid
}

// Render draws the ring with the percentage in its center and the legend
// to the right, within width x height cells.
func (d Donut) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	radius := max(min((height-1)/2, (width/2-1)/4), 1)
	grid := Ring(radius, d.Percent)

	filled := lipgloss.NewStyle().Foreground(styles.SwatchColor(0))
	track := lipgloss.NewStyle().Foreground(styles.TableScrollbarColor)

	label := fmt.Sprintf("%d%%", max(0, min(d.Percent, 100)))
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			switch c {
			case cellFilled:
				b.WriteString(filled.Render("█"))
			case cellTrack:
				b.WriteString(track.Render("░"))
			default:
				b.WriteString(" ")
			}
		}
		lines[y] = b.String()
	}
	// The center row is blank inside the hole; overwrite it with the label.
	mid := len(grid) / 2
	lines[mid] = centerLabel(grid[mid], label, filled, track)

	ring := strings.Join(lines, "\n")
	legend := d.renderLegend()
	return lipgloss.JoinHorizontal(lipgloss.Center, ring, "  ", legend)
}

func centerLabel(row []ringCell, label string, filled, track lipgloss.Style) string {
	start := (len(row) - lipgloss.Width(label)) / 2
	var b strings.Builder
	for x := 0; x < len(row); x++ {
		if x == start {
			b.WriteString(styles.KPIValueStyle.Render(label))
			x += lipgloss.Width(label) - 1
			continue
		}
		switch row[x] {
		case cellFilled:
			b.WriteString(filled.Render("█"))
		case cellTrack:
			b.WriteString(track.Render("░"))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (d Donut) renderLegend() string {
	lines := make([]string, len(d.Legend))
	for i, name := range d.Legend {
		swatch := lipgloss.NewStyle().Foreground(styles.SwatchColor(i)).Render("■")
		lines[i] = swatch + " " + lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(name)
	}
	return strings.Join(lines, "\n")
}
