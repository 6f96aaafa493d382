// Package overlay composites modal content (help, logs, toasts) on top of an
// already rendered background view without clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the middle of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
	// BottomRight places the overlay in the bottom right corner.
	BottomRight
)

// Config controls overlay rendering behavior.
type Config struct {
	Width    int // total viewport width
	Height   int // total viewport height
	Position Position
	PadX     int // horizontal distance from the edge (BottomRight only)
	PadY     int // vertical distance from the edge (Top, Bottom, BottomRight)
}

// Place renders fg on top of bg at the configured position. Styling in both
// layers is preserved.
func Place(cfg Config, fg, bg string) string {
	x, y := origin(cfg, lipgloss.Width(fg), lipgloss.Height(fg))
	return At(fg, bg, x, y, cfg.Height)
}

// At splices fg into bg with its top-left corner at column x, line y. bg is
// padded with blank lines up to minHeight first. Foreground lines falling
// below the background are dropped.
func At(fg, bg string, x, y, minHeight int) string {
	bgLines := strings.Split(bg, "\n")
	width := lipgloss.Width(bg)
	for len(bgLines) < minHeight {
		bgLines = append(bgLines, strings.Repeat(" ", width))
	}

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of base starting at column x with insert.
func splice(base, insert string, x int) string {
	left := ansi.Truncate(base, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(insert)
	var right string
	if end < ansi.StringWidth(base) {
		right = ansi.TruncateLeft(base, end, "")
	}
	return left + insert + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	case BottomRight:
		x = cfg.Width - fgWidth - cfg.PadX
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
