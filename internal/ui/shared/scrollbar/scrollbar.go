// Package scrollbar renders a one-column vertical scrollbar whose thumb
// reflects the position of a viewport over a longer logical content.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/ui/styles"
)

const (
	thumbChar = "█"
	trackChar = "│"
)

// Config describes the scrolled content. All values are in lines.
type Config struct {
	Total  int // logical content height (the vtable spacer height)
	Height int // visible lines, also the track length
	Offset int // first visible line
}

// Thumb returns the first track line and the length of the thumb. Content
// that fits in the viewport fills the whole track.
func Thumb(cfg Config) (start, length int) {
	if cfg.Total <= 0 || cfg.Height <= 0 {
		return 0, 0
	}
	if cfg.Total <= cfg.Height {
		return 0, cfg.Height
	}

	length = max(1, cfg.Height*cfg.Height/cfg.Total)

	maxOffset := cfg.Total - cfg.Height
	track := cfg.Height - length
	if track == 0 {
		return 0, length
	}
	offset := max(0, min(cfg.Offset, maxOffset))

	// Round so the thumb only reaches the last track line at the very end.
	start = (track*offset + maxOffset/2) / maxOffset
	if offset < maxOffset {
		start = min(start, track-1)
	}
	return max(0, min(start, track)), length
}

// Render returns Height lines of a single cell each. Content that fits the
// viewport renders as blank cells.
func Render(cfg Config) string {
	if cfg.Height <= 0 {
		return ""
	}
	lines := make([]string, cfg.Height)
	if cfg.Total <= cfg.Height {
		for i := range lines {
			lines[i] = " "
		}
		return strings.Join(lines, "\n")
	}

	trackStyle := lipgloss.NewStyle().Foreground(styles.TableScrollbarColor)
	thumbStyle := lipgloss.NewStyle().Foreground(styles.TableThumbColor)

	start, length := Thumb(cfg)
	for i := range lines {
		if i >= start && i < start+length {
			lines[i] = thumbStyle.Render(thumbChar)
		} else {
			lines[i] = trackStyle.Render(trackChar)
		}
	}
	return strings.Join(lines, "\n")
}
