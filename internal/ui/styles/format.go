// Package styles contains Lip Gloss style definitions.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to fit within maxWidth, adding ellipsis if needed.
// ANSI escape sequences are preserved and never counted toward the width.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	// Need to truncate - leave room for ellipsis
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	return ansi.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to exactly width cells, truncating when it is
// wider.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return TruncateString(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft right-aligns s within width cells, truncating when it is wider.
func PadLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return TruncateString(s, width)
	}
	return strings.Repeat(" ", width-w) + s
}
