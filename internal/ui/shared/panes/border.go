// Package panes contains the bordered card used for every dashboard panel.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/ui/styles"
)

// Rounded border glyphs.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // rendered inside the border
	Width   int    // total width including borders
	Height  int    // total height including borders

	// Labels embedded in the border. The card title goes top left, its chips
	// (e.g. "This week", "10,000 rows") top right.
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused            bool
	TitleColor         lipgloss.TerminalColor // nil: BorderDefaultColor
	BorderColor        lipgloss.TerminalColor // nil: BorderDefaultColor
	FocusedBorderColor lipgloss.TerminalColor // nil: BorderColor
}

// BorderedPane renders content within a rounded border with optional labels.
// Content is clipped or padded to exactly fill the inner area.
func BorderedPane(cfg BorderConfig) string {
	borderStyle := lipgloss.NewStyle().Foreground(resolveBorderColor(cfg))
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	innerHeight := max(cfg.Height-2, 1)

	lines := make([]string, 0, innerHeight+2)
	lines = append(lines, edge(borderTopLeft, borderTopRight, cfg.TopLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle))

	content := strings.Split(cfg.Content, "\n")
	side := borderStyle.Render(borderVertical)
	for i := range innerHeight {
		var line string
		if i < len(content) {
			line = content[i]
		}
		lines = append(lines, side+styles.PadRight(line, innerWidth)+side)
	}

	lines = append(lines, edge(borderBottomLeft, borderBottomRight, cfg.BottomLeft, cfg.BottomRight, innerWidth, borderStyle, titleStyle))
	return strings.Join(lines, "\n")
}

// resolveBorderColor picks the border color for the focus state. An unset
// focused color inherits the normal one; an unset normal color falls back
// to BorderDefaultColor.
func resolveBorderColor(cfg BorderConfig) lipgloss.TerminalColor {
	if cfg.Focused && cfg.FocusedBorderColor != nil {
		return cfg.FocusedBorderColor
	}
	if cfg.BorderColor != nil {
		return cfg.BorderColor
	}
	return styles.BorderDefaultColor
}

// edge builds a horizontal border with labels embedded left and right:
//
//	╭─ Left ──────────── Right ─╮
//
// When both labels do not fit, the right one is dropped first and the left
// one is truncated.
func edge(leftCorner, rightCorner, left, right string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	plain := func() string {
		return borderStyle.Render(leftCorner + strings.Repeat(borderHorizontal, innerWidth) + rightCorner)
	}
	if left == "" && right == "" {
		return plain()
	}

	// Each label costs its width plus "─ " before and " " after (or the
	// mirror image on the right).
	cost := func(s string) int {
		if s == "" {
			return 0
		}
		return lipgloss.Width(s) + 3
	}
	if cost(left)+cost(right)+1 > innerWidth {
		right = ""
	}
	if cost(left)+1 > innerWidth {
		if innerWidth < 5 {
			return plain()
		}
		left = styles.TruncateString(left, innerWidth-4)
	}

	fill := max(innerWidth-cost(left)-cost(right), 1)

	var b strings.Builder
	b.WriteString(borderStyle.Render(leftCorner))
	if left != "" {
		b.WriteString(borderStyle.Render(borderHorizontal + " "))
		b.WriteString(titleStyle.Render(left))
		b.WriteString(borderStyle.Render(" "))
	}
	b.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, fill)))
	if right != "" {
		b.WriteString(borderStyle.Render(" "))
		b.WriteString(titleStyle.Render(right))
		b.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	b.WriteString(borderStyle.Render(rightCorner))
	return b.String()
}
