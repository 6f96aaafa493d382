package txtable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/vtable"
)

// column describes one table column. Customer is the only flexible one.
type column struct {
	header string
	width  int // 0 = flex
	min    int
	align  lipgloss.Position
}

var columns = []column{
	{header: "ID", width: 7},
	{header: "Customer", min: 8},
	{header: "Amount", width: 10, align: lipgloss.Right},
	{header: "Status", width: 9},
}

const columnGap = 2

// layout resolves column widths for the given inner width. The flexible
// column absorbs whatever the fixed ones leave over, down to its minimum.
func layout(width int) []int {
	widths := make([]int, len(columns))
	fixed := columnGap * (len(columns) - 1)
	flex := -1
	for i, c := range columns {
		if c.width == 0 {
			flex = i
			continue
		}
		widths[i] = c.width
		fixed += c.width
	}
	if flex >= 0 {
		widths[flex] = max(width-fixed, columns[flex].min)
	}
	return widths
}

// fit pads or truncates s to exactly w cells.
func fit(s string, w int, align lipgloss.Position) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		s = truncate(s, w-1) + "…"
	}
	if align == lipgloss.Right {
		return runewidth.FillLeft(s, w)
	}
	return runewidth.FillRight(s, w)
}

// truncate cuts s to at most w cells without splitting a grapheme cluster,
// so accented names keep their combining marks.
func truncate(s string, w int) string {
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := g.Width()
		if used+cw > w {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	return b.String()
}

func joinCells(cells []string) string {
	return strings.Join(cells, strings.Repeat(" ", columnGap))
}

// renderHeader renders the column titles followed by a rule.
func renderHeader(widths []int, width int) []string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = fit(c.header, widths[i], c.align)
	}
	title := styles.TableHeaderStyle.Render(joinCells(cells))
	rule := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", max(width, 0)))
	return []string{title, rule}
}

// renderRow renders the fixed row template: id, customer, amount and a
// status cell styled by its class.
func renderRow(v vtable.RowView, widths []int) string {
	cells := []string{
		lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(fit(v.Row.ID, widths[0], columns[0].align)),
		lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(fit(v.Row.Customer, widths[1], columns[1].align)),
		lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(fit(v.Row.Amount, widths[2], columns[2].align)),
		styles.StatusStyle(v.Class).Render(fit(string(v.Row.Status), widths[3], columns[3].align)),
	}
	return joinCells(cells)
}
