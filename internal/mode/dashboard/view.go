package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/txdash/internal/mode/shared"
	"github.com/zjrosen/txdash/internal/ui/charts"
	"github.com/zjrosen/txdash/internal/ui/shared/panes"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

// Layout constants.
const (
	headerHeight    = 1
	statusBarHeight = 1
	sidebarWidth    = 22
	kpiPaneHeight   = 5
	minTableHeight  = 5
	minChartHeight  = 6
	maxChartHeight  = 12

	// Below this width the sidebar is hidden even when toggled on.
	minWidthForSidebar = 60
)

// layout holds the resolved pane sizes for one terminal size.
type layout struct {
	sidebarWidth int
	mainWidth    int
	bodyHeight   int
	kpiHeight    int // 0 = hidden
	chartHeight  int // 0 = hidden
	tableHeight  int
}

// computeLayout splits the screen: a header line, the sidebar beside the
// main column, and a status bar. The main column stacks the KPI pane, the
// chart row and the table. Charts and KPIs give way before the table drops
// under minTableHeight.
func computeLayout(width, height int, showSidebar bool) layout {
	var l layout
	l.bodyHeight = max(height-headerHeight-statusBarHeight, 0)
	if showSidebar && width >= minWidthForSidebar {
		l.sidebarWidth = sidebarWidth
	}
	l.mainWidth = max(width-l.sidebarWidth, 0)

	rest := l.bodyHeight
	if rest-kpiPaneHeight >= minTableHeight {
		l.kpiHeight = kpiPaneHeight
		rest -= kpiPaneHeight
	}
	chart := min(max(rest/3, minChartHeight), maxChartHeight)
	if rest-chart >= minTableHeight {
		l.chartHeight = chart
		rest -= chart
	}
	l.tableHeight = rest
	return l
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	l := computeLayout(m.width, m.height, m.showSidebar)

	main := m.renderMain(l)
	body := main
	if l.sidebarWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(l), main)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatusBar(),
	)

	if m.showHelp {
		return zone.Scan(m.help.Overlay(view))
	}
	return zone.Scan(view)
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render("txdash")
	crumb := styles.ChipStyle.Render(" · " + m.Section().Title)
	if m.loading {
		crumb += styles.MutedStyle.Render("  loading…")
	}
	return styles.PadRight(" "+title+crumb, m.width)
}

func (m Model) renderSidebar(l layout) string {
	var b strings.Builder
	inner := l.sidebarWidth - 2
	for i, s := range m.sections {
		label := fmt.Sprintf("%d  %s", i+1, s.Title)
		style := styles.SidebarItemStyle
		if i == m.current {
			style = styles.SidebarActive
		}
		b.WriteString(zone.Mark(makeSectionZoneID(i), style.Width(inner).Render(label)))
		b.WriteString("\n")
	}
	return panes.BorderedPane(panes.BorderConfig{
		Content:            strings.TrimSuffix(b.String(), "\n"),
		Width:              l.sidebarWidth,
		Height:             l.bodyHeight,
		TopLeft:            "Menu",
		BottomLeft:         "m hide",
		Focused:            m.focus == FocusSidebar,
		TitleColor:         styles.TextPrimaryColor,
		FocusedBorderColor: styles.BorderFocusColor,
	})
}

func (m Model) renderMain(l layout) string {
	sec := m.Section()
	var parts []string

	if l.kpiHeight > 0 {
		parts = append(parts, panes.BorderedPane(panes.BorderConfig{
			Content:    charts.RenderKPIs(sec.KPIs, l.mainWidth-2),
			Width:      l.mainWidth,
			Height:     l.kpiHeight,
			TopLeft:    "Overview",
			TitleColor: styles.TextPrimaryColor,
		}))
	}
	if l.chartHeight > 0 {
		parts = append(parts, m.renderCharts(sec, l))
	}
	if l.tableHeight > 0 {
		parts = append(parts, m.table.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderCharts lays out the bar (2/5), donut (1/4) and line (the rest)
// cards side by side.
func (m Model) renderCharts(sec Section, l layout) string {
	barWidth := l.mainWidth * 2 / 5
	donutWidth := l.mainWidth / 4
	lineWidth := l.mainWidth - barWidth - donutWidth
	inner := l.chartHeight - 2

	card := func(title, chip, content string, width int) string {
		return panes.BorderedPane(panes.BorderConfig{
			Content:    content,
			Width:      width,
			Height:     l.chartHeight,
			TopLeft:    title,
			TopRight:   chip,
			TitleColor: styles.TextPrimaryColor,
		})
	}

	barChip := sec.Bar.Chip1
	if sec.Bar.Chip2 != "" {
		barChip += " · " + sec.Bar.Chip2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(sec.Bar.Title, barChip, sec.Bar.Render(barWidth-2, inner), barWidth),
		card(sec.Donut.Title, sec.Donut.Chip, sec.Donut.Render(donutWidth-2, inner), donutWidth),
		card(sec.Line.Title, sec.Line.Chip, sec.Line.Render(lineWidth-2, inner), lineWidth),
	)
}

func (m Model) renderStatusBar() string {
	var notes []string
	if m.paintMillis > 0 {
		notes = append(notes, fmt.Sprintf("Initial paint %d ms", m.paintMillis))
	}
	if !m.lastLoad.IsZero() {
		notes = append(notes, "Loaded "+shared.FormatSince(m.lastLoad, m.services.Clock.Now()))
	}
	if w := m.table.Visible(); !w.Empty() {
		notes = append(notes, fmt.Sprintf("%d–%d of %s", w.Start+1, w.End, m.table.RowCountChip()))
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}

	left := strings.Join(notes, " · ")
	right := styles.MutedStyle.Render(strings.Join(hints, "  "))
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.PadRight(styles.StatusBarStyle.Render(left+strings.Repeat(" ", gap)+right), m.width)
}
