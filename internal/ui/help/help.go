// Package help contains the help overlay: key bindings for the sidebar,
// the transactions table and the app, plus a short markdown note on how
// the table renders.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/keys"
	"github.com/zjrosen/txdash/internal/ui/markdown"
	"github.com/zjrosen/txdash/internal/ui/overlay"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

// About is the markdown shown under the key bindings.
const About = `**Transactions** only draws the rows inside the viewport plus a buffer
of 10 rows above and below. Scrolling schedules at most one redraw per frame,
and the row count and scrollbar always reflect the full dataset.

Press ` + "`t`" + ` to switch between dark and light; the choice is saved to the config file.`

var (
	titleStyle   lipgloss.Style
	dividerStyle lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	boxStyle     lipgloss.Style
	footerStyle  lipgloss.Style
)

func init() {
	rebuildStyles()
	styles.RegisterStyleRebuilder(rebuildStyles)
}

func rebuildStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(2)
	dividerStyle = lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		MarginTop(1)
	keyStyle = lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(9)
	descStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor)
	footerStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor).MarginTop(1)
}

// Model holds the help overlay state.
type Model struct {
	keys      keys.KeyMap
	tableKeys keys.TableKeyMap
	width     int
	height    int
	md        *markdown.Renderer
}

// New creates a help overlay for the default key maps.
func New() Model {
	return Model{
		keys:      keys.DefaultKeyMap(),
		tableKeys: keys.DefaultTableKeyMap(),
	}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box on its own.
func (m Model) View() string {
	col := lipgloss.NewStyle().MarginRight(4)

	sidebar := column("Sidebar", m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Section)
	table := column("Table",
		m.tableKeys.LineUp, m.tableKeys.LineDown,
		m.tableKeys.PageUp, m.tableKeys.PageDown,
		m.tableKeys.HalfPageUp, m.tableKeys.HalfPageDown,
		m.tableKeys.Top, m.tableKeys.Bottom)
	general := column("General",
		m.keys.FocusNext, m.keys.ToggleMenu, m.keys.ToggleTheme,
		m.keys.Reload, m.keys.Yank, m.keys.ToggleLogs,
		m.keys.Help, m.keys.Quit)

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(sidebar), col.Render(table), general)

	width := lipgloss.Width(columns)
	about := m.renderAbout(width)
	boxWidth := width + 4

	body := lipgloss.NewStyle().Padding(0, 2).Render(
		columns + "\n\n" + about + "\n" + footerStyle.Render("Press ? or Esc to close"))

	content := titleStyle.Render("txdash Help") + "\n" +
		dividerStyle.Render(strings.Repeat("─", boxWidth)) + "\n" +
		body
	return boxStyle.Width(boxWidth).Render(content)
}

func (m Model) renderAbout(width int) string {
	md := m.md
	if md == nil || md.Width() != width || md.Stale() {
		// A failed renderer falls back to plain wrapped text.
		md, _ = markdown.New(width)
	}
	return markdown.RenderOrWrap(md, About, width)
}

func column(title string, bindings ...key.Binding) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	for _, binding := range bindings {
		h := binding.Help()
		b.WriteString(keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n")
	}
	return b.String()
}

// Overlay renders the help box centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
