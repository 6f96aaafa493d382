// Package logoverlay shows recent debug log entries on top of the dashboard.
// Entries can be filtered by minimum level and by category, and the view
// follows new entries while it is scrolled to the bottom.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/ui/overlay"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

const (
	viewportMaxHeight = 20
	viewportMinHeight = 3
	boxMaxWidth       = 140
	boxMinWidth       = 40

	// chrome is the lines around the viewport: border (2), title and
	// divider (2), divider and hint (2).
	chrome = 6
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the log overlay component state.
type Model struct {
	visible  bool
	minLevel log.Level
	category log.Category // "" shows every category
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay showing every level and category.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Update handles keys while the overlay is visible. Hidden overlays ignore
// every message.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			log.ClearBuffer()
			m.refresh()
		case "d":
			m.setLevel(log.LevelDebug)
		case "i":
			m.setLevel(log.LevelInfo)
		case "w":
			m.setLevel(log.LevelWarn)
		case "e":
			m.setLevel(log.LevelError)
		case "tab":
			m.category = nextCategory(m.category)
			m.refresh()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) setLevel(level log.Level) {
	m.minLevel = level
	m.refresh()
}

// nextCategory cycles "" -> table -> data -> ... -> trace -> "".
func nextCategory(c log.Category) log.Category {
	cats := log.Categories()
	if c == "" {
		return cats[0]
	}
	for i, cat := range cats {
		if cat == c && i+1 < len(cats) {
			return cats[i+1]
		}
	}
	return ""
}

// EntryLogged refreshes the content after a new log entry, keeping the view
// pinned to the bottom when it already was.
func (m *Model) EntryLogged() {
	if !m.visible {
		return
	}
	follow := m.viewport.AtBottom()
	m.viewport.SetContent(m.content())
	if follow {
		m.viewport.GotoBottom()
	}
}

// View renders the overlay box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	boxWidth := m.boxWidth()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	title := "Logs"
	if m.category != "" {
		title += " · " + string(m.category)
	}

	body := strings.Join([]string{
		titleStyle.Render(title),
		divider,
		m.viewport.View(),
		divider,
		m.filterHint(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(body)
}

// Overlay renders the overlay centered on bg, or bg unchanged when hidden.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips visibility, reloading entries when it opens.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
	}
}

// Hide closes the overlay.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize records the screen size and re-lays the viewport.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refresh()
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m Model) contentWidth() int {
	return m.boxWidth() - 2
}

// refresh rebuilds the viewport for the current size and filters and
// scrolls to the newest entry.
func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := max(min(viewportMaxHeight, m.height-chrome), viewportMinHeight)
	m.viewport = viewport.New(m.contentWidth(), h)
	m.viewport.SetContent(m.content())
	m.viewport.GotoBottom()
}

// Entries returns the buffered entries that pass the current filters,
// oldest first.
func (m Model) Entries() []string {
	var out []string
	for _, entry := range log.GetRecentLogs(10000) {
		if m.matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}

func (m Model) content() string {
	entries := m.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true).
			Render("No logs to display")
	}
	width := m.contentWidth()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = colorize(e, width)
	}
	return strings.Join(lines, "\n")
}

// entryLevel reads the level tag written by log.Format.
func entryLevel(entry string) (log.Level, bool) {
	switch {
	case strings.Contains(entry, "[ERROR]"):
		return log.LevelError, true
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn, true
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo, true
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug, true
	}
	return 0, false
}

func (m Model) matches(entry string) bool {
	if m.category != "" && !strings.Contains(entry, "["+string(m.category)+"]") {
		return false
	}
	level, ok := entryLevel(entry)
	if !ok {
		return true
	}
	return level >= m.minLevel
}

func colorize(entry string, width int) string {
	entry = strings.TrimSuffix(entry, "\n")
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width, "...")
	}

	color := styles.TextPrimaryColor
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarnColor
		case log.LevelInfo:
			color = styles.ToastBorderInfoColor
		default:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

// filterHint lists the footer keys with the active level in bold.
func (m Model) filterHint() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{hint.Render("[c] Clear")}
	for _, f := range []struct {
		label string
		level log.Level
	}{
		{"[d] Debug", log.LevelDebug},
		{"[i] Info", log.LevelInfo},
		{"[w] Warn", log.LevelWarn},
		{"[e] Error", log.LevelError},
	} {
		style := hint
		if f.level == m.minLevel {
			style = active
		}
		parts = append(parts, style.Render(f.label))
	}
	parts = append(parts, hint.Render("[tab] Category"))
	return strings.Join(parts, "  ")
}
