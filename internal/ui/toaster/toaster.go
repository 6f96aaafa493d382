// Package toaster provides a transient notification shown above the
// dashboard, used for theme toggles, dataset reloads and load failures.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/txdash/internal/ui/overlay"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up when shown with Show.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

var icons = map[Style]string{
	StyleSuccess: "✓",
	StyleError:   "✗",
	StyleInfo:    "i",
	StyleWarn:    "!",
}

// Model holds the toaster state. Each Show bumps the generation so that a
// dismissal scheduled for an older toast leaves a newer one alone.
type Model struct {
	message    string
	style      Style
	visible    bool
	generation int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that dismisses it after
// DefaultDuration.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	return m.ShowFor(message, style, DefaultDuration)
}

// ShowFor is Show with an explicit duration.
func (m Model) ShowFor(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.generation++
	gen := m.generation
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{generation: gen}
	})
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Update hides the toast when its own DismissMsg arrives.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.generation == m.generation {
		return m.Hide()
	}
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the visible toast.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	border := styles.ToastBorderSuccessColor
	switch m.style {
	case StyleError:
		border = styles.ToastBorderErrorColor
	case StyleInfo:
		border = styles.ToastBorderInfoColor
	case StyleWarn:
		border = styles.ToastBorderWarnColor
	}

	icon := lipgloss.NewStyle().Foreground(border).Bold(true).Render(icons[m.style])
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(icon + " " + m.message)
}

// Overlay renders the toast in the bottom right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     2,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg signals that the toast with a given generation should be dismissed.
type DismissMsg struct {
	generation int
}
