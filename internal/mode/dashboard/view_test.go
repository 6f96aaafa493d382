package dashboard

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/mode"
)

// program adapts a controller to tea.Model for teatest.
type program struct {
	c mode.Controller
}

func (p program) Init() tea.Cmd { return p.c.Init() }

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		p.c, cmd = p.c.SetSize(size.Width, size.Height)
		return p, cmd
	}
	p.c, cmd = p.c.Update(msg)
	return p, cmd
}

func (p program) View() string { return p.c.View() }

func sized(t *testing.T, width, height int) Model {
	t.Helper()
	services, _ := newTestServices(t)
	m := loaded(t, services)
	next, _ := m.SetSize(width, height)
	return next.(Model)
}

func TestView_EmptyBeforeSize(t *testing.T) {
	services, _ := newTestServices(t)
	require.Empty(t, New(services).View())
}

func TestView_FillsTerminal(t *testing.T) {
	m := sized(t, 140, 40)
	view := m.View()

	require.Equal(t, 40, lipgloss.Height(view))
	require.LessOrEqual(t, lipgloss.Width(view), 140)
}

func TestView_DashboardContent(t *testing.T) {
	view := sized(t, 140, 40).View()

	for _, want := range []string{
		"txdash", "Dashboard",
		"Menu", "Products", "Settings",
		"Orders", "4,890", "+12%", "$30,562",
		"Weekly Sales (Bar)", "Monthly Trend (Line)",
		TableTitle, "10,000 rows",
	} {
		require.Contains(t, view, want)
	}
}

func TestView_SectionSwitchChangesContent(t *testing.T) {
	m := sized(t, 140, 40)
	m, cmd := update(t, m, runeKey("2"))
	m, _ = update(t, m, cmd())

	view := m.View()
	require.Contains(t, view, "Units Sold / Day")
	require.Contains(t, view, "6,000 rows")
	require.NotContains(t, view, "Weekly Sales (Bar)")
}

func TestView_HiddenSidebar(t *testing.T) {
	m := sized(t, 140, 40)
	m, _ = update(t, m, runeKey("m"))
	require.NotContains(t, m.View(), "Menu")
}

func TestView_HelpOverlay(t *testing.T) {
	m := sized(t, 140, 40)
	m, _ = update(t, m, runeKey("?"))
	require.Contains(t, m.View(), "txdash Help")
}

func TestView_ShortTerminalKeepsTable(t *testing.T) {
	view := sized(t, 100, 12).View()
	require.Contains(t, view, TableTitle)
	require.NotContains(t, view, "Weekly Sales (Bar)")
}

func TestProgram_RendersAndQuits(t *testing.T) {
	services, _ := newTestServices(t)
	tm := teatest.NewTestModel(t, program{c: New(services)}, teatest.WithInitialTermSize(140, 40))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("10,000 rows"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(runeKey("q"))
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))
}
