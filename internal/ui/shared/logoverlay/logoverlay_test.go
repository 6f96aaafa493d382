package logoverlay

import (
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/log"
)

func TestMain(m *testing.M) {
	log.InitWriter(io.Discard)
	os.Exit(m.Run())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func seed(t *testing.T) {
	t.Helper()
	log.ClearBuffer()
	log.Debug(log.CatTable, "Window changed", "start", 0, "end", 20)
	log.Info(log.CatData, "Dataset loaded", "rows", 10000)
	log.Warn(log.CatTheme, "Unknown preset")
	log.Error(log.CatCache, "Load failed")
}

func open(t *testing.T) Model {
	t.Helper()
	m := New()
	m.SetSize(100, 30)
	m.Toggle()
	require.True(t, m.Visible())
	return m
}

func TestNew_Hidden(t *testing.T) {
	m := New()
	require.False(t, m.Visible())
	require.Empty(t, m.View())
	require.Equal(t, "background", m.Overlay("background"))
}

func TestToggle(t *testing.T) {
	m := New()
	m.Toggle()
	require.True(t, m.Visible())
	m.Toggle()
	require.False(t, m.Visible())
}

func TestLevelFilter(t *testing.T) {
	seed(t)
	m := open(t)
	require.Len(t, m.Entries(), 4)

	m, _ = m.Update(key("w"))
	entries := m.Entries()
	require.Len(t, entries, 2)
	require.Contains(t, entries[0], "[WARN]")
	require.Contains(t, entries[1], "[ERROR]")

	m, _ = m.Update(key("e"))
	require.Len(t, m.Entries(), 1)

	m, _ = m.Update(key("d"))
	require.Len(t, m.Entries(), 4)
}

func TestCategoryFilter(t *testing.T) {
	seed(t)
	m := open(t)

	m, _ = m.Update(key("tab"))
	require.Equal(t, log.CatTable, m.category)
	entries := m.Entries()
	require.Len(t, entries, 1)
	require.Contains(t, entries[0], "Window changed")
	require.Contains(t, ansi.Strip(m.View()), "Logs · table")

	m, _ = m.Update(key("tab"))
	require.Equal(t, log.CatData, m.category)
}

func TestNextCategory_Wraps(t *testing.T) {
	cats := log.Categories()
	require.Equal(t, log.Category(""), nextCategory(cats[len(cats)-1]))
	require.Equal(t, cats[0], nextCategory(""))
}

func TestClear(t *testing.T) {
	seed(t)
	m := open(t)
	m, _ = m.Update(key("c"))
	require.Empty(t, m.Entries())
	require.Contains(t, ansi.Strip(m.View()), "No logs to display")
}

func TestClose(t *testing.T) {
	for _, k := range []string{"esc", "ctrl+x"} {
		t.Run(k, func(t *testing.T) {
			m := open(t)
			m, cmd := m.Update(key(k))
			require.False(t, m.Visible())
			require.NotNil(t, cmd)
			require.IsType(t, CloseMsg{}, cmd())
		})
	}
}

func TestHiddenIgnoresKeys(t *testing.T) {
	m := New()
	m, cmd := m.Update(key("w"))
	require.Nil(t, cmd)
	require.Equal(t, log.LevelDebug, m.minLevel)
}

func TestEntryLogged_FollowsBottom(t *testing.T) {
	log.ClearBuffer()
	m := open(t)
	for i := 0; i < 40; i++ {
		log.Info(log.CatUI, "tick")
	}
	log.Info(log.CatUI, "newest entry")
	m.EntryLogged()

	require.True(t, m.viewport.AtBottom())
	require.Contains(t, ansi.Strip(m.View()), "newest entry")
}

func TestView_TruncatesLongEntries(t *testing.T) {
	log.ClearBuffer()
	m := open(t)
	log.Info(log.CatUI, "x", "payload", strings.Repeat("y", 500))
	m.EntryLogged()

	for _, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), m.boxWidth()+2)
	}
}
