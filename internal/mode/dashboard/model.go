// Package dashboard implements the analytics dashboard: a section sidebar,
// KPI cards, three charts and the virtualized transactions table.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/txdash/internal/config"
	"github.com/zjrosen/txdash/internal/keys"
	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/mode"
	"github.com/zjrosen/txdash/internal/mode/shared"
	"github.com/zjrosen/txdash/internal/tracing"
	"github.com/zjrosen/txdash/internal/ui/help"
	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/ui/toaster"
	"github.com/zjrosen/txdash/internal/ui/txtable"
)

// TableTitle is the title of the transactions pane.
const TableTitle = "Recent Transactions"

// FocusPane identifies which pane receives navigation keys.
type FocusPane int

const (
	FocusSidebar FocusPane = iota
	FocusTable
)

// initialPaintMsg fires after the first frame that showed real rows.
type initialPaintMsg struct {
	at time.Time
}

// Model is the dashboard controller.
type Model struct {
	services mode.Services
	keys     keys.KeyMap

	sections []Section
	current  int
	loading  bool

	focus       FocusPane
	showSidebar bool
	showHelp    bool
	help        help.Model

	table  txtable.Model
	loader *loader

	width  int
	height int

	startedAt   time.Time
	painted     bool
	paintMillis int64
	lastLoad    time.Time
}

// New creates the dashboard. Nil services fall back to defaults: the
// system clipboard, the real clock and default configuration.
func New(services mode.Services) Model {
	if services.Config == nil {
		cfg := config.Defaults()
		services.Config = &cfg
	}
	if services.Clock == nil {
		services.Clock = shared.RealClock{}
	}
	if services.Clipboard == nil {
		services.Clipboard = shared.SystemClipboard{}
	}
	cfg := services.Config

	sections := Sections()
	current := SectionIndex(sections, cfg.UI.Section)
	if current < 0 {
		if cfg.UI.Section != "" {
			log.Warn(log.CatUI, "Unknown section, showing dashboard", "section", cfg.UI.Section)
		}
		current = SectionIndex(sections, DefaultSection)
	}

	table := txtable.New(txtable.Config{
		Title:         TableTitle,
		RowHeight:     cfg.Table.RowHeight,
		Buffer:        cfg.Table.BufferRows,
		FrameInterval: cfg.Table.FrameInterval,
		ZoneID:        zoneTable,
	})

	focus := FocusSidebar
	if !cfg.UI.ShowSidebar {
		focus = FocusTable
	}
	table = table.SetFocused(focus == FocusTable)

	return Model{
		services:    services,
		keys:        keys.DefaultKeyMap(),
		sections:    sections,
		current:     current,
		loading:     true,
		focus:       focus,
		showSidebar: cfg.UI.ShowSidebar,
		help:        help.New(),
		table:       table,
		loader:      newLoader(services.Source, services.RowCache, cfg.Data.CacheTTL),
		startedAt:   services.Clock.Now(),
	}
}

// Init loads the startup section.
func (m Model) Init() tea.Cmd {
	return m.loader.loadCmd(m.Section(), false)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsLoadedMsg:
		return m.handleRowsLoaded(msg)

	case initialPaintMsg:
		m.recordInitialPaint(msg.at)
		return m, nil

	case mode.DataChangedMsg:
		log.Info(log.CatData, "Data file changed, reloading", "path", msg.Path)
		m.loading = true
		return m, m.loader.loadCmd(m.Section(), true)

	case mode.DataRemovedMsg:
		log.Warn(log.CatData, "Data file removed", "path", msg.Path)
		return m, mode.ShowToast("Data file removed, keeping the last rows", toaster.StyleWarn)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleRowsLoaded(msg rowsLoadedMsg) (mode.Controller, tea.Cmd) {
	if msg.section != m.Section().Name {
		log.Debug(log.CatData, "Dropping rows of a stale section", "section", msg.section)
		return m, nil
	}

	m.table = m.table.SetRows(msg.rows)
	m.loading = false
	m.lastLoad = m.services.Clock.Now()

	var cmds []tea.Cmd
	switch {
	case msg.err != nil:
		cmds = append(cmds, mode.ShowToast("Data load failed, showing default dataset: "+msg.err.Error(), toaster.StyleError))
	case msg.reload:
		cmds = append(cmds, mode.ShowToast("Reloaded "+m.table.RowCountChip(), toaster.StyleSuccess))
	}
	cmds = append(cmds, m.paintCmd())
	return m, tea.Batch(cmds...)
}

// paintCmd reports the initial paint once the first dataset is on screen
// at a known size.
func (m *Model) paintCmd() tea.Cmd {
	if m.painted || m.loading || m.width <= 0 || m.height <= 0 {
		return nil
	}
	m.painted = true
	clock := m.services.Clock
	return func() tea.Msg {
		return initialPaintMsg{at: clock.Now()}
	}
}

func (m *Model) recordInitialPaint(at time.Time) {
	elapsed := at.Sub(m.startedAt)
	m.paintMillis = elapsed.Milliseconds()

	_, span := tracing.Tracer().Start(context.Background(), tracing.SpanInitialPaint, trace.WithTimestamp(m.startedAt))
	span.SetAttributes(
		attribute.Int64(tracing.AttrPaintMillis, m.paintMillis),
		attribute.Int(tracing.AttrRowCount, m.table.Renderer().Len()),
		attribute.String(tracing.AttrSection, m.Section().Name),
	)
	span.End(trace.WithTimestamp(at))

	log.Info(log.CatUI, fmt.Sprintf("Dashboard initial paint in %d ms (incl. virtualization)", m.paintMillis))
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.ToggleMenu):
		m.showSidebar = !m.showSidebar
		if !m.showSidebar {
			m.setFocus(FocusTable)
		}
		return m.resize()

	case key.Matches(msg, m.keys.Reload):
		m.loader.invalidate()
		m.loading = true
		return m, m.loader.loadCmd(m.Section(), true)

	case key.Matches(msg, m.keys.Yank):
		return m, m.yankTopRow()

	case key.Matches(msg, m.keys.FocusNext):
		if m.focus == FocusTable && m.showSidebar {
			m.setFocus(FocusSidebar)
		} else {
			m.setFocus(FocusTable)
		}
		return m, nil

	case key.Matches(msg, m.keys.Section):
		idx := int(msg.String()[0] - '1')
		return m, m.applySection(idx)
	}

	if m.focus == FocusSidebar {
		n := len(m.sections)
		switch {
		case key.Matches(msg, m.keys.Up):
			return m, m.applySection((m.current - 1 + n) % n)
		case key.Matches(msg, m.keys.Down):
			return m, m.applySection((m.current + 1) % n)
		case key.Matches(msg, m.keys.Select):
			m.setFocus(FocusTable)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleMouse selects sections on click and routes the wheel to the table
// when the pointer is over it.
func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
		if m.showSidebar {
			for i := range m.sections {
				if z := zone.Get(makeSectionZoneID(i)); z != nil && z.InBounds(msg) {
					m.setFocus(FocusSidebar)
					return m, m.applySection(i)
				}
			}
		}
		if z := zone.Get(zoneTable); z != nil && z.InBounds(msg) {
			m.setFocus(FocusTable)
		}
		return m, nil
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if z := zone.Get(zoneTable); z != nil && !z.IsZero() && !z.InBounds(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applySection switches to section idx and starts loading its rows.
func (m *Model) applySection(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.sections) || idx == m.current {
		return nil
	}
	m.current = idx
	m.loading = true
	log.Info(log.CatUI, "Section applied", "section", m.Section().Name)
	return m.loader.loadCmd(m.Section(), false)
}

func (m *Model) setFocus(f FocusPane) {
	m.focus = f
	m.table = m.table.SetFocused(f == FocusTable)
}

// toggleTheme flips dark and light mode and persists the choice when a
// config file is known.
func (m *Model) toggleTheme() tea.Cmd {
	_, span := tracing.Tracer().Start(context.Background(), tracing.SpanThemeToggle)
	defer span.End()

	modeName := styles.ToggleMode()
	m.services.Config.Theme.Mode = modeName
	span.SetAttributes(attribute.String(tracing.AttrThemeMode, modeName))
	log.Info(log.CatTheme, "Theme toggled", "mode", modeName)

	if path := m.services.ConfigPath; path != "" {
		if err := config.SaveThemeMode(path, modeName); err != nil {
			span.RecordError(err)
			log.ErrorErr(log.CatConfig, "Failed to save theme mode", err, "path", path)
			return mode.ShowToast("Theme not saved: "+err.Error(), toaster.StyleError)
		}
	}
	return mode.ShowToast("Theme: "+modeName, toaster.StyleInfo)
}

// yankTopRow copies the ID of the first visible row.
func (m Model) yankTopRow() tea.Cmd {
	row, ok := m.table.TopRow()
	if !ok {
		return mode.ShowToast("No rows to copy", toaster.StyleWarn)
	}
	if err := m.services.Clipboard.Copy(row.ID); err != nil {
		log.ErrorErr(log.CatUI, "Clipboard copy failed", err, "id", row.ID)
		return mode.ShowToast("Copy failed: "+err.Error(), toaster.StyleError)
	}
	return mode.ShowToast("Copied "+row.ID, toaster.StyleSuccess)
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) (mode.Controller, tea.Cmd) {
	m.width = width
	m.height = height
	m.help = m.help.SetSize(width, height)
	next, cmd := m.resize()
	dm := next.(Model)
	paint := dm.paintCmd()
	return dm, tea.Batch(cmd, paint)
}

func (m Model) resize() (mode.Controller, tea.Cmd) {
	l := computeLayout(m.width, m.height, m.showSidebar)
	var cmd tea.Cmd
	m.table, cmd = m.table.SetSize(l.mainWidth, l.tableHeight)
	return m, cmd
}

// Section returns the active section.
func (m Model) Section() Section {
	return m.sections[m.current]
}

// Focus returns the pane receiving navigation keys.
func (m Model) Focus() FocusPane { return m.focus }

// SidebarVisible reports whether the sidebar is shown.
func (m Model) SidebarVisible() bool { return m.showSidebar }

// HelpVisible reports whether the help overlay is open.
func (m Model) HelpVisible() bool { return m.showHelp }

// Loading reports whether a dataset load is in flight.
func (m Model) Loading() bool { return m.loading }

// Table returns the transactions table.
func (m Model) Table() txtable.Model { return m.table }

// PaintMillis returns the measured initial paint time, 0 until known.
func (m Model) PaintMillis() int64 { return m.paintMillis }
