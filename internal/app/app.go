// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/txdash/internal/cachemanager"
	"github.com/zjrosen/txdash/internal/config"
	"github.com/zjrosen/txdash/internal/keys"
	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/mode"
	"github.com/zjrosen/txdash/internal/mode/dashboard"
	"github.com/zjrosen/txdash/internal/mode/shared"
	"github.com/zjrosen/txdash/internal/pubsub"
	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/ui/shared/logoverlay"
	"github.com/zjrosen/txdash/internal/ui/toaster"
	"github.com/zjrosen/txdash/internal/vtable"
	"github.com/zjrosen/txdash/internal/watcher"
)

// Model is the root application state.
type Model struct {
	dashboard mode.Controller

	// Shared services (passed to the dashboard)
	services mode.Services

	// Global state
	width  int
	height int
	keys   keys.KeyMap

	// Centralized toaster - owned by app, not the dashboard
	toaster toaster.Model

	debugMode   bool
	logOverlay  logoverlay.Model
	logListener *log.LogListener
	logCancel   context.CancelFunc

	// File watcher for auto-reload (pubsub-based)
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Change]
}

// NewWithConfig creates a new application model with the provided configuration.
// source is the configured data file, nil for generated sections.
// configPath is the config file the theme toggle saves to.
// debugMode enables the log overlay (Ctrl+X toggle).
func NewWithConfig(
	cfg config.Config,
	source txsource.Source,
	rowCache cachemanager.CacheManager[string, []vtable.Row],
	configPath string,
	debugMode bool,
) Model {
	m := Model{
		keys:       keys.DefaultKeyMap(),
		toaster:    toaster.New(),
		logOverlay: logoverlay.New(),
		debugMode:  debugMode,
	}

	// Watch the data file only when there is one and auto reload is on.
	if cfg.Data.AutoReload && cfg.Data.Path != "" && source != nil {
		w, err := watcher.New(watcher.Config{Path: cfg.Data.Path, Debounce: cfg.Data.AutoReloadDebounce})
		if err != nil {
			log.ErrorErr(log.CatWatcher, "Watcher init failed, auto reload disabled", err, "path", cfg.Data.Path)
		} else if err := w.Start(); err != nil {
			log.ErrorErr(log.CatWatcher, "Watcher start failed, auto reload disabled", err, "path", cfg.Data.Path)
			_ = w.Stop()
		} else {
			var ctx context.Context
			ctx, m.watcherCancel = context.WithCancel(context.Background())
			m.watcherHandle = w
			m.watcherListener = pubsub.NewContinuousListener(ctx, w.Broker())
		}
	}

	if debugMode {
		var ctx context.Context
		ctx, m.logCancel = context.WithCancel(context.Background())
		m.logListener = log.NewListener(ctx)
	}

	m.services = mode.Services{
		Config:     &cfg,
		ConfigPath: configPath,
		Source:     source,
		RowCache:   rowCache,
		Clipboard:  shared.SystemClipboard{},
		Clock:      shared.RealClock{},
	}
	m.dashboard = dashboard.New(m.services)
	return m
}

// Init implements tea.Model interface.
// Loads the startup section and starts the watcher and log listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.dashboard.Init()}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay.SetSize(msg.Width, msg.Height)

		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.SetSize(msg.Width, msg.Height)
		return m, cmd

	case tea.MouseMsg:
		// Route mouse events to log overlay when visible
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

	case log.LogEvent:
		m.logOverlay.EntryLogged()
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, m.keys.ToggleLogs) {
			m.logOverlay.Toggle()
			return m, nil
		}

		// If the debug log overlay is visible it takes precedence for updates
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

	case pubsub.Event[watcher.Change]:
		return m.handleWatcherEvent(msg)

	case mode.ShowToastMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Message, msg.Style)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.dashboard, cmd = m.dashboard.Update(msg)
	return m, cmd
}

// handleWatcherEvent flushes cached rows on a data file change and tells
// the dashboard, then re-arms the listener.
func (m Model) handleWatcherEvent(ev pubsub.Event[watcher.Change]) (tea.Model, tea.Cmd) {
	var forward tea.Msg
	switch ev.Type {
	case pubsub.ChangedEvent:
		if m.services.RowCache != nil {
			if err := m.services.RowCache.Flush(context.Background()); err != nil {
				log.Warn(log.CatCache, "Failed to flush row cache on data change", "error", err)
			}
		}
		log.Debug(log.CatWatcher, "Data file changed, reloading", "path", ev.Payload.Path)
		forward = mode.DataChangedMsg{Path: ev.Payload.Path}
	case pubsub.RemovedEvent:
		forward = mode.DataRemovedMsg{Path: ev.Payload.Path}
	}

	var cmds []tea.Cmd
	if forward != nil {
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(forward)
		cmds = append(cmds, cmd)
	}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.dashboard.View()

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return view
}

// Close releases resources held by the application.
// Should be called when the application exits.
func (m *Model) Close() error {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.logCancel != nil {
		m.logCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
