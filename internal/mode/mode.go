// Package mode defines the controller interface the root model drives and
// the services shared with it.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/txdash/internal/cachemanager"
	"github.com/zjrosen/txdash/internal/config"
	"github.com/zjrosen/txdash/internal/mode/shared"
	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/ui/toaster"
	"github.com/zjrosen/txdash/internal/vtable"
)

// Controller defines the interface the active screen implements.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) (Controller, tea.Cmd)
}

// Services contains shared dependencies injected into controllers.
type Services struct {
	Config     *config.Config
	ConfigPath string // config file the theme toggle writes to, may be empty

	// Source is the configured data file, or nil for generated sections.
	Source txsource.Source
	// RowCache holds loaded datasets keyed by section, or "file" for Source.
	RowCache cachemanager.CacheManager[string, []vtable.Row]

	Clipboard shared.Clipboard
	Clock     shared.Clock
}

// ShowToastMsg asks the root model to show a toast.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}

// ShowToast returns a command producing a ShowToastMsg.
func ShowToast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Message: message, Style: style}
	}
}

// DataChangedMsg tells the active controller that the data file changed on
// disk. The row cache has already been flushed.
type DataChangedMsg struct {
	Path string
}

// DataRemovedMsg tells the active controller that the data file is gone.
type DataRemovedMsg struct {
	Path string
}
