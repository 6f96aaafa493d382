package vtable

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameInterval approximates one display refresh at 60Hz.
const DefaultFrameInterval = time.Second / 60

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg asks the renderer with the matching ID to render.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// OnScroll handles a scroll notification. The first call since the last
// render schedules a frame; calls arriving while that frame is pending are
// dropped and return nil.
func (r *Renderer) OnScroll() tea.Cmd {
	if r.ticking {
		return nil
	}
	r.ticking = true
	return r.frame()
}

// OnResize schedules a frame unconditionally. Resizes are rare enough that
// they bypass coalescing.
func (r *Renderer) OnResize() tea.Cmd {
	return r.frame()
}

func (r *Renderer) frame() tea.Cmd {
	id := r.id
	return tea.Tick(r.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// Update renders when msg is a frame addressed to this renderer. It reports
// whether the message was consumed.
func (r *Renderer) Update(msg tea.Msg) bool {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.ID != r.id {
		return false
	}
	r.Render()
	return true
}
