// Package txtable is the terminal surface of the virtualized transactions
// table. It adapts a vtable.Renderer to a Bubble Tea component: the model
// owns the scroll offset and the rendered window, and draws the visible
// slice inside a bordered pane with a row count chip and a scrollbar.
//
// Scrolling only moves the offset and asks the renderer for a coalesced
// frame; the window is recomputed when the resulting vtable.FrameMsg comes
// back through Update.
package txtable

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/txdash/internal/keys"
	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/tracing"
	"github.com/zjrosen/txdash/internal/ui/shared/panes"
	"github.com/zjrosen/txdash/internal/ui/shared/scrollbar"
	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/vtable"
)

// WheelLines is how far one mouse wheel notch scrolls.
const WheelLines = 3

// Config configures a table.
type Config struct {
	Title         string
	Rows          []vtable.Row
	RowHeight     int           // lines per row, 0 = measure
	Buffer        int           // overscan rows, 0 = vtable.DefaultBuffer
	FrameInterval time.Duration // 0 = vtable.DefaultFrameInterval
	ZoneID        string        // bubblezone id wrapped around the view, optional
}

// Model is the table component. Copies share the underlying surface and
// renderer, so a Model must not be used from more than one program.
type Model struct {
	title    string
	zoneID   string
	keys     keys.TableKeyMap
	focused  bool
	width    int
	height   int
	surface  *surface
	renderer *vtable.Renderer
}

// New creates a table and performs the initial render.
func New(cfg Config) Model {
	s := &surface{}
	r := vtable.New(vtable.Config{
		Viewport:      s,
		Body:          s,
		Spacer:        s,
		Counter:       s,
		Rows:          cfg.Rows,
		RowHeight:     cfg.RowHeight,
		Buffer:        cfg.Buffer,
		FrameInterval: cfg.FrameInterval,
	})
	s.rowHeight = r.RowHeight()

	title := cfg.Title
	if title == "" {
		title = "Transactions"
	}
	return Model{
		title:    title,
		zoneID:   cfg.ZoneID,
		keys:     keys.DefaultTableKeyMap(),
		surface:  s,
		renderer: r,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles frame messages addressed to this table, and scroll input.
// Keys are only handled while the table is focused; the wheel always works.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vtable.FrameMsg:
		if m.renderer.Update(msg) {
			w := m.renderer.Window()
			log.Debug(log.CatTable, "Frame rendered", "start", w.Start, "end", w.End, "offset", m.surface.offset)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.scroll(m.surface.scrollBy(-WheelLines))
		case tea.MouseButtonWheelDown:
			return m, m.scroll(m.surface.scrollBy(WheelLines))
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.surface
	rh := m.renderer.RowHeight()
	page := max(s.height-1, 1)

	var changed bool
	switch {
	case key.Matches(msg, m.keys.LineDown):
		changed = s.scrollBy(rh)
	case key.Matches(msg, m.keys.LineUp):
		changed = s.scrollBy(-rh)
	case key.Matches(msg, m.keys.PageDown):
		changed = s.scrollBy(page)
	case key.Matches(msg, m.keys.PageUp):
		changed = s.scrollBy(-page)
	case key.Matches(msg, m.keys.HalfPageDown):
		changed = s.scrollBy(max(s.height/2, 1))
	case key.Matches(msg, m.keys.HalfPageUp):
		changed = s.scrollBy(-max(s.height/2, 1))
	case key.Matches(msg, m.keys.Top):
		changed = s.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		changed = s.scrollTo(s.maxOffset())
	}
	return m.scroll(changed)
}

// scroll notifies the renderer of a scroll when the offset moved.
func (m Model) scroll(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	return m.renderer.OnScroll()
}

// ScrollTo moves the viewport to offset lines (clamped) and schedules a
// coalesced frame.
func (m Model) ScrollTo(offset int) (Model, tea.Cmd) {
	return m, m.scroll(m.surface.scrollTo(offset))
}

// SetSize sets the outer dimensions of the pane and schedules a resize
// frame.
func (m Model) SetSize(width, height int) (Model, tea.Cmd) {
	m.width = width
	m.height = height
	// Borders take two lines and two columns; the scrollbar one more column.
	m.surface.width = max(width-3, 0)
	m.surface.height = max(height-2, 0)
	m.surface.clamp()
	return m, m.renderer.OnResize()
}

// SetRows replaces the dataset, scrolling back to the top.
func (m Model) SetRows(rows []vtable.Row) Model {
	_, span := tracing.Tracer().Start(context.Background(), tracing.SpanSetRows)
	defer span.End()

	m.renderer.SetRows(rows)

	w := m.renderer.Window()
	span.SetAttributes(
		attribute.Int(tracing.AttrRowCount, m.renderer.Len()),
		attribute.Int(tracing.AttrWindowStart, w.Start),
		attribute.Int(tracing.AttrWindowEnd, w.End),
	)
	return m
}

// SetRowsAny replaces the dataset from untyped input; anything that is not
// a sequence of rows yields an empty table.
func (m Model) SetRowsAny(v any) Model {
	return m.SetRows(vtable.CoerceRows(v))
}

// SetFocused sets whether the table receives key input.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// Focused reports whether the table receives key input.
func (m Model) Focused() bool { return m.focused }

// Renderer exposes the underlying renderer.
func (m Model) Renderer() *vtable.Renderer { return m.renderer }

// ScrollOffset returns the current scroll offset in lines.
func (m Model) ScrollOffset() int { return m.surface.offset }

// RowCountChip returns the formatted row count, e.g. "10,000 rows".
func (m Model) RowCountChip() string { return m.surface.chip }

// Visible returns the rows intersecting the viewport, without overscan.
func (m Model) Visible() vtable.Window {
	s := m.surface
	return vtable.VisibleRange(s.offset-headerLines, s.height, m.renderer.RowHeight(), m.renderer.Len())
}

// TopRow returns the first row intersecting the viewport.
func (m Model) TopRow() (vtable.Row, bool) {
	v := m.Visible()
	if v.Empty() {
		return vtable.Row{}, false
	}
	return m.renderer.Rows()[v.Start], true
}

// View renders the table pane.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	s := m.surface

	lines := s.visible()
	if m.renderer.Len() == 0 && s.height > headerLines {
		msg := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No transactions")
		lines[headerLines] = lipgloss.PlaceHorizontal(s.width, lipgloss.Center, msg)
	}

	bar := strings.Split(scrollbar.Render(scrollbar.Config{
		Total:  s.contentHeight(),
		Height: s.height,
		Offset: s.offset,
	}), "\n")
	for i := range lines {
		lines[i] = styles.PadRight(lines[i], s.width)
		if i < len(bar) {
			lines[i] += bar[i]
		}
	}

	var footer string
	if v := m.Visible(); !v.Empty() {
		footer = fmt.Sprintf("%s–%s", printer.Sprint(v.Start+1), printer.Sprint(v.End))
	}

	view := panes.BorderedPane(panes.BorderConfig{
		Content:            strings.Join(lines, "\n"),
		Width:              m.width,
		Height:             m.height,
		TopLeft:            m.title,
		TopRight:           s.chip,
		BottomLeft:         footer,
		Focused:            m.focused,
		TitleColor:         styles.TextPrimaryColor,
		FocusedBorderColor: styles.BorderFocusColor,
	})
	if m.zoneID != "" {
		view = zone.Mark(m.zoneID, view)
	}
	return view
}
