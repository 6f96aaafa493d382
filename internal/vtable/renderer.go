package vtable

import (
	"time"

	"github.com/zjrosen/txdash/internal/log"
)

// Viewport is the scrolling container. Offsets and heights are in the same
// unit as the row height.
type Viewport interface {
	ScrollOffset() int
	SetScrollOffset(offset int)
	Height() int
	// HeaderHeight is the height of a header that scrolls together with the
	// body and sits above the first row.
	HeaderHeight() int
}

// Body receives the materialized rows.
type Body interface {
	// Measure renders sample off-window and returns its height, or 0 when
	// the surface cannot measure yet.
	Measure(sample RowView) int
	// Replace makes rows the sole contents of the body, translated offset
	// units below the top of the content.
	Replace(rows []RowView, offset int)
}

// Spacer is sized to the full logical content height so scrollbars reflect
// the real dataset length.
type Spacer interface {
	SetHeight(height int)
}

// Counter displays the dataset length.
type Counter interface {
	SetRowCount(n int)
}

// Config configures a Renderer.
type Config struct {
	Viewport Viewport
	Body     Body
	Spacer   Spacer
	Counter  Counter // optional

	Rows []Row

	// RowHeight overrides measurement when > 0.
	RowHeight int
	// Buffer is the overscan in rows on each side (0 = DefaultBuffer).
	Buffer int
	// FrameInterval is the delay of a scheduled frame (0 = DefaultFrameInterval).
	FrameInterval time.Duration
}

// Renderer is the virtualized row renderer. It is not safe for concurrent
// use; all calls are expected from the Bubble Tea update loop.
type Renderer struct {
	id int

	viewport Viewport
	body     Body
	spacer   Spacer
	counter  Counter

	rows          []Row
	rowHeight     int
	buffer        int
	frameInterval time.Duration

	last    Window
	ticking bool
	renders int
}

// New creates a renderer, measures the row height, sizes the spacer and
// performs the initial render.
func New(cfg Config) *Renderer {
	r := &Renderer{
		id:            nextID(),
		viewport:      cfg.Viewport,
		body:          cfg.Body,
		spacer:        cfg.Spacer,
		counter:       cfg.Counter,
		rows:          cfg.Rows,
		buffer:        cfg.Buffer,
		frameInterval: cfg.FrameInterval,
		last:          invalidWindow,
	}
	if r.rows == nil {
		r.rows = []Row{}
	}
	if r.buffer <= 0 {
		r.buffer = DefaultBuffer
	}
	if r.frameInterval <= 0 {
		r.frameInterval = DefaultFrameInterval
	}

	r.rowHeight = cfg.RowHeight
	if r.rowHeight <= 0 {
		r.rowHeight = r.measure()
	}

	r.updateCounter()
	r.updateSpacer()
	r.Render()
	return r
}

// measure renders the sample row through the body and falls back to
// DefaultRowHeight when the body is not attached to a measurable layout.
func (r *Renderer) measure() int {
	h := 0
	if r.body != nil {
		h = r.body.Measure(SampleRow())
	}
	if h <= 0 {
		log.Debug(log.CatTable, "Row measurement unavailable, using default", "height", DefaultRowHeight)
		return DefaultRowHeight
	}
	return h
}

// Render recomputes the window from the viewport and replaces the body
// contents. It returns false, without touching the body, when the window is
// unchanged since the last render.
func (r *Renderer) Render() bool {
	w := r.computeWindow()
	r.ticking = false
	if w == r.last {
		return false
	}
	r.last = w

	if r.body != nil {
		r.body.Replace(r.materialize(w), w.Offset(r.rowHeight))
	}
	r.renders++
	return true
}

func (r *Renderer) computeWindow() Window {
	scroll, height := 0, 0
	if r.viewport != nil {
		scroll = r.viewport.ScrollOffset() - r.viewport.HeaderHeight()
		height = r.viewport.Height()
	}
	return ComputeWindow(scroll, height, r.rowHeight, len(r.rows), r.buffer)
}

func (r *Renderer) materialize(w Window) []RowView {
	views := make([]RowView, 0, w.Len())
	for i := w.Start; i < w.End; i++ {
		row := r.rows[i]
		views = append(views, RowView{Index: i, Row: row, Class: StatusClass(row.Status)})
	}
	return views
}

// SetRows replaces the dataset: the counter and spacer are updated, the
// viewport is scrolled back to the top and a full render is forced.
func (r *Renderer) SetRows(rows []Row) {
	if rows == nil {
		rows = []Row{}
	}
	r.rows = rows
	r.updateCounter()
	r.updateSpacer()
	if r.viewport != nil {
		r.viewport.SetScrollOffset(0)
	}
	r.last = invalidWindow
	r.Render()
	log.Debug(log.CatTable, "Dataset replaced", "rows", len(rows), "window_start", r.last.Start, "window_end", r.last.End)
}

// SetRowsAny replaces the dataset from an untyped value. Anything that is
// not a sequence of rows becomes an empty dataset.
func (r *Renderer) SetRowsAny(v any) {
	r.SetRows(CoerceRows(v))
}

func (r *Renderer) updateCounter() {
	if r.counter != nil {
		r.counter.SetRowCount(len(r.rows))
	}
}

func (r *Renderer) updateSpacer() {
	if r.spacer != nil {
		r.spacer.SetHeight(r.ContentHeight())
	}
}

// ContentHeight is the logical height of all rows.
func (r *Renderer) ContentHeight() int {
	return len(r.rows) * r.rowHeight
}

// Rows returns the current dataset. Callers must not modify it.
func (r *Renderer) Rows() []Row { return r.rows }

// Len returns the dataset length.
func (r *Renderer) Len() int { return len(r.rows) }

// RowHeight returns the measured or configured row height.
func (r *Renderer) RowHeight() int { return r.rowHeight }

// Buffer returns the overscan row count.
func (r *Renderer) Buffer() int { return r.buffer }

// Window returns the last rendered window. Before the first render and
// right after invalidation it is {-1, -1}.
func (r *Renderer) Window() Window { return r.last }

// Pending reports whether a coalesced scroll frame is scheduled.
func (r *Renderer) Pending() bool { return r.ticking }

// Renders counts renders that mutated the body.
func (r *Renderer) Renders() int { return r.renders }

// ID identifies this renderer's frame messages.
func (r *Renderer) ID() int { return r.id }
