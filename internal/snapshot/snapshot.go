// Package snapshot renders the transactions table as a static HTML page. It
// drives the same vtable.Renderer as the terminal table, with pixel units:
// only the rows inside the window for the requested scroll position are
// written, and the spacer and body offset are emitted as data attributes so
// the page scrolls like the live table.
package snapshot

import (
	"context"
	"embed"
	"fmt"
	"io"

	"github.com/google/safehtml/template"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/tracing"
	"github.com/zjrosen/txdash/internal/vtable"
)

//go:embed templates/*
var templateFS embed.FS

const (
	// DefaultRowHeight is the row height fixed by the page stylesheet, in px.
	DefaultRowHeight = 40
	// DefaultHeight is the viewport height used when none is given, in px.
	DefaultHeight = 400
	// DefaultTitle heads the page when Options.Title is empty.
	DefaultTitle = "Recent Transactions"
)

var printer = message.NewPrinter(language.English)

// Options selects what to render.
type Options struct {
	Title string
	Rows  []vtable.Row

	// ScrollOffset is the viewport's scrollTop in px; it is clamped to the
	// content.
	ScrollOffset int
	// Height is the viewport height in px (0 = DefaultHeight).
	Height int
	// RowHeight overrides the stylesheet row height when > 0.
	RowHeight int
	// Buffer is the overscan in rows (0 = vtable.DefaultBuffer).
	Buffer int
	// Theme is "dark" or "light"; anything else renders light.
	Theme string
}

// Result describes what was written.
type Result struct {
	Window        vtable.Window
	RowHeight     int
	ContentHeight int
	ScrollOffset  int
	BodyOffset    int
}

// Renderer writes snapshot pages. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	tmpl, err := template.New("snapshot.html").ParseFS(trustedFS, "templates/snapshot.html")
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render computes the window for opts and writes the page to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, opts Options) (Result, error) {
	_, span := tracing.Tracer().Start(ctx, tracing.SpanSnapshotWrite)
	defer span.End()

	p := &page{
		offset: max(opts.ScrollOffset, 0),
		height: opts.Height,
	}
	if p.height <= 0 {
		p.height = DefaultHeight
	}

	renderer := vtable.New(vtable.Config{
		Viewport:  p,
		Body:      p,
		Spacer:    p,
		Counter:   p,
		Rows:      opts.Rows,
		RowHeight: opts.RowHeight,
		Buffer:    opts.Buffer,
	})
	win := renderer.Window()

	span.SetAttributes(
		attribute.Int(tracing.AttrRowCount, renderer.Len()),
		attribute.Int(tracing.AttrWindowStart, win.Start),
		attribute.Int(tracing.AttrWindowEnd, win.End),
	)

	data := p.view(opts, renderer.RowHeight(), win)
	if err := r.tmpl.Execute(w, data); err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("writing snapshot: %w", err)
	}

	log.Debug(log.CatTable, "Snapshot written",
		"rows", renderer.Len(),
		"window_start", win.Start,
		"window_end", win.End,
		"scroll", p.offset)

	return Result{
		Window:        win,
		RowHeight:     renderer.RowHeight(),
		ContentHeight: renderer.ContentHeight(),
		ScrollOffset:  p.offset,
		BodyOffset:    p.bodyOffset,
	}, nil
}

// page is the HTML side of the renderer. Units are px.
type page struct {
	offset int
	height int

	spacer     int
	count      int
	rows       []vtable.RowView
	bodyOffset int
}

// ScrollOffset implements vtable.Viewport.
func (p *page) ScrollOffset() int { return p.offset }

// SetScrollOffset implements vtable.Viewport.
func (p *page) SetScrollOffset(offset int) {
	p.offset = offset
	p.clamp()
}

// Height implements vtable.Viewport.
func (p *page) Height() int { return p.height }

// HeaderHeight implements vtable.Viewport. The table header is sticky and
// does not push the rows down.
func (p *page) HeaderHeight() int { return 0 }

// Measure implements vtable.Body.
func (p *page) Measure(vtable.RowView) int { return DefaultRowHeight }

// Replace implements vtable.Body.
func (p *page) Replace(rows []vtable.RowView, offset int) {
	p.rows = rows
	p.bodyOffset = offset
}

// SetHeight implements vtable.Spacer.
func (p *page) SetHeight(height int) {
	p.spacer = height
	p.clamp()
}

// SetRowCount implements vtable.Counter.
func (p *page) SetRowCount(n int) { p.count = n }

func (p *page) clamp() {
	p.offset = max(0, min(p.offset, max(0, p.spacer-p.height)))
}

type rowData struct {
	Index    int
	ID       string
	Customer string
	Amount   string
	Status   string
	Class    string
}

type pageData struct {
	Title          string
	Theme          string
	Chip           string
	RowCount       int
	ViewportHeight int
	ScrollOffset   int
	SpacerHeight   int
	BodyOffset     int
	RowHeight      int
	WindowStart    int
	WindowEnd      int
	Rows           []rowData
}

func (p *page) view(opts Options, rowHeight int, win vtable.Window) pageData {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	theme := "light"
	if opts.Theme == "dark" {
		theme = "dark"
	}

	rows := make([]rowData, len(p.rows))
	for i, v := range p.rows {
		rows[i] = rowData{
			Index:    v.Index,
			ID:       v.Row.ID,
			Customer: v.Row.Customer,
			Amount:   v.Row.Amount,
			Status:   string(v.Row.Status),
			Class:    v.Class,
		}
	}

	return pageData{
		Title:          title,
		Theme:          theme,
		Chip:           FormatRowCount(p.count),
		RowCount:       p.count,
		ViewportHeight: p.height,
		ScrollOffset:   p.offset,
		SpacerHeight:   p.spacer,
		BodyOffset:     p.bodyOffset,
		RowHeight:      rowHeight,
		WindowStart:    win.Start,
		WindowEnd:      win.End,
		Rows:           rows,
	}
}

// FormatRowCount renders the row count chip, e.g. "10,000 rows".
func FormatRowCount(n int) string {
	if n == 1 {
		return "1 row"
	}
	return printer.Sprintf("%d rows", n)
}
