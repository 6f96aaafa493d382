package txtable

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/vtable"
)

// headerLines is the height of the header block (titles and rule) that
// scrolls together with the rows.
const headerLines = 2

var printer = message.NewPrinter(language.English)

// FormatRowCount renders the row count chip, e.g. "10,000 rows".
func FormatRowCount(n int) string {
	if n == 1 {
		return "1 row"
	}
	return printer.Sprintf("%d rows", n)
}

// surface is the terminal side of the renderer. It is shared by pointer
// between copies of Model so the renderer's collaborators stay stable.
type surface struct {
	offset int // first visible line of the logical content
	height int // visible lines
	width  int // cells available to rows

	spacer int // logical height of all rows
	count  int
	chip   string

	rowHeight  int
	rows       []vtable.RowView
	bodyOffset int

	// lines caches the rendered rows. It is rebuilt when the width or the
	// background mode changes since both affect the ANSI output.
	lines    []string
	linesKey linesKey

	replaced int // Replace calls, exposed for tests
}

type linesKey struct {
	width int
	dark  bool
}

// ScrollOffset implements vtable.Viewport.
func (s *surface) ScrollOffset() int { return s.offset }

// SetScrollOffset implements vtable.Viewport.
func (s *surface) SetScrollOffset(offset int) {
	s.offset = offset
	s.clamp()
}

// Height implements vtable.Viewport.
func (s *surface) Height() int { return s.height }

// HeaderHeight implements vtable.Viewport.
func (s *surface) HeaderHeight() int { return headerLines }

// Measure implements vtable.Body. A terminal row is a single line of text.
func (s *surface) Measure(sample vtable.RowView) int {
	return len(strings.Split(renderRow(sample, layout(s.width)), "\n"))
}

// Replace implements vtable.Body.
func (s *surface) Replace(rows []vtable.RowView, offset int) {
	s.rows = rows
	s.bodyOffset = offset
	s.lines = nil
	s.replaced++
}

// SetHeight implements vtable.Spacer.
func (s *surface) SetHeight(height int) {
	s.spacer = height
	s.clamp()
}

// SetRowCount implements vtable.Counter.
func (s *surface) SetRowCount(n int) {
	s.count = n
	s.chip = FormatRowCount(n)
}

// contentHeight is the full logical height: header plus spacer.
func (s *surface) contentHeight() int {
	return headerLines + s.spacer
}

func (s *surface) maxOffset() int {
	return max(0, s.contentHeight()-s.height)
}

func (s *surface) clamp() {
	s.offset = max(0, min(s.offset, s.maxOffset()))
}

// scrollBy moves the viewport and reports whether the offset changed.
func (s *surface) scrollBy(delta int) bool {
	return s.scrollTo(s.offset + delta)
}

func (s *surface) scrollTo(offset int) bool {
	before := s.offset
	s.SetScrollOffset(offset)
	return s.offset != before
}

// bodyLines returns the rendered body, one entry per line, rebuilding the
// cache when needed.
func (s *surface) bodyLines() []string {
	key := linesKey{width: s.width, dark: styles.IsDark()}
	if s.lines != nil && key == s.linesKey {
		return s.lines
	}
	rh := max(s.rowHeight, 1)
	widths := layout(s.width)
	lines := make([]string, 0, len(s.rows)*rh)
	for _, v := range s.rows {
		lines = append(lines, renderRow(v, widths))
		for range rh - 1 {
			lines = append(lines, "")
		}
	}
	s.lines = lines
	s.linesKey = key
	return lines
}

// visible composites the visible slice of the logical content: header
// lines, then body lines at their offset, blank where the body does not
// reach.
func (s *surface) visible() []string {
	out := make([]string, s.height)
	header := renderHeader(layout(s.width), s.width)
	body := s.bodyLines()
	for i := range out {
		y := s.offset + i
		if y < headerLines {
			out[i] = header[y]
			continue
		}
		idx := y - headerLines - s.bodyOffset
		if idx >= 0 && idx < len(body) {
			out[i] = body[idx]
		}
	}
	return out
}
