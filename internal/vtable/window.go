package vtable

// DefaultBuffer is the number of rows overscanned above and below the
// visible span to hide blank lines during fast scrolling.
const DefaultBuffer = 10

// DefaultRowHeight is used when a row cannot be measured. Surfaces measure
// in their own units; for the terminal that is one line.
const DefaultRowHeight = 1

// Window is a half-open range [Start, End) of dataset indices.
type Window struct {
	Start int
	End   int
}

// invalidWindow never equals a computed window, forcing the next render.
var invalidWindow = Window{Start: -1, End: -1}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start
}

// Empty reports whether the window contains no rows.
func (w Window) Empty() bool {
	return w.Len() == 0
}

// Contains reports whether index i falls inside the window.
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// Offset returns the distance from the top of the content to the first row
// of the window.
func (w Window) Offset(rowHeight int) int {
	if w.Start <= 0 {
		return 0
	}
	return w.Start * rowHeight
}

// ComputeWindow maps a scroll position to the rows that must be materialized.
//
//	start = max(0, floor(scroll/rowHeight) - buffer)
//	end   = min(n, ceil((scroll+viewportHeight)/rowHeight) + buffer)
//
// scrollOffset is already adjusted for any header that scrolls with the body
// and may be negative while the header is in view. The result always
// satisfies 0 <= Start <= End <= n.
func ComputeWindow(scrollOffset, viewportHeight, rowHeight, n, buffer int) Window {
	if n <= 0 {
		return Window{}
	}
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	if buffer < 0 {
		buffer = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}

	start := max(0, floorDiv(scrollOffset, rowHeight)-buffer)
	end := min(n, ceilDiv(scrollOffset+viewportHeight, rowHeight)+buffer)

	// A viewport scrolled entirely past the content (or above it) can push
	// the raw bounds across each other.
	start = min(start, n)
	end = max(end, start)
	return Window{Start: start, End: end}
}

// VisibleRange returns the rows intersecting the viewport with no overscan.
func VisibleRange(scrollOffset, viewportHeight, rowHeight, n int) Window {
	return ComputeWindow(scrollOffset, viewportHeight, rowHeight, n, 0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
