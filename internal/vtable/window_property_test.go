package vtable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// =============================================================================
// Property-Based Tests for ComputeWindow
// =============================================================================

// TestProperty_WindowWithinDataset verifies 0 <= start <= end <= n.
func TestProperty_WindowWithinDataset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 100000).Draw(rt, "n")
		rowHeight := rapid.IntRange(0, 80).Draw(rt, "rowHeight")
		viewport := rapid.IntRange(0, 5000).Draw(rt, "viewport")
		scroll := rapid.IntRange(-500, 200000).Draw(rt, "scroll")
		buffer := rapid.IntRange(0, 50).Draw(rt, "buffer")

		w := ComputeWindow(scroll, viewport, rowHeight, n, buffer)

		require.GreaterOrEqual(t, w.Start, 0, "start must not be negative")
		require.LessOrEqual(t, w.Start, w.End, "start must not exceed end")
		require.LessOrEqual(t, w.End, n, "end must not exceed dataset length")
	})
}

// TestProperty_WindowCoversVisibleRows verifies the overscanned window always
// contains every row intersecting the viewport.
func TestProperty_WindowCoversVisibleRows(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 100000).Draw(rt, "n")
		rowHeight := rapid.IntRange(1, 80).Draw(rt, "rowHeight")
		viewport := rapid.IntRange(0, 5000).Draw(rt, "viewport")
		scroll := rapid.IntRange(0, n*rowHeight).Draw(rt, "scroll")
		buffer := rapid.IntRange(0, 50).Draw(rt, "buffer")

		visible := VisibleRange(scroll, viewport, rowHeight, n)
		w := ComputeWindow(scroll, viewport, rowHeight, n, buffer)

		require.LessOrEqual(t, w.Start, visible.Start, "window must start at or before first visible row")
		require.GreaterOrEqual(t, w.End, visible.End, "window must end at or after last visible row")
	})
}

// TestProperty_WindowSizeBounded verifies at most
// ceil(viewport/rowHeight) + 1 + 2*buffer rows are materialized.
func TestProperty_WindowSizeBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 100000).Draw(rt, "n")
		rowHeight := rapid.IntRange(1, 80).Draw(rt, "rowHeight")
		viewport := rapid.IntRange(0, 5000).Draw(rt, "viewport")
		scroll := rapid.IntRange(0, 200000).Draw(rt, "scroll")
		buffer := rapid.IntRange(0, 50).Draw(rt, "buffer")

		w := ComputeWindow(scroll, viewport, rowHeight, n, buffer)
		limit := ceilDiv(viewport, rowHeight) + 1 + 2*buffer

		require.LessOrEqual(t, w.Len(), limit, "window must not exceed visible rows plus overscan")
	})
}

// TestProperty_RenderIdempotent verifies a second render at the same
// position never touches the body.
func TestProperty_RenderIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 5000).Draw(rt, "n")
		height := rapid.IntRange(0, 200).Draw(rt, "height")
		scroll := rapid.IntRange(0, 6000).Draw(rt, "scroll")

		vp := &fakeViewport{height: height}
		body := &fakeBody{measured: 1}
		r := New(Config{Viewport: vp, Body: body, Spacer: &fakeSpacer{}, Rows: makeRows(n)})

		vp.scroll = scroll
		r.Render()
		calls := body.replaceCalls

		require.False(t, r.Render(), "second render must report no change")
		require.Equal(t, calls, body.replaceCalls, "body must not be replaced again")
		require.Len(t, body.rows, r.Window().Len(), "body holds exactly the window rows")
	})
}
