package scrollbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestThumb_Table(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		start, size int
	}{
		{"empty content", Config{Total: 0, Height: 10}, 0, 0},
		{"zero height", Config{Total: 100, Height: 0}, 0, 0},
		{"fits", Config{Total: 5, Height: 10}, 0, 10},
		{"top", Config{Total: 100, Height: 10, Offset: 0}, 0, 1},
		{"bottom", Config{Total: 100, Height: 10, Offset: 90}, 9, 1},
		{"half", Config{Total: 20, Height: 10, Offset: 5}, 3, 5},
		{"offset past end clamps", Config{Total: 100, Height: 10, Offset: 500}, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, size := Thumb(tt.cfg)
			require.Equal(t, tt.start, start, "start")
			require.Equal(t, tt.size, size, "size")
		})
	}
}

func TestRender_LineCount(t *testing.T) {
	out := Render(Config{Total: 10000, Height: 12, Offset: 40})

	require.Len(t, strings.Split(out, "\n"), 12)
	require.Equal(t, 1, strings.Count(out, thumbChar))
}

func TestRender_FitsIsBlank(t *testing.T) {
	out := Render(Config{Total: 3, Height: 4})

	require.Equal(t, " \n \n \n ", out)
	require.Empty(t, Render(Config{Total: 3}))
}

// =============================================================================
// Property-Based Tests
// =============================================================================

// TestProperty_ThumbInsideTrack verifies the thumb never leaves the track and
// touches both ends exactly at the extremes.
func TestProperty_ThumbInsideTrack(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		height := rapid.IntRange(2, 200).Draw(rt, "height")
		total := rapid.IntRange(height+1, 500000).Draw(rt, "total")
		offset := rapid.IntRange(0, total-height).Draw(rt, "offset")

		start, size := Thumb(Config{Total: total, Height: height, Offset: offset})

		require.GreaterOrEqual(t, start, 0)
		require.GreaterOrEqual(t, size, 1)
		require.LessOrEqual(t, start+size, height)
		if offset == 0 {
			require.Equal(t, 0, start)
		}
		if offset == total-height {
			require.Equal(t, height, start+size)
		} else {
			require.Less(t, start+size, height, "thumb reaches the bottom only at the end")
		}
	})
}
