package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "Riya A", 10, "Riya A"},
		{"exact", "Riya A", 6, "Riya A"},
		{"truncated", "Fatima Z", 6, "Fat..."},
		{"tiny width", "Fatima Z", 2, ".."},
		{"zero width", "Fatima Z", 0, ""},
		{"wide runes", "日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.width)
			require.Equal(t, tt.expected, got)
			require.LessOrEqual(t, lipgloss.Width(got), max(tt.width, 0))
		})
	}
}

func TestPad(t *testing.T) {
	require.Equal(t, "ab   ", PadRight("ab", 5))
	require.Equal(t, "   ab", PadLeft("ab", 5))
	require.Equal(t, "ab...", PadRight("abcdefgh", 5))
	require.Equal(t, "ab...", PadLeft("abcdefgh", 5))
}
