package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func grid(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestPlace_Positions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "center",
			cfg:  Config{Width: 6, Height: 3, Position: Center},
			want: []string{"......", "..XX..", "......"},
		},
		{
			name: "top with padding",
			cfg:  Config{Width: 6, Height: 3, Position: Top, PadY: 1},
			want: []string{"......", "..XX..", "......"},
		},
		{
			name: "bottom",
			cfg:  Config{Width: 6, Height: 3, Position: Bottom},
			want: []string{"......", "......", "..XX.."},
		},
		{
			name: "bottom right",
			cfg:  Config{Width: 6, Height: 3, Position: BottomRight, PadX: 1, PadY: 1},
			want: []string{"......", "...XX.", "......"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.cfg, "XX", grid(6, 3))
			require.Equal(t, tt.want, strings.Split(got, "\n"))
		})
	}
}

func TestPlace_ForegroundLargerThanBackground(t *testing.T) {
	got := Place(Config{Width: 3, Height: 2, Position: Center}, "XXXXX\nXXXXX\nXXXXX", grid(3, 2))

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2, "foreground lines below the background are dropped")
	require.Equal(t, "XXXXX", lines[0])
}

func TestAt_PadsShortBackground(t *testing.T) {
	got := At("X", "..", 4, 2, 3)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "    X", lines[2])
}

func TestAt_PreservesStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("abcdef")

	got := At("X", styled, 2, 0, 1)

	require.Equal(t, 6, lipgloss.Width(got))
	require.Contains(t, got, "X")
}
