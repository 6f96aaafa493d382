package charts

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestBarHeights(t *testing.T) {
	got := BarHeights([]float64{0, 50, 100, 150, -10}, 4)
	require.Equal(t, []int{0, 16, 32, 32, 0}, got)
}

func TestBarHeights_ZeroHeight(t *testing.T) {
	require.Equal(t, []int{0, 0}, BarHeights([]float64{10, 90}, 0))
}

func TestBarTooltip(t *testing.T) {
	b := Bar{
		Labels:   []string{"Sun", "Mon"},
		Tooltips: []string{"3.5k"},
	}
	require.Equal(t, "Sun 3.5k", b.Tooltip(0))
	require.Equal(t, "Mon", b.Tooltip(1))
	require.Equal(t, "", b.Tooltip(5))
}

func TestBarRender(t *testing.T) {
	b := Bar{
		Labels:   []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Values:   []float64{35, 52, 68, 74, 56, 92, 44},
		Tooltips: []string{"3.5k", "5.2k", "6.8k", "7.4k", "5.6k", "9.2k", "4.4k"},
	}
	lines := plain(b.Render(35, 10))
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, 35, lipgloss.Width(l))
	}
	assert.Contains(t, lines[8], "9.2k")
	assert.True(t, strings.HasPrefix(lines[9], "Sun"))

	// The tallest bar (Fri) reaches the top row; the others do not.
	top := []rune(lines[0])
	assert.NotEqual(t, ' ', top[25], "Fri should reach the top row")
	assert.Equal(t, ' ', top[0], "Sun should not reach the top row")
}

func TestBarRender_TooSmall(t *testing.T) {
	b := Bar{Values: []float64{10}}
	assert.Empty(t, b.Render(10, 2))
	assert.Empty(t, Bar{}.Render(10, 10))
}

func TestRing_FillProportion(t *testing.T) {
	for _, pct := range []int{0, 25, 68, 100} {
		var filled, track int
		for _, row := range Ring(6, pct) {
			for _, c := range row {
				switch c {
				case cellFilled:
					filled++
				case cellTrack:
					track++
				}
			}
		}
		total := filled + track
		require.Positive(t, total)
		got := float64(filled) / float64(total) * 100
		assert.InDelta(t, float64(pct), got, 8, "percent %d", pct)
	}
}

func TestRing_ClampsPercent(t *testing.T) {
	require.Equal(t, Ring(3, 100), Ring(3, 250))
	require.Equal(t, Ring(3, 0), Ring(3, -5))
	require.Nil(t, Ring(0, 50))
}

func TestDonutRender(t *testing.T) {
	d := Donut{Percent: 68, Legend: []string{"Paid Ads", "Organic", "Referral"}}
	out := ansi.Strip(d.Render(40, 9))
	assert.Contains(t, out, "68%")
	assert.Contains(t, out, "■ Paid Ads")
	assert.Contains(t, out, "■ Referral")
}

func TestScale(t *testing.T) {
	require.Equal(t, []int{0, 2, 4}, Scale([]float64{10, 15, 20}, 5))
	require.Equal(t, []int{0, 0, 0}, Scale([]float64{7, 7, 7}, 5), "flat series sits at the bottom")
	require.Equal(t, []int{}, Scale(nil, 5))
}

func TestColumns(t *testing.T) {
	require.Equal(t, []int{0, 2, 4, 6}, Columns(4, 7))
	require.Equal(t, []int{0}, Columns(1, 20))
}

func TestLinePointLabel(t *testing.T) {
	l := Line{Months: []string{"Jan", "Feb"}, Values: []float64{12.0, 14.2, 15.1}}
	assert.Equal(t, "Jan: 12k", l.PointLabel(0))
	assert.Equal(t, "Feb: 14.2k", l.PointLabel(1))
	assert.Equal(t, "M3: 15.1k", l.PointLabel(2))
}

func TestLineRender_FlatSeries(t *testing.T) {
	l := Line{
		Months: []string{"Jan", "Feb", "Mar", "Apr"},
		Values: []float64{0, 0, 0, 0},
	}
	lines := plain(l.Render(20, 6))
	require.Len(t, lines, 6)
	assert.Equal(t, 4, strings.Count(lines[4], "●"))
	for _, row := range lines[:4] {
		assert.NotContains(t, row, "●")
	}
	assert.True(t, strings.HasPrefix(lines[5], "Jan"))
	assert.True(t, strings.HasSuffix(lines[5], "Apr"))
}

func TestLineRender_Extremes(t *testing.T) {
	l := Line{Values: []float64{1, 9}}
	lines := plain(l.Render(10, 5))
	assert.Equal(t, "●", string([]rune(lines[3])[0]), "minimum on the bottom row")
	assert.Equal(t, "●", string([]rune(lines[0])[9]), "maximum on the top row")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "4,890", FormatValue("4890"))
	assert.Equal(t, "201", FormatValue("201"))
	assert.Equal(t, "1.20%", FormatValue("1.20%"))
	assert.Equal(t, "$30,562", FormatValue("$30,562"))
	assert.Equal(t, "—", FormatValue("—"))
}

func TestRenderKPIs(t *testing.T) {
	kpis := []KPI{
		{Label: "Orders", Value: "201", Delta: "+12%", Note: "vs last week"},
		{Label: "Users", Value: "4890", Note: "Avg. session 6m 12s"},
	}
	out := ansi.Strip(RenderKPIs(kpis, 60))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "201 +12%")
	assert.Contains(t, lines[1], "4,890")
	assert.Contains(t, lines[2], "vs last week")
}
