// Package styles contains Lip Gloss style definitions.
//
// Colors are lipgloss.AdaptiveColor values: each carries a light and a dark
// variant and the renderer picks one based on lipgloss.HasDarkBackground.
// Flipping the theme therefore only needs SetDark; the styles themselves are
// rebuilt by ApplyTheme when presets or overrides change the hex values.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6E6E6"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#BBBBBB"} // Row ids, KPI notes
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"} // Focused pane

	// Row status cells ("status ok" / "status warn")
	StatusOKColor    = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	StatusWarnColor  = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#FECA57"}
	StatusErrorColor = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}

	// Table chrome
	TableHeaderColor    = lipgloss.AdaptiveColor{Light: "#24292F", Dark: "#C9C9C9"}
	TableScrollbarColor = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#3A3A3A"}
	TableThumbColor     = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#8C8C8C"}

	// Charts
	ChartBarColor  = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	ChartLineColor = lipgloss.AdaptiveColor{Light: "#8250DF", Dark: "#CBA6F7"}
	ChartAxisColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#696969"}

	// Donut legend swatches, cycled yellow, blue, green
	SwatchYellowColor = lipgloss.AdaptiveColor{Light: "#BF8700", Dark: "#FECA57"}
	SwatchBlueColor   = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	SwatchGreenColor  = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}

	// KPI cards
	KPIValueColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#FFFFFF"}
	KPIDeltaColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}

	// Sidebar
	SidebarActiveColor   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	SidebarActiveBgColor = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#1A5276"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#24292F", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#FECA57"}
)

// Styles derived from the colors above. rebuildStyles recreates them after
// ApplyTheme so they pick up new hex values.
var (
	StatusOKStyle    lipgloss.Style
	StatusWarnStyle  lipgloss.Style
	TableHeaderStyle lipgloss.Style
	MutedStyle       lipgloss.Style
	KPIValueStyle    lipgloss.Style
	KPIDeltaStyle    lipgloss.Style
	SidebarItemStyle lipgloss.Style
	SidebarActive    lipgloss.Style
	ChipStyle        lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Error display
	ErrorStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	StatusOKStyle = lipgloss.NewStyle().Foreground(StatusOKColor)
	StatusWarnStyle = lipgloss.NewStyle().Foreground(StatusWarnColor)
	TableHeaderStyle = lipgloss.NewStyle().Foreground(TableHeaderColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	KPIValueStyle = lipgloss.NewStyle().Foreground(KPIValueColor).Bold(true)
	KPIDeltaStyle = lipgloss.NewStyle().Foreground(KPIDeltaColor)
	SidebarItemStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Padding(0, 1)
	SidebarActive = lipgloss.NewStyle().
		Foreground(SidebarActiveColor).
		Background(SidebarActiveBgColor).
		Bold(true).
		Padding(0, 1)
	ChipStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	for _, fn := range styleRebuilders {
		fn()
	}
}

// StatusStyle returns the style for a status class ("ok" or "warn").
func StatusStyle(class string) lipgloss.Style {
	if class == "ok" {
		return StatusOKStyle
	}
	return StatusWarnStyle
}

// SwatchColor returns the legend swatch color for position i, cycling
// yellow, blue, green.
func SwatchColor(i int) lipgloss.AdaptiveColor {
	switch ((i % 3) + 3) % 3 {
	case 0:
		return SwatchYellowColor
	case 1:
		return SwatchBlueColor
	default:
		return SwatchGreenColor
	}
}
