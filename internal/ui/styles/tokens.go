// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override under theme.colors in their config.
const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Row status cells
	TokenStatusOK    ColorToken = "status.ok"
	TokenStatusWarn  ColorToken = "status.warn"
	TokenStatusError ColorToken = "status.error"

	// Table
	TokenTableHeader    ColorToken = "table.header"
	TokenTableScrollbar ColorToken = "table.scrollbar"
	TokenTableThumb     ColorToken = "table.thumb"

	// Charts
	TokenChartBar  ColorToken = "chart.bar"
	TokenChartLine ColorToken = "chart.line"
	TokenChartAxis ColorToken = "chart.axis"

	// Donut legend swatches
	TokenSwatchYellow ColorToken = "swatch.yellow"
	TokenSwatchBlue   ColorToken = "swatch.blue"
	TokenSwatchGreen  ColorToken = "swatch.green"

	// KPI cards
	TokenKPIValue ColorToken = "kpi.value"
	TokenKPIDelta ColorToken = "kpi.delta"

	// Sidebar
	TokenSidebarActive   ColorToken = "sidebar.active"
	TokenSidebarActiveBg ColorToken = "sidebar.active.bg"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"
)

// AllTokens returns all valid color tokens.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextSecondary, TokenTextMuted,
		TokenBorderDefault, TokenBorderFocus,
		TokenStatusOK, TokenStatusWarn, TokenStatusError,
		TokenTableHeader, TokenTableScrollbar, TokenTableThumb,
		TokenChartBar, TokenChartLine, TokenChartAxis,
		TokenSwatchYellow, TokenSwatchBlue, TokenSwatchGreen,
		TokenKPIValue, TokenKPIDelta,
		TokenSidebarActive, TokenSidebarActiveBg,
		TokenOverlayTitle, TokenOverlayBorder,
		TokenToastSuccess, TokenToastError, TokenToastInfo, TokenToastWarn,
	}
}
