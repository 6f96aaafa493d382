// Package styles contains Lip Gloss style definitions.
package styles

import (
	"maps"
	"slices"
)

// Preset represents a complete color theme. Dark and Light hold the values
// used on dark and light terminal backgrounds; a token missing from one side
// falls back to the default preset's value for that side.
type Preset struct {
	Name        string
	Description string
	Dark        map[ColorToken]string
	Light       map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"midnight":      MidnightPreset,
	"paper":         PaperPreset,
	"high-contrast": HighContrastPreset,
}

// PresetNames returns the preset names sorted alphabetically.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// DefaultPreset is the stock txdash palette.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default txdash theme",
	Dark: map[ColorToken]string{
		TokenTextPrimary:   "#E6E6E6",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#54A0FF",

		TokenStatusOK:    "#73F59F",
		TokenStatusWarn:  "#FECA57",
		TokenStatusError: "#FF8787",

		TokenTableHeader:    "#C9C9C9",
		TokenTableScrollbar: "#3A3A3A",
		TokenTableThumb:     "#8C8C8C",

		TokenChartBar:  "#54A0FF",
		TokenChartLine: "#CBA6F7",
		TokenChartAxis: "#696969",

		TokenSwatchYellow: "#FECA57",
		TokenSwatchBlue:   "#54A0FF",
		TokenSwatchGreen:  "#73F59F",

		TokenKPIValue: "#FFFFFF",
		TokenKPIDelta: "#73F59F",

		TokenSidebarActive:   "#FFFFFF",
		TokenSidebarActiveBg: "#1A5276",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:   "#1F2328",
		TokenTextSecondary: "#57606A",
		TokenTextMuted:     "#8C959F",

		TokenBorderDefault: "#D0D7DE",
		TokenBorderFocus:   "#0969DA",

		TokenStatusOK:    "#1A7F37",
		TokenStatusWarn:  "#9A6700",
		TokenStatusError: "#CF222E",

		TokenTableHeader:    "#24292F",
		TokenTableScrollbar: "#D0D7DE",
		TokenTableThumb:     "#8C959F",

		TokenChartBar:  "#0969DA",
		TokenChartLine: "#8250DF",
		TokenChartAxis: "#8C959F",

		TokenSwatchYellow: "#BF8700",
		TokenSwatchBlue:   "#0969DA",
		TokenSwatchGreen:  "#1A7F37",

		TokenKPIValue: "#1F2328",
		TokenKPIDelta: "#1A7F37",

		TokenSidebarActive:   "#FFFFFF",
		TokenSidebarActiveBg: "#0969DA",

		TokenOverlayTitle:  "#24292F",
		TokenOverlayBorder: "#8C959F",

		TokenToastSuccess: "#1A7F37",
		TokenToastError:   "#CF222E",
		TokenToastInfo:    "#0969DA",
		TokenToastWarn:    "#9A6700",
	},
}

// MidnightPreset is a blue-tinted palette based on Catppuccin Mocha and Latte.
var MidnightPreset = Preset{
	Name:        "midnight",
	Description: "Catppuccin-inspired blues and mauves",
	Dark: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4",
		TokenTextSecondary: "#BAC2DE",
		TokenTextMuted:     "#6C7086",

		TokenBorderDefault: "#45475A",
		TokenBorderFocus:   "#89B4FA",

		TokenStatusOK:    "#A6E3A1",
		TokenStatusWarn:  "#F9E2AF",
		TokenStatusError: "#F38BA8",

		TokenTableHeader:    "#B4BEFE",
		TokenTableScrollbar: "#313244",
		TokenTableThumb:     "#7F849C",

		TokenChartBar:  "#89B4FA",
		TokenChartLine: "#CBA6F7",
		TokenChartAxis: "#6C7086",

		TokenSwatchYellow: "#F9E2AF",
		TokenSwatchBlue:   "#89B4FA",
		TokenSwatchGreen:  "#A6E3A1",

		TokenKPIValue: "#CDD6F4",
		TokenKPIDelta: "#A6E3A1",

		TokenSidebarActive:   "#1E1E2E",
		TokenSidebarActiveBg: "#89B4FA",

		TokenOverlayTitle:  "#B4BEFE",
		TokenOverlayBorder: "#7F849C",

		TokenToastSuccess: "#A6E3A1",
		TokenToastError:   "#F38BA8",
		TokenToastInfo:    "#89B4FA",
		TokenToastWarn:    "#F9E2AF",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:   "#4C4F69",
		TokenTextSecondary: "#5C5F77",
		TokenTextMuted:     "#9CA0B0",

		TokenBorderDefault: "#BCC0CC",
		TokenBorderFocus:   "#1E66F5",

		TokenStatusOK:    "#40A02B",
		TokenStatusWarn:  "#DF8E1D",
		TokenStatusError: "#D20F39",

		TokenTableHeader:    "#7287FD",
		TokenTableScrollbar: "#CCD0DA",
		TokenTableThumb:     "#8C8FA1",

		TokenChartBar:  "#1E66F5",
		TokenChartLine: "#8839EF",
		TokenChartAxis: "#9CA0B0",

		TokenSwatchYellow: "#DF8E1D",
		TokenSwatchBlue:   "#1E66F5",
		TokenSwatchGreen:  "#40A02B",

		TokenKPIValue: "#4C4F69",
		TokenKPIDelta: "#40A02B",

		TokenSidebarActive:   "#EFF1F5",
		TokenSidebarActiveBg: "#1E66F5",

		TokenOverlayTitle:  "#7287FD",
		TokenOverlayBorder: "#8C8FA1",

		TokenToastSuccess: "#40A02B",
		TokenToastError:   "#D20F39",
		TokenToastInfo:    "#1E66F5",
		TokenToastWarn:    "#DF8E1D",
	},
}

// PaperPreset is a low-saturation palette that reads like a printed report.
var PaperPreset = Preset{
	Name:        "paper",
	Description: "Muted greys with sepia accents",
	Dark: map[ColorToken]string{
		TokenTextPrimary:   "#D8D4C8",
		TokenTextSecondary: "#B5B0A1",
		TokenTextMuted:     "#7A7567",

		TokenBorderDefault: "#5E5A50",
		TokenBorderFocus:   "#C9A66B",

		TokenStatusOK:    "#9CB380",
		TokenStatusWarn:  "#D4A35A",
		TokenStatusError: "#C8675A",

		TokenChartBar:  "#C9A66B",
		TokenChartLine: "#9CB380",

		TokenSidebarActive:   "#1C1B18",
		TokenSidebarActiveBg: "#C9A66B",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:   "#2E2A24",
		TokenTextSecondary: "#5C554A",
		TokenTextMuted:     "#9A9384",

		TokenBorderDefault: "#CFC8B8",
		TokenBorderFocus:   "#8A6A34",

		TokenStatusOK:    "#4F6B34",
		TokenStatusWarn:  "#8A5A1C",
		TokenStatusError: "#9E3B2E",

		TokenChartBar:  "#8A6A34",
		TokenChartLine: "#4F6B34",

		TokenSidebarActive:   "#FBF8F1",
		TokenSidebarActiveBg: "#8A6A34",
	},
}

// HighContrastPreset maximizes legibility on either background.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Dark: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#C0C0C0",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#00FFFF",

		TokenStatusOK:    "#00FF00",
		TokenStatusWarn:  "#FFFF00",
		TokenStatusError: "#FF0000",

		TokenTableHeader: "#FFFFFF",
		TokenTableThumb:  "#FFFFFF",

		TokenKPIValue: "#FFFFFF",
		TokenKPIDelta: "#00FF00",

		TokenSidebarActive:   "#000000",
		TokenSidebarActiveBg: "#00FFFF",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:   "#000000",
		TokenTextSecondary: "#000000",
		TokenTextMuted:     "#404040",

		TokenBorderDefault: "#000000",
		TokenBorderFocus:   "#0000FF",

		TokenStatusOK:    "#006400",
		TokenStatusWarn:  "#8B4500",
		TokenStatusError: "#B00000",

		TokenTableHeader: "#000000",
		TokenTableThumb:  "#000000",

		TokenKPIValue: "#000000",
		TokenKPIDelta: "#006400",

		TokenSidebarActive:   "#FFFFFF",
		TokenSidebarActiveBg: "#0000FF",
	},
}
