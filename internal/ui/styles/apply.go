// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import txtable, but txtable can register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// Theme modes accepted by ThemeConfig.Mode and ParseMode.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors for both backgrounds
// 2. Apply preset (if specified)
// 3. Apply individual color overrides to both backgrounds
// 4. Rebuild all Style objects
// 5. Force the background mode when Mode is set
func ApplyTheme(cfg ThemeConfig) error {
	dark := maps.Clone(DefaultPreset.Dark)
	light := maps.Clone(DefaultPreset.Light)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(dark, preset.Dark)
		maps.Copy(light, preset.Light)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		dark[token] = value
		light[token] = value
	}

	var mode string
	if cfg.Mode != "" {
		m, err := ParseMode(cfg.Mode)
		if err != nil {
			return err
		}
		mode = m
	}

	applyColors(light, dark)
	rebuildStyles()

	if mode != "" {
		SetDark(mode == ModeDark)
	}
	return nil
}

// colorTargets maps each token to the variable it drives.
func colorTargets() map[ColorToken]*lipgloss.AdaptiveColor {
	return map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:   &TextPrimaryColor,
		TokenTextSecondary: &TextSecondaryColor,
		TokenTextMuted:     &TextMutedColor,

		TokenBorderDefault: &BorderDefaultColor,
		TokenBorderFocus:   &BorderFocusColor,

		TokenStatusOK:    &StatusOKColor,
		TokenStatusWarn:  &StatusWarnColor,
		TokenStatusError: &StatusErrorColor,

		TokenTableHeader:    &TableHeaderColor,
		TokenTableScrollbar: &TableScrollbarColor,
		TokenTableThumb:     &TableThumbColor,

		TokenChartBar:  &ChartBarColor,
		TokenChartLine: &ChartLineColor,
		TokenChartAxis: &ChartAxisColor,

		TokenSwatchYellow: &SwatchYellowColor,
		TokenSwatchBlue:   &SwatchBlueColor,
		TokenSwatchGreen:  &SwatchGreenColor,

		TokenKPIValue: &KPIValueColor,
		TokenKPIDelta: &KPIDeltaColor,

		TokenSidebarActive:   &SidebarActiveColor,
		TokenSidebarActiveBg: &SidebarActiveBgColor,

		TokenOverlayTitle:  &OverlayTitleColor,
		TokenOverlayBorder: &OverlayBorderColor,

		TokenToastSuccess: &ToastBorderSuccessColor,
		TokenToastError:   &ToastBorderErrorColor,
		TokenToastInfo:    &ToastBorderInfoColor,
		TokenToastWarn:    &ToastBorderWarnColor,
	}
}

func applyColors(light, dark map[ColorToken]string) {
	for token, target := range colorTargets() {
		l, lok := light[token]
		d, dok := dark[token]
		if !lok && !dok {
			continue
		}
		// A side missing from both the preset and the defaults reuses the
		// other side's value.
		if !lok {
			l = d
		}
		if !dok {
			d = l
		}
		*target = lipgloss.AdaptiveColor{Light: l, Dark: d}
	}
}

// ParseMode normalizes a theme mode string. The empty string is accepted and
// means "detect from the terminal".
func ParseMode(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case ModeDark:
		return ModeDark, nil
	case ModeLight:
		return ModeLight, nil
	default:
		return "", fmt.Errorf("invalid theme mode %q: must be %q or %q", s, ModeDark, ModeLight)
	}
}

// SetDark forces the background used to resolve adaptive colors.
func SetDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// IsDark reports whether adaptive colors currently resolve to their dark
// variant.
func IsDark() bool {
	return lipgloss.HasDarkBackground()
}

// Mode returns the current background as ModeDark or ModeLight.
func Mode() string {
	if IsDark() {
		return ModeDark
	}
	return ModeLight
}

// ToggleMode flips between dark and light and returns the new mode.
func ToggleMode() string {
	SetDark(!IsDark())
	return Mode()
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
