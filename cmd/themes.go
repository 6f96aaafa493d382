package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/txdash/internal/presentation"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

var themesJSON bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in theme presets",
	Long: `List the theme presets that can be set with theme.preset in the config.

Each preset is shown with a few of its colors for the current terminal
background. Use --json to dump every token for both modes.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	themesCmd.Flags().BoolVar(&themesJSON, "json", false, "print presets and all color tokens as JSON")
	rootCmd.AddCommand(themesCmd)
}

// swatchTokens are the colors previewed next to each preset name.
var swatchTokens = []styles.ColorToken{
	styles.TokenTextPrimary,
	styles.TokenBorderFocus,
	styles.TokenStatusOK,
	styles.TokenStatusWarn,
	styles.TokenStatusError,
	styles.TokenChartBar,
	styles.TokenChartLine,
}

func runThemes(cmd *cobra.Command, _ []string) error {
	if themesJSON {
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatThemes(presentation.FromPresets(styles.Presets))
	}

	names := styles.PresetNames()
	nameWidth := 0
	for _, name := range names {
		nameWidth = max(nameWidth, len(name))
	}

	active := cfg.Theme.Preset
	if active == "" {
		active = styles.DefaultPreset.Name
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		p := styles.Presets[name]
		marker := "  "
		if name == active {
			marker = "* "
		}
		fmt.Fprintf(out, "%s%s  %s  %s\n", marker, styles.PadRight(name, nameWidth), swatches(p), p.Description)
	}
	return nil
}

// swatches renders one block per swatch token in the preset's colors for the
// current background, falling back to the default preset.
func swatches(p styles.Preset) string {
	side, fallback := p.Light, styles.DefaultPreset.Light
	if styles.IsDark() {
		side, fallback = p.Dark, styles.DefaultPreset.Dark
	}

	var b strings.Builder
	for _, tok := range swatchTokens {
		c, ok := side[tok]
		if !ok {
			c = fallback[tok]
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}
	return b.String()
}
