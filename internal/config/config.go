// Package config provides configuration types and defaults for txdash.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/txdash/internal/log"
)

// Config holds all configuration options for txdash.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Table   TableConfig   `mapstructure:"table"`
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// DataConfig selects where the transactions table gets its rows.
type DataConfig struct {
	// Path to a .json or .db/.sqlite file. Empty means generated mock data.
	Path string `mapstructure:"path"`

	// AutoReload re-reads Path when it changes on disk.
	AutoReload bool `mapstructure:"auto_reload"`

	// AutoReloadDebounce coalesces bursts of file events.
	AutoReloadDebounce time.Duration `mapstructure:"auto_reload_debounce"`

	// CacheTTL is how long a loaded section dataset is reused.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// TableConfig tunes the virtualized renderer.
type TableConfig struct {
	BufferRows    int           `mapstructure:"buffer_rows"`    // overscan rows above and below the viewport
	RowHeight     int           `mapstructure:"row_height"`     // 0 = measure the sample row
	FrameInterval time.Duration `mapstructure:"frame_interval"` // delay of a coalesced scroll frame
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Section       string `mapstructure:"section"`        // section shown on startup
	ShowSidebar   bool   `mapstructure:"show_sidebar"`   // sidebar visible on startup
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "midnight", "paper", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// The theme toggle writes this key back.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     status:
	//       ok: "#10B981"
	// Or quoted dot notation:
	//   colors:
	//     "status.ok": "#10B981"
	Colors map[string]any `mapstructure:"colors"`
}

// Theme modes.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp". Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns ~/.config/txdash/traces/traces.jsonl, or an
// empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "txdash", "traces", "traces.jsonl")
}

// Validate checks every section of the configuration.
func Validate(cfg Config) error {
	if err := ValidateData(cfg.Data); err != nil {
		return err
	}
	if err := ValidateTable(cfg.Table); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateData checks data source configuration for errors.
func ValidateData(data DataConfig) error {
	if data.AutoReloadDebounce < 0 {
		return fmt.Errorf("data.auto_reload_debounce must not be negative, got %s", data.AutoReloadDebounce)
	}
	if data.CacheTTL < 0 {
		return fmt.Errorf("data.cache_ttl must not be negative, got %s", data.CacheTTL)
	}
	if data.Path == "" {
		return nil
	}
	switch filepath.Ext(data.Path) {
	case ".json", ".db", ".sqlite", ".sqlite3":
		return nil
	default:
		return fmt.Errorf("data.path must be a .json, .db, .sqlite or .sqlite3 file, got %q", data.Path)
	}
}

// ValidateTable checks renderer tuning for errors. Zero values use defaults.
func ValidateTable(table TableConfig) error {
	if table.BufferRows < 0 {
		return fmt.Errorf("table.buffer_rows must not be negative, got %d", table.BufferRows)
	}
	if table.RowHeight < 0 {
		return fmt.Errorf("table.row_height must not be negative, got %d", table.RowHeight)
	}
	if table.FrameInterval < 0 {
		return fmt.Errorf("table.frame_interval must not be negative, got %s", table.FrameInterval)
	}
	return nil
}

// ValidateUI checks user interface options.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateTheme checks the theme mode. Presets and color tokens are
// validated when the theme is applied.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", ModeDark, ModeLight:
		return nil
	default:
		return fmt.Errorf("theme.mode must be \"light\" or \"dark\", got %q", theme.Mode)
	}
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Data: DataConfig{
			AutoReload:         true,
			AutoReloadDebounce: 100 * time.Millisecond,
			CacheTTL:           5 * time.Minute,
		},
		Table: TableConfig{
			BufferRows:    10,
			FrameInterval: 16 * time.Millisecond,
		},
		UI: UIConfig{
			Section:       "dashboard",
			ShowSidebar:   true,
			MarkdownStyle: "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // derived from the config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# txdash configuration

# Where the transactions table gets its rows.
data:
  # path: ./transactions.json   # .json array or SQLite file from 'txdash seed'; empty = mock data
  auto_reload: true              # Reload when the data file changes
  auto_reload_debounce: 100ms
  cache_ttl: 5m                  # Reuse a section's dataset for this long

# Virtualized table tuning
table:
  buffer_rows: 10        # Rows rendered above and below the viewport
  # row_height: 1        # Lines per row; omit to measure
  frame_interval: 16ms   # Scroll events inside one frame render once

# UI settings
ui:
  section: dashboard     # dashboard, products, customers, reports, settings
  show_sidebar: true     # Toggle at runtime with 'm'
  # markdown_style: dark # Help rendering style: "dark" (default) or "light"

# Theme configuration
theme:
  # Use a preset (run 'txdash themes' to see available presets):
  # preset: midnight
  #
  # Light or dark. Toggle at runtime with 't'; the choice is saved here.
  # Omit to follow the terminal background.
  # mode: dark
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   status.ok: "#10B981"
  #   chart.bar: "#54A0FF"

# Tracing
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # none, file, stdout, otlp (default: file)
#   file_path: ~/.config/txdash/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
