package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.Data.AutoReload)
	require.Equal(t, 100*time.Millisecond, cfg.Data.AutoReloadDebounce)
	require.Equal(t, 10, cfg.Table.BufferRows)
	require.Equal(t, 0, cfg.Table.RowHeight, "row height is measured by default")
	require.Equal(t, "dashboard", cfg.UI.Section)
	require.True(t, cfg.UI.ShowSidebar)
	require.Empty(t, cfg.Theme.Mode, "mode follows terminal detection by default")
	require.NoError(t, Validate(cfg))
}

func TestValidateData(t *testing.T) {
	tests := []struct {
		name    string
		data    DataConfig
		wantErr string
	}{
		{name: "empty path", data: DataConfig{}},
		{name: "json", data: DataConfig{Path: "rows.json"}},
		{name: "sqlite", data: DataConfig{Path: "/tmp/tx.db"}},
		{name: "sqlite3 extension", data: DataConfig{Path: "tx.sqlite3"}},
		{name: "csv", data: DataConfig{Path: "rows.csv"}, wantErr: "data.path"},
		{name: "negative debounce", data: DataConfig{AutoReloadDebounce: -time.Second}, wantErr: "auto_reload_debounce"},
		{name: "negative ttl", data: DataConfig{CacheTTL: -time.Second}, wantErr: "cache_ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateData(tt.data)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateTable(t *testing.T) {
	require.NoError(t, ValidateTable(TableConfig{}))
	require.NoError(t, ValidateTable(TableConfig{BufferRows: 0, RowHeight: 2}))

	err := ValidateTable(TableConfig{BufferRows: -1})
	require.ErrorContains(t, err, "table.buffer_rows")

	err = ValidateTable(TableConfig{RowHeight: -3})
	require.ErrorContains(t, err, "table.row_height")

	err = ValidateTable(TableConfig{FrameInterval: -time.Millisecond})
	require.ErrorContains(t, err, "table.frame_interval")
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{}))
	require.NoError(t, ValidateUI(UIConfig{MarkdownStyle: "light"}))
	require.ErrorContains(t, ValidateUI(UIConfig{MarkdownStyle: "sepia"}), "markdown_style")
}

func TestValidateTheme(t *testing.T) {
	for _, mode := range []string{"", ModeDark, ModeLight} {
		require.NoError(t, ValidateTheme(ThemeConfig{Mode: mode}), "mode %q", mode)
	}
	require.ErrorContains(t, ValidateTheme(ThemeConfig{Mode: "auto"}), "theme.mode")
}

func TestValidateTracing(t *testing.T) {
	require.NoError(t, ValidateTracing(TracingConfig{}))
	require.NoError(t, ValidateTracing(Defaults().Tracing))

	require.ErrorContains(t, ValidateTracing(TracingConfig{SampleRate: 1.5}), "sample_rate")
	require.ErrorContains(t, ValidateTracing(TracingConfig{Exporter: "jaeger"}), "exporter")
	require.ErrorContains(t, ValidateTracing(TracingConfig{Enabled: true, Exporter: "file"}), "file_path")
	require.ErrorContains(t, ValidateTracing(TracingConfig{Enabled: true, Exporter: "otlp"}), "otlp_endpoint")

	// Missing paths only matter when tracing is on.
	require.NoError(t, ValidateTracing(TracingConfig{Exporter: "file"}))
}

func TestValidate_ReportsFirstError(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Mode = "sepia"

	require.ErrorContains(t, Validate(cfg), "theme.mode")
}

func TestFlattenedColors(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"status":    map[string]any{"ok": "#10B981", "warn": "#F59E0B"},
		"chart.bar": "#54A0FF",
		"legacy":    map[any]any{"key": "#FFFFFF", 3: "ignored"},
		"bad":       42,
	}}

	got := theme.FlattenedColors()

	require.Equal(t, map[string]string{
		"status.ok":   "#10B981",
		"status.warn": "#F59E0B",
		"chart.bar":   "#54A0FF",
		"legacy.key":  "#FFFFFF",
	}, got)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestDefaultConfigTemplate_DecodesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	defaults := Defaults()
	require.Equal(t, defaults.Data, cfg.Data)
	require.Equal(t, defaults.Table.BufferRows, cfg.Table.BufferRows)
	require.Equal(t, 16*time.Millisecond, cfg.Table.FrameInterval)
	require.Equal(t, defaults.UI.Section, cfg.UI.Section)
	require.True(t, cfg.UI.ShowSidebar)
	require.NoError(t, Validate(cfg))
}
