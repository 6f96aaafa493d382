package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestSaveThemeMode_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, SaveThemeMode(path, ModeLight))

	got := readYAML(t, path)
	require.Equal(t, map[string]any{"mode": "light"}, got["theme"])
}

func TestSaveThemeMode_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	require.NoError(t, SaveThemeMode(path, ModeDark))

	require.Equal(t, map[string]any{"mode": "dark"}, readYAML(t, path)["theme"])
}

func TestSaveThemeMode_CommentOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# just a comment\n"), 0o600))

	require.NoError(t, SaveThemeMode(path, ModeDark))

	require.Equal(t, map[string]any{"mode": "dark"}, readYAML(t, path)["theme"])
}

func TestSaveThemeMode_PreservesDefaultTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveThemeMode(path, ModeLight))

	got := readYAML(t, path)
	theme := got["theme"].(map[string]any)
	require.Equal(t, "light", theme["mode"])

	data := got["data"].(map[string]any)
	require.Equal(t, true, data["auto_reload"])
	require.Equal(t, "100ms", data["auto_reload_debounce"])

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "# Rows rendered above and below the viewport",
		"line comments on untouched keys survive")
}

func TestSaveThemeMode_ReplacesExistingKeepsSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	initial := `theme:
  preset: midnight
  mode: dark # toggled with t
ui:
  section: reports
`
	require.NoError(t, os.WriteFile(path, []byte(initial), 0o600))

	require.NoError(t, SaveThemeMode(path, ModeLight))

	got := readYAML(t, path)
	theme := got["theme"].(map[string]any)
	require.Equal(t, "midnight", theme["preset"])
	require.Equal(t, "light", theme["mode"])
	require.Equal(t, "reports", got["ui"].(map[string]any)["section"])

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "# toggled with t")
}

func TestSaveThemeMode_Toggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveThemeMode(path, ModeDark))
	require.NoError(t, SaveThemeMode(path, ModeLight))
	require.NoError(t, SaveThemeMode(path, ModeDark))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "theme:\n  mode: dark\n", string(raw))
}

func TestSaveThemeMode_InvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := SaveThemeMode(path, "sepia")

	require.ErrorContains(t, err, "theme.mode")
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "nothing is written for an invalid mode")
}

func TestSaveThemeMode_ThemeNotAMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: midnight\n"), 0o600))

	err := SaveThemeMode(path, ModeDark)

	require.ErrorContains(t, err, "not a mapping")
}

func TestSaveThemeMode_TopLevelList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	require.Error(t, SaveThemeMode(path, ModeDark))
}

func TestSaveThemeMode_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveThemeMode(path, ModeDark))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "config.yaml", entries[0].Name())
}
