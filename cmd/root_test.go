package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/config"
	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/presentation"
	"github.com/zjrosen/txdash/internal/testutil"
	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/vtable"
)

func TestMain(m *testing.M) {
	log.InitWriter(io.Discard)
	os.Exit(m.Run())
}

// newTestCommand returns a bare command whose output is captured.
func newTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetContext(context.Background())
	return c, &out
}

// withConfig swaps the package config for the duration of the test.
func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TXDASH_DEBUG", "")
	debugFlag = false
	require.False(t, debugEnabled())

	t.Setenv("TXDASH_DEBUG", "1")
	require.True(t, debugEnabled())

	t.Setenv("TXDASH_DEBUG", "")
	debugFlag = true
	t.Cleanup(func() { debugFlag = false })
	require.True(t, debugEnabled())
}

func TestApplyTheme_RejectsUnknownPreset(t *testing.T) {
	err := applyTheme(config.ThemeConfig{Preset: "no-such-preset"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "applying theme")
}

func TestApplyTheme_PersistedMode(t *testing.T) {
	prev := styles.IsDark()
	t.Cleanup(func() { styles.SetDark(prev) })

	require.NoError(t, applyTheme(config.ThemeConfig{Preset: "default", Mode: styles.ModeDark}))
	require.Equal(t, styles.ModeDark, styles.Mode())

	require.NoError(t, applyTheme(config.ThemeConfig{Preset: "default", Mode: styles.ModeLight}))
	require.Equal(t, styles.ModeLight, styles.Mode())
}

func TestGenerateSeedRows_DefaultShape(t *testing.T) {
	rows, err := generateSeedRows(30, "", 7)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	require.Equal(t, "#8451", rows[0].ID)
	require.Equal(t, "#8480", rows[29].ID)
	require.Equal(t, vtable.StatusPaid, rows[0].Status)
	require.Equal(t, vtable.StatusPending, rows[1].Status)
	require.Equal(t, vtable.StatusFailed, rows[2].Status)
}

func TestGenerateSeedRows_SectionIsReproducible(t *testing.T) {
	a, err := generateSeedRows(200, "reports", 42)
	require.NoError(t, err)
	b, err := generateSeedRows(200, "reports", 42)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, "#1000", a[0].ID)

	settings, err := generateSeedRows(100, "settings", 42)
	require.NoError(t, err)
	for _, r := range settings {
		require.Equal(t, vtable.StatusPaid, r.Status)
	}
}

func TestGenerateSeedRows_UnknownSection(t *testing.T) {
	_, err := generateSeedRows(10, "billing", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown section")
	require.Contains(t, err.Error(), "dashboard")
}

func TestRunSeed_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")
	seedRows, seedSection, seedValue = 25, "", 3
	t.Cleanup(func() { seedRows, seedSection, seedValue = txsource.DefaultRows, "", 0 })

	c, out := newTestCommand(t)
	require.NoError(t, runSeed(c, []string{path}))
	require.Contains(t, out.String(), "Wrote 25 rows to "+path)

	src, err := txsource.Open(path)
	require.NoError(t, err)
	rows, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 25)
}

func TestRunSeed_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.db")
	seedRows, seedSection, seedValue = 40, "customers", 9
	t.Cleanup(func() { seedRows, seedSection, seedValue = txsource.DefaultRows, "", 0 })

	c, _ := newTestCommand(t)
	require.NoError(t, runSeed(c, []string{path}))

	src, err := txsource.Open(path)
	require.NoError(t, err)
	rows, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 40)
}

func TestRunSeed_RejectsUnknownExtension(t *testing.T) {
	seedRows = 5
	t.Cleanup(func() { seedRows = txsource.DefaultRows })

	c, _ := newTestCommand(t)
	err := runSeed(c, []string{filepath.Join(t.TempDir(), "rows.csv")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported dataset extension")
}

func TestRunSnapshot_JSONWindow(t *testing.T) {
	withConfig(t, config.Defaults())

	dir := t.TempDir()
	out := filepath.Join(dir, "snap.html")
	snapScroll, snapHeight, snapRowHeight, snapBuffer = 2000, 400, 40, 0
	snapTitle, snapOutput, snapTheme = "Recent Transactions", out, "dark"
	snapOpen, snapJSON = false, true
	t.Cleanup(func() {
		snapScroll, snapHeight, snapRowHeight, snapBuffer = 0, 400, 40, 0
		snapTitle, snapOutput, snapTheme = "Recent Transactions", "snapshot.html", ""
		snapJSON = false
	})

	c, stdout := newTestCommand(t)
	require.NoError(t, runSnapshot(c, nil))

	var dto presentation.SnapshotDTO
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &dto))
	assert.Equal(t, out, dto.Path)
	assert.Equal(t, txsource.DefaultRows, dto.Rows)
	assert.Equal(t, 40, dto.Window.Start)
	assert.Equal(t, 70, dto.Window.End)
	assert.Equal(t, 1600, dto.BodyOffset)
	assert.Equal(t, 400000, dto.ContentHeight)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "#8501")
	assert.NotContains(t, string(page), "#8451<")
}

func TestRunSnapshot_SQLiteSource(t *testing.T) {
	db, path := testutil.NewTestDBFile(t)
	testutil.NewBuilder(t, db).WithStandardTestData().Build()

	c := config.Defaults()
	c.Data.Path = path
	withConfig(t, c)

	out := filepath.Join(t.TempDir(), "snap.html")
	snapOutput, snapJSON = out, false
	t.Cleanup(func() { snapOutput = "snapshot.html" })

	cmd, stdout := newTestCommand(t)
	require.NoError(t, runSnapshot(cmd, nil))
	require.Contains(t, stdout.String(), "of 6 rows")

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Fatima E")
	assert.Contains(t, string(page), "#1006")
}

func TestRunSnapshot_RejectsBadTheme(t *testing.T) {
	withConfig(t, config.Defaults())
	snapTheme = "sepia"
	t.Cleanup(func() { snapTheme = "" })

	c, _ := newTestCommand(t)
	require.Error(t, runSnapshot(c, nil))
}

func TestRunThemes_ListsPresets(t *testing.T) {
	c := config.Defaults()
	c.Theme.Preset = "midnight"
	withConfig(t, c)

	cmd, out := newTestCommand(t)
	require.NoError(t, runThemes(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(styles.Presets))
	for _, line := range lines {
		if strings.Contains(line, "midnight") {
			require.True(t, strings.HasPrefix(line, "* "), "active preset should be marked: %q", line)
		} else {
			require.True(t, strings.HasPrefix(line, "  "), "line %q", line)
		}
	}
}

func TestRunThemes_JSON(t *testing.T) {
	withConfig(t, config.Defaults())
	themesJSON = true
	t.Cleanup(func() { themesJSON = false })

	cmd, out := newTestCommand(t)
	require.NoError(t, runThemes(cmd, nil))

	var themes []presentation.ThemeDTO
	require.NoError(t, json.Unmarshal(out.Bytes(), &themes))
	require.Len(t, themes, len(styles.Presets))
	require.Equal(t, "default", themes[0].Name)
}
