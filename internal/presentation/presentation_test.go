package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/txdash/internal/snapshot"
	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/vtable"
)

func TestFromPresets_SortedWithTokens(t *testing.T) {
	dtos := FromPresets(styles.Presets)
	require.Len(t, dtos, len(styles.Presets))

	names := make([]string, len(dtos))
	for i, d := range dtos {
		names[i] = d.Name
	}
	require.Equal(t, styles.PresetNames(), names)

	def := dtos[0]
	require.Equal(t, "default", def.Name)
	require.Equal(t, "#73F59F", def.Dark[string(styles.TokenStatusOK)])
	require.Equal(t, "#1A7F37", def.Light[string(styles.TokenStatusOK)])
}

func TestFormatter_Snapshot(t *testing.T) {
	var buf bytes.Buffer
	dto := FromSnapshotResult("out.html", 10000, snapshot.Result{
		Window:        vtable.Window{Start: 40, End: 70},
		RowHeight:     40,
		ContentHeight: 400000,
		ScrollOffset:  2000,
		BodyOffset:    1600,
	})
	require.NoError(t, NewFormatter(&buf).FormatSnapshot(dto))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "out.html", decoded["path"])
	require.InDelta(t, 1600, decoded["body_offset_px"], 0)
	require.Equal(t, map[string]any{"start": 40.0, "end": 70.0}, decoded["window"])
}

func TestFormatter_ThemesIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatThemes(FromPresets(styles.Presets)))
	require.Contains(t, buf.String(), "\n  {\n    \"name\": \"default\"")
}
