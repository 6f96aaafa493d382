// Package presentation shapes command results for machine-readable output.
package presentation

import (
	"maps"
	"slices"

	"github.com/zjrosen/txdash/internal/snapshot"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

// ThemeDTO represents a theme preset for presentation
type ThemeDTO struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Dark        map[string]string `json:"dark"`
	Light       map[string]string `json:"light"`
}

// WindowDTO is a half-open row range.
type WindowDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SnapshotDTO describes a written snapshot page.
type SnapshotDTO struct {
	Path          string    `json:"path"`
	Rows          int       `json:"rows"`
	Window        WindowDTO `json:"window"`
	RowHeight     int       `json:"row_height_px"`
	ContentHeight int       `json:"content_height_px"`
	ScrollOffset  int       `json:"scroll_offset_px"`
	BodyOffset    int       `json:"body_offset_px"`
}

// FromPreset converts a preset to a DTO. Token maps are keyed by token name.
func FromPreset(p styles.Preset) ThemeDTO {
	return ThemeDTO{
		Name:        p.Name,
		Description: p.Description,
		Dark:        tokenMap(p.Dark),
		Light:       tokenMap(p.Light),
	}
}

// FromPresets converts every preset, sorted by name.
func FromPresets(presets map[string]styles.Preset) []ThemeDTO {
	names := slices.Sorted(maps.Keys(presets))
	dtos := make([]ThemeDTO, 0, len(names))
	for _, name := range names {
		dtos = append(dtos, FromPreset(presets[name]))
	}
	return dtos
}

func tokenMap(m map[styles.ColorToken]string) map[string]string {
	out := make(map[string]string, len(m))
	for token, color := range m {
		out[string(token)] = color
	}
	return out
}

// FromSnapshotResult converts a snapshot result written to path.
func FromSnapshotResult(path string, rows int, r snapshot.Result) SnapshotDTO {
	return SnapshotDTO{
		Path:          path,
		Rows:          rows,
		Window:        WindowDTO{Start: r.Window.Start, End: r.Window.End},
		RowHeight:     r.RowHeight,
		ContentHeight: r.ContentHeight,
		ScrollOffset:  r.ScrollOffset,
		BodyOffset:    r.BodyOffset,
	}
}
