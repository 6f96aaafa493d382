package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatThemes formats a list of theme presets as JSON
func (f *Formatter) FormatThemes(themes []ThemeDTO) error {
	return f.encode(themes)
}

// FormatSnapshot formats a snapshot result as JSON
func (f *Formatter) FormatSnapshot(result SnapshotDTO) error {
	return f.encode(result)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
