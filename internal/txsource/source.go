package txsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/tracing"
	"github.com/zjrosen/txdash/internal/vtable"
)

// ErrNotArray is returned when a JSON dataset is not a top-level array.
var ErrNotArray = errors.New("dataset is not a JSON array")

// Source loads a complete dataset.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]vtable.Row, error)
}

// Open picks a Source for path by extension. An empty path returns a nil
// Source, meaning generated data.
func Open(path string) (Source, error) {
	if path == "" {
		return nil, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFile{Path: path}, nil
	case ".db", ".sqlite", ".sqlite3":
		return SQLite{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported data file %q: want .json, .db, .sqlite or .sqlite3", path)
	}
}

// Generated is a Source of mock rows, as used by the dashboard sections.
type Generated struct {
	Rows     int
	Statuses []vtable.Status
	Rand     *rand.Rand
}

func (g Generated) Name() string { return fmt.Sprintf("generated:%d", g.Rows) }

func (g Generated) Load(context.Context) ([]vtable.Row, error) {
	return SectionDataset(g.Rows, g.Statuses, g.Rand), nil
}

// JSONFile reads an array of {"id","customer","amount","status"} objects.
// Elements of the wrong shape are kept as empty rows; numbers are
// stringified.
type JSONFile struct {
	Path string
}

func (s JSONFile) Name() string { return "json:" + s.Path }

func (s JSONFile) Load(ctx context.Context) ([]vtable.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.Path, err)
	}
	if _, ok := v.([]any); !ok {
		return nil, fmt.Errorf("decoding %s: %w", s.Path, ErrNotArray)
	}
	return vtable.CoerceRows(v), nil
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(path string, rows []vtable.Row) error {
	if rows == nil {
		rows = []vtable.Row{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadOrDefault loads src, falling back to DefaultDataset when src is nil or
// fails. The load error is returned alongside the fallback rows so callers
// can report it; the rows are always usable.
func LoadOrDefault(ctx context.Context, src Source) ([]vtable.Row, error) {
	if src == nil {
		return DefaultDataset(), nil
	}

	ctx, span := tracing.Tracer().Start(ctx, tracing.SpanDataLoad)
	defer span.End()
	span.SetAttributes(attribute.String(tracing.AttrDataSource, src.Name()))

	rows, err := src.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatData, "Dataset load failed, using default dataset", err, "source", src.Name())
		return DefaultDataset(), err
	}

	span.SetAttributes(attribute.Int(tracing.AttrRowCount, len(rows)))
	log.Info(log.CatData, "Dataset loaded", "source", src.Name(), "rows", len(rows))
	return rows, nil
}
