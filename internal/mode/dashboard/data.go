package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/zjrosen/txdash/internal/cachemanager"
	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/tracing"
	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/vtable"
)

// fileCacheKey is the row cache key of the configured data file. Every
// section shows the same file, so it is loaded once.
const fileCacheKey = "file"

// rowsLoadedMsg carries a finished dataset load back to Update.
type rowsLoadedMsg struct {
	section string
	rows    []vtable.Row
	cached  bool
	reload  bool
	err     error
}

// loadInput is what the read-through function needs on a miss. missed is
// set when the function runs so the caller can tell hits from misses.
type loadInput struct {
	source txsource.Source
	missed *bool
}

// loader resolves section datasets through the shared row cache.
type loader struct {
	source txsource.Source
	cache  *cachemanager.ReadThroughCache[string, []vtable.Row, loadInput]
	ttl    time.Duration
}

// newLoader wraps cache with a read-through loader. A ttl of zero disables
// caching; a nil cache gets a private in-memory one.
func newLoader(source txsource.Source, cache cachemanager.CacheManager[string, []vtable.Row], ttl time.Duration) *loader {
	if cache == nil {
		cache = cachemanager.NewInMemoryCacheManager[string, []vtable.Row]("rows", ttl, 10*time.Minute)
	}
	fn := func(ctx context.Context, in loadInput) ([]vtable.Row, error) {
		if in.missed != nil {
			*in.missed = true
		}
		return txsource.LoadOrDefault(ctx, in.source)
	}
	return &loader{
		source: source,
		cache:  cachemanager.NewReadThroughCache(cache, fn, ttl <= 0),
		ttl:    ttl,
	}
}

func (l *loader) key(sec Section) string {
	if l.source != nil {
		return fileCacheKey
	}
	return sec.Name
}

func (l *loader) sourceFor(sec Section) txsource.Source {
	if l.source != nil {
		return l.source
	}
	return txsource.Generated{Rows: sec.Rows, Statuses: sec.Statuses}
}

// load returns the rows for sec and whether they came from the cache. On a
// failed file load the fallback dataset is returned together with the error.
func (l *loader) load(ctx context.Context, sec Section) ([]vtable.Row, bool, error) {
	ctx, span := tracing.Tracer().Start(ctx, tracing.SpanApplySection)
	defer span.End()

	var missed bool
	rows, err := l.cache.GetWithRefresh(ctx, l.key(sec), loadInput{source: l.sourceFor(sec), missed: &missed}, l.ttl)
	span.SetAttributes(
		attribute.String(tracing.AttrSection, sec.Name),
		attribute.Bool(tracing.AttrCacheHit, !missed),
		attribute.Int(tracing.AttrRowCount, len(rows)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	log.Debug(log.CatCache, "Section rows resolved", "section", sec.Name, "key", l.key(sec), "hit", !missed, "rows", len(rows))
	return rows, !missed, err
}

// loadCmd loads sec off the update loop.
func (l *loader) loadCmd(sec Section, reload bool) tea.Cmd {
	return func() tea.Msg {
		rows, cached, err := l.load(context.Background(), sec)
		return rowsLoadedMsg{section: sec.Name, rows: rows, cached: cached, reload: reload, err: err}
	}
}

// invalidate drops every cached dataset.
func (l *loader) invalidate() {
	if err := l.cache.Invalidate(context.Background()); err != nil {
		log.ErrorErr(log.CatCache, "Row cache flush failed", err)
	}
}
