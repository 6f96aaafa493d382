package tracing

// Span names.
const (
	SpanDataLoad      = "data.load"
	SpanSetRows       = "table.set_rows"
	SpanApplySection  = "dashboard.apply_section"
	SpanInitialPaint  = "dashboard.initial_paint"
	SpanThemeToggle   = "dashboard.theme_toggle"
	SpanSnapshotWrite = "snapshot.write"
)

// Attribute keys.
const (
	AttrRunID       = "txdash.run_id"
	AttrDataSource  = "data.source"
	AttrRowCount    = "table.row_count"
	AttrWindowStart = "table.window_start"
	AttrWindowEnd   = "table.window_end"
	AttrSection     = "dashboard.section"
	AttrThemeMode   = "theme.mode"
	AttrPaintMillis = "paint.ms"
	AttrCacheHit    = "cache.hit"
)
