package prometheus

import (
	"strconv"
	"time"
)

// AppMetrics holds every application metric in one place.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Layout engine
	LayoutComputeDuration HistogramVec
	LayoutUnplacedTotal   CounterVec
	LayoutSegmentsPlaced  HistogramVec

	// Chart assembly
	ChartCacheHitsTotal   CounterVec
	ChartCacheMissesTotal CounterVec
	ChartBuildsTotal      CounterVec

	// Dataset lifecycle
	DatasetsImportedTotal CounterVec
	DatasetImportRows     HistogramVec
	DatasetEventsTotal    CounterVec

	// Infrastructure
	DBQueryDuration HistogramVec
	ErrorsTotal     CounterVec
}

var (
	DefaultHTTPDurationBuckets   = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultLayoutDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}
	DefaultRowCountBuckets       = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}
	DefaultDBDurationBuckets     = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
)

// NewAppMetrics registers all metrics with the collector.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method")

	m.LayoutComputeDuration = collector.RegisterHistogram("layout_compute_duration_seconds", "Segment layout computation duration", DefaultLayoutDurationBuckets, "group_by")
	m.LayoutUnplacedTotal = collector.RegisterCounter("layout_unplaced_total", "Assets left unplaced by the segment cap", "group_by")
	m.LayoutSegmentsPlaced = collector.RegisterHistogram("layout_segments_placed", "Segments produced per layout", []float64{1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16}, "group_by")

	m.ChartCacheHitsTotal = collector.RegisterCounter("chart_cache_hits_total", "Chart spec cache hits")
	m.ChartCacheMissesTotal = collector.RegisterCounter("chart_cache_misses_total", "Chart spec cache misses")
	m.ChartBuildsTotal = collector.RegisterCounter("chart_builds_total", "Chart specs assembled", "group_by")

	m.DatasetsImportedTotal = collector.RegisterCounter("datasets_imported_total", "Datasets imported", "source")
	m.DatasetImportRows = collector.RegisterHistogram("dataset_import_rows", "Rows per dataset import", DefaultRowCountBuckets)
	m.DatasetEventsTotal = collector.RegisterCounter("dataset_events_total", "Dataset lifecycle events published", "event_type")

	m.DBQueryDuration = collector.RegisterHistogram("db_query_duration_seconds", "Database query duration", DefaultDBDurationBuckets, "operation")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Errors by component and code", "component", "code")

	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Record helpers
// ─────────────────────────────────────────────────────────────────────────────

func RecordHTTPRequest(m *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordLayoutCompute(m *AppMetrics, groupBy string, segments, unplaced int, duration time.Duration) {
	if m == nil {
		return
	}
	m.LayoutComputeDuration.WithLabelValues(groupBy).Observe(duration.Seconds())
	m.LayoutSegmentsPlaced.WithLabelValues(groupBy).Observe(float64(segments))
	if unplaced > 0 {
		m.LayoutUnplacedTotal.WithLabelValues(groupBy).Add(float64(unplaced))
	}
}

func RecordChartCacheAccess(m *AppMetrics, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.ChartCacheHitsTotal.WithLabelValues().Inc()
	} else {
		m.ChartCacheMissesTotal.WithLabelValues().Inc()
	}
}

func RecordDatasetImport(m *AppMetrics, source string, rows int) {
	if m == nil {
		return
	}
	m.DatasetsImportedTotal.WithLabelValues(source).Inc()
	m.DatasetImportRows.WithLabelValues().Observe(float64(rows))
}

func RecordError(m *AppMetrics, component, code string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}

//Personal.AI order the ending
