package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fortuned/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncRemoteFailures(endpoint string)
	IncFallbackScans()
	ObserveScanDuration(duration time.Duration)
	SetHistoryRecords(count int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	remoteFailures  *prometheus.CounterVec
	fallbackScans   prometheus.Counter
	scanDuration    prometheus.Histogram
	historyRecords  prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncRemoteFailures(endpoint string) {
	m.remoteFailures.WithLabelValues(endpoint).Inc()
}

func (m *MetricsProvider) IncFallbackScans() {
	m.fallbackScans.Inc()
}

func (m *MetricsProvider) ObserveScanDuration(duration time.Duration) {
	m.scanDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetHistoryRecords(count int) {
	m.historyRecords.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fortuned_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fortuned_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fortuned_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fortuned_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		remoteFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fortuned_remote_failures_total",
			Help: "Total number of failed remote service calls after retries",
		}, []string{"endpoint"}),

		fallbackScans: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fortuned_fallback_scans_total",
			Help: "Total number of local fallback recommendation scans",
		}),

		scanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fortuned_fallback_scan_duration_seconds",
			Help:    "Duration of local fallback recommendation scans in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		historyRecords: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fortuned_history_records",
			Help: "Current number of records in the fortune history store",
		}),
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncRemoteFailures(_ string)                       {}
func (n *noopMetrics) IncFallbackScans()                                {}
func (n *noopMetrics) ObserveScanDuration(_ time.Duration)              {}
func (n *noopMetrics) SetHistoryRecords(_ int)                          {}
