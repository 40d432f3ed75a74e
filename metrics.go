package templaro

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// loaderMetrics holds the Prometheus metrics for one Loader instance.
// Metrics are per-instance rather than process-global so multiple
// loaders (per tenant, per test) do not interfere.
//
// All record methods are nil-safe; a loader without a metrics registry
// carries a nil *loaderMetrics.
type loaderMetrics struct {
	resolutions   *prometheus.CounterVec
	duration      prometheus.Histogram
	cacheHits     *prometheus.CounterVec
	cacheMisses   prometheus.Counter
	invalidations prometheus.Counter
}

func newLoaderMetrics(registry prometheus.Registerer) *loaderMetrics {
	factory := promauto.With(registry)

	return &loaderMetrics{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "templaro",
			Name:      "resolutions_total",
			Help:      "Total uncached template resolutions by namespace and status",
		}, []string{"namespace", "status"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "templaro",
			Name:      "resolve_duration_seconds",
			Help:      "Uncached resolution duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "templaro",
			Name:      "cache_hits_total",
			Help:      "Resolution cache hits by entry kind (positive or negative)",
		}, []string{"kind"}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "templaro",
			Name:      "cache_misses_total",
			Help:      "Resolution cache misses",
		}),

		invalidations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "templaro",
			Name:      "cache_invalidations_total",
			Help:      "Wholesale cache invalidations, explicit and registry-triggered",
		}),
	}
}

func (m *loaderMetrics) recordResolution(namespace, status string) {
	if m != nil {
		m.resolutions.WithLabelValues(namespace, status).Inc()
	}
}

func (m *loaderMetrics) recordDuration(d time.Duration) {
	if m != nil {
		m.duration.Observe(d.Seconds())
	}
}

func (m *loaderMetrics) recordCacheHit(kind string) {
	if m != nil {
		m.cacheHits.WithLabelValues(kind).Inc()
	}
}

func (m *loaderMetrics) recordCacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

func (m *loaderMetrics) recordInvalidation() {
	if m != nil {
		m.invalidations.Inc()
	}
}
