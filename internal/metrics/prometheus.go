package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lioric/feedkit/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// All collectors are registered once at construction time; construction
// panics if the registerer already holds collectors with the same names, as
// is usual for prometheus instrumentation.
type PrometheusCollector struct {
	passTotal      prometheus.Counter
	passActivities prometheus.Counter
	passDuration   prometheus.Histogram
	passBuckets    prometheus.Histogram
	mergeDelta     *prometheus.CounterVec
	applyDuration  prometheus.Histogram
	feedSize       *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "feedkit" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "feedkit")
//	agg, err := feedkit.New(strat, feedkit.WithMetrics(collector))
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "feedkit"
	}

	c := &PrometheusCollector{
		passTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_passes_total",
			Help:      "Total number of aggregate passes.",
		}),
		passActivities: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_activities_total",
			Help:      "Total number of activities consumed by aggregate passes.",
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregate_pass_duration_seconds",
			Help:      "Duration of aggregate passes in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		passBuckets: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregate_pass_buckets",
			Help:      "Number of buckets produced per aggregate pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		mergeDelta: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_delta_buckets_total",
			Help:      "Buckets emitted by merge results, partitioned by kind.",
		}, []string{"kind"}),
		applyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_apply_duration_seconds",
			Help:      "Duration of feed store delta applications in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		feedSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_buckets",
			Help:      "Current number of buckets per feed.",
		}, []string{"feed_id"}),
	}

	reg.MustRegister(
		c.passTotal,
		c.passActivities,
		c.passDuration,
		c.passBuckets,
		c.mergeDelta,
		c.applyDuration,
		c.feedSize,
	)

	return c
}

// AggregatorMetrics implementation

// RecordAggregatePass records one group-then-rank pass.
func (c *PrometheusCollector) RecordAggregatePass(activities, buckets int, duration float64) {
	c.passTotal.Inc()
	c.passActivities.Add(float64(activities))
	c.passBuckets.Observe(float64(buckets))
	c.passDuration.Observe(duration)
}

// RecordMergeDelta records the size of one merge result.
func (c *PrometheusCollector) RecordMergeDelta(newBuckets, changed, removed int) {
	c.mergeDelta.WithLabelValues("new").Add(float64(newBuckets))
	c.mergeDelta.WithLabelValues("changed").Add(float64(changed))
	c.mergeDelta.WithLabelValues("removed").Add(float64(removed))
}

// FeedMetrics implementation

// RecordStoreApply records the time taken to apply a merge delta to a feed.
func (c *PrometheusCollector) RecordStoreApply(duration float64) {
	c.applyDuration.Observe(duration)
}

// RecordFeedSize sets the current bucket count of a feed.
func (c *PrometheusCollector) RecordFeedSize(feedID string, buckets int) {
	c.feedSize.WithLabelValues(feedID).Set(float64(buckets))
}
