// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/lioric/feedkit/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. This is the default collector for an
// Aggregator; use the Prometheus collector (or your own) when external
// metrics collection is wanted.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	agg, err := feedkit.New(strat, feedkit.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AggregatorMetrics implementation

// RecordAggregatePass discards the aggregate pass metric.
func (n *NopMetrics) RecordAggregatePass(_ /* activities */, _ /* buckets */ int, _ /* duration */ float64) {
	// No-op
}

// RecordMergeDelta discards the merge delta metric.
func (n *NopMetrics) RecordMergeDelta(_ /* newBuckets */, _ /* changed */, _ /* removed */ int) {
	// No-op
}

// FeedMetrics implementation

// RecordStoreApply discards the store apply metric.
func (n *NopMetrics) RecordStoreApply(_ /* duration */ float64) {
	// No-op
}

// RecordFeedSize discards the feed size metric.
func (n *NopMetrics) RecordFeedSize(_ /* feedID */ string, _ /* buckets */ int) {
	// No-op
}
