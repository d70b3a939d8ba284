package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from multiple goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better
// modularity.
type MetricsCollector interface {
	AggregatorMetrics
	FeedMetrics
}

// AggregatorMetrics defines metrics for aggregation and merge operations.
type AggregatorMetrics interface {
	// RecordAggregatePass records one group-then-rank pass.
	//
	// Parameters:
	//   - activities: Number of input activities
	//   - buckets: Number of buckets produced
	//   - duration: Time taken in seconds
	RecordAggregatePass(activities, buckets int, duration float64)

	// RecordMergeDelta records the size of one merge result.
	//
	// Parameters:
	//   - newBuckets: Buckets present only in the new generation
	//   - changed: Buckets present in both generations
	//   - removed: Buckets in the reserved removed slot
	RecordMergeDelta(newBuckets, changed, removed int)
}

// FeedMetrics defines metrics for feed store operations.
type FeedMetrics interface {
	// RecordStoreApply records the time taken to apply a merge delta to a feed.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	RecordStoreApply(duration float64)

	// RecordFeedSize sets the current bucket count of a feed (gauge metric).
	//
	// Parameters:
	//   - feedID: The feed that was updated
	//   - buckets: Current number of buckets in the feed
	RecordFeedSize(feedID string, buckets int)
}
