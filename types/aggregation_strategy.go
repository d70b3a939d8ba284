package types

// AggregationStrategy decides how activities are bucketed and how buckets
// are ordered for presentation.
//
// Built-in strategies:
//   - Modulus: Buckets by activity ID modulo m (stress/demo pattern)
//   - RecentVerb: Buckets by verb and calendar day (notification-feed style)
//   - HashedActor: Buckets by a hash shard of the actor (sharded-feed style)
//   - Custom: User-defined policies
//
// The aggregation pass calls GroupKeyFor once per activity and Rank once per
// pass. Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Be stateless across calls (no side effects)
//   - Use fully discriminating sort keys when callers rely on tie order
//
// A strategy is required at Aggregator construction time; there is no
// runtime "not implemented" fallback.
type AggregationStrategy interface {
	// GroupKeyFor returns the bucket key for a single activity.
	//
	// Activities mapping to equal keys land in the same bucket. The key must
	// be a pure function of the activity for grouping to be reproducible
	// across passes.
	//
	// Parameters:
	//   - activity: The activity to classify
	//
	// Returns:
	//   - GroupKey: The bucket this activity belongs to
	GroupKeyFor(activity Activity) GroupKey

	// Rank totally orders a collection of buckets for presentation.
	//
	// Rank must be a permutation: no buckets added, removed, or modified,
	// only reordered. Implementations sort with a stable sort and may
	// reorder the input slice in place; callers must treat the return value
	// as the authoritative order.
	//
	// Parameters:
	//   - aggregates: Buckets produced by one aggregation pass
	//
	// Returns:
	//   - []*AggregatedActivity: The same buckets, fully sorted
	Rank(aggregates []*AggregatedActivity) []*AggregatedActivity
}
