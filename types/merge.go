package types

// ChangedBucket pairs the two generations of a bucket whose key appeared in
// both inputs of a merge.
//
// Old is the caller's bucket exactly as passed in, untouched. New is a
// freshly constructed bucket: a clone of Old with the new generation's
// activities appended. Holding both lets collaborators emit "changed from X
// to Y" notifications without racing a mutation.
type ChangedBucket struct {
	Old *AggregatedActivity
	New *AggregatedActivity
}

// MergeResult is the delta between two generations of aggregated buckets,
// keyed by group.
//
// It is intended to be consumed by a storage/notification collaborator that
// persists New buckets, replaces old→new for each Changed pair, and deletes
// Removed entries.
type MergeResult struct {
	// New holds buckets whose key is present only in the new generation,
	// in the new generation's order.
	New []*AggregatedActivity

	// Changed holds one pair per key present in both generations, in the
	// new generation's order.
	Changed []ChangedBucket

	// Removed is reserved for buckets whose key disappeared from the new
	// generation. The reference behavior never populates it: whether
	// disappearance on re-aggregation means deletion is ambiguous, so the
	// slot exists for interface compatibility and stays empty.
	Removed []*AggregatedActivity
}
