package types

import (
	"slices"
	"time"
)

// GroupKey identifies an aggregated activity bucket.
//
// Keys are opaque to the core: concrete aggregation strategies render their
// native grouping value (an integer residue, a verb-day composite, a hash
// bucket) into a GroupKey deterministically. Two activities belong to the
// same bucket exactly when their keys are equal.
type GroupKey string

// Activity is a single raw event record consumed by the aggregation core.
//
// Activities are produced elsewhere in the pipeline and treated as immutable
// here. Only the fields a chosen strategy reads need to be populated; the
// core itself never validates activity shape.
type Activity struct {
	// ID uniquely identifies the activity and is usable as a sort/group input.
	ID int64 `json:"id"`

	// Verb is the category tag of the event (e.g., "like", "follow").
	Verb string `json:"verb"`

	// Actor identifies who performed the activity.
	Actor string `json:"actor,omitempty"`

	// Object identifies what the activity acted on.
	Object string `json:"object,omitempty"`

	// Time is when the activity occurred, in the activity's own location.
	Time time.Time `json:"time"`
}

// AggregatedActivity is one bucket of activities sharing a group key.
//
// Buckets are created by the aggregation pass the first time a key is seen
// and extended for the remainder of that pass. After a pass completes a
// bucket is never mutated: Merge produces a fresh instance (via Clone) for
// the evolved state so callers can hold the before and after snapshots of a
// bucket simultaneously.
type AggregatedActivity struct {
	// Group is the bucket's identity across aggregation passes and merges.
	// Assigned once at creation, never mutated afterwards.
	Group GroupKey `json:"group"`

	// Activities holds the bucket's members in insertion order.
	Activities []Activity `json:"activities"`
}

// NewAggregatedActivity creates an empty bucket for the given group key.
//
// Parameters:
//   - group: The bucket's group key
//
// Returns:
//   - *AggregatedActivity: Empty bucket identified by group
func NewAggregatedActivity(group GroupKey) *AggregatedActivity {
	return &AggregatedActivity{Group: group}
}

// Append adds activities to the end of the bucket, preserving their order.
func (a *AggregatedActivity) Append(activities ...Activity) {
	a.Activities = append(a.Activities, activities...)
}

// Len returns the number of activities in the bucket.
func (a *AggregatedActivity) Len() int {
	return len(a.Activities)
}

// Clone returns a deep copy of the bucket: the group key and a duplicated
// activity slice. The clone shares no backing storage with the receiver, so
// appending to one never aliases the other.
//
// Returns:
//   - *AggregatedActivity: Independent copy of the bucket
func (a *AggregatedActivity) Clone() *AggregatedActivity {
	return &AggregatedActivity{
		Group:      a.Group,
		Activities: slices.Clone(a.Activities),
	}
}

// UpdatedAt returns the most recent activity time in the bucket, computed on
// demand so it can never go stale relative to the activity slice.
//
// Returns:
//   - time.Time: Max activity time (zero value for an empty bucket)
func (a *AggregatedActivity) UpdatedAt() time.Time {
	var latest time.Time
	for _, act := range a.Activities {
		if act.Time.After(latest) {
			latest = act.Time
		}
	}

	return latest
}

// MaxID returns the largest activity ID in the bucket, computed on demand.
//
// Returns:
//   - int64: Max activity ID (0 for an empty bucket)
func (a *AggregatedActivity) MaxID() int64 {
	var maxID int64
	for _, act := range a.Activities {
		if act.ID > maxID {
			maxID = act.ID
		}
	}

	return maxID
}
