package strategy

import (
	"fmt"
	"slices"

	"github.com/lioric/feedkit/types"
)

// RecentVerb buckets activities emitted by the same verb on the same
// calendar day together, and ranks buckets newest-updated first. This is
// the classic notification-feed shape: "alice and 3 others liked your post
// today".
type RecentVerb struct{}

// Compile-time assertion that RecentVerb implements AggregationStrategy.
var _ types.AggregationStrategy = (*RecentVerb)(nil)

// NewRecentVerb creates a verb-and-day aggregation strategy.
//
// Returns:
//   - *RecentVerb: Initialized strategy
//
// Example:
//
//	agg, err := feedkit.New(strategy.NewRecentVerb())
func NewRecentVerb() *RecentVerb {
	return &RecentVerb{}
}

// GroupKeyFor returns "<verb>-<date>" where the date is the activity's
// timestamp truncated to a calendar day in the activity's own location.
func (s *RecentVerb) GroupKeyFor(activity types.Activity) types.GroupKey {
	return types.GroupKey(fmt.Sprintf("%s-%s", activity.Verb, activity.Time.Format("2006-01-02")))
}

// Rank sorts buckets descending by their most recent activity time, so the
// newest-updated bucket comes first.
//
// The sort is stable and in place; the input slice is returned.
func (s *RecentVerb) Rank(aggregates []*types.AggregatedActivity) []*types.AggregatedActivity {
	slices.SortStableFunc(aggregates, func(a, b *types.AggregatedActivity) int {
		au, bu := a.UpdatedAt(), b.UpdatedAt()
		switch {
		case au.After(bu):
			return -1
		case bu.After(au):
			return 1
		default:
			return 0
		}
	})

	return aggregates
}
