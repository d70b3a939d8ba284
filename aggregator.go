package feedkit

import (
	"fmt"
	"time"

	"github.com/lioric/feedkit/internal/logger"
	"github.com/lioric/feedkit/internal/metrics"
	"github.com/lioric/feedkit/types"
)

// Aggregator combines raw activities into aggregated activities and
// reconciles two generations of aggregated activities into a delta.
//
// The two most important methods are Aggregate and Merge. Aggregate turns a
// list of activities into a ranked list of buckets; Merge takes an existing
// and a freshly computed bucket list and returns the new and changed
// buckets.
//
// All methods are pure computations over in-memory slices: no I/O, no
// shared state between calls. An Aggregator is safe for concurrent use as
// long as each call operates on its own batch.
type Aggregator struct {
	strategy types.AggregationStrategy
	logger   types.Logger
	metrics  types.MetricsCollector
}

// New creates an Aggregator using the given aggregation strategy.
//
// The strategy is required: it supplies the grouping function and the
// ranking order. There is no runtime fallback for a missing strategy.
//
// Parameters:
//   - strategy: Grouping/ranking policy (e.g., strategy.NewRecentVerb())
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Aggregator: Initialized aggregator
//   - error: types.ErrAggregationStrategyRequired if strategy is nil
//
// Example:
//
//	agg, err := feedkit.New(strategy.NewRecentVerb())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ranked := agg.Aggregate(activities)
func New(strategy types.AggregationStrategy, opts ...Option) (*Aggregator, error) {
	if strategy == nil {
		return nil, types.ErrAggregationStrategyRequired
	}

	options := aggregatorOptions{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Aggregator{
		strategy: strategy,
		logger:   options.logger,
		metrics:  options.metrics,
	}, nil
}

// Aggregate runs one aggregation pass: group the activities using the
// strategy's grouping function, then rank the resulting buckets using the
// strategy's ranking order.
//
// The result is a pure function of the input and the strategy. Ties in the
// ranking order are broken by the underlying stable sort, so callers that
// rely on tie order must use a fully discriminating sort key.
//
// Parameters:
//   - activities: The batch of raw activities to bucket
//
// Returns:
//   - []*types.AggregatedActivity: Ranked buckets, one per distinct group key
func (a *Aggregator) Aggregate(activities []types.Activity) []*types.AggregatedActivity {
	start := time.Now()

	grouped := a.group(activities)
	aggregates := make([]*types.AggregatedActivity, 0, len(grouped))
	for _, bucket := range grouped {
		aggregates = append(aggregates, bucket)
	}
	ranked := a.strategy.Rank(aggregates)

	a.metrics.RecordAggregatePass(len(activities), len(ranked), time.Since(start).Seconds())
	a.logger.Debug("aggregate pass complete",
		"activities", len(activities),
		"buckets", len(ranked),
	)

	return ranked
}

// group buckets activities by the key the strategy assigns to each one.
// Per-bucket insertion order follows the input order; key order is
// unspecified, ranking is the caller's job.
func (a *Aggregator) group(activities []types.Activity) map[types.GroupKey]*types.AggregatedActivity {
	grouped := make(map[types.GroupKey]*types.AggregatedActivity)
	for _, activity := range activities {
		key := a.strategy.GroupKeyFor(activity)
		bucket, ok := grouped[key]
		if !ok {
			bucket = types.NewAggregatedActivity(key)
			grouped[key] = bucket
		}
		bucket.Append(activity)
	}

	return grouped
}

// Merge reconciles two generations of aggregated activities, keyed by group.
//
// Buckets of next whose key is absent from current are returned in
// MergeResult.New, in next's order. For each key present in both, Merge
// clones the current bucket, appends the next bucket's activities onto the
// clone, and emits an (old, merged) pair in MergeResult.Changed. The old
// bucket is returned exactly as passed in, so the caller retains a valid
// "before" snapshot. MergeResult.Removed stays empty (reserved slot).
//
// Duplicate group keys within either generation violate the grouping
// contract and fail with types.ErrDuplicateGroup rather than silently
// letting one bucket win.
//
// Parameters:
//   - current: The existing generation of buckets
//   - next: The freshly computed generation of buckets
//
// Returns:
//   - *types.MergeResult: The (new, changed, removed) delta
//   - error: types.ErrDuplicateGroup on duplicate keys in one generation
//
// Example:
//
//	before := agg.Aggregate(batch1)
//	after := agg.Aggregate(batch2)
//	delta, err := agg.Merge(before, after)
func (a *Aggregator) Merge(current, next []*types.AggregatedActivity) (*types.MergeResult, error) {
	lookup := make(map[types.GroupKey]*types.AggregatedActivity, len(current))
	for _, bucket := range current {
		if _, ok := lookup[bucket.Group]; ok {
			return nil, fmt.Errorf("current generation: group %q: %w", bucket.Group, types.ErrDuplicateGroup)
		}
		lookup[bucket.Group] = bucket
	}

	result := &types.MergeResult{}
	seen := make(map[types.GroupKey]struct{}, len(next))
	for _, bucket := range next {
		if _, ok := seen[bucket.Group]; ok {
			return nil, fmt.Errorf("next generation: group %q: %w", bucket.Group, types.ErrDuplicateGroup)
		}
		seen[bucket.Group] = struct{}{}

		existing, ok := lookup[bucket.Group]
		if !ok {
			result.New = append(result.New, bucket)
			continue
		}

		merged := existing.Clone()
		merged.Append(bucket.Activities...)
		result.Changed = append(result.Changed, types.ChangedBucket{Old: existing, New: merged})
	}

	a.metrics.RecordMergeDelta(len(result.New), len(result.Changed), len(result.Removed))
	a.logger.Debug("merge complete",
		"new", len(result.New),
		"changed", len(result.Changed),
	)

	return result, nil
}
