package feed

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/lioric/feedkit/internal/logger"
	"github.com/lioric/feedkit/internal/metrics"
	"github.com/lioric/feedkit/types"
)

// MemoryStore is an in-process Store backed by a concurrent map of feeds.
//
// Feed lookup is lock-free; mutations of a single feed are serialized by a
// per-feed mutex, so concurrent Apply calls for different feeds never
// contend.
type MemoryStore struct {
	feeds   *xsync.Map[string, *feedState]
	logger  types.Logger
	metrics types.MetricsCollector
}

// feedState holds one feed's buckets behind its own lock.
type feedState struct {
	mu      sync.Mutex
	buckets []*types.AggregatedActivity
}

// Compile-time assertion that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithLogger sets a logger for the store.
func WithLogger(l types.Logger) MemoryOption {
	return func(s *MemoryStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets a metrics collector for the store.
func WithMetrics(m types.MetricsCollector) MemoryOption {
	return func(s *MemoryStore) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewMemory creates an empty in-memory feed store.
//
// Parameters:
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *MemoryStore: Initialized store
//
// Example:
//
//	store := feed.NewMemory()
//	err := store.Apply(ctx, "user:42", delta)
func NewMemory(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		feeds:   xsync.NewMap[string, *feedState](),
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the feed's buckets in stored order.
//
// The returned slice is a copy; mutating it does not affect the store. The
// buckets themselves are shared and must be treated as immutable, matching
// the aggregation core's bucket lifecycle.
//
// Returns:
//   - []*types.AggregatedActivity: Buckets in stored order
//   - error: types.ErrFeedNotFound if the feed has never been written
func (s *MemoryStore) Get(_ context.Context, feedID string) ([]*types.AggregatedActivity, error) {
	state, ok := s.feeds.Load(feedID)
	if !ok {
		return nil, types.ErrFeedNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	return slices.Clone(state.buckets), nil
}

// Apply folds a merge delta into the feed, creating the feed on first use.
//
// Changed pairs replace the stored bucket for their group in place, keeping
// feed order; new buckets are appended in delta order; removed buckets are
// deleted by group. A changed or removed group that is no longer stored is
// skipped with a warning: a delta may race a feed trim, and dropping the
// stale entry is the correct outcome.
func (s *MemoryStore) Apply(_ context.Context, feedID string, delta *types.MergeResult) error {
	start := time.Now()

	state, _ := s.feeds.LoadOrStore(feedID, &feedState{})
	state.mu.Lock()
	defer state.mu.Unlock()

	index := make(map[types.GroupKey]int, len(state.buckets))
	for i, bucket := range state.buckets {
		index[bucket.Group] = i
	}

	for _, pair := range delta.Changed {
		i, ok := index[pair.New.Group]
		if !ok {
			s.logger.Warn("changed bucket no longer stored, skipping",
				"feed_id", feedID,
				"group", pair.New.Group,
			)
			continue
		}
		state.buckets[i] = pair.New
	}

	for _, bucket := range delta.New {
		if _, ok := index[bucket.Group]; ok {
			// Grouping guarantees a delta never marks a stored group as new;
			// replace rather than duplicate if a caller violates that.
			state.buckets[index[bucket.Group]] = bucket
			continue
		}
		index[bucket.Group] = len(state.buckets)
		state.buckets = append(state.buckets, bucket)
	}

	if len(delta.Removed) > 0 {
		drop := make(map[types.GroupKey]struct{}, len(delta.Removed))
		for _, bucket := range delta.Removed {
			drop[bucket.Group] = struct{}{}
		}
		state.buckets = slices.DeleteFunc(state.buckets, func(b *types.AggregatedActivity) bool {
			_, ok := drop[b.Group]
			return ok
		})
	}

	s.metrics.RecordStoreApply(time.Since(start).Seconds())
	s.metrics.RecordFeedSize(feedID, len(state.buckets))

	return nil
}

// Delete removes a feed entirely. Deleting an unknown feed is a no-op.
func (s *MemoryStore) Delete(_ context.Context, feedID string) {
	s.feeds.Delete(feedID)
}
