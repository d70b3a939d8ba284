// Package feed provides storage collaborators that consume merge deltas.
//
// The aggregation core computes deltas; something has to hold the feeds
// they apply to. Store is that contract: persist the delta's new buckets,
// replace old with new for each changed pair, and delete removed entries.
// MemoryStore is the in-process implementation; durable backends implement
// the same interface.
package feed

import (
	"context"

	"github.com/lioric/feedkit/types"
)

// Store holds per-feed ordered bucket lists and applies merge deltas to
// them.
//
// Implementations must serialize concurrent Apply calls for the same feed;
// the aggregation core itself carries no locking, that is the storage
// collaborator's job.
type Store interface {
	// Get returns the feed's buckets in stored order.
	//
	// Returns types.ErrFeedNotFound for a feed that has never been written.
	Get(ctx context.Context, feedID string) ([]*types.AggregatedActivity, error)

	// Apply folds a merge delta into the feed:
	//   - Changed pairs replace the stored bucket for their group in place,
	//     keeping the feed's order
	//   - New buckets are appended in delta order
	//   - Removed buckets are deleted by group
	//
	// Applying to an unknown feed creates it.
	Apply(ctx context.Context, feedID string, delta *types.MergeResult) error
}
