package strategy

import (
	"strconv"

	"github.com/zeebo/xxh3"

	"github.com/lioric/feedkit/types"
)

// DefaultActorShards is the shard count used when none is configured.
const DefaultActorShards = 16

// HashedActor buckets activities by a hash shard of their actor: the group
// key is "actor-<xxh3(actor) mod shards>". The number of buckets stays
// bounded regardless of input size, and placement is stable across passes
// for a fixed seed and shard count. Buckets rank newest-updated first.
type HashedActor struct {
	shards uint64
	seed   uint64
}

// Compile-time assertion that HashedActor implements AggregationStrategy.
var _ types.AggregationStrategy = (*HashedActor)(nil)

// NewHashedActor creates a hashed-actor strategy.
//
// Parameters:
//   - shards: Number of hash shards (DefaultActorShards if <= 0)
//   - seed: Seed for the hash function (0 for the unseeded variant)
//
// Returns:
//   - *HashedActor: Initialized strategy
//
// Example:
//
//	agg, err := feedkit.New(strategy.NewHashedActor(32, 0))
func NewHashedActor(shards int, seed uint64) *HashedActor {
	if shards <= 0 {
		shards = DefaultActorShards
	}

	return &HashedActor{shards: uint64(shards), seed: seed}
}

// GroupKeyFor returns the actor's shard key, "actor-<n>".
func (s *HashedActor) GroupKeyFor(activity types.Activity) types.GroupKey {
	var h uint64
	if s.seed == 0 {
		h = xxh3.HashString(activity.Actor)
	} else {
		h = xxh3.HashStringSeed(activity.Actor, s.seed)
	}

	return types.GroupKey("actor-" + strconv.FormatUint(h%s.shards, 10))
}

// Rank sorts buckets descending by their most recent activity time.
// Shares RecentVerb's ordering: recency is the natural presentation order
// for sharded feeds too.
func (s *HashedActor) Rank(aggregates []*types.AggregatedActivity) []*types.AggregatedActivity {
	return (&RecentVerb{}).Rank(aggregates)
}
