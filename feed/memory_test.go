package feed

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lioric/feedkit/types"
)

func bucket(group types.GroupKey, ids ...int64) *types.AggregatedActivity {
	b := types.NewAggregatedActivity(group)
	for _, id := range ids {
		b.Append(types.Activity{ID: id})
	}

	return b
}

func TestMemoryStore_Get(t *testing.T) {
	t.Run("unknown feed returns ErrFeedNotFound", func(t *testing.T) {
		store := NewMemory()

		_, err := store.Get(context.Background(), "user:1")

		require.ErrorIs(t, err, types.ErrFeedNotFound)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		store := NewMemory()
		ctx := context.Background()

		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			New: []*types.AggregatedActivity{bucket("a", 1)},
		}))

		got, err := store.Get(ctx, "user:1")
		require.NoError(t, err)
		got[0] = bucket("mutated", 99)

		again, err := store.Get(ctx, "user:1")
		require.NoError(t, err)
		require.Equal(t, types.GroupKey("a"), again[0].Group)
	})
}

func TestMemoryStore_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("new buckets are appended in delta order", func(t *testing.T) {
		store := NewMemory()

		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			New: []*types.AggregatedActivity{bucket("a", 1), bucket("b", 2)},
		}))
		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			New: []*types.AggregatedActivity{bucket("c", 3)},
		}))

		got, err := store.Get(ctx, "user:1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, types.GroupKey("a"), got[0].Group)
		require.Equal(t, types.GroupKey("b"), got[1].Group)
		require.Equal(t, types.GroupKey("c"), got[2].Group)
	})

	t.Run("changed pairs replace in place keeping order", func(t *testing.T) {
		store := NewMemory()

		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			New: []*types.AggregatedActivity{bucket("a", 1), bucket("b", 2)},
		}))

		evolved := bucket("a", 1, 4)
		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			Changed: []types.ChangedBucket{{Old: bucket("a", 1), New: evolved}},
		}))

		got, err := store.Get(ctx, "user:1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, types.GroupKey("a"), got[0].Group)
		require.Equal(t, 2, got[0].Len())
		require.Equal(t, types.GroupKey("b"), got[1].Group)
	})

	t.Run("changed pair for unknown group is skipped", func(t *testing.T) {
		store := NewMemory()

		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			Changed: []types.ChangedBucket{{Old: bucket("ghost"), New: bucket("ghost", 1)}},
		}))

		got, err := store.Get(ctx, "user:1")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("removed buckets are deleted by group", func(t *testing.T) {
		store := NewMemory()

		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			New: []*types.AggregatedActivity{bucket("a", 1), bucket("b", 2), bucket("c", 3)},
		}))
		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			Removed: []*types.AggregatedActivity{bucket("b")},
		}))

		got, err := store.Get(ctx, "user:1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, types.GroupKey("a"), got[0].Group)
		require.Equal(t, types.GroupKey("c"), got[1].Group)
	})

	t.Run("feeds are independent", func(t *testing.T) {
		store := NewMemory()

		require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
			New: []*types.AggregatedActivity{bucket("a", 1)},
		}))

		_, err := store.Get(ctx, "user:2")
		require.ErrorIs(t, err, types.ErrFeedNotFound)
	})

	t.Run("concurrent applies to different feeds", func(t *testing.T) {
		store := NewMemory()

		var wg sync.WaitGroup
		for _, feedID := range []string{"user:1", "user:2", "user:3", "user:4"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 50 {
					_ = store.Apply(ctx, feedID, &types.MergeResult{
						New: []*types.AggregatedActivity{bucket(types.GroupKey(strconv.Itoa(i)), int64(i))},
					})
				}
			}()
		}
		wg.Wait()

		for _, feedID := range []string{"user:1", "user:2", "user:3", "user:4"} {
			got, err := store.Get(ctx, feedID)
			require.NoError(t, err)
			require.Len(t, got, 50)
		}
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Apply(ctx, "user:1", &types.MergeResult{
		New: []*types.AggregatedActivity{bucket("a", 1)},
	}))

	store.Delete(ctx, "user:1")

	_, err := store.Get(ctx, "user:1")
	require.ErrorIs(t, err, types.ErrFeedNotFound)
}
