package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lioric/feedkit/types"
)

func TestRecentVerb_GroupKeyFor(t *testing.T) {
	t.Run("combines verb and calendar day", func(t *testing.T) {
		strat := NewRecentVerb()
		activity := types.Activity{
			ID:   1,
			Verb: "like",
			Time: time.Date(2016, 3, 14, 9, 30, 0, 0, time.UTC),
		}

		require.Equal(t, types.GroupKey("like-2016-03-14"), strat.GroupKeyFor(activity))
	})

	t.Run("same verb on different days yields different keys", func(t *testing.T) {
		strat := NewRecentVerb()
		day1 := types.Activity{Verb: "follow", Time: time.Date(2016, 3, 14, 23, 59, 0, 0, time.UTC)}
		day2 := types.Activity{Verb: "follow", Time: time.Date(2016, 3, 15, 0, 1, 0, 0, time.UTC)}

		require.NotEqual(t, strat.GroupKeyFor(day1), strat.GroupKeyFor(day2))
	})

	t.Run("uses the activity's own location for the day", func(t *testing.T) {
		strat := NewRecentVerb()
		loc := time.FixedZone("UTC+9", 9*60*60)
		// 23:30 on the 14th in UTC+9 is still the 14th locally.
		activity := types.Activity{Verb: "like", Time: time.Date(2016, 3, 14, 23, 30, 0, 0, loc)}

		require.Equal(t, types.GroupKey("like-2016-03-14"), strat.GroupKeyFor(activity))
	})
}

func TestRecentVerb_Rank(t *testing.T) {
	t.Run("newest-updated bucket first", func(t *testing.T) {
		strat := NewRecentVerb()
		now := time.Date(2016, 3, 14, 12, 0, 0, 0, time.UTC)

		stale := types.NewAggregatedActivity("like-2016-03-13")
		stale.Append(types.Activity{ID: 1, Time: now.Add(-24 * time.Hour)})
		fresh := types.NewAggregatedActivity("like-2016-03-14")
		fresh.Append(types.Activity{ID: 2, Time: now})
		middle := types.NewAggregatedActivity("follow-2016-03-14")
		middle.Append(types.Activity{ID: 3, Time: now.Add(-time.Hour)})

		ranked := strat.Rank([]*types.AggregatedActivity{stale, fresh, middle})

		require.Equal(t, types.GroupKey("like-2016-03-14"), ranked[0].Group)
		require.Equal(t, types.GroupKey("follow-2016-03-14"), ranked[1].Group)
		require.Equal(t, types.GroupKey("like-2016-03-13"), ranked[2].Group)
	})

	t.Run("is a permutation of the input", func(t *testing.T) {
		strat := NewRecentVerb()
		a := types.NewAggregatedActivity("a")
		b := types.NewAggregatedActivity("b")

		ranked := strat.Rank([]*types.AggregatedActivity{a, b})

		require.Len(t, ranked, 2)
		require.ElementsMatch(t, []*types.AggregatedActivity{a, b}, ranked)
	})
}
