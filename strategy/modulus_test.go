package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lioric/feedkit/types"
)

func TestModulus_GroupKeyFor(t *testing.T) {
	t.Run("groups by id modulo m", func(t *testing.T) {
		strat := NewModulus(3)

		require.Equal(t, types.GroupKey("1"), strat.GroupKeyFor(types.Activity{ID: 1}))
		require.Equal(t, types.GroupKey("2"), strat.GroupKeyFor(types.Activity{ID: 2}))
		require.Equal(t, types.GroupKey("0"), strat.GroupKeyFor(types.Activity{ID: 3}))
		require.Equal(t, types.GroupKey("1"), strat.GroupKeyFor(types.Activity{ID: 4}))
	})

	t.Run("defaults to modulus 3", func(t *testing.T) {
		strat := NewModulus(0)

		require.Equal(t, strat.GroupKeyFor(types.Activity{ID: 2}), strat.GroupKeyFor(types.Activity{ID: 5}))
		require.NotEqual(t, strat.GroupKeyFor(types.Activity{ID: 2}), strat.GroupKeyFor(types.Activity{ID: 4}))
	})
}

func TestModulus_Rank(t *testing.T) {
	t.Run("sorts ascending by max activity id", func(t *testing.T) {
		strat := NewModulus(3)

		a := types.NewAggregatedActivity("1")
		a.Append(types.Activity{ID: 1}, types.Activity{ID: 4})
		b := types.NewAggregatedActivity("2")
		b.Append(types.Activity{ID: 2})
		c := types.NewAggregatedActivity("0")
		c.Append(types.Activity{ID: 3})

		ranked := strat.Rank([]*types.AggregatedActivity{a, b, c})

		require.Len(t, ranked, 3)
		require.Equal(t, types.GroupKey("2"), ranked[0].Group)
		require.Equal(t, types.GroupKey("0"), ranked[1].Group)
		require.Equal(t, types.GroupKey("1"), ranked[2].Group)
	})

	t.Run("does not touch bucket contents", func(t *testing.T) {
		strat := NewModulus(3)

		a := types.NewAggregatedActivity("1")
		a.Append(types.Activity{ID: 1}, types.Activity{ID: 4})

		ranked := strat.Rank([]*types.AggregatedActivity{a})

		require.Len(t, ranked, 1)
		require.Same(t, a, ranked[0])
		require.Equal(t, 2, ranked[0].Len())
	})
}
