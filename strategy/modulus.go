package strategy

import (
	"slices"
	"strconv"

	"github.com/lioric/feedkit/types"
)

// DefaultModulus is the modulus used when none is configured.
const DefaultModulus = 3

// Modulus buckets activities by an arithmetic property of their identifier:
// the group key is the activity ID modulo m. It is a stress/demo pattern,
// not a realistic feed policy.
type Modulus struct {
	modulus int64
}

// Compile-time assertion that Modulus implements AggregationStrategy.
var _ types.AggregationStrategy = (*Modulus)(nil)

// NewModulus creates a modulus strategy with the given modulus.
//
// Parameters:
//   - modulus: Number of residue classes to bucket into (DefaultModulus if <= 0)
//
// Returns:
//   - *Modulus: Initialized modulus strategy
//
// Example:
//
//	agg, err := feedkit.New(strategy.NewModulus(3))
func NewModulus(modulus int64) *Modulus {
	if modulus <= 0 {
		modulus = DefaultModulus
	}

	return &Modulus{modulus: modulus}
}

// GroupKeyFor returns the activity's ID modulo the configured modulus,
// rendered in decimal.
func (s *Modulus) GroupKeyFor(activity types.Activity) types.GroupKey {
	return types.GroupKey(strconv.FormatInt(activity.ID%s.modulus, 10))
}

// Rank sorts buckets ascending by the maximum activity ID they contain.
//
// The sort is stable and in place; the input slice is returned.
func (s *Modulus) Rank(aggregates []*types.AggregatedActivity) []*types.AggregatedActivity {
	slices.SortStableFunc(aggregates, func(a, b *types.AggregatedActivity) int {
		switch am, bm := a.MaxID(), b.MaxID(); {
		case am < bm:
			return -1
		case am > bm:
			return 1
		default:
			return 0
		}
	})

	return aggregates
}
