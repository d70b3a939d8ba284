package feedkit

import "github.com/lioric/feedkit/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual implementations.
//
// This pattern lets the strategy, feed, notify, and internal packages
// depend on `types` without depending on the root feedkit package, while
// still providing a convenient `feedkit.Activity`, `feedkit.GroupKey`, etc.
// for users.
type (
	Activity           = types.Activity
	AggregatedActivity = types.AggregatedActivity
	GroupKey           = types.GroupKey
	MergeResult        = types.MergeResult
	ChangedBucket      = types.ChangedBucket
)

// Re-export interfaces from the types subpackage for convenience.
type (
	AggregationStrategy = types.AggregationStrategy
	Logger              = types.Logger
	MetricsCollector    = types.MetricsCollector
)
