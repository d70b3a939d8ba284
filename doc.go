// Package feedkit provides the combining, ranking, and reconciliation stage
// of an activity-feed pipeline.
//
// Feedkit groups a stream of raw activity records into aggregated buckets,
// orders the buckets for presentation, and reconciles two generations of
// buckets (an existing set and a freshly computed set) into a minimal delta
// of additions and modifications, so incremental feed updates never require
// recomputing the whole feed.
//
// # Quick Start
//
// Aggregate a batch and diff it against the previous generation:
//
//	import (
//	    "github.com/lioric/feedkit"
//	    "github.com/lioric/feedkit/strategy"
//	)
//
//	agg, err := feedkit.New(strategy.NewRecentVerb())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	before := agg.Aggregate(yesterday)
//	after := agg.Aggregate(today)
//
//	delta, err := agg.Merge(before, after)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, bucket := range delta.New {
//	    fmt.Println("new bucket:", bucket.Group)
//	}
//	for _, pair := range delta.Changed {
//	    fmt.Printf("changed from %d to %d activities\n", pair.Old.Len(), pair.New.Len())
//	}
//
// # Key Properties
//
//   - Pluggable policy: grouping and ranking live behind the
//     AggregationStrategy interface; built-ins are in the strategy package
//   - Non-mutating merge: old-generation buckets are never touched, the
//     merged state is a fresh clone, so before/after snapshots coexist
//   - Pure computation: no I/O, no shared state, safe for concurrent
//     per-batch use
//
// The feed package applies merge deltas to an in-memory feed store; the
// notify package publishes them to NATS JetStream for fan-out workers.
package feedkit
