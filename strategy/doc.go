// Package strategy provides built-in aggregation strategy implementations.
//
// Aggregation strategies determine which bucket each activity lands in and
// how the resulting buckets are ordered for presentation. The package
// includes three built-in strategies:
//
//   - RecentVerb: Buckets by verb and calendar day, newest-updated bucket
//     first (the classic "X and 3 others liked your post" feed shape)
//   - HashedActor: Buckets by a hash shard of the actor, newest-updated
//     first (spreads a feed across a fixed number of shards)
//   - Modulus: Buckets by activity ID modulo m, ranked ascending by max ID
//     (a stress/demo pattern, not a realistic feed policy)
//
// # Strategy Selection Guide
//
// RecentVerb:
//   - Use for notification-style feeds where same-kind events on the same
//     day collapse into one entry
//   - Ranking follows bucket recency, so active buckets float to the top
//
// HashedActor:
//   - Use when the number of buckets must stay bounded regardless of input
//   - Placement is stable across passes for a fixed seed and shard count
//
// Modulus:
//   - Use in tests and demos that need small, predictable group keys
//
// Custom strategies can be implemented by satisfying the
// types.AggregationStrategy interface.
package strategy
