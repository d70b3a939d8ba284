// Package types defines the core types and interfaces for the feedkit
// library.
//
// This package exists as a separate leaf so that strategy, feed, notify, and
// internal packages can share definitions without importing the root feedkit
// package. Users normally import the root package, which re-exports
// everything here via type aliases.
//
// Core entities:
//   - Activity: A single raw event record (external, consumed not owned)
//   - AggregatedActivity: A bucket of activities sharing a group key
//   - MergeResult: The delta between two generations of buckets
//
// Core interfaces:
//   - AggregationStrategy: Pluggable grouping and ranking policy
//   - Logger: Structured logging abstraction
//   - MetricsCollector: Operational metrics abstraction
package types
