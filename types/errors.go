package types

import "errors"

// Sentinel errors for the feedkit library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).
var (
	// ErrAggregationStrategyRequired is returned when the aggregation
	// strategy is nil. Strategies are required at construction time; this is
	// a programming error, not a runtime data error.
	ErrAggregationStrategyRequired = errors.New("aggregation strategy is required")

	// ErrDuplicateGroup is returned by Merge when a generation contains two
	// buckets with the same group key. Grouping guarantees one bucket per
	// key, so a duplicate means the caller's input violates the contract;
	// failing loudly avoids silently dropping one of the buckets.
	ErrDuplicateGroup = errors.New("duplicate group key in aggregated activities")

	// ErrJetStreamRequired is returned when the delta publisher is created
	// without a JetStream context.
	ErrJetStreamRequired = errors.New("JetStream context is required")

	// ErrFeedNotFound is returned when reading a feed that has never been
	// written.
	ErrFeedNotFound = errors.New("feed not found")
)
