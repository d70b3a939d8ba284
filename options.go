package feedkit

import "github.com/lioric/feedkit/types"

// Option configures an Aggregator with optional dependencies.
type Option func(*aggregatorOptions)

// aggregatorOptions holds optional Aggregator configuration.
type aggregatorOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithLogger sets a logger.
//
// By default the aggregator is silent (no-op logger), which is the right
// behavior for a library; pass a logger to surface per-pass debug output.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	agg, err := feedkit.New(strat, feedkit.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger types.Logger) Option {
	return func(o *aggregatorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "feedkit")
//	agg, err := feedkit.New(strat, feedkit.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *aggregatorOptions) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}
