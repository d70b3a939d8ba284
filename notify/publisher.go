// Package notify publishes merge deltas to NATS JetStream for downstream
// fan-out workers.
//
// Each delta becomes one message per new bucket and one per changed pair,
// on subjects of the form "<prefix>.<feedID>.new" and
// "<prefix>.<feedID>.changed". The changed payload carries both the before
// and after snapshots of the bucket, which is possible because the merge
// operation never mutates the old generation.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/lioric/feedkit/internal/logger"
	"github.com/lioric/feedkit/types"
)

// DefaultSubjectPrefix is the subject prefix used when none is configured.
const DefaultSubjectPrefix = "feed.delta"

// JetStreamPublisher is the narrow slice of the JetStream API the publisher
// needs. jetstream.JetStream satisfies it; tests substitute a fake.
type JetStreamPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// Publisher publishes merge deltas as JSON JetStream messages.
type Publisher struct {
	js     JetStreamPublisher
	prefix string
	logger types.Logger
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithSubjectPrefix overrides DefaultSubjectPrefix.
func WithSubjectPrefix(prefix string) PublisherOption {
	return func(p *Publisher) {
		if prefix != "" {
			p.prefix = prefix
		}
	}
}

// WithLogger sets a logger for the publisher.
func WithLogger(l types.Logger) PublisherOption {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPublisher creates a delta publisher on the given JetStream context.
//
// Parameters:
//   - js: JetStream publish API (e.g., from jetstream.New(conn))
//   - opts: Optional configuration (WithSubjectPrefix, WithLogger)
//
// Returns:
//   - *Publisher: Initialized publisher
//   - error: types.ErrJetStreamRequired if js is nil
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	pub, err := notify.NewPublisher(js, notify.WithSubjectPrefix("feeds.prod"))
//	err = pub.PublishDelta(ctx, "user:42", delta)
func NewPublisher(js JetStreamPublisher, opts ...PublisherOption) (*Publisher, error) {
	if js == nil {
		return nil, types.ErrJetStreamRequired
	}

	p := &Publisher{
		js:     js,
		prefix: DefaultSubjectPrefix,
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// NewBucketEvent is the payload published for each bucket in a delta's New
// slice.
type NewBucketEvent struct {
	FeedID string                    `json:"feed_id"`
	Bucket *types.AggregatedActivity `json:"bucket"`
}

// ChangedBucketEvent is the payload published for each pair in a delta's
// Changed slice.
type ChangedBucketEvent struct {
	FeedID string                    `json:"feed_id"`
	Before *types.AggregatedActivity `json:"before"`
	After  *types.AggregatedActivity `json:"after"`
}

// PublishDelta publishes one message per new bucket and one per changed
// pair in the delta. Publishing stops at the first failure and returns a
// wrapped error; JetStream deduplication or consumer idempotency must
// handle partial publishes on retry.
//
// Parameters:
//   - ctx: Context for publish calls
//   - feedID: The feed the delta belongs to, used in the subject
//   - delta: Merge result to publish
//
// Returns:
//   - error: First publish or marshal failure, wrapped with the subject
func (p *Publisher) PublishDelta(ctx context.Context, feedID string, delta *types.MergeResult) error {
	newSubject := fmt.Sprintf("%s.%s.new", p.prefix, feedID)
	for _, bucket := range delta.New {
		if err := p.publish(ctx, newSubject, NewBucketEvent{FeedID: feedID, Bucket: bucket}); err != nil {
			return err
		}
	}

	changedSubject := fmt.Sprintf("%s.%s.changed", p.prefix, feedID)
	for _, pair := range delta.Changed {
		event := ChangedBucketEvent{FeedID: feedID, Before: pair.Old, After: pair.New}
		if err := p.publish(ctx, changedSubject, event); err != nil {
			return err
		}
	}

	p.logger.Debug("delta published",
		"feed_id", feedID,
		"new", len(delta.New),
		"changed", len(delta.Changed),
	)

	return nil
}

func (p *Publisher) publish(ctx context.Context, subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", subject, err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}

	return nil
}
