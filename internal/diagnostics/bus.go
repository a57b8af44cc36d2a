package diagnostics

import (
	"context"
	"fmt"

	"github.com/nfrund/denik/internal/pubsub"
)

// DefaultTopic is where attempts are published unless configured otherwise.
const DefaultTopic = "auth.attempts"

// BusSink publishes attempts on the pubsub bus.
type BusSink struct {
	pub   pubsub.Publisher
	event pubsub.Event[Attempt]
}

// NewBusSink publishes on topic through pub.
func NewBusSink(pub pubsub.Publisher, topic string) *BusSink {
	if topic == "" {
		topic = DefaultTopic
	}
	return &BusSink{pub: pub, event: pubsub.NewEvent[Attempt](topic)}
}

// Emit implements Sink.
func (s *BusSink) Emit(ctx context.Context, attempt Attempt) error {
	if err := s.event.Publish(ctx, s.pub, attempt.ID, attempt); err != nil {
		return fmt.Errorf("failed to publish %s attempt: %w", attempt.Kind, err)
	}
	return nil
}

// Relay forwards every attempt published on topic to sink. It returns once
// the subscription is active.
func Relay(ctx context.Context, sub pubsub.Subscriber, topic string, sink Sink) error {
	if topic == "" {
		topic = DefaultTopic
	}
	return pubsub.NewEvent[Attempt](topic).Subscribe(ctx, sub, sink.Emit)
}
