package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to a payload type so publishers and
// subscribers agree on the JSON shape.
type Event[T any] struct {
	topic string
}

// NewEvent creates a typed event for topic.
func NewEvent[T any](topic string) Event[T] {
	return Event[T]{topic: topic}
}

// Topic returns the topic name.
func (e Event[T]) Topic() string {
	return e.topic
}

// Publish marshals payload and publishes it under key.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, key string, payload T) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", e.topic, err)
	}
	return pub.Publish(ctx, Message{Topic: e.topic, Key: key, Payload: body})
}

// Subscribe decodes each message on the topic into T before calling fn.
func (e Event[T]) Subscribe(ctx context.Context, sub Subscriber, fn func(ctx context.Context, payload T) error) error {
	return sub.Subscribe(ctx, e.topic, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", e.topic, err)
		}
		return fn(ctx, payload)
	})
}
