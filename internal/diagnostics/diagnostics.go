// Package diagnostics is the channel auth attempts are reported on. An
// Attempt carries the email and never the password.
package diagnostics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind tells which form an attempt came from.
type Kind string

const (
	KindLogin    Kind = "login"
	KindRegister Kind = "register"
)

// Attempt is one form submission that passed validation.
type Attempt struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Email     string    `json:"email"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}

// NewAttempt stamps an attempt with a fresh id and the current time.
func NewAttempt(kind Kind, email, requestID string) Attempt {
	return Attempt{
		ID:        uuid.NewString(),
		Kind:      kind,
		Email:     email,
		RequestID: requestID,
		At:        time.Now().UTC(),
	}
}

// Sink receives attempts.
type Sink interface {
	Emit(ctx context.Context, attempt Attempt) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, attempt Attempt) error

// Emit implements Sink.
func (f SinkFunc) Emit(ctx context.Context, attempt Attempt) error {
	return f(ctx, attempt)
}

// MultiSink emits to every sink and joins their errors.
type MultiSink []Sink

// Emit implements Sink.
func (m MultiSink) Emit(ctx context.Context, attempt Attempt) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, attempt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every attempt.
var Discard Sink = SinkFunc(func(context.Context, Attempt) error { return nil })
