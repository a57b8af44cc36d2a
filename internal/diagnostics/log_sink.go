package diagnostics

import (
	"context"
	"log/slog"
)

// LogSink writes attempts as structured log lines.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink logging through logger, or slog.Default when nil.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Emit implements Sink.
func (s *LogSink) Emit(ctx context.Context, attempt Attempt) error {
	msg := "Login attempt"
	if attempt.Kind == KindRegister {
		msg = "Registration attempt"
	}
	s.logger.InfoContext(ctx, msg,
		"email", attempt.Email,
		"attempt_id", attempt.ID,
		"request_id", attempt.RequestID,
	)
	return nil
}
