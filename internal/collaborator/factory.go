package collaborator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/denik/internal/config"
	"github.com/nfrund/denik/internal/domain"
)

// Backend is both collaborators an adapter provides.
type Backend interface {
	domain.Authenticator
	domain.Registrar
}

// Closer releases whatever connection a backend holds.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// NewFromConfig picks the adapter named by AUTH_BACKEND. The "none" backend
// returns nil collaborators, so submissions stay pending.
func NewFromConfig(ctx context.Context, cfg config.Provider) (Backend, Closer, error) {
	switch cfg.GetAuthBackend() {
	case config.BackendNone, "":
		slog.Info("No auth backend configured; submissions will stay pending")
		return nil, noopCloser, nil
	case config.BackendHTTP:
		b, err := NewHTTPBackend(cfg.GetAuthHTTPURL(), cfg.GetAuthHTTPTimeout())
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using HTTP auth backend", "url", cfg.GetAuthHTTPURL())
		return b, noopCloser, nil
	case config.BackendSurreal:
		db, err := ConnectSurreal(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		b := NewSurrealBackend(db, cfg.GetDBNs(), cfg.GetDBDb(), cfg.GetDBAccess())
		return b, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown auth backend %q", cfg.GetAuthBackend())
}
