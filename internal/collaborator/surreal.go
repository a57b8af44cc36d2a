package collaborator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/denik/internal/config"
	"github.com/nfrund/denik/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// recordAccess is the slice of *surrealdb.DB the backend needs.
type recordAccess interface {
	SignIn(ctx context.Context, authData any) (string, error)
	SignUp(ctx context.Context, authData any) (string, error)
}

// SurrealBackend signs users in and up through SurrealDB record access.
// SurrealDB checks and hashes the password; this type only forwards it.
type SurrealBackend struct {
	db     recordAccess
	ns     string
	dbName string
	access string
}

// NewSurrealBackend wraps an open connection.
func NewSurrealBackend(db recordAccess, ns, dbName, access string) *SurrealBackend {
	return &SurrealBackend{db: db, ns: ns, dbName: dbName, access: access}
}

// ConnectSurreal opens the connection the backend runs on.
func ConnectSurreal(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.Info("Connected to SurrealDB", "ns", cfg.GetDBNs(), "db", cfg.GetDBDb())
	return db, nil
}

// recordAuth builds the record access payload; keys are lowercase to match
// what the driver forwards to the server.
func (s *SurrealBackend) recordAuth(creds domain.Credentials) map[string]any {
	return map[string]any{
		"ns":       s.ns,
		"db":       s.dbName,
		"ac":       s.access,
		"email":    creds.Email,
		"password": creds.Password.Reveal(),
	}
}

// SignIn implements domain.Authenticator.
func (s *SurrealBackend) SignIn(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	token, err := s.db.SignIn(ctx, s.recordAuth(creds))
	if err != nil {
		return nil, mapSurrealError(err, domain.ErrInvalidCredentials)
	}
	return &domain.Session{Token: token, Email: creds.Email}, nil
}

// SignUp implements domain.Registrar.
func (s *SurrealBackend) SignUp(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	token, err := s.db.SignUp(ctx, s.recordAuth(creds))
	if err != nil {
		return nil, mapSurrealError(err, domain.ErrUserAlreadyExists)
	}
	return &domain.Session{Token: token, Email: creds.Email}, nil
}

// mapSurrealError classifies driver errors by message, the only signal the
// driver exposes. A failed access query means the record access method
// rejected the credentials.
func mapSurrealError(err error, rejected error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already exists"):
		return domain.ErrUserAlreadyExists
	case strings.Contains(msg, "query failed"),
		strings.Contains(msg, "no record was returned"),
		strings.Contains(msg, "authentication failed"):
		return rejected
	}
	return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
}
