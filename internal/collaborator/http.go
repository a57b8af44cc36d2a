package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/denik/internal/domain"
)

// HTTPBackend forwards credentials to a remote auth service as JSON over HTTPS.
type HTTPBackend struct {
	baseURL *url.URL
	client  *http.Client
}

// HTTPOption configures an HTTPBackend.
type HTTPOption func(*HTTPBackend)

// WithHTTPClient replaces the default client, e.g. to trust a test CA.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(b *HTTPBackend) {
		b.client = client
	}
}

// NewHTTPBackend validates baseURL and refuses anything but https, so a
// password never leaves the process unencrypted.
func NewHTTPBackend(baseURL string, timeout time.Duration, opts ...HTTPOption) (*HTTPBackend, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth service url: %w", err)
	}
	if u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", domain.ErrInsecureTransport, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid auth service url %q: missing host", baseURL)
	}

	b := &HTTPBackend{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionPayload struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// SignIn implements domain.Authenticator.
func (b *HTTPBackend) SignIn(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	return b.post(ctx, "login", creds)
}

// SignUp implements domain.Registrar.
func (b *HTTPBackend) SignUp(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	return b.post(ctx, "register", creds)
}

func (b *HTTPBackend) post(ctx context.Context, endpoint string, creds domain.Credentials) (*domain.Session, error) {
	body, err := json.Marshal(credentialsPayload{Email: creds.Email, Password: creds.Password.Reveal()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	target := b.baseURL.JoinPath(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %v", domain.ErrBackendUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		slog.DebugContext(ctx, "Auth service rejected request", "endpoint", endpoint, "status", resp.StatusCode, "email", creds.Email)
		return nil, err
	}

	var out sessionPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed %s response: %v", domain.ErrBackendUnavailable, endpoint, err)
	}
	if strings.TrimSpace(out.Token) == "" {
		return nil, fmt.Errorf("%w: %s response carried no token", domain.ErrBackendUnavailable, endpoint)
	}

	email := out.Email
	if email == "" {
		email = creds.Email
	}
	return &domain.Session{Token: out.Token, Email: email}, nil
}

// statusError maps the auth service's status codes onto the domain taxonomy.
func statusError(status int) error {
	switch {
	case status == http.StatusOK, status == http.StatusCreated:
		return nil
	case status == http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	case status == http.StatusNotFound:
		return domain.ErrAccountNotFound
	case status == http.StatusConflict:
		return domain.ErrUserAlreadyExists
	case status == http.StatusUnprocessableEntity:
		return domain.ErrPasswordPolicy
	case status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	}
	return fmt.Errorf("%w: unexpected status %d", domain.ErrBackendUnavailable, status)
}
