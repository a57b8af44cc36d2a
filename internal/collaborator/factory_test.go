package collaborator

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/denik/internal/config"
	"github.com/nfrund/denik/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		b, closer, err := NewFromConfig(ctx, &config.Config{AuthBackend: config.BackendNone})
		require.NoError(t, err)
		assert.Nil(t, b)
		assert.NoError(t, closer(ctx))
	})

	t.Run("http", func(t *testing.T) {
		b, _, err := NewFromConfig(ctx, &config.Config{
			AuthBackend:     config.BackendHTTP,
			AuthHTTPURL:     "https://auth.example.cz",
			AuthHTTPTimeout: time.Second,
		})
		require.NoError(t, err)
		assert.IsType(t, &HTTPBackend{}, b)
	})

	t.Run("http over plain transport", func(t *testing.T) {
		_, _, err := NewFromConfig(ctx, &config.Config{
			AuthBackend: config.BackendHTTP,
			AuthHTTPURL: "http://auth.example.cz",
		})
		assert.ErrorIs(t, err, domain.ErrInsecureTransport)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := NewFromConfig(ctx, &config.Config{AuthBackend: "ldap"})
		assert.Error(t, err)
	})
}
