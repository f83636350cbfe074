package greeninvoice

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDefault() {
	defaultMu.Lock()
	defaultSession = nil
	defaultMu.Unlock()
}

func TestDefaultNotConfigured(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	_, err := Default()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "not configured yet")

	_, err = DefaultClients()
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = DefaultDocuments()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConfigure(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	t.Run("invalid environment leaves default unset", func(t *testing.T) {
		_, err := Configure("staging", "id", "secret")
		assert.ErrorIs(t, err, ErrInvalidEnvironment)

		_, err = Default()
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("installs session", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/clients/c1", r.URL.Path)
			w.Write([]byte(`{"id": "c1"}`))
		})

		s, err := Configure(EnvironmentSandbox, "key-id", "key-secret", WithBaseURL(server.URL))
		require.NoError(t, err)

		got, err := Default()
		require.NoError(t, err)
		assert.Same(t, s, got)

		clients, err := DefaultClients()
		require.NoError(t, err)
		client, err := clients.Find(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", client.ID)
	})

	t.Run("reconfigure replaces session", func(t *testing.T) {
		first, err := Configure(EnvironmentSandbox, "a", "b")
		require.NoError(t, err)
		second, err := Configure(EnvironmentLive, "c", "d")
		require.NoError(t, err)

		got, err := Default()
		require.NoError(t, err)
		assert.NotSame(t, first, got)
		assert.Same(t, second, got)
		assert.Equal(t, EnvironmentLive, got.Environment())
	})
}
