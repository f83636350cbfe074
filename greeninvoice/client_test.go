package greeninvoice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// apiServer serves the token endpoint and delegates everything else to handler.
type apiServer struct {
	*httptest.Server
	tokenCalls atomic.Int32
}

func newAPIServer(t *testing.T, handler http.HandlerFunc) *apiServer {
	t.Helper()
	s := &apiServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == tokenPath {
			s.tokenCalls.Add(1)
			var creds tokenRequest
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.ID != "key-id" || creds.Secret != "key-secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set(tokenHeader, testToken)
			w.WriteHeader(http.StatusOK)
			return
		}
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

func newTestSession(t *testing.T, baseURL string, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	s, err := NewSession(EnvironmentSandbox, "key-id", "key-secret", opts...)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	tests := []struct {
		name    string
		env     Environment
		wantURL string
		wantErr bool
	}{
		{name: "live", env: EnvironmentLive, wantURL: "https://api.greeninvoice.co.il/api"},
		{name: "sandbox", env: EnvironmentSandbox, wantURL: "https://sandbox.d.greeninvoice.co.il/api"},
		{name: "empty", env: "", wantErr: true},
		{name: "unknown", env: "production", wantErr: true},
		{name: "wrong case", env: "LIVE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.env, "id", "secret")
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigurationError
				assert.True(t, errors.As(err, &cfgErr))
				assert.ErrorIs(t, err, ErrInvalidEnvironment)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, s.BaseURL())
			assert.Equal(t, tt.env, s.Environment())
		})
	}
}

func TestSessionOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		s, err := NewSession(EnvironmentLive, "id", "secret", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, s.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		s, err := NewSession(EnvironmentLive, "id", "secret", WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, s.httpClient)
	})

	t.Run("timeout leaves shared client untouched", func(t *testing.T) {
		tests := []struct {
			name string
			opts func(shared *http.Client) []Option
		}{
			{
				name: "client then timeout",
				opts: func(shared *http.Client) []Option {
					return []Option{WithHTTPClient(shared), WithTimeout(5 * time.Second)}
				},
			},
			{
				name: "timeout then client",
				opts: func(shared *http.Client) []Option {
					return []Option{WithTimeout(5 * time.Second), WithHTTPClient(shared)}
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				shared := &http.Client{Timeout: time.Minute}
				s, err := NewSession(EnvironmentLive, "id", "secret", tt.opts(shared)...)
				require.NoError(t, err)
				assert.Equal(t, 5*time.Second, s.httpClient.Timeout)
				assert.Equal(t, time.Minute, shared.Timeout)
				assert.NotSame(t, shared, s.httpClient)
			})
		}
	})

	t.Run("with base url trims slash", func(t *testing.T) {
		s, err := NewSession(EnvironmentLive, "id", "secret", WithBaseURL("http://localhost:8080/api/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api", s.BaseURL())
	})

	t.Run("with user agent", func(t *testing.T) {
		s, err := NewSession(EnvironmentLive, "id", "secret", WithUserAgent("custom/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "custom/1.0", s.userAgent)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := newAPIServer(t, nil)
		s := newTestSession(t, server.URL)

		token, err := s.Authenticate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testToken, token)
	})

	t.Run("missing token header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()
		s := newTestSession(t, server.URL)

		_, err := s.Authenticate(context.Background())
		var authErr *AuthenticationError
		require.True(t, errors.As(err, &authErr))
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("non-2xx token call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(tokenHeader, "ignored")
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()
		s := newTestSession(t, server.URL)

		_, err := s.Authenticate(context.Background())
		var authErr *AuthenticationError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, http.StatusForbidden, authErr.StatusCode)
		assert.True(t, IsUnauthorized(err))
	})

	t.Run("wrong credentials", func(t *testing.T) {
		server := newAPIServer(t, nil)
		s, err := NewSession(EnvironmentSandbox, "key-id", "wrong", WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
		var authErr *AuthenticationError
		require.True(t, errors.As(err, &authErr))
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()
		s := newTestSession(t, url)

		_, err := s.Authenticate(context.Background())
		var authErr *AuthenticationError
		require.True(t, errors.As(err, &authErr))
		assert.Zero(t, authErr.StatusCode)
	})
}

func TestRequest(t *testing.T) {
	t.Run("empty 2xx body", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		s := newTestSession(t, server.URL)

		resp, err := s.Request(context.Background(), http.MethodDelete, "/v1/clients/1", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.HTTP.StatusCode)
		assert.Nil(t, resp.Body)
	})

	t.Run("json 2xx body", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/clients/search", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"Acme"}`, string(body))
			w.Write([]byte(`{"total": 1, "items": [{"id": "123"}]}`))
		})
		s := newTestSession(t, server.URL)

		resp, err := s.Request(context.Background(), http.MethodPost, "/v1/clients/search", map[string]any{"name": "Acme"})
		require.NoError(t, err)
		expected := map[string]any{
			"total": json.Number("1"),
			"items": []any{map[string]any{"id": "123"}},
		}
		assert.Equal(t, expected, resp.Body)
	})

	t.Run("no body sent for nil", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
			w.Write([]byte(`{}`))
		})
		s := newTestSession(t, server.URL)

		_, err := s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
		require.NoError(t, err)
	})

	t.Run("no body sent for typed nil", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
			w.Write([]byte(`{"id": "c1"}`))
		})
		s := newTestSession(t, server.URL)

		var draft *ClientDraft
		_, err := s.Request(context.Background(), http.MethodPost, "/v1/clients", draft)
		require.NoError(t, err)
	})

	t.Run("fresh token per request", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
		s := newTestSession(t, server.URL)

		for i := 0; i < 3; i++ {
			_, err := s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), server.tokenCalls.Load())
	})

	t.Run("non-json body", func(t *testing.T) {
		for _, status := range []int{http.StatusOK, http.StatusBadGateway} {
			server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte("<html>oops</html>"))
			})
			s := newTestSession(t, server.URL)

			_, err := s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, "<html>oops</html>", apiErr.Description)
			assert.Equal(t, status, apiErr.StatusCode)
		}
	})

	t.Run("stores last response", func(t *testing.T) {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		s := newTestSession(t, server.URL)
		assert.Nil(t, s.LastResponse())

		_, err := s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
		require.Error(t, err)
		require.NotNil(t, s.LastResponse())
		assert.Equal(t, http.StatusNotFound, s.LastResponse().StatusCode)
	})
}

func TestRequestErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected *APIError
	}{
		{
			name:     "empty body",
			status:   http.StatusInternalServerError,
			body:     "",
			expected: &APIError{StatusCode: 500, Description: "<no response body>"},
		},
		{
			name:   "multiple messages",
			status: http.StatusBadRequest,
			body:   `{"messages": {"message": [{"description": "a"}, {"description": "b"}]}}`,
			expected: &APIError{StatusCode: 400, Messages: []Message{
				{Description: "a"},
				{Description: "b"},
			}},
		},
		{
			name:     "single message",
			status:   http.StatusUnprocessableEntity,
			body:     `{"messages": {"message": {"description": "x", "code": "42"}}}`,
			expected: &APIError{StatusCode: 422, Description: "x", Code: "42"},
		},
		{
			name:     "string body",
			status:   http.StatusBadRequest,
			body:     `"bad things"`,
			expected: &APIError{StatusCode: 400, Description: "bad things"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			s := newTestSession(t, server.URL)

			resp, err := s.Request(context.Background(), http.MethodGet, "/v1/documents/1", nil)
			assert.Nil(t, resp)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.expected, apiErr)
		})
	}
}

func TestRequestLogging(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "1"}`))
	})

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := newTestSession(t, server.URL, WithLogger(logger))

	_, err := s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var reqLine, respLine map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &reqLine))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &respLine))

	assert.Equal(t, "info", reqLine["level"])
	assert.Equal(t, "GET", reqLine["method"])
	assert.Equal(t, server.URL+"/v1/clients/1", reqLine["url"])
	headers := reqLine["headers"].(map[string]any)
	assert.Equal(t, redactedValue, headers["Authorization"])
	assert.NotContains(t, buf.String(), testToken)

	assert.Equal(t, float64(200), respLine["status"])
	assert.Equal(t, `{"id": "1"}`, respLine["body"])
	assert.Contains(t, respLine, "took")
}

func TestRequestWithoutLogger(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	s := newTestSession(t, server.URL)
	assert.Nil(t, s.logger)

	_, err := s.Request(context.Background(), http.MethodGet, "/v1/clients/1", nil)
	require.NoError(t, err)
}
