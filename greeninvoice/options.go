package greeninvoice

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger enables request/response logging at info level.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = &logger
	}
}

// WithHTTPClient replaces the HTTP client used for all calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Session) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout. It is applied to a copy of the HTTP
// client, so a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Session) {
		s.timeout = &timeout
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(s *Session) {
		s.userAgent = userAgent
	}
}

// WithBaseURL overrides the environment endpoint, e.g. for a proxy or a test server.
func WithBaseURL(baseURL string) Option {
	return func(s *Session) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}
