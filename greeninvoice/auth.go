package greeninvoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
)

const (
	tokenPath   = "/v1/account/token"
	tokenHeader = "X-Authorization-Bearer"
)

// Version is the library version reported in the default user agent.
var Version = "dev"

// DefaultUserAgent identifies the library and Go runtime
func DefaultUserAgent() string {
	return fmt.Sprintf("green-invoice-go/%s (%s; %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

type tokenRequest struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// Authenticate exchanges the API key for a bearer token. The token is not
// cached.
func (s *Session) Authenticate(ctx context.Context) (string, error) {
	payload, err := json.Marshal(tokenRequest{
		ID:     s.credentials.KeyID,
		Secret: s.credentials.KeySecret,
	})
	if err != nil {
		return "", &AuthenticationError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+tokenPath, bytes.NewReader(payload))
	if err != nil {
		return "", &AuthenticationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &AuthenticationError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthenticationError{StatusCode: resp.StatusCode}
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return "", &AuthenticationError{StatusCode: resp.StatusCode, Err: ErrMissingToken}
	}

	return token, nil
}
