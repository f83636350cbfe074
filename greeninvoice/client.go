package greeninvoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Environment selects the API deployment.
type Environment string

const (
	// EnvironmentLive is the production API
	EnvironmentLive Environment = "live"
	// EnvironmentSandbox is the testing API
	EnvironmentSandbox Environment = "sandbox"
)

var endpoints = map[Environment]string{
	EnvironmentLive:    "https://api.greeninvoice.co.il/api",
	EnvironmentSandbox: "https://sandbox.d.greeninvoice.co.il/api",
}

// ParseEnvironment converts a string into an Environment
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(s)
	if _, ok := endpoints[env]; !ok {
		return "", &ConfigurationError{
			Reason: fmt.Sprintf("env %q not in [live sandbox]", s),
			Err:    ErrInvalidEnvironment,
		}
	}
	return env, nil
}

// BaseURL returns the API root of the environment
func (e Environment) BaseURL() string {
	return endpoints[e]
}

// Credentials identify the API key used to obtain bearer tokens.
type Credentials struct {
	KeyID     string
	KeySecret string
}

// Session holds the environment and credentials, and performs authenticated
// requests. It is safe for concurrent use; only the last-response field is
// shared and it is last-write-wins.
type Session struct {
	env         Environment
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
	timeout     *time.Duration
	userAgent   string
	logger      *zerolog.Logger

	mu           sync.RWMutex
	lastResponse *http.Response
}

// Response is a completed API call: the HTTP response, the raw payload and
// the decoded JSON body (nil for an empty payload).
type Response struct {
	HTTP *http.Response
	Raw  []byte
	Body any
}

// NewSession creates a new Green Invoice session
func NewSession(env Environment, keyID, keySecret string, opts ...Option) (*Session, error) {
	if _, err := ParseEnvironment(string(env)); err != nil {
		return nil, err
	}

	s := &Session{
		env:         env,
		baseURL:     env.BaseURL(),
		credentials: Credentials{KeyID: keyID, KeySecret: keySecret},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: DefaultUserAgent(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.timeout != nil {
		client := *s.httpClient
		client.Timeout = *s.timeout
		s.httpClient = &client
	}

	return s, nil
}

// Environment returns the environment the session talks to
func (s *Session) Environment() Environment {
	return s.env
}

// BaseURL returns the API root used for requests
func (s *Session) BaseURL() string {
	return s.baseURL
}

// LastResponse returns the most recent HTTP response, for diagnostics only.
// Its body has already been consumed.
func (s *Session) LastResponse() *http.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResponse
}

func (s *Session) setLastResponse(resp *http.Response) {
	s.mu.Lock()
	s.lastResponse = resp
	s.mu.Unlock()
}

// Clients returns the client resource bound to this session
func (s *Session) Clients() *ClientResource {
	return NewClientResource(s)
}

// Documents returns the document resource bound to this session
func (s *Session) Documents() *DocumentResource {
	return NewDocumentResource(s)
}

// Request performs an authenticated API call. A fresh token is fetched for
// every call. Non-2xx responses and undecodable payloads are returned as
// *APIError.
func (s *Session) Request(ctx context.Context, method, path string, body any) (*Response, error) {
	url := s.baseURL + path

	var payload []byte
	if !isNilBody(body) {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	token, err := s.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	s.logRequest(req, payload)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	s.logResponse(resp, raw, time.Since(start))
	s.setLastResponse(resp)

	decoded, err := decodeBody(resp.StatusCode, raw)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyErrorBody(resp.StatusCode, decoded)
	}

	return &Response{HTTP: resp, Raw: raw, Body: decoded}, nil
}

// decodeBody decodes a non-empty payload as JSON.
func decodeBody(statusCode int, raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, &APIError{StatusCode: statusCode, Description: string(raw)}
	}
	if dec.More() {
		return nil, &APIError{StatusCode: statusCode, Description: string(raw)}
	}
	return body, nil
}

// doJSON performs a request and decodes a non-empty success payload into
// out. It reports whether a payload was present.
func doJSON(ctx context.Context, r Requester, method, path string, body, out any) (bool, error) {
	resp, err := r.Request(ctx, method, path, body)
	if err != nil {
		return false, err
	}
	if resp.Body == nil || out == nil {
		return false, nil
	}
	if err := json.Unmarshal(resp.Raw, out); err != nil {
		return false, &APIError{StatusCode: resp.HTTP.StatusCode, Description: string(resp.Raw), Err: err}
	}
	return true, nil
}

// isNilBody reports whether body is nil or a nil pointer, map or slice.
// Such bodies are not sent.
func isNilBody(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
