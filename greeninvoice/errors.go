package greeninvoice

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidEnvironment indicates an environment other than live or sandbox
	ErrInvalidEnvironment = errors.New("invalid green invoice environment")
	// ErrNotConfigured indicates the default session was used before Configure
	ErrNotConfigured = errors.New("green invoice client not configured yet, call greeninvoice.Configure()")
	// ErrMissingToken indicates the token endpoint answered without a bearer header
	ErrMissingToken = errors.New("no bearer token in authentication response")
)

// ConfigurationError reports invalid or missing setup.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// AuthenticationError reports a failed token fetch.
type AuthenticationError struct {
	StatusCode int
	Err        error
}

func (e *AuthenticationError) Error() string {
	var sb strings.Builder
	sb.WriteString("green invoice authentication failed")
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status %d", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Message is a single entry of a multi-message API error.
type Message struct {
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// APIError represents a non-2xx or undecodable response from the API.
// Either Description (with an optional Code) or Messages is set. Err holds
// the decoding failure when a success payload did not fit its record.
type APIError struct {
	StatusCode  int
	Description string
	Code        string
	Messages    []Message
	Err         error
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Description
	if len(e.Messages) > 0 {
		parts := make([]string, 0, len(e.Messages))
		for _, m := range e.Messages {
			if m.Code != "" {
				parts = append(parts, fmt.Sprintf("%s (code %s)", m.Description, m.Code))
			} else {
				parts = append(parts, m.Description)
			}
		}
		msg = strings.Join(parts, "; ")
	} else if e.Code != "" {
		msg = fmt.Sprintf("%s (code %s)", e.Description, e.Code)
	}
	return fmt.Sprintf("green invoice API error: status %d: %s", e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// CardError is reserved for card payment failures. No request path in this
// package produces it yet.
type CardError struct {
	APIError
}

func (e *CardError) Error() string {
	return "card error: " + e.APIError.Error()
}

func (e *CardError) Unwrap() error {
	return &e.APIError
}

// IsNotFound returns true if err is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsNotFound()
	}
	return false
}

// IsUnauthorized returns true for authentication failures and 401/403 API errors
func IsUnauthorized(err error) bool {
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsUnauthorized()
	}
	return false
}

// IsServerError returns true if err is an APIError with a 5xx status
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
