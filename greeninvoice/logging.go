package greeninvoice

import (
	"net/http"
	"strings"
	"time"
)

const redactedValue = "***REDACTED***"

// sensitiveHeaders are never written to the log verbatim.
var sensitiveHeaders = []string{
	"authorization",
	"x-authorization-bearer",
	"cookie",
	"set-cookie",
}

func (s *Session) logRequest(req *http.Request, body []byte) {
	if s.logger == nil {
		return
	}
	s.logger.Info().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Interface("headers", redactHeaders(req.Header)).
		Str("body", string(body)).
		Msg("GreenInvoice request")
}

func (s *Session) logResponse(resp *http.Response, body []byte, elapsed time.Duration) {
	if s.logger == nil {
		return
	}
	s.logger.Info().
		Int("status", resp.StatusCode).
		Interface("headers", redactHeaders(resp.Header)).
		Str("body", string(body)).
		Dur("took", elapsed).
		Msg("GreenInvoice response")
}

// redactHeaders flattens headers for logging, masking credentials.
func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		if isSensitiveHeader(key) {
			out[key] = redactedValue
			continue
		}
		out[key] = strings.Join(values, ", ")
	}
	return out
}

func isSensitiveHeader(key string) bool {
	lower := strings.ToLower(key)
	for _, name := range sensitiveHeaders {
		if lower == name {
			return true
		}
	}
	return false
}
