package greeninvoice

import "sync"

var (
	defaultMu      sync.RWMutex
	defaultSession *Session
)

// Configure creates a session and installs it as the process-wide default.
// Prefer passing a *Session explicitly; the default exists for convenience.
func Configure(env Environment, keyID, keySecret string, opts ...Option) (*Session, error) {
	s, err := NewSession(env, keyID, keySecret, opts...)
	if err != nil {
		return nil, err
	}

	defaultMu.Lock()
	defaultSession = s
	defaultMu.Unlock()

	return s, nil
}

// Default returns the session installed by Configure
func Default() (*Session, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultSession == nil {
		return nil, &ConfigurationError{Err: ErrNotConfigured}
	}
	return defaultSession, nil
}

// DefaultClients returns a client resource bound to the default session
func DefaultClients() (*ClientResource, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Clients(), nil
}

// DefaultDocuments returns a document resource bound to the default session
func DefaultDocuments() (*DocumentResource, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Documents(), nil
}

