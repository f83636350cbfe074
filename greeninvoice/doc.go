// Package greeninvoice provides a client for the Green Invoice invoicing API.
//
// The package covers authentication, client records and documents. Every
// call fetches a fresh bearer token from /v1/account/token and then performs
// the request, so one logical call is two sequential HTTP round trips.
//
// # Usage
//
// Create a session for an environment and wrap it in a resource:
//
//	logger := zerolog.New(os.Stdout)
//	session, err := greeninvoice.NewSession(
//		greeninvoice.EnvironmentSandbox,
//		"api-key-id",
//		"api-key-secret",
//		greeninvoice.WithLogger(logger),
//		greeninvoice.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	result, err := session.Clients().Search(ctx, greeninvoice.ClientSearchFields{
//		Name:     "Acme",
//		Page:     1,
//		PageSize: 20,
//	})
//
// Search results are single pages; use Page, Pages and Total to request
// further pages.
//
// A process-wide default session is available through Configure and
// Default for code that cannot carry a *Session around.
//
// # Error Handling
//
//   - *ConfigurationError: invalid environment or unconfigured default session
//   - *AuthenticationError: the token call failed or returned no token
//   - *APIError: non-2xx status or a body that is not JSON
//   - *CardError: reserved for card payment failures
//
// API errors carry the status code and either a description with an
// optional code or a list of messages:
//
//	var apiErr *greeninvoice.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing record
//	}
package greeninvoice
