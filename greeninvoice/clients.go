package greeninvoice

import (
	"context"
	"net/http"
)

// ClientResource maps the /v1/clients endpoints to typed calls.
type ClientResource struct {
	requester Requester
}

// NewClientResource creates a client resource bound to r
func NewClientResource(r Requester) *ClientResource {
	return &ClientResource{requester: r}
}

// Find retrieves a client by id
func (c *ClientResource) Find(ctx context.Context, clientID string) (*Client, error) {
	return decodeInto[Client](ctx, c.requester, http.MethodGet, clientPath(clientID), nil)
}

// Search returns one page of clients matching params
func (c *ClientResource) Search(ctx context.Context, params ClientSearchFields) (*ClientSearchResult, error) {
	return decodeInto[ClientSearchResult](ctx, c.requester, http.MethodPost, clientsPath+"/search", params)
}

// Create creates a new client and returns the stored record
func (c *ClientResource) Create(ctx context.Context, draft ClientDraft) (*Client, error) {
	return decodeInto[Client](ctx, c.requester, http.MethodPost, clientsPath, draft)
}

// Update replaces the writable fields of an existing client
func (c *ClientResource) Update(ctx context.Context, clientID string, draft ClientDraft) (*Client, error) {
	return decodeInto[Client](ctx, c.requester, http.MethodPut, clientPath(clientID), draft)
}

// Delete deletes a client and returns the deleted record
func (c *ClientResource) Delete(ctx context.Context, clientID string) (*Client, error) {
	return decodeInto[Client](ctx, c.requester, http.MethodDelete, clientPath(clientID), nil)
}

// AssociateDocuments links existing documents to a client. The response body
// is ignored; success is the HTTP status.
func (c *ClientResource) AssociateDocuments(ctx context.Context, clientID string, documentIDs []string) (bool, error) {
	if documentIDs == nil {
		documentIDs = []string{}
	}
	resp, err := c.requester.Request(ctx, http.MethodPost, clientPath(clientID)+"/assoc", associateRequest{IDs: documentIDs})
	if err != nil {
		return false, err
	}
	return resp.HTTP.StatusCode >= 200 && resp.HTTP.StatusCode < 300, nil
}

// decodeInto runs a request and decodes the payload into a new T. An empty
// payload yields nil.
func decodeInto[T any](ctx context.Context, r Requester, method, path string, body any) (*T, error) {
	out := new(T)
	present, err := doJSON(ctx, r, method, path, body, out)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return out, nil
}
