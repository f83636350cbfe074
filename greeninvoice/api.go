package greeninvoice

import (
	"context"
)

// Requester performs authenticated API calls. *Session implements it.
type Requester interface {
	Request(ctx context.Context, method, path string, body any) (*Response, error)
}

// ClientAPI defines the client resource operations
type ClientAPI interface {
	Find(ctx context.Context, clientID string) (*Client, error)
	Search(ctx context.Context, params ClientSearchFields) (*ClientSearchResult, error)
	Create(ctx context.Context, draft ClientDraft) (*Client, error)
	Update(ctx context.Context, clientID string, draft ClientDraft) (*Client, error)
	Delete(ctx context.Context, clientID string) (*Client, error)
	AssociateDocuments(ctx context.Context, clientID string, documentIDs []string) (bool, error)
}

// DocumentAPI defines the document resource operations
type DocumentAPI interface {
	Find(ctx context.Context, documentID string) (*Document, error)
	Search(ctx context.Context, params DocumentSearchFields) (*DocumentSearchResult, error)
	Create(ctx context.Context, draft DocumentDraft) (*CreatedDocument, error)
	DownloadLinks(ctx context.Context, documentID string) (*DocumentURL, error)
}

var (
	_ Requester   = (*Session)(nil)
	_ ClientAPI   = (*ClientResource)(nil)
	_ DocumentAPI = (*DocumentResource)(nil)
)
