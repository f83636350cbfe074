package greeninvoice

import (
	"context"
	"net/http"
)

// DocumentResource maps the /v1/documents endpoints to typed calls.
type DocumentResource struct {
	requester Requester
}

// NewDocumentResource creates a document resource bound to r
func NewDocumentResource(r Requester) *DocumentResource {
	return &DocumentResource{requester: r}
}

// Find retrieves a document by id
func (d *DocumentResource) Find(ctx context.Context, documentID string) (*Document, error) {
	return decodeInto[Document](ctx, d.requester, http.MethodGet, documentPath(documentID), nil)
}

// Search returns one page of documents matching params
func (d *DocumentResource) Search(ctx context.Context, params DocumentSearchFields) (*DocumentSearchResult, error) {
	return decodeInto[DocumentSearchResult](ctx, d.requester, http.MethodPost, documentsPath+"/search", params)
}

// Create issues a new document
func (d *DocumentResource) Create(ctx context.Context, draft DocumentDraft) (*CreatedDocument, error) {
	return decodeInto[CreatedDocument](ctx, d.requester, http.MethodPost, documentsPath, draft)
}

// DownloadLinks returns the download URLs of a document
func (d *DocumentResource) DownloadLinks(ctx context.Context, documentID string) (*DocumentURL, error) {
	return decodeInto[DocumentURL](ctx, d.requester, http.MethodGet, documentPath(documentID)+"/download/links", nil)
}
