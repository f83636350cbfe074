package greeninvoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIDFromPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		wantID string
		wantOK bool
	}{
		{name: "relative path", path: "/v1/clients/123", wantID: "123", wantOK: true},
		{name: "full url", path: "https://api.greeninvoice.co.il/api/v1/clients/abc-1", wantID: "abc-1", wantOK: true},
		{name: "sub resource", path: "/v1/clients/123/assoc", wantID: "123", wantOK: true},
		{name: "query string", path: "/v1/clients/123?x=1", wantID: "123", wantOK: true},
		{name: "escaped", path: "/v1/clients/a%2Fb", wantID: "a/b", wantOK: true},
		{name: "search", path: "/v1/clients/search", wantOK: false},
		{name: "collection", path: "/v1/clients", wantOK: false},
		{name: "documents", path: "/v1/documents/123", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ClientIDFromPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestDocumentIDFromPath(t *testing.T) {
	id, ok := DocumentIDFromPath("/v1/documents/d1/download/links")
	assert.True(t, ok)
	assert.Equal(t, "d1", id)

	_, ok = DocumentIDFromPath("/v1/documents/search")
	assert.False(t, ok)
}

func TestResourcePaths(t *testing.T) {
	assert.Equal(t, "/v1/clients/123", clientPath("123"))
	assert.Equal(t, "/v1/clients/a%2Fb", clientPath("a/b"))
	assert.Equal(t, "/v1/documents/d%201", documentPath("d 1"))
}
