package greeninvoice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentResource_Create(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/documents", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{
			"type": 320,
			"lang": "he",
			"currency": "ILS",
			"client": {"id": "c1", "add": false},
			"income": [{"description": "Consulting", "quantity": 2, "price": 150, "currency": "ILS", "vatType": 0}]
		}`, string(body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "d1", "number": 1001, "url": {"origin": "https://files.example/d1.pdf"}}`))
	})
	documents := newTestSession(t, server.URL).Documents()

	created, err := documents.Create(context.Background(), DocumentDraft{
		Type:     DocumentTypeTaxInvoiceReceipt,
		Lang:     DocumentLanguageHebrew,
		Currency: CurrencyILS,
		Client:   &DocumentClient{ID: "c1", Add: Ptr(false)},
		Income: []DocumentIncome{{
			Description: "Consulting",
			Quantity:    2,
			Price:       150,
			Currency:    CurrencyILS,
			VatType:     Ptr(IncomeVatTypeDefault),
		}},
	})
	require.NoError(t, err)

	expected := &CreatedDocument{
		ID:     "d1",
		Number: "1001",
		URL:    DocumentURL{Origin: "https://files.example/d1.pdf"},
	}
	assert.Equal(t, expected, created)
}

func TestDocumentResource_Find(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/documents/d1", r.URL.Path)
		w.Write([]byte(`{"id": "d1", "type": 305, "number": "1001", "status": 1, "amount": 117, "currency": "ILS", "client": {"name": "Acme"}}`))
	})
	documents := newTestSession(t, server.URL).Documents()

	doc, err := documents.Find(context.Background(), "d1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, DocumentTypeTaxInvoice, doc.Type)
	assert.Equal(t, DocumentStatusClosed, doc.Status)
	assert.Equal(t, json.Number("1001"), doc.Number)
	assert.Equal(t, 117.0, doc.Amount)
	require.NotNil(t, doc.Client)
	assert.Equal(t, "Acme", doc.Client.Name)
}

func TestDocumentResource_FindNumberEncodings(t *testing.T) {
	for _, payload := range []string{
		`{"id": "d1", "number": 1001, "status": 0}`,
		`{"id": "d1", "number": "1001", "status": 0}`,
	} {
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		})
		documents := newTestSession(t, server.URL).Documents()

		doc, err := documents.Find(context.Background(), "d1")
		require.NoError(t, err, payload)
		require.NotNil(t, doc)
		assert.Equal(t, "1001", doc.Number.String())
		assert.Equal(t, DocumentStatusOpened, doc.Status)
	}
}

func TestDocumentResource_UnexpectedShape(t *testing.T) {
	payload := `{"id": "d1", "status": "open"}`
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	documents := newTestSession(t, server.URL).Documents()

	doc, err := documents.Find(context.Background(), "d1")
	assert.Nil(t, doc)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, payload, apiErr.Description)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestDocumentResource_Search(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/documents/search", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"page": 2, "pageSize": 10, "type": [305, 320], "status": [0], "sort": "documentDate"}`, string(body))

		w.Write([]byte(`{
			"total": 25, "page": 2, "pageSize": 10, "pages": 3,
			"items": [{
				"id": "d9", "type": 305, "status": 0, "amount": 50,
				"income": [{"description": "Hours", "price": 50, "amountTotal": 58.5}],
				"payment": [{"type": 4, "price": 58.5}]
			}]
		}`))
	})
	documents := newTestSession(t, server.URL).Documents()

	result, err := documents.Search(context.Background(), DocumentSearchFields{
		Page:     2,
		PageSize: 10,
		Type:     []DocumentType{DocumentTypeTaxInvoice, DocumentTypeTaxInvoiceReceipt},
		Status:   []DocumentStatus{DocumentStatusOpened},
		Sort:     DocumentSortDocumentDate,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, result.Total)
	assert.True(t, result.HasMorePages())
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.Equal(t, "d9", item.ID)
	assert.Equal(t, DocumentStatusOpened, item.Status)
	require.Len(t, item.Income, 1)
	assert.Equal(t, "Hours", item.Income[0].Description)
	assert.Equal(t, 58.5, item.Income[0].AmountTotal)
	require.Len(t, item.Payment, 1)
	assert.Equal(t, PaymentTypeElectronicFundTransfer, item.Payment[0].Type)
}

func TestDocumentResource_DownloadLinks(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/documents/d1/download/links", r.URL.Path)
		w.Write([]byte(`{"he": "https://files.example/he.pdf", "en": "https://files.example/en.pdf", "origin": "https://files.example/d1.pdf"}`))
	})
	documents := newTestSession(t, server.URL).Documents()

	links, err := documents.DownloadLinks(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, &DocumentURL{
		Origin: "https://files.example/d1.pdf",
		He:     "https://files.example/he.pdf",
		En:     "https://files.example/en.pdf",
	}, links)
}

func TestDocumentResource_ValidationError(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"messages": {"message": [{"description": "Missing client", "code": 2002}, {"description": "Missing income"}]}}`))
	})
	documents := newTestSession(t, server.URL).Documents()

	created, err := documents.Create(context.Background(), DocumentDraft{Type: DocumentTypeReceipt})
	assert.Nil(t, created)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, []Message{
		{Description: "Missing client", Code: "2002"},
		{Description: "Missing income"},
	}, apiErr.Messages)
}
