package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanivps/green-invoice/greeninvoice"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sampleSearch() *greeninvoice.ClientSearchResult {
	return &greeninvoice.ClientSearchResult{
		Total:    3,
		Page:     1,
		PageSize: 2,
		Pages:    2,
		Items: []greeninvoice.ClientSearchResultItem{
			{ID: "123", Name: "Acme", Emails: []string{"a@acme.test"}},
			{ID: "456", Name: "Globex", Active: greeninvoice.Ptr(false)},
		},
	}
}

func TestPrinter(t *testing.T) {
	result := sampleSearch()
	render := func(f *ConsoleFormatter) string { return f.FormatClientList(result) }

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatJSON, false).Print(result, render))
		assert.JSONEq(t, `{
			"total": 3, "page": 1, "pageSize": 2, "pages": 2,
			"items": [
				{"id": "123", "name": "Acme", "emails": ["a@acme.test"]},
				{"id": "456", "name": "Globex", "active": false}
			]
		}`, buf.String())
	})

	t.Run("yaml uses json names", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatYAML, false).Print(result, render))
		out := buf.String()
		assert.Contains(t, out, "pageSize: 2\n")
		assert.Contains(t, out, "id: \"123\"\n")
		assert.Contains(t, out, "- active: false\n")
		assert.NotContains(t, out, "PageSize")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable, true).Print(result, render))
		out := buf.String()
		assert.Contains(t, out, "Clients (2):")
		assert.Contains(t, out, "├── Acme [123]\n")
		assert.Contains(t, out, "│   Emails: a@acme.test\n")
		assert.Contains(t, out, "╰── Globex [456] (inactive)\n")
		assert.Contains(t, out, "Page 1 of 2 (3 total)")
	})
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter(true)

	assert.Equal(t, "No clients found", f.FormatClientList(&greeninvoice.ClientSearchResult{}))
	assert.Equal(t, "No documents found", f.FormatDocumentList(nil))

	t.Run("document list", func(t *testing.T) {
		out := f.FormatDocumentList(&greeninvoice.DocumentSearchResult{
			Page: 1, Pages: 1, Total: 1,
			Items: []greeninvoice.DocumentSearchResultItem{{
				ID:           "d1",
				Type:         greeninvoice.DocumentTypeTaxInvoice,
				Number:       "1001",
				Status:       greeninvoice.DocumentStatusOpened,
				DocumentDate: "2024-05-01",
				Amount:       117,
				AmountOpened: 117,
				Currency:     greeninvoice.CurrencyILS,
				Client:       &greeninvoice.DocumentSearchResultItemClient{Name: "Acme"},
			}},
		})
		assert.Contains(t, out, "Document (1):")
		assert.Contains(t, out, "╰── TAX_INVOICE #1001 [d1] OPENED\n")
		assert.Contains(t, out, "    Date: 2024-05-01 | Amount: 117.00 ILS | Open: 117.00\n")
		assert.Contains(t, out, "    Client: Acme\n")
		assert.NotContains(t, out, "Page ")
	})

	t.Run("created document", func(t *testing.T) {
		out := f.FormatCreatedDocument(&greeninvoice.CreatedDocument{
			ID:     "d1",
			Number: "1001",
			URL:    greeninvoice.DocumentURL{Origin: "https://files.example/d1.pdf"},
		})
		assert.Equal(t, "✓ Created document #1001 [d1]\n╰── Original: https://files.example/d1.pdf\n", out)
	})

	t.Run("client", func(t *testing.T) {
		out := f.FormatClient(&greeninvoice.Client{
			ClientDraft: greeninvoice.ClientDraft{Name: "Acme", City: "Haifa", Country: "IL"},
			ID:          "c1",
		})
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Acme [c1]", lines[0])
		assert.Equal(t, "├── Address: Haifa, IL", lines[1])
		assert.True(t, strings.HasPrefix(lines[2], "╰── Balance: 0.00"))
	})

	t.Run("delete confirmation", func(t *testing.T) {
		out := f.FormatIDsToDelete("Client", []string{"c1", "c2"})
		assert.Contains(t, out, "Clients to be deleted (2):")
		assert.Contains(t, out, "├── c1\n╰── c2\n")
	})
}
