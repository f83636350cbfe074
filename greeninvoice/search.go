package greeninvoice

// SearchResult is one page of a search. Callers page manually using Page,
// Pages and Total.
type SearchResult[T any] struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
	Items    []T `json:"items"`
}

// HasMorePages checks if there are more pages to fetch
func (r *SearchResult[T]) HasMorePages() bool {
	return r.Page < r.Pages
}
