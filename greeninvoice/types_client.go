package greeninvoice

// ClientDraft is the writable part of a client record, used for create and update.
type ClientDraft struct {
	Name          string        `json:"name,omitempty"`
	Active        *bool         `json:"active,omitempty"`
	Department    string        `json:"department,omitempty"`
	TaxID         string        `json:"taxId,omitempty"`
	AccountingKey string        `json:"accountingKey,omitempty"`
	PaymentTerms  *PaymentTerms `json:"paymentTerms,omitempty"`
	BankName      string        `json:"bankName,omitempty"`
	BankBranch    string        `json:"bankBranch,omitempty"`
	BankAccount   string        `json:"bankAccount,omitempty"`
	Send          *bool         `json:"send,omitempty"`
	Address       string        `json:"address,omitempty"`
	City          string        `json:"city,omitempty"`
	Zip           string        `json:"zip,omitempty"`
	Country       string        `json:"country,omitempty"`
	Category      *Category     `json:"category,omitempty"`
	SubCategory   *SubCategory  `json:"subCategory,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	Fax           string        `json:"fax,omitempty"`
	Mobile        string        `json:"mobile,omitempty"`
	Remarks       string        `json:"remarks,omitempty"`
	ContactPerson string        `json:"contactPerson,omitempty"`
	Emails        []string      `json:"emails,omitempty"`
	Labels        []string      `json:"labels,omitempty"`
}

// Client is a full client record as returned by the API.
type Client struct {
	ClientDraft
	ID             string  `json:"id,omitempty"`
	CreationDate   int64   `json:"creationDate,omitempty"`
	LastUpdateDate int64   `json:"lastUpdateDate,omitempty"`
	IncomeAmount   float64 `json:"incomeAmount,omitempty"`
	PaymentAmount  float64 `json:"paymentAmount,omitempty"`
	BalanceAmount  float64 `json:"balanceAmount,omitempty"`
}

// ClientSearchFields filters a client search. Page and PageSize select the result page.
type ClientSearchFields struct {
	Name          string   `json:"name,omitempty"`
	Active        *bool    `json:"active,omitempty"`
	Email         string   `json:"email,omitempty"`
	ContactPerson string   `json:"contactPerson,omitempty"`
	Labels        []string `json:"labels,omitempty"`
	TaxID         string   `json:"taxId,omitempty"`
	Page          int      `json:"page,omitempty"`
	PageSize      int      `json:"pageSize,omitempty"`
}

// ClientSearchResultItem is the summary of a client in search results.
type ClientSearchResultItem struct {
	ID             string        `json:"id,omitempty"`
	Name           string        `json:"name,omitempty"`
	Active         *bool         `json:"active,omitempty"`
	TaxID          string        `json:"taxId,omitempty"`
	PaymentTerms   *PaymentTerms `json:"paymentTerms,omitempty"`
	BankName       string        `json:"bankName,omitempty"`
	BankBranch     string        `json:"bankBranch,omitempty"`
	BankAccount    string        `json:"bankAccount,omitempty"`
	Country        string        `json:"country,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Mobile         string        `json:"mobile,omitempty"`
	ContactPerson  string        `json:"contactPerson,omitempty"`
	Emails         []string      `json:"emails,omitempty"`
	Labels         []string      `json:"labels,omitempty"`
	CreationDate   int64         `json:"creationDate,omitempty"`
	LastUpdateDate int64         `json:"lastUpdateDate,omitempty"`
}

// ClientSearchResult is a page of client search results
type ClientSearchResult = SearchResult[ClientSearchResultItem]

type associateRequest struct {
	IDs []string `json:"ids"`
}
