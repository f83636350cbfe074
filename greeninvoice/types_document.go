package greeninvoice

import "encoding/json"

// Discount applied to a whole document
type Discount struct {
	Amount float64      `json:"amount"`
	Type   DiscountType `json:"type,omitempty"`
}

// DocumentPayment is a payment row of a receipt-type document
type DocumentPayment struct {
	Date          string           `json:"date,omitempty"`
	Type          *PaymentType     `json:"type,omitempty"`
	Price         float64          `json:"price,omitempty"`
	Currency      Currency         `json:"currency,omitempty"`
	CurrencyRate  float64          `json:"currencyRate,omitempty"`
	BankName      string           `json:"bankName,omitempty"`
	BankBranch    string           `json:"bankBranch,omitempty"`
	BankAccount   string           `json:"bankAccount,omitempty"`
	ChequeNum     string           `json:"chequeNum,omitempty"`
	AccountID     string           `json:"accountId,omitempty"`
	TransactionID string           `json:"transactionId,omitempty"`
	CardType      *PaymentCardType `json:"cardType,omitempty"`
	CardNum       string           `json:"cardNum,omitempty"`
	DealType      PaymentDealType  `json:"dealType,omitempty"`
	// NumPayments is the credit card installment count
	NumPayments int `json:"numPayments,omitempty"`
	// FirstPayment is the first credit card installment amount
	FirstPayment float64 `json:"firstPayment,omitempty"`
}

// DocumentIncome is an income (line item) row
type DocumentIncome struct {
	CatalogNum   string         `json:"catalogNum,omitempty"`
	Description  string         `json:"description,omitempty"`
	Quantity     float64        `json:"quantity,omitempty"`
	Price        float64        `json:"price,omitempty"`
	Currency     Currency       `json:"currency,omitempty"`
	CurrencyRate float64        `json:"currencyRate,omitempty"`
	VatRate      float64        `json:"vatRate,omitempty"`
	ItemID       string         `json:"itemId,omitempty"`
	VatType      *IncomeVatType `json:"vatType,omitempty"`
}

// DocumentClient is the client as embedded in a document. Add creates the
// client record on the fly; Self marks the business itself as the recipient.
type DocumentClient struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name,omitempty"`
	TaxID      string   `json:"taxId,omitempty"`
	Department string   `json:"department,omitempty"`
	Address    string   `json:"address,omitempty"`
	City       string   `json:"city,omitempty"`
	Zip        string   `json:"zip,omitempty"`
	Country    string   `json:"country,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Fax        string   `json:"fax,omitempty"`
	Mobile     string   `json:"mobile,omitempty"`
	Emails     []string `json:"emails,omitempty"`
	Add        *bool    `json:"add,omitempty"`
	Self       *bool    `json:"self,omitempty"`
}

// DocumentBusiness is the issuing business as embedded in a document
type DocumentBusiness struct {
	Type            BusinessType `json:"type,omitempty"`
	TaxID           string       `json:"taxId,omitempty"`
	Name            string       `json:"name,omitempty"`
	Title           string       `json:"title,omitempty"`
	Address         string       `json:"address,omitempty"`
	City            string       `json:"city,omitempty"`
	Zip             string       `json:"zip,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Fax             string       `json:"fax,omitempty"`
	Mobile          string       `json:"mobile,omitempty"`
	Website         string       `json:"website,omitempty"`
	Email           string       `json:"email,omitempty"`
	BankName        string       `json:"bankName,omitempty"`
	BankBranch      string       `json:"bankBranch,omitempty"`
	BankAccount     string       `json:"bankAccount,omitempty"`
	BankSwift       string       `json:"bankSwift,omitempty"`
	BankAba         string       `json:"bankAba,omitempty"`
	BankIban        string       `json:"bankIban,omitempty"`
	BankBeneficiary string       `json:"bankBeneficiary,omitempty"`
	Exemption       bool         `json:"exemption,omitempty"`
}

// DocumentDraft describes a document to create
type DocumentDraft struct {
	Description       string            `json:"description,omitempty"`
	Remarks           string            `json:"remarks,omitempty"`
	Footer            string            `json:"footer,omitempty"`
	EmailContent      string            `json:"emailContent,omitempty"`
	Type              DocumentType      `json:"type,omitempty"`
	Date              string            `json:"date,omitempty"`
	DueDate           string            `json:"dueDate,omitempty"`
	Lang              DocumentLanguage  `json:"lang,omitempty"`
	Currency          Currency          `json:"currency,omitempty"`
	VatType           *DocumentVatType  `json:"vatType,omitempty"`
	Discount          *Discount         `json:"discount,omitempty"`
	Rounding          *bool             `json:"rounding,omitempty"`
	Signed            *bool             `json:"signed,omitempty"`
	Attachment        *bool             `json:"attachment,omitempty"`
	MaxPayments       int               `json:"maxPayments,omitempty"`
	Client            *DocumentClient   `json:"client,omitempty"`
	Income            []DocumentIncome  `json:"income,omitempty"`
	Payment           []DocumentPayment `json:"payment,omitempty"`
	LinkedDocumentIDs []string          `json:"linkedDocumentIds,omitempty"`
	LinkedPaymentID   string            `json:"linkedPaymentId,omitempty"`
	LinkType          DocumentLinkType  `json:"linkType,omitempty"`
}

// DocumentURL holds download links keyed by origin and locale
type DocumentURL struct {
	Origin string `json:"origin,omitempty"`
	He     string `json:"he,omitempty"`
	En     string `json:"en,omitempty"`
}

// CreatedDocument is the summary returned after creating a document
type CreatedDocument struct {
	ID     string           `json:"id,omitempty"`
	Number json.Number      `json:"number,omitempty"`
	Signed bool             `json:"signed,omitempty"`
	Lang   DocumentLanguage `json:"lang,omitempty"`
	URL    DocumentURL      `json:"url"`
}

// Document is a full document record
type Document struct {
	ID                string            `json:"id,omitempty"`
	Description       string            `json:"description,omitempty"`
	Type              DocumentType      `json:"type,omitempty"`
	Number            json.Number       `json:"number,omitempty"`
	DocumentDate      string            `json:"documentDate,omitempty"`
	CreationDate      int64             `json:"creationDate,omitempty"`
	Status            DocumentStatus    `json:"status"`
	Lang              DocumentLanguage  `json:"lang,omitempty"`
	AmountDueVat      float64           `json:"amountDueVat,omitempty"`
	AmountExemptVat   float64           `json:"amountExemptVat,omitempty"`
	AmountExcludedVat float64           `json:"amountExcludedVat,omitempty"`
	AmountLocal       float64           `json:"amountLocal,omitempty"`
	AmountOpened      float64           `json:"amountOpened,omitempty"`
	Vat               float64           `json:"vat,omitempty"`
	Amount            float64           `json:"amount,omitempty"`
	Currency          Currency          `json:"currency,omitempty"`
	CurrencyRate      float64           `json:"currencyRate,omitempty"`
	VatType           DocumentVatType   `json:"vatType"`
	Income            []DocumentIncome  `json:"income,omitempty"`
	Payment           []DocumentPayment `json:"payment,omitempty"`
	Client            *DocumentClient   `json:"client,omitempty"`
	Business          *DocumentBusiness `json:"business,omitempty"`
	URL               *DocumentURL      `json:"url,omitempty"`
	Footer            string            `json:"footer,omitempty"`
	Remarks           string            `json:"remarks,omitempty"`
	Rounding          bool              `json:"rounding,omitempty"`
	Ref               []DocumentType    `json:"ref,omitempty"`
	Signed            bool              `json:"signed,omitempty"`
	Cancellable       bool              `json:"cancellable,omitempty"`
	Discount          *Discount         `json:"discount,omitempty"`
}

// DocumentSearchFields filters a document search
type DocumentSearchFields struct {
	Page         int              `json:"page,omitempty"`
	PageSize     int              `json:"pageSize,omitempty"`
	Number       int64            `json:"number,omitempty"`
	Type         []DocumentType   `json:"type,omitempty"`
	Status       []DocumentStatus `json:"status,omitempty"`
	PaymentTypes []PaymentType    `json:"paymentTypes,omitempty"`
	FromDate     string           `json:"fromDate,omitempty"`
	ToDate       string           `json:"toDate,omitempty"`
	ClientID     string           `json:"clientId,omitempty"`
	ClientName   string           `json:"clientName,omitempty"`
	Description  string           `json:"description,omitempty"`
	Download     *bool            `json:"download,omitempty"`
	Sort         DocumentSort     `json:"sort,omitempty"`
}

// DocumentSearchResultItemIncome is an income row with computed totals
type DocumentSearchResultItemIncome struct {
	DocumentIncome
	Vat         float64 `json:"vat,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	AmountTotal float64 `json:"amountTotal,omitempty"`
}

// DocumentSearchResultItemPayment is the payment summary in search results
type DocumentSearchResultItemPayment struct {
	Name        string         `json:"name,omitempty"`
	Type        PaymentType    `json:"type"`
	Price       float64        `json:"price,omitempty"`
	Ref         []DocumentType `json:"ref,omitempty"`
	Cancellable bool           `json:"cancellable,omitempty"`
}

// DocumentSearchResultItemClient is the client summary in search results
type DocumentSearchResultItemClient struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name,omitempty"`
	Emails []string `json:"emails,omitempty"`
	TaxID  string   `json:"taxId,omitempty"`
	Self   bool     `json:"self,omitempty"`
}

// DocumentSearchResultItemBusiness is the business summary in search results
type DocumentSearchResultItemBusiness struct {
	Type      BusinessType `json:"type,omitempty"`
	Exemption bool         `json:"exemption,omitempty"`
}

// DocumentSearchResultItem is the summary of a document in search results
type DocumentSearchResultItem struct {
	ID                string                            `json:"id,omitempty"`
	Description       string                            `json:"description,omitempty"`
	Type              DocumentType                      `json:"type,omitempty"`
	Number            json.Number                       `json:"number,omitempty"`
	DocumentDate      string                            `json:"documentDate,omitempty"`
	CreationDate      int64                             `json:"creationDate,omitempty"`
	Status            DocumentStatus                    `json:"status"`
	Lang              DocumentLanguage                  `json:"lang,omitempty"`
	AmountDueVat      float64                           `json:"amountDueVat,omitempty"`
	AmountExemptVat   float64                           `json:"amountExemptVat,omitempty"`
	AmountExcludedVat float64                           `json:"amountExcludedVat,omitempty"`
	AmountLocal       float64                           `json:"amountLocal,omitempty"`
	AmountOpened      float64                           `json:"amountOpened,omitempty"`
	Vat               float64                           `json:"vat,omitempty"`
	Amount            float64                           `json:"amount,omitempty"`
	Currency          Currency                          `json:"currency,omitempty"`
	CurrencyRate      float64                           `json:"currencyRate,omitempty"`
	VatType           DocumentVatType                   `json:"vatType"`
	Income            []DocumentSearchResultItemIncome  `json:"income,omitempty"`
	Payment           []DocumentSearchResultItemPayment `json:"payment,omitempty"`
	Client            *DocumentSearchResultItemClient   `json:"client,omitempty"`
	Business          *DocumentSearchResultItemBusiness `json:"business,omitempty"`
	URL               *DocumentURL                      `json:"url,omitempty"`
}

// DocumentSearchResult is a page of document search results
type DocumentSearchResult = SearchResult[DocumentSearchResultItem]
