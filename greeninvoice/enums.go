package greeninvoice

import (
	"fmt"
	"strconv"
	"strings"
)

// DocumentType identifies the kind of accounting document
type DocumentType int

const (
	DocumentTypePriceQuote          DocumentType = 10
	DocumentTypeOrder               DocumentType = 100
	DocumentTypeDeliveryNote        DocumentType = 200
	DocumentTypeReturnDeliveryNote  DocumentType = 210
	DocumentTypeTransactionAccount  DocumentType = 300
	DocumentTypeTaxInvoice          DocumentType = 305
	DocumentTypeTaxInvoiceReceipt   DocumentType = 320
	DocumentTypeRefund              DocumentType = 330
	DocumentTypeReceipt             DocumentType = 400
	DocumentTypeReceiptForDonation  DocumentType = 405
	DocumentTypePurchaseOrder       DocumentType = 500
	DocumentTypeReceiptOfADeposit   DocumentType = 600
	DocumentTypeWithdrawalOfDeposit DocumentType = 610
)

var documentTypeNames = map[DocumentType]string{
	DocumentTypePriceQuote:          "PRICE_QUOTE",
	DocumentTypeOrder:               "ORDER",
	DocumentTypeDeliveryNote:        "DELIVERY_NOTE",
	DocumentTypeReturnDeliveryNote:  "RETURN_DELIVERY_NOTE",
	DocumentTypeTransactionAccount:  "TRANSACTION_ACCOUNT",
	DocumentTypeTaxInvoice:          "TAX_INVOICE",
	DocumentTypeTaxInvoiceReceipt:   "TAX_INVOICE_RECEIPT",
	DocumentTypeRefund:              "REFUND",
	DocumentTypeReceipt:             "RECEIPT",
	DocumentTypeReceiptForDonation:  "RECEIPT_FOR_DONATION",
	DocumentTypePurchaseOrder:       "PURCHASE_ORDER",
	DocumentTypeReceiptOfADeposit:   "RECEIPT_OF_A_DEPOSIT",
	DocumentTypeWithdrawalOfDeposit: "WITHDRAWAL_OF_DEPOSIT",
}

// String returns the string representation of a DocumentType
func (dt DocumentType) String() string {
	if name, ok := documentTypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("DocumentType(%d)", int(dt))
}

// ParseDocumentType accepts a name such as "TAX_INVOICE" or a numeric code
func ParseDocumentType(s string) (DocumentType, error) {
	for dt, name := range documentTypeNames {
		if name == s {
			return dt, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := documentTypeNames[DocumentType(n)]; ok {
			return DocumentType(n), nil
		}
	}
	return 0, fmt.Errorf("unknown document type: %s", s)
}

// DocumentStatus is the lifecycle state of a document
type DocumentStatus int

const (
	DocumentStatusOpened                 DocumentStatus = 0
	DocumentStatusClosed                 DocumentStatus = 1
	DocumentStatusManuallyMarkedAsClosed DocumentStatus = 2
	DocumentStatusCancelingOtherDocument DocumentStatus = 3
	DocumentStatusCanceled               DocumentStatus = 4
)

// String returns the string representation of a DocumentStatus
func (ds DocumentStatus) String() string {
	switch ds {
	case DocumentStatusOpened:
		return "OPENED"
	case DocumentStatusClosed:
		return "CLOSED"
	case DocumentStatusManuallyMarkedAsClosed:
		return "MANUALLY_CLOSED"
	case DocumentStatusCancelingOtherDocument:
		return "CANCELING_OTHER"
	case DocumentStatusCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// ParseDocumentStatus accepts a name such as "OPENED" or a numeric code
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	for ds := DocumentStatusOpened; ds <= DocumentStatusCanceled; ds++ {
		if strings.EqualFold(ds.String(), s) {
			return ds, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= int(DocumentStatusOpened) && n <= int(DocumentStatusCanceled) {
		return DocumentStatus(n), nil
	}
	return 0, fmt.Errorf("unknown document status: %s", s)
}

// DocumentLanguage is the language a document is rendered in
type DocumentLanguage string

const (
	DocumentLanguageHebrew  DocumentLanguage = "he"
	DocumentLanguageEnglish DocumentLanguage = "en"
)

// Currency is an ISO 4217 currency code supported by the API
type Currency string

const (
	CurrencyILS Currency = "ILS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCHF Currency = "CHF"
	CurrencyCNY Currency = "CNY"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencyRUB Currency = "RUB"
	CurrencyBRL Currency = "BRL"
	CurrencyHKD Currency = "HKD"
	CurrencySGD Currency = "SGD"
	CurrencyTHB Currency = "THB"
	CurrencyMXN Currency = "MXN"
	CurrencyTRY Currency = "TRY"
	CurrencyNZD Currency = "NZD"
	CurrencySEK Currency = "SEK"
	CurrencyNOK Currency = "NOK"
	CurrencyDKK Currency = "DKK"
	CurrencyKRW Currency = "KRW"
	CurrencyINR Currency = "INR"
	CurrencyIDR Currency = "IDR"
	CurrencyPLN Currency = "PLN"
	CurrencyRON Currency = "RON"
	CurrencyZAR Currency = "ZAR"
	CurrencyHRK Currency = "HRK"
)

// DocumentVatType controls VAT for the whole document
type DocumentVatType int

const (
	// DocumentVatTypeDefault derives VAT from the business type
	DocumentVatTypeDefault DocumentVatType = 0
	// DocumentVatTypeExempt is VAT free
	DocumentVatTypeExempt DocumentVatType = 1
	// DocumentVatTypeMixed contains exempt and VAT-due income rows
	DocumentVatTypeMixed DocumentVatType = 2
)

// IncomeVatType controls VAT for a single income row
type IncomeVatType int

const (
	// IncomeVatTypeDefault adds VAT based on the business type
	IncomeVatTypeDefault IncomeVatType = 0
	// IncomeVatTypeIncluded means the price already includes VAT
	IncomeVatTypeIncluded IncomeVatType = 1
	// IncomeVatTypeExempt is VAT free
	IncomeVatTypeExempt IncomeVatType = 2
)

// DiscountType selects how a discount amount is applied
type DiscountType string

const (
	DiscountTypeSum        DiscountType = "sum"
	DiscountTypePercentage DiscountType = "percentage"
)

// DocumentLinkType describes how a document relates to linked documents
type DocumentLinkType string

const (
	DocumentLinkTypeLink   DocumentLinkType = "link"
	DocumentLinkTypeCancel DocumentLinkType = "cancel"
)

// PaymentDealType is the credit card deal kind
type PaymentDealType int

const (
	PaymentDealTypeRegular         PaymentDealType = 1
	PaymentDealTypeInstallments    PaymentDealType = 2
	PaymentDealTypeCredit          PaymentDealType = 3
	PaymentDealTypeBillingDeclined PaymentDealType = 4
	PaymentDealTypeOther           PaymentDealType = 5
)

// PaymentCardType is the credit card brand
type PaymentCardType int

const (
	PaymentCardTypeUnknown         PaymentCardType = 0
	PaymentCardTypeIsracard        PaymentCardType = 1
	PaymentCardTypeVisa            PaymentCardType = 2
	PaymentCardTypeMastercard      PaymentCardType = 3
	PaymentCardTypeAmericanExpress PaymentCardType = 4
	PaymentCardTypeDiners          PaymentCardType = 5
)

// PaymentType is the means of payment
type PaymentType int

const (
	PaymentTypeUnpaid                 PaymentType = -1
	PaymentTypeDeductionAtSource      PaymentType = 0
	PaymentTypeCash                   PaymentType = 1
	PaymentTypeCheck                  PaymentType = 2
	PaymentTypeCreditCard             PaymentType = 3
	PaymentTypeElectronicFundTransfer PaymentType = 4
	PaymentTypePayPal                 PaymentType = 5
	PaymentTypePaymentApp             PaymentType = 10
	PaymentTypeOther                  PaymentType = 11
)

// String returns the string representation of a PaymentType
func (pt PaymentType) String() string {
	switch pt {
	case PaymentTypeUnpaid:
		return "UNPAID"
	case PaymentTypeDeductionAtSource:
		return "DEDUCTION_AT_SOURCE"
	case PaymentTypeCash:
		return "CASH"
	case PaymentTypeCheck:
		return "CHECK"
	case PaymentTypeCreditCard:
		return "CREDIT_CARD"
	case PaymentTypeElectronicFundTransfer:
		return "ELECTRONIC_FUND_TRANSFER"
	case PaymentTypePayPal:
		return "PAYPAL"
	case PaymentTypePaymentApp:
		return "PAYMENT_APP"
	case PaymentTypeOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// BusinessType is the legal form of the issuing business
type BusinessType int

const (
	BusinessTypeOsekMurshe            BusinessType = 1
	BusinessTypeLtdCompany            BusinessType = 2
	BusinessTypeOsekPatur             BusinessType = 3
	BusinessTypeNonProfitOrganization BusinessType = 4
	BusinessTypePublicBenefitCompany  BusinessType = 5
	BusinessTypePartnership           BusinessType = 6
)

// DocumentSort is the sort key accepted by document search
type DocumentSort string

const (
	DocumentSortDocumentDate DocumentSort = "documentDate"
	DocumentSortCreationDate DocumentSort = "creationDate"
)

// Ptr returns a pointer to v, for optional draft and search fields
func Ptr[T any](v T) *T {
	return &v
}
