package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/yanivps/green-invoice/greeninvoice"
)

// ConsoleFormatter renders API records as trees for terminal display
type ConsoleFormatter struct {
	showDetails bool
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(showDetails bool) *ConsoleFormatter {
	return &ConsoleFormatter{showDetails: showDetails}
}

// treeBranch returns the entry prefix and the indent for its detail lines
func treeBranch(isLast bool) (string, string) {
	if isLast {
		return "\u2570\u2500\u2500 ", "    "
	}
	return "\u251c\u2500\u2500 ", "\u2502   "
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func pageFooter(sb *strings.Builder, page, pages, total int) {
	if pages > 1 {
		fmt.Fprintf(sb, "Page %d of %d (%d total)\n", page, pages, total)
	}
}

// FormatClientList formats one page of client search results
func (f *ConsoleFormatter) FormatClientList(result *greeninvoice.ClientSearchResult) string {
	if result == nil || len(result.Items) == 0 {
		return "No clients found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", plural(len(result.Items), "Client"), len(result.Items))

	for i, c := range result.Items {
		isLast := i == len(result.Items)-1
		prefix, indent := treeBranch(isLast)

		fmt.Fprintf(&sb, "%s%s [%s]", prefix, c.Name, c.ID)
		if c.Active != nil && !*c.Active {
			sb.WriteString(" (inactive)")
		}
		sb.WriteString("\n")

		if f.showDetails {
			if c.TaxID != "" {
				fmt.Fprintf(&sb, "%sTax ID: %s\n", indent, c.TaxID)
			}
			if len(c.Emails) > 0 {
				fmt.Fprintf(&sb, "%sEmails: %s\n", indent, strings.Join(c.Emails, ", "))
			}
			if len(c.Labels) > 0 {
				fmt.Fprintf(&sb, "%sLabels: %s\n", indent, strings.Join(c.Labels, ", "))
			}
			if c.CreationDate > 0 {
				fmt.Fprintf(&sb, "%sCreated: %s\n", indent, formatUnix(c.CreationDate))
			}
		}

		if !isLast {
			sb.WriteString("\u2502\n")
		}
	}

	sb.WriteString("\n")
	pageFooter(&sb, result.Page, result.Pages, result.Total)
	return sb.String()
}

// FormatClient formats a single client record
func (f *ConsoleFormatter) FormatClient(c *greeninvoice.Client) string {
	if c == nil {
		return "No client returned"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]\n", c.Name, c.ID)

	var lines []string
	if c.TaxID != "" {
		lines = append(lines, "Tax ID: "+c.TaxID)
	}
	if c.ContactPerson != "" {
		lines = append(lines, "Contact: "+c.ContactPerson)
	}
	if len(c.Emails) > 0 {
		lines = append(lines, "Emails: "+strings.Join(c.Emails, ", "))
	}
	if c.Phone != "" || c.Mobile != "" {
		lines = append(lines, "Phone: "+strings.TrimSpace(c.Phone+" "+c.Mobile))
	}
	if addr := joinNonEmpty(", ", c.Address, c.City, c.Zip, c.Country); addr != "" {
		lines = append(lines, "Address: "+addr)
	}
	if c.PaymentTerms != nil {
		lines = append(lines, fmt.Sprintf("Payment terms: %d", *c.PaymentTerms))
	}
	lines = append(lines, fmt.Sprintf("Balance: %.2f (income %.2f, paid %.2f)", c.BalanceAmount, c.IncomeAmount, c.PaymentAmount))

	writeTree(&sb, lines)
	return sb.String()
}

// FormatDocumentList formats one page of document search results
func (f *ConsoleFormatter) FormatDocumentList(result *greeninvoice.DocumentSearchResult) string {
	if result == nil || len(result.Items) == 0 {
		return "No documents found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", plural(len(result.Items), "Document"), len(result.Items))

	for i, d := range result.Items {
		isLast := i == len(result.Items)-1
		prefix, indent := treeBranch(isLast)

		fmt.Fprintf(&sb, "%s%s #%s [%s] %s\n", prefix, d.Type, d.Number, d.ID, d.Status)

		if f.showDetails {
			var parts []string
			if d.DocumentDate != "" {
				parts = append(parts, "Date: "+d.DocumentDate)
			}
			parts = append(parts, fmt.Sprintf("Amount: %.2f %s", d.Amount, d.Currency))
			if d.AmountOpened > 0 {
				parts = append(parts, fmt.Sprintf("Open: %.2f", d.AmountOpened))
			}
			fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))

			if d.Client != nil && d.Client.Name != "" {
				fmt.Fprintf(&sb, "%sClient: %s\n", indent, d.Client.Name)
			}
			if d.Description != "" {
				fmt.Fprintf(&sb, "%s%s\n", indent, d.Description)
			}
		}

		if !isLast {
			sb.WriteString("\u2502\n")
		}
	}

	sb.WriteString("\n")
	pageFooter(&sb, result.Page, result.Pages, result.Total)
	return sb.String()
}

// FormatDocument formats a single document record
func (f *ConsoleFormatter) FormatDocument(d *greeninvoice.Document) string {
	if d == nil {
		return "No document returned"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s #%s [%s] %s\n", d.Type, d.Number, d.ID, d.Status)

	var lines []string
	if d.DocumentDate != "" {
		lines = append(lines, "Date: "+d.DocumentDate)
	}
	if d.Client != nil && d.Client.Name != "" {
		lines = append(lines, "Client: "+d.Client.Name)
	}
	lines = append(lines, fmt.Sprintf("Amount: %.2f %s (VAT %.2f)", d.Amount, d.Currency, d.Vat))
	for _, inc := range d.Income {
		lines = append(lines, fmt.Sprintf("Income: %s x%g @ %.2f", inc.Description, inc.Quantity, inc.Price))
	}
	for _, p := range d.Payment {
		lines = append(lines, fmt.Sprintf("Payment: %.2f %s on %s", p.Price, p.Currency, p.Date))
	}
	if d.URL != nil && d.URL.Origin != "" {
		lines = append(lines, "URL: "+d.URL.Origin)
	}

	writeTree(&sb, lines)
	return sb.String()
}

// FormatCreatedDocument formats the result of issuing a document
func (f *ConsoleFormatter) FormatCreatedDocument(d *greeninvoice.CreatedDocument) string {
	if d == nil {
		return "No document returned"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\u2713 Created document #%s [%s]\n", d.Number, d.ID)
	writeTree(&sb, linkLines(&d.URL))
	return sb.String()
}

// FormatDownloadLinks formats the download URLs of a document
func (f *ConsoleFormatter) FormatDownloadLinks(documentID string, links *greeninvoice.DocumentURL) string {
	if links == nil {
		return "No download links returned"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Download links for %s:\n", documentID)
	writeTree(&sb, linkLines(links))
	return sb.String()
}

// FormatIDsToDelete formats the ids pending deletion for confirmation
func (f *ConsoleFormatter) FormatIDsToDelete(kind string, ids []string) string {
	if len(ids) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s to be deleted (%d):\n\n", plural(len(ids), kind), len(ids))
	writeTree(&sb, ids)
	sb.WriteString("\n")
	return sb.String()
}

func linkLines(u *greeninvoice.DocumentURL) []string {
	var lines []string
	if u.Origin != "" {
		lines = append(lines, "Original: "+u.Origin)
	}
	if u.He != "" {
		lines = append(lines, "Hebrew: "+u.He)
	}
	if u.En != "" {
		lines = append(lines, "English: "+u.En)
	}
	return lines
}

func writeTree(sb *strings.Builder, lines []string) {
	for i, line := range lines {
		prefix, _ := treeBranch(i == len(lines)-1)
		sb.WriteString(prefix + line + "\n")
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func formatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02")
}
