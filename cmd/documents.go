package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanivps/green-invoice/greeninvoice"
	"github.com/yanivps/green-invoice/output"
)

var (
	documentSearch greeninvoice.DocumentSearchFields
	documentTypes  []string
	documentStatus []string
	documentSort   string
)

// documentsCmd groups the document commands
var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"document", "docs"},
	Short:   "Manage accounting documents",
}

var documentsGetCmd = &cobra.Command{
	Use:   "get <id|url>...",
	Short: "Show one or more documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDocumentsGet,
}

var documentsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search documents",
	Long: `Search documents on the server, then optionally narrow the results with a
filter expression evaluated locally, for example:

  greeninvoice documents search --type TAX_INVOICE --status OPENED --where 'amountOpened > 1000'`,
	Args: cobra.NoArgs,
	RunE: runDocumentsSearch,
}

var documentsCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Issue a document from a YAML or JSON draft",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsCreate,
}

var documentsLinksCmd = &cobra.Command{
	Use:   "links <id|url>",
	Short: "Show download links of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsLinks,
}

func init() {
	documentsSearchCmd.Flags().StringSliceVar(&documentTypes, "type", nil, "document type name or code (repeatable)")
	documentsSearchCmd.Flags().StringSliceVar(&documentStatus, "status", nil, "document status name or code (repeatable)")
	documentsSearchCmd.Flags().StringVar(&documentSearch.FromDate, "from", "", "earliest document date (YYYY-MM-DD)")
	documentsSearchCmd.Flags().StringVar(&documentSearch.ToDate, "to", "", "latest document date (YYYY-MM-DD)")
	documentsSearchCmd.Flags().StringVar(&documentSearch.ClientID, "client-id", "", "client id")
	documentsSearchCmd.Flags().StringVar(&documentSearch.ClientName, "client-name", "", "client name")
	documentsSearchCmd.Flags().StringVar(&documentSearch.Description, "description", "", "description text")
	documentsSearchCmd.Flags().Int64Var(&documentSearch.Number, "number", 0, "document number")
	documentsSearchCmd.Flags().StringVar(&documentSort, "sort", "", "sort by documentDate or creationDate")
	addSearchFlags(documentsSearchCmd)

	documentsCreateCmd.Flags().StringVarP(&draftFile, "file", "f", "", "draft file, or - for stdin")
	_ = documentsCreateCmd.MarkFlagRequired("file")

	documentsCmd.AddCommand(documentsGetCmd, documentsSearchCmd, documentsCreateCmd, documentsLinksCmd)
}

// documentID accepts a bare id or an API path/URL containing one
func documentID(arg string) string {
	if id, ok := greeninvoice.DocumentIDFromPath(arg); ok {
		return id
	}
	return arg
}

func runDocumentsGet(cmd *cobra.Command, args []string) error {
	documents, err := greeninvoice.DefaultDocuments()
	if err != nil {
		return err
	}

	ids := make([]string, len(args))
	for i, arg := range args {
		ids[i] = documentID(arg)
	}

	results := forEachID(cmd.Context(), ids, cfg.GreenInvoice.Concurrency, documents.Find)
	failed := failedCount(results, "get document")

	if err := printMany(results, (*output.ConsoleFormatter).FormatDocument); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents could not be retrieved", failed, len(results))
	}
	return nil
}

// documentSearchFields combines the flag values into search fields
func documentSearchFields() (greeninvoice.DocumentSearchFields, error) {
	fields := documentSearch
	fields.PageSize = pageSize
	fields.Type = nil
	fields.Status = nil

	for _, t := range documentTypes {
		dt, err := greeninvoice.ParseDocumentType(t)
		if err != nil {
			return fields, err
		}
		fields.Type = append(fields.Type, dt)
	}

	for _, s := range documentStatus {
		ds, err := greeninvoice.ParseDocumentStatus(s)
		if err != nil {
			return fields, err
		}
		fields.Status = append(fields.Status, ds)
	}

	switch sort := greeninvoice.DocumentSort(documentSort); sort {
	case "", greeninvoice.DocumentSortDocumentDate, greeninvoice.DocumentSortCreationDate:
		fields.Sort = sort
	default:
		return fields, fmt.Errorf("invalid sort %q (must be documentDate or creationDate)", documentSort)
	}

	return fields, nil
}

func runDocumentsSearch(cmd *cobra.Command, args []string) error {
	documents, err := greeninvoice.DefaultDocuments()
	if err != nil {
		return err
	}

	fields, err := documentSearchFields()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger.Info().
		Strs("type", documentTypes).
		Strs("status", documentStatus).
		Bool("all", allPages).
		Msg("Searching documents")

	result, err := fetchPages(ctx, func(p int) (*greeninvoice.DocumentSearchResult, error) {
		fields.Page = p
		return documents.Search(ctx, fields)
	})
	if err != nil {
		return err
	}

	if err := applyFilter(ctx, result); err != nil {
		return err
	}

	return printer.Print(result, func(f *output.ConsoleFormatter) string {
		return f.FormatDocumentList(result)
	})
}

func runDocumentsCreate(cmd *cobra.Command, args []string) error {
	documents, err := greeninvoice.DefaultDocuments()
	if err != nil {
		return err
	}

	draft, err := loadDraft[greeninvoice.DocumentDraft](draftFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if draft.Type == 0 {
		return fmt.Errorf("document draft must have a type")
	}

	created, err := documents.Create(cmd.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	if created != nil {
		logger.Info().Str("id", created.ID).Str("number", created.Number.String()).Stringer("type", draft.Type).Msg("Document created")
	}
	return printer.Print(created, func(f *output.ConsoleFormatter) string {
		return f.FormatCreatedDocument(created)
	})
}

func runDocumentsLinks(cmd *cobra.Command, args []string) error {
	documents, err := greeninvoice.DefaultDocuments()
	if err != nil {
		return err
	}

	id := documentID(args[0])
	links, err := documents.DownloadLinks(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get download links for %s: %w", id, err)
	}

	return printer.Print(links, func(f *output.ConsoleFormatter) string {
		return f.FormatDownloadLinks(id, links)
	})
}
