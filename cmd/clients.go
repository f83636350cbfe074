package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanivps/green-invoice/greeninvoice"
	"github.com/yanivps/green-invoice/output"
)

var (
	clientSearch greeninvoice.ClientSearchFields
	activeOnly   bool
	inactiveOnly bool
	draftFile    string
	assumeYes    bool
)

// clientsCmd groups the client commands
var clientsCmd = &cobra.Command{
	Use:     "clients",
	Aliases: []string{"client"},
	Short:   "Manage clients",
}

var clientsGetCmd = &cobra.Command{
	Use:   "get <id|url>...",
	Short: "Show one or more clients",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClientsGet,
}

var clientsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search clients",
	Long: `Search clients on the server, then optionally narrow the results with a
filter expression evaluated locally, for example:

  greeninvoice clients search --name acme --where 'hasLabel("vip")'`,
	Args: cobra.NoArgs,
	RunE: runClientsSearch,
}

var clientsCreateCmd = &cobra.Command{
	Use:   "create -f <file>",
	Short: "Create a client from a YAML or JSON draft",
	Args:  cobra.NoArgs,
	RunE:  runClientsCreate,
}

var clientsUpdateCmd = &cobra.Command{
	Use:   "update <id|url> -f <file>",
	Short: "Update a client from a YAML or JSON draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsUpdate,
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <id|url>...",
	Short: "Delete one or more clients",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClientsDelete,
}

var clientsAssocCmd = &cobra.Command{
	Use:   "assoc <client-id> <document-id>...",
	Short: "Associate existing documents with a client",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runClientsAssoc,
}

func init() {
	clientsSearchCmd.Flags().StringVar(&clientSearch.Name, "name", "", "client name")
	clientsSearchCmd.Flags().StringVar(&clientSearch.Email, "email", "", "client email")
	clientsSearchCmd.Flags().StringVar(&clientSearch.ContactPerson, "contact", "", "contact person")
	clientsSearchCmd.Flags().StringVar(&clientSearch.TaxID, "tax-id", "", "tax id")
	clientsSearchCmd.Flags().StringSliceVar(&clientSearch.Labels, "label", nil, "label (repeatable)")
	clientsSearchCmd.Flags().BoolVar(&activeOnly, "active", false, "only active clients")
	clientsSearchCmd.Flags().BoolVar(&inactiveOnly, "inactive", false, "only inactive clients")
	clientsSearchCmd.MarkFlagsMutuallyExclusive("active", "inactive")
	addSearchFlags(clientsSearchCmd)

	clientsCreateCmd.Flags().StringVarP(&draftFile, "file", "f", "", "draft file, or - for stdin")
	_ = clientsCreateCmd.MarkFlagRequired("file")
	clientsUpdateCmd.Flags().StringVarP(&draftFile, "file", "f", "", "draft file, or - for stdin")
	_ = clientsUpdateCmd.MarkFlagRequired("file")

	clientsDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")

	clientsCmd.AddCommand(clientsGetCmd, clientsSearchCmd, clientsCreateCmd, clientsUpdateCmd, clientsDeleteCmd, clientsAssocCmd)
}

// clientID accepts a bare id or an API path/URL containing one
func clientID(arg string) string {
	if id, ok := greeninvoice.ClientIDFromPath(arg); ok {
		return id
	}
	return arg
}

func clientIDs(args []string) []string {
	ids := make([]string, len(args))
	for i, arg := range args {
		ids[i] = clientID(arg)
	}
	return ids
}

func runClientsGet(cmd *cobra.Command, args []string) error {
	clients, err := greeninvoice.DefaultClients()
	if err != nil {
		return err
	}

	results := forEachID(cmd.Context(), clientIDs(args), cfg.GreenInvoice.Concurrency, clients.Find)
	failed := failedCount(results, "get client")

	if err := printMany(results, (*output.ConsoleFormatter).FormatClient); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d clients could not be retrieved", failed, len(results))
	}
	return nil
}

func runClientsSearch(cmd *cobra.Command, args []string) error {
	clients, err := greeninvoice.DefaultClients()
	if err != nil {
		return err
	}

	fields := clientSearch
	fields.PageSize = pageSize
	switch {
	case activeOnly:
		fields.Active = greeninvoice.Ptr(true)
	case inactiveOnly:
		fields.Active = greeninvoice.Ptr(false)
	}

	ctx := cmd.Context()
	logger.Info().Str("name", fields.Name).Bool("all", allPages).Msg("Searching clients")

	result, err := fetchPages(ctx, func(p int) (*greeninvoice.ClientSearchResult, error) {
		fields.Page = p
		return clients.Search(ctx, fields)
	})
	if err != nil {
		return err
	}

	if err := applyFilter(ctx, result); err != nil {
		return err
	}

	return printer.Print(result, func(f *output.ConsoleFormatter) string {
		return f.FormatClientList(result)
	})
}

func runClientsCreate(cmd *cobra.Command, args []string) error {
	clients, err := greeninvoice.DefaultClients()
	if err != nil {
		return err
	}

	draft, err := loadDraft[greeninvoice.ClientDraft](draftFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if draft.Name == "" {
		return fmt.Errorf("client draft must have a name")
	}

	client, err := clients.Create(cmd.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info().Str("name", draft.Name).Msg("Client created")
	return printer.Print(client, func(f *output.ConsoleFormatter) string {
		return f.FormatClient(client)
	})
}

func runClientsUpdate(cmd *cobra.Command, args []string) error {
	clients, err := greeninvoice.DefaultClients()
	if err != nil {
		return err
	}

	draft, err := loadDraft[greeninvoice.ClientDraft](draftFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	id := clientID(args[0])
	client, err := clients.Update(cmd.Context(), id, draft)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", id, err)
	}

	logger.Info().Str("id", id).Msg("Client updated")
	return printer.Print(client, func(f *output.ConsoleFormatter) string {
		return f.FormatClient(client)
	})
}

func runClientsDelete(cmd *cobra.Command, args []string) error {
	clients, err := greeninvoice.DefaultClients()
	if err != nil {
		return err
	}

	ids := clientIDs(args)
	if cfg.Safety.ConfirmDelete && !assumeYes {
		fmt.Fprint(cmd.OutOrStdout(), output.NewConsoleFormatter(false).FormatIDsToDelete("Client", ids))
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete these clients?") {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	results := forEachID(cmd.Context(), ids, cfg.GreenInvoice.Concurrency, clients.Delete)
	failed := failedCount(results, "delete client")

	for _, r := range results {
		if r.Err == nil {
			logger.Info().Str("id", r.ID).Msg("Client deleted")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d clients could not be deleted", failed, len(results))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %d client(s)\n", len(results))
	return nil
}

func runClientsAssoc(cmd *cobra.Command, args []string) error {
	clients, err := greeninvoice.DefaultClients()
	if err != nil {
		return err
	}

	id := clientID(args[0])
	documentIDs := make([]string, len(args)-1)
	for i, arg := range args[1:] {
		documentIDs[i] = documentID(arg)
	}

	ok, err := associate(cmd.Context(), clients, id, documentIDs)
	if err != nil {
		return fmt.Errorf("failed to associate documents with client %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("association with client %s was not accepted", id)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Associated %d document(s) with client %s\n", len(documentIDs), id)
	return nil
}

func associate(ctx context.Context, clients greeninvoice.ClientAPI, id string, documentIDs []string) (bool, error) {
	logger.Debug().Str("client", id).Strs("documents", documentIDs).Msg("Associating documents")
	return clients.AssociateDocuments(ctx, id, documentIDs)
}
