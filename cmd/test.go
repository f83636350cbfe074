package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanivps/green-invoice/greeninvoice"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the Green Invoice credentials",
	Long:  `Authenticate against the configured environment and report the result.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	session, err := greeninvoice.Default()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing credentials against %s (%s)...\n", session.BaseURL(), session.Environment())

	if _, err := session.Authenticate(cmd.Context()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	fmt.Fprintln(out, "✓ Authentication successful!")
	return nil
}
