package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url [spreadsheet-id]",
	Short: "Print the URL of a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	url, found, err := svc.URL(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching URL: %w", err)
	}
	if !found {
		return fmt.Errorf("spreadsheet not found: %s", args[0])
	}

	cmd.Println(url)
	return nil
}
