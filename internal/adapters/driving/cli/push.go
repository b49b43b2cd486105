package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

var pushCmd = &cobra.Command{
	Use:   "push [spreadsheet-id]",
	Short: "Write tabular data to sheets",
	Long: `Write headers and rows to one or more sheets in a single command.

The payload is a JSON array of sheet entries read from --file (or stdin
when the file is "-"):

  [
    {
      "name": "Expenses",
      "headers": ["date", "amount", "approved"],
      "rows": [["2026-01-05", 120.5, true]]
    }
  ]

Missing sheets are created, grids grow to fit the data (never shrink),
and each column gets a validation rule matching the type of its first
data row. Entries are written concurrently.`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

var pushFile string

func init() {
	pushCmd.Flags().StringVarP(&pushFile, "file", "f", "", `JSON payload file, or "-" for stdin (required)`)
	_ = pushCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(pushCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	entries, err := readPayload(pushFile)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("payload contains no sheet entries")
	}

	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	if err := svc.AddSheetValues(cmd.Context(), args[0], entries); err != nil {
		return fmt.Errorf("writing values: %w", err)
	}

	for _, entry := range entries {
		cmd.Printf("Wrote %d rows to sheet %q\n", len(entry.Rows), entry.Name)
	}
	return nil
}

func readPayload(path string) ([]domain.SheetPayload, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening payload file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var entries []domain.SheetPayload
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return entries, nil
}
