package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read data from a spreadsheet",
	Long: `Read metadata, sheet names, values, and headers from a spreadsheet.

Sheets are addressed by zero-based position within the document, so
--index 0 is the first (usually only) sheet.

Examples:
  sheetctl get info 1aBcD...
  sheetctl get values 1aBcD... --index 0
  sheetctl get headers 1aBcD...
  sheetctl get filter 1aBcD... --column C --value done`,
}

var getInfoCmd = &cobra.Command{
	Use:   "info [spreadsheet-id]",
	Short: "Print spreadsheet metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetInfo,
}

var getTitleCmd = &cobra.Command{
	Use:   "title [spreadsheet-id]",
	Short: "Print the name of a sheet by position",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetTitle,
}

var getValuesCmd = &cobra.Command{
	Use:   "values [spreadsheet-id]",
	Short: "Print all values of a sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetValues,
}

var getHeadersCmd = &cobra.Command{
	Use:   "headers [spreadsheet-id]",
	Short: "Print the header row of a sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetHeaders,
}

var getFilterCmd = &cobra.Command{
	Use:   "filter [spreadsheet-id]",
	Short: "Print the first row matching a column value",
	Long: `Looks up the first row whose cell in the given column equals the
given value. The column is a letter (A, B, ...); the match compares
the cell's string rendering exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: runGetFilter,
}

// Flags for get subcommands.
var (
	getSheetIndex   int64
	getJSON         bool
	getFilterColumn string
	getFilterValue  string
)

func init() {
	for _, c := range []*cobra.Command{getTitleCmd, getValuesCmd, getHeadersCmd, getFilterCmd} {
		c.Flags().Int64Var(&getSheetIndex, "index", 0, "zero-based sheet position")
	}
	for _, c := range []*cobra.Command{getInfoCmd, getValuesCmd, getHeadersCmd, getFilterCmd} {
		c.Flags().BoolVar(&getJSON, "json", false, "output as JSON")
	}
	getFilterCmd.Flags().StringVar(&getFilterColumn, "column", "", "column letter to match against (required)")
	getFilterCmd.Flags().StringVar(&getFilterValue, "value", "", "cell value to match (required)")
	_ = getFilterCmd.MarkFlagRequired("column")
	_ = getFilterCmd.MarkFlagRequired("value")

	getCmd.AddCommand(getInfoCmd)
	getCmd.AddCommand(getTitleCmd)
	getCmd.AddCommand(getValuesCmd)
	getCmd.AddCommand(getHeadersCmd)
	getCmd.AddCommand(getFilterCmd)
	rootCmd.AddCommand(getCmd)
}

// jsonOutput reports whether results should be printed as JSON:
// either explicitly requested or stdout is not a terminal.
func jsonOutput() bool {
	return getJSON || !term.IsTerminal(int(os.Stdout.Fd()))
}

func runGetInfo(cmd *cobra.Command, args []string) error {
	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	info, found, err := svc.Info(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching spreadsheet: %w", err)
	}
	if !found {
		return fmt.Errorf("spreadsheet not found: %s", args[0])
	}

	if jsonOutput() {
		return printJSON(cmd, info)
	}

	cmd.Printf("Title:  %s\n", info.Properties.Title)
	cmd.Printf("URL:    %s\n", info.SpreadsheetUrl)
	cmd.Printf("Sheets: %d\n", len(info.Sheets))
	for i, sheet := range info.Sheets {
		props := sheet.Properties
		cmd.Printf("  [%d] %s", i, props.Title)
		if props.GridProperties != nil {
			cmd.Printf(" (%dx%d)", props.GridProperties.RowCount, props.GridProperties.ColumnCount)
		}
		cmd.Println()
	}
	return nil
}

func runGetTitle(cmd *cobra.Command, args []string) error {
	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	name, found, err := svc.SheetName(cmd.Context(), args[0], getSheetIndex)
	if err != nil {
		return fmt.Errorf("fetching sheet name: %w", err)
	}
	if !found {
		return fmt.Errorf("no sheet at index %d", getSheetIndex)
	}

	cmd.Println(name)
	return nil
}

func runGetValues(cmd *cobra.Command, args []string) error {
	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	values, found, err := svc.Values(cmd.Context(), args[0], getSheetIndex)
	if err != nil {
		return fmt.Errorf("fetching values: %w", err)
	}
	if !found {
		return fmt.Errorf("no sheet at index %d", getSheetIndex)
	}

	if jsonOutput() {
		return printJSON(cmd, values)
	}

	for _, row := range values {
		printRow(cmd, row)
	}
	return nil
}

func runGetHeaders(cmd *cobra.Command, args []string) error {
	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	headers, found, err := svc.Headers(cmd.Context(), args[0], getSheetIndex)
	if err != nil {
		return fmt.Errorf("fetching headers: %w", err)
	}
	if !found {
		return fmt.Errorf("no sheet at index %d", getSheetIndex)
	}

	if jsonOutput() {
		return printJSON(cmd, headers)
	}

	for _, h := range headers {
		cmd.Println(h)
	}
	return nil
}

func runGetFilter(cmd *cobra.Command, args []string) error {
	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	rows, found, err := svc.FilterRows(cmd.Context(), args[0], getSheetIndex, getFilterColumn, getFilterValue)
	if err != nil {
		return fmt.Errorf("filtering rows: %w", err)
	}
	if !found {
		return fmt.Errorf("no sheet at index %d", getSheetIndex)
	}

	if jsonOutput() {
		return printJSON(cmd, rows)
	}

	if len(rows) == 0 {
		cmd.Println("No matching rows.")
		return nil
	}
	for _, row := range rows {
		printRow(cmd, row)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printRow(cmd *cobra.Command, row []any) {
	for i, cell := range row {
		if i > 0 {
			cmd.Print("\t")
		}
		cmd.Print(fmt.Sprint(cell))
	}
	cmd.Println()
}
