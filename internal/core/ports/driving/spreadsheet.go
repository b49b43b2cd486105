package driving

import (
	"context"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// SpreadsheetService exposes the spreadsheet operations to external
// actors. Lookups follow the (value, found, error) convention: found is
// false when the queried object itself cannot be resolved, while an
// empty slice means the query ran and matched nothing.
type SpreadsheetService interface {
	// Info fetches spreadsheet metadata verbatim.
	Info(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, bool, error)

	// SheetName resolves a zero-based sheet ordinal to its title.
	SheetName(ctx context.Context, spreadsheetID string, index int64) (string, bool, error)

	// Values fetches all values of the sheet at the given ordinal.
	Values(ctx context.Context, spreadsheetID string, index int64) ([][]any, bool, error)

	// Headers fetches row 1 of the sheet at the given ordinal.
	Headers(ctx context.Context, spreadsheetID string, index int64) ([]string, bool, error)

	// FilterRows returns the first row whose cell in the given column
	// equals value.
	FilterRows(ctx context.Context, spreadsheetID string, index int64, column, value string) ([][]any, bool, error)

	// EnsureSheet creates the named sheet if absent.
	EnsureSheet(ctx context.Context, spreadsheetID, name string) error

	// AddSheetValues writes payloads to their named sheets.
	AddSheetValues(ctx context.Context, spreadsheetID string, entries []domain.SheetPayload) error

	// CreateDocument creates a spreadsheet document and applies grants.
	CreateDocument(ctx context.Context, title string, grants []domain.PermissionGrant) (domain.DocumentInfo, error)

	// URL fetches the canonical URL of a spreadsheet.
	URL(ctx context.Context, spreadsheetID string) (string, bool, error)
}
