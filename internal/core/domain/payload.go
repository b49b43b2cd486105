package domain

import "fmt"

// SheetPayload is a caller-supplied block of tabular data destined for a
// named sheet: a header row followed by data rows. Cell values are
// strings, numbers, or booleans; anything else is passed through to the
// API untyped.
type SheetPayload struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// Validate checks that the payload names a sheet and that every row is
// as wide as the header row.
func (p SheetPayload) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: payload has no sheet name", ErrInvalidInput)
	}
	if len(p.Headers) == 0 {
		return fmt.Errorf("%w: payload %q has no headers", ErrInvalidInput, p.Name)
	}
	for i, row := range p.Rows {
		if len(row) != len(p.Headers) {
			return fmt.Errorf("%w: payload %q row %d has %d cells, want %d",
				ErrInvalidInput, p.Name, i, len(row), len(p.Headers))
		}
	}
	return nil
}

// RequiredGrid returns the grid capacity the payload needs: one row for
// the headers plus one per data row.
func (p SheetPayload) RequiredGrid() GridDimensions {
	return GridDimensions{
		RowCount:    int64(len(p.Rows)) + 1,
		ColumnCount: int64(len(p.Headers)),
	}
}
