package mcp

import (
	"github.com/custodia-labs/sheetctl/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Spreadsheet provides spreadsheet read/write operations.
	Spreadsheet driving.SpreadsheetService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Spreadsheet == nil {
		return ErrMissingSpreadsheetService
	}
	return nil
}
