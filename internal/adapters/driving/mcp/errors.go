// Package mcp provides an MCP (Model Context Protocol) server adapter
// for sheetctl. It lets AI assistants like Claude read and write Google
// Sheets through the configured credentials.
package mcp

import "errors"

// ErrMissingSpreadsheetService is returned when the spreadsheet service is not provided.
var ErrMissingSpreadsheetService = errors.New("mcp: spreadsheet service is required")
