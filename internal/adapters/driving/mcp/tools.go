package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// GetSheetValuesInput is the input schema for the get_sheet_values tool.
type GetSheetValuesInput struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"the ID of the spreadsheet to read"`
	SheetIndex    int64  `json:"sheet_index,omitempty" jsonschema:"zero-based position of the sheet within the document (default 0)"`
	Column        string `json:"column,omitempty" jsonschema:"optional column letter to filter by, e.g. C"`
	Value         string `json:"value,omitempty" jsonschema:"cell value the filter column must equal; requires column"`
}

// GetSheetValuesOutput is the output schema for the get_sheet_values tool.
type GetSheetValuesOutput struct {
	SheetName string   `json:"sheet_name"`
	Headers   []string `json:"headers"`
	Rows      [][]any  `json:"rows"`
	Count     int      `json:"count"`
}

// AddSheetValuesInput is the input schema for the add_sheet_values tool.
type AddSheetValuesInput struct {
	SpreadsheetID string       `json:"spreadsheet_id" jsonschema:"the ID of the spreadsheet to write to"`
	Entries       []SheetEntry `json:"entries" jsonschema:"sheet entries to write; missing sheets are created"`
}

// SheetEntry is one sheet's worth of data in an add_sheet_values call.
type SheetEntry struct {
	Name    string   `json:"name" jsonschema:"the sheet title to write to"`
	Headers []string `json:"headers" jsonschema:"header row written at row 1"`
	Rows    [][]any  `json:"rows" jsonschema:"data rows written below the headers"`
}

// AddSheetValuesOutput is the output schema for the add_sheet_values tool.
type AddSheetValuesOutput struct {
	SheetsWritten int `json:"sheets_written"`
	RowsWritten   int `json:"rows_written"`
}

// CreateSpreadsheetInput is the input schema for the create_spreadsheet tool.
type CreateSpreadsheetInput struct {
	Title  string       `json:"title" jsonschema:"title of the new spreadsheet document"`
	Shares []ShareEntry `json:"shares,omitempty" jsonschema:"permission grants applied after creation"`
}

// ShareEntry is a permission grant in a create_spreadsheet call.
type ShareEntry struct {
	Role      string `json:"role" jsonschema:"one of owner, writer, commenter, reader"`
	Type      string `json:"type" jsonschema:"one of user, group, domain, anyone"`
	Principal string `json:"principal,omitempty" jsonschema:"email address for user/group grants, domain name for domain grants"`
}

// CreateSpreadsheetOutput is the output schema for the create_spreadsheet tool.
type CreateSpreadsheetOutput struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	URL           string `json:"url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sheet_values",
		Description: "Read values from a Google Sheets spreadsheet, optionally filtered by a column value",
	}, s.handleGetSheetValues)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_sheet_values",
		Description: "Write headers and rows to sheets in a Google Sheets spreadsheet, creating sheets as needed",
	}, s.handleAddSheetValues)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_spreadsheet",
		Description: "Create a new Google Sheets document and optionally share it",
	}, s.handleCreateSpreadsheet)
}

// handleGetSheetValues handles the get_sheet_values tool invocation.
func (s *Server) handleGetSheetValues(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSheetValuesInput,
) (*mcp.CallToolResult, GetSheetValuesOutput, error) {
	name, found, err := s.ports.Spreadsheet.SheetName(ctx, input.SpreadsheetID, input.SheetIndex)
	if err != nil {
		return nil, GetSheetValuesOutput{}, err
	}
	if !found {
		return nil, GetSheetValuesOutput{}, fmt.Errorf("no sheet at index %d", input.SheetIndex)
	}

	headers, _, err := s.ports.Spreadsheet.Headers(ctx, input.SpreadsheetID, input.SheetIndex)
	if err != nil {
		return nil, GetSheetValuesOutput{}, err
	}

	var rows [][]any
	if input.Column != "" {
		rows, _, err = s.ports.Spreadsheet.FilterRows(ctx, input.SpreadsheetID, input.SheetIndex, input.Column, input.Value)
	} else {
		rows, _, err = s.ports.Spreadsheet.Values(ctx, input.SpreadsheetID, input.SheetIndex)
		// Values starts at row 1, which is the header row already
		// reported in Headers. Return data rows only.
		if len(rows) > 0 {
			rows = rows[1:]
		}
	}
	if err != nil {
		return nil, GetSheetValuesOutput{}, err
	}

	return nil, GetSheetValuesOutput{
		SheetName: name,
		Headers:   headers,
		Rows:      rows,
		Count:     len(rows),
	}, nil
}

// handleAddSheetValues handles the add_sheet_values tool invocation.
func (s *Server) handleAddSheetValues(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddSheetValuesInput,
) (*mcp.CallToolResult, AddSheetValuesOutput, error) {
	entries := make([]domain.SheetPayload, len(input.Entries))
	rows := 0
	for i, e := range input.Entries {
		entries[i] = domain.SheetPayload{
			Name:    e.Name,
			Headers: e.Headers,
			Rows:    e.Rows,
		}
		rows += len(e.Rows)
	}

	if err := s.ports.Spreadsheet.AddSheetValues(ctx, input.SpreadsheetID, entries); err != nil {
		return nil, AddSheetValuesOutput{}, err
	}

	return nil, AddSheetValuesOutput{
		SheetsWritten: len(entries),
		RowsWritten:   rows,
	}, nil
}

// handleCreateSpreadsheet handles the create_spreadsheet tool invocation.
func (s *Server) handleCreateSpreadsheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateSpreadsheetInput,
) (*mcp.CallToolResult, CreateSpreadsheetOutput, error) {
	grants := make([]domain.PermissionGrant, len(input.Shares))
	for i, share := range input.Shares {
		grants[i] = domain.PermissionGrant{
			Role:      share.Role,
			Type:      share.Type,
			Principal: share.Principal,
		}
	}

	info, err := s.ports.Spreadsheet.CreateDocument(ctx, input.Title, grants)
	if err != nil {
		return nil, CreateSpreadsheetOutput{}, err
	}

	return nil, CreateSpreadsheetOutput{
		SpreadsheetID: info.ID,
		URL:           info.URL,
	}, nil
}
