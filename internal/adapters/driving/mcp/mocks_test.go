package mcp

import (
	"context"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// mockSpreadsheetService is a mock implementation of driving.SpreadsheetService.
type mockSpreadsheetService struct {
	info      *sheets.Spreadsheet
	sheetName string
	values    [][]any
	headers   []string
	filtered  [][]any
	docInfo   domain.DocumentInfo
	url       string
	found     bool
	err       error

	// Recorded inputs.
	writtenID      string
	writtenEntries []domain.SheetPayload
	createdTitle   string
	createdGrants  []domain.PermissionGrant
	filterColumn   string
	filterValue    string
}

func (m *mockSpreadsheetService) Info(_ context.Context, _ string) (*sheets.Spreadsheet, bool, error) {
	return m.info, m.found, m.err
}

func (m *mockSpreadsheetService) SheetName(_ context.Context, _ string, _ int64) (string, bool, error) {
	return m.sheetName, m.found, m.err
}

func (m *mockSpreadsheetService) Values(_ context.Context, _ string, _ int64) ([][]any, bool, error) {
	return m.values, m.found, m.err
}

func (m *mockSpreadsheetService) Headers(_ context.Context, _ string, _ int64) ([]string, bool, error) {
	return m.headers, m.found, m.err
}

func (m *mockSpreadsheetService) FilterRows(
	_ context.Context, _ string, _ int64, column, value string,
) ([][]any, bool, error) {
	m.filterColumn = column
	m.filterValue = value
	return m.filtered, m.found, m.err
}

func (m *mockSpreadsheetService) EnsureSheet(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockSpreadsheetService) AddSheetValues(
	_ context.Context, spreadsheetID string, entries []domain.SheetPayload,
) error {
	m.writtenID = spreadsheetID
	m.writtenEntries = entries
	return m.err
}

func (m *mockSpreadsheetService) CreateDocument(
	_ context.Context, title string, grants []domain.PermissionGrant,
) (domain.DocumentInfo, error) {
	m.createdTitle = title
	m.createdGrants = grants
	return m.docInfo, m.err
}

func (m *mockSpreadsheetService) URL(_ context.Context, _ string) (string, bool, error) {
	return m.url, m.found, m.err
}
