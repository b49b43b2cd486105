package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/connectors/google"
	"github.com/custodia-labs/sheetctl/internal/logger"
)

// unformatted asks the API for raw cell values rather than the
// locale-formatted display strings.
const unformatted = "UNFORMATTED_VALUE"

// Info fetches spreadsheet metadata verbatim. found is false when the
// spreadsheet does not exist or is not visible to the session.
func (c *Client) Info(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, bool, error) {
	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return nil, false, err
	}

	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		if google.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return meta, true, nil
}

// SheetName resolves a zero-based sheet ordinal to its title. The
// ordinal mapping is re-fetched on every call; nothing is cached.
func (c *Client) SheetName(ctx context.Context, spreadsheetID string, index int64) (string, bool, error) {
	meta, found, err := c.Info(ctx, spreadsheetID)
	if err != nil || !found {
		return "", false, err
	}
	if index < 0 || index >= int64(len(meta.Sheets)) {
		logger.Debug("Sheet index %d out of range (%d sheets)", index, len(meta.Sheets))
		return "", false, nil
	}
	sheet := meta.Sheets[index]
	if sheet.Properties == nil {
		return "", false, nil
	}
	return sheet.Properties.Title, true, nil
}

// Values fetches the rectangular range A1:<bound> of the sheet at the
// given ordinal, with unformatted rendering. Columns beyond the bound
// are not read; that truncation is part of the documented behaviour.
func (c *Client) Values(ctx context.Context, spreadsheetID string, index int64) ([][]any, bool, error) {
	name, found, err := c.SheetName(ctx, spreadsheetID, index)
	if err != nil || !found {
		return nil, false, err
	}

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return nil, false, err
	}

	rng := fmt.Sprintf("%s!A1:%s", quoteSheet(name), c.columnBound)
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption(unformatted).
		Context(ctx).
		Do()
	if err != nil {
		return nil, false, err
	}

	values := resp.Values
	if values == nil {
		values = [][]any{}
	}
	return values, true, nil
}

// Headers fetches row 1 of the sheet at the given ordinal. A sheet
// without a first row yields an empty slice, not absent.
func (c *Client) Headers(ctx context.Context, spreadsheetID string, index int64) ([]string, bool, error) {
	name, found, err := c.SheetName(ctx, spreadsheetID, index)
	if err != nil || !found {
		return nil, false, err
	}

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return nil, false, err
	}

	rng := fmt.Sprintf("%s!A1:%s1", quoteSheet(name), c.columnBound)
	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption(unformatted).
		Context(ctx).
		Do()
	if err != nil {
		return nil, false, err
	}

	headers := []string{}
	if len(resp.Values) > 0 {
		for _, cell := range resp.Values[0] {
			headers = append(headers, fmt.Sprint(cell))
		}
	}
	return headers, true, nil
}

// FilterRows scans the given column (a letter, e.g. "C") for the first
// cell whose string form equals value, then re-fetches that entire row.
// No match yields an empty slice; a missing sheet yields found=false.
// This is two sequential remote reads per call; no index is built.
func (c *Client) FilterRows(
	ctx context.Context, spreadsheetID string, index int64, column, value string,
) ([][]any, bool, error) {
	name, found, err := c.SheetName(ctx, spreadsheetID, index)
	if err != nil || !found {
		return nil, false, err
	}

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return nil, false, err
	}

	colRange := fmt.Sprintf("%s!%s:%s", quoteSheet(name), column, column)
	colResp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, colRange).
		ValueRenderOption(unformatted).
		Context(ctx).
		Do()
	if err != nil {
		return nil, false, err
	}

	matchRow := -1
	for i, row := range colResp.Values {
		if len(row) > 0 && fmt.Sprint(row[0]) == value {
			matchRow = i
			break
		}
	}
	if matchRow < 0 {
		logger.Debug("No %s-column match for %q in sheet %q", column, value, name)
		return [][]any{}, true, nil
	}

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return nil, false, err
	}

	// Sheet rows are 1-based; the match index is 0-based.
	rowNum := matchRow + 1
	rowRange := fmt.Sprintf("%s!A%d:%s%d", quoteSheet(name), rowNum, c.columnBound, rowNum)
	rowResp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, rowRange).
		ValueRenderOption(unformatted).
		Context(ctx).
		Do()
	if err != nil {
		return nil, false, err
	}

	rows := rowResp.Values
	if rows == nil {
		rows = [][]any{}
	}
	return rows, true, nil
}

// quoteSheet wraps a sheet title for A1 notation, escaping embedded
// single quotes by doubling them.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
