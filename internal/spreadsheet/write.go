package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/logger"
)

// rawInput passes values through unparsed, the way the user typed them.
const rawInput = "RAW"

// EnsureSheet creates the named sheet if the spreadsheet does not
// already contain one with that exact title. The check and the create
// run under an in-process advisory lock for the (spreadsheet, name)
// pair; see keyedLocks for the cross-process caveat.
func (c *Client) EnsureSheet(ctx context.Context, spreadsheetID, name string) error {
	unlock := c.locks.acquire(spreadsheetID + "\x00" + name)
	defer unlock()

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return err
	}

	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return err
	}
	// A fresh document reports no sheet list at all; treat that the
	// same as a list without the target, and create it.
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return nil
		}
	}

	logger.Debug("Creating sheet %q in %s", name, spreadsheetID)

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return err
	}
	_, err = c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}).Context(ctx).Do()
	return err
}

// AddSheetValues writes each payload to its named sheet: ensure the
// sheet exists, grow its grid to fit, write headers plus rows at A1,
// and install per-column validation rules inferred from the first data
// row. Entries are dispatched concurrently with no ordering guarantee
// and no rollback; the first error per entry is collected and joined.
func (c *Client) AddSheetValues(ctx context.Context, spreadsheetID string, entries []domain.SheetPayload) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
	}

	errs := make([]error, len(entries))
	var wg sync.WaitGroup
	wg.Add(len(entries))

	for i, entry := range entries {
		go func(i int, entry domain.SheetPayload) {
			defer wg.Done()
			if err := c.addSheetValues(ctx, spreadsheetID, entry); err != nil {
				errs[i] = fmt.Errorf("sheet %q: %w", entry.Name, err)
			}
		}(i, entry)
	}

	wg.Wait()
	return errors.Join(errs...)
}

// addSheetValues runs the write sequence for a single payload.
func (c *Client) addSheetValues(ctx context.Context, spreadsheetID string, entry domain.SheetPayload) error {
	if err := c.EnsureSheet(ctx, spreadsheetID, entry.Name); err != nil {
		return err
	}

	sheetID, grid, err := c.sheetGrid(ctx, spreadsheetID, entry.Name)
	if err != nil {
		return err
	}

	target := grid.Grow(entry.RequiredGrid())
	if err := c.resizeGrid(ctx, spreadsheetID, sheetID, target); err != nil {
		return err
	}

	if err := c.writeValues(ctx, spreadsheetID, entry); err != nil {
		return err
	}

	rules := inferColumnRules(entry.Headers, entry.Rows)
	return c.applyValidation(ctx, spreadsheetID, sheetID, rules, int64(len(entry.Rows)))
}

// sheetGrid re-fetches the sheet's numeric ID and current grid size.
func (c *Client) sheetGrid(
	ctx context.Context, spreadsheetID, name string,
) (int64, domain.GridDimensions, error) {
	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return 0, domain.GridDimensions{}, err
	}

	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title,gridProperties))").
		Context(ctx).
		Do()
	if err != nil {
		return 0, domain.GridDimensions{}, err
	}

	for _, sh := range meta.Sheets {
		if sh.Properties == nil || sh.Properties.Title != name {
			continue
		}
		if sh.Properties.GridProperties == nil {
			return 0, domain.GridDimensions{}, fmt.Errorf(
				"%w: sheet %q has no grid properties", domain.ErrMissingData, name)
		}
		grid := domain.GridDimensions{
			RowCount:    sh.Properties.GridProperties.RowCount,
			ColumnCount: sh.Properties.GridProperties.ColumnCount,
		}
		return sh.Properties.SheetId, grid, nil
	}

	return 0, domain.GridDimensions{}, fmt.Errorf(
		"%w: sheet %q not present after creation", domain.ErrMissingData, name)
}

// resizeGrid issues the structural update carrying the computed grid
// size. The size is always the max of current and required, so the
// update can only grow the sheet.
func (c *Client) resizeGrid(
	ctx context.Context, spreadsheetID string, sheetID int64, target domain.GridDimensions,
) error {
	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return err
	}

	_, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: sheetID,
					GridProperties: &sheets.GridProperties{
						RowCount:    target.RowCount,
						ColumnCount: target.ColumnCount,
					},
				},
				Fields: "gridProperties(rowCount,columnCount)",
			},
		}},
	}).Context(ctx).Do()
	return err
}

// writeValues writes [headers, rows...] starting at A1 with raw input
// semantics, overwriting whatever the range held.
func (c *Client) writeValues(ctx context.Context, spreadsheetID string, entry domain.SheetPayload) error {
	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return err
	}

	values := make([][]any, 0, len(entry.Rows)+1)
	header := make([]any, len(entry.Headers))
	for i, h := range entry.Headers {
		header[i] = h
	}
	values = append(values, header)
	values = append(values, entry.Rows...)

	rng := fmt.Sprintf("%s!A1", quoteSheet(entry.Name))
	_, err := c.sheets.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption(rawInput).Context(ctx).Do()
	return err
}

// applyValidation installs the inferred rules as one batched update
// restricted to the data rows (sheet rows 2 through rowCount+1).
// Columns without a rule are skipped; with no rules or no data rows the
// call is a no-op.
func (c *Client) applyValidation(
	ctx context.Context, spreadsheetID string, sheetID int64,
	rules []*sheets.DataValidationRule, rowCount int64,
) error {
	if rowCount == 0 {
		return nil
	}

	var requests []*sheets.Request
	for col, rule := range rules {
		if rule == nil {
			continue
		}
		requests = append(requests, &sheets.Request{
			SetDataValidation: &sheets.SetDataValidationRequest{
				Range: &sheets.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    1,
					EndRowIndex:      rowCount + 1,
					StartColumnIndex: int64(col),
					EndColumnIndex:   int64(col) + 1,
				},
				Rule: rule,
			},
		})
	}
	if len(requests) == 0 {
		return nil
	}

	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return err
	}
	_, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}
