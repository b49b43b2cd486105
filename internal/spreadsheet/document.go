package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/sheetctl/internal/connectors/google"
	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/logger"
)

// MimeTypeSpreadsheet is the Drive MIME type for a Sheets document.
const MimeTypeSpreadsheet = "application/vnd.google-apps.spreadsheet"

// CreateDocument creates a new spreadsheet document and applies the
// permission grants concurrently. Ownership transfer is requested
// exactly for grants whose role is owner; no notification email is
// sent. Grants that fail do not remove the document: the returned
// DocumentInfo is valid even when the error is non-nil.
func (c *Client) CreateDocument(
	ctx context.Context, title string, grants []domain.PermissionGrant,
) (domain.DocumentInfo, error) {
	for _, grant := range grants {
		if err := grant.Validate(); err != nil {
			return domain.DocumentInfo{}, err
		}
	}

	if err := c.driveLimit.Wait(ctx); err != nil {
		return domain.DocumentInfo{}, err
	}

	file, err := c.drive.Files.Create(&drive.File{
		Name:     title,
		MimeType: MimeTypeSpreadsheet,
	}).Fields("id, webViewLink").Context(ctx).Do()
	if err != nil {
		return domain.DocumentInfo{}, fmt.Errorf("create document: %w", err)
	}
	if file.Id == "" {
		return domain.DocumentInfo{}, fmt.Errorf(
			"%w: created document has no identifier", domain.ErrMissingData)
	}

	info := domain.DocumentInfo{ID: file.Id, URL: file.WebViewLink}
	if info.URL == "" {
		info.URL = ResolveURL(info.ID)
	}
	logger.Debug("Created spreadsheet %s (%q)", info.ID, title)

	errs := make([]error, len(grants))
	var wg sync.WaitGroup
	wg.Add(len(grants))

	for i, grant := range grants {
		go func(i int, grant domain.PermissionGrant) {
			defer wg.Done()
			if err := c.applyGrant(ctx, info.ID, grant); err != nil {
				errs[i] = fmt.Errorf("grant %s to %s: %w", grant.Role, grant.Principal, err)
			}
		}(i, grant)
	}

	wg.Wait()
	return info, errors.Join(errs...)
}

// applyGrant creates a single Drive permission on the document.
func (c *Client) applyGrant(ctx context.Context, fileID string, grant domain.PermissionGrant) error {
	if err := c.driveLimit.Wait(ctx); err != nil {
		return err
	}

	perm := &drive.Permission{
		Role: grant.Role,
		Type: grant.Type,
	}
	switch grant.Type {
	case domain.GranteeDomain:
		perm.Domain = grant.Principal
	case domain.GranteeUser, domain.GranteeGroup:
		perm.EmailAddress = grant.Principal
	}

	_, err := c.drive.Permissions.Create(fileID, perm).
		TransferOwnership(grant.TransfersOwnership()).
		SendNotificationEmail(false).
		Context(ctx).
		Do()
	return err
}

// URL fetches the canonical URL of a spreadsheet from its metadata.
func (c *Client) URL(ctx context.Context, spreadsheetID string) (string, bool, error) {
	if err := c.sheetsLimit.Wait(ctx); err != nil {
		return "", false, err
	}

	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("spreadsheetUrl").
		Context(ctx).
		Do()
	if err != nil {
		if google.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if meta.SpreadsheetUrl == "" {
		return ResolveURL(spreadsheetID), true, nil
	}
	return meta.SpreadsheetUrl, true, nil
}

// ResolveURL builds the canonical spreadsheet URL from an ID without a
// remote call.
func ResolveURL(spreadsheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + spreadsheetID + "/edit"
}
