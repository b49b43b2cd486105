package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Scopes requested for every session: full Sheets access plus Drive for
// document creation and permission grants.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveScope,
}

// NewSheetsService creates a Sheets API service using the provided
// TokenSource. Extra options are appended after the token source, so
// tests can redirect the service at a local endpoint.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*sheets.Service, error) {
	return sheets.NewService(ctx, append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)...)
}

// NewDriveService creates a Google Drive API service using the provided
// TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*drive.Service, error) {
	return drive.NewService(ctx, append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)...)
}
