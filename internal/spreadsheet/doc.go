// Package spreadsheet implements the Google Sheets/Drive client behind
// sheetctl. It is a thin convenience layer: it builds request objects,
// calls the vendor SDK, and reshapes responses. Retry, token refresh,
// and transport concerns stay inside the SDK.
//
// Lookups return (value, found, error). found=false means the queried
// object itself could not be resolved; an empty non-nil slice means the
// query ran and matched nothing.
package spreadsheet
