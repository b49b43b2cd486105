package spreadsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/connectors/google"
	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// DefaultColumnBound is the rightmost column fetched by value reads.
// Sheets wider than this are truncated on read; the bound is kept
// configurable because the limit is part of the documented behaviour,
// not a property of the remote service.
const DefaultColumnBound = "Z"

// Client performs read and write operations against Google Sheets
// documents and Drive permissions. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service

	sheetsLimit *google.RateLimiter
	driveLimit  *google.RateLimiter

	columnBound string
	locks       *keyedLocks
}

type options struct {
	columnBound string
	sheetsLimit *google.RateLimiter
	driveLimit  *google.RateLimiter
	clientOpts  []option.ClientOption
}

// Option configures a Client.
type Option func(*options)

// WithColumnBound overrides the rightmost column used for value reads.
func WithColumnBound(bound string) Option {
	return func(o *options) {
		if bound != "" {
			o.columnBound = bound
		}
	}
}

// WithRateLimits replaces the default per-service rate limiters.
func WithRateLimits(sheetsCfg, driveCfg google.RateLimitConfig) Option {
	return func(o *options) {
		o.sheetsLimit = google.NewRateLimiterWithConfig(sheetsCfg)
		o.driveLimit = google.NewRateLimiterWithConfig(driveCfg)
	}
}

// WithClientOptions appends extra options to the underlying SDK
// services. Used by tests to point the client at a local endpoint.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		columnBound: DefaultColumnBound,
		sheetsLimit: google.NewRateLimiter(google.ServiceSheets),
		driveLimit:  google.NewRateLimiter(google.ServiceDrive),
	}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// New constructs a Client from a tagged credential. The session is
// derived eagerly; a credential that yields no usable session fails
// here, wrapped with domain.ErrAuthInvalid, and is never retried.
func New(ctx context.Context, cred domain.Credential, opts ...Option) (*Client, error) {
	ts, err := google.TokenSource(ctx, cred)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)

	sheetsSvc, err := google.NewSheetsService(ctx, ts, o.clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, ts, o.clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return newClient(sheetsSvc, driveSvc, o), nil
}

// NewWithServices wires a Client over already-constructed SDK services.
// Intended for tests and callers that manage service construction
// themselves.
func NewWithServices(sheetsSvc *sheets.Service, driveSvc *drive.Service, opts ...Option) *Client {
	return newClient(sheetsSvc, driveSvc, buildOptions(opts))
}

func newClient(sheetsSvc *sheets.Service, driveSvc *drive.Service, o *options) *Client {
	return &Client{
		sheets:      sheetsSvc,
		drive:       driveSvc,
		sheetsLimit: o.sheetsLimit,
		driveLimit:  o.driveLimit,
		columnBound: o.columnBound,
		locks:       newKeyedLocks(),
	}
}

// ColumnBound returns the configured rightmost read column.
func (c *Client) ColumnBound() string {
	return c.columnBound
}
