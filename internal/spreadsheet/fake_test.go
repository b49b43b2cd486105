package spreadsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/connectors/google"
)

// fakeGoogle is an in-memory stand-in for the Sheets and Drive REST
// APIs. It serves canned metadata and value ranges and records every
// mutation so tests can assert on the exact requests sent.
type fakeGoogle struct {
	t *testing.T

	mu sync.Mutex

	// meta is served for spreadsheet metadata fetches. AddSheet batch
	// requests append to it so ensure-then-write sequences observe
	// their own writes.
	meta *sheets.Spreadsheet

	// missing spreadsheets answer 404.
	missing bool

	// values maps an A1 range to the rows served for it.
	values map[string][][]any

	batchRequests []*sheets.BatchUpdateSpreadsheetRequest
	valueUpdates  []capturedUpdate
	valueReads    []string
	createdFiles  []*drive.File
	permissions   []capturedPermission

	nextSheetID int64
}

type capturedUpdate struct {
	Range  string
	Values [][]any
	Input  string
}

type capturedPermission struct {
	FileID            string
	Permission        *drive.Permission
	TransferOwnership string
	SendNotification  string
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	return &fakeGoogle{
		t:           t,
		values:      make(map[string][][]any),
		meta:        &sheets.Spreadsheet{SpreadsheetId: "doc"},
		nextSheetID: 100,
	}
}

func (f *fakeGoogle) addSheet(title string, sheetID, rows, cols int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meta.Sheets = append(f.meta.Sheets, &sheets.Sheet{
		Properties: &sheets.SheetProperties{
			SheetId: sheetID,
			Title:   title,
			GridProperties: &sheets.GridProperties{
				RowCount:    rows,
				ColumnCount: cols,
			},
		},
	})
}

func (f *fakeGoogle) serveJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	require.NoError(f.t, json.NewEncoder(w).Encode(v))
}

func (f *fakeGoogle) serveNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`)
}

func (f *fakeGoogle) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.Contains(path, "/values/"):
			f.handleValues(w, r, path[strings.Index(path, "/values/")+len("/values/"):])
		case strings.HasSuffix(path, ":batchUpdate"):
			f.handleBatchUpdate(w, r)
		case strings.HasPrefix(path, "/v4/spreadsheets/"):
			f.handleMetadata(w)
		case strings.HasSuffix(path, "/permissions"):
			f.handlePermission(w, r, path)
		case strings.HasSuffix(path, "/files"):
			f.handleFileCreate(w, r)
		default:
			f.t.Errorf("fake google: unexpected path %s %s", r.Method, path)
			http.NotFound(w, r)
		}
	})
}

func (f *fakeGoogle) handleMetadata(w http.ResponseWriter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing {
		f.serveNotFound(w)
		return
	}
	f.serveJSON(w, f.meta)
}

func (f *fakeGoogle) handleValues(w http.ResponseWriter, r *http.Request, rng string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Method == http.MethodPut {
		var vr sheets.ValueRange
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&vr))
		f.valueUpdates = append(f.valueUpdates, capturedUpdate{
			Range:  rng,
			Values: vr.Values,
			Input:  r.URL.Query().Get("valueInputOption"),
		})
		f.serveJSON(w, &sheets.UpdateValuesResponse{UpdatedRange: rng})
		return
	}

	f.valueReads = append(f.valueReads, rng)
	f.serveJSON(w, &sheets.ValueRange{Range: rng, Values: f.values[rng]})
}

func (f *fakeGoogle) handleBatchUpdate(w http.ResponseWriter, r *http.Request) {
	var req sheets.BatchUpdateSpreadsheetRequest
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

	f.mu.Lock()
	f.batchRequests = append(f.batchRequests, &req)
	for _, request := range req.Requests {
		if request.AddSheet != nil {
			id := f.nextSheetID
			f.nextSheetID++
			f.meta.Sheets = append(f.meta.Sheets, &sheets.Sheet{
				Properties: &sheets.SheetProperties{
					SheetId: id,
					Title:   request.AddSheet.Properties.Title,
					GridProperties: &sheets.GridProperties{
						RowCount:    1000,
						ColumnCount: 26,
					},
				},
			})
		}
	}
	f.mu.Unlock()

	f.serveJSON(w, &sheets.BatchUpdateSpreadsheetResponse{})
}

func (f *fakeGoogle) handleFileCreate(w http.ResponseWriter, r *http.Request) {
	var file drive.File
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&file))

	f.mu.Lock()
	f.createdFiles = append(f.createdFiles, &file)
	f.mu.Unlock()

	f.serveJSON(w, &drive.File{
		Id:          "new-doc-id",
		WebViewLink: "https://docs.google.com/spreadsheets/d/new-doc-id/edit",
	})
}

func (f *fakeGoogle) handlePermission(w http.ResponseWriter, r *http.Request, path string) {
	var perm drive.Permission
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&perm))

	fileID := strings.TrimSuffix(strings.TrimPrefix(path, "/files/"), "/permissions")

	f.mu.Lock()
	f.permissions = append(f.permissions, capturedPermission{
		FileID:            fileID,
		Permission:        &perm,
		TransferOwnership: r.URL.Query().Get("transferOwnership"),
		SendNotification:  r.URL.Query().Get("sendNotificationEmail"),
	})
	f.mu.Unlock()

	f.serveJSON(w, &drive.Permission{Id: "perm-1"})
}

// newTestClient starts an httptest server around the fake and returns a
// Client whose SDK services point at it. Rate limits are opened up so
// tests run instantly.
func newTestClient(t *testing.T, f *fakeGoogle, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	clientOpts := []option.ClientOption{
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL),
	}

	sheetsSvc, err := sheets.NewService(ctx, clientOpts...)
	require.NoError(t, err)
	driveSvc, err := drive.NewService(ctx, clientOpts...)
	require.NoError(t, err)

	opts = append([]Option{WithRateLimits(
		google.RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 1000},
		google.RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 1000},
	)}, opts...)
	return NewWithServices(sheetsSvc, driveSvc, opts...)
}
