package cli

import (
	"context"

	"google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driving"
)

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profiles []domain.CredentialProfile
	profile  *domain.CredentialProfile
	cred     domain.Credential
	err      error

	saved     []domain.CredentialProfile
	deletedID string
}

func (m *mockProfileService) Save(_ context.Context, profile domain.CredentialProfile) error {
	m.saved = append(m.saved, profile)
	return m.err
}

func (m *mockProfileService) Get(_ context.Context, _ string) (*domain.CredentialProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) Resolve(_ context.Context, _ string) (*domain.CredentialProfile, error) {
	if m.profile == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.profile, m.err
}

func (m *mockProfileService) List(_ context.Context) ([]domain.CredentialProfile, error) {
	return m.profiles, m.err
}

func (m *mockProfileService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return m.err
}

func (m *mockProfileService) Credential(_ context.Context, _ domain.CredentialProfile) (domain.Credential, error) {
	return m.cred, m.err
}

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

	writtenEntries []domain.SheetPayload
	createdTitle   string
	createdGrants  []domain.PermissionGrant
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
	_ context.Context, _ string, _ int64, _, _ string,
) ([][]any, bool, error) {
	return m.filtered, m.found, m.err
}

func (m *mockSpreadsheetService) EnsureSheet(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockSpreadsheetService) AddSheetValues(
	_ context.Context, _ string, entries []domain.SheetPayload,
) error {
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

// setupTestServices wires mock services into the package vars and
// returns the mocks plus a cleanup function restoring the old state.
func setupTestServices(spreadsheet *mockSpreadsheetService) (*mockProfileService, func()) {
	oldProfiles := profileService
	oldConfig := configStore
	oldFactory := clientFactory

	profiles := &mockProfileService{
		profile: &domain.CredentialProfile{
			ID:   "test-id",
			Name: "test",
			Kind: domain.CredentialApplicationDefault,
		},
		cred: domain.ApplicationDefaultCredential(),
	}

	profileService = profiles
	configStore = nil
	clientFactory = func(_ context.Context, _ domain.Credential) (driving.SpreadsheetService, error) {
		return spreadsheet, nil
	}

	return profiles, func() {
		profileService = oldProfiles
		configStore = oldConfig
		clientFactory = oldFactory
	}
}
