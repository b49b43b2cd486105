package driven

import (
	"context"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// ProfileStore persists credential profiles. A profile points at
// reusable Google credentials (a service-account key file or the
// application-default chain) so the CLI can switch accounts by name.
type ProfileStore interface {
	// Save stores a profile. Creates if new, updates if exists.
	Save(ctx context.Context, profile domain.CredentialProfile) error

	// Get retrieves a profile by ID.
	Get(ctx context.Context, id string) (*domain.CredentialProfile, error)

	// GetByName retrieves a profile by its human-readable name.
	GetByName(ctx context.Context, name string) (*domain.CredentialProfile, error)

	// List returns all profiles.
	List(ctx context.Context) ([]domain.CredentialProfile, error)

	// Delete removes a profile by ID.
	Delete(ctx context.Context, id string) error
}
