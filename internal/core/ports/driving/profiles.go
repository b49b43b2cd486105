package driving

import (
	"context"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// ProfileService manages credential profiles.
type ProfileService interface {
	// Save creates or updates a profile.
	Save(ctx context.Context, profile domain.CredentialProfile) error

	// Get retrieves a profile by ID.
	Get(ctx context.Context, id string) (*domain.CredentialProfile, error)

	// Resolve retrieves a profile by name or ID, preferring the name.
	Resolve(ctx context.Context, nameOrID string) (*domain.CredentialProfile, error)

	// List returns all profiles.
	List(ctx context.Context) ([]domain.CredentialProfile, error)

	// Delete removes a profile.
	// Returns an error if the profile is the configured default.
	Delete(ctx context.Context, id string) error

	// Credential loads the credential material a profile points at.
	Credential(ctx context.Context, profile domain.CredentialProfile) (domain.Credential, error)
}
