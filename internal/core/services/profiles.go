package services

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driven"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driving"
)

// DefaultProfileKey is the config key holding the default profile
// name or ID.
const DefaultProfileKey = "auth.default_profile"

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages credential profile configurations.
type ProfileService struct {
	store  driven.ProfileStore
	config driven.ConfigStore
}

// NewProfileService creates a new profile service.
func NewProfileService(store driven.ProfileStore, config driven.ConfigStore) *ProfileService {
	return &ProfileService{
		store:  store,
		config: config,
	}
}

// Save creates or updates a profile.
func (s *ProfileService) Save(ctx context.Context, profile domain.CredentialProfile) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	return s.store.Save(ctx, profile)
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.CredentialProfile, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// Resolve retrieves a profile by name or ID, preferring the name.
func (s *ProfileService) Resolve(ctx context.Context, nameOrID string) (*domain.CredentialProfile, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if profile, err := s.store.GetByName(ctx, nameOrID); err == nil {
		return profile, nil
	}
	return s.store.Get(ctx, nameOrID)
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]domain.CredentialProfile, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a profile.
// Returns an error if the profile is the configured default.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}

	// The configured default may hold either the name or the ID.
	if s.config != nil {
		def := s.config.GetString(DefaultProfileKey)
		if def != "" {
			if def == id {
				return domain.ErrProfileInUse
			}
			if profile, err := s.store.Get(ctx, id); err == nil && profile.Name == def {
				return domain.ErrProfileInUse
			}
		}
	}

	return s.store.Delete(ctx, id)
}

// Credential loads the credential material a profile points at. For
// service-account profiles the key file is read here, at the moment of
// client construction, and handed over opaque.
func (s *ProfileService) Credential(_ context.Context, profile domain.CredentialProfile) (domain.Credential, error) {
	switch profile.Kind {
	case domain.CredentialServiceAccount:
		keyJSON, err := os.ReadFile(profile.KeyFile)
		if err != nil {
			return domain.Credential{}, fmt.Errorf("%w: read key file %s: %v",
				domain.ErrAuthInvalid, profile.KeyFile, err)
		}
		return domain.ServiceAccountCredential(keyJSON), nil

	case domain.CredentialApplicationDefault:
		return domain.ApplicationDefaultCredential(), nil

	default:
		return domain.Credential{}, domain.ErrInvalidInput
	}
}
