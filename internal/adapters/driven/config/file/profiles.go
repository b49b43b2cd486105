package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is a file-based implementation of driven.ProfileStore.
// Profiles are stored in a TOML file within the sheetctl config
// directory, keyed by profile ID.
type ProfileStore struct {
	mu       sync.RWMutex
	filePath string
	profiles map[string]domain.CredentialProfile
}

// NewProfileStore creates a new TOML-based profile store.
// If configDir is empty, defaults to ~/.sheetctl/profiles.toml.
func NewProfileStore(configDir string) (*ProfileStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".sheetctl")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ProfileStore{
		filePath: filepath.Join(configDir, "profiles.toml"),
		profiles: make(map[string]domain.CredentialProfile),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Save stores a profile. Creates if new, updates if exists.
func (s *ProfileStore) Save(_ context.Context, profile domain.CredentialProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Names are the user-facing handle, so keep them unique.
	for id, existing := range s.profiles {
		if existing.Name == profile.Name && id != profile.ID {
			return fmt.Errorf("profile %q: %w", profile.Name, domain.ErrAlreadyExists)
		}
	}

	s.profiles[profile.ID] = profile
	return s.save()
}

// Get retrieves a profile by ID.
func (s *ProfileStore) Get(_ context.Context, id string) (*domain.CredentialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &profile, nil
}

// GetByName retrieves a profile by its human-readable name.
func (s *ProfileStore) GetByName(_ context.Context, name string) (*domain.CredentialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, profile := range s.profiles {
		if profile.Name == name {
			p := profile
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all profiles sorted by name.
func (s *ProfileStore) List(_ context.Context) ([]domain.CredentialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CredentialProfile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		result = append(result, profile)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Delete removes a profile by ID.
func (s *ProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return domain.ErrNotFound
	}

	delete(s.profiles, id)
	return s.save()
}

// Path returns the profile file path.
func (s *ProfileStore) Path() string {
	return s.filePath
}

// profileFile is the on-disk TOML shape.
type profileFile struct {
	Profiles map[string]domain.CredentialProfile `toml:"profiles"`
}

// save writes profiles to the TOML file (caller must hold lock).
func (s *ProfileStore) save() error {
	data, err := toml.Marshal(profileFile{Profiles: s.profiles})
	if err != nil {
		return err
	}

	// Key file paths are sensitive, restrict permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads profiles from the TOML file.
func (s *ProfileStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var f profileFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.Profiles != nil {
		s.profiles = f.Profiles
	}
	return nil
}
