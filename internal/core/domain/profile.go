package domain

import "time"

// CredentialProfile is a named, reusable pointer to Google credentials.
// Profiles let the CLI switch between accounts without re-entering key
// paths; the key material itself stays on disk and is loaded at client
// construction.
type CredentialProfile struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Name is the human-readable profile name, e.g. "reporting-bot".
	Name string `json:"name"`

	// Kind selects service-account or application-default resolution.
	Kind CredentialKind `json:"kind"`

	// KeyFile is the path to the service-account JSON key. Empty for
	// application-default profiles.
	KeyFile string `json:"key_file,omitempty"`

	// CreatedAt is when the profile was added.
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the profile is usable.
func (p CredentialProfile) Validate() error {
	if p.ID == "" || p.Name == "" {
		return ErrInvalidInput
	}
	if p.Kind == CredentialServiceAccount && p.KeyFile == "" {
		return ErrAuthRequired
	}
	return nil
}
