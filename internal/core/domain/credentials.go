package domain

// CredentialKind tags the source of a Google credential.
type CredentialKind string

const (
	// CredentialServiceAccount is a service-account JSON key supplied by
	// the caller.
	CredentialServiceAccount CredentialKind = "service_account"

	// CredentialApplicationDefault resolves credentials from the
	// environment (GOOGLE_APPLICATION_CREDENTIALS, gcloud, metadata
	// server).
	CredentialApplicationDefault CredentialKind = "application_default"
)

// Credential is an explicit, tagged credential descriptor. The key
// material is held opaque; it is used exactly once, at client
// construction, to derive a token source.
type Credential struct {
	Kind CredentialKind

	// ServiceAccountJSON holds the key file contents when Kind is
	// CredentialServiceAccount. Empty otherwise.
	ServiceAccountJSON []byte
}

// ServiceAccountCredential wraps a service-account JSON key.
func ServiceAccountCredential(keyJSON []byte) Credential {
	return Credential{
		Kind:               CredentialServiceAccount,
		ServiceAccountJSON: keyJSON,
	}
}

// ApplicationDefaultCredential resolves credentials from the environment.
func ApplicationDefaultCredential() Credential {
	return Credential{Kind: CredentialApplicationDefault}
}

// Validate checks the credential is internally consistent.
func (c Credential) Validate() error {
	switch c.Kind {
	case CredentialServiceAccount:
		if len(c.ServiceAccountJSON) == 0 {
			return ErrAuthRequired
		}
	case CredentialApplicationDefault:
		// Nothing to check locally; resolution happens at construction.
	default:
		return ErrInvalidInput
	}
	return nil
}
