package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

// TokenSource derives an oauth2.TokenSource from a tagged credential,
// scoped to Sheets and Drive. The credential is consumed exactly once;
// the returned source refreshes itself for the lifetime of the client.
func TokenSource(ctx context.Context, cred domain.Credential) (oauth2.TokenSource, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}

	switch cred.Kind {
	case domain.CredentialServiceAccount:
		cfg, err := googleoauth.JWTConfigFromJSON(cred.ServiceAccountJSON, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w: parse service account key: %v", domain.ErrAuthInvalid, err)
		}
		return cfg.TokenSource(ctx), nil

	case domain.CredentialApplicationDefault:
		creds, err := googleoauth.FindDefaultCredentials(ctx, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve application default credentials: %v", domain.ErrAuthInvalid, err)
		}
		if creds.TokenSource == nil {
			return nil, fmt.Errorf("%w: default credentials yielded no token source", domain.ErrAuthInvalid)
		}
		return creds.TokenSource, nil

	default:
		return nil, domain.ErrInvalidInput
	}
}

// StaticTokenSource wraps a raw access token. Useful for short-lived
// sessions and tests; no refresh is available.
func StaticTokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
}
