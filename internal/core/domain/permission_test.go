package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionGrantValidate(t *testing.T) {
	tests := []struct {
		name    string
		grant   PermissionGrant
		wantErr bool
	}{
		{
			name:  "user writer",
			grant: PermissionGrant{Role: RoleWriter, Type: GranteeUser, Principal: "a@example.com"},
		},
		{
			name:  "domain reader",
			grant: PermissionGrant{Role: RoleReader, Type: GranteeDomain, Principal: "example.com"},
		},
		{
			name:  "anyone reader without principal",
			grant: PermissionGrant{Role: RoleReader, Type: GranteeAnyone},
		},
		{
			name:    "user grant without principal",
			grant:   PermissionGrant{Role: RoleWriter, Type: GranteeUser},
			wantErr: true,
		},
		{
			name:    "unknown role",
			grant:   PermissionGrant{Role: "admin", Type: GranteeUser, Principal: "a@example.com"},
			wantErr: true,
		},
		{
			name:    "unknown grantee type",
			grant:   PermissionGrant{Role: RoleReader, Type: "robot", Principal: "a@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grant.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPermissionGrantTransfersOwnership(t *testing.T) {
	owner := PermissionGrant{Role: RoleOwner, Type: GranteeUser, Principal: "a@example.com"}
	writer := PermissionGrant{Role: RoleWriter, Type: GranteeUser, Principal: "a@example.com"}

	assert.True(t, owner.TransfersOwnership())
	assert.False(t, writer.TransfersOwnership())
}

func TestCredentialValidate(t *testing.T) {
	tests := []struct {
		name    string
		cred    Credential
		wantErr error
	}{
		{
			name: "service account with key",
			cred: ServiceAccountCredential([]byte(`{"type":"service_account"}`)),
		},
		{
			name: "application default",
			cred: ApplicationDefaultCredential(),
		},
		{
			name:    "service account without key",
			cred:    Credential{Kind: CredentialServiceAccount},
			wantErr: ErrAuthRequired,
		},
		{
			name:    "unknown kind",
			cred:    Credential{Kind: "password"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cred.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
