package domain

import "fmt"

// Permission roles understood by Drive.
const (
	RoleOwner     = "owner"
	RoleWriter    = "writer"
	RoleCommenter = "commenter"
	RoleReader    = "reader"
)

// Grantee types understood by Drive.
const (
	GranteeUser   = "user"
	GranteeGroup  = "group"
	GranteeDomain = "domain"
	GranteeAnyone = "anyone"
)

// PermissionGrant is a single permission entry to apply to a document.
// Principal is the email address for user/group grants and the domain
// name for domain grants; it is ignored for "anyone".
type PermissionGrant struct {
	Role      string `json:"role"`
	Type      string `json:"type"`
	Principal string `json:"principal,omitempty"`
}

// TransfersOwnership reports whether applying this grant implies an
// ownership transfer.
func (g PermissionGrant) TransfersOwnership() bool {
	return g.Role == RoleOwner
}

// Validate checks the grant has a role and type, and a principal when
// the type requires one.
func (g PermissionGrant) Validate() error {
	switch g.Role {
	case RoleOwner, RoleWriter, RoleCommenter, RoleReader:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, g.Role)
	}
	switch g.Type {
	case GranteeUser, GranteeGroup, GranteeDomain:
		if g.Principal == "" {
			return fmt.Errorf("%w: %s grant needs a principal", ErrInvalidInput, g.Type)
		}
	case GranteeAnyone:
	default:
		return fmt.Errorf("%w: unknown grantee type %q", ErrInvalidInput, g.Type)
	}
	return nil
}

// DocumentInfo identifies a newly created spreadsheet document.
type DocumentInfo struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}
