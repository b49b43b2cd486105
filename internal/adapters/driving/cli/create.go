package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new spreadsheet document",
	Long: `Create an empty spreadsheet in Drive and optionally share it.

Each --share takes role:type:principal, where role is one of owner,
writer, commenter, reader and type is one of user, group, domain,
anyone. The principal is an email address for user/group grants, a
domain name for domain grants, and omitted for anyone. An owner grant
transfers ownership of the document. No notification emails are sent.

Examples:
  sheetctl create --title "Q3 Budget"
  sheetctl create --title "Q3 Budget" --share writer:user:team@example.com
  sheetctl create --title "Handoff" --share owner:user:admin@example.com --share reader:anyone`,
	RunE: runCreate,
}

var (
	createTitle  string
	createShares []string
)

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "document title (required)")
	createCmd.Flags().StringArrayVar(&createShares, "share", nil, "permission grant as role:type:principal (repeatable)")
	_ = createCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	grants := make([]domain.PermissionGrant, 0, len(createShares))
	for _, share := range createShares {
		grant, err := parseGrant(share)
		if err != nil {
			return err
		}
		grants = append(grants, grant)
	}

	svc, err := spreadsheetClient(cmd.Context())
	if err != nil {
		return err
	}

	info, err := svc.CreateDocument(cmd.Context(), createTitle, grants)
	if err != nil {
		// The document may exist even when grants failed; report what we have.
		if info.ID != "" {
			cmd.Printf("Created: %s\n", info.ID)
			if info.URL != "" {
				cmd.Printf("URL: %s\n", info.URL)
			}
		}
		return fmt.Errorf("creating document: %w", err)
	}

	cmd.Printf("Created: %s\n", info.ID)
	if info.URL != "" {
		cmd.Printf("URL: %s\n", info.URL)
	}
	return nil
}

// parseGrant parses role:type:principal. The principal part is
// optional for "anyone" grants.
func parseGrant(s string) (domain.PermissionGrant, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return domain.PermissionGrant{}, fmt.Errorf("%w: share %q must be role:type:principal", domain.ErrInvalidInput, s)
	}

	grant := domain.PermissionGrant{
		Role: parts[0],
		Type: parts[1],
	}
	if len(parts) == 3 {
		grant.Principal = parts[2]
	}

	if err := grant.Validate(); err != nil {
		return domain.PermissionGrant{}, fmt.Errorf("share %q: %w", s, err)
	}
	return grant, nil
}
