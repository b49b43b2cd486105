// Package cli implements the sheetctl command-line interface using cobra.
// Commands are wired to core services by the main package via SetServices.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driven"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driving"
	"github.com/custodia-labs/sheetctl/internal/core/services"
	"github.com/custodia-labs/sheetctl/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	profileService driving.ProfileService
	configStore    driven.ConfigStore

	// clientFactory builds a spreadsheet service for the given
	// credential. Commands call it lazily so auth and config commands
	// work without Google credentials present.
	clientFactory func(ctx context.Context, cred domain.Credential) (driving.SpreadsheetService, error)
)

// Persistent flags.
var (
	flagVerbose bool
	flagProfile string
)

var rootCmd = &cobra.Command{
	Use:   "sheetctl",
	Short: "Manage Google Sheets from the command line",
	Long: `sheetctl reads, writes, and creates Google Sheets documents.

Authentication uses service-account credentials stored as named
profiles (see 'sheetctl auth'), or Application Default Credentials
when no profile is configured.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "credential profile to use (name or ID)")
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the core services the commands depend on.
func SetServices(
	profiles driving.ProfileService,
	config driven.ConfigStore,
	factory func(ctx context.Context, cred domain.Credential) (driving.SpreadsheetService, error),
) {
	profileService = profiles
	configStore = config
	clientFactory = factory
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveCredential picks the credential for this invocation:
// --profile flag, then the configured default profile, then
// Application Default Credentials.
func resolveCredential(ctx context.Context) (domain.Credential, error) {
	if profileService == nil {
		return domain.Credential{}, errors.New("profile service not configured")
	}

	selector := flagProfile
	if selector == "" && configStore != nil {
		selector = configStore.GetString(services.DefaultProfileKey)
	}

	if selector == "" {
		logger.Debug("no profile selected, using application default credentials")
		return domain.ApplicationDefaultCredential(), nil
	}

	profile, err := profileService.Resolve(ctx, selector)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("resolving profile %q: %w", selector, err)
	}

	logger.Debug("using profile %s (%s)", profile.Name, profile.ID)
	return profileService.Credential(ctx, *profile)
}

// spreadsheetClient builds the spreadsheet service for this invocation.
func spreadsheetClient(ctx context.Context) (driving.SpreadsheetService, error) {
	if clientFactory == nil {
		return nil, errors.New("spreadsheet service not configured")
	}

	cred, err := resolveCredential(ctx)
	if err != nil {
		return nil, err
	}

	return clientFactory(ctx, cred)
}
