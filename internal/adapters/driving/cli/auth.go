package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/core/services"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage credential profiles",
	Long: `Add, list, and remove credential profiles.

A profile names a Google service-account key file (or the Application
Default Credentials chain) so commands can switch accounts with
--profile instead of passing key paths around.

Examples:
  # Add a service-account profile
  sheetctl auth add --name reporting-bot --key-file ~/keys/bot.json

  # Add an Application Default Credentials profile
  sheetctl auth add --name local-adc --adc

  # Make a profile the default for all commands
  sheetctl auth add --name ci --key-file ci.json --default

  # List configured profiles
  sheetctl auth list`,
}

var authAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new credential profile",
	RunE:  runAuthAdd,
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured credential profiles",
	RunE:  runAuthList,
}

var authRemoveCmd = &cobra.Command{
	Use:   "remove [profile]",
	Short: "Remove a credential profile by name or ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthRemove,
}

// Flags for auth add.
var (
	authAddName    string
	authAddKeyFile string
	authAddADC     bool
	authAddDefault bool
)

func init() {
	authAddCmd.Flags().StringVar(
		&authAddName, "name", "", "Name for the profile (required)")
	authAddCmd.Flags().StringVar(
		&authAddKeyFile, "key-file", "", "Path to a service-account JSON key file")
	authAddCmd.Flags().BoolVar(
		&authAddADC, "adc", false, "Use Application Default Credentials instead of a key file")
	authAddCmd.Flags().BoolVar(
		&authAddDefault, "default", false, "Make this the default profile")

	authCmd.AddCommand(authAddCmd)
	authCmd.AddCommand(authListCmd)
	authCmd.AddCommand(authRemoveCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthAdd(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	if authAddName == "" {
		return errors.New("--name is required")
	}
	if authAddKeyFile == "" && !authAddADC {
		return errors.New("either --key-file or --adc is required")
	}
	if authAddKeyFile != "" && authAddADC {
		return errors.New("--key-file and --adc are mutually exclusive")
	}

	ctx := context.Background()

	profile := domain.CredentialProfile{
		ID:        uuid.New().String(),
		Name:      authAddName,
		Kind:      domain.CredentialServiceAccount,
		CreatedAt: time.Now(),
	}

	if authAddADC {
		profile.Kind = domain.CredentialApplicationDefault
	} else {
		abs, err := filepath.Abs(authAddKeyFile)
		if err != nil {
			return fmt.Errorf("resolving key file path: %w", err)
		}
		profile.KeyFile = abs
	}

	if err := profileService.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if authAddDefault {
		if configStore == nil {
			return errors.New("config store not configured")
		}
		if err := configStore.Set(services.DefaultProfileKey, profile.Name); err != nil {
			return fmt.Errorf("failed to set default profile: %w", err)
		}
	}

	cmd.Printf("Profile created: %s (%s)\n", profile.Name, profile.ID)
	if authAddDefault {
		cmd.Printf("Set as default profile.\n")
	}
	return nil
}

func runAuthList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	ctx := context.Background()
	profiles, err := profileService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		cmd.Println("No profiles configured. Add one with: sheetctl auth add")
		return nil
	}

	defaultName := ""
	if configStore != nil {
		defaultName = configStore.GetString(services.DefaultProfileKey)
	}

	cmd.Println("Configured profiles:")
	for _, p := range profiles {
		marker := " "
		if p.Name == defaultName {
			marker = "*"
		}
		detail := string(p.Kind)
		if p.KeyFile != "" {
			detail = p.KeyFile
		}
		cmd.Printf("%s %s  %s  (%s)\n", marker, p.Name, detail, p.ID)
	}
	return nil
}

func runAuthRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	ctx := context.Background()

	profile, err := profileService.Resolve(ctx, args[0])
	if err != nil {
		return fmt.Errorf("profile %q: %w", args[0], err)
	}

	if err := profileService.Delete(ctx, profile.ID); err != nil {
		if errors.Is(err, domain.ErrProfileInUse) {
			return fmt.Errorf("profile %q is the configured default; change auth.default_profile first", profile.Name)
		}
		return fmt.Errorf("failed to remove profile: %w", err)
	}

	cmd.Printf("Profile removed: %s\n", profile.Name)
	return nil
}
