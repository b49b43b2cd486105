// sheetctl is a command-line tool for reading, writing, and creating
// Google Sheets documents.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/sheetctl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sheetctl/internal/adapters/driving/cli"
	"github.com/custodia-labs/sheetctl/internal/connectors/google"
	"github.com/custodia-labs/sheetctl/internal/core/domain"
	"github.com/custodia-labs/sheetctl/internal/core/ports/driving"
	"github.com/custodia-labs/sheetctl/internal/core/services"
	"github.com/custodia-labs/sheetctl/internal/spreadsheet"
)

// version is overridden at build time:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initializing config store: %w", err)
	}

	profileStore, err := file.NewProfileStore("")
	if err != nil {
		return fmt.Errorf("initializing profile store: %w", err)
	}

	profileService := services.NewProfileService(profileStore, configStore)

	factory := func(ctx context.Context, cred domain.Credential) (driving.SpreadsheetService, error) {
		var opts []spreadsheet.Option
		if bound := configStore.GetString(file.KeyColumnBound); bound != "" {
			opts = append(opts, spreadsheet.WithColumnBound(bound))
		}
		if cfgs, ok := rateLimitOverrides(configStore); ok {
			opts = append(opts, spreadsheet.WithRateLimits(cfgs[0], cfgs[1]))
		}
		return spreadsheet.New(ctx, cred, opts...)
	}

	cli.SetVersion(version)
	cli.SetServices(profileService, configStore, factory)

	return cli.Execute()
}

// rateLimitOverrides reads per-service request rates from config.
// Returns false when neither service has an override, keeping the
// client's built-in defaults.
func rateLimitOverrides(cfg *file.ConfigStore) ([2]google.RateLimitConfig, bool) {
	limits := [2]google.RateLimitConfig{
		google.DefaultRateLimits[google.ServiceSheets],
		google.DefaultRateLimits[google.ServiceDrive],
	}

	overridden := false
	if rps := cfg.GetInt(file.KeySheetsRate); rps > 0 {
		limits[0].RequestsPerSecond = float64(rps)
		overridden = true
	}
	if rps := cfg.GetInt(file.KeyDriveRate); rps > 0 {
		limits[1].RequestsPerSecond = float64(rps)
		overridden = true
	}
	return limits, overridden
}
