package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/driveindex/internal/auth"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and credential files",
	Long: `Validate checks the configuration file and the OAuth client secret
file so a scan does not fail halfway through authentication.

Checks performed:
  - Configuration syntax, required fields, and valid values
  - Client secret file existence and format
  - Token cache presence (informational)

Example:
  driveindex validate --config driveindex.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.PageSize)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	cmd.Printf("Configuration OK (%s)\n", configFile)

	// Credentials must exist and parse before a scan can authenticate
	if err := auth.CheckCredentials(cfg.Auth.CredentialsFile); err != nil {
		return fmt.Errorf("credentials check failed: %w", err)
	}
	cmd.Printf("Credentials OK (%s)\n", cfg.Auth.CredentialsFile)

	if _, err := os.Stat(cfg.Auth.TokenFile); err == nil {
		cmd.Printf("Token cache present (%s)\n", cfg.Auth.TokenFile)
	} else {
		cmd.Printf("No token cache yet (%s) - run 'driveindex login'\n", cfg.Auth.TokenFile)
	}

	return nil
}
