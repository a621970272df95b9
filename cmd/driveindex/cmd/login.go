package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/driveindex/internal/auth"
	"github.com/dbsmedya/driveindex/internal/logger"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize against Google Drive and cache the OAuth token",
	Long: `Login runs the read-only authorization flow on its own and persists
the resulting token, so a later scan can run without prompting.

If a cached token is still valid this is a no-op; an expired token with
a refresh token is refreshed silently.

Example:
  driveindex login --config driveindex.yaml`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.PageSize)

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	authenticator := auth.New(auth.Options{
		CredentialsFile: cfg.Auth.CredentialsFile,
		TokenFile:       cfg.Auth.TokenFile,
		AuthInput:       cmd.InOrStdin(),
		AuthOutput:      cmd.OutOrStdout(),
	}, log)

	if err := authenticator.Login(context.Background()); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	cmd.Printf("Token saved to %s\n", cfg.Auth.TokenFile)
	return nil
}
