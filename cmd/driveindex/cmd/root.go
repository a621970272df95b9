package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/driveindex/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	pageSize  int64
)

var rootCmd = &cobra.Command{
	Use:   "driveindex",
	Short: "Google Drive Image Path Extractor",
	Long: `A CLI tool that enumerates image files across a Google Drive account,
resolves each file's folder hierarchy into a full path, and writes a
pipe-delimited text report plus a JSON mirror of the raw listing.

Features:
  - Read-only OAuth flow with a cached, refreshable token
  - Whole-account or single-folder scans with full pagination
  - Case-insensitive image extension filtering
  - Folder path resolution with per-run memoization
  - Text report and JSON output side by side`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "driveindex.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Listing overrides
	rootCmd.PersistentFlags().Int64Var(&pageSize, "page-size", 0,
		"Override listing page size (1-1000)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// loadConfig loads the configuration. A missing file is tolerated only
// at the default path; an explicitly passed --config must exist.
func loadConfig() (*config.Config, error) {
	if rootCmd.PersistentFlags().Changed("config") {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(cfgFile)
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	PageSize  int64
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		PageSize:  pageSize,
	}
}
