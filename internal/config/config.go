// Package config provides configuration structures and loading for driveindex.
package config

import "github.com/dbsmedya/driveindex/internal/types"

// Config represents the complete application configuration.
type Config struct {
	Auth    AuthConfig    `yaml:"auth" mapstructure:"auth"`
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// AuthConfig represents OAuth credential and token cache locations.
type AuthConfig struct {
	CredentialsFile string `yaml:"credentials_file" mapstructure:"credentials_file"`
	TokenFile       string `yaml:"token_file" mapstructure:"token_file"`
}

// ScanConfig represents file listing settings.
type ScanConfig struct {
	FolderID   string   `yaml:"folder_id" mapstructure:"folder_id"`   // empty scans the whole drive
	PageSize   int64    `yaml:"page_size" mapstructure:"page_size"`   // 1..1000
	Extensions []string `yaml:"extensions" mapstructure:"extensions"` // image extensions, with or without leading dot
}

// OutputConfig represents report output settings.
type OutputConfig struct {
	File         string `yaml:"file" mapstructure:"file"`
	IncludeLinks bool   `yaml:"include_links" mapstructure:"include_links"`
	WriteJSON    bool   `yaml:"write_json" mapstructure:"write_json"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// MaxPageSize is the largest page size the Drive files.list endpoint accepts.
const MaxPageSize = 1000

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			CredentialsFile: "credentials.json",
			TokenFile:       "token.json",
		},
		Scan: ScanConfig{
			FolderID:   "",
			PageSize:   MaxPageSize,
			Extensions: append([]string(nil), types.DefaultImageExtensions...),
		},
		Output: OutputConfig{
			File:         "image_paths.txt",
			IncludeLinks: true,
			WriteJSON:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// ExtensionSet returns the configured extensions as a lookup set.
func (c *Config) ExtensionSet() types.ExtensionSet {
	return types.NewExtensionSet(c.Scan.Extensions)
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty/non-zero values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, pageSize int64) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if pageSize > 0 {
		c.Scan.PageSize = pageSize
	}
}
