package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "driveindex.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `auth:
  credentials_file: /etc/driveindex/creds.json
  token_file: /etc/driveindex/token.json

scan:
  folder_id: 1aBcDeFg
  page_size: 250
  extensions: [.jpg, .png]

output:
  file: photos.txt
  include_links: false
  write_json: false

logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "/etc/driveindex/creds.json", cfg.Auth.CredentialsFile)
	assert.Equal(t, "/etc/driveindex/token.json", cfg.Auth.TokenFile)
	assert.Equal(t, "1aBcDeFg", cfg.Scan.FolderID)
	assert.Equal(t, int64(250), cfg.Scan.PageSize)
	assert.Equal(t, []string{".jpg", ".png"}, cfg.Scan.Extensions)
	assert.Equal(t, "photos.txt", cfg.Output.File)
	assert.False(t, cfg.Output.IncludeLinks)
	assert.False(t, cfg.Output.WriteJSON)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `scan:
  folder_id: xyz
`)

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "xyz", cfg.Scan.FolderID)
	// Untouched sections keep defaults
	assert.Equal(t, "credentials.json", cfg.Auth.CredentialsFile)
	assert.Equal(t, int64(1000), cfg.Scan.PageSize)
	assert.Equal(t, "image_paths.txt", cfg.Output.File)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	// Missing file at the default path falls back to defaults
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Existing file is loaded normally
	path := writeConfig(t, `output:
  file: out.txt
`)
	cfg, err = LoadOrDefault(path)
	assert.NoError(t, err)
	assert.Equal(t, "out.txt", cfg.Output.File)

	// A broken file is still an error
	broken := writeConfig(t, "output: [unclosed")
	_, err = LoadOrDefault(broken)
	assert.Error(t, err)
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("DRIVEINDEX_HOME", "/home/scanner")

	path := writeConfig(t, `auth:
  credentials_file: ${DRIVEINDEX_HOME}/creds.json
  token_file: $DRIVEINDEX_HOME/token.json

output:
  file: ${DRIVEINDEX_HOME}/report.txt
`)

	cfg, err := Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "/home/scanner/creds.json", cfg.Auth.CredentialsFile)
	assert.Equal(t, "/home/scanner/token.json", cfg.Auth.TokenFile)
	assert.Equal(t, "/home/scanner/report.txt", cfg.Output.File)
}

func TestEnvVarSubstitutionUnsetKeepsOriginal(t *testing.T) {
	path := writeConfig(t, `auth:
  credentials_file: ${DRIVEINDEX_UNSET_VAR}/creds.json
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "${DRIVEINDEX_UNSET_VAR}/creds.json", cfg.Auth.CredentialsFile)
}
