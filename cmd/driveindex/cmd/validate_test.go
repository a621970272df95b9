package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testClientSecret is a syntactically valid installed-app client secret.
const testClientSecret = `{
  "installed": {
    "client_id": "test-client.apps.googleusercontent.com",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "client_secret": "test-secret",
    "redirect_uris": ["http://localhost"]
  }
}`

func TestValidateCommandStructure(t *testing.T) {
	assert.NotNil(t, validateCmd)
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.NotEmpty(t, validateCmd.Long)
	assert.NotNil(t, validateCmd.RunE)
}

func TestRunValidate(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tmpDir := t.TempDir()
	credentials := filepath.Join(tmpDir, "credentials.json")
	err := os.WriteFile(credentials, []byte(testClientSecret), 0600)
	assert.NoError(t, err)

	validConfig := filepath.Join(tmpDir, "valid.yaml")
	err = os.WriteFile(validConfig, []byte(fmt.Sprintf(`auth:
  credentials_file: %s
  token_file: %s
`, credentials, filepath.Join(tmpDir, "token.json"))), 0644)
	assert.NoError(t, err)

	invalidConfig := filepath.Join(tmpDir, "invalid.yaml")
	err = os.WriteFile(invalidConfig, []byte(`scan:
  page_size: 99999
`), 0644)
	assert.NoError(t, err)

	missingCreds := filepath.Join(tmpDir, "missing-creds.yaml")
	err = os.WriteFile(missingCreds, []byte(fmt.Sprintf(`auth:
  credentials_file: %s
`, filepath.Join(tmpDir, "absent.json"))), 0644)
	assert.NoError(t, err)

	tests := []struct {
		name       string
		configFile string
		wantErr    bool
		wantOutput string
	}{
		{
			name:       "valid config and credentials",
			configFile: validConfig,
			wantErr:    false,
			wantOutput: "Credentials OK",
		},
		{
			name:       "invalid config values",
			configFile: invalidConfig,
			wantErr:    true,
		},
		{
			name:       "missing credentials file",
			configFile: missingCreds,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.configFile

			var buf bytes.Buffer
			validateCmd.SetOut(&buf)
			validateCmd.SetErr(&buf)

			err := runValidate(validateCmd, []string{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, buf.String(), tt.wantOutput)
				assert.Contains(t, buf.String(), "No token cache yet")
			}
		})
	}
}

func TestRunValidateReportsTokenPresence(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tmpDir := t.TempDir()
	credentials := filepath.Join(tmpDir, "credentials.json")
	err := os.WriteFile(credentials, []byte(testClientSecret), 0600)
	assert.NoError(t, err)

	token := filepath.Join(tmpDir, "token.json")
	err = os.WriteFile(token, []byte(`{"access_token":"x"}`), 0600)
	assert.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(fmt.Sprintf(`auth:
  credentials_file: %s
  token_file: %s
`, credentials, token)), 0644)
	assert.NoError(t, err)

	cfgFile = configPath

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	validateCmd.SetErr(&buf)

	err = runValidate(validateCmd, []string{})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Token cache present")
}
