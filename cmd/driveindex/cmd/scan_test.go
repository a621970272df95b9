package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanCommandStructure(t *testing.T) {
	assert.NotNil(t, scanCmd)
	assert.Equal(t, "scan", scanCmd.Use)
	assert.NotEmpty(t, scanCmd.Short)
	assert.NotEmpty(t, scanCmd.Long)
	assert.NotNil(t, scanCmd.RunE)
}

func TestScanFlags(t *testing.T) {
	flags := scanCmd.Flags()

	folderFlag := flags.Lookup("folder")
	assert.NotNil(t, folderFlag)
	assert.Equal(t, "f", folderFlag.Shorthand)

	outputFlag := flags.Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	assert.NotNil(t, flags.Lookup("no-links"))
	assert.NotNil(t, flags.Lookup("non-interactive"))
}

func TestPromptString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{
			name:  "value entered",
			input: "photos.txt\n",
			def:   "image_paths.txt",
			want:  "photos.txt",
		},
		{
			name:  "blank uses default",
			input: "\n",
			def:   "image_paths.txt",
			want:  "image_paths.txt",
		},
		{
			name:  "whitespace trimmed",
			input: "  out.txt  \n",
			def:   "image_paths.txt",
			want:  "out.txt",
		},
		{
			name:  "eof uses default",
			input: "",
			def:   "image_paths.txt",
			want:  "image_paths.txt",
		},
		{
			name:  "value without trailing newline",
			input: "last.txt",
			def:   "image_paths.txt",
			want:  "last.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			in := bufio.NewReader(strings.NewReader(tt.input))

			got := promptString(in, &out, "Output filename: ", tt.def)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Output filename: ", out.String())
		})
	}
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"explicit yes", "y\n", true},
		{"explicit no", "n\n", false},
		{"uppercase no", "N\n", false},
		{"blank defaults yes", "\n", true},
		{"anything else is yes", "sure\n", true},
		{"eof defaults yes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			in := bufio.NewReader(strings.NewReader(tt.input))

			got := promptYesNo(in, &out, "Include download links? (y/n, default: y): ")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanCmd_Execute_BadConfig(t *testing.T) {
	origCfgFile := cfgFile
	defer func() {
		cfgFile = origCfgFile
		rootCmd.SetArgs(nil)
	}()

	// An explicitly passed config path that does not exist is fatal
	rootCmd.SetArgs([]string{"scan", "--non-interactive",
		"--config", "/tmp/nonexistent_driveindex_config.yaml"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	assert.Error(t, err)
}
