// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import (
	"path/filepath"
	"strings"
	"time"
)

// ImageRecord represents a single image file discovered in Google Drive.
// The JSON field names mirror the report's JSON output format.
type ImageRecord struct {
	Name           string   `json:"name"`
	ID             string   `json:"id"`
	WebViewLink    string   `json:"web_view_link"`
	WebContentLink string   `json:"web_content_link"`
	Parents        []string `json:"parents"`
}

// ScanStats contains statistics about the listing process.
type ScanStats struct {
	PagesFetched int           // Number of result pages retrieved
	FilesSeen    int           // Total non-trashed files examined
	ImagesFound  int           // Files that passed the extension filter
	Duration     time.Duration // Time taken for the full listing
}

// DefaultImageExtensions lists the extensions treated as images when the
// configuration does not override them.
var DefaultImageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp",
	".tiff", ".tif", ".webp", ".svg", ".ico",
}

// ExtensionSet is a lowercase extension lookup table.
type ExtensionSet map[string]bool

// NewExtensionSet builds an ExtensionSet from a list of extensions.
// Entries are lowercased and get a leading dot if missing.
func NewExtensionSet(extensions []string) ExtensionSet {
	set := make(ExtensionSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// Matches reports whether the file name's extension belongs to the set.
// The comparison is case-insensitive.
func (s ExtensionSet) Matches(name string) bool {
	return s[strings.ToLower(filepath.Ext(name))]
}

// Extension returns the lowercased extension of a file name, including
// the leading dot, or "" when the name has none.
func Extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
