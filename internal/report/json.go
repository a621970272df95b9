package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dbsmedya/driveindex/internal/types"
)

// JSONPath derives the JSON mirror's filename from the text report's by
// replacing the extension with .json. Extensionless names just get the
// suffix appended.
func JSONPath(textPath string) string {
	ext := filepath.Ext(textPath)
	return strings.TrimSuffix(textPath, ext) + ".json"
}

// WriteJSON writes the raw listing (no computed paths) as an indented
// JSON array, for programmatic use.
func WriteJSON(path string, records []types.ImageRecord) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	b = append(b, '\n')

	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file %q: %w", path, err)
	}
	return nil
}
