package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/driveindex/internal/types"
)

func TestJSONPath(t *testing.T) {
	tests := []struct {
		textPath string
		want     string
	}{
		{"image_paths.txt", "image_paths.json"},
		{"report.out", "report.json"},
		{"noextension", "noextension.json"},
		{"dir/paths.txt", "dir/paths.json"},
		{"archive.tar.gz", "archive.tar.json"},
	}

	for _, tt := range tests {
		t.Run(tt.textPath, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONPath(tt.textPath))
		})
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	records := []types.ImageRecord{
		{Name: "a.jpg", ID: "id1", WebViewLink: "v1", WebContentLink: "d1", Parents: []string{"p1"}},
		{Name: "b.png", ID: "id2"},
		{Name: "c.gif", ID: "id3", Parents: []string{"p1", "p2"}},
	}

	path := filepath.Join(t.TempDir(), "image_paths.json")
	err := WriteJSON(path, records)
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var parsed []types.ImageRecord
	err = json.Unmarshal(data, &parsed)
	assert.NoError(t, err)

	// The parsed output reproduces exactly the in-memory listing
	assert.Len(t, parsed, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.ID, parsed[i].ID)
	}
	assert.Equal(t, records, parsed)
}

func TestWriteJSONFieldNames(t *testing.T) {
	records := []types.ImageRecord{
		{Name: "a.jpg", ID: "id1", WebViewLink: "v1", WebContentLink: "d1"},
	}

	path := filepath.Join(t.TempDir(), "out.json")
	err := WriteJSON(path, records)
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"web_view_link"`)
	assert.Contains(t, string(data), `"web_content_link"`)
	assert.Contains(t, string(data), `"parents"`)
}
