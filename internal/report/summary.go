package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/driveindex/internal/types"
)

// ExtensionCount is one row of the per-extension summary.
type ExtensionCount struct {
	Extension string
	Count     int
}

// Summarize counts images per extension, most frequent first (ties
// break alphabetically). Extensionless names count under "(none)".
func Summarize(records []types.ImageRecord) []ExtensionCount {
	counts := make(map[string]int)
	for _, rec := range records {
		ext := types.Extension(rec.Name)
		if ext == "" {
			ext = "(none)"
		}
		counts[ext]++
	}

	rows := make([]ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		rows = append(rows, ExtensionCount{Extension: ext, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Extension < rows[j].Extension
	})
	return rows
}

// RenderSummary writes the per-extension table with aligned columns.
// Widths are computed with runewidth so non-ASCII extensions line up.
func RenderSummary(w io.Writer, rows []ExtensionCount) {
	if len(rows) == 0 {
		return
	}

	extWidth := runewidth.StringWidth("Extension")
	for _, row := range rows {
		if width := runewidth.StringWidth(row.Extension); width > extWidth {
			extWidth = width
		}
	}

	fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight("Extension", extWidth), "Count")
	for _, row := range rows {
		fmt.Fprintf(w, "%s  %d\n", runewidth.FillRight(row.Extension, extWidth), row.Count)
	}
}
