// Package report writes the scan results as a text report, a JSON
// mirror of the raw listing, and a per-extension summary table.
package report

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dbsmedya/driveindex/internal/logger"
	"github.com/dbsmedya/driveindex/internal/resolver"
	"github.com/dbsmedya/driveindex/internal/types"
)

// Writer renders the pipe-delimited text report. Writes are not atomic;
// a failure mid-write leaves a truncated file.
type Writer struct {
	resolver     *resolver.Resolver
	includeLinks bool
	log          *logger.Logger
}

// NewWriter creates a report Writer.
func NewWriter(res *resolver.Resolver, includeLinks bool, log *logger.Logger) *Writer {
	return &Writer{
		resolver:     res,
		includeLinks: includeLinks,
		log:          log,
	}
}

// WriteText writes the text report: a commented header with the file
// count, then one line per image in listing order.
func (w *Writer) WriteText(ctx context.Context, path string, records []types.ImageRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)

	fmt.Fprintln(buf, "# Google Drive Image Paths")
	fmt.Fprintf(buf, "# Total images found: %d\n", len(records))
	fmt.Fprintln(buf, "# Format: [Full Path] | [File ID] | [View Link] | [Download Link]")
	fmt.Fprintln(buf)

	for _, rec := range records {
		fullPath := w.FullPath(ctx, rec)
		if w.includeLinks {
			fmt.Fprintf(buf, "%s | %s | %s | %s\n",
				fullPath, rec.ID, rec.WebViewLink, rec.WebContentLink)
		} else {
			fmt.Fprintln(buf, fullPath)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write report file %q: %w", path, err)
	}

	w.log.Debugw("Wrote text report", "path", path, "images", len(records))
	return nil
}

// FullPath returns the slash-separated path of an image, folder chain
// included. Parentless files resolve to their bare name.
func (w *Writer) FullPath(ctx context.Context, rec types.ImageRecord) string {
	if len(rec.Parents) == 0 {
		return rec.Name
	}
	folderPath := w.resolver.FolderPath(ctx, rec.Parents[0])
	return folderPath + "/" + rec.Name
}
