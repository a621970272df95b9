package drive

import (
	"context"
	"fmt"
	"time"

	"github.com/dbsmedya/driveindex/internal/logger"
	"github.com/dbsmedya/driveindex/internal/types"
)

// maxPageSize is the largest page size files.list accepts.
const maxPageSize = 1000

// Lister enumerates non-trashed image files, paging through the full
// result set. Ordering is whatever the provider returns.
type Lister struct {
	api        FilesAPI
	extensions types.ExtensionSet
	pageSize   int64
	log        *logger.Logger
}

// NewLister creates a Lister. Page sizes outside 1..1000 are clamped.
func NewLister(api FilesAPI, extensions types.ExtensionSet, pageSize int64, log *logger.Logger) *Lister {
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return &Lister{
		api:        api,
		extensions: extensions,
		pageSize:   pageSize,
		log:        log,
	}
}

// BuildQuery returns the files.list query for a scan, optionally scoped
// to a single folder.
func BuildQuery(folderID string) string {
	query := "trashed=false"
	if folderID != "" {
		query = fmt.Sprintf("%s and '%s' in parents", query, folderID)
	}
	return query
}

// ListImages returns every non-trashed file whose extension matches the
// configured image extensions, in provider order. An empty folderID scans
// the whole drive. Any listing error is fatal for the scan.
func (l *Lister) ListImages(ctx context.Context, folderID string) ([]types.ImageRecord, types.ScanStats, error) {
	query := BuildQuery(folderID)
	start := time.Now()

	var (
		images    []types.ImageRecord
		stats     types.ScanStats
		pageToken string
	)

	for {
		page, err := l.api.ListPage(ctx, query, pageToken, l.pageSize)
		if err != nil {
			return nil, stats, fmt.Errorf("failed to list files: %w", err)
		}
		stats.PagesFetched++

		for _, file := range page.Files {
			stats.FilesSeen++
			if !l.extensions.Matches(file.Name) {
				continue
			}
			images = append(images, types.ImageRecord{
				Name:           file.Name,
				ID:             file.Id,
				WebViewLink:    file.WebViewLink,
				WebContentLink: file.WebContentLink,
				Parents:        file.Parents,
			})
		}

		l.log.Debugw("Fetched page",
			"page", stats.PagesFetched,
			"files", len(page.Files),
			"images_so_far", len(images),
		)

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	stats.ImagesFound = len(images)
	stats.Duration = time.Since(start)
	return images, stats, nil
}
