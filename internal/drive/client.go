// Package drive wraps the Google Drive v3 API for driveindex.
package drive

import (
	"context"
	"fmt"
	"net/http"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// listFields is the field mask requested from files.list. Keeping the mask
// tight keeps page payloads small on large accounts.
const listFields = "nextPageToken, files(id, name, parents, webViewLink, webContentLink)"

// getFields is the field mask for single-file metadata lookups.
const getFields = "name, parents"

// FilesAPI is the subset of the Drive files API the tool depends on.
// The listing and resolving layers accept this interface so tests can
// substitute in-memory fakes.
type FilesAPI interface {
	// ListPage fetches one page of file results for a query.
	ListPage(ctx context.Context, query, pageToken string, pageSize int64) (*drive.FileList, error)

	// GetFile fetches name and parents for a single file by id.
	GetFile(ctx context.Context, fileID string) (*drive.File, error)
}

// Client implements FilesAPI against the real Drive service.
type Client struct {
	svc *drive.Service
}

// NewClient builds a Drive client from an authorized HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ListPage fetches one page of file results for a query.
func (c *Client) ListPage(ctx context.Context, query, pageToken string, pageSize int64) (*drive.FileList, error) {
	call := c.svc.Files.List().
		Q(query).
		PageSize(pageSize).
		Fields(listFields).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	list, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("files.list failed: %w", err)
	}
	return list, nil
}

// GetFile fetches name and parents for a single file by id.
func (c *Client) GetFile(ctx context.Context, fileID string) (*drive.File, error) {
	file, err := c.svc.Files.Get(fileID).
		Fields(getFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("files.get failed for %q: %w", fileID, err)
	}
	return file, nil
}
