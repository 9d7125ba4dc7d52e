package client

import (
	"context"
	"fmt"
	"io"

	"github.com/exd-tools/surveil-admin/internal/models"
)

// ListStoredFiles returns the server-generated documents available for
// download.
func (c *Client) ListStoredFiles(ctx context.Context) (*models.FileListing, error) {
	var out models.FileListing
	if err := c.get(ctx, "/api/storage/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadStoredFile streams one generated document into w. downloadURL is
// the path the listing advertised for the file.
func (c *Client) DownloadStoredFile(ctx context.Context, downloadURL string, w io.Writer) (int64, error) {
	return c.download(ctx, downloadURL, w)
}

// DeleteAllStoredFiles removes every generated document on the backend.
func (c *Client) DeleteAllStoredFiles(ctx context.Context) error {
	return c.delete(ctx, "/api/storage/delete-all", nil)
}

// DeleteSessionFiles removes the generated documents of one session.
func (c *Client) DeleteSessionFiles(ctx context.Context, sessionID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/storage/delete/session/%d", sessionID), nil)
}

// CleanupEmptyDirs prunes empty per-session directories on the backend.
func (c *Client) CleanupEmptyDirs(ctx context.Context) error {
	return c.delete(ctx, "/api/storage/cleanup/empty", nil)
}
