package renamed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DownloadFile downloads an artifact (e.g. a split document) from an
// absolute URL. The request carries the API auth header and goes through the
// same retry policy as any other call.
func (c *client) DownloadFile(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyDownloadURL
	}

	return c.request(ctx, http.MethodGet, url, nil, "")
}

// DownloadFileTo downloads an artifact and writes it to dst.
func (c *client) DownloadFileTo(ctx context.Context, url string, dst io.Writer) error {
	if dst == nil {
		return ErrNilWriter
	}

	data, err := c.DownloadFile(ctx, url)
	if err != nil {
		return err
	}

	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("write downloaded file: %w", err)
	}

	return nil
}

// SaveDocuments downloads every document of a split result into dir, one at
// a time, and returns the written paths. Downloads already written stay on
// disk when a later one fails.
func (c *client) SaveDocuments(ctx context.Context, result *PDFSplitResult, dir string) ([]string, error) {
	if result == nil {
		return nil, ErrNilResult
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(result.Documents))
	for _, doc := range result.Documents {
		data, err := c.DownloadFile(ctx, doc.DownloadURL)
		if err != nil {
			return paths, fmt.Errorf("download %s: %w", doc.Filename, err)
		}

		target := filepath.Join(dir, doc.Filename)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", target, err)
		}

		c.logf("Saved %s (%s)", target, formatFileSize(int64(len(data))))
		paths = append(paths, target)
	}

	return paths, nil
}
