package file

import (
	"context"
	"fmt"
	"os"
	"time"

	"secretgrid/domain/document"
	"secretgrid/internal"
	"secretgrid/internal/errors"
)

// Reader loads a document from the local filesystem
type Reader struct {
	logger *internal.Logger
}

// NewReader creates a file reader
func NewReader(logger *internal.Logger) *Reader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Reader{logger: logger}
}

// Fetch reads the file at path. The content type is left empty so the
// format is taken from the extension.
func (r *Reader) Fetch(ctx context.Context, path string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FetchFailed(path, err)
	}

	startTime := time.Now()
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FetchFailed(path, fmt.Errorf("failed to read file: %w", err))
	}
	r.logger.Info("read %s: %d bytes", path, len(body))

	return &document.Document{
		Source:    path,
		Body:      body,
		FetchedAt: startTime,
	}, nil
}
