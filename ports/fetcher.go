package ports

import (
	"context"

	"secretgrid/domain/document"
)

// DocumentFetcher retrieves the raw body of a document. A failed retrieval
// returns an error coded FETCH_FAILED.
type DocumentFetcher interface {
	Fetch(ctx context.Context, location string) (*document.Document, error)
}
