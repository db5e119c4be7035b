package ports

import (
	"secretgrid/domain/document"
)

// TableExtractor turns a document body into raw cell rows, one per table row,
// in document order. Unreadable bodies return an error coded PARSE_FAILED.
type TableExtractor interface {
	Extract(doc *document.Document) ([]document.Row, error)
}
