package document

import (
	"mime"
	"path"
	"strings"
	"time"
)

// Format identifies how a document's table is encoded
type Format string

const (
	FormatUnknown Format = ""
	FormatHTML    Format = "html"
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
)

// Document is the raw body of one retrieval
type Document struct {
	Source      string    `json:"source"` // URL or file path
	ContentType string    `json:"content_type,omitempty"`
	Body        []byte    `json:"-"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Row is one raw cell row: the trimmed text of each cell, in document order
type Row []string

// ParseFormat maps a user-supplied name to a Format
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FormatUnknown, true
	case "html", "htm":
		return FormatHTML, true
	case "csv":
		return FormatCSV, true
	case "xlsx":
		return FormatXLSX, true
	}
	return FormatUnknown, false
}

// DetectFormat picks a format from the Content-Type header, then the source
// extension, and falls back to HTML.
func (d *Document) DetectFormat() Format {
	if mediaType, _, err := mime.ParseMediaType(d.ContentType); err == nil {
		switch mediaType {
		case "text/csv", "application/csv":
			return FormatCSV
		case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
			return FormatXLSX
		case "text/html", "application/xhtml+xml":
			return FormatHTML
		}
	}

	source := d.Source
	if i := strings.IndexAny(source, "?#"); i >= 0 {
		source = source[:i]
	}
	switch strings.ToLower(path.Ext(source)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	}

	// Published spreadsheets take the export format as a query parameter.
	if strings.Contains(d.Source, "output=csv") || strings.Contains(d.Source, "format=csv") {
		return FormatCSV
	}
	if strings.Contains(d.Source, "output=xlsx") || strings.Contains(d.Source, "format=xlsx") {
		return FormatXLSX
	}

	return FormatHTML
}
