package markup

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"secretgrid/domain/document"
	"secretgrid/internal"
	"secretgrid/internal/errors"
)

// Extractor reads table rows out of HTML markup
type Extractor struct {
	logger *internal.Logger
}

// NewExtractor creates an HTML table extractor
func NewExtractor(logger *internal.Logger) *Extractor {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Extractor{logger: logger}
}

// Extract returns one row per <tr> element, nested ones included, in
// document order. A row holds the text of every <td> and <th> beneath it.
func (e *Extractor) Extract(doc *document.Document) ([]document.Row, error) {
	root, err := html.Parse(bytes.NewReader(doc.Body))
	if err != nil {
		return nil, errors.ParseFailed(string(document.FormatHTML), err)
	}

	var rows []document.Row
	walk(root, func(n *html.Node) {
		if isElement(n, atom.Tr) {
			row := rowCells(n)
			e.logger.Trace("row %d: %q", len(rows), row)
			rows = append(rows, row)
		}
	})

	e.logger.Debug("extracted %d table rows from %s", len(rows), doc.Source)
	return rows, nil
}

// rowCells collects the text of each cell element under tr.
func rowCells(tr *html.Node) document.Row {
	row := document.Row{}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(n *html.Node) {
			if isElement(n, atom.Td) || isElement(n, atom.Th) {
				row = append(row, cellText(n))
			}
		})
	}
	return row
}

// cellText joins every text node under n, each trimmed of surrounding
// whitespace, with nothing between them.
func cellText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(t *html.Node) {
		if t.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(t.Data))
		}
	})
	return sb.String()
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func isElement(n *html.Node, a atom.Atom) bool {
	return n.Type == html.ElementNode && n.DataAtom == a
}
