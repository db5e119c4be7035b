package terminal

import (
	"bufio"
	"io"

	"secretgrid/domain/grid"
)

// User-facing lines. They go to stdout alongside the picture.
const (
	Banner             = "Decoded Secret Message:"
	MessageFetchFailed = "Failed to fetch or parse the document."
	MessageNoData      = "No valid data found."
)

// Renderer prints decoded grids and run diagnostics as plain text
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// RenderGrid prints a blank line, the banner, a blank line and then one line
// per grid row.
func (r *Renderer) RenderGrid(g *grid.Grid) error {
	bw := bufio.NewWriter(r.w)
	bw.WriteString("\n" + Banner + "\n\n")
	for _, line := range g.Rows() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FetchFailed reports a document that could not be retrieved or read. No
// data follows from it, so the no-data line is printed too.
func (r *Renderer) FetchFailed() error {
	_, err := io.WriteString(r.w, MessageFetchFailed+"\n"+MessageNoData+"\n")
	return err
}

// NoData reports a document without a single usable row
func (r *Renderer) NoData() error {
	_, err := io.WriteString(r.w, MessageNoData+"\n")
	return err
}
