package terminal

import (
	"bytes"
	"errors"
	"testing"

	"secretgrid/domain/grid"
)

func TestRenderGrid(t *testing.T) {
	g := grid.Build([]grid.Triple{
		{X: 0, Y: 0, Symbol: grid.FullBlock},
		{X: 1, Y: 1, Symbol: grid.LightShade},
	})

	var buf bytes.Buffer
	if err := NewRenderer(&buf).RenderGrid(g); err != nil {
		t.Fatalf("RenderGrid failed: %v", err)
	}

	want := "\nDecoded Secret Message:\n\n█ \n ░\n"
	if buf.String() != want {
		t.Errorf("RenderGrid output = %q, want %q", buf.String(), want)
	}
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	if err := r.NoData(); err != nil {
		t.Fatalf("NoData failed: %v", err)
	}
	if buf.String() != "No valid data found.\n" {
		t.Errorf("NoData output = %q", buf.String())
	}

	buf.Reset()
	if err := r.FetchFailed(); err != nil {
		t.Fatalf("FetchFailed failed: %v", err)
	}
	if buf.String() != "Failed to fetch or parse the document.\nNo valid data found.\n" {
		t.Errorf("FetchFailed output = %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRenderWriteError(t *testing.T) {
	g := grid.Build([]grid.Triple{{X: 0, Y: 0, Symbol: grid.FullBlock}})
	if err := NewRenderer(failingWriter{}).RenderGrid(g); err == nil {
		t.Error("Expected write error")
	}
	if err := NewRenderer(failingWriter{}).NoData(); err == nil {
		t.Error("Expected write error")
	}
}
