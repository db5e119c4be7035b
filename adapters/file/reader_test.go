package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretgrid/domain/document"
	"secretgrid/internal"
	"secretgrid/internal/errors"
)

func TestReaderFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,█,0\n"), 0o644))

	doc, err := NewReader(internal.Discard).Fetch(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.Source)
	assert.Equal(t, "0,█,0\n", string(doc.Body))
	assert.Equal(t, document.FormatCSV, doc.DetectFormat())
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(internal.Discard).Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
}

func TestReaderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(internal.Discard).Fetch(ctx, "anything.html")
	require.Error(t, err)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
}
