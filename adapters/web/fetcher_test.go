package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretgrid/internal"
	"secretgrid/internal/errors"
)

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "secretgrid-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<table><tr><td>0</td><td>█</td><td>0</td></tr></table>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(0, "secretgrid-test", internal.Discard)
	doc, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, server.URL, doc.Source)
	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
	assert.Contains(t, string(doc.Body), "<td>█</td>")
	assert.False(t, doc.FetchedAt.IsZero())
}

func TestFetchNonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		fetcher := NewFetcher(0, "", internal.Discard)
		_, err := fetcher.Fetch(context.Background(), server.URL)
		server.Close()

		require.Error(t, err, "status %d", status)
		assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
	}
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	fetcher := NewFetcher(0, "", internal.Discard)
	_, err := fetcher.Fetch(context.Background(), url)

	require.Error(t, err)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	fetcher := NewFetcher(50*time.Millisecond, "", internal.Discard)
	_, err := fetcher.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeFetchFailed))
}

func TestFetchBadURL(t *testing.T) {
	fetcher := NewFetcher(0, "", internal.Discard)
	_, err := fetcher.Fetch(context.Background(), "://not a url")

	require.Error(t, err)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	limit := maxBodyBytes
	maxBodyBytes = 16
	defer func() { maxBodyBytes = limit }()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 17)))
	}))
	defer server.Close()

	fetcher := NewFetcher(0, "", internal.Discard)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))

	maxBodyBytes = 17
	doc, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, doc.Body, 17)
}
