package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"secretgrid/domain/document"
	"secretgrid/internal"
	"secretgrid/internal/errors"
)

// maxBodyBytes is the largest response accepted; anything longer fails.
var maxBodyBytes = 32 << 20

// Fetcher performs a single HTTP GET per document. It never retries.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	logger     *internal.Logger
}

// NewFetcher creates a fetcher. A zero timeout keeps net/http's default.
func NewFetcher(timeout time.Duration, userAgent string, logger *internal.Logger) *Fetcher {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch retrieves the document at url
func (f *Fetcher) Fetch(ctx context.Context, url string) (*document.Document, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.FetchFailed(url, fmt.Errorf("failed to build request: %w", err))
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/html,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;q=0.9,*/*;q=0.8")

	f.logger.Debug("fetching %s", url)
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.FetchFailed(url, fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errors.FetchFailed(url, fmt.Errorf("server returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBodyBytes)+1))
	if err != nil {
		return nil, errors.FetchFailed(url, fmt.Errorf("failed to read response: %w", err))
	}
	if len(body) > maxBodyBytes {
		return nil, errors.FetchFailed(url, fmt.Errorf("response larger than %d bytes", maxBodyBytes))
	}

	f.logger.Info("fetched %s: status %d, %d bytes in %.2fms",
		url, resp.StatusCode, len(body), float64(time.Since(startTime).Nanoseconds())/1e6)

	return &document.Document{
		Source:      url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		FetchedAt:   startTime,
	}, nil
}
