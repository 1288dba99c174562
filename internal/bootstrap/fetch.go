package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ggmap/internal/models"
)

// DefaultMaxConfigBytes caps the size of a fetched map config.
const DefaultMaxConfigBytes int64 = 2 << 20

var (
	// ErrMissingSource is returned for containers without a data-json attribute.
	ErrMissingSource = errors.New("bootstrap: map config path not specified")
	// ErrConfigTooLarge is returned when a map config exceeds the size limit.
	ErrConfigTooLarge = errors.New("bootstrap: map config too large")
)

// StatusError reports a non-success response for a map config.
type StatusError struct {
	Source string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bootstrap: failed to load map config %s: status %d", e.Source, e.Status)
}

// HTTPFetcher loads map configs over HTTP, always bypassing caches.
type HTTPFetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

// NewHTTPFetcher creates a fetcher. A nil client uses http.DefaultClient; a
// zero timeout leaves the request bounded only by ctx.
func NewHTTPFetcher(client *http.Client, timeout time.Duration) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, timeout: timeout, maxBytes: DefaultMaxConfigBytes}
}

// WithMaxBytes sets the largest config body accepted. Non-positive values keep
// the default.
func (f *HTTPFetcher) WithMaxBytes(n int64) *HTTPFetcher {
	if n > 0 {
		f.maxBytes = n
	}
	return f
}

// Fetch GETs source, resolved against base when relative, and decodes it.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string, base *url.URL) (*models.MapConfig, error) {
	if source == "" {
		return nil, ErrMissingSource
	}
	target, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: invalid map config url %q: %w", source, err)
	}
	if base != nil {
		target = base.ResolveReference(target)
	}
	if !target.IsAbs() {
		return nil, fmt.Errorf("bootstrap: map config url %q is relative and no page url is known", source)
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: failed to load map config %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Source: target.String(), Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("bootstrap: failed to read map config %s: %w", target, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigTooLarge, target, f.maxBytes)
	}
	cfg, err := models.DecodeMapConfig(body)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %s: %w", target, err)
	}
	return cfg, nil
}
