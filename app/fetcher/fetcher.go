package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"talkfeed/app/database"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxSize  = 100 * 1024 * 1024
	defaultCacheAge = 7 * 24 * time.Hour
)

// Fetcher downloads source documents with a freshness-bounded cache in
// front. Failed requests are never retried.
type Fetcher struct {
	client      *http.Client
	documents   *database.DocumentRepository
	userAgent   string
	maxSize     int64
	cacheMaxAge time.Duration
	noCache     bool
	log         zerolog.Logger
}

type Option func(*Fetcher)

// WithoutCache bypasses the document cache for both reads and writes.
func WithoutCache() Option {
	return func(f *Fetcher) {
		f.noCache = true
	}
}

// New builds a Fetcher. documents may be nil to run uncached.
func New(documents *database.DocumentRepository, userAgent string, log zerolog.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: defaultTimeout},
		documents:   documents,
		userAgent:   userAgent,
		maxSize:     defaultMaxSize,
		cacheMaxAge: defaultCacheAge,
		log:         log,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch returns the document at url, serving from the cache when a fresh
// copy exists.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.documents != nil && !f.noCache {
		body, ok, err := f.documents.GetFresh(url, f.cacheMaxAge)
		if err != nil {
			return nil, fmt.Errorf("cache lookup failed: %w", err)
		}
		if ok {
			f.log.Debug().Str("url", url).Msg("cache hit")
			return body, nil
		}
	}

	f.log.Debug().Str("url", url).Msg("downloading")

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error fetching %s: %d %s", url, resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, f.maxSize)
	}

	if f.documents != nil && !f.noCache {
		if err := f.documents.Put(url, data); err != nil {
			f.log.Warn().Err(err).Str("url", url).Msg("failed to cache document")
		}
	}

	return data, nil
}

// CheckURL probes a URL with a HEAD request and reports whether it
// answers 200.
func (f *Fetcher) CheckURL(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, "HEAD", url, nil)
	if err != nil {
		return false
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
