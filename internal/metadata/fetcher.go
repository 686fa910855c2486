package metadata

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ytget/yt-playlist-mp3/internal/cache"
	"github.com/ytget/yt-playlist-mp3/internal/model"
)

// DefaultFetchTimeout bounds a single engine call
const DefaultFetchTimeout = 60 * time.Second

// Extractor fetches a shallow listing for a URL without downloading media
type Extractor interface {
	ExtractFlat(ctx context.Context, url string) (*model.PlaylistMetadata, error)
}

// Fetcher asks an Extractor for playlist metadata
type Fetcher struct {
	extractor Extractor
	store     cache.Store[*model.PlaylistMetadata]
	ttl       time.Duration
	timeout   time.Duration

	fetches atomic.Int64
}

// NewFetcher creates a fetcher. A nil store disables caching.
func NewFetcher(extractor Extractor, store cache.Store[*model.PlaylistMetadata]) *Fetcher {
	return &Fetcher{
		extractor: extractor,
		store:     store,
		ttl:       cache.DefaultTTL,
		timeout:   DefaultFetchTimeout,
	}
}

// SetTimeout sets the per-call engine timeout. Zero disables it.
func (f *Fetcher) SetTimeout(timeout time.Duration) {
	f.timeout = timeout
}

// SetTTL sets how long fetched listings are cached
func (f *Fetcher) SetTTL(ttl time.Duration) {
	f.ttl = ttl
}

// Fetches returns how many engine calls were made
func (f *Fetcher) Fetches() int64 {
	return f.fetches.Load()
}

// Fetch returns metadata for url. refresh skips the cache lookup.
// Every failure is an *model.ExtractionError.
func (f *Fetcher) Fetch(ctx context.Context, url string, refresh bool) (*model.PlaylistMetadata, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &model.ExtractionError{URL: url, Err: model.ErrEmptyURL}
	}

	if f.store != nil && !refresh {
		if meta, ok := f.store.Get(ctx, url); ok && meta != nil {
			log.Printf("Metadata cache hit: %s", url)
			return meta, nil
		}
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	log.Printf("Fetching playlist info: %s", url)
	f.fetches.Add(1)

	meta, err := f.extractor.ExtractFlat(ctx, url)
	if err != nil {
		log.Printf("Fetch failed for %s: %v", url, err)
		return nil, &model.ExtractionError{URL: url, Err: err}
	}
	if meta == nil {
		return nil, &model.ExtractionError{URL: url, Err: model.ErrNoEntryList}
	}
	if meta.URL == "" {
		meta.URL = url
	}

	log.Printf("Fetched %d entries for %s", len(meta.Entries), url)
	if f.store != nil {
		f.store.Set(ctx, url, meta, f.ttl)
	}
	return meta, nil
}
