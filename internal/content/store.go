// Package content holds the most recently fetched site document and the
// canonical model derived from it, and keeps them fresh.
package content

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/jsondoc"
	"github.com/ibrahimlogs/folio/internal/logger"
	"github.com/ibrahimlogs/folio/internal/mapper"
	"github.com/ibrahimlogs/folio/internal/theme"
)

// Fetcher is the part of the site API client the store needs.
type Fetcher interface {
	FetchSiteData(ctx context.Context) jsondoc.Value
}

// Snapshot is one consistent view of the store: the document, the theme it
// resolves to, and when it was fetched.
type Snapshot struct {
	Document  jsondoc.Value
	Key       theme.Key
	FetchedAt time.Time
}

// Store caches the active site document. Refreshes may run concurrently;
// each is stamped with a generation number and a refresh only applies its
// result if no newer refresh has already applied. A slow fetch that finishes
// after a later one therefore never clobbers fresher content.
type Store struct {
	fetcher Fetcher
	log     *logger.Logger
	ttl     time.Duration

	next    atomic.Uint64
	mu      sync.RWMutex
	applied uint64
	snap    Snapshot
}

// Options configures a Store.
type Options struct {
	Fetcher Fetcher
	Logger  *logger.Logger
	TTL     time.Duration
}

// NewStore creates an empty store. The first call to Refresh or Document
// populates it.
func NewStore(opts Options) *Store {
	return &Store{
		fetcher: opts.Fetcher,
		log:     opts.Logger.WithComponent("content"),
		ttl:     opts.TTL,
	}
}

// Refresh fetches the site document and installs it, unless a refresh that
// started later has already installed its result. Returns the snapshot the
// store holds afterwards, which may belong to that newer refresh.
func (s *Store) Refresh(ctx context.Context) Snapshot {
	gen := s.next.Add(1)
	doc := s.fetcher.FetchSiteData(ctx)
	key := theme.ResolveFromDocument(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen > s.applied {
		s.applied = gen
		s.snap = Snapshot{Document: doc, Key: key, FetchedAt: time.Now()}
		s.log.WithFields(map[string]any{"theme": string(key)}).Debug("content refreshed")
	} else {
		s.log.Debug("discarding stale content fetch")
	}
	return s.snap
}

// Snapshot returns the current view, refreshing first if the store is empty
// or the cached document is older than the TTL.
func (s *Store) Snapshot(ctx context.Context) Snapshot {
	s.mu.RLock()
	snap := s.snap
	fresh := s.applied > 0 && (s.ttl <= 0 || time.Since(snap.FetchedAt) < s.ttl)
	s.mu.RUnlock()

	if fresh {
		return snap
	}
	return s.Refresh(ctx)
}

// Document returns the current site document.
func (s *Store) Document(ctx context.Context) jsondoc.Value {
	return s.Snapshot(ctx).Document
}

// ActiveKey returns the theme resolved from the current document.
func (s *Store) ActiveKey(ctx context.Context) theme.Key {
	return s.Snapshot(ctx).Key
}

// Model maps the current document through the mapper for the given theme.
func (s *Store) Model(ctx context.Context, key theme.Key) canonical.Model {
	return mapper.ForTheme(key)(s.Document(ctx))
}

// ActiveModel maps the current document through the mapper for whichever
// theme the document itself selects.
func (s *Store) ActiveModel(ctx context.Context) (theme.Key, canonical.Model) {
	snap := s.Snapshot(ctx)
	return snap.Key, mapper.ForTheme(snap.Key)(snap.Document)
}
