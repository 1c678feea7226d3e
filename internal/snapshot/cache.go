package snapshot

import (
	"context"
	"sync"
	"time"

	"casetree/internal/pagination"
	"casetree/internal/tms"
	"casetree/pkg/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a fetched snapshot stays valid. Within the
	// window every caller is served from the cache with no network
	// activity.
	DefaultTTL = 5 * time.Minute

	// DefaultPageSize is the page size requested during a snapshot
	// fetch. Snapshots always ask for the largest page the service
	// accepts to minimise round trips.
	DefaultPageSize = 100
)

// entry holds one immutable snapshot with its fetch metadata. A refresh
// replaces the whole entry; nothing under it is ever mutated.
type entry struct {
	suites    []tms.Suite
	fetchID   string
	fetchedAt time.Time
}

// Cache memoizes the full suite list per project key with a TTL. It is
// safe for concurrent use: the entries map is guarded by a RWMutex, and
// concurrent misses for the same key coalesce into a single in-flight
// fetch shared by all waiters.
type Cache struct {
	source   tms.SuiteSource
	ttl      time.Duration
	pageSize int
	now      func() time.Time

	mu      sync.RWMutex
	entries map[string]*entry

	// singleflight group to deduplicate concurrent snapshot fetches
	group singleflight.Group
}

// Option configures the cache.
type Option func(*Cache)

// WithTTL overrides the snapshot time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPageSize overrides the page size requested during fetches.
func WithPageSize(size int) Option {
	return func(c *Cache) {
		c.pageSize = size
	}
}

// WithClock injects a clock for TTL checks. Tests use this to expire
// snapshots without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a snapshot cache over the given suite source.
func NewCache(source tms.SuiteSource, opts ...Option) *Cache {
	c := &Cache{
		source:   source,
		ttl:      DefaultTTL,
		pageSize: DefaultPageSize,
		now:      time.Now,
		entries:  make(map[string]*entry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the full suite list for a project, fetching it when no
// valid snapshot exists. Callers must treat the returned slice as
// read-only; it is shared by every caller within the TTL window.
func (c *Cache) Get(ctx context.Context, projectKey string) ([]tms.Suite, error) {
	// Check cache first with read lock
	c.mu.RLock()
	if e, ok := c.entries[projectKey]; ok {
		if c.now().Sub(e.fetchedAt) < c.ttl {
			c.mu.RUnlock()
			logging.Debug("SnapshotCache", "Cache hit for project %s (fetch %s)", projectKey, e.fetchID)
			return e.suites, nil
		}
	}
	c.mu.RUnlock()

	// Coalesce concurrent misses into a single fetch
	result, err, _ := c.group.Do(projectKey, func() (interface{}, error) {
		// Double-check cache after acquiring singleflight lock
		c.mu.RLock()
		if e, ok := c.entries[projectKey]; ok {
			if c.now().Sub(e.fetchedAt) < c.ttl {
				c.mu.RUnlock()
				return e.suites, nil
			}
		}
		c.mu.RUnlock()

		return c.fetch(ctx, projectKey)
	})

	if err != nil {
		return nil, err
	}

	return result.([]tms.Suite), nil
}

// fetch runs a full paginated pull and stores the resulting snapshot.
func (c *Cache) fetch(ctx context.Context, projectKey string) ([]tms.Suite, error) {
	fetchID := uuid.NewString()
	logging.Debug("SnapshotCache", "Fetching suite snapshot for project %s (fetch %s)", projectKey, fetchID)

	raw, err := pagination.Collect(ctx, func(ctx context.Context, pageToken string) (pagination.Page[tms.RawSuite], error) {
		return c.source.FetchSuitePage(ctx, projectKey, pageToken, c.pageSize)
	}, pagination.Options{})
	if err != nil {
		return nil, &tms.SourceError{Op: "suites", ProjectKey: projectKey, Err: err}
	}

	suites := make([]tms.Suite, len(raw))
	for i, r := range raw {
		suites[i] = r.Suite()
	}

	e := &entry{
		suites:    suites,
		fetchID:   fetchID,
		fetchedAt: c.now(),
	}
	c.mu.Lock()
	c.entries[projectKey] = e
	c.mu.Unlock()

	logging.Info("SnapshotCache", "Cached %d suites for project %s (fetch %s)", len(suites), projectKey, fetchID)
	return suites, nil
}

// Invalidate drops the cached snapshot for one project, forcing the next
// Get to refetch regardless of TTL.
func (c *Cache) Invalidate(projectKey string) {
	c.mu.Lock()
	delete(c.entries, projectKey)
	c.mu.Unlock()

	logging.Debug("SnapshotCache", "Invalidated snapshot for project %s", projectKey)
}

// InvalidateAll drops every cached snapshot.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()

	logging.Debug("SnapshotCache", "Invalidated all snapshots")
}
