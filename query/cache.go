// Package query implements a keyed collection cache with request coalescing
// and optimistic mutations.
//
// A Cache holds one collection ([]T) per resource key. Fetch serves fresh
// entries from memory and coalesces concurrent misses for the same key into a
// single call. Mutate applies an optimistic edit, runs the network call, and
// either invalidates the key (success) or restores the exact pre-edit
// snapshot (failure).
//
// Entries expire once the retention window has passed since they were last
// stored. There is no size-based eviction.
package query

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/jmgilman/go/errors"
	"golang.org/x/sync/singleflight"
)

// Status is the fetch status of an entry.
type Status string

const (
	// StatusPending means a fetch is in flight and no result has settled yet.
	StatusPending Status = "pending"

	// StatusSettled means the last fetch succeeded.
	StatusSettled Status = "settled"

	// StatusError means the last fetch failed. Data from an earlier fetch,
	// if any, is still present.
	StatusError Status = "error"
)

// Entry is a copy of a cached collection and its bookkeeping.
type Entry[T any] struct {
	Key       string
	Data      []T
	HasData   bool
	Stale     bool
	Status    Status
	Err       error
	UpdatedAt time.Time

	// generation counts invalidations. A fetch that started under an older
	// generation still stores its data but cannot mark the entry fresh.
	generation uint64
}

// FetchFunc loads a collection from the remote source.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// MutationFunc performs a remote write.
type MutationFunc func(ctx context.Context) error

// Cache is a keyed cache of collections. It is safe for concurrent use.
type Cache[T any] struct {
	mu      sync.Mutex
	entries *ttlcache.Cache[string, *Entry[T]]
	group   singleflight.Group
	cfg     *config
	logger  *slog.Logger
}

// New creates an empty cache.
func New[T any](opts ...Option) (*Cache[T], error) {
	cfg := newConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	entries := ttlcache.New[string, *Entry[T]](
		ttlcache.WithTTL[string, *Entry[T]](cfg.retention),
		ttlcache.WithDisableTouchOnHit[string, *Entry[T]](),
	)

	c := &Cache[T]{
		entries: entries,
		cfg:     cfg,
		logger:  cfg.logger,
	}

	entries.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *Entry[T]]) {
		c.logger.Debug("cache entry evicted", "key", item.Key(), "reason", reason)
	})

	return c, nil
}

// Start runs the expiry janitor until ctx is done. Expired entries are never
// served even without it; Start only reclaims their memory.
func (c *Cache[T]) Start(ctx context.Context) {
	go c.entries.Start()

	go func() {
		<-ctx.Done()
		c.entries.Stop()
	}()
}

// Fetch returns the collection stored under key. A present, non-stale entry
// is served from memory. Otherwise fetch is called, at most once at a time
// per key; concurrent callers share the in-flight result. A coalesced call
// runs with the context of the caller that started it.
//
// On failure the error is returned and any previously cached data is left
// untouched; it remains readable through Get.
func (c *Cache[T]) Fetch(ctx context.Context, key string, fetch FetchFunc[T]) ([]T, error) {
	c.mu.Lock()
	if entry := c.lookup(key); entry != nil && entry.HasData && !entry.Stale {
		data := slices.Clone(entry.Data)
		c.mu.Unlock()
		c.logger.Debug("cache hit", "key", key)
		return data, nil
	}
	c.mu.Unlock()

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		return c.load(ctx, key, fetch)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("joined in-flight fetch", "key", key)
	}

	return slices.Clone(v.([]T)), nil
}

// load performs the remote fetch and stores its outcome.
func (c *Cache[T]) load(ctx context.Context, key string, fetch FetchFunc[T]) ([]T, error) {
	c.mu.Lock()
	entry := c.lookup(key)
	if entry == nil {
		entry = &Entry[T]{Key: key}
		c.entries.Set(key, entry, ttlcache.DefaultTTL)
	}
	entry.Status = StatusPending
	generation := entry.generation
	c.mu.Unlock()

	c.logger.Debug("fetching", "key", key)

	var (
		data []T
		err  error
	)
	for attempt := 0; attempt <= c.cfg.retries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying fetch", "key", key, "attempt", attempt)
		}
		data, err = fetch(ctx)
		if err == nil || !errors.IsRetryable(err) || ctx.Err() != nil {
			break
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The entry may have expired while the call was in flight.
	entry = c.lookup(key)
	if entry == nil {
		entry = &Entry[T]{Key: key}
		c.entries.Set(key, entry, ttlcache.DefaultTTL)
	}

	if err != nil {
		entry.Status = StatusError
		entry.Err = err
		c.logger.Warn("fetch failed", "key", key, "error", err, "has_data", entry.HasData)
		return nil, err
	}

	superseded := entry.generation != generation
	if superseded {
		c.logger.Debug("fetch superseded by invalidation", "key", key)
	}

	entry.Data = slices.Clone(data)
	entry.HasData = true
	entry.Stale = superseded
	entry.Status = StatusSettled
	entry.Err = nil
	entry.UpdatedAt = c.cfg.now()
	c.entries.Set(key, entry, ttlcache.DefaultTTL)

	return data, nil
}

// Invalidate marks key stale. The next Fetch performs a new round trip and
// does not join a call that was already in flight. A call that was in flight
// still stores its result when it completes, but the entry stays stale. Stale
// data stays readable through Get until a later fetch settles.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	c.invalidateLocked(key)
	c.mu.Unlock()
}

// InvalidateMatching invalidates every key for which match returns true.
func (c *Cache[T]) InvalidateMatching(match func(key string) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.entries.Keys() {
		if match(key) {
			c.invalidateLocked(key)
		}
	}
}

func (c *Cache[T]) invalidateLocked(key string) {
	if entry := c.lookup(key); entry != nil {
		entry.Stale = true
		entry.generation++
		c.entries.Set(key, entry, ttlcache.DefaultTTL)
	}
	c.group.Forget(key)
	c.logger.Debug("invalidated", "key", key)
}

// Mutate applies an optimistic edit to key and then runs mutation.
//
// The snapshot is captured and updater's result stored in one critical
// section, so no reader observes a state in between. On success the key is
// invalidated. On failure the captured snapshot is restored exactly and the
// error is reported in the result.
//
// A nil updater, or a key with no cached data, skips the speculative edit;
// the mutation still runs and a success still invalidates the key.
//
// Overlapping mutations on one key are not coordinated: whichever settles
// last determines the cached value.
func (c *Cache[T]) Mutate(ctx context.Context, key string, updater Updater[T], mutation MutationFunc) Result[T] {
	c.mu.Lock()
	var tx *Transaction[T]
	if entry := c.lookup(key); entry != nil && entry.HasData && updater != nil {
		tx = Begin(entry.Data, updater)
		entry.Data = tx.Speculative()
		entry.UpdatedAt = c.cfg.now()
		c.entries.Set(key, entry, ttlcache.DefaultTTL)
		c.logger.Debug("applied optimistic update", "key", key)
	}
	c.mu.Unlock()

	err := mutation(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.lookup(key)

	if err != nil {
		if tx == nil {
			return Result[T]{Outcome: OutcomeReverted, Value: c.dataLocked(entry), Err: err}
		}

		if entry == nil {
			entry = &Entry[T]{Key: key, Status: StatusSettled}
		}
		entry.Data = tx.Revert()
		entry.HasData = true
		entry.UpdatedAt = c.cfg.now()
		c.entries.Set(key, entry, ttlcache.DefaultTTL)
		c.logger.Debug("rolled back optimistic update", "key", key, "error", err)

		return Result[T]{Outcome: OutcomeReverted, Value: c.dataLocked(entry), Err: err}
	}

	if tx != nil {
		tx.Commit()
	}
	c.invalidateLocked(key)

	return Result[T]{Outcome: OutcomeCommitted, Value: c.dataLocked(entry)}
}

// Get returns a copy of the entry under key, including stale or failed
// entries.
func (c *Cache[T]) Get(key string) (Entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.lookup(key)
	if entry == nil {
		return Entry[T]{}, false
	}

	cp := *entry
	cp.Data = slices.Clone(entry.Data)
	return cp, true
}

// Set stores data under key as a fresh, settled entry.
func (c *Cache[T]) Set(key string, data []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.lookup(key)
	if entry == nil {
		entry = &Entry[T]{Key: key}
	}
	entry.Data = slices.Clone(data)
	entry.HasData = true
	entry.Stale = false
	entry.Status = StatusSettled
	entry.Err = nil
	entry.UpdatedAt = c.cfg.now()
	c.entries.Set(key, entry, ttlcache.DefaultTTL)
}

// Keys returns the keys currently held.
func (c *Cache[T]) Keys() []string {
	return c.entries.Keys()
}

func (c *Cache[T]) lookup(key string) *Entry[T] {
	item := c.entries.Get(key)
	if item == nil {
		return nil
	}
	return item.Value()
}

func (c *Cache[T]) dataLocked(entry *Entry[T]) []T {
	if entry == nil {
		return nil
	}
	return slices.Clone(entry.Data)
}
