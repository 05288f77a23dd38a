package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/backend"
	"github.com/YousifAziz000/lifting-bot-rlbr/internal/config"
)

// ErrInvalidReply marks a refresh reply carrying no usable exercise list.
// The cache absorbs it: the previous snapshot keeps serving.
var ErrInvalidReply = errors.New("invalid catalog reply")

// Cache is the process-wide snapshot of canonical exercise names. Reads
// never block on network I/O; the snapshot is replaced wholesale by each
// successful refresh and survives every failed one.
type Cache struct {
	backend backend.Submitter

	mu        sync.RWMutex
	names     []string
	index     map[string]struct{}
	fetchedAt time.Time
	refreshed bool

	group    singleflight.Group
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a cache serving the seed list. The seed answers reads until
// the first successful refresh and is never restored afterwards.
func New(b backend.Submitter, seed []string) *Cache {
	c := &Cache{
		backend: b,
		done:    make(chan struct{}),
	}
	c.replace(seed, time.Time{}, false)
	return c
}

// CurrentNames returns the latest snapshot without triggering I/O. While the
// cache is still at its seed state it additionally hints an asynchronous
// refresh (best effort, result discarded, the read returns immediately).
func (c *Cache) CurrentNames() []string {
	c.mu.RLock()
	refreshed := c.refreshed
	snapshot := append([]string(nil), c.names...)
	c.mu.RUnlock()

	if !refreshed {
		c.RequestRefresh()
	}

	return snapshot
}

// Contains reports whether name is part of the current snapshot.
func (c *Cache) Contains(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.index[name]
	return ok
}

// Refresh fetches the exercise list once, bounded by
// config.CatalogRefreshTimeout. Success with a non-empty list replaces the
// snapshot wholesale and stamps the fetch time; timeout, network failure and
// empty or malformed replies leave the snapshot untouched and are only
// logged, never fatal.
func (c *Cache) Refresh(ctx context.Context) error {
	reply, err := backend.SubmitBounded(ctx, c.backend, config.CatalogRefreshTimeout, "list_exercises", nil)
	if err != nil {
		config.Logger.Warnf("Catalog refresh failed, keeping %d cached names: %v", c.Size(), err)
		return err
	}

	if len(reply.Exercises) == 0 {
		config.Logger.Warnf("Catalog refresh returned no exercises, keeping %d cached names", c.Size())
		return fmt.Errorf("%w: empty exercise list", ErrInvalidReply)
	}

	c.replace(reply.Exercises, time.Now(), true)
	config.Logger.Infof("Catalog refreshed: %d exercises", len(reply.Exercises))
	return nil
}

// RequestRefresh schedules a refresh without blocking the caller.
// Concurrent hints collapse into a single in-flight fetch.
func (c *Cache) RequestRefresh() {
	go func() {
		c.group.Do("refresh", func() (any, error) {
			return nil, c.Refresh(context.Background())
		})
	}()
}

// Run refreshes the catalog on a fixed interval until Stop is called,
// independent of user traffic.
func (c *Cache) Run(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_ = c.Refresh(context.Background())
			case <-c.done:
				return
			}
		}
	}()
}

// Stop terminates the refresh loop. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Size returns the number of names in the current snapshot.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// FetchedAt returns the time of the last successful refresh, zero while the
// cache still serves the seed list.
func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

// Refreshed reports whether any refresh has ever succeeded.
func (c *Cache) Refreshed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshed
}

func (c *Cache) replace(names []string, fetchedAt time.Time, refreshed bool) {
	snapshot := append([]string(nil), names...)
	index := make(map[string]struct{}, len(snapshot))
	for _, name := range snapshot {
		index[name] = struct{}{}
	}

	c.mu.Lock()
	c.names = snapshot
	c.index = index
	c.fetchedAt = fetchedAt
	c.refreshed = refreshed
	c.mu.Unlock()
}
