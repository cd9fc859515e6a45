package cmd

import (
	"sync"
	"time"

	"github.com/tmcf/droidctl/internal/ui"
)

// cachedTreeSource wraps a ui.TreeSource with a TTL cache. Read-only tools
// (snapshot, find) hit the device at most once per TTL window; tools that
// change UI state invalidate the cache so the next read is fresh.
type cachedTreeSource struct {
	source ui.TreeSource
	ttl    time.Duration

	mu        sync.Mutex
	root      ui.Node
	timestamp time.Time
}

// newCachedTreeSource wraps source with a cache. A ttl of 0 disables caching.
func newCachedTreeSource(source ui.TreeSource, ttl time.Duration) *cachedTreeSource {
	return &cachedTreeSource{source: source, ttl: ttl}
}

func (c *cachedTreeSource) Root() (ui.Node, error) {
	if c.ttl == 0 {
		return c.source.Root()
	}

	c.mu.Lock()
	if c.root != nil && time.Since(c.timestamp) < c.ttl {
		root := c.root
		c.mu.Unlock()
		return root, nil
	}
	c.mu.Unlock()

	root, err := c.source.Root()
	if err != nil {
		return nil, err
	}

	// Unavailable trees are not cached; the next read retries the device.
	if root != nil {
		c.mu.Lock()
		c.root = root
		c.timestamp = time.Now()
		c.mu.Unlock()
	}
	return root, nil
}

// invalidate drops the cached tree.
func (c *cachedTreeSource) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.root = nil
}
