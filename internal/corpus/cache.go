package corpus

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/issuefinder/internal/logger"
	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// DefaultCacheSize bounds the number of corpora kept in memory
const DefaultCacheSize = 8

// LoadFunc loads a corpus from a path
type LoadFunc func(ctx context.Context, path string) ([]ingest.Document, error)

type cacheEntry struct {
	modTime time.Time
	size    int64
	docs    []ingest.Document
}

// Cache memoizes loaded corpora by path. An entry is reused only while the
// file's modification time and size are unchanged. Callers must treat the
// returned documents as read-only.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, cacheEntry]
	load    LoadFunc
	hits    int
	misses  int
}

// NewCache creates a cache holding up to size corpora. A nil load uses Load.
func NewCache(size int, load LoadFunc) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if load == nil {
		load = Load
	}
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create corpus cache: %w", err)
	}
	return &Cache{entries: entries, load: load}, nil
}

// Get returns the corpus at path, loading it on a miss or after the file
// changed.
func (c *Cache) Get(ctx context.Context, path string) ([]ingest.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, unavailable(path, err)
	}

	if e, ok := c.entries.Get(path); ok && e.modTime.Equal(info.ModTime()) && e.size == info.Size() {
		c.hits++
		logger.Debug("corpus cache hit: %s", path)
		return e.docs, nil
	}

	c.misses++
	docs, err := c.load(ctx, path)
	if err != nil {
		return nil, err
	}
	c.entries.Add(path, cacheEntry{modTime: info.ModTime(), size: info.Size(), docs: docs})
	logger.Debug("corpus cache miss: %s (%d documents)", path, len(docs))
	return docs, nil
}

// Invalidate drops the cached corpus for path.
func (c *Cache) Invalidate(path string) {
	c.entries.Remove(path)
}

// Len returns the number of cached corpora.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// HitRate returns the fraction of Get calls served from memory.
func (c *Cache) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hits+c.misses == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.hits+c.misses)
}
