package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/infrastructure/metrics"
)

const listKey = "degrees:list"

// MemoryDegreeCache is an in-process LRU cache for catalog reads.
type MemoryDegreeCache struct {
	cache *lru.Cache
	ttl   time.Duration
	mu    sync.RWMutex
	now   func() time.Time
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewMemoryDegreeCache creates an LRU cache holding up to maxSize entries.
func NewMemoryDegreeCache(maxSize int, ttl time.Duration) (*MemoryDegreeCache, error) {
	c, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &MemoryDegreeCache{cache: c, ttl: ttl, now: time.Now}, nil
}

// GetList implements degree.Cache.
func (c *MemoryDegreeCache) GetList(_ context.Context) ([]*degree.Degree, bool) {
	value, ok := c.get(listKey)
	if !ok {
		return nil, false
	}
	degrees, ok := value.([]*degree.Degree)
	return degrees, ok
}

// SetList implements degree.Cache.
func (c *MemoryDegreeCache) SetList(_ context.Context, degrees []*degree.Degree) {
	c.set(listKey, degrees)
}

// GetBySlug implements degree.Cache.
func (c *MemoryDegreeCache) GetBySlug(_ context.Context, slug string) (*degree.Degree, bool) {
	value, ok := c.get(slugKey(slug))
	if !ok {
		return nil, false
	}
	d, ok := value.(*degree.Degree)
	return d, ok
}

// SetBySlug implements degree.Cache.
func (c *MemoryDegreeCache) SetBySlug(_ context.Context, d *degree.Degree) {
	if d == nil {
		return
	}
	c.set(slugKey(d.Slug), d)
}

// Invalidate implements degree.Cache.
func (c *MemoryDegreeCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}

func (c *MemoryDegreeCache) get(key string) (any, bool) {
	c.mu.RLock()
	val, found := c.cache.Get(key)
	c.mu.RUnlock()
	if !found {
		metrics.RecordCacheLookup("memory", false)
		return nil, false
	}

	entry := val.(cacheEntry)
	if c.ttl > 0 && c.now().After(entry.expiresAt) {
		c.mu.Lock()
		c.cache.Remove(key)
		c.mu.Unlock()
		metrics.RecordCacheLookup("memory", false)
		return nil, false
	}

	metrics.RecordCacheLookup("memory", true)
	return entry.value, true
}

func (c *MemoryDegreeCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)})
}

func slugKey(slug string) string {
	return "degrees:slug:" + slug
}
