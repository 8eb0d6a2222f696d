package gap

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v3"
)

// CacheKey identifies a single GASP evaluation.
type CacheKey struct {
	K, L, X, R int
}

// Cache memoizes GASP evaluations.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached value of key, if present.
	Get(key CacheKey) (int, bool)
	// Add stores the value of key.
	Add(key CacheKey, value int)
	// Len returns the number of cached values.
	Len() int
}

// MapCache is an unbounded Cache.
// Values are never evicted.
type MapCache struct {
	m *xsync.MapOf[CacheKey, int]
}

// NewMapCache creates a new MapCache.
func NewMapCache() *MapCache {
	return &MapCache{
		m: xsync.NewMapOf[CacheKey, int](),
	}
}

// Get returns the cached value of key, if present.
func (c *MapCache) Get(key CacheKey) (int, bool) {
	return c.m.Load(key)
}

// Add stores the value of key.
func (c *MapCache) Add(key CacheKey, value int) {
	c.m.Store(key, value)
}

// Len returns the number of cached values.
func (c *MapCache) Len() int {
	return c.m.Size()
}

// LRUCache is a Cache holding at most a fixed number of values,
// evicting the least recently used one first.
type LRUCache struct {
	c *lru.Cache[CacheKey, int]
}

// NewLRUCache creates a new LRUCache holding at most size values.
//
// Panics if size is not positive.
func NewLRUCache(size int) *LRUCache {
	c, err := lru.New[CacheKey, int](size)
	if err != nil {
		panic(err)
	}
	return &LRUCache{c: c}
}

// Get returns the cached value of key, if present.
func (c *LRUCache) Get(key CacheKey) (int, bool) {
	return c.c.Get(key)
}

// Add stores the value of key, possibly evicting another one.
func (c *LRUCache) Add(key CacheKey, value int) {
	c.c.Add(key, value)
}

// Len returns the number of cached values.
func (c *LRUCache) Len() int {
	return c.c.Len()
}
