// Package cache provides a thread-safe LRU cache for parsed expressions.
//
// It avoids re-parsing the same expression string on every call, which is
// useful when a driver (such as the interactive CLI) parses the same input
// repeatedly. Once the capacity is reached, the least recently used entry
// is evicted.
//
// # Example
//
//	c := cache.New(256)
//	expr, err := c.GetOrParse("a + b*c", func() (*types.Expression, error) {
//	    return parser.Parse("a + b*c")
//	})
package cache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/joaofaria/compilerlab/pkg/types"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a thread-safe LRU cache mapping source strings to parsed
// expressions. Safe for concurrent use by multiple goroutines.
type Cache struct {
	capacity int
	entries  *lru.Cache
}

// New creates a new LRU cache with the given capacity.
// capacity must be > 0; if <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New(capacity)
	if err != nil {
		// lru.New only fails on capacity <= 0, which is ruled out above.
		panic(err)
	}
	return &Cache{
		capacity: capacity,
		entries:  entries,
	}
}

// Get retrieves a parsed expression from the cache.
// Returns (expr, true) if found and marks the entry as most recently used.
func (c *Cache) Get(source string) (*types.Expression, bool) {
	v, ok := c.entries.Get(source)
	if !ok {
		return nil, false
	}
	return v.(*types.Expression), true
}

// Set inserts or replaces an expression in the cache.
// If at capacity, the least recently used entry is evicted first.
func (c *Cache) Set(source string, expr *types.Expression) {
	c.entries.Add(source, expr)
}

// GetOrParse retrieves the expression for source from the cache, or calls
// parse to create it, caches the result, and returns it.
// Parse failures are not cached, so a failing source is re-parsed on every
// call.
func (c *Cache) GetOrParse(source string, parse func() (*types.Expression, error)) (*types.Expression, error) {
	if expr, ok := c.Get(source); ok {
		return expr, nil
	}
	expr, err := parse()
	if err != nil {
		return nil, err
	}
	c.Set(source, expr)
	return expr, nil
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Invalidate removes a single entry from the cache.
func (c *Cache) Invalidate(source string) {
	c.entries.Remove(source)
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.entries.Purge()
}
