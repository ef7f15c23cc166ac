package strmatch

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/patrickmn/go-cache"

	"go.dw1.io/strmatch/regexp"
)

// Cache holds compiled patterns keyed by their source text.
//
// Entries never expire and are never evicted. A Cache is safe for concurrent
// use; concurrent first use of the same pattern compiles it exactly once.
type Cache struct {
	entries *cache.Cache
	opts    []regexp.Option

	// compiles counts actual compilations.
	compiles atomic.Uint64
}

var defaultCache = NewCache()

// DefaultCache returns the process-wide cache used by [When], [New] and
// [Match].
func DefaultCache() *Cache {
	return defaultCache
}

// NewCache returns an empty Cache. opts are applied to every pattern it
// compiles.
func NewCache(opts ...regexp.Option) *Cache {
	return &Cache{
		// No janitor: cleanupInterval <= 0 and nothing ever expires.
		entries: cache.New(cache.NoExpiration, 0),
		opts:    opts,
	}
}

// Compile returns the compiled form of pattern, compiling it on first use.
//
// It panics with an error wrapping [ErrInvalidPattern] if pattern is invalid.
func (c *Cache) Compile(pattern string) *regexp.Regexp {
	return c.cell(pattern).compiled()
}

// Len returns the number of patterns registered in c, compiled or not.
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}

// cell returns the entry for pattern, registering an uncompiled one if none
// exists yet.
func (c *Cache) cell(pattern string) *cell {
	if v, ok := c.entries.Get(pattern); ok {
		return v.(*cell)
	}

	fresh := &cell{owner: c, pattern: pattern}
	if err := c.entries.Add(pattern, fresh, cache.NoExpiration); err != nil {
		// Lost the race; adopt the winner's cell.
		if v, ok := c.entries.Get(pattern); ok {
			return v.(*cell)
		}
	}

	return fresh
}

// cell is a lazily compiled pattern.
type cell struct {
	owner   *Cache
	pattern string

	once sync.Once
	re   *regexp.Regexp
	err  error
}

func (e *cell) compiled() *regexp.Regexp {
	e.once.Do(func() {
		e.owner.compiles.Add(1)
		e.re, e.err = regexp.Compile(e.pattern, e.owner.opts...)
	})

	if e.err != nil {
		panic(fmt.Errorf("%w: %q: %w", ErrInvalidPattern, e.pattern, e.err))
	}

	return e.re
}
