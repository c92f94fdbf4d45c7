// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the capacity of the process-wide pattern cache.
const DefaultCacheSize = 1024

// CacheOptions controls NewCache.
type CacheOptions struct {
	// Size is the maximum number of cached patterns. Zero means DefaultCacheSize.
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
	// Logger receives evictions at debug level. Nil disables logging.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// Cache memoizes compiled patterns keyed by glob text.
//
// Only patterns compiled with default compile options are stored, because
// any option changes the emitted regex. Lookups promote the entry and an
// insert beyond Size evicts the least recently used one. Cache is safe for
// concurrent use; two callers missing on the same glob may both compile it.
type Cache struct {
	entries *lru.Cache[string, *Pattern]
	logger  *slog.Logger
}

// NewCache creates an empty bounded cache.
func NewCache(opts CacheOptions) (*Cache, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultCacheSize
	}

	if size < 0 {
		return nil, fmt.Errorf("%w: cache size %d", ErrInvalidOptions, opts.Size)
	}

	c := &Cache{logger: opts.Logger}
	entries, err := lru.NewWithEvict[string, *Pattern](size, c.evicted)
	if err != nil {
		return nil, fmt.Errorf("create pattern cache: %w", err)
	}

	c.entries = entries
	return c, nil
}

// evicted logs an entry dropped by the LRU bound.
func (c *Cache) evicted(glob string, _ *Pattern) {
	if c.logger != nil {
		c.logger.Debug("pattern cache eviction", "glob", glob)
	}
}

// MakeRe returns the cached pattern for glob, compiling it on a miss.
func (c *Cache) MakeRe(glob string, opts Options) (*Pattern, error) {
	if !opts.cacheable() {
		return MakeRe(glob, opts)
	}

	if re, ok := c.entries.Get(glob); ok {
		return re, nil
	}

	re, err := MakeRe(glob, opts)
	if err != nil {
		return nil, err
	}

	c.entries.Add(glob, re)
	return re, nil
}

// Compile is like the package-level Compile but reuses cached patterns for
// glob and its ignore patterns.
func (c *Cache) Compile(glob string, opts Options) (*Matcher, error) {
	return newMatcher(glob, opts, c.MakeRe)
}

// CompileAll is like the package-level CompileAll but reuses cached patterns.
func (c *Cache) CompileAll(globs []string, opts Options) (AnyMatcher, error) {
	return compileAll(globs, opts, c.Compile)
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int { return c.entries.Len() }

// Contains reports whether glob is cached, without promoting it.
func (c *Cache) Contains(glob string) bool { return c.entries.Contains(glob) }

// Clear drops every cached pattern.
func (c *Cache) Clear() { c.entries.Purge() }

var defaultCache = mustNewCache()

// mustNewCache builds the default cache and panics on a bad size.
func mustNewCache() *Cache {
	c, err := NewCache(CacheOptions{})
	if err != nil {
		panic(err)
	}

	return c
}

// DefaultCache returns the process-wide cache used by the package-level
// helpers such as IsMatch and Match.
func DefaultCache() *Cache { return defaultCache }

// ClearCache empties the process-wide cache.
func ClearCache() { defaultCache.Clear() }
