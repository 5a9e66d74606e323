package cache

import (
	"errors"
	"fmt"
	"sync"
)

// ErrLoadPanicked is returned to callers waiting on a load that panicked.
var ErrLoadPanicked = errors.New("cache: load panicked")

// Cache is a generic thread-safe LRU cache with soft limit.
// When the cache exceeds softLimit, oldest entries are evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	inflight  map[K]*call[V]
	softLimit int
	tick      int64 // Monotonic access counter
	hits      uint64
	misses    uint64
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// call is a load in progress. Waiters block on done.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		inflight:  make(map[K]*call[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.hits++
	c.tick++
	entry.atime = c.tick

	return entry.value, true
}

// Set stores a value in the cache.
// If the cache exceeds softLimit after insertion, oldest entries are evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.storeLocked(key, value)
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// Concurrent callers for the same key wait for a single load and share
// its result. The lock is not held while load runs, so loads of
// different keys proceed in parallel. Errors are returned to every
// waiter and nothing is stored. If load panics, waiters receive
// ErrLoadPanicked and the panic propagates to the loading caller.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		entry.atime = c.tick
		v := entry.value
		c.mu.Unlock()
		return v, nil
	}
	c.misses++
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		<-cl.done
		return cl.value, cl.err
	}
	cl := &call[V]{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	c.runLoad(key, cl, load)
	return cl.value, cl.err
}

// runLoad runs load for cl and publishes the result. A panicking load
// releases the key and its waiters with ErrLoadPanicked before the panic
// continues in the loading goroutine.
func (c *Cache[K, V]) runLoad(key K, cl *call[V], load func() (V, error)) {
	completed := false
	defer func() {
		var r any
		if !completed {
			// r is nil when load called runtime.Goexit.
			r = recover()
			var zero V
			cl.value = zero
			cl.err = fmt.Errorf("%w: %v", ErrLoadPanicked, r)
		}

		c.mu.Lock()
		delete(c.inflight, key)
		if cl.err == nil {
			c.storeLocked(key, cl.value)
		}
		c.mu.Unlock()
		close(cl.done)

		if r != nil {
			panic(r)
		}
	}()

	cl.value, cl.err = load()
	completed = true
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// Clear removes all entries from the cache. Loads in progress are not
// affected.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the soft limit of the cache.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:      len(c.entries),
		Capacity: c.softLimit,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// storeLocked inserts value and evicts if needed. Caller must hold c.mu.
func (c *Cache[K, V]) storeLocked(key K, value V) {
	c.tick++
	c.entries[key] = &cacheEntry[V]{
		value: value,
		atime: c.tick,
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes entries until under softLimit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	// Remove 25% of entries (or until under soft limit)
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type entry struct {
		key   K
		atime int64
	}
	entries := make([]entry, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, entry{key: key, atime: e.atime})
	}

	// Selection sort by access time, oldest first; batches are small.
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			entries[i], entries[minIdx] = entries[minIdx], entries[i]
		}
		delete(c.entries, entries[i].key)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the soft limit.
	Capacity int
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that found no entry.
	Misses uint64
}
