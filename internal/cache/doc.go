// Package cache provides the compute-once cache behind svgir.ImageCache.
//
// # Cache[K, V]
//
// A thread-safe LRU cache with a soft limit and 25% eviction when the
// limit is exceeded. GetOrLoad runs the loader at most once per key
// among concurrent callers; callers waiting on the same key share the
// result. Failed loads are not stored.
//
//	c := cache.New[string, *Data](64)
//	v, err := c.GetOrLoad("a.png", func() (*Data, error) { return decode("a.png") })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
