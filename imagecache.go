package svgir

import "github.com/gogpu/svgir/internal/cache"

// ImageCache maps image references (href strings) to decoded,
// premultiplied image data.
//
// ImageCache is safe for concurrent use. GetOrLoad decodes each href at
// most once among concurrent callers; every caller receives the same
// shared *ImageData.
type ImageCache struct {
	c *cache.Cache[string, *ImageData]
}

// NewImageCache creates a cache holding at most about limit images.
// A limit of 0 means unlimited.
func NewImageCache(limit int) *ImageCache {
	return &ImageCache{c: cache.New[string, *ImageData](limit)}
}

// Get returns the image stored for href.
func (ic *ImageCache) Get(href string) (*ImageData, bool) {
	return ic.c.Get(href)
}

// Set stores preloaded image data for href.
func (ic *ImageCache) Set(href string, data *ImageData) {
	ic.c.Set(href, data)
}

// GetOrLoad returns the image for href, calling load on a miss. Failed
// loads are not cached.
func (ic *ImageCache) GetOrLoad(href string, load func(href string) (*ImageData, error)) (*ImageData, error) {
	return ic.c.GetOrLoad(href, func() (*ImageData, error) {
		return load(href)
	})
}

// Len returns the number of cached images.
func (ic *ImageCache) Len() int {
	return ic.c.Len()
}
