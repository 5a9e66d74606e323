package svgir

import (
	"errors"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"
)

func TestImageCacheGetSet(t *testing.T) {
	c := NewImageCache(0)
	if _, ok := c.Get("a"); ok {
		t.Error("empty cache should miss")
	}
	data := solidImageData(t, 1, 1, color.NRGBA{A: 255})
	c.Set("a", data)
	got, ok := c.Get("a")
	if !ok || got != data {
		t.Error("Get() should return the stored pointer")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestImageCacheGetOrLoadOnce(t *testing.T) {
	c := NewImageCache(0)
	data := solidImageData(t, 1, 1, color.NRGBA{A: 255})

	var calls atomic.Int32
	start := make(chan struct{})
	load := func(href string) (*ImageData, error) {
		calls.Add(1)
		<-start
		return data, nil
	}

	const n = 16
	var wg sync.WaitGroup
	results := make([]*ImageData, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := c.GetOrLoad("shared.png", load)
			if err != nil {
				t.Errorf("GetOrLoad() error: %v", err)
			}
			results[i] = d
		}()
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("loader called %d times, want 1", got)
	}
	for i, d := range results {
		if d != data {
			t.Errorf("result %d is not the shared image", i)
		}
	}
}

func TestImageCacheLoadErrorNotCached(t *testing.T) {
	c := NewImageCache(0)
	errLoad := errors.New("boom")
	fail := true
	load := func(string) (*ImageData, error) {
		if fail {
			return nil, errLoad
		}
		return solidImageData(t, 1, 1, color.NRGBA{}), nil
	}

	if _, err := c.GetOrLoad("x", load); !errors.Is(err, errLoad) {
		t.Fatalf("error = %v, want %v", err, errLoad)
	}
	if c.Len() != 0 {
		t.Error("failed load must not be cached")
	}
	fail = false
	if d, err := c.GetOrLoad("x", load); err != nil || d == nil {
		t.Errorf("retry: %v, %v", d, err)
	}
}

func TestImageCacheLimit(t *testing.T) {
	c := NewImageCache(4)
	data := solidImageData(t, 1, 1, color.NRGBA{})
	for _, href := range []string{"a", "b", "c", "d", "e", "f"} {
		c.Set(href, data)
	}
	if c.Len() > 4 {
		t.Errorf("Len() = %d, want at most 4", c.Len())
	}
	if _, ok := c.Get("f"); !ok {
		t.Error("most recent entry should survive eviction")
	}
}
