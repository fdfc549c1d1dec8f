// Package assets loads images through the platform codecs the kernel
// initializes during Start. Loaded surfaces are kept in a bounded LRU
// cache; evicted surfaces are freed.
package assets

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Cache is a path-keyed surface cache. Not safe for concurrent use beyond
// what the single-threaded frame loop needs. Surfaces handed out stay valid
// until evicted or purged, so hosts should not hold them across many
// frames without re-requesting.
type Cache struct {
	load     func(path string) (*sdl.Surface, error)
	free     func(*sdl.Surface)
	surfaces *lru.Cache[string, *sdl.Surface]
}

// NewCache creates a cache holding at most size surfaces. The image
// subsystem must already be initialized, which the kernel does as the last
// step of Start.
func NewCache(size int) *Cache {
	c := &Cache{
		load: img.Load,
		free: func(s *sdl.Surface) { s.Free() },
	}

	c.surfaces, _ = lru.NewWithEvict[string, *sdl.Surface](size, func(path string, s *sdl.Surface) {
		slog.Debug("Freeing evicted surface", slog.String("path", path))
		c.free(s)
	})

	return c
}

// Surface returns the decoded surface for path, loading it on a cache
// miss. Load failures are not cached; a later call retries.
func (c *Cache) Surface(path string) (*sdl.Surface, error) {
	if surface, ok := c.surfaces.Get(path); ok {
		return surface, nil
	}

	surface, err := c.load(path)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", path, err)
	}

	c.surfaces.Add(path, surface)
	return surface, nil
}

// Len returns the number of cached surfaces.
func (c *Cache) Len() int {
	return c.surfaces.Len()
}

// Purge frees every cached surface. Call before the kernel is closed so no
// surface outlives the image subsystem.
func (c *Cache) Purge() {
	c.surfaces.Purge()
}
