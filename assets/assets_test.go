package assets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// testCache replaces the codec-backed loader and the native free with
// in-memory fakes so the cache behavior is testable without a live image
// subsystem.
func testCache(size int) (*Cache, *map[string]int, *[]*sdl.Surface) {
	loads := map[string]int{}
	var freed []*sdl.Surface

	c := NewCache(size)
	c.load = func(path string) (*sdl.Surface, error) {
		if path == "missing.png" {
			return nil, errors.New("no such file")
		}

		loads[path]++
		return &sdl.Surface{}, nil
	}
	c.free = func(s *sdl.Surface) { freed = append(freed, s) }

	return c, &loads, &freed
}

func TestSurfaceLoadsOncePerPath(t *testing.T) {
	c, loads, _ := testCache(4)

	first, err := c.Surface("grass.png")
	require.NoError(t, err)

	second, err := c.Surface("grass.png")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, (*loads)["grass.png"])
}

func TestLoadFailureIsNotCached(t *testing.T) {
	c, _, _ := testCache(4)

	_, err := c.Surface("missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `load image "missing.png"`)
	assert.Zero(t, c.Len())
}

func TestEvictionFreesOldestSurface(t *testing.T) {
	c, _, freed := testCache(2)

	a, err := c.Surface("a.png")
	require.NoError(t, err)

	_, err = c.Surface("b.png")
	require.NoError(t, err)

	_, err = c.Surface("c.png")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	require.Len(t, *freed, 1)
	assert.Same(t, a, (*freed)[0])
}

func TestPurgeFreesEverything(t *testing.T) {
	c, _, freed := testCache(4)

	_, err := c.Surface("a.png")
	require.NoError(t, err)

	_, err = c.Surface("b.png")
	require.NoError(t, err)

	c.Purge()

	assert.Zero(t, c.Len())
	assert.Len(t, *freed, 2)
}
