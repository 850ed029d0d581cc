package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Behavior both containers share, checked through the Cache interface.
func Test_Cache_CommonSurface(t *testing.T) {
	t.Parallel()

	caches := map[string]Cache[string, int]{
		"lru":  NewLRU[string, int](Options[string, int]{Capacity: 3}),
		"fifo": NewFIFO[string, int](Options[string, int]{Capacity: 3}),
	}

	for name, c := range caches {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, 3, c.MaxSize())
			assert.Zero(t, c.Len())
			assert.False(t, c.Contains("a"))

			c.Set("a", 1)
			c.Set("b", 2)

			assert.Equal(t, 2, c.Len())
			assert.True(t, c.Contains("a"))
			assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())

			v, err := c.Get("a")
			assert.NoError(t, err)
			assert.Equal(t, 1, v)

			_, err = c.Get("zzz")
			assert.True(t, errors.Is(err, ErrNotFound))

			assert.Equal(t, 2, c.GetDefault("b", -1))
			assert.Equal(t, -1, c.GetDefault("zzz", -1))

			c.Clear()
			assert.Zero(t, c.Len())
			assert.Empty(t, c.Keys())
			assert.False(t, c.Contains("a"))
		})
	}
}

// A failed lookup never mutates container state: same misses, same
// membership, same order afterwards.
func Test_Cache_MissIsPure(t *testing.T) {
	t.Parallel()

	caches := map[string]Cache[string, int]{
		"lru":  NewLRU[string, int](Options[string, int]{Capacity: 2}),
		"fifo": NewFIFO[string, int](Options[string, int]{Capacity: 2}),
	}

	for name, c := range caches {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c.Set("a", 1)
			c.Set("b", 2)

			for i := 0; i < 5; i++ {
				_, err := c.Get("missing")
				assert.Error(t, err)
			}

			assert.Equal(t, 2, c.Len())
			assert.ElementsMatch(t, []string{"a", "b"}, c.Keys())

			// Eviction order is unaffected by the misses: "a" is still
			// the victim in both variants ("b" is newer and, for the
			// LRU, more recent).
			c.Set("c", 3)
			assert.False(t, c.Contains("a"))
			assert.True(t, c.Contains("b"))
		})
	}
}
