package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LookupAndStore(t *testing.T) {
	c := New[string](4, 0)

	_, ok := c.Lookup("dog_Beagle")
	require.False(t, ok)

	c.Store("dog_Beagle", "https://img/beagle.jpg")
	got, ok := c.Lookup("dog_Beagle")
	require.True(t, ok)
	assert.Equal(t, "https://img/beagle.jpg", got)

	c.Store("dog_Beagle", "https://img/beagle-2.jpg")
	got, _ = c.Lookup("dog_Beagle")
	assert.Equal(t, "https://img/beagle-2.jpg", got, "one value per key")
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int](3, 0)
	for i := 0; i < 3; i++ {
		c.Store(fmt.Sprintf("k%d", i), i)
	}
	_, _ = c.Lookup("k0") // k1 is now the oldest
	c.Store("k3", 3)

	assert.Equal(t, 3, c.Len())
	_, ok := c.Lookup("k1")
	assert.False(t, ok, "k1 should have been evicted")
	_, ok = c.Lookup("k0")
	assert.True(t, ok, "recently used k0 should survive")
}

func TestCache_EntriesExpire(t *testing.T) {
	c := New[string](8, 20*time.Millisecond)
	c.Store("cat_Siamese", "url")

	_, ok := c.Lookup("cat_Siamese")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := c.Lookup("cat_Siamese")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestCache_NilIsEmpty(t *testing.T) {
	var c *Cache[string]
	c.Store("k", "v")
	_, ok := c.Lookup("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestBreedKey(t *testing.T) {
	assert.Equal(t, "dog_Golden Retriever", BreedKey(" DOG ", "Golden Retriever "))
	assert.Equal(t, "cat_Persian", BreedKey("Cat", "Persian"))
	assert.NotEqual(t, BreedKey("dog", "Persian"), BreedKey("cat", "Persian"))
}
