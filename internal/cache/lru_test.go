package cache

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "json/getgods/1", Key("json", "getgods", "1"))
	assert.Equal(t, "xml/getpatchinfo", Key("xml", "getpatchinfo"))
	assert.NotEqual(t, Key("json", "getgods", "1"), Key("xml", "getgods", "1"))
}

func TestResponseCache_PutGet(t *testing.T) {
	c := NewResponseCache(4, 0)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("json/getgods/1", `[{"id":1}]`)
	body, ok := c.Get("json/getgods/1")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, body)
	assert.Equal(t, 1, c.Len())
}

func TestResponseCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewResponseCache(2, 0)

	c.Put("a", "1")
	c.Put("b", "2")
	_, _ = c.Get("a")
	c.Put("c", "3")

	_, ok := c.Get("b")
	assert.False(t, ok, "b should be evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestResponseCache_Expires(t *testing.T) {
	c := NewResponseCache(2, 20*time.Millisecond)
	c.Put("a", "1")

	assert.Eventually(t, func() bool {
		_, ok := c.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestResponseCache_Purge(t *testing.T) {
	c := NewResponseCache(8, 0)
	for i := 0; i < 5; i++ {
		c.Put(strconv.Itoa(i), "x")
	}

	c.Purge()

	assert.Zero(t, c.Len())
}
