package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	c := NewTTLCache()

	t.Run("Miss", func(t *testing.T) {
		_, ok := c.Get("nope")
		assert.False(t, ok)
	})

	t.Run("SetGet", func(t *testing.T) {
		c.Set("k", "v", time.Minute)
		got, ok := c.Get("k")
		assert.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("Expiry", func(t *testing.T) {
		c.Set("short", 1, 10*time.Millisecond)
		time.Sleep(25 * time.Millisecond)
		_, ok := c.Get("short")
		assert.False(t, ok)
	})

	t.Run("Overwrite", func(t *testing.T) {
		c.Set("k", "v2", time.Minute)
		got, _ := c.Get("k")
		assert.Equal(t, "v2", got)
	})
}
