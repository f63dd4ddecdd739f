package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetSetAndEviction(t *testing.T) {
	c := New[string](2, time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3") // evicts "a"

	_, ok := c.Get("a")
	assert.False(t, ok)
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, 2, c.Len())
}

func TestExpiry(t *testing.T) {
	c := New[int](10, time.Nanosecond)
	c.Set("k", 42)
	time.Sleep(time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestVersionedKeysDiffer(t *testing.T) {
	k1 := Key("ana@email.com", 1, "monthly", 2024)
	k2 := Key("ana@email.com", 2, "monthly", 2024)
	k3 := Key("bruno@email.com", 1, "monthly", 2024)
	assert.NotEqual(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}
