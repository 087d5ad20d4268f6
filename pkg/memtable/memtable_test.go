package memtable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemTable(t *testing.T) {
	m := New(16*1024, time.Minute)

	m.SetFlag("key01", true)
	m.SetFlag("key02", false)

	v, ok := m.GetFlag("key01")
	assert.Equal(t, true, ok)
	assert.Equal(t, true, v)

	v, ok = m.GetFlag("key02")
	assert.Equal(t, true, ok)
	assert.Equal(t, false, v)

	v, ok = m.GetFlag("key03")
	assert.Equal(t, false, ok)
	assert.Equal(t, false, v)

	_ = m.cache.Set([]byte("key04"), []byte("aa"), 0)
	v, ok = m.GetFlag("key04")
	assert.Equal(t, false, ok)
	assert.Equal(t, false, v)

	m.Delete("key01")
	_, ok = m.GetFlag("key01")
	assert.Equal(t, false, ok)
}

func TestExpireSeconds(t *testing.T) {
	assert.Equal(t, 0, expireSeconds(0))
	assert.Equal(t, 0, expireSeconds(-time.Second))
	assert.Equal(t, 1, expireSeconds(time.Millisecond))
	assert.Equal(t, 1, expireSeconds(500*time.Millisecond))
	assert.Equal(t, 1, expireSeconds(time.Second))
	assert.Equal(t, 2, expireSeconds(1500*time.Millisecond))
	assert.Equal(t, 60, expireSeconds(time.Minute))
}

func TestMemTable__Sub_Second_Expiration(t *testing.T) {
	m := New(16*1024, 500*time.Millisecond)

	m.SetFlag("key01", true)

	ttl, err := m.cache.TTL([]byte("key01"))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ttl >= 1)

	v, ok := m.GetFlag("key01")
	assert.Equal(t, true, ok)
	assert.Equal(t, true, v)

	time.Sleep(2100 * time.Millisecond)

	_, ok = m.GetFlag("key01")
	assert.Equal(t, false, ok)
}
