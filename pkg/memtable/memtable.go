package memtable

import (
	"time"

	"github.com/coocood/freecache"
)

// MemTable is an in-process cache of boolean flags with expiration
type MemTable struct {
	cache      *freecache.Cache
	expiration time.Duration
}

// New creates freecache with size, entries expire after expiration (zero means never)
func New(size int, expiration time.Duration) *MemTable {
	return &MemTable{
		cache:      freecache.NewCache(size),
		expiration: expiration,
	}
}

const (
	flagFalse byte = 1
	flagTrue  byte = 2
)

// GetFlag ...
func (m *MemTable) GetFlag(key string) (value bool, ok bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return false, false
	}
	if len(data) != 1 {
		return false, false
	}
	switch data[0] {
	case flagTrue:
		return true, true
	case flagFalse:
		return false, true
	default:
		return false, false
	}
}

// SetFlag ...
func (m *MemTable) SetFlag(key string, value bool) {
	flag := flagFalse
	if value {
		flag = flagTrue
	}
	_ = m.cache.Set([]byte(key), []byte{flag}, expireSeconds(m.expiration))
}

// expireSeconds rounds up to whole seconds, a positive expiration never becomes zero (never expire)
func expireSeconds(expiration time.Duration) int {
	if expiration <= 0 {
		return 0
	}
	return int((expiration + time.Second - 1) / time.Second)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
