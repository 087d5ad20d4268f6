package util

import "github.com/twmb/murmur3"

// HashFunc is the hash of the shard column of pending deliveries
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}
