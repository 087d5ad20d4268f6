package cacheclient

import (
	"context"
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

// Client is a memcached client providing short-lived leases used as cross-instance locks
type Client struct {
	client *memcache.Client
	owner  string
}

// New ...
func New(addr string, numConns int, owner string) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
		owner:  owner,
	}
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

func leaseGet(pipe *memcache.Pipeline, key string, ttl uint32) (LeaseGetOutput, error) {
	resp, err := pipe.MGet(key, memcache.MGetOptions{
		N:   ttl,
		CAS: true,
	})()
	if err != nil {
		return LeaseGetOutput{}, err
	}
	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
		return LeaseGetOutput{
			Type: LeaseGetTypeRejected,
		}, nil
	}

	if resp.Flags&memcache.MGetFlagW != 0 {
		return LeaseGetOutput{
			Type:    LeaseGetTypeGranted,
			LeaseID: resp.CAS,
		}, nil
	}

	return LeaseGetOutput{
		Type: LeaseGetTypeOK,
		Data: resp.Data,
	}, nil
}

func ttlSeconds(ttl time.Duration) uint32 {
	seconds := uint32(ttl / time.Second)
	if seconds == 0 {
		return 1
	}
	return seconds
}

// TryLock acquires the key for ttl, returns false when another owner is holding it
func (c *Client) TryLock(_ context.Context, key string, ttl time.Duration) (bool, error) {
	pipe := c.client.Pipeline()
	defer pipe.Finish()

	seconds := ttlSeconds(ttl)

	output, err := leaseGet(pipe, key, seconds)
	if err != nil {
		return false, err
	}
	if output.Type != LeaseGetTypeGranted {
		return false, nil
	}

	_, err = pipe.MSet(key, []byte(c.owner), memcache.MSetOptions{
		CAS: output.LeaseID,
		TTL: seconds,
	})()
	if err != nil {
		return false, err
	}
	return true, nil
}

// Unlock ...
func (c *Client) Unlock(_ context.Context, key string) error {
	pipe := c.client.Pipeline()
	defer pipe.Finish()

	_, err := pipe.MDel(key, memcache.MDelOptions{})()
	return err
}
