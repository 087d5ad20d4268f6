package config

import "fmt"

// MemcacheConfig for the memcached used as the trigger run lease, disabled when Host is empty
type MemcacheConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`
}

// Enabled ...
func (c MemcacheConfig) Enabled() bool {
	return c.Host != ""
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
