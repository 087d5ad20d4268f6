package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLConfig_DSN(t *testing.T) {
	c := MySQLConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "promo",
		Username: "root",
		Password: "1",
		Options: []MySQLOption{
			{Key: "parseTime", Value: "false"},
			{Key: "multiStatements", Value: "true"},
		},
	}
	assert.Equal(t,
		"root:1@tcp(localhost:3306)/promo?parseTime=true&loc=UTC&multiStatements=true",
		c.DSN())
}

func TestMemcacheConfig_Enabled(t *testing.T) {
	assert.Equal(t, false, MemcacheConfig{}.Enabled())

	c := MemcacheConfig{Host: "localhost", Port: 11211}
	assert.Equal(t, true, c.Enabled())
	assert.Equal(t, "localhost:11211", c.Addr())
}
