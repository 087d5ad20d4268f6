package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// MySQLOption for MySQL options
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host            string        `mapstructure:"host"`
	Port            uint16        `mapstructure:"port"`
	Database        string        `mapstructure:"database"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Options         []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) options() []MySQLOption {
	opts := []MySQLOption{
		{Key: "parseTime", Value: "true"},
		{Key: "loc", Value: "UTC"},
	}
	for _, o := range c.Options {
		if o.Key == "parseTime" || o.Key == "loc" {
			continue
		}
		opts = append(opts, o)
	}
	return opts
}

func (c MySQLConfig) optionsString() string {
	var opts []string
	for _, o := range c.options() {
		key := url.QueryEscape(o.Key)
		value := url.QueryEscape(o.Value)
		opts = append(opts, key+"="+value)
	}
	return strings.Join(opts, "&")
}

// DSN returns data source name
func (c MySQLConfig) DSN() string {
	optStr := c.optionsString()
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.Username, c.Password, c.Host, c.Port, c.Database, optStr)
}

// MustConnect connects to database using sqlx
func (c MySQLConfig) MustConnect(logger *zap.Logger) *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	logger.Info("connected to mysql",
		zap.String("addr", fmt.Sprintf("%s:%d", c.Host, c.Port)),
		zap.String("database", c.Database),
		zap.Int("max_open_conns", c.MaxOpenConns),
		zap.Int("max_idle_conns", c.MaxIdleConns),
		zap.String("options", c.optionsString()),
	)

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
	return db
}
