package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration of the promotion delivery service
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	MySQL           MySQLConfig           `mapstructure:"mysql"`
	Memcache        MemcacheConfig        `mapstructure:"memcache"`
	Log             LogConfig             `mapstructure:"log"`
	Jaeger          JaegerConfig          `mapstructure:"jaeger"`
	Email           EmailConfig           `mapstructure:"email"`
	SMS             SMSConfig             `mapstructure:"sms"`
	Scheduler       SchedulerConfig       `mapstructure:"scheduler"`
	PreferenceCache PreferenceCacheConfig `mapstructure:"preference_cache"`
	Promotion       PromotionConfig       `mapstructure:"promotion"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString returns the address for net.Listen
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// String ...
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// EmailConfig for the HTTP email API
type EmailConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	FromAddress string        `mapstructure:"from_address"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetries  uint64        `mapstructure:"max_retries"`
}

// SMSConfig for the HTTP SMS API
type SMSConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	AccountSID    string        `mapstructure:"account_sid"`
	AuthToken     string        `mapstructure:"auth_token"`
	FromNumber    string        `mapstructure:"from_number"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetries    uint64        `mapstructure:"max_retries"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Burst         int           `mapstructure:"burst"`
}

// SchedulerConfig contains cron specs for background jobs, empty spec disables the job
type SchedulerConfig struct {
	TriggerCron     string        `mapstructure:"trigger_cron"`
	DrainCron       string        `mapstructure:"drain_cron"`
	ExpireCron      string        `mapstructure:"expire_cron"`
	DrainBatchSize  uint64        `mapstructure:"drain_batch_size"`
	RunLeaseTimeout time.Duration `mapstructure:"run_lease_timeout"`

	MaxDeliveryAttempts int `mapstructure:"max_delivery_attempts"`
}

// PreferenceCacheConfig ...
type PreferenceCacheConfig struct {
	SizeBytes  int           `mapstructure:"size_bytes"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// PromotionConfig ...
type PromotionConfig struct {
	BusinessName  string `mapstructure:"business_name"`
	PortalBaseURL string `mapstructure:"portal_base_url"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http.port", 10080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("email.timeout", 10*time.Second)
	v.SetDefault("email.max_retries", 3)
	v.SetDefault("sms.timeout", 10*time.Second)
	v.SetDefault("sms.max_retries", 3)
	v.SetDefault("sms.rate_per_second", 5.0)
	v.SetDefault("sms.burst", 5)
	v.SetDefault("scheduler.drain_batch_size", 200)
	v.SetDefault("scheduler.run_lease_timeout", 15*time.Minute)
	v.SetDefault("scheduler.max_delivery_attempts", 3)
	v.SetDefault("preference_cache.size_bytes", 8*1024*1024)
	v.SetDefault("preference_cache.expiration", time.Minute)
}

func loadFile(filename string) Config {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetEnvPrefix("PROMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory
func Load() Config {
	return loadFile("config.yml")
}

// LoadTestConfig reads config.test.yml from the root directory of the module
func LoadTestConfig(rootDir string) Config {
	return loadFile(path.Join(rootDir, "config.test.yml"))
}
