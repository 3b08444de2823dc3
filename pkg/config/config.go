package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	KV           KVConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.KV.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VOGUE_APP_ENV" required:"true"`
	Port         string `envconfig:"VOGUE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VOGUE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VOGUE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Supported durable storage drivers.
const (
	KVDriverSQLite   = "sqlite"
	KVDriverPostgres = "postgres"
	KVDriverRedis    = "redis"
	KVDriverMemory   = "memory"
)

// KVConfig selects and tunes the durable key-value backend that stands in
// for the storefront's local storage.
type KVConfig struct {
	Driver string `envconfig:"VOGUE_KV_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"VOGUE_KV_DSN" default:"storefront.db"`

	MaxOpenConns    int           `envconfig:"VOGUE_KV_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"VOGUE_KV_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"VOGUE_KV_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VOGUE_KV_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (kv *KVConfig) validate() error {
	driver := strings.ToLower(strings.TrimSpace(kv.Driver))
	switch driver {
	case KVDriverSQLite, KVDriverPostgres, KVDriverRedis, KVDriverMemory:
		kv.Driver = driver
	default:
		return fmt.Errorf("unsupported kv driver %q", kv.Driver)
	}
	if driver != KVDriverMemory && driver != KVDriverRedis && kv.DSN == "" {
		return fmt.Errorf("%s is required for the %s driver", EnvKVDSN, driver)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"VOGUE_REDIS_URL"`
	Address      string        `envconfig:"VOGUE_REDIS_ADDR"`
	Password     string        `envconfig:"VOGUE_REDIS_PASSWORD"`
	DB           int           `envconfig:"VOGUE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VOGUE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VOGUE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VOGUE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VOGUE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VOGUE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"VOGUE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VOGUE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"VOGUE_JWT_EXPIRATION_MINUTES" default:"720"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VOGUE_AUTO_MIGRATE" default:"false"`
}
