package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "VELAMART"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error messages).
const (
	EnvAppEnv   = "VELAMART_APP_ENV"
	EnvPort     = "VELAMART_APP_PORT"
	EnvDBDSN    = "VELAMART_DB_DSN"
	EnvDBHost   = "VELAMART_DB_HOST"
	EnvDBUser   = "VELAMART_DB_USER"
	EnvDBName   = "VELAMART_DB_NAME"
	EnvRedisURL = "VELAMART_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Pricing      PricingConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VELAMART_APP_ENV" required:"true"`
	Port         string `envconfig:"VELAMART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VELAMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VELAMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"VELAMART_DB_DSN"`
	Driver string `envconfig:"VELAMART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VELAMART_DB_HOST"`
	LegacyPort     int    `envconfig:"VELAMART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VELAMART_DB_USER"`
	LegacyPassword string `envconfig:"VELAMART_DB_PASSWORD"`
	LegacyName     string `envconfig:"VELAMART_DB_NAME"`
	LegacySSLMode  string `envconfig:"VELAMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VELAMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VELAMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VELAMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VELAMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"VELAMART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"VELAMART_REDIS_ADDR"`
	Password     string        `envconfig:"VELAMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"VELAMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VELAMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VELAMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VELAMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VELAMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VELAMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// PricingConfig tunes the price quote pipeline.
type PricingConfig struct {
	QuoteCacheEnabled bool          `envconfig:"VELAMART_PRICING_QUOTE_CACHE_ENABLED" default:"true"`
	QuoteCacheTTL     time.Duration `envconfig:"VELAMART_PRICING_QUOTE_CACHE_TTL" default:"5m"`
	DefaultCurrency   string        `envconfig:"VELAMART_PRICING_DEFAULT_CURRENCY" default:"USD"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VELAMART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:     db.LegacyName,
		RawQuery: fmt.Sprintf("sslmode=%s", db.LegacySSLMode),
	}
	db.DSN = dsn.String()
	return nil
}
