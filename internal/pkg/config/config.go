package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	LogPretty       bool          `env:"LOG_PRETTY,       default=false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
	LoginRateLimit  float64       `env:"LOGIN_RATE_LIMIT, default=5"`

	JWT      JWTConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET, required"`
	TTL    time.Duration `env:"JWT_TTL,    default=24h"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN,         required"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
	RunMigrations   bool          `env:"DB_RUN_MIGRATIONS,    default=true"`
}

// RedisConfig points at the token revocation store. An empty address
// disables revocation.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// AdminConfig names the account bootstrapped with the ADMIN role at startup.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Enabled reports whether both admin credentials were provided.
func (a AdminConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
