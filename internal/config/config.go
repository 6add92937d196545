package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment
// variables.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	MySQLDSN string `env:"MYSQL_DSN, default=user:password@tcp(localhost:3306)/bragboard?charset=utf8mb4&parseTime=True&loc=Local"`

	// ResetDB drops and recreates all tables on startup. Dev only.
	ResetDB bool `env:"RESET_DB, default=false"`

	Redis RedisConfig

	Admin AdminConfig

	// CORSOrigins is the fixed allow-list for the local web client.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001,http://localhost:3002,http://127.0.0.1:3002"`
}

// RedisConfig holds connection settings for the token/leaderboard cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// AdminConfig describes the admin account seeded idempotently at startup.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@bragboard.local"`
	Name     string `env:"ADMIN_NAME,     default=Board Admin"`
	Password string `env:"ADMIN_PASSWORD, default=change-me"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
