// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/monster-api/internal/errors"
)

// Environment variables
const (
	EnvGRPCPort      = "MONSTER_API_GRPC_PORT"
	EnvRedisAddr     = "MONSTER_API_REDIS_ADDR"
	EnvRedisPassword = "MONSTER_API_REDIS_PASSWORD"
	EnvRedisDB       = "MONSTER_API_REDIS_DB"
	EnvDBDir         = "MONSTER_API_DB_DIR"
	EnvLogLevel      = "MONSTER_API_LOG_LEVEL"
)

// Config holds all configuration for the server
type Config struct {
	GRPC  GRPCConfig
	Redis RedisConfig

	// DBDir is the Tuxemon db directory. Empty means load from Redis.
	DBDir string

	LogLevel slog.Level
}

// GRPCConfig holds gRPC listener configuration
type GRPCConfig struct {
	Port int
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding what is already set. Missing files are
// skipped. It reports whether anything was loaded.
func LoadDotEnv(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	loaded := false
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, errors.Wrapf(err, "failed to load %s", file)
		}
		loaded = true
	}
	return loaded, nil
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	vb := errors.NewValidationBuilder()

	cfg := &Config{
		GRPC: GRPCConfig{
			Port: getEnvAsInt(EnvGRPCPort, 50051, vb),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault(EnvRedisAddr, "localhost:6379"),
			Password: os.Getenv(EnvRedisPassword),
			DB:       getEnvAsInt(EnvRedisDB, 0, vb),
		},
		DBDir:    os.Getenv(EnvDBDir),
		LogLevel: slog.LevelInfo,
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			vb.Fieldf(EnvLogLevel, "invalid log level %q", level)
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc.port", c.GRPC.Port, 1, 65535, vb)
	errors.ValidateRequired("redis.addr", c.Redis.Addr, vb)
	if c.Redis.DB < 0 {
		vb.Field("redis.db", "cannot be negative")
	}
	return vb.Build()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int, vb *errors.ValidationBuilder) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		vb.Fieldf(key, "must be an integer, got %q", value)
		return defaultValue
	}
	return intValue
}
