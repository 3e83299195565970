package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-api/internal/config"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvGRPCPort,
		config.EnvRedisAddr,
		config.EnvRedisPassword,
		config.EnvRedisDB,
		config.EnvDBDir,
		config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.GRPC.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Empty(t, cfg.DBDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvGRPCPort, "6000")
	t.Setenv(config.EnvRedisAddr, "redis:6379")
	t.Setenv(config.EnvRedisPassword, "secret")
	t.Setenv(config.EnvRedisDB, "2")
	t.Setenv(config.EnvDBDir, "/data/db")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.GRPC.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "/data/db", cfg.DBDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "port not a number", key: config.EnvGRPCPort, value: "abc", errMsg: "must be an integer"},
		{name: "port out of range", key: config.EnvGRPCPort, value: "70000", errMsg: "grpc.port"},
		{name: "negative db", key: config.EnvRedisDB, value: "-1", errMsg: "redis.db"},
		{name: "bad log level", key: config.EnvLogLevel, value: "loud", errMsg: "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(config.EnvDBDir)

	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte(config.EnvDBDir+"=/from/dotenv\n"), 0o600))

	loaded, err := config.LoadDotEnv(filepath.Join(dir, "missing.env"), file)
	require.NoError(t, err)
	assert.True(t, loaded)
	t.Cleanup(func() { os.Unsetenv(config.EnvDBDir) })

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.DBDir)
}

func TestLoadDotEnvMissing(t *testing.T) {
	loaded, err := config.LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.False(t, loaded)
}
