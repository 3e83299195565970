package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/monster-api/internal/redis"
)

func TestNewClient(t *testing.T) {
	_, err := redis.NewClient("", nil)
	require.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, client.Ping(context.Background()).Err())
}
