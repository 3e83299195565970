package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so it can be replaced in tests
type Client interface {
	redis.UniversalClient
}
