package tuxepedia

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	redisclient "github.com/KirkDiggler/monster-api/internal/redis"
)

const keyPrefix = "tuxepedia:"

// recordScript writes ARGV[2] for field ARGV[1] unless caught is stored
// and something else is being written. Returns the stored status.
var recordScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], ARGV[1])
if current == 'caught' and ARGV[2] ~= 'caught' then
	return current
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return ARGV[2]
`)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis tuxepedia repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed tuxepedia repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, GetKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tuxepedia for player %s", input.PlayerID)
	}

	statuses := make(map[string]tuxemon.SeenStatus, len(raw))
	for slug, status := range raw {
		statuses[slug] = tuxemon.SeenStatus(status)
	}

	return &GetOutput{Statuses: statuses}, nil
}

func (r *redisRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("slug", input.Slug, vb)
	if _, err := tuxemon.ParseSeenStatus(string(input.Status)); err != nil {
		vb.Fieldf("status", "invalid seen status %q", input.Status)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	stored, err := recordScript.Run(ctx, r.client,
		[]string{GetKey(input.PlayerID)}, input.Slug, string(input.Status)).Text()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record %s for player %s", input.Slug, input.PlayerID)
	}

	return &RecordOutput{Status: tuxemon.SeenStatus(stored)}, nil
}

// GetKey returns the Redis key for a player's register
// Exposed for testing purposes
func GetKey(playerID string) string {
	return keyPrefix + playerID
}
