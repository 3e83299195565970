package monster

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	redisclient "github.com/KirkDiggler/monster-api/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"

	// maxUpdateAttempts bounds retries of a watched update
	maxUpdateAttempts = 3

	errMonsterIDEmpty = "monster ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis monster repository
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

// NewRedis creates a Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// getter is the part of a client or a watched transaction reads go through
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	m, err := load(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Monster: m}, nil
}

func load(ctx context.Context, g getter, id string) (*tuxemon.Monster, error) {
	result, err := g.Get(ctx, GetKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster %s not found", id).
				WithMeta("monster_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get monster %s", id)
	}

	var m tuxemon.Monster
	if err := json.Unmarshal([]byte(result), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster %s", id)
	}
	if m.Moves == nil {
		m.Moves = []string{}
	}

	return &m, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.Monster.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster %s", input.Monster.ID)
	}

	if err := r.client.Set(ctx, GetKey(input.Monster.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save monster %s", input.Monster.ID)
	}

	return &SaveOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}
	if input.Mutate == nil {
		return nil, errors.InvalidArgument("mutate function is required")
	}

	key := GetKey(input.ID)
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		var out *UpdateOutput
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			m, err := load(ctx, tx, input.ID)
			if err != nil {
				return err
			}

			changed, err := input.Mutate(m)
			if err != nil {
				return err
			}
			out = &UpdateOutput{Monster: m, Written: changed}
			if !changed {
				return nil
			}

			if err := m.Validate(); err != nil {
				return err
			}
			if m.ID != input.ID {
				return errors.Internalf("mutate changed monster id %s to %s", input.ID, m.ID)
			}

			data, err := json.Marshal(m)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal monster %s", input.ID)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, data, 0)
				return nil
			})
			return err
		}, key)

		if err == nil {
			return out, nil
		}
		if err != redis.TxFailedErr {
			return nil, errors.Wrapf(err, "failed to update monster %s", input.ID)
		}

		slog.DebugContext(ctx, "Monster changed during update, retrying",
			"monster_id", input.ID,
			"attempt", attempt)
	}

	return nil, errors.Newf(errors.CodeAborted, "monster %s kept changing during %d update attempts",
		input.ID, maxUpdateAttempts).
		WithMeta("monster_id", input.ID)
}

// GetKey returns the Redis key for a monster
// Exposed for testing purposes
func GetKey(id string) string {
	return monsterKeyPrefix + id
}
