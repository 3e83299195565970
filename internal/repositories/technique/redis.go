package technique

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	redisclient "github.com/KirkDiggler/monster-api/internal/redis"
)

const (
	techniqueKeyPrefix = "technique:"
	indexKey           = "techniques:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis technique repository
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

// NewRedis creates a Redis-backed technique repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	payloads := make(map[string][]byte, len(input.Techniques))
	slugs := make([]any, 0, len(input.Techniques))
	for i, t := range input.Techniques {
		if t == nil || t.Slug == "" {
			return nil, errors.InvalidArgumentf("technique %d has no slug", i)
		}
		if _, dup := payloads[t.Slug]; dup {
			return nil, errors.InvalidArgumentf("duplicate technique %s", t.Slug)
		}
		data, err := json.Marshal(t)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal technique %s", t.Slug)
		}
		payloads[t.Slug] = data
		slugs = append(slugs, t.Slug)
	}

	existing, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read technique index")
	}

	pipe := r.client.TxPipeline()
	for _, slug := range existing {
		if _, keep := payloads[slug]; !keep {
			pipe.Del(ctx, GetKey(slug))
		}
	}
	pipe.Del(ctx, indexKey)
	for slug, data := range payloads {
		pipe.Set(ctx, GetKey(slug), data, 0)
	}
	if len(slugs) > 0 {
		pipe.RPush(ctx, indexKey, slugs...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to seed techniques")
	}

	return &SeedOutput{Stored: len(slugs)}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	slugs, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read technique index")
	}
	if len(slugs) == 0 {
		return &ListOutput{Techniques: []*tuxemon.Technique{}}, nil
	}

	keys := make([]string, len(slugs))
	for i, slug := range slugs {
		keys[i] = GetKey(slug)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read techniques")
	}

	techniques := make([]*tuxemon.Technique, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			return nil, errors.New(errors.CodeDataLoss, "technique missing from store").
				WithMeta("slug", slugs[i])
		}

		var t tuxemon.Technique
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal technique %s", slugs[i])
		}
		techniques = append(techniques, &t)
	}

	return &ListOutput{Techniques: techniques}, nil
}

// GetKey returns the Redis key for a technique
// Exposed for testing purposes
func GetKey(slug string) string {
	return techniqueKeyPrefix + slug
}
