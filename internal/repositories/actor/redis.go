package actor

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	redisclient "github.com/KirkDiggler/token-action-hud-wng/internal/redis"
)

const (
	actorKeyPrefix = "actor:"
	actorIndexKey  = "actor:ids"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis actor repository
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

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get actor")
	}

	var actor wng.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor %s", input.ID)
	}

	return &GetOutput{Actor: &actor}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+input.Actor.ID, data, 0)
	pipe.SAdd(ctx, actorIndexKey, input.Actor.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save actor")
	}

	return &SaveOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, actorIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read actor index")
	}

	actors := make([]*wng.Actor, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "actor missing, cleaning up index", "actor_id", id)
				r.client.SRem(ctx, actorIndexKey, id)
				continue
			}
			return nil, err
		}
		if input.Type != "" && out.Actor.Type != input.Type {
			continue
		}
		actors = append(actors, out.Actor)
	}

	slices.SortFunc(actors, func(a, b *wng.Actor) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return &ListOutput{Actors: actors}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, actorKeyPrefix+input.ID)
	pipe.SRem(ctx, actorIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete actor")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
