package encounter

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	redisclient "github.com/KirkDiggler/token-action-hud-wng/internal/redis"
)

const (
	encounterKeyPrefix = "encounter:"
	activeKey          = "encounter:active"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis encounter repository
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

// NewRedis creates a new Redis-backed encounter repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	result, err := r.client.Get(ctx, encounterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("encounter with ID %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get encounter")
	}

	var enc wng.Encounter
	if err := json.Unmarshal([]byte(result), &enc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal encounter %s", input.ID)
	}

	return &GetOutput{Encounter: &enc}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Encounter == nil {
		return nil, errors.InvalidArgument(errEncounterNil)
	}
	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	data, err := json.Marshal(input.Encounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal encounter")
	}

	if err := r.client.Set(ctx, encounterKeyPrefix+input.Encounter.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to save encounter")
	}

	slog.DebugContext(ctx, "saved encounter",
		"encounter_id", input.Encounter.ID,
		"round", input.Encounter.Round,
		"current_id", input.Encounter.CurrentID,
	)

	return &SaveOutput{Encounter: input.Encounter}, nil
}

func (r *redisRepository) GetActive(ctx context.Context, _ GetActiveInput) (*GetActiveOutput, error) {
	id, err := r.client.Get(ctx, activeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNoActive)
		}
		return nil, errors.Wrap(err, "failed to get active encounter")
	}

	out, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return &GetActiveOutput{Encounter: out.Encounter}, nil
}

func (r *redisRepository) SetActive(ctx context.Context, input SetActiveInput) (*SetActiveOutput, error) {
	if input.ID == "" {
		if err := r.client.Del(ctx, activeKey).Err(); err != nil {
			return nil, errors.Wrap(err, "failed to clear active encounter")
		}
		return &SetActiveOutput{}, nil
	}

	exists, err := r.client.Exists(ctx, encounterKeyPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check encounter")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("encounter with ID %s not found", input.ID)
	}

	if err := r.client.Set(ctx, activeKey, input.ID, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to set active encounter")
	}

	return &SetActiveOutput{}, nil
}
