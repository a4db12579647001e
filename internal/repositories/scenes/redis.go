package scenes

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-targeting/internal/redis"
)

const (
	// Key pattern: scene:{id}
	sceneKeyPrefix = "scene:"
	sceneIndexKey  = "scenes"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed scene repository. Scenes are
// stored as JSON documents; a set tracks their IDs.
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Scene == nil {
		return nil, errors.InvalidArgument(errSceneNil)
	}
	if input.Scene.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	scene := *input.Scene
	now := r.clock.Now().Unix()
	scene.CreatedAt = now
	scene.UpdatedAt = now

	data, err := json.Marshal(&scene)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scene")
	}

	created, err := r.client.SetNX(ctx, sceneKeyPrefix+scene.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store scene")
	}
	if !created {
		return nil, errors.AlreadyExistsf("scene with ID %s already exists", scene.ID)
	}

	if err := r.client.SAdd(ctx, sceneIndexKey, scene.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index scene")
	}

	stored, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Scene: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	scene, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Scene: scene}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Scene == nil {
		return nil, errors.InvalidArgument(errSceneNil)
	}
	if input.Scene.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	existing, err := r.load(ctx, input.Scene.ID)
	if err != nil {
		return nil, err
	}

	scene := *input.Scene
	scene.CreatedAt = existing.CreatedAt
	scene.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&scene)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scene")
	}

	if err := r.client.Set(ctx, sceneKeyPrefix+scene.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update scene")
	}

	stored, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Scene: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, sceneKeyPrefix+input.ID)
	pipe.SRem(ctx, sceneIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete scene")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("scene with ID %s not found", input.ID)
	}
	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, sceneIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list scenes")
	}
	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*entities.Scene, error) {
	result, err := r.client.Get(ctx, sceneKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("scene with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get scene")
	}

	return decode([]byte(result))
}

// decode returns a fresh linked scene so callers never share tokens with
// the value they stored.
func decode(data []byte) (*entities.Scene, error) {
	var scene entities.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal scene")
	}
	return scene.Link(), nil
}
