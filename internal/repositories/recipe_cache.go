package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
)

// RecipeCacheRepository caches full recipe bodies in Redis
type RecipeCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached recipes
}

func NewRecipeCacheRepository(client *redis.Client, expiration time.Duration) *RecipeCacheRepository {
	return &RecipeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func recipeKey(id string) string {
	return "recipe:" + id
}

// Get returns the cached recipe, or nil when it is not cached.
func (r *RecipeCacheRepository) Get(ctx context.Context, id string) (*models.Recipe, error) {
	key := recipeKey(id)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("redis command",
		"key", key,
		"result", len(val),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := json.Unmarshal(val, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Set caches the recipe under its id.
func (r *RecipeCacheRepository) Set(ctx context.Context, id string, recipe *models.Recipe) error {
	key := recipeKey(id)

	data, err := json.Marshal(recipe)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("redis command",
		"key", key,
		"exp", r.exp,
		"error", err,
	)

	return err
}

// Delete evicts the recipe with the given id.
func (r *RecipeCacheRepository) Delete(ctx context.Context, id string) error {
	key := recipeKey(id)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("redis command",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
