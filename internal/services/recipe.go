package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/metrics"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=recipe.go -destination=mock_recipe.go -package=services

// RecipeReader defines recipe read operations.
type RecipeReader interface {
	Search(ctx context.Context, f models.RecipeFilter) ([]models.RecipeSummary, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error) // nil when absent
}

// RecipeWriter defines recipe write operations.
type RecipeWriter interface {
	Insert(ctx context.Context, recipe models.Recipe) (string, error)
	Replace(ctx context.Context, id string, recipe models.Recipe) (bool, error) // false when no recipe matched
	Delete(ctx context.Context, id string) (bool, error)                        // false when no recipe matched
}

// CuisineReader resolves cuisine names.
type CuisineReader interface {
	GetByName(ctx context.Context, name string) (*models.Cuisine, error) // nil when absent
}

// TagReader resolves tag names.
type TagReader interface {
	GetByNames(ctx context.Context, names []string) ([]models.Tag, error)
}

// RecipeCache caches full recipes by id.
type RecipeCache interface {
	Get(ctx context.Context, id string) (*models.Recipe, error) // nil when not cached
	Set(ctx context.Context, id string, recipe *models.Recipe) error
	Delete(ctx context.Context, id string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RecipeService handles recipe search and writes.
// cache and kafkaWriter are optional.
type RecipeService struct {
	reader      RecipeReader
	writer      RecipeWriter
	cuisines    CuisineReader
	tags        TagReader
	cache       RecipeCache
	kafkaWriter KafkaWriter
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(
	reader RecipeReader,
	writer RecipeWriter,
	cuisines CuisineReader,
	tags TagReader,
	cache RecipeCache,
	kafkaWriter KafkaWriter,
) *RecipeService {
	return &RecipeService{
		reader:      reader,
		writer:      writer,
		cuisines:    cuisines,
		tags:        tags,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Search returns summaries of the recipes matching every given criterion.
func (s *RecipeService) Search(ctx context.Context, f models.RecipeFilter) ([]models.RecipeSummary, error) {
	recipes, err := s.reader.Search(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to search recipes", "filter", f, "error", err)
		return nil, err
	}
	return recipes, nil
}

// GetByID returns the full recipe with the given id.
func (s *RecipeService) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	if s.cache != nil {
		recipe, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			metrics.RecordCacheLookup(metrics.CacheError)
			logger.Log.Errorw("failed to read recipe cache", "recipeID", id, "error", err)
		case recipe == nil:
			metrics.RecordCacheLookup(metrics.CacheMiss)
			logger.Log.Debugw("recipe cache miss", "recipeID", id)
		default:
			metrics.RecordCacheLookup(metrics.CacheHit)
			return recipe, nil
		}
	}

	recipe, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipeID", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, id, recipe); err != nil {
			logger.Log.Errorw("failed to cache recipe", "recipeID", id, "error", err)
		}
	}

	return recipe, nil
}

// Create resolves the cuisine and tags of the input, stores the recipe and returns its id.
func (s *RecipeService) Create(ctx context.Context, input models.RecipeInput) (string, error) {
	recipe, err := s.resolve(ctx, input)
	if err != nil {
		return "", err
	}

	id, err := s.writer.Insert(ctx, recipe)
	if err != nil {
		logger.Log.Errorw("failed to insert recipe", "name", recipe.Name, "error", err)
		return "", err
	}

	s.publishEvent(ctx, models.RecipeCreated, id)
	return id, nil
}

// Update resolves the cuisine and tags of the input and replaces every field of the recipe.
func (s *RecipeService) Update(ctx context.Context, id string, input models.RecipeInput) error {
	recipe, err := s.resolve(ctx, input)
	if err != nil {
		return err
	}

	matched, err := s.writer.Replace(ctx, id, recipe)
	if err != nil {
		logger.Log.Errorw("failed to replace recipe", "recipeID", id, "error", err)
		return err
	}
	if !matched {
		return ErrRecipeNotFound
	}

	s.evict(ctx, id)
	s.publishEvent(ctx, models.RecipeUpdated, id)
	return nil
}

// Delete removes the recipe with the given id.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipeID", id, "error", err)
		return err
	}
	if !deleted {
		return ErrRecipeNotFound
	}

	s.evict(ctx, id)
	s.publishEvent(ctx, models.RecipeDeleted, id)
	return nil
}

// resolve builds the stored recipe, snapshotting the referenced cuisine and tags.
// Nothing is written when a reference does not resolve.
func (s *RecipeService) resolve(ctx context.Context, input models.RecipeInput) (models.Recipe, error) {
	cuisine, err := s.cuisines.GetByName(ctx, input.Cuisine)
	if err != nil {
		logger.Log.Errorw("failed to resolve cuisine", "cuisine", input.Cuisine, "error", err)
		return models.Recipe{}, err
	}
	if cuisine == nil {
		return models.Recipe{}, fmt.Errorf("%w %q", ErrUnknownCuisine, input.Cuisine)
	}

	names := uniqueNames(input.Tags)
	if slices.Contains(names, "") {
		return models.Recipe{}, fmt.Errorf("%w %q", ErrUnknownTag, "")
	}
	found, err := s.tags.GetByNames(ctx, names)
	if err != nil {
		logger.Log.Errorw("failed to resolve tags", "tags", names, "error", err)
		return models.Recipe{}, err
	}

	byName := make(map[string]models.Tag, len(found))
	for _, tag := range found {
		byName[tag.Name] = tag
	}

	tags := make([]models.Tag, 0, len(names))
	var unknown []string
	for _, name := range names {
		tag, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		tags = append(tags, tag)
	}
	if len(unknown) > 0 {
		return models.Recipe{}, fmt.Errorf("%w %s", ErrUnknownTag, strings.Join(unknown, ", "))
	}

	return models.Recipe{
		Name:         input.Name,
		Cuisine:      *cuisine,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Tags:         tags,
	}, nil
}

// uniqueNames trims names and drops duplicates, keeping the first occurrence order.
// Blank names are kept as "" so callers can reject them.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (s *RecipeService) evict(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to evict recipe from cache", "recipeID", id, "error", err)
	}
}

// publishEvent publishes a recipe event to Kafka. Failures are logged and dropped.
func (s *RecipeService) publishEvent(ctx context.Context, eventType, recipeID string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "recipe_id", recipeID)
		metrics.RecordEvent(eventType, "skipped")
		return
	}

	event := models.RecipeEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		RecipeID:  recipeID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal recipe event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(recipeID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish recipe event", "event_id", event.EventID, "type", eventType, "error", err)
		metrics.RecordEvent(eventType, "failed")
		return
	}
	metrics.RecordEvent(eventType, "published")
	logger.Log.Infow("Recipe event published", "event_id", event.EventID, "type", eventType, "recipe_id", recipeID)
}
