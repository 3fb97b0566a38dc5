package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/recipe-book/internal/metrics"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recipeMocks struct {
	reader   *MockRecipeReader
	writer   *MockRecipeWriter
	cuisines *MockCuisineReader
	tags     *MockTagReader
	cache    *MockRecipeCache
	kafka    *MockKafkaWriter
}

func newRecipeMocks(t *testing.T) (*gomock.Controller, recipeMocks) {
	ctrl := gomock.NewController(t)
	return ctrl, recipeMocks{
		reader:   NewMockRecipeReader(ctrl),
		writer:   NewMockRecipeWriter(ctrl),
		cuisines: NewMockCuisineReader(ctrl),
		tags:     NewMockTagReader(ctrl),
		cache:    NewMockRecipeCache(ctrl),
		kafka:    NewMockKafkaWriter(ctrl),
	}
}

var (
	chinese = models.Cuisine{ID: primitive.NewObjectID(), Name: "Chinese"}
	quick   = models.Tag{ID: primitive.NewObjectID(), Name: "Quick"}
	spicy   = models.Tag{ID: primitive.NewObjectID(), Name: "Spicy"}
)

func kungPaoInput() models.RecipeInput {
	return models.RecipeInput{
		Name:         "Kung Pao Chicken",
		Cuisine:      "chinese",
		PrepTime:     15,
		CookTime:     10,
		Servings:     2,
		Ingredients:  []models.Ingredient{{Name: "Chicken"}, {Name: "Peanuts"}},
		Instructions: []string{"Dice", "Stir fry"},
		Tags:         []string{"Spicy", "Quick", "Spicy"},
	}
}

func kungPaoRecipe() models.Recipe {
	in := kungPaoInput()
	return models.Recipe{
		Name:         in.Name,
		Cuisine:      chinese,
		PrepTime:     in.PrepTime,
		CookTime:     in.CookTime,
		Servings:     in.Servings,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Tags:         []models.Tag{spicy, quick},
	}
}

func decodeEvent(t *testing.T, msg kafka.Message) models.RecipeEvent {
	t.Helper()
	var event models.RecipeEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	return event
}

func TestRecipeService_Search(t *testing.T) {
	ctx := context.Background()
	ctrl, m := newRecipeMocks(t)
	defer ctrl.Finish()

	filter := models.RecipeFilter{Tags: []string{"Quick"}, Ingredients: []string{"chicken", "rice"}}
	want := []models.RecipeSummary{{Name: "Chicken Rice", Cuisine: models.NameRef{Name: "Chinese"}}}

	m.reader.EXPECT().Search(ctx, filter).Return(want, nil)
	m.reader.EXPECT().Search(ctx, models.RecipeFilter{}).Return(nil, errors.New("find failed"))

	svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, nil)

	got, err := svc.Search(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.Search(ctx, models.RecipeFilter{})
	assert.EqualError(t, err, "find failed")
}

func TestRecipeService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()
	recipe := kungPaoRecipe()

	t.Run("without cache", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.reader.EXPECT().GetByID(ctx, id).Return(&recipe, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, nil)
		got, err := svc.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, &recipe, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.reader.EXPECT().GetByID(ctx, id).Return(nil, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, nil)
		got, err := svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
		assert.Nil(t, got)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.reader.EXPECT().GetByID(ctx, id).Return(nil, errors.New("find failed"))

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, nil)
		_, err := svc.GetByID(ctx, id)
		assert.EqualError(t, err, "find failed")
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cache.EXPECT().Get(ctx, id).Return(&recipe, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, nil)
		got, err := svc.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, &recipe, got)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		gomock.InOrder(
			m.cache.EXPECT().Get(ctx, id).Return(nil, nil),
			m.reader.EXPECT().GetByID(ctx, id).Return(&recipe, nil),
			m.cache.EXPECT().Set(ctx, id, &recipe).Return(errors.New("redis down")),
		)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, nil)
		got, err := svc.GetByID(ctx, id)
		assert.NoError(t, err, "cache failures must not fail the request")
		assert.Equal(t, &recipe, got)
	})

	t.Run("cache error falls back to the store", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		failures := testutil.ToFloat64(metrics.CacheLookups.WithLabelValues(metrics.CacheError))
		misses := testutil.ToFloat64(metrics.CacheLookups.WithLabelValues(metrics.CacheMiss))

		gomock.InOrder(
			m.cache.EXPECT().Get(ctx, id).Return(nil, errors.New("connection refused")),
			m.reader.EXPECT().GetByID(ctx, id).Return(&recipe, nil),
			m.cache.EXPECT().Set(ctx, id, &recipe).Return(nil),
		)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, nil)
		got, err := svc.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, &recipe, got)
		assert.Equal(t, failures+1, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues(metrics.CacheError)))
		assert.Equal(t, misses, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues(metrics.CacheMiss)))
	})
}

func TestRecipeService_Create(t *testing.T) {
	ctx := context.Background()
	newID := primitive.NewObjectID().Hex()

	t.Run("success snapshots references and publishes", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, []string{"Spicy", "Quick"}).Return([]models.Tag{quick, spicy}, nil)
		m.writer.EXPECT().Insert(ctx, kungPaoRecipe()).Return(newID, nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, newID, string(msgs[0].Key))
			event := decodeEvent(t, msgs[0])
			assert.Equal(t, models.RecipeCreated, event.Type)
			assert.Equal(t, newID, event.RecipeID)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, m.kafka)
		id, err := svc.Create(ctx, kungPaoInput())
		assert.NoError(t, err)
		assert.Equal(t, newID, id)
	})

	t.Run("unknown cuisine performs no insert", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(nil, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, m.kafka)
		_, err := svc.Create(ctx, kungPaoInput())
		assert.ErrorIs(t, err, ErrUnknownCuisine)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown tag performs no insert", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, []string{"Spicy", "Quick"}).Return([]models.Tag{quick}, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, m.kafka)
		_, err := svc.Create(ctx, kungPaoInput())
		assert.ErrorIs(t, err, ErrUnknownTag)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "Spicy")
	})

	t.Run("blank tag performs no insert", func(t *testing.T) {
		for _, tags := range [][]string{{"   "}, {"Quick", " "}} {
			ctrl, m := newRecipeMocks(t)

			m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)

			in := kungPaoInput()
			in.Tags = tags
			svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, m.kafka)
			id, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, ErrUnknownTag, "tags %q", tags)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, id)
			ctrl.Finish()
		}
	})

	t.Run("resolver error", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(nil, errors.New("find failed"))

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, nil)
		_, err := svc.Create(ctx, kungPaoInput())
		assert.EqualError(t, err, "find failed")
	})

	t.Run("insert error is not published", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, gomock.Any()).Return([]models.Tag{quick, spicy}, nil)
		m.writer.EXPECT().Insert(ctx, gomock.Any()).Return("", errors.New("insert failed"))

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, m.kafka)
		_, err := svc.Create(ctx, kungPaoInput())
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, gomock.Any()).Return([]models.Tag{quick, spicy}, nil)
		m.writer.EXPECT().Insert(ctx, gomock.Any()).Return(newID, nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, m.kafka)
		id, err := svc.Create(ctx, kungPaoInput())
		assert.NoError(t, err)
		assert.Equal(t, newID, id)
	})
}

func TestRecipeService_Update(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	t.Run("success replaces, evicts and publishes", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, []string{"Spicy", "Quick"}).Return([]models.Tag{spicy, quick}, nil)
		m.writer.EXPECT().Replace(ctx, id, kungPaoRecipe()).Return(true, nil)
		m.cache.EXPECT().Delete(ctx, id).Return(nil)
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Equal(t, models.RecipeUpdated, decodeEvent(t, msgs[0]).Type)
			return nil
		})

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		assert.NoError(t, svc.Update(ctx, id, kungPaoInput()))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, gomock.Any()).Return([]models.Tag{spicy, quick}, nil)
		m.writer.EXPECT().Replace(ctx, id, gomock.Any()).Return(false, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		assert.ErrorIs(t, svc.Update(ctx, id, kungPaoInput()), ErrRecipeNotFound)
	})

	t.Run("unknown cuisine", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(nil, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		assert.ErrorIs(t, svc.Update(ctx, id, kungPaoInput()), ErrUnknownCuisine)
	})

	t.Run("blank tag performs no replace", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)

		in := kungPaoInput()
		in.Tags = []string{"Spicy", "\t"}
		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		err := svc.Update(ctx, id, in)
		assert.ErrorIs(t, err, ErrUnknownTag)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("replace error", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.cuisines.EXPECT().GetByName(ctx, "chinese").Return(&chinese, nil)
		m.tags.EXPECT().GetByNames(ctx, gomock.Any()).Return([]models.Tag{spicy, quick}, nil)
		m.writer.EXPECT().Replace(ctx, id, gomock.Any()).Return(false, errors.New("replace failed"))

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		assert.EqualError(t, svc.Update(ctx, id, kungPaoInput()), "replace failed")
	})
}

func TestRecipeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	t.Run("success evicts and publishes", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.writer.EXPECT().Delete(ctx, id).Return(true, nil)
		m.cache.EXPECT().Delete(ctx, id).Return(errors.New("redis down"))
		m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Equal(t, models.RecipeDeleted, decodeEvent(t, msgs[0]).Type)
			return nil
		})

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		assert.NoError(t, svc.Delete(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.writer.EXPECT().Delete(ctx, id).Return(false, nil)

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, m.cache, m.kafka)
		assert.ErrorIs(t, svc.Delete(ctx, id), ErrRecipeNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl, m := newRecipeMocks(t)
		defer ctrl.Finish()

		m.writer.EXPECT().Delete(ctx, id).Return(false, errors.New("delete failed"))

		svc := NewRecipeService(m.reader, m.writer, m.cuisines, m.tags, nil, nil)
		assert.EqualError(t, svc.Delete(ctx, id), "delete failed")
	})
}

func TestUniqueNames(t *testing.T) {
	assert.Equal(t, []string{"Quick", "Spicy", "", "quick"}, uniqueNames([]string{" Quick", "Spicy", "", "Quick", "  ", "quick"}))
	assert.Empty(t, uniqueNames(nil))
}
