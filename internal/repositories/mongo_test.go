package repositories

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/sbilibin2017/recipe-book/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Setup MongoDB ---
func setupMongo(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port.Port())))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(ctx) })
	require.NoError(t, client.Ping(ctx, nil))

	return client.Database("recipe_book_test")
}

type seed struct {
	chinese, italian models.Cuisine
	quick, spicy     models.Tag
}

func seedReferences(t *testing.T, db *mongo.Database) seed {
	t.Helper()
	ctx := context.Background()

	s := seed{
		chinese: models.Cuisine{ID: primitive.NewObjectID(), Name: "Chinese"},
		italian: models.Cuisine{ID: primitive.NewObjectID(), Name: "Italian"},
		quick:   models.Tag{ID: primitive.NewObjectID(), Name: "Quick"},
		spicy:   models.Tag{ID: primitive.NewObjectID(), Name: "Spicy"},
	}

	_, err := db.Collection(CuisinesCollection).InsertMany(ctx, []any{s.chinese, s.italian})
	require.NoError(t, err)
	_, err = db.Collection(TagsCollection).InsertMany(ctx, []any{s.quick, s.spicy})
	require.NoError(t, err)

	return s
}

func names(summaries []models.RecipeSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.Name)
	}
	sort.Strings(out)
	return out
}

func TestRecipeRepositories_Mongo(t *testing.T) {
	db := setupMongo(t)
	s := seedReferences(t, db)
	ctx := context.Background()

	reader := NewRecipeReadRepository(db)
	writer := NewRecipeWriteRepository(db)

	kungPao := models.Recipe{
		Name:         "Kung Pao Chicken",
		Cuisine:      s.chinese,
		PrepTime:     15,
		CookTime:     10,
		Servings:     2,
		Ingredients:  []models.Ingredient{{Name: "Chicken breast"}, {Name: "Peanuts"}, {Name: "Dried chili"}},
		Instructions: []string{"Dice chicken", "Stir fry"},
		Tags:         []models.Tag{s.quick, s.spicy},
	}
	friedRice := models.Recipe{
		Name:         "Chicken Fried Rice",
		Cuisine:      s.chinese,
		Ingredients:  []models.Ingredient{{Name: "chicken thigh"}, {Name: "Rice"}},
		Instructions: []string{"Fry"},
		Tags:         []models.Tag{s.quick},
	}
	risotto := models.Recipe{
		Name:         "Mushroom Risotto",
		Cuisine:      s.italian,
		Ingredients:  []models.Ingredient{{Name: "Arborio rice"}, {Name: "Mushroom"}},
		Instructions: []string{"Stir"},
		Tags:         []models.Tag{},
	}

	kungPaoID, err := writer.Insert(ctx, kungPao)
	require.NoError(t, err)
	require.NotEmpty(t, kungPaoID)
	_, err = writer.Insert(ctx, friedRice)
	require.NoError(t, err)
	risottoID, err := writer.Insert(ctx, risotto)
	require.NoError(t, err)

	t.Run("SearchAll", func(t *testing.T) {
		got, err := reader.Search(ctx, models.RecipeFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chicken Fried Rice", "Kung Pao Chicken", "Mushroom Risotto"}, names(got))
	})

	t.Run("SearchTagsIntersect", func(t *testing.T) {
		got, err := reader.Search(ctx, models.RecipeFilter{Tags: []string{"Spicy", "Vegan"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Kung Pao Chicken"}, names(got))
	})

	t.Run("SearchIngredientsConjunction", func(t *testing.T) {
		got, err := reader.Search(ctx, models.RecipeFilter{Ingredients: []string{"CHICKEN", "rice"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chicken Fried Rice"}, names(got))
	})

	t.Run("SearchCuisineAndName", func(t *testing.T) {
		got, err := reader.Search(ctx, models.RecipeFilter{Cuisine: "ital", Name: "risot"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Mushroom Risotto"}, names(got))
	})

	t.Run("SearchProjection", func(t *testing.T) {
		got, err := reader.Search(ctx, models.RecipeFilter{Name: "Kung Pao"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.RecipeSummary{
			Name:    "Kung Pao Chicken",
			Cuisine: models.NameRef{Name: "Chinese"},
			Tags:    []models.NameRef{{Name: "Quick"}, {Name: "Spicy"}},
		}, got[0])
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := reader.GetByID(ctx, kungPaoID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, kungPao.Name, got.Name)
		assert.Equal(t, kungPao.Cuisine, got.Cuisine)
		assert.Equal(t, kungPao.Ingredients, got.Ingredients)
		assert.Equal(t, kungPao.Instructions, got.Instructions)
		assert.Equal(t, kungPao.Tags, got.Tags)
	})

	t.Run("GetByIDMissing", func(t *testing.T) {
		got, err := reader.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.NoError(t, err)
		assert.Nil(t, got)

		got, err = reader.GetByID(ctx, "malformed")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Replace", func(t *testing.T) {
		updated := risotto
		updated.Name = "Porcini Risotto"
		updated.Servings = 6

		matched, err := writer.Replace(ctx, risottoID, updated)
		require.NoError(t, err)
		assert.True(t, matched)

		got, err := reader.GetByID(ctx, risottoID)
		require.NoError(t, err)
		assert.Equal(t, "Porcini Risotto", got.Name)
		assert.Equal(t, 6, got.Servings)

		matched, err = writer.Replace(ctx, primitive.NewObjectID().Hex(), updated)
		assert.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, risottoID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = writer.Delete(ctx, risottoID)
		assert.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = writer.Delete(ctx, "malformed")
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestReferenceRepositories_Mongo(t *testing.T) {
	db := setupMongo(t)
	s := seedReferences(t, db)
	ctx := context.Background()

	cuisines := NewCuisineRepository(db)
	tags := NewTagRepository(db)

	t.Run("CuisineByNameIgnoresCase", func(t *testing.T) {
		got, err := cuisines.GetByName(ctx, "chinese")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, s.chinese, *got)
	})

	t.Run("CuisineByNameIsExact", func(t *testing.T) {
		got, err := cuisines.GetByName(ctx, "Chin")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("TagsByNames", func(t *testing.T) {
		got, err := tags.GetByNames(ctx, []string{"Quick", "Spicy", "Unknown"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.Tag{s.quick, s.spicy}, got)
	})
}

func TestUserMongoRepositories(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	writer := NewUserMongoWriteRepository(db)
	reader := NewUserMongoReadRepository(db)

	id, err := writer.Save(ctx, "alice@example.com", "$2a$10$hash")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	user, err := reader.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)

	user, err = reader.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
