package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecipeReadRepository handles recipe read operations
type RecipeReadRepository struct {
	coll *mongo.Collection
}

func NewRecipeReadRepository(db *mongo.Database) *RecipeReadRepository {
	return &RecipeReadRepository{coll: db.Collection(RecipesCollection)}
}

// Search returns the summary projection of every recipe matching the filter.
func (r *RecipeReadRepository) Search(ctx context.Context, f models.RecipeFilter) ([]models.RecipeSummary, error) {
	filter := BuildRecipeSearchFilter(f)
	recipes := make([]models.RecipeSummary, 0)

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(recipeSummaryProjection))
	if err == nil {
		err = cursor.All(ctx, &recipes)
	}

	logger.Log.Infow("mongo query",
		"query", "recipes.find",
		"args", filter,
		"result", len(recipes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByID returns the recipe with the given hex id, or nil if there is none.
func (r *RecipeReadRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, nil
	}

	var recipe models.Recipe
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&recipe)

	logger.Log.Infow("mongo query",
		"query", "recipes.findOne",
		"args", []any{id},
		"result", recipe.Name,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// RecipeWriteRepository handles recipe write operations
type RecipeWriteRepository struct {
	coll *mongo.Collection
}

func NewRecipeWriteRepository(db *mongo.Database) *RecipeWriteRepository {
	return &RecipeWriteRepository{coll: db.Collection(RecipesCollection)}
}

// Insert stores a new recipe and returns its hex id.
func (r *RecipeWriteRepository) Insert(ctx context.Context, recipe models.Recipe) (string, error) {
	recipe.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, recipe)

	var id string
	if res != nil {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			id = oid.Hex()
		}
	}

	logger.Log.Infow("mongo query",
		"query", "recipes.insertOne",
		"args", []any{recipe.Name, recipe.Cuisine.Name},
		"result", id,
		"error", err,
	)

	return id, err
}

// Replace overwrites every field of the recipe with the given hex id.
// It reports whether a recipe matched.
func (r *RecipeWriteRepository) Replace(ctx context.Context, id string, recipe models.Recipe) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}
	recipe.ID = primitive.NilObjectID

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, recipe)

	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow("mongo query",
		"query", "recipes.replaceOne",
		"args", []any{id, recipe.Name},
		"result", matched,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return matched > 0, nil
}

// Delete removes the recipe with the given hex id.
// It reports whether a recipe was removed.
func (r *RecipeWriteRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})

	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow("mongo query",
		"query", "recipes.deleteOne",
		"args", []any{id},
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
