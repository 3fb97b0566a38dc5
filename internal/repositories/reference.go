package repositories

import (
	"context"
	"errors"

	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CuisineRepository looks up cuisines by name.
type CuisineRepository struct {
	coll *mongo.Collection
}

func NewCuisineRepository(db *mongo.Database) *CuisineRepository {
	return &CuisineRepository{coll: db.Collection(CuisinesCollection)}
}

// GetByName returns the cuisine whose name equals name ignoring case, or nil if none does.
func (r *CuisineRepository) GetByName(ctx context.Context, name string) (*models.Cuisine, error) {
	var cuisine models.Cuisine
	err := r.coll.FindOne(ctx, bson.M{"name": equalsIgnoreCase(name)}).Decode(&cuisine)

	logger.Log.Infow("mongo query",
		"query", "cuisines.findOne",
		"args", []any{name},
		"result", cuisine,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cuisine, nil
}

// TagRepository looks up tags by name.
type TagRepository struct {
	coll *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{coll: db.Collection(TagsCollection)}
}

// GetByNames returns the tags whose name is one of names. Unknown names are skipped.
func (r *TagRepository) GetByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))

	cursor, err := r.coll.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err == nil {
		err = cursor.All(ctx, &tags)
	}

	logger.Log.Infow("mongo query",
		"query", "tags.find",
		"args", names,
		"result", len(tags),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return tags, nil
}
