package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongoReadRepository struct {
	coll *mongo.Collection
}

func NewUserMongoReadRepository(db *mongo.Database) *UserMongoReadRepository {
	return &UserMongoReadRepository{coll: db.Collection(UsersCollection)}
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserMongoReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.UserDB
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	logger.Log.Infow("mongo query",
		"query", "users.findOne",
		"args", []any{email},
		"result", user.ID.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user.ToUser(), nil
}

type UserMongoWriteRepository struct {
	coll *mongo.Collection
}

func NewUserMongoWriteRepository(db *mongo.Database) *UserMongoWriteRepository {
	return &UserMongoWriteRepository{coll: db.Collection(UsersCollection)}
}

// Save inserts a user and returns its hex id.
func (r *UserMongoWriteRepository) Save(ctx context.Context, email, passwordHash string) (string, error) {
	res, err := r.coll.InsertOne(ctx, models.UserDB{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	})

	var id string
	if res != nil {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			id = oid.Hex()
		}
	}

	// The hash is left out of the log on purpose.
	logger.Log.Infow("mongo query",
		"query", "users.insertOne",
		"args", []any{email},
		"result", id,
		"error", err,
	)

	return id, err
}
