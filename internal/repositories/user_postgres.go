package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-book/internal/logger"
	"github.com/sbilibin2017/recipe-book/internal/models"
)

// UsersSchema creates the users table used by the postgres user store.
const UsersSchema = `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
`

type UserPostgresReadRepository struct {
	db *sqlx.DB
}

func NewUserPostgresReadRepository(db *sqlx.DB) *UserPostgresReadRepository {
	return &UserPostgresReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserPostgresReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT user_id, email, password_hash, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserPostgresWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewUserPostgresWriteRepository creates the writer. When txGetter returns a
// transaction for the request context, writes run inside it.
func NewUserPostgresWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserPostgresWriteRepository {
	return &UserPostgresWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns the generated user_id.
func (r *UserPostgresWriteRepository) Save(ctx context.Context, email, passwordHash string) (string, error) {
	const query = `
		INSERT INTO users (email, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING user_id
	`

	var executor sqlx.QueryerContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id string
	err := sqlx.GetContext(ctx, executor, &id, query, email, passwordHash)

	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", id,
		"error", err,
	)

	return id, err
}
