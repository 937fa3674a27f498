package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/hardcore/accounting/internal/logger"
	"github.com/hardcore/accounting/internal/middlewares"
	"github.com/hardcore/accounting/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateUsername is returned by Save when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

const uniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user row with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserInfoDB, error) {
	const query = `
		SELECT id, username, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

// GetByUsername returns the user row with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserInfoDB, error) {
	const query = `
		SELECT id, username, password, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserInfoDB, error) {
	var user models.UserInfoDB
	err := sqlx.GetContext(ctx, queryer(ctx, r.db), &user, query, arg)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
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

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the generated id.
func (r *UserWriteRepository) Save(ctx context.Context, username, password string) (int64, error) {
	const query = `
		INSERT INTO users (username, password, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, queryer(ctx, r.db), &id, query, username, password)

	// password is a hash but still stays out of the logs
	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", id,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return 0, ErrDuplicateUsername
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// queryer prefers the request transaction opened by TxMiddleware.
func queryer(ctx context.Context, db *sqlx.DB) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
