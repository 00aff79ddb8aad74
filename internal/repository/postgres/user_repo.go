package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlukic92/blogd/internal/domain"
	"github.com/mlukic92/blogd/internal/repository"
)

const userColumns = "id, username, email, nickname, password_hash, status, deleted, created_at, updated_at"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts the user and checks username uniqueness among non-deleted
// rows inside the same transaction. A plain unique index would be wrong here:
// it would block re-registering a username freed by a soft delete.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existing int64
	err = tx.QueryRow(ctx,
		"SELECT id FROM users WHERE username = $1 AND deleted = false FOR UPDATE", user.Username,
	).Scan(&existing)
	if err == nil {
		return repository.ErrDuplicateUsername
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, email, nickname, password_hash, status, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Username, user.Email, user.Nickname, user.PasswordHash,
		user.Status, user.Deleted, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 AND deleted = false", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1 AND deleted = false", username)
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $2, nickname = $3, password_hash = $4, status = $5, deleted = $6, updated_at = $7
		WHERE id = $1`,
		user.ID, user.Email, user.Nickname, user.PasswordHash,
		user.Status, user.Deleted, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.Nickname, &u.PasswordHash,
		&u.Status, &u.Deleted, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
