package repository

import (
	"context"
	"errors"

	"github.com/mlukic92/blogd/internal/domain"
)

// ErrDuplicateUsername is returned by UserRepository.Create when the username
// is already held by a non-deleted user.
var ErrDuplicateUsername = errors.New("username already in use")

// UserRepository lookups exclude soft-deleted rows; a deleted user is
// invisible to authentication and session resolution.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	ListActive(ctx context.Context) ([]domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	SoftDelete(ctx context.Context, id int64) error
}

type HeroRepository interface {
	Create(ctx context.Context, hero *domain.Hero) error
	GetByID(ctx context.Context, id int64) (*domain.Hero, error)
	GetByName(ctx context.Context, name string) (*domain.Hero, error)
	List(ctx context.Context, offset, limit int) ([]domain.Hero, int64, error)
	Update(ctx context.Context, hero *domain.Hero) error
	Delete(ctx context.Context, id int64) (bool, error)
}
