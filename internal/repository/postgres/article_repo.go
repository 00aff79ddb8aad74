package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlukic92/blogd/internal/domain"
)

const articleColumns = "id, title, content, author_id, deleted, created_at, updated_at"

type ArticleRepo struct {
	pool *pgxpool.Pool
}

func NewArticleRepo(pool *pgxpool.Pool) *ArticleRepo {
	return &ArticleRepo{pool: pool}
}

func (r *ArticleRepo) Create(ctx context.Context, article *domain.Article) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO articles (title, content, author_id, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		article.Title, article.Content, article.AuthorID,
		article.Deleted, article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
}

func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE id = $1 AND deleted = false", id,
	).Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.Deleted, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ArticleRepo) ListActive(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+articleColumns+" FROM articles WHERE deleted = false ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.Deleted, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Update never touches author_id; the owner reference is immutable after create.
func (r *ArticleRepo) Update(ctx context.Context, article *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, content = $3, updated_at = $4
		WHERE id = $1 AND deleted = false`,
		article.ID, article.Title, article.Content, article.UpdatedAt,
	)
	return err
}

func (r *ArticleRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE articles SET deleted = true WHERE id = $1", id)
	return err
}
