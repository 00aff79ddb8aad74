package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukic92/blogd/internal/auth"
	"github.com/mlukic92/blogd/internal/domain"
	"github.com/mlukic92/blogd/internal/repository"
)

var ErrArticleNotFound = errors.New("article not found")

const summaryRunes = 20

type ArticleService struct {
	articleRepo repository.ArticleRepository
}

func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

type CreateArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ArticleSummary is the list-view DTO: no full content, just a short teaser.
// Mapped field-by-field from the entity, never the entity itself.
type ArticleSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	AuthorID  *int64    `json:"author_id,omitempty"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ArticleService) Create(ctx context.Context, user *domain.User, input CreateArticleInput) (*domain.Article, error) {
	now := time.Now()
	authorID := user.ID
	article := &domain.Article{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  &authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("creating article: %w", err)
	}

	return article, nil
}

func (s *ArticleService) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// List is the public listing; it needs no session.
func (s *ArticleService) List(ctx context.Context) ([]ArticleSummary, error) {
	articles, err := s.articleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, ArticleSummary{
			ID:        a.ID,
			Title:     a.Title,
			AuthorID:  a.AuthorID,
			Summary:   summarize(a.Content),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	return summaries, nil
}

// Update edits title/content and bumps the update time. Only the recorded
// author passes the ownership guard.
func (s *ArticleService) Update(ctx context.Context, user *domain.User, id int64, input UpdateArticleInput) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if err := auth.RequireOwner(article.AuthorID, user.ID); err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Content = input.Content
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("updating article: %w", err)
	}

	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, user *domain.User, id int64) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if err := auth.RequireOwner(article.AuthorID, user.ID); err != nil {
		return err
	}

	return s.articleRepo.SoftDelete(ctx, id)
}

func summarize(content string) string {
	runes := []rune(content)
	if len(runes) <= summaryRunes {
		return content
	}
	return string(runes[:summaryRunes]) + "..."
}
