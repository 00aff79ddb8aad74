package handlers

import (
	"context"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/mlukic92/blogd/internal/auth"
	"github.com/mlukic92/blogd/internal/domain"
	"github.com/mlukic92/blogd/internal/repository"
	"github.com/mlukic92/blogd/internal/service"
	"github.com/mlukic92/blogd/internal/transport/http/middleware"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

// newTestServer wires the real mux, middleware and services over in-memory
// repositories, so tests exercise the same request path as production.
func newTestServer(ttl time.Duration) (*http.ServeMux, *memUserRepo) {
	log := testLogger()
	userRepo := newMemUserRepo()
	articleRepo := newMemArticleRepo()

	codec := auth.NewTokenCodec("handler-test-secret", ttl)
	authService := service.NewAuthService(userRepo, codec)
	articleService := service.NewArticleService(articleRepo)

	authHandler := NewAuthHandler(authService, log)
	articleHandler := NewArticleHandler(articleService, log)

	session := middleware.Session(authService, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/users/token", authHandler.Token)
	mux.Handle("GET /api/v1/users/me", session(http.HandlerFunc(authHandler.Me)))
	mux.HandleFunc("GET /api/v1/articles", articleHandler.List)
	mux.Handle("POST /api/v1/articles", session(http.HandlerFunc(articleHandler.Create)))
	mux.Handle("GET /api/v1/articles/{id}", session(http.HandlerFunc(articleHandler.Get)))
	mux.Handle("PUT /api/v1/articles/{id}", session(http.HandlerFunc(articleHandler.Update)))
	mux.Handle("DELETE /api/v1/articles/{id}", session(http.HandlerFunc(articleHandler.Delete)))

	return mux, userRepo
}

type memUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username && !u.Deleted {
			return repository.ErrDuplicateUsername
		}
	}
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.Deleted {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username && !u.Deleted {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type memArticleRepo struct {
	nextID   int64
	articles map[int64]*domain.Article
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: make(map[int64]*domain.Article)}
}

func (r *memArticleRepo) Create(ctx context.Context, article *domain.Article) error {
	r.nextID++
	article.ID = r.nextID
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *memArticleRepo) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok || a.Deleted {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *memArticleRepo) ListActive(ctx context.Context) ([]domain.Article, error) {
	var out []domain.Article
	for _, a := range r.articles {
		if !a.Deleted {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memArticleRepo) Update(ctx context.Context, article *domain.Article) error {
	if a, ok := r.articles[article.ID]; ok && !a.Deleted {
		clone := *article
		r.articles[article.ID] = &clone
	}
	return nil
}

func (r *memArticleRepo) SoftDelete(ctx context.Context, id int64) error {
	if a, ok := r.articles[id]; ok {
		a.Deleted = true
	}
	return nil
}
