package service

import (
	"context"
	"sort"

	"github.com/mlukic92/blogd/internal/domain"
	"github.com/mlukic92/blogd/internal/repository"
)

// In-memory repository fakes. They mirror the persistence contract the pgx
// implementations honor: lookups exclude soft-deleted rows, Create assigns
// ids, username uniqueness holds among non-deleted users only.

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

type memHeroRepo struct {
	nextID int64
	heroes map[int64]*domain.Hero
}

func newMemHeroRepo() *memHeroRepo {
	return &memHeroRepo{heroes: make(map[int64]*domain.Hero)}
}

func (r *memHeroRepo) Create(ctx context.Context, hero *domain.Hero) error {
	r.nextID++
	hero.ID = r.nextID
	clone := *hero
	r.heroes[hero.ID] = &clone
	return nil
}

func (r *memHeroRepo) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	h, ok := r.heroes[id]
	if !ok {
		return nil, nil
	}
	clone := *h
	return &clone, nil
}

func (r *memHeroRepo) GetByName(ctx context.Context, name string) (*domain.Hero, error) {
	for _, h := range r.heroes {
		if h.Name == name {
			clone := *h
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memHeroRepo) List(ctx context.Context, offset, limit int) ([]domain.Hero, int64, error) {
	var all []domain.Hero
	for _, h := range r.heroes {
		all = append(all, *h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *memHeroRepo) Update(ctx context.Context, hero *domain.Hero) error {
	clone := *hero
	r.heroes[hero.ID] = &clone
	return nil
}

func (r *memHeroRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.heroes[id]; !ok {
		return false, nil
	}
	delete(r.heroes, id)
	return true, nil
}
