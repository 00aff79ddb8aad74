package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mlukic92/blogd/internal/domain"
)

type HeroRepo struct {
	pool *pgxpool.Pool
}

func NewHeroRepo(pool *pgxpool.Pool) *HeroRepo {
	return &HeroRepo{pool: pool}
}

func (r *HeroRepo) Create(ctx context.Context, hero *domain.Hero) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO heroes (name, age, secret_name)
		VALUES ($1, $2, $3)
		RETURNING id`,
		hero.Name, hero.Age, hero.SecretName,
	).Scan(&hero.ID)
}

func (r *HeroRepo) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	return r.scanHero(ctx, "SELECT id, name, age, secret_name FROM heroes WHERE id = $1", id)
}

func (r *HeroRepo) GetByName(ctx context.Context, name string) (*domain.Hero, error) {
	return r.scanHero(ctx, "SELECT id, name, age, secret_name FROM heroes WHERE name = $1", name)
}

func (r *HeroRepo) List(ctx context.Context, offset, limit int) ([]domain.Hero, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM heroes").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		"SELECT id, name, age, secret_name FROM heroes ORDER BY id OFFSET $1 LIMIT $2", offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var heroes []domain.Hero
	for rows.Next() {
		var h domain.Hero
		if err := rows.Scan(&h.ID, &h.Name, &h.Age, &h.SecretName); err != nil {
			return nil, 0, err
		}
		heroes = append(heroes, h)
	}
	return heroes, total, rows.Err()
}

func (r *HeroRepo) Update(ctx context.Context, hero *domain.Hero) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE heroes
		SET name = $2, age = $3, secret_name = $4
		WHERE id = $1`,
		hero.ID, hero.Name, hero.Age, hero.SecretName,
	)
	return err
}

func (r *HeroRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM heroes WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *HeroRepo) scanHero(ctx context.Context, query string, arg any) (*domain.Hero, error) {
	var h domain.Hero
	err := r.pool.QueryRow(ctx, query, arg).Scan(&h.ID, &h.Name, &h.Age, &h.SecretName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}
