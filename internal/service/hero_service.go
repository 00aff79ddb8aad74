package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlukic92/blogd/internal/domain"
	"github.com/mlukic92/blogd/internal/repository"
)

var (
	ErrHeroNotFound  = errors.New("hero not found")
	ErrHeroNameTaken = errors.New("hero with this name already exists")
)

type HeroService struct {
	heroRepo repository.HeroRepository
}

func NewHeroService(heroRepo repository.HeroRepository) *HeroService {
	return &HeroService{heroRepo: heroRepo}
}

type HeroInput struct {
	Name       string `json:"name"`
	Age        *int   `json:"age"`
	SecretName string `json:"secret_name"`
}

type PageParams struct {
	Page     int
	PageSize int
}

type PageMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

type HeroPage struct {
	Items []domain.Hero `json:"items"`
	Meta  PageMeta      `json:"meta"`
}

func (s *HeroService) List(ctx context.Context, params PageParams) (*HeroPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 10
	}

	offset := (params.Page - 1) * params.PageSize
	heroes, total, err := s.heroRepo.List(ctx, offset, params.PageSize)
	if err != nil {
		return nil, err
	}

	if heroes == nil {
		heroes = []domain.Hero{}
	}

	return &HeroPage{
		Items: heroes,
		Meta: PageMeta{
			Page:     params.Page,
			PageSize: params.PageSize,
			Total:    total,
		},
	}, nil
}

func (s *HeroService) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}
	return hero, nil
}

func (s *HeroService) Create(ctx context.Context, input HeroInput) (*domain.Hero, error) {
	existing, err := s.heroRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrHeroNameTaken
	}

	hero := &domain.Hero{
		Name:       input.Name,
		Age:        input.Age,
		SecretName: input.SecretName,
	}

	if err := s.heroRepo.Create(ctx, hero); err != nil {
		return nil, fmt.Errorf("creating hero: %w", err)
	}

	return hero, nil
}

func (s *HeroService) Update(ctx context.Context, id int64, input HeroInput) (*domain.Hero, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}

	if input.Name != "" && input.Name != hero.Name {
		existing, err := s.heroRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrHeroNameTaken
		}
		hero.Name = input.Name
	}
	if input.Age != nil {
		hero.Age = input.Age
	}
	if input.SecretName != "" {
		hero.SecretName = input.SecretName
	}

	if err := s.heroRepo.Update(ctx, hero); err != nil {
		return nil, fmt.Errorf("updating hero: %w", err)
	}

	return hero, nil
}

func (s *HeroService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.heroRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHeroNotFound
	}
	return nil
}
