package tag

import (
	"context"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/validator"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateTagRequest) (*domain.Tag, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Color = strings.ToUpper(strings.TrimSpace(req.Color))
	req.Slug = strings.TrimSpace(req.Slug)
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	t := &domain.Tag{Name: req.Name, Color: req.Color, Slug: req.Slug}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTagRequest) (*domain.Tag, error) {
	req.normalize()
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Color != nil {
		t.Color = *req.Color
	}
	if req.Slug != nil {
		t.Slug = *req.Slug
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
