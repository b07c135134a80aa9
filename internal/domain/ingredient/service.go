package ingredient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/validator"
)

// Service handles ingredient business logic
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	return s.repo.List(ctx, namePrefix)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateIngredientRequest) (*domain.Ingredient, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.MeasurementUnit = strings.TrimSpace(req.MeasurementUnit)
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	i := &domain.Ingredient{Name: req.Name, MeasurementUnit: req.MeasurementUnit}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateIngredientRequest) (*domain.Ingredient, error) {
	req.normalize()
	if err := validator.Check(&req); err != nil {
		return nil, err
	}

	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		i.Name = *req.Name
	}
	if req.MeasurementUnit != nil {
		i.MeasurementUnit = *req.MeasurementUnit
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Import reads a JSON array of {name, measurement_unit} objects and stores
// the pairs that are missing. Blank entries are skipped.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	var items []ImportItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return 0, fmt.Errorf("decode ingredients: %w", err)
	}

	rows := make([]domain.Ingredient, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		unit := strings.TrimSpace(item.MeasurementUnit)
		if name == "" || unit == "" {
			continue
		}
		rows = append(rows, domain.Ingredient{Name: name, MeasurementUnit: unit})
	}

	return s.repo.CreateMissing(ctx, rows)
}
