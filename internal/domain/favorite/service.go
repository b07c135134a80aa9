package favorite

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/pkg/reqctx"
)

// RecipeReader loads the recipe a toggle refers to.
type RecipeReader interface {
	GetShort(ctx context.Context, id int64) (*domain.Recipe, error)
}

type Service struct {
	repo    Repository
	recipes RecipeReader
}

func NewService(repo Repository, recipes RecipeReader) *Service {
	return &Service{repo: repo, recipes: recipes}
}

func (s *Service) Add(ctx context.Context, actor reqctx.Actor, recipeID int64) (recipe.ShortResponse, error) {
	r, err := s.recipes.GetShort(ctx, recipeID)
	if err != nil {
		return recipe.ShortResponse{}, err
	}
	if err := s.repo.Add(ctx, actor.UserID, recipeID); err != nil {
		return recipe.ShortResponse{}, err
	}
	return recipe.ToShortResponse(r), nil
}

func (s *Service) Remove(ctx context.Context, actor reqctx.Actor, recipeID int64) error {
	if _, err := s.recipes.GetShort(ctx, recipeID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, actor.UserID, recipeID)
}
