package cart

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/logging"
	"foodgram/internal/metrics"
	"foodgram/internal/pkg/reqctx"
)

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

// ShoppingList returns the actor's aggregated cart in export order.
func (s *Service) ShoppingList(ctx context.Context, actor reqctx.Actor) ([]Line, error) {
	lines, err := s.repo.Aggregate(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	SortLines(lines)
	return lines, nil
}

// Export renders the actor's shopping list as a text document.
func (s *Service) Export(ctx context.Context, actor reqctx.Actor) ([]byte, error) {
	lines, err := s.ShoppingList(ctx, actor)
	if err != nil {
		return nil, err
	}

	metrics.RecordShoppingListExport(len(lines))
	logging.Ctx(ctx).Debug().Int64("user_id", actor.UserID).Int("lines", len(lines)).Msg("shopping list exported")
	return Render(lines), nil
}
