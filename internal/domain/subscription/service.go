package subscription

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
	"foodgram/internal/logging"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
)

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type RecipeReader interface {
	ListByAuthors(ctx context.Context, authorIDs []int64) ([]domain.Recipe, error)
	CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error)
}

type Service struct {
	repo    Repository
	users   UserReader
	recipes RecipeReader
}

func NewService(repo Repository, users UserReader, recipes RecipeReader) *Service {
	return &Service{repo: repo, users: users, recipes: recipes}
}

// Subscribe makes actor follow authorID. recipesLimit < 0 means no limit.
func (s *Service) Subscribe(ctx context.Context, actor reqctx.Actor, authorID int64, recipesLimit int) (AuthorResponse, error) {
	if actor.UserID == authorID {
		return AuthorResponse{}, ErrSelfSubscription
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return AuthorResponse{}, err
	}
	if err := s.repo.Add(ctx, actor.UserID, authorID); err != nil {
		return AuthorResponse{}, err
	}

	logging.Ctx(ctx).Info().Int64("user_id", actor.UserID).Int64("author_id", authorID).Msg("subscribed")

	items, err := s.withRecipes(ctx, []domain.User{*author}, recipesLimit)
	if err != nil {
		return AuthorResponse{}, err
	}
	return items[0], nil
}

func (s *Service) Unsubscribe(ctx context.Context, actor reqctx.Actor, authorID int64) error {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, actor.UserID, authorID)
}

// List returns the authors actor follows. recipesLimit < 0 means no limit.
func (s *Service) List(ctx context.Context, actor reqctx.Actor, p pagination.Params, recipesLimit int) (pagination.Page[AuthorResponse], error) {
	authors, total, err := s.repo.ListAuthors(ctx, actor.UserID, p)
	if err != nil {
		return pagination.Page[AuthorResponse]{}, err
	}

	items, err := s.withRecipes(ctx, authors, recipesLimit)
	if err != nil {
		return pagination.Page[AuthorResponse]{}, err
	}
	return pagination.NewPage(items, total, p), nil
}

// withRecipes annotates followed authors; is_subscribed is always true here.
func (s *Service) withRecipes(ctx context.Context, authors []domain.User, recipesLimit int) ([]AuthorResponse, error) {
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	recipes, err := s.recipes.ListByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	counts, err := s.recipes.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	byAuthor := make(map[int64][]recipe.ShortResponse, len(authors))
	for i := range recipes {
		r := &recipes[i]
		if recipesLimit >= 0 && len(byAuthor[r.AuthorID]) >= recipesLimit {
			continue
		}
		byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], recipe.ToShortResponse(r))
	}

	out := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		a := &authors[i]
		items := byAuthor[a.ID]
		if items == nil {
			items = []recipe.ShortResponse{}
		}
		out = append(out, AuthorResponse{
			UserResponse: user.ToUserResponse(a, true),
			Recipes:      items,
			RecipesCount: counts[a.ID],
		})
	}
	return out, nil
}
