package recipe

import (
	"context"

	"foodgram/internal/domain"
	"foodgram/internal/logging"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/pkg/reqctx"
)

// SubscriptionReader reports which authors a user follows.
type SubscriptionReader interface {
	SubscribedTo(ctx context.Context, followerID int64, authorIDs []int64) (map[int64]bool, error)
}

type Service struct {
	repo Repository
	subs SubscriptionReader
}

func NewService(repo Repository, subs SubscriptionReader) *Service {
	return &Service{repo: repo, subs: subs}
}

func (s *Service) List(ctx context.Context, actor reqctx.Actor, req ListRequest) (pagination.Page[RecipeResponse], error) {
	if err := req.Validate(); err != nil {
		return pagination.Page[RecipeResponse]{}, err
	}

	scopes, ok := Filters(req, actor.UserID)
	if !ok {
		return pagination.NewPage[RecipeResponse](nil, 0, req.Page), nil
	}

	recipes, total, err := s.repo.List(ctx, scopes, req.Page)
	if err != nil {
		return pagination.Page[RecipeResponse]{}, err
	}

	items, err := s.annotate(ctx, actor, recipes)
	if err != nil {
		return pagination.Page[RecipeResponse]{}, err
	}
	return pagination.NewPage(items, total, req.Page), nil
}

func (s *Service) Get(ctx context.Context, actor reqctx.Actor, id int64) (RecipeResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return RecipeResponse{}, err
	}
	return s.one(ctx, actor, r)
}

func (s *Service) Create(ctx context.Context, actor reqctx.Actor, req CreateRequest) (RecipeResponse, error) {
	if err := req.Validate(); err != nil {
		return RecipeResponse{}, err
	}

	r := &domain.Recipe{
		AuthorID:    actor.UserID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Create(ctx, r, req.Ingredients, req.Tags); err != nil {
		return RecipeResponse{}, err
	}

	logging.Ctx(ctx).Info().Int64("recipe_id", r.ID).Int64("author_id", actor.UserID).Msg("recipe created")
	return s.Get(ctx, actor, r.ID)
}

func (s *Service) Update(ctx context.Context, actor reqctx.Actor, id int64, req UpdateRequest) (RecipeResponse, error) {
	r, err := s.owned(ctx, actor, id)
	if err != nil {
		return RecipeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return RecipeResponse{}, err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Text != nil {
		r.Text = *req.Text
	}
	if req.Image != nil {
		r.Image = *req.Image
	}
	if req.CookingTime != nil {
		r.CookingTime = *req.CookingTime
	}

	if err := s.repo.Update(ctx, r, req.Ingredients, req.Tags); err != nil {
		return RecipeResponse{}, err
	}
	return s.Get(ctx, actor, id)
}

func (s *Service) Delete(ctx context.Context, actor reqctx.Actor, id int64) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Int64("recipe_id", id).Msg("recipe deleted")
	return nil
}

func (s *Service) owned(ctx context.Context, actor reqctx.Actor, id int64) (*domain.Recipe, error) {
	r, err := s.repo.GetShort(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.AuthorID != actor.UserID {
		return nil, ErrNotAuthor
	}
	return r, nil
}

func (s *Service) one(ctx context.Context, actor reqctx.Actor, r *domain.Recipe) (RecipeResponse, error) {
	items, err := s.annotate(ctx, actor, []domain.Recipe{*r})
	if err != nil {
		return RecipeResponse{}, err
	}
	return items[0], nil
}

func (s *Service) annotate(ctx context.Context, actor reqctx.Actor, recipes []domain.Recipe) ([]RecipeResponse, error) {
	ids := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, inCart, err := s.repo.Flags(ctx, actor.UserID, ids)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.subs.SubscribedTo(ctx, actor.UserID, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		out = append(out, toRecipeResponse(r, flags{
			favorited:    favorited[r.ID],
			inCart:       inCart[r.ID],
			isSubscribed: subscribed[r.AuthorID],
		}))
	}
	return out, nil
}
