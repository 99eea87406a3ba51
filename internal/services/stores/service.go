package stores

import (
	"context"
	"errors"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("stores service is not initialized")

type Repo interface {
	List(ctx context.Context) ([]model.Store, error)
	Get(ctx context.Context, id string) (model.Store, error)
	Create(ctx context.Context, input model.StoreInput) (model.Store, error)
	Update(ctx context.Context, id string, update model.StoreUpdate) (model.Store, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo      Repo
	validator *validate.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validator: validate.New()}
}

func (s *Service) List(ctx context.Context) ([]model.Store, error) {
	if s.repo == nil {
		return []model.Store{}, nil
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (model.Store, error) {
	if s.repo == nil {
		return model.Store{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.Store{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input model.StoreInput) (model.Store, error) {
	if s.repo == nil {
		return model.Store{}, ErrNotInitialized
	}
	input.Name = strings.TrimSpace(input.Name)
	input.OwnerEmail = strings.TrimSpace(input.OwnerEmail)
	if err := s.validator.Struct(input); err != nil {
		return model.Store{}, err
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, update model.StoreUpdate) (model.Store, error) {
	if s.repo == nil {
		return model.Store{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.Store{}, err
	}
	if err := s.validator.Struct(update); err != nil {
		return model.Store{}, err
	}
	return s.repo.Update(ctx, id, update)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Search filters by store name, owner or city, case-insensitively.
func Search(stores []model.Store, query string) []model.Store {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return stores
	}

	out := make([]model.Store, 0, len(stores))
	for _, store := range stores {
		if strings.Contains(strings.ToLower(store.Name), query) ||
			strings.Contains(strings.ToLower(store.Owner.Name), query) ||
			strings.Contains(strings.ToLower(store.Owner.Email), query) ||
			strings.Contains(strings.ToLower(store.CityName()), query) {
			out = append(out, store)
		}
	}
	return out
}
