package users

import (
	"context"
	"errors"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("users service is not initialized")

type Repo interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, input model.UserInput) (model.User, error)
	Update(ctx context.Context, id string, update model.UserUpdate) (model.User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo      Repo
	validator *validate.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validator: validate.New()}
}

func (s *Service) List(ctx context.Context) ([]model.User, error) {
	if s.repo == nil {
		return []model.User{}, nil
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (model.User, error) {
	if s.repo == nil {
		return model.User{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input model.UserInput) (model.User, error) {
	if s.repo == nil {
		return model.User{}, ErrNotInitialized
	}
	input.Email = strings.TrimSpace(input.Email)
	input.Role = enums.Role(strings.ToUpper(strings.TrimSpace(string(input.Role))))
	if err := s.validator.Struct(input); err != nil {
		return model.User{}, err
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, update model.UserUpdate) (model.User, error) {
	if s.repo == nil {
		return model.User{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.User{}, err
	}
	if update.Role != nil {
		role := enums.Role(strings.ToUpper(strings.TrimSpace(string(*update.Role))))
		update.Role = &role
	}
	if err := s.validator.Struct(update); err != nil {
		return model.User{}, err
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

func FilterByRole(users []model.User, role enums.Role) []model.User {
	if role == "" {
		return users
	}
	out := make([]model.User, 0, len(users))
	for _, user := range users {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out
}
