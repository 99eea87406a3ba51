package packages

import (
	"context"
	"errors"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("packages service is not initialized")

type Repo interface {
	List(ctx context.Context) ([]model.SubscriptionPackage, error)
	Get(ctx context.Context, id string) (model.SubscriptionPackage, error)
	Create(ctx context.Context, input model.PackageInput) (model.SubscriptionPackage, error)
	Update(ctx context.Context, id string, update model.PackageUpdate) (model.SubscriptionPackage, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo      Repo
	validator *validate.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validator: validate.New()}
}

func (s *Service) List(ctx context.Context) ([]model.SubscriptionPackage, error) {
	if s.repo == nil {
		return []model.SubscriptionPackage{}, nil
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (model.SubscriptionPackage, error) {
	if s.repo == nil {
		return model.SubscriptionPackage{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.SubscriptionPackage{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input model.PackageInput) (model.SubscriptionPackage, error) {
	if s.repo == nil {
		return model.SubscriptionPackage{}, ErrNotInitialized
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	input.Features = cleanFeatures(input.Features)
	if err := s.validator.Struct(input); err != nil {
		return model.SubscriptionPackage{}, err
	}
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, update model.PackageUpdate) (model.SubscriptionPackage, error) {
	if s.repo == nil {
		return model.SubscriptionPackage{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.SubscriptionPackage{}, err
	}
	if update.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*update.Currency))
		update.Currency = &currency
	}
	if update.Features != nil {
		features := cleanFeatures(*update.Features)
		update.Features = &features
	}
	if err := s.validator.Struct(update); err != nil {
		return model.SubscriptionPackage{}, err
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

func Active(items []model.SubscriptionPackage) []model.SubscriptionPackage {
	out := make([]model.SubscriptionPackage, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	return out
}

// ParseFeatures splits a comma or newline separated feature list from a form field.
func ParseFeatures(raw string) []string {
	return cleanFeatures(strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }))
}

func cleanFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, feature := range features {
		if trimmed := strings.TrimSpace(feature); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
