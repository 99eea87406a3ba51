package subscriptions

import (
	"context"
	"errors"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var (
	ErrNotInitialized = errors.New("subscriptions service is not initialized")
	ErrInvalidStatus  = errors.New("store status must be active or suspended")
)

type Repo interface {
	Assign(ctx context.Context, assignment model.SubscriptionAssignment) (model.Store, error)
	UpdateStatus(ctx context.Context, storeID string, status enums.StoreStatus) (model.Store, error)
	ActivePackages(ctx context.Context) ([]model.SubscriptionPackage, error)
}

type Service struct {
	repo      Repo
	validator *validate.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validator: validate.New()}
}

func (s *Service) Assign(ctx context.Context, storeID, packageID string) (model.Store, error) {
	if s.repo == nil {
		return model.Store{}, ErrNotInitialized
	}
	assignment := model.SubscriptionAssignment{
		StoreID:               storeID,
		SubscriptionPackageID: strings.TrimSpace(packageID),
	}
	if err := s.validator.Struct(assignment); err != nil {
		return model.Store{}, err
	}
	return s.repo.Assign(ctx, assignment)
}

func (s *Service) SetStatus(ctx context.Context, storeID string, status enums.StoreStatus) (model.Store, error) {
	if s.repo == nil {
		return model.Store{}, ErrNotInitialized
	}
	storeID, err := s.validator.ID("storeId", storeID)
	if err != nil {
		return model.Store{}, err
	}
	status = enums.StoreStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return model.Store{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, storeID, status)
}

func (s *Service) ActivePackages(ctx context.Context) ([]model.SubscriptionPackage, error) {
	if s.repo == nil {
		return []model.SubscriptionPackage{}, nil
	}
	return s.repo.ActivePackages(ctx)
}
