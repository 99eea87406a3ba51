package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("catalog service is not initialized")

type Repo interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, input model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListOrders(ctx context.Context, storeID string) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, error)
	CreateOrder(ctx context.Context, input model.OrderInput) (model.Order, error)
}

type Service struct {
	repo      Repo
	validator *validate.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validator: validate.New()}
}

func (s *Service) Products(ctx context.Context) ([]model.Product, error) {
	if s.repo == nil {
		return []model.Product{}, nil
	}
	return s.repo.ListProducts(ctx)
}

func (s *Service) Product(ctx context.Context, id string) (model.Product, error) {
	if s.repo == nil {
		return model.Product{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.Product{}, err
	}
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, input model.ProductInput) (model.Product, error) {
	if s.repo == nil {
		return model.Product{}, ErrNotInitialized
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Struct(input); err != nil {
		return model.Product{}, err
	}
	return s.repo.CreateProduct(ctx, input)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (model.Product, error) {
	if s.repo == nil {
		return model.Product{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.Product{}, err
	}
	if err := s.validator.Struct(update); err != nil {
		return model.Product{}, err
	}
	return s.repo.UpdateProduct(ctx, id, update)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) Orders(ctx context.Context, storeID string) ([]model.Order, error) {
	if s.repo == nil {
		return []model.Order{}, nil
	}
	return s.repo.ListOrders(ctx, strings.TrimSpace(storeID))
}

func (s *Service) Order(ctx context.Context, id string) (model.Order, error) {
	if s.repo == nil {
		return model.Order{}, ErrNotInitialized
	}
	id, err := s.validator.ID("id", id)
	if err != nil {
		return model.Order{}, err
	}
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) CreateOrder(ctx context.Context, input model.OrderInput) (model.Order, error) {
	if s.repo == nil {
		return model.Order{}, ErrNotInitialized
	}
	if err := s.validator.Struct(input); err != nil {
		return model.Order{}, err
	}
	return s.repo.CreateOrder(ctx, input)
}

func LowStock(products []model.Product) []model.Product {
	out := make([]model.Product, 0)
	for _, product := range products {
		if product.IsActive && product.LowStock() {
			out = append(out, product)
		}
	}
	return out
}
