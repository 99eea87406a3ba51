package adminhttp

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type CatalogRepo struct {
	client *Client
}

func NewCatalogRepo(client *Client) *CatalogRepo {
	return &CatalogRepo{client: client}
}

func (r *CatalogRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	return getData[[]model.Product](ctx, r.client, http.MethodGet, "/products", nil)
}

func (r *CatalogRepo) GetProduct(ctx context.Context, id string) (model.Product, error) {
	return getData[model.Product](ctx, r.client, http.MethodGet, "/products/"+pathEscape(id), nil)
}

func (r *CatalogRepo) CreateProduct(ctx context.Context, input model.ProductInput) (model.Product, error) {
	return getData[model.Product](ctx, r.client, http.MethodPost, "/products", input)
}

func (r *CatalogRepo) UpdateProduct(ctx context.Context, id string, update model.ProductUpdate) (model.Product, error) {
	return getData[model.Product](ctx, r.client, http.MethodPut, "/products/"+pathEscape(id), update)
}

func (r *CatalogRepo) DeleteProduct(ctx context.Context, id string) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodDelete, "/products/"+pathEscape(id), nil)
	return err
}

func (r *CatalogRepo) ListOrders(ctx context.Context, storeID string) ([]model.Order, error) {
	query := url.Values{}
	query.Set("storeId", storeID)
	return getData[[]model.Order](ctx, r.client, http.MethodGet, withQuery("/orders", query), nil)
}

func (r *CatalogRepo) GetOrder(ctx context.Context, id string) (model.Order, error) {
	return getData[model.Order](ctx, r.client, http.MethodGet, "/orders/"+pathEscape(id), nil)
}

func (r *CatalogRepo) CreateOrder(ctx context.Context, input model.OrderInput) (model.Order, error) {
	return getData[model.Order](ctx, r.client, http.MethodPost, "/orders", input)
}
