package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

const storesPath = "/admin/create-store"

type StoresRepo struct {
	client *Client
}

func NewStoresRepo(client *Client) *StoresRepo {
	return &StoresRepo{client: client}
}

func (r *StoresRepo) List(ctx context.Context) ([]model.Store, error) {
	return getData[[]model.Store](ctx, r.client, http.MethodGet, storesPath, nil)
}

func (r *StoresRepo) Get(ctx context.Context, id string) (model.Store, error) {
	return getData[model.Store](ctx, r.client, http.MethodGet, storesPath+"/"+pathEscape(id), nil)
}

// Create returns the created store as the backend reports it; the payload also
// carries the owner account, so the shape is not guaranteed to be a full Store.
func (r *StoresRepo) Create(ctx context.Context, input model.StoreInput) (model.Store, error) {
	return getData[model.Store](ctx, r.client, http.MethodPost, storesPath, input)
}

func (r *StoresRepo) Update(ctx context.Context, id string, update model.StoreUpdate) (model.Store, error) {
	return getData[model.Store](ctx, r.client, http.MethodPut, storesPath+"/"+pathEscape(id), update)
}

func (r *StoresRepo) Delete(ctx context.Context, id string) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodDelete, storesPath+"/"+pathEscape(id), nil)
	return err
}
