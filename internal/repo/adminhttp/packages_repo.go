package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

const packagesPath = "/admin/subscription-packages"

type PackagesRepo struct {
	client *Client
}

func NewPackagesRepo(client *Client) *PackagesRepo {
	return &PackagesRepo{client: client}
}

func (r *PackagesRepo) List(ctx context.Context) ([]model.SubscriptionPackage, error) {
	return getData[[]model.SubscriptionPackage](ctx, r.client, http.MethodGet, packagesPath, nil)
}

func (r *PackagesRepo) Get(ctx context.Context, id string) (model.SubscriptionPackage, error) {
	return getData[model.SubscriptionPackage](ctx, r.client, http.MethodGet, packagesPath+"/"+pathEscape(id), nil)
}

func (r *PackagesRepo) Create(ctx context.Context, input model.PackageInput) (model.SubscriptionPackage, error) {
	return getData[model.SubscriptionPackage](ctx, r.client, http.MethodPost, packagesPath, input)
}

func (r *PackagesRepo) Update(ctx context.Context, id string, update model.PackageUpdate) (model.SubscriptionPackage, error) {
	return getData[model.SubscriptionPackage](ctx, r.client, http.MethodPut, packagesPath+"/"+pathEscape(id), update)
}

func (r *PackagesRepo) Delete(ctx context.Context, id string) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodDelete, packagesPath+"/"+pathEscape(id), nil)
	return err
}
