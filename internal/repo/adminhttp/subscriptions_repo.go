package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type SubscriptionsRepo struct {
	client *Client
}

func NewSubscriptionsRepo(client *Client) *SubscriptionsRepo {
	return &SubscriptionsRepo{client: client}
}

func (r *SubscriptionsRepo) Assign(ctx context.Context, assignment model.SubscriptionAssignment) (model.Store, error) {
	return getData[model.Store](ctx, r.client, http.MethodPost, "/admin/store-subscription/assign", assignment)
}

func (r *SubscriptionsRepo) UpdateStatus(ctx context.Context, storeID string, status enums.StoreStatus) (model.Store, error) {
	request := struct {
		Status enums.StoreStatus `json:"status"`
	}{Status: status}
	return getData[model.Store](ctx, r.client, http.MethodPut, "/admin/store-subscription/"+pathEscape(storeID)+"/status", request)
}

func (r *SubscriptionsRepo) ActivePackages(ctx context.Context) ([]model.SubscriptionPackage, error) {
	return getData[[]model.SubscriptionPackage](ctx, r.client, http.MethodGet, "/admin/store-subscription/packages", nil)
}
