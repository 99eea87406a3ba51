package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type AnalyticsRepo struct {
	client *Client
}

func NewAnalyticsRepo(client *Client) *AnalyticsRepo {
	return &AnalyticsRepo{client: client}
}

func (r *AnalyticsRepo) Dashboard(ctx context.Context) (model.Dashboard, error) {
	return getData[model.Dashboard](ctx, r.client, http.MethodGet, "/admin/analytics/dashboard", nil)
}
