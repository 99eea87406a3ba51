package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type ConstraintsRepo struct {
	client *Client
}

func NewConstraintsRepo(client *Client) *ConstraintsRepo {
	return &ConstraintsRepo{client: client}
}

func (r *ConstraintsRepo) List(ctx context.Context) ([]model.DatabaseConstraint, error) {
	return getData[[]model.DatabaseConstraint](ctx, r.client, http.MethodGet, "/admin/constraints", nil)
}

type RecycleBinRepo struct {
	client *Client
}

func NewRecycleBinRepo(client *Client) *RecycleBinRepo {
	return &RecycleBinRepo{client: client}
}

func (r *RecycleBinRepo) List(ctx context.Context) ([]model.RecycleBinItem, error) {
	return getData[[]model.RecycleBinItem](ctx, r.client, http.MethodGet, "/admin/recycle-bin", nil)
}

func (r *RecycleBinRepo) Restore(ctx context.Context, ref model.RecycleBinRef) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodPost, "/admin/recycle-bin/restore", ref)
	return err
}

func (r *RecycleBinRepo) PermanentDelete(ctx context.Context, ref model.RecycleBinRef) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodPost, "/admin/recycle-bin/permanent-delete", ref)
	return err
}
