package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

const usersPath = "/admin/users"

type UsersRepo struct {
	client *Client
}

func NewUsersRepo(client *Client) *UsersRepo {
	return &UsersRepo{client: client}
}

func (r *UsersRepo) List(ctx context.Context) ([]model.User, error) {
	return getData[[]model.User](ctx, r.client, http.MethodGet, usersPath, nil)
}

func (r *UsersRepo) Get(ctx context.Context, id string) (model.User, error) {
	return getData[model.User](ctx, r.client, http.MethodGet, usersPath+"/"+pathEscape(id), nil)
}

func (r *UsersRepo) Create(ctx context.Context, input model.UserInput) (model.User, error) {
	return getData[model.User](ctx, r.client, http.MethodPost, usersPath, input)
}

func (r *UsersRepo) Update(ctx context.Context, id string, update model.UserUpdate) (model.User, error) {
	return getData[model.User](ctx, r.client, http.MethodPut, usersPath+"/"+pathEscape(id), update)
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodDelete, usersPath+"/"+pathEscape(id), nil)
	return err
}
