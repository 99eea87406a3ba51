package adminhttp

import (
	"context"
	"net/http"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type AuthRepo struct {
	client *Client
}

func NewAuthRepo(client *Client) *AuthRepo {
	return &AuthRepo{client: client}
}

type loginPayload struct {
	User    model.SessionUser `json:"user"`
	Message string            `json:"message"`
}

func (r *AuthRepo) Login(ctx context.Context, email, password string) (model.SessionUser, error) {
	request := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	payload, err := getData[loginPayload](ctx, r.client, http.MethodPost, "/auth/admin-login", request)
	if err != nil {
		return model.SessionUser{}, err
	}
	return payload.User, nil
}

func (r *AuthRepo) Logout(ctx context.Context) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodPost, "/auth/admin-login/logout", nil)
	return err
}

func (r *AuthRepo) Verify(ctx context.Context) (model.AdminUser, error) {
	payload, err := getData[struct {
		User model.AdminUser `json:"user"`
	}](ctx, r.client, http.MethodGet, "/auth/admin-login/verify", nil)
	if err != nil {
		return model.AdminUser{}, err
	}
	return payload.User, nil
}

// Refresh is the explicit refresh call. It goes through the gateway like any other
// request, so a 401 here still starts the regular recovery cycle.
func (r *AuthRepo) Refresh(ctx context.Context) error {
	_, err := getData[struct{}](ctx, r.client, http.MethodPost, defaultRefreshPath, nil)
	return err
}
