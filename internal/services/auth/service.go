package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("auth service is not initialized")

type Repo interface {
	Login(ctx context.Context, email, password string) (model.SessionUser, error)
	Logout(ctx context.Context) error
	Verify(ctx context.Context) (model.AdminUser, error)
	Refresh(ctx context.Context) error
}

// SessionStore holds the decoded user projection of the current console session.
type SessionStore interface {
	SaveUser(ctx context.Context, user model.SessionUser) error
	ClearUser(ctx context.Context) error
}

type Navigator interface {
	Redirect(ctx context.Context, path string)
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	User    model.SessionUser
	Landing string
	// Forced is set when the console was sent to Landing instead of choosing itself.
	Forced bool
}

type Service struct {
	repo      Repo
	sessions  SessionStore
	navigator Navigator
	validator *validate.Validator
}

func NewService(repo Repo, sessions SessionStore, navigator Navigator) *Service {
	return &Service{
		repo:      repo,
		sessions:  sessions,
		navigator: navigator,
		validator: validate.New(),
	}
}

func (s *Service) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	if s.repo == nil {
		return LoginResult{}, ErrNotInitialized
	}
	if err := s.validator.Struct(creds); err != nil {
		return LoginResult{}, err
	}

	user, err := s.repo.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return LoginResult{}, err
	}
	user.Role = enums.ParseRole(string(user.Role))

	if s.sessions != nil {
		if err := s.sessions.SaveUser(ctx, user); err != nil {
			return LoginResult{}, fmt.Errorf("save session user: %w", err)
		}
	}

	result := LoginResult{User: user, Landing: LandingPath(user.Role)}
	// Store admins are hard-navigated to their only section.
	if user.Role == enums.RoleAdmin {
		result.Forced = true
		if s.navigator != nil {
			s.navigator.Redirect(ctx, result.Landing)
		}
	}
	return result, nil
}

// Logout always clears the local session; the API error, if any, is still reported.
func (s *Service) Logout(ctx context.Context) error {
	var apiErr error
	if s.repo != nil {
		apiErr = s.repo.Logout(ctx)
	}
	if s.sessions != nil {
		if err := s.sessions.ClearUser(ctx); err != nil {
			return errors.Join(apiErr, fmt.Errorf("clear session user: %w", err))
		}
	}
	return apiErr
}

// CurrentUser asks the API who is signed in. A failed check signs the console out.
func (s *Service) CurrentUser(ctx context.Context) (model.AdminUser, error) {
	if s.repo == nil {
		return model.AdminUser{}, ErrNotInitialized
	}

	user, err := s.repo.Verify(ctx)
	if err != nil {
		if s.sessions != nil {
			_ = s.sessions.ClearUser(ctx)
		}
		return model.AdminUser{}, err
	}
	user.Role = enums.ParseRole(string(user.Role))

	if s.sessions != nil {
		projection := model.SessionUser{ID: user.ID, Email: user.Email, Role: user.Role}
		if err := s.sessions.SaveUser(ctx, projection); err != nil {
			return model.AdminUser{}, fmt.Errorf("save session user: %w", err)
		}
	}
	return user, nil
}

func (s *Service) RefreshAuth(ctx context.Context) (model.AdminUser, error) {
	if s.repo == nil {
		return model.AdminUser{}, ErrNotInitialized
	}
	if err := s.repo.Refresh(ctx); err != nil {
		if s.sessions != nil {
			_ = s.sessions.ClearUser(ctx)
		}
		return model.AdminUser{}, err
	}
	return s.CurrentUser(ctx)
}

// LandingPath is where a role starts after signing in.
func LandingPath(role enums.Role) string {
	if role == enums.RoleAdmin {
		return model.PathStores
	}
	return model.PathDashboard
}
