package overview

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type StoresRepo interface {
	List(ctx context.Context) ([]model.Store, error)
}

type PackagesRepo interface {
	List(ctx context.Context) ([]model.SubscriptionPackage, error)
}

type UsersRepo interface {
	List(ctx context.Context) ([]model.User, error)
}

type Service struct {
	stores   StoresRepo
	packages PackagesRepo
	users    UsersRepo
}

func NewService(stores StoresRepo, packages PackagesRepo, users UsersRepo) *Service {
	return &Service{stores: stores, packages: packages, users: users}
}

// Load fetches all lists at once. The first failure cancels the rest.
func (s *Service) Load(ctx context.Context) (model.Overview, error) {
	var (
		stores   []model.Store
		packages []model.SubscriptionPackage
		users    []model.User
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if s.stores != nil {
		group.Go(func() error {
			items, err := s.stores.List(groupCtx)
			if err != nil {
				return fmt.Errorf("load stores: %w", err)
			}
			stores = items
			return nil
		})
	}
	if s.packages != nil {
		group.Go(func() error {
			items, err := s.packages.List(groupCtx)
			if err != nil {
				return fmt.Errorf("load packages: %w", err)
			}
			packages = items
			return nil
		})
	}
	if s.users != nil {
		group.Go(func() error {
			items, err := s.users.List(groupCtx)
			if err != nil {
				return fmt.Errorf("load users: %w", err)
			}
			users = items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return model.Overview{}, err
	}

	out := model.Overview{
		TotalStores:   len(stores),
		TotalPackages: len(packages),
		TotalUsers:    len(users),
	}
	for _, store := range stores {
		switch enums.StoreStatus(store.SubscriptionStatus) {
		case enums.StoreStatusActive:
			out.ActiveStores++
		case enums.StoreStatusSuspended:
			out.SuspendedStores++
		}
	}
	for _, pkg := range packages {
		if pkg.IsActive {
			out.ActivePackages++
		}
	}
	for _, user := range users {
		if user.IsActive {
			out.ActiveUsers++
		}
	}
	return out, nil
}
