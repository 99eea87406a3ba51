// Package wiring binds the per-resource repos of one gateway client to the services
// the consoles use.
package wiring

import (
	"github.com/Taha-Raees/zetratech-front/internal/repo/adminhttp"
	analyticssvc "github.com/Taha-Raees/zetratech-front/internal/services/analytics"
	auditsvc "github.com/Taha-Raees/zetratech-front/internal/services/audit"
	authsvc "github.com/Taha-Raees/zetratech-front/internal/services/auth"
	catalogsvc "github.com/Taha-Raees/zetratech-front/internal/services/catalog"
	integritysvc "github.com/Taha-Raees/zetratech-front/internal/services/integrity"
	overviewsvc "github.com/Taha-Raees/zetratech-front/internal/services/overview"
	packagessvc "github.com/Taha-Raees/zetratech-front/internal/services/packages"
	recyclebinsvc "github.com/Taha-Raees/zetratech-front/internal/services/recyclebin"
	storessvc "github.com/Taha-Raees/zetratech-front/internal/services/stores"
	subscriptionssvc "github.com/Taha-Raees/zetratech-front/internal/services/subscriptions"
	userssvc "github.com/Taha-Raees/zetratech-front/internal/services/users"
)

type Dependencies struct {
	Client    *adminhttp.Client
	Sessions  authsvc.SessionStore
	Navigator authsvc.Navigator
	Exports   auditsvc.ArchiveSink
}

type Services struct {
	Auth          *authsvc.Service
	Stores        *storessvc.Service
	Subscriptions *subscriptionssvc.Service
	Users         *userssvc.Service
	Packages      *packagessvc.Service
	Analytics     *analyticssvc.Service
	Integrity     *integritysvc.Service
	RecycleBin    *recyclebinsvc.Service
	Audit         *auditsvc.Service
	Catalog       *catalogsvc.Service
	Overview      *overviewsvc.Service
}

func NewServices(deps Dependencies) *Services {
	client := deps.Client
	storesRepo := adminhttp.NewStoresRepo(client)
	packagesRepo := adminhttp.NewPackagesRepo(client)
	usersRepo := adminhttp.NewUsersRepo(client)

	return &Services{
		Auth:          authsvc.NewService(adminhttp.NewAuthRepo(client), deps.Sessions, deps.Navigator),
		Stores:        storessvc.NewService(storesRepo),
		Subscriptions: subscriptionssvc.NewService(adminhttp.NewSubscriptionsRepo(client)),
		Users:         userssvc.NewService(usersRepo),
		Packages:      packagessvc.NewService(packagesRepo),
		Analytics:     analyticssvc.NewService(adminhttp.NewAnalyticsRepo(client)),
		Integrity:     integritysvc.NewService(adminhttp.NewConstraintsRepo(client)),
		RecycleBin:    recyclebinsvc.NewService(adminhttp.NewRecycleBinRepo(client)),
		Audit:         auditsvc.NewService(adminhttp.NewAuditRepo(client), deps.Exports),
		Catalog:       catalogsvc.NewService(adminhttp.NewCatalogRepo(client)),
		Overview:      overviewsvc.NewService(storesRepo, packagesRepo, usersRepo),
	}
}
