package ui

import (
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	authsvc "github.com/Taha-Raees/zetratech-front/internal/services/auth"
)

type NavItem struct {
	Title string
	Path  string
}

var superAdminNavigation = []NavItem{
	{Title: "Dashboard", Path: model.PathDashboard},
	{Title: "Stores", Path: model.PathStores},
	{Title: "Subscription Packages", Path: model.PathPackages},
	{Title: "Revenue Analytics", Path: model.PathAnalytics},
	{Title: "System Users", Path: model.PathUsers},
	{Title: "Recycle Bin", Path: model.PathRecycleBin},
	{Title: "Audit Log", Path: model.PathAudit},
	{Title: "Database Integrity", Path: model.PathConstraints},
}

func NavigationByRole(role enums.Role) []NavItem {
	switch role {
	case enums.RoleSuperAdmin:
		return append([]NavItem(nil), superAdminNavigation...)
	case enums.RoleNone:
		return []NavItem{}
	default:
		return []NavItem{{Title: "Stores", Path: model.PathStores}}
	}
}

// AllowedPath reports whether role may open path. Everyone below SUPERADMIN is
// confined to the stores section.
func AllowedPath(role enums.Role, path string) bool {
	path = strings.TrimRight(strings.TrimSpace(path), "/")
	switch role {
	case enums.RoleSuperAdmin:
		return true
	case enums.RoleNone:
		return false
	default:
		return path == model.PathStores || strings.HasPrefix(path, model.PathStores+"/")
	}
}

func LandingPath(role enums.Role) string {
	return authsvc.LandingPath(role)
}
