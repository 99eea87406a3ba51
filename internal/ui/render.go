package ui

import (
	"fmt"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	analyticssvc "github.com/Taha-Raees/zetratech-front/internal/services/analytics"
	integritysvc "github.com/Taha-Raees/zetratech-front/internal/services/integrity"
	recyclebinsvc "github.com/Taha-Raees/zetratech-front/internal/services/recyclebin"
)

// Renderer is one page tree. Both trees take the same inputs; only the layout differs.
type Renderer interface {
	Mode() enums.ViewMode
	Stores(items []model.Store) string
	Users(items []model.User) string
	Packages(items []model.SubscriptionPackage) string
	Dashboard(summary analyticssvc.Summary) string
	Overview(overview model.Overview) string
	RecycleBin(groups []recyclebinsvc.Group) string
	Constraints(report integritysvc.Report) string
	AuditLogs(items []model.AuditLog) string
	Products(items []model.Product) string
	Orders(items []model.Order) string
}

func ForMode(mode enums.ViewMode) Renderer {
	if mode == enums.ViewModeMobile {
		return CompactRenderer{}
	}
	return TableRenderer{}
}

func RenderNavigation(role enums.Role, current string) string {
	items := NavigationByRole(role)
	if len(items) == 0 {
		return "No sections available"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		marker := " "
		if item.Path == current {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s)", marker, item.Title, item.Path))
	}
	return strings.Join(lines, "\n")
}

func money(amount float64, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func percent(share float64) string {
	return fmt.Sprintf("%.0f%%", share*100)
}
