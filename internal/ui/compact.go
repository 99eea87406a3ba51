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

// CompactRenderer is the mobile tree: one card per record, stacked.
type CompactRenderer struct{}

func (CompactRenderer) Mode() enums.ViewMode { return enums.ViewModeMobile }

func (CompactRenderer) Stores(items []model.Store) string {
	if len(items) == 0 {
		return "No stores yet"
	}
	cards := make([]string, 0, len(items))
	for _, store := range items {
		cards = append(cards, strings.Join([]string{
			store.Name,
			fmt.Sprintf("  %s · %s", orDash(store.BusinessType), orDash(store.CityName())),
			fmt.Sprintf("  owner: %s", orDash(store.Owner.Email)),
			fmt.Sprintf("  plan: %s (%s)", orDash(store.PackageName()), orDash(store.SubscriptionStatus)),
		}, "\n"))
	}
	return strings.Join(cards, "\n\n")
}

func (CompactRenderer) Users(items []model.User) string {
	if len(items) == 0 {
		return "No users yet"
	}
	cards := make([]string, 0, len(items))
	for _, user := range items {
		cards = append(cards, fmt.Sprintf("%s\n  %s · %s · %s", user.Email, user.Role, orDash(user.StoreName()), activeLabel(user.IsActive)))
	}
	return strings.Join(cards, "\n\n")
}

func (CompactRenderer) Packages(items []model.SubscriptionPackage) string {
	if len(items) == 0 {
		return "No packages yet"
	}
	cards := make([]string, 0, len(items))
	for _, pkg := range items {
		card := fmt.Sprintf("%s · %s\n  stores %d · products %d · users %d · %s",
			pkg.Name, money(pkg.Price, pkg.Currency), pkg.MaxStores, pkg.MaxProducts, pkg.MaxUsers, activeLabel(pkg.IsActive))
		if len(pkg.Features) > 0 {
			card += "\n  " + strings.Join(pkg.Features, ", ")
		}
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n\n")
}

func (CompactRenderer) Dashboard(summary analyticssvc.Summary) string {
	lines := []string{
		"Revenue Analytics",
		fmt.Sprintf("Stores: %d", summary.TotalStores),
		fmt.Sprintf("Active subscriptions: %d (%s)", summary.TotalActiveSubscriptions, percent(summary.ActiveShare)),
		fmt.Sprintf("Revenue: %s", money(summary.TotalRevenue, "")),
		fmt.Sprintf("Per store: %s", money(summary.AverageRevenuePerStore, "")),
	}
	if summary.BestMonth != nil {
		lines = append(lines, fmt.Sprintf("Best month: %s (%s)", summary.BestMonth.Month, money(summary.BestMonth.Revenue, "")))
	}
	for i, store := range summary.TopStores {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("#%d %s %s", i+1, store.Name, money(store.Revenue, "")))
	}
	return strings.Join(lines, "\n")
}

func (CompactRenderer) Overview(o model.Overview) string {
	return fmt.Sprintf("Stores %d (%d active, %d suspended)\nPackages %d (%d active)\nUsers %d (%d active)",
		o.TotalStores, o.ActiveStores, o.SuspendedStores, o.TotalPackages, o.ActivePackages, o.TotalUsers, o.ActiveUsers)
}

func (CompactRenderer) RecycleBin(groups []recyclebinsvc.Group) string {
	if len(groups) == 0 {
		return "Recycle bin is empty"
	}
	sections := make([]string, 0, len(groups))
	for _, group := range groups {
		lines := []string{fmt.Sprintf("%s (%d)", group.Type, len(group.Items))}
		for _, item := range group.Items {
			lines = append(lines, fmt.Sprintf("  %s · %s", orDash(item.Name), item.ID))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func (CompactRenderer) Constraints(report integritysvc.Report) string {
	lines := []string{fmt.Sprintf("OK %d · WARNING %d · ERROR %d", report.OK, report.Warning, report.Error)}
	for _, item := range report.Items {
		if item.Status == enums.ConstraintStatusOK {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s.%s: %s", item.Status, item.Table, item.Column, orDash(item.Details)))
	}
	return strings.Join(lines, "\n")
}

func (CompactRenderer) AuditLogs(items []model.AuditLog) string {
	if len(items) == 0 {
		return "No audit entries"
	}
	cards := make([]string, 0, len(items))
	for _, entry := range items {
		cards = append(cards, fmt.Sprintf("%s %s\n  %s/%s by %s", entry.CreatedAt, entry.Action, entry.EntityType, entry.EntityID, entry.Actor()))
	}
	return strings.Join(cards, "\n\n")
}

func (CompactRenderer) Products(items []model.Product) string {
	if len(items) == 0 {
		return "No products"
	}
	cards := make([]string, 0, len(items))
	for _, product := range items {
		card := fmt.Sprintf("%s · %s\n  stock %.2f %s", product.Name, money(product.BasePrice, ""), product.Stock, product.Unit)
		if product.LowStock() {
			card += " (low)"
		}
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n\n")
}

func (CompactRenderer) Orders(items []model.Order) string {
	if len(items) == 0 {
		return "No orders"
	}
	cards := make([]string, 0, len(items))
	for _, order := range items {
		cards = append(cards, fmt.Sprintf("%s · %s\n  %s · %s", order.OrderNumber, money(order.Total, ""), order.Status, order.PaymentStatus))
	}
	return strings.Join(cards, "\n\n")
}
