package ui

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	analyticssvc "github.com/Taha-Raees/zetratech-front/internal/services/analytics"
	integritysvc "github.com/Taha-Raees/zetratech-front/internal/services/integrity"
	recyclebinsvc "github.com/Taha-Raees/zetratech-front/internal/services/recyclebin"
)

// TableRenderer is the desktop tree: aligned columns with a header row.
type TableRenderer struct{}

func (TableRenderer) Mode() enums.ViewMode { return enums.ViewModeDesktop }

func table(header []string, rows [][]string) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

func (TableRenderer) Stores(items []model.Store) string {
	rows := make([][]string, 0, len(items))
	for _, store := range items {
		rows = append(rows, []string{
			store.ID, store.Name, orDash(store.BusinessType), orDash(store.CityName()),
			orDash(store.Owner.Email), orDash(store.PackageName()), orDash(store.SubscriptionStatus),
		})
	}
	return table([]string{"ID", "NAME", "TYPE", "CITY", "OWNER", "PACKAGE", "STATUS"}, rows)
}

func (TableRenderer) Users(items []model.User) string {
	rows := make([][]string, 0, len(items))
	for _, user := range items {
		rows = append(rows, []string{user.ID, user.Email, string(user.Role), orDash(user.StoreName()), activeLabel(user.IsActive), orDash(user.LastLogin)})
	}
	return table([]string{"ID", "EMAIL", "ROLE", "STORE", "STATUS", "LAST LOGIN"}, rows)
}

func (TableRenderer) Packages(items []model.SubscriptionPackage) string {
	rows := make([][]string, 0, len(items))
	for _, pkg := range items {
		rows = append(rows, []string{
			pkg.ID, pkg.Name, money(pkg.Price, pkg.Currency),
			fmt.Sprint(pkg.MaxStores), fmt.Sprint(pkg.MaxProducts), fmt.Sprint(pkg.MaxUsers),
			activeLabel(pkg.IsActive), strings.Join(pkg.Features, ", "),
		})
	}
	return table([]string{"ID", "NAME", "PRICE", "STORES", "PRODUCTS", "USERS", "STATUS", "FEATURES"}, rows)
}

func (TableRenderer) Dashboard(summary analyticssvc.Summary) string {
	head := table([]string{"STORES", "ACTIVE SUBS", "ACTIVE SHARE", "REVENUE", "PER STORE"}, [][]string{{
		fmt.Sprint(summary.TotalStores),
		fmt.Sprint(summary.TotalActiveSubscriptions),
		percent(summary.ActiveShare),
		money(summary.TotalRevenue, ""),
		money(summary.AverageRevenuePerStore, ""),
	}})

	monthly := make([][]string, 0, len(summary.MonthlyRevenue))
	for _, month := range summary.MonthlyRevenue {
		monthly = append(monthly, []string{month.Month, money(month.Revenue, ""), fmt.Sprint(month.NewStores), fmt.Sprint(month.Renewals)})
	}
	distribution := make([][]string, 0, len(summary.SubscriptionDistribution))
	for _, share := range summary.SubscriptionDistribution {
		distribution = append(distribution, []string{share.Package, fmt.Sprint(share.Count), money(share.Revenue, "")})
	}
	top := make([][]string, 0, len(summary.TopStores))
	for _, store := range summary.TopStores {
		top = append(top, []string{store.Name, money(store.Revenue, ""), fmt.Sprint(store.Locations), store.Package})
	}

	return strings.Join([]string{
		head,
		table([]string{"MONTH", "REVENUE", "NEW STORES", "RENEWALS"}, monthly),
		table([]string{"PACKAGE", "STORES", "REVENUE"}, distribution),
		table([]string{"TOP STORE", "REVENUE", "LOCATIONS", "PACKAGE"}, top),
	}, "\n\n")
}

func (TableRenderer) Overview(o model.Overview) string {
	return table([]string{"", "TOTAL", "ACTIVE", "SUSPENDED"}, [][]string{
		{"Stores", fmt.Sprint(o.TotalStores), fmt.Sprint(o.ActiveStores), fmt.Sprint(o.SuspendedStores)},
		{"Packages", fmt.Sprint(o.TotalPackages), fmt.Sprint(o.ActivePackages), "-"},
		{"Users", fmt.Sprint(o.TotalUsers), fmt.Sprint(o.ActiveUsers), "-"},
	})
}

func (TableRenderer) RecycleBin(groups []recyclebinsvc.Group) string {
	rows := make([][]string, 0)
	for _, group := range groups {
		for _, item := range group.Items {
			rows = append(rows, []string{group.Type, item.ID, orDash(item.Name), orDash(item.DeletedAt), orDash(item.DeletedBy)})
		}
	}
	return table([]string{"TYPE", "ID", "NAME", "DELETED AT", "DELETED BY"}, rows)
}

func (TableRenderer) Constraints(report integritysvc.Report) string {
	rows := make([][]string, 0, len(report.Items))
	for _, item := range report.Items {
		rows = append(rows, []string{item.Table, item.Column, item.ConstraintType, string(item.Status), orDash(item.Details)})
	}
	summary := fmt.Sprintf("OK %d  WARNING %d  ERROR %d", report.OK, report.Warning, report.Error)
	return summary + "\n\n" + table([]string{"TABLE", "COLUMN", "TYPE", "STATUS", "DETAILS"}, rows)
}

func (TableRenderer) AuditLogs(items []model.AuditLog) string {
	rows := make([][]string, 0, len(items))
	for _, entry := range items {
		rows = append(rows, []string{entry.CreatedAt, entry.Action, entry.EntityType, entry.EntityID, entry.Actor(), orDash(entry.IPAddress)})
	}
	return table([]string{"TIME", "ACTION", "ENTITY", "ENTITY ID", "ACTOR", "IP"}, rows)
}

func (TableRenderer) Products(items []model.Product) string {
	rows := make([][]string, 0, len(items))
	for _, product := range items {
		stock := fmt.Sprintf("%.2f %s", product.Stock, product.Unit)
		if product.LowStock() {
			stock += " (low)"
		}
		rows = append(rows, []string{product.ID, product.Name, orDash(product.Category), money(product.BasePrice, ""), stock, activeLabel(product.IsActive)})
	}
	return table([]string{"ID", "NAME", "CATEGORY", "PRICE", "STOCK", "STATUS"}, rows)
}

func (TableRenderer) Orders(items []model.Order) string {
	rows := make([][]string, 0, len(items))
	for _, order := range items {
		rows = append(rows, []string{order.OrderNumber, order.CreatedAt, fmt.Sprint(len(order.Items)), money(order.Total, ""), order.Status, order.PaymentStatus})
	}
	return table([]string{"ORDER", "CREATED", "ITEMS", "TOTAL", "STATUS", "PAYMENT"}, rows)
}
