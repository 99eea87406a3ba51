package cliapp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	catalogsvc "github.com/Taha-Raees/zetratech-front/internal/services/catalog"
)

func (a *App) overview(ctx context.Context, _ []string) error {
	overview, err := a.services.Overview.Load(ctx)
	if err != nil {
		return err
	}
	a.println(a.renderer().Overview(overview))
	return nil
}

func (a *App) dashboard(ctx context.Context, _ []string) error {
	summary, err := a.services.Analytics.Dashboard(ctx)
	if err != nil {
		return err
	}
	a.println(a.renderer().Dashboard(summary))
	return nil
}

func (a *App) constraints(ctx context.Context, _ []string) error {
	report, err := a.services.Integrity.Constraints(ctx)
	if err != nil {
		return err
	}
	a.println(a.renderer().Constraints(report))
	return nil
}

func (a *App) recycleBin(ctx context.Context, args []string) error {
	sub, args, err := subcommand("recycle-bin", args)
	if err != nil {
		return err
	}
	svc := a.services.RecycleBin

	switch sub {
	case "list":
		groups, err := svc.List(ctx)
		if err != nil {
			return err
		}
		a.println(a.renderer().RecycleBin(groups))
		return nil

	case "restore", "purge":
		positional, err := parseArgs(newFlagSet("recycle-bin "+sub), args)
		if err != nil {
			return err
		}
		if err := exactly(2, "recycle-bin "+sub+" <type> <id>", positional); err != nil {
			return err
		}
		if sub == "restore" {
			err = svc.Restore(ctx, positional[0], positional[1])
		} else {
			err = svc.PermanentDelete(ctx, positional[0], positional[1])
		}
		if err != nil {
			return err
		}
		verb := "restored"
		if sub == "purge" {
			verb = "deleted permanently"
		}
		a.printf("%s %s %s\n", positional[0], positional[1], verb)
		return nil
	}
	return unknownSubcommand("recycle-bin", sub)
}

func (a *App) audit(ctx context.Context, args []string) error {
	sub, args, err := subcommand("audit", args)
	if err != nil {
		return err
	}
	svc := a.services.Audit

	switch sub {
	case "logs":
		fs := newFlagSet("audit logs")
		var filter model.AuditFilter
		fs.StringVar(&filter.EntityType, "entity-type", "", "entity type")
		fs.StringVar(&filter.Action, "action", "", "action")
		fs.StringVar(&filter.UserID, "user", "", "acting user id")
		fs.IntVar(&filter.Limit, "limit", 0, "page size")
		fs.IntVar(&filter.Offset, "offset", 0, "rows to skip")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		logs, err := svc.Logs(ctx, filter)
		if err != nil {
			return err
		}
		a.println(a.renderer().AuditLogs(logs))
		return nil

	case "entity":
		fs := newFlagSet("audit entity")
		limit := fs.Int("limit", 0, "page size")
		positional, err := parseArgs(fs, args)
		if err != nil {
			return err
		}
		if err := exactly(2, "audit entity <type> <id>", positional); err != nil {
			return err
		}
		logs, err := svc.EntityLogs(ctx, positional[0], positional[1], *limit)
		if err != nil {
			return err
		}
		a.println(a.renderer().AuditLogs(logs))
		return nil

	case "users":
		users, err := svc.Users(ctx)
		if err != nil {
			return err
		}
		a.println(a.renderer().Users(users))
		return nil

	case "entity-types", "actions":
		var values []string
		if sub == "actions" {
			values, err = svc.Actions(ctx)
		} else {
			values, err = svc.EntityTypes(ctx)
		}
		if err != nil {
			return err
		}
		for _, value := range values {
			a.println(value)
		}
		return nil

	case "export":
		fs := newFlagSet("audit export")
		var params model.AuditExportParams
		format := fs.String("format", string(enums.ExportFormatCSV), "csv or json")
		fs.StringVar(&params.EntityType, "entity-type", "", "entity type")
		fs.StringVar(&params.Action, "action", "", "action")
		fs.StringVar(&params.UserID, "user", "", "acting user id")
		fs.StringVar(&params.StartDate, "from", "", "start date, YYYY-MM-DD")
		fs.StringVar(&params.EndDate, "to", "", "end date, YYYY-MM-DD")
		outPath := fs.String("out", "", "also write the export to this file")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		params.Format = enums.ExportFormat(strings.ToLower(strings.TrimSpace(*format)))

		result, err := svc.Export(ctx, params)
		if err != nil {
			return err
		}
		if *outPath != "" {
			if err := os.WriteFile(*outPath, result.Data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
		}
		a.printf("Exported %s (%d bytes)\n", result.Name, result.Size)
		if result.Location != "" {
			a.printf("Archived at %s\n", result.Location)
		}
		return nil
	}
	return unknownSubcommand("audit", sub)
}

func (a *App) products(ctx context.Context, args []string) error {
	sub, args, err := subcommand("products", args)
	if err != nil {
		return err
	}
	svc := a.services.Catalog

	switch sub {
	case "list":
		fs := newFlagSet("products list")
		lowStock := fs.Bool("low-stock", false, "only products at or below their threshold")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		items, err := svc.Products(ctx)
		if err != nil {
			return err
		}
		if *lowStock {
			items = catalogsvc.LowStock(items)
		}
		a.println(a.renderer().Products(items))
		return nil

	case "get":
		positional, err := parseArgs(newFlagSet("products get"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "products get", positional); err != nil {
			return err
		}
		product, err := svc.Product(ctx, positional[0])
		if err != nil {
			return err
		}
		a.println(a.renderer().Products([]model.Product{product}))
		return nil
	}
	return unknownSubcommand("products", sub)
}

func (a *App) orders(ctx context.Context, args []string) error {
	sub, args, err := subcommand("orders", args)
	if err != nil {
		return err
	}
	svc := a.services.Catalog

	switch sub {
	case "list":
		fs := newFlagSet("orders list")
		storeID := fs.String("store", "", "only orders of this store")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		items, err := svc.Orders(ctx, *storeID)
		if err != nil {
			return err
		}
		a.println(a.renderer().Orders(items))
		a.println(describeCount(len(items), "order"))
		return nil

	case "get":
		positional, err := parseArgs(newFlagSet("orders get"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "orders get", positional); err != nil {
			return err
		}
		order, err := svc.Order(ctx, positional[0])
		if err != nil {
			return err
		}
		a.println(a.renderer().Orders([]model.Order{order}))
		return nil
	}
	return unknownSubcommand("orders", sub)
}
