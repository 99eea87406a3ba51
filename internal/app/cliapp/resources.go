package cliapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	packagessvc "github.com/Taha-Raees/zetratech-front/internal/services/packages"
	storessvc "github.com/Taha-Raees/zetratech-front/internal/services/stores"
	userssvc "github.com/Taha-Raees/zetratech-front/internal/services/users"
)

func (a *App) stores(ctx context.Context, args []string) error {
	sub, args, err := subcommand("stores", args)
	if err != nil {
		return err
	}
	svc := a.services.Stores

	switch sub {
	case "list":
		fs := newFlagSet("stores list")
		query := fs.String("q", "", "filter by name, owner or city")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		a.println(a.renderer().Stores(storessvc.Search(items, *query)))
		return nil

	case "get":
		positional, err := parseArgs(newFlagSet("stores get"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "stores get", positional); err != nil {
			return err
		}
		store, err := svc.Get(ctx, positional[0])
		if err != nil {
			return err
		}
		a.println(a.renderer().Stores([]model.Store{store}))
		return nil

	case "create":
		fs := newFlagSet("stores create")
		var input model.StoreInput
		fs.StringVar(&input.Name, "name", "", "store name")
		fs.StringVar(&input.BusinessType, "business-type", "", "business type")
		fs.StringVar(&input.Street, "street", "", "street")
		fs.StringVar(&input.City, "city", "", "city")
		fs.StringVar(&input.State, "state", "", "state")
		fs.StringVar(&input.PostalCode, "postal-code", "", "postal code")
		fs.StringVar(&input.Country, "country", "", "country")
		fs.StringVar(&input.Phone, "phone", "", "phone")
		fs.StringVar(&input.Email, "email", "", "store email")
		fs.StringVar(&input.Website, "website", "", "website")
		fs.StringVar(&input.OwnerName, "owner-name", "", "owner name")
		fs.StringVar(&input.OwnerEmail, "owner-email", "", "owner email")
		fs.StringVar(&input.OwnerPassword, "owner-password", "", "owner password")
		packageID := fs.String("package", "", "subscription package id")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		if *packageID != "" {
			input.SubscriptionPackageID = packageID
		}
		store, err := svc.Create(ctx, input)
		if err != nil {
			return err
		}
		a.printf("Created store %s (%s)\n", store.Name, store.ID)
		return nil

	case "update":
		fs := newFlagSet("stores update")
		fields := map[string]*string{}
		for _, name := range []string{"name", "business-type", "street", "city", "state", "postal-code", "country", "phone", "email", "website"} {
			fields[name] = fs.String(name, "", name)
		}
		positional, err := parseArgs(fs, args)
		if err != nil {
			return err
		}
		if err := exactly(1, "stores update", positional); err != nil {
			return err
		}
		set := visited(fs)
		pick := func(name string) *string {
			if !set[name] {
				return nil
			}
			return fields[name]
		}
		update := model.StoreUpdate{
			Name:         pick("name"),
			BusinessType: pick("business-type"),
			Street:       pick("street"),
			City:         pick("city"),
			State:        pick("state"),
			PostalCode:   pick("postal-code"),
			Country:      pick("country"),
			Phone:        pick("phone"),
			Email:        pick("email"),
			Website:      pick("website"),
		}
		store, err := svc.Update(ctx, positional[0], update)
		if err != nil {
			return err
		}
		a.printf("Updated store %s (%s)\n", store.Name, store.ID)
		return nil

	case "delete":
		positional, err := parseArgs(newFlagSet("stores delete"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "stores delete", positional); err != nil {
			return err
		}
		if err := svc.Delete(ctx, positional[0]); err != nil {
			return err
		}
		a.printf("Store %s moved to the recycle bin\n", positional[0])
		return nil

	case "assign":
		positional, err := parseArgs(newFlagSet("stores assign"), args)
		if err != nil {
			return err
		}
		if err := exactly(2, "stores assign <store-id> <package-id>", positional); err != nil {
			return err
		}
		store, err := a.services.Subscriptions.Assign(ctx, positional[0], positional[1])
		if err != nil {
			return err
		}
		a.printf("Store %s now on %s\n", store.Name, store.PackageName())
		return nil

	case "status":
		positional, err := parseArgs(newFlagSet("stores status"), args)
		if err != nil {
			return err
		}
		if err := exactly(2, "stores status <store-id> active|suspended", positional); err != nil {
			return err
		}
		status := enums.StoreStatus(strings.ToLower(positional[1]))
		store, err := a.services.Subscriptions.SetStatus(ctx, positional[0], status)
		if err != nil {
			return err
		}
		a.printf("Store %s is %s\n", store.Name, store.SubscriptionStatus)
		return nil
	}
	return unknownSubcommand("stores", sub)
}

func (a *App) users(ctx context.Context, args []string) error {
	sub, args, err := subcommand("users", args)
	if err != nil {
		return err
	}
	svc := a.services.Users

	switch sub {
	case "list":
		fs := newFlagSet("users list")
		role := fs.String("role", "", "only users with this role")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if *role != "" {
			items = userssvc.FilterByRole(items, enums.ParseRole(*role))
		}
		a.println(a.renderer().Users(items))
		return nil

	case "get":
		positional, err := parseArgs(newFlagSet("users get"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "users get", positional); err != nil {
			return err
		}
		user, err := svc.Get(ctx, positional[0])
		if err != nil {
			return err
		}
		a.println(a.renderer().Users([]model.User{user}))
		return nil

	case "create":
		fs := newFlagSet("users create")
		var input model.UserInput
		fs.StringVar(&input.Email, "email", "", "email")
		fs.StringVar(&input.Name, "name", "", "display name")
		fs.StringVar(&input.Password, "password", "", "initial password")
		fs.StringVar(&input.StoreID, "store", "", "store id")
		role := fs.String("role", string(enums.RoleStaff), "ADMIN, OWNER, MANAGER or STAFF")
		fs.BoolVar(&input.IsActive, "active", true, "account is active")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		input.Role = enums.Role(strings.ToUpper(strings.TrimSpace(*role)))
		user, err := svc.Create(ctx, input)
		if err != nil {
			return err
		}
		a.printf("Created user %s (%s)\n", user.Email, user.ID)
		return nil

	case "update":
		fs := newFlagSet("users update")
		email := fs.String("email", "", "email")
		name := fs.String("name", "", "display name")
		password := fs.String("password", "", "new password")
		store := fs.String("store", "", "store id")
		role := fs.String("role", "", "ADMIN, OWNER, MANAGER or STAFF")
		active := fs.Bool("active", true, "account is active")
		positional, err := parseArgs(fs, args)
		if err != nil {
			return err
		}
		if err := exactly(1, "users update", positional); err != nil {
			return err
		}
		set := visited(fs)
		var update model.UserUpdate
		if set["email"] {
			update.Email = email
		}
		if set["name"] {
			update.Name = name
		}
		if set["password"] {
			update.Password = password
		}
		if set["store"] {
			update.StoreID = store
		}
		if set["role"] {
			parsed := enums.Role(strings.ToUpper(strings.TrimSpace(*role)))
			update.Role = &parsed
		}
		if set["active"] {
			update.IsActive = active
		}
		user, err := svc.Update(ctx, positional[0], update)
		if err != nil {
			return err
		}
		a.printf("Updated user %s (%s)\n", user.Email, user.ID)
		return nil

	case "delete":
		positional, err := parseArgs(newFlagSet("users delete"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "users delete", positional); err != nil {
			return err
		}
		if err := svc.Delete(ctx, positional[0]); err != nil {
			return err
		}
		a.printf("User %s deleted\n", positional[0])
		return nil
	}
	return unknownSubcommand("users", sub)
}

func (a *App) packages(ctx context.Context, args []string) error {
	sub, args, err := subcommand("packages", args)
	if err != nil {
		return err
	}
	svc := a.services.Packages

	switch sub {
	case "list":
		fs := newFlagSet("packages list")
		onlyActive := fs.Bool("active", false, "only active packages")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		items, err := svc.List(ctx)
		if err != nil {
			return err
		}
		if *onlyActive {
			items = packagessvc.Active(items)
		}
		a.println(a.renderer().Packages(items))
		return nil

	case "active":
		items, err := a.services.Subscriptions.ActivePackages(ctx)
		if err != nil {
			return err
		}
		a.println(a.renderer().Packages(items))
		return nil

	case "get":
		positional, err := parseArgs(newFlagSet("packages get"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "packages get", positional); err != nil {
			return err
		}
		pkg, err := svc.Get(ctx, positional[0])
		if err != nil {
			return err
		}
		a.println(a.renderer().Packages([]model.SubscriptionPackage{pkg}))
		return nil

	case "create":
		fs := newFlagSet("packages create")
		var input model.PackageInput
		fs.StringVar(&input.Name, "name", "", "package name")
		fs.Float64Var(&input.Price, "price", 0, "monthly price")
		fs.StringVar(&input.Currency, "currency", "USD", "ISO currency code")
		fs.StringVar(&input.Description, "description", "", "description")
		fs.IntVar(&input.MaxStores, "max-stores", 1, "store limit")
		fs.IntVar(&input.MaxProducts, "max-products", 100, "product limit")
		fs.IntVar(&input.MaxUsers, "max-users", 5, "user limit")
		features := fs.String("features", "", "comma separated features")
		fs.BoolVar(&input.IsActive, "active", true, "package can be assigned")
		fs.BoolVar(&input.IsDefault, "default", false, "default package for new stores")
		if _, err := parseArgs(fs, args); err != nil {
			return err
		}
		input.Features = packagessvc.ParseFeatures(*features)
		pkg, err := svc.Create(ctx, input)
		if err != nil {
			return err
		}
		a.printf("Created package %s (%s)\n", pkg.Name, pkg.ID)
		return nil

	case "update":
		fs := newFlagSet("packages update")
		name := fs.String("name", "", "package name")
		price := fs.Float64("price", 0, "monthly price")
		currency := fs.String("currency", "", "ISO currency code")
		description := fs.String("description", "", "description")
		maxStores := fs.Int("max-stores", 0, "store limit")
		maxProducts := fs.Int("max-products", 0, "product limit")
		maxUsers := fs.Int("max-users", 0, "user limit")
		features := fs.String("features", "", "comma separated features")
		active := fs.Bool("active", true, "package can be assigned")
		isDefault := fs.Bool("default", false, "default package for new stores")
		positional, err := parseArgs(fs, args)
		if err != nil {
			return err
		}
		if err := exactly(1, "packages update", positional); err != nil {
			return err
		}
		set := visited(fs)
		var update model.PackageUpdate
		if set["name"] {
			update.Name = name
		}
		if set["price"] {
			update.Price = price
		}
		if set["currency"] {
			update.Currency = currency
		}
		if set["description"] {
			update.Description = description
		}
		if set["max-stores"] {
			update.MaxStores = maxStores
		}
		if set["max-products"] {
			update.MaxProducts = maxProducts
		}
		if set["max-users"] {
			update.MaxUsers = maxUsers
		}
		if set["features"] {
			parsed := packagessvc.ParseFeatures(*features)
			update.Features = &parsed
		}
		if set["active"] {
			update.IsActive = active
		}
		if set["default"] {
			update.IsDefault = isDefault
		}
		pkg, err := svc.Update(ctx, positional[0], update)
		if err != nil {
			return err
		}
		a.printf("Updated package %s (%s)\n", pkg.Name, pkg.ID)
		return nil

	case "delete":
		positional, err := parseArgs(newFlagSet("packages delete"), args)
		if err != nil {
			return err
		}
		if err := exactly(1, "packages delete", positional); err != nil {
			return err
		}
		if err := svc.Delete(ctx, positional[0]); err != nil {
			return err
		}
		a.printf("Package %s deleted\n", positional[0])
		return nil
	}
	return unknownSubcommand("packages", sub)
}

func describeCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
