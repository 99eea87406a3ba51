package cliapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/repo/adminhttp"
	authsvc "github.com/Taha-Raees/zetratech-front/internal/services/auth"
	"github.com/Taha-Raees/zetratech-front/internal/ui"
)

func (a *App) registerCommands() map[string]command {
	return map[string]command{
		"login":       {summary: "sign in with --email and --password", remote: true, run: a.login},
		"logout":      {summary: "sign out and forget the stored session", remote: true, run: a.logout},
		"whoami":      {summary: "show the signed-in admin", remote: true, run: a.whoami},
		"refresh":     {summary: "renew the admin session", remote: true, run: a.refresh},
		"stores":      {summary: "list|get|create|update|delete|assign|status", remote: true, section: model.PathStores, run: a.stores},
		"users":       {summary: "list|get|create|update|delete", remote: true, section: model.PathUsers, run: a.users},
		"packages":    {summary: "list|get|create|update|delete|active", remote: true, section: model.PathPackages, run: a.packages},
		"overview":    {summary: "store, package and user counts", remote: true, section: model.PathDashboard, run: a.overview},
		"dashboard":   {summary: "revenue analytics", remote: true, section: model.PathAnalytics, run: a.dashboard},
		"constraints": {summary: "database integrity report", remote: true, section: model.PathConstraints, run: a.constraints},
		"recycle-bin": {summary: "list|restore|purge", remote: true, section: model.PathRecycleBin, run: a.recycleBin},
		"audit":       {summary: "logs|entity|users|entity-types|actions|export", remote: true, section: model.PathAudit, run: a.audit},
		"products":    {summary: "list|get", remote: true, section: model.PathProducts, run: a.products},
		"orders":      {summary: "list|get", remote: true, section: model.PathOrders, run: a.orders},
		"nav":         {summary: "sections available to the signed-in role", remote: true, run: a.nav},
		"device":      {summary: "classify a viewport: --width --height [--touch] [--ua]", run: a.classifyDevice},
		"serve":       {summary: "run the web console", run: a.serve},
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs lets positional arguments come before, between or after flags.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func subcommand(name string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s needs a subcommand", ErrUsage, name)
	}
	return args[0], args[1:], nil
}

func unknownSubcommand(name, sub string) error {
	return fmt.Errorf("%w: unknown %s subcommand %q", ErrUsage, name, sub)
}

func exactly(n int, name string, positional []string) error {
	if len(positional) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, name, n, len(positional))
	}
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	result, err := a.services.Auth.Login(ctx, authsvc.Credentials{Email: *email, Password: *password})
	if err != nil {
		var apiErr *adminhttp.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return errors.New("invalid email or password")
		}
		return err
	}

	landing := a.state.Landing()
	if landing == "" {
		landing = result.Landing
	}
	a.printf("Signed in as %s (%s)\n", result.User.Email, result.User.Role)
	a.printf("Landing: %s\n", landing)
	a.println(ui.RenderNavigation(result.User.Role, landing))
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.services.Auth.Logout(ctx); err != nil {
		a.logger.Warn("admin logout failed", zap.Error(err))
	}
	if err := a.sessions.Delete(ctx, a.state.ID()); err != nil {
		return fmt.Errorf("delete console session: %w", err)
	}
	a.state.end()
	a.println("Signed out")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	user, err := a.services.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.printf("%s (%s)\n", user.Email, user.Role)
	if user.LastLogin != "" {
		a.printf("Last login: %s\n", user.LastLogin)
	}
	return nil
}

func (a *App) refresh(ctx context.Context, _ []string) error {
	user, err := a.services.Auth.RefreshAuth(ctx)
	if err != nil {
		return err
	}
	a.printf("Session renewed for %s (%s)\n", user.Email, user.Role)
	return nil
}

func (a *App) nav(_ context.Context, _ []string) error {
	user := a.state.User()
	if user == nil {
		return ErrNotSignedIn
	}
	a.println(ui.RenderNavigation(user.Role, ui.LandingPath(user.Role)))
	return nil
}
