// Package cliapp is the command-line console. Every invocation restores the operator's
// session from disk, runs one command through the gateway and stores the session again.
package cliapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/app/wiring"
	"github.com/Taha-Raees/zetratech-front/internal/config"
	"github.com/Taha-Raees/zetratech-front/internal/device"
	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/infra/httpclient"
	"github.com/Taha-Raees/zetratech-front/internal/repo/adminhttp"
	"github.com/Taha-Raees/zetratech-front/internal/repo/filestate"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
	"github.com/Taha-Raees/zetratech-front/internal/ui"
)

const viewAuto = "auto"

var (
	ErrUsage         = errors.New("usage")
	ErrNotSignedIn   = errors.New("not signed in, run `zetra-admin login`")
	ErrLoginRequired = errors.New("admin session expired, run `zetra-admin login`")
	ErrSectionDenied = errors.New("section is not available for this role")
)

type Options struct {
	Out io.Writer
	// View is auto, mobile or desktop.
	View   string
	Logger *zap.Logger
}

type App struct {
	cfg      config.Config
	logger   *zap.Logger
	out      io.Writer
	view     string
	files    *filestate.SessionRepo
	sessions *consolesvc.Service
	state    *cliSession
	client   *adminhttp.Client
	services *wiring.Services
	commands map[string]command
}

// command is one top-level verb. section is the console location the signed-in role
// must be allowed to open; remote commands talk to the API and carry the session.
type command struct {
	summary string
	remote  bool
	section string
	run     func(ctx context.Context, args []string) error
}

func New(cfg config.Config, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	view := strings.ToLower(strings.TrimSpace(opts.View))
	switch view {
	case "":
		view = viewAuto
	case viewAuto, string(enums.ViewModeMobile), string(enums.ViewModeDesktop):
	default:
		return nil, fmt.Errorf("%w: --view must be auto, mobile or desktop, got %q", ErrUsage, opts.View)
	}

	httpClient, err := httpclient.New(cfg.API.Timeout)
	if err != nil {
		return nil, err
	}
	state := newCLISession(cfg.API.LoginPath)
	client, err := adminhttp.NewClient(adminhttp.Options{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: httpClient,
		Navigator:  state,
		LoginPath:  cfg.API.LoginPath,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("build admin api gateway: %w", err)
	}

	files := filestate.NewSessionRepo(cfg.Session.File)
	a := &App{
		cfg:      cfg,
		logger:   log,
		out:      out,
		view:     view,
		files:    files,
		sessions: consolesvc.NewService(files, cfg.Session.TTL),
		state:    state,
		client:   client,
		services: wiring.NewServices(wiring.Dependencies{
			Client:    client,
			Sessions:  state,
			Navigator: state,
			Exports:   wiring.ExportSink(cfg, log),
		}),
	}
	a.commands = a.registerCommands()
	return a, nil
}

// Run executes one command line, without the global flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}
	name, rest := args[0], args[1:]
	if name == "help" {
		a.printUsage(a.out)
		return nil
	}
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
	if !cmd.remote {
		return cmd.run(ctx, rest)
	}

	if err := a.openSession(ctx); err != nil {
		return err
	}
	if cmd.section != "" {
		user := a.state.User()
		if user == nil {
			return ErrNotSignedIn
		}
		if !ui.AllowedPath(user.Role, cmd.section) {
			return fmt.Errorf("%w: %s may open %s only", ErrSectionDenied, user.Role, ui.LandingPath(user.Role))
		}
	}

	runErr := cmd.run(ctx, rest)
	if err := a.saveSession(ctx); err != nil {
		a.logger.Warn("save console session", zap.Error(err))
	}
	if runErr != nil && name != "login" && a.state.LoginRequired() {
		return ErrLoginRequired
	}
	return runErr
}

func (a *App) openSession(ctx context.Context) error {
	session, err := a.files.Current(ctx)
	if errors.Is(err, consolesvc.ErrSessionNotFound) {
		session, _, err = a.sessions.Open(ctx, "")
	}
	if err != nil {
		return fmt.Errorf("open console session: %w", err)
	}
	a.state.load(session)
	a.client.RestoreCookies(session.Cookies)
	return nil
}

func (a *App) saveSession(ctx context.Context) error {
	if a.state.isEnded() {
		return nil
	}
	return a.sessions.Save(context.WithoutCancel(ctx), a.state.snapshot(a.client.Cookies()))
}

// renderer picks the page tree from --view, or from the configured viewport.
func (a *App) renderer() ui.Renderer {
	if a.view != viewAuto {
		return ui.ForMode(enums.ViewMode(a.view))
	}
	return ui.ForMode(a.viewport().Classify().Mode())
}

func (a *App) viewport() device.Viewport {
	return device.Viewport{
		Width:       a.cfg.View.Width,
		Height:      a.cfg.View.Height,
		TouchEvents: a.cfg.View.Touch,
	}
}

func (a *App) printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: zetra-admin [--config path] [--verbose] [--view auto|mobile|desktop] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, a.commands[name].summary)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(text string) {
	fmt.Fprintln(a.out, text)
}
