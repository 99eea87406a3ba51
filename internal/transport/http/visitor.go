package httptransport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/app/wiring"
	"github.com/Taha-Raees/zetratech-front/internal/device"
	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/infra/httpclient"
	"github.com/Taha-Raees/zetratech-front/internal/repo/adminhttp"
	auditsvc "github.com/Taha-Raees/zetratech-front/internal/services/audit"
)

// Visitor is one browser of the web console. It owns a gateway (cookie jar and
// refresher) and a view selector, the server-side equivalent of a browser tab.
type Visitor struct {
	mu         sync.Mutex
	session    model.ConsoleSession
	loginPath  string
	redirectTo string
	ended      bool
	lastSeen   time.Time
	client     *adminhttp.Client
	selector   *device.Selector
	services   *wiring.Services
}

func (v *Visitor) ID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session.ID
}

func (v *Visitor) Services() *wiring.Services {
	return v.services
}

func (v *Visitor) Selector() *device.Selector {
	return v.selector
}

// Redirect receives navigation from the gateway and the auth service. A request for
// the login page means the backend session is gone.
func (v *Visitor) Redirect(_ context.Context, path string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if path == v.loginPath {
		v.session.LoginRequired = true
		v.session.User = nil
		return
	}
	v.redirectTo = path
}

func (v *Visitor) SaveUser(_ context.Context, user model.SessionUser) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.session.User = &user
	v.session.LoginRequired = false
	return nil
}

func (v *Visitor) ClearUser(_ context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.session.User = nil
	return nil
}

// User is the signed-in projection, nil when the visitor must log in.
func (v *Visitor) User() *model.SessionUser {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.session.Authenticated() {
		return nil
	}
	user := *v.session.User
	return &user
}

func (v *Visitor) LoginRequired() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session.LoginRequired
}

func (v *Visitor) takeRedirect() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	path := v.redirectTo
	v.redirectTo = ""
	return path
}

func (v *Visitor) Mode() enums.ViewMode {
	return v.selector.Current().Mode()
}

// observe applies a viewport reported with a page request.
func (v *Visitor) observe(viewport device.Viewport) {
	if viewport == v.selector.Viewport() {
		return
	}
	v.selector.Resize(viewport)
}

func (v *Visitor) end() {
	v.mu.Lock()
	v.ended = true
	v.mu.Unlock()
	v.selector.Close()
}

func (v *Visitor) isEnded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ended
}

// snapshot is the persisted form of the visitor.
func (v *Visitor) snapshot() model.ConsoleSession {
	viewport := v.selector.Viewport()
	cookies := v.client.Cookies()

	v.mu.Lock()
	defer v.mu.Unlock()
	session := v.session
	session.Cookies = cookies
	session.ViewWidth = viewport.Width
	session.ViewHeight = viewport.Height
	return session
}

type VisitorConfig struct {
	APIBaseURL        string
	APITimeout        time.Duration
	LoginPath         string
	DefaultViewport   device.Viewport
	OrientationSettle time.Duration
	// Idle visitors are dropped from memory; their session store entry survives.
	IdleTimeout time.Duration
	Exports     auditsvc.ArchiveSink
	Logger      *zap.Logger
}

// Visitors keeps the live visitors of this process keyed by console session id.
type Visitors struct {
	mu    sync.Mutex
	items map[string]*Visitor
	cfg   VisitorConfig
	now   func() time.Time
}

func NewVisitors(cfg VisitorConfig) *Visitors {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = model.PathLogin
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 30 * time.Minute
	}
	return &Visitors{
		items: make(map[string]*Visitor),
		cfg:   cfg,
		now:   time.Now,
	}
}

// Acquire returns the live visitor for session, building it from the stored
// session when this process has not seen it yet.
func (vs *Visitors) Acquire(session model.ConsoleSession) (*Visitor, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	now := vs.now()
	vs.sweepLocked(now)

	if v, ok := vs.items[session.ID]; ok {
		v.mu.Lock()
		v.lastSeen = now
		v.mu.Unlock()
		return v, nil
	}

	v, err := vs.build(session)
	if err != nil {
		return nil, err
	}
	v.lastSeen = now
	vs.items[session.ID] = v
	return v, nil
}

func (vs *Visitors) Forget(id string) {
	vs.mu.Lock()
	v, ok := vs.items[id]
	delete(vs.items, id)
	vs.mu.Unlock()
	if ok {
		v.end()
	}
}

func (vs *Visitors) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return len(vs.items)
}

func (vs *Visitors) Close() {
	vs.mu.Lock()
	items := vs.items
	vs.items = make(map[string]*Visitor)
	vs.mu.Unlock()
	for _, v := range items {
		v.end()
	}
}

func (vs *Visitors) sweepLocked(now time.Time) {
	for id, v := range vs.items {
		v.mu.Lock()
		idle := now.Sub(v.lastSeen) > vs.cfg.IdleTimeout
		v.mu.Unlock()
		if idle {
			delete(vs.items, id)
			v.selector.Close()
		}
	}
}

func (vs *Visitors) build(session model.ConsoleSession) (*Visitor, error) {
	httpClient, err := httpclient.New(vs.cfg.APITimeout)
	if err != nil {
		return nil, err
	}

	logger := vs.cfg.Logger.With(zap.String("visitor", session.ID))
	v := &Visitor{session: session, loginPath: vs.cfg.LoginPath}

	client, err := adminhttp.NewClient(adminhttp.Options{
		BaseURL:    vs.cfg.APIBaseURL,
		HTTPClient: httpClient,
		Navigator:  v,
		LoginPath:  vs.cfg.LoginPath,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build visitor gateway: %w", err)
	}
	client.RestoreCookies(session.Cookies)

	viewport := vs.cfg.DefaultViewport
	if session.ViewWidth > 0 {
		viewport.Width = session.ViewWidth
		viewport.Height = session.ViewHeight
	}

	v.client = client
	v.selector = device.NewSelector(viewport, vs.cfg.OrientationSettle, logger)
	v.services = wiring.NewServices(wiring.Dependencies{
		Client:    client,
		Sessions:  v,
		Navigator: v,
		Exports:   vs.cfg.Exports,
	})
	return v, nil
}

type visitorKey struct{}

func withVisitor(ctx context.Context, v *Visitor) context.Context {
	return context.WithValue(ctx, visitorKey{}, v)
}

func visitorFrom(ctx context.Context) *Visitor {
	v, _ := ctx.Value(visitorKey{}).(*Visitor)
	return v
}
