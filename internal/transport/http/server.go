// Package httptransport serves the server-rendered web console.
package httptransport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
	"github.com/Taha-Raees/zetratech-front/internal/repo/adminhttp"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
	"github.com/Taha-Raees/zetratech-front/internal/ui"
	"github.com/Taha-Raees/zetratech-front/internal/ui/web"
)

const defaultCookieName = "zt_console_sid"

type Dependencies struct {
	Sessions     *consolesvc.Service
	Visitors     *Visitors
	Pages        *web.Pages
	CookieName   string
	SecureCookie bool
	Logger       *zap.Logger
}

type Server struct {
	sessions     *consolesvc.Service
	visitors     *Visitors
	pages        *web.Pages
	cookieName   string
	secureCookie bool
	logger       *zap.Logger
}

func NewServer(deps Dependencies) (*Server, error) {
	if deps.Sessions == nil || deps.Visitors == nil || deps.Pages == nil {
		return nil, errors.New("web console dependencies are incomplete")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cookieName := strings.TrimSpace(deps.CookieName)
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	return &Server{
		sessions:     deps.Sessions,
		visitors:     deps.Visitors,
		pages:        deps.Pages,
		cookieName:   cookieName,
		secureCookie: deps.SecureCookie,
		logger:       logger,
	}, nil
}

func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()
	ApplyMiddlewares(r, s.logger)
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.handleHealth)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		redirect(w, r, model.PathDashboard)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.withVisitor)

		r.Post("/viewport", s.handleViewport)
		r.Get(model.PathLogin, s.handleLoginPage)
		r.Post(model.PathLogin, s.handleLogin)
		r.Post(model.PathLogout, s.handleLogout)

		r.Route(model.PathDashboard, func(r chi.Router) {
			r.Use(s.requireUser)

			r.Get("/", s.handleDashboard)
			r.Get("/stores", s.handleStores)
			r.Get("/stores/{id}", s.handleStore)
			r.Post("/stores/{id}/status", s.handleStoreStatus)
			r.Get("/packages", s.handlePackages)
			r.Get("/users", s.handleUsers)
			r.Get("/analytics", s.handleAnalytics)
			r.Get("/recycle-bin", s.handleRecycleBin)
			r.Post("/recycle-bin/restore", s.handleRecycleRestore)
			r.Post("/recycle-bin/purge", s.handleRecyclePurge)
			r.Get("/audit", s.handleAudit)
			r.Get("/audit/export", s.handleAuditExport)
			r.Get("/constraints", s.handleConstraints)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withVisitor resolves the console session cookie to a live visitor and persists the
// visitor's state once the handler is done.
func (s *Server) withVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(s.cookieName); err == nil {
			id = cookie.Value
		}

		session, created, err := s.sessions.Open(r.Context(), id)
		if err != nil {
			s.logger.Error("open console session", zap.Error(err))
			writeError(w, http.StatusServiceUnavailable, "SESSION_STORE_UNAVAILABLE", "console session store is unavailable")
			return
		}
		v, err := s.visitors.Acquire(session)
		if err != nil {
			s.logger.Error("acquire visitor", zap.Error(err))
			writeError(w, http.StatusBadGateway, "GATEWAY_UNAVAILABLE", "admin api gateway is unavailable")
			return
		}
		if created {
			s.setSessionCookie(w, session.ID)
		}

		v.observe(viewportFromRequest(r, v))
		next.ServeHTTP(w, r.WithContext(withVisitor(r.Context(), v)))

		if v.isEnded() {
			return
		}
		if err := s.sessions.Save(context.WithoutCancel(r.Context()), v.snapshot()); err != nil {
			s.logger.Warn("save console session", zap.String("session_id", session.ID), zap.Error(err))
		}
	})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireUser sends anonymous visitors to the login page and keeps each role inside
// the sections it may open.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := visitorFrom(r.Context())
		user := v.User()
		if user == nil {
			redirect(w, r, model.PathLogin)
			return
		}
		if !ui.AllowedPath(user.Role, r.URL.Path) {
			redirect(w, r, ui.LandingPath(user.Role))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any, alert string) {
	v := visitorFrom(r.Context())
	data := web.PageData{
		Title:   title,
		User:    v.User(),
		Current: currentSection(r.URL.Path),
		Alert:   alert,
		Notice:  r.URL.Query().Get("notice"),
		Content: content,
	}
	if data.User != nil {
		data.Nav = ui.NavigationByRole(data.User.Role)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "Sec-CH-Viewport-Width, Viewport-Width")
	w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width, Sec-CH-Viewport-Height, Sec-CH-UA-Mobile")
	w.WriteHeader(status)
	if err := s.pages.Render(w, v.Mode(), page, data); err != nil {
		s.logger.Error("render page", zap.String("page", page), zap.Error(err))
	}
}

// fail reports err on the page that was being built. A lost backend session sends the
// visitor to the login page instead.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, page, title string, content any, err error) {
	v := visitorFrom(r.Context())
	if v.LoginRequired() || adminhttp.IsUnauthorized(err) {
		_ = v.ClearUser(r.Context())
		redirect(w, r, model.PathLogin)
		return
	}

	status, message := failure(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("admin api call failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	s.render(w, r, status, page, title, content, message)
}

func failure(err error) (int, string) {
	var apiErr *adminhttp.APIError
	switch {
	case errors.Is(err, validate.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode, apiErr.Message
		}
		return http.StatusBadGateway, apiErr.Message
	default:
		return http.StatusBadGateway, "The admin API could not be reached. Try again shortly."
	}
}

func currentSection(path string) string {
	path = strings.TrimRight(path, "/")
	if strings.HasPrefix(path, model.PathStores+"/") {
		return model.PathStores
	}
	return path
}
