package httptransport

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	analyticssvc "github.com/Taha-Raees/zetratech-front/internal/services/analytics"
	authsvc "github.com/Taha-Raees/zetratech-front/internal/services/auth"
	integritysvc "github.com/Taha-Raees/zetratech-front/internal/services/integrity"
	storessvc "github.com/Taha-Raees/zetratech-front/internal/services/stores"
	"github.com/Taha-Raees/zetratech-front/internal/ui"
)

type loginContent struct {
	Email string
}

type storesContent struct {
	Stores []model.Store
	Query  string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	if user := v.User(); user != nil {
		redirect(w, r, ui.LandingPath(user.Role))
		return
	}
	s.render(w, r, http.StatusOK, "login", "Sign in", loginContent{}, "")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "login", "Sign in", loginContent{}, "Malformed form")
		return
	}
	creds := authsvc.Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}

	result, err := v.Services().Auth.Login(r.Context(), creds)
	if err != nil {
		status, message := failure(err)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			message = "Invalid email or password"
		}
		s.render(w, r, status, "login", "Sign in", loginContent{Email: creds.Email}, message)
		return
	}

	target := v.takeRedirect()
	if target == "" {
		target = result.Landing
	}
	s.logger.Info("console login",
		zap.String("user_id", result.User.ID),
		zap.String("role", string(result.User.Role)),
		zap.String("landing", target),
	)
	redirect(w, r, target)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	if err := v.Services().Auth.Logout(r.Context()); err != nil {
		s.logger.Warn("admin logout failed", zap.Error(err))
	}

	id := v.ID()
	s.visitors.Forget(id)
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.logger.Warn("delete console session", zap.String("session_id", id), zap.Error(err))
	}
	s.clearSessionCookie(w)
	redirect(w, r, model.PathLogin)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	overview, err := v.Services().Overview.Load(r.Context())
	if err != nil {
		s.fail(w, r, "dashboard", "Dashboard", model.Overview{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "dashboard", "Dashboard", overview, "")
}

func (s *Server) handleStores(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	items, err := v.Services().Stores.List(r.Context())
	if err != nil {
		s.fail(w, r, "stores", "Stores", storesContent{Query: query}, err)
		return
	}
	s.render(w, r, http.StatusOK, "stores", "Stores", storesContent{Stores: storessvc.Search(items, query), Query: query}, "")
}

func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	store, err := v.Services().Stores.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, "error", "Store", "Store could not be loaded", err)
		return
	}
	s.render(w, r, http.StatusOK, "store", store.Name, store, "")
}

func (s *Server) handleStoreStatus(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "error", "Store", "Malformed form", "")
		return
	}

	status := enums.StoreStatus(r.PostForm.Get("status"))
	if _, err := v.Services().Subscriptions.SetStatus(r.Context(), id, status); err != nil {
		s.fail(w, r, "error", "Store", "Status was not changed", err)
		return
	}
	redirect(w, r, model.PathStores+"/"+url.PathEscape(id)+"?notice="+url.QueryEscape("Status updated"))
}

func (s *Server) handlePackages(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	items, err := v.Services().Packages.List(r.Context())
	if err != nil {
		s.fail(w, r, "packages", "Subscription Packages", []model.SubscriptionPackage{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "packages", "Subscription Packages", items, "")
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	items, err := v.Services().Users.List(r.Context())
	if err != nil {
		s.fail(w, r, "users", "System Users", []model.User{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "users", "System Users", items, "")
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	summary, err := v.Services().Analytics.Dashboard(r.Context())
	if err != nil {
		s.fail(w, r, "analytics", "Revenue Analytics", analyticssvc.Summary{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "analytics", "Revenue Analytics", summary, "")
}

func (s *Server) handleRecycleBin(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	groups, err := v.Services().RecycleBin.List(r.Context())
	if err != nil {
		s.fail(w, r, "recycle-bin", "Recycle Bin", nil, err)
		return
	}
	s.render(w, r, http.StatusOK, "recycle-bin", "Recycle Bin", groups, "")
}

func (s *Server) handleRecycleRestore(w http.ResponseWriter, r *http.Request) {
	s.recycleAction(w, r, "restored", func(v *Visitor, kind, id string) error {
		return v.Services().RecycleBin.Restore(r.Context(), kind, id)
	})
}

func (s *Server) handleRecyclePurge(w http.ResponseWriter, r *http.Request) {
	s.recycleAction(w, r, "deleted permanently", func(v *Visitor, kind, id string) error {
		return v.Services().RecycleBin.PermanentDelete(r.Context(), kind, id)
	})
}

func (s *Server) recycleAction(w http.ResponseWriter, r *http.Request, done string, action func(v *Visitor, kind, id string) error) {
	v := visitorFrom(r.Context())
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "error", "Recycle Bin", "Malformed form", "")
		return
	}
	kind, id := r.PostForm.Get("type"), r.PostForm.Get("id")
	if err := action(v, kind, id); err != nil {
		s.fail(w, r, "error", "Recycle Bin", "The item was not changed", err)
		return
	}
	redirect(w, r, model.PathRecycleBin+"?notice="+url.QueryEscape("Item "+done))
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	query := r.URL.Query()
	filter := model.AuditFilter{
		EntityType: strings.TrimSpace(query.Get("entityType")),
		Action:     strings.TrimSpace(query.Get("action")),
		UserID:     strings.TrimSpace(query.Get("userId")),
	}
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	filter.Offset, _ = strconv.Atoi(query.Get("offset"))

	logs, err := v.Services().Audit.Logs(r.Context(), filter)
	if err != nil {
		s.fail(w, r, "audit", "Audit Log", []model.AuditLog{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "audit", "Audit Log", logs, "")
}

// handleAuditExport archives the export and hands the document to the browser.
func (s *Server) handleAuditExport(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	query := r.URL.Query()
	params := model.AuditExportParams{
		Format:     enums.ExportFormat(strings.ToLower(strings.TrimSpace(query.Get("format")))),
		EntityType: strings.TrimSpace(query.Get("entityType")),
		Action:     strings.TrimSpace(query.Get("action")),
		UserID:     strings.TrimSpace(query.Get("userId")),
		StartDate:  strings.TrimSpace(query.Get("startDate")),
		EndDate:    strings.TrimSpace(query.Get("endDate")),
	}

	result, err := v.Services().Audit.Export(r.Context(), params)
	if err != nil {
		s.fail(w, r, "error", "Audit Log", "Export failed", err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Name+`"`)
	if result.Location != "" {
		w.Header().Set("X-Export-Location", result.Location)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

func (s *Server) handleConstraints(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())
	report, err := v.Services().Integrity.Constraints(r.Context())
	if err != nil {
		s.fail(w, r, "constraints", "Database Integrity", integritysvc.Report{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "constraints", "Database Integrity", report, "")
}
