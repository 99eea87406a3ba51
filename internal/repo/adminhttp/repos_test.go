package adminhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

func newFakeAPI(t *testing.T, router chi.Router) *Client {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{BaseURL: server.URL, HTTPClient: newJarClient(t)})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestAuthRepoLoginStoresCookieAndReturnsUser(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/auth/admin-login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if body.Email != "a@x.io" || body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Invalid credentials"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "fresh", Path: "/"})
		_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","email":"a@x.io","role":"ADMIN"},"message":"ok"}}`))
	})
	router.Get("/auth/admin-login/verify", func(w http.ResponseWriter, r *http.Request) {
		if !hasFreshSession(r) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","email":"a@x.io","role":"ADMIN","isActive":true}}}`))
	})

	repo := NewAuthRepo(newFakeAPI(t, router))

	user, err := repo.Login(context.Background(), "a@x.io", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "u1" || user.Role != enums.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	verified, err := repo.Verify(context.Background())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !verified.IsActive || verified.Email != "a@x.io" {
		t.Fatalf("unexpected verified user: %+v", verified)
	}

	if _, err := repo.Login(context.Background(), "a@x.io", "wrong"); !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestSubscriptionsRepoUpdateStatusSendsStatus(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Put("/admin/store-subscription/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "suspended" {
			t.Errorf("unexpected status body: %v", body)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"` + chi.URLParam(r, "id") + `","subscriptionStatus":"suspended"}}`))
	})

	repo := NewSubscriptionsRepo(newFakeAPI(t, router))
	store, err := repo.UpdateStatus(context.Background(), "s1", enums.StoreStatusSuspended)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if store.ID != "s1" || store.SubscriptionStatus != "suspended" {
		t.Fatalf("unexpected store: %+v", store)
	}
}

func TestAuditRepoLogsQueryAndExport(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/audit/logs", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("limit") != "20" || query.Get("action") != "DELETE" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if query.Has("userId") || query.Has("offset") {
			t.Errorf("empty filters must be omitted: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"l1","entityType":"Store","entityId":"s1","action":"DELETE","createdAt":"2024-01-01T00:00:00Z"}]}`))
	})
	router.Post("/audit/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,action\nl1,DELETE\n"))
	})

	repo := NewAuditRepo(newFakeAPI(t, router))

	logs, err := repo.Logs(context.Background(), model.AuditFilter{Limit: 20, Action: "DELETE"})
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if len(logs) != 1 || logs[0].Actor() != "system" {
		t.Fatalf("unexpected logs: %+v", logs)
	}

	doc, err := repo.Export(context.Background(), model.AuditExportParams{Format: enums.ExportFormatCSV})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.ContentType != "text/csv" || string(doc.Data) != "id,action\nl1,DELETE\n" {
		t.Fatalf("unexpected export: %+v", doc)
	}
}

func TestCatalogRepoListOrdersByStore(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("storeId"); got != "s9" {
			t.Errorf("unexpected store filter: %q", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"o1","orderNumber":"ORD-1","total":12.5,"items":[]}]}`))
	})

	orders, err := NewCatalogRepo(newFakeAPI(t, router)).ListOrders(context.Background(), "s9")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderNumber != "ORD-1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}
