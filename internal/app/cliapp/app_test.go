package cliapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Taha-Raees/zetratech-front/internal/config"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
	"github.com/Taha-Raees/zetratech-front/internal/repo/filestate"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
)

const backendCookie = "admin_session"

type fakeBackend struct {
	expired   atomic.Bool
	refreshes atomic.Int32
	logouts   atomic.Int32
}

func newFakeBackend(t *testing.T) (*httptest.Server, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{}
	r := chi.NewRouter()

	r.Post("/auth/admin-login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Invalid credentials"}`))
			return
		}
		role := "ADMIN"
		if strings.HasPrefix(body.Email, "root") {
			role = "SUPERADMIN"
		}
		http.SetCookie(w, &http.Cookie{Name: backendCookie, Value: "ok", Path: "/"})
		_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","email":"` + body.Email + `","role":"` + role + `"}}}`))
	})
	r.Post("/auth/admin-login/refresh", func(w http.ResponseWriter, _ *http.Request) {
		backend.refreshes.Add(1)
		if backend.expired.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	r.Post("/auth/admin-login/logout", func(w http.ResponseWriter, _ *http.Request) {
		backend.logouts.Add(1)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	guarded := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(backendCookie)
			if err != nil || cookie.Value != "ok" || backend.expired.Load() {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
				return
			}
			_, _ = w.Write([]byte(body))
		}
	}
	r.Get("/auth/admin-login/verify", guarded(`{"success":true,"data":{"user":{"id":"u1","email":"root@zetra.io","role":"SUPERADMIN","isActive":true}}}`))
	r.Get("/admin/create-store", guarded(`{"success":true,"data":[
		{"id":"s1","name":"Fresh Mart","businessType":"grocery","subscriptionStatus":"active","owner":{"email":"o@fresh.io"}},
		{"id":"s2","name":"Corner Shop","businessType":"retail","subscriptionStatus":"suspended","owner":{"email":"c@corner.io"}}
	]}`))
	r.Get("/admin/users", guarded(`{"success":true,"data":[{"id":"u1","email":"root@zetra.io","role":"SUPERADMIN","isActive":true}]}`))

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, backend
}

type cliHarness struct {
	cfg     config.Config
	backend *fakeBackend
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	api, backend := newFakeBackend(t)

	cfg := config.Default()
	cfg.API.BaseURL = api.URL
	cfg.Session.File = filepath.Join(t.TempDir(), "session.json")
	return &cliHarness{cfg: cfg, backend: backend}
}

// run executes one invocation with a fresh App, the way separate processes would.
func (h *cliHarness) run(t *testing.T, view string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app, err := New(h.cfg, Options{Out: &out, View: view})
	if err != nil {
		t.Fatalf("new cli app: %v", err)
	}
	err = app.Run(context.Background(), args)
	return out.String(), err
}

func (h *cliHarness) stored(t *testing.T) (string, error) {
	t.Helper()
	session, err := filestate.NewSessionRepo(h.cfg.Session.File).Current(context.Background())
	if err != nil {
		return "", err
	}
	raw, _ := json.Marshal(session)
	return string(raw), nil
}

func TestLoginPersistsSessionAcrossInvocations(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	out, err := h.run(t, "", "login", "--email", "ops@zetra.io", "--password", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "Signed in as ops@zetra.io (ADMIN)") || !strings.Contains(out, "Landing: /admin-dashboard/stores") {
		t.Fatalf("unexpected login output:\n%s", out)
	}

	stored, err := h.stored(t)
	if err != nil {
		t.Fatalf("read stored session: %v", err)
	}
	if !strings.Contains(stored, `"name":"admin_session"`) || !strings.Contains(stored, `"role":"ADMIN"`) {
		t.Fatalf("session file misses credentials or user: %s", stored)
	}

	out, err = h.run(t, "desktop", "stores", "list")
	if err != nil {
		t.Fatalf("stores list: %v", err)
	}
	if !strings.HasPrefix(out, "ID") || !strings.Contains(out, "Fresh Mart") || !strings.Contains(out, "Corner Shop") {
		t.Fatalf("unexpected stores table:\n%s", out)
	}

	out, err = h.run(t, "desktop", "stores", "list", "--q", "corner")
	if err != nil {
		t.Fatalf("stores search: %v", err)
	}
	if strings.Contains(out, "Fresh Mart") || !strings.Contains(out, "Corner Shop") {
		t.Fatalf("search did not filter:\n%s", out)
	}
}

func TestAdminIsConfinedToStores(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	if _, err := h.run(t, "", "login", "--email", "ops@zetra.io", "--password", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := h.run(t, "", "users", "list"); !errors.Is(err, ErrSectionDenied) {
		t.Fatalf("expected section denied, got %v", err)
	}
	if _, err := h.run(t, "", "overview"); !errors.Is(err, ErrSectionDenied) {
		t.Fatalf("expected section denied for overview, got %v", err)
	}
}

func TestSuperAdminSeesEverySection(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	out, err := h.run(t, "", "login", "--email", "root@zetra.io", "--password", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "* Dashboard (/admin-dashboard)") || !strings.Contains(out, "Database Integrity") {
		t.Fatalf("superadmin navigation incomplete:\n%s", out)
	}

	out, err = h.run(t, "mobile", "users", "list")
	if err != nil {
		t.Fatalf("users list: %v", err)
	}
	if strings.HasPrefix(out, "ID") || !strings.Contains(out, "root@zetra.io\n  SUPERADMIN") {
		t.Fatalf("expected compact user cards:\n%s", out)
	}

	out, err = h.run(t, "", "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if strings.TrimSpace(out) != "root@zetra.io (SUPERADMIN)" {
		t.Fatalf("unexpected whoami output %q", out)
	}
}

func TestSignedOutCommandsAskForLogin(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	if _, err := h.run(t, "", "stores", "list"); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("expected not signed in, got %v", err)
	}
	if _, err := h.run(t, "", "nav"); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("expected not signed in for nav, got %v", err)
	}
}

func TestBadPasswordIsReported(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	_, err := h.run(t, "", "login", "--email", "ops@zetra.io", "--password", "nope")
	if err == nil || err.Error() != "invalid email or password" {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	_, err = h.run(t, "", "login", "--email", "not-an-email", "--password", "secret")
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFailedRefreshRequiresLogin(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	if _, err := h.run(t, "", "login", "--email", "ops@zetra.io", "--password", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	h.backend.expired.Store(true)

	if _, err := h.run(t, "", "stores", "list"); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected login required, got %v", err)
	}
	if got := h.backend.refreshes.Load(); got != 1 {
		t.Fatalf("expected exactly one refresh, got %d", got)
	}

	stored, err := h.stored(t)
	if err != nil {
		t.Fatalf("read stored session: %v", err)
	}
	if !strings.Contains(stored, `"loginRequired":true`) || strings.Contains(stored, `"user"`) {
		t.Fatalf("session should require login: %s", stored)
	}
	if _, err := h.run(t, "", "stores", "list"); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("expected not signed in after expiry, got %v", err)
	}
}

func TestLogoutRemovesSessionFile(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	if _, err := h.run(t, "", "login", "--email", "ops@zetra.io", "--password", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, err := h.run(t, "", "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if strings.TrimSpace(out) != "Signed out" {
		t.Fatalf("unexpected logout output %q", out)
	}
	if h.backend.logouts.Load() != 1 {
		t.Fatalf("backend logout was not called")
	}
	if _, err := os.Stat(h.cfg.Session.File); !os.IsNotExist(err) {
		t.Fatalf("session file should be gone, stat err=%v", err)
	}
	if _, err := h.stored(t); !errors.Is(err, consolesvc.ErrSessionNotFound) {
		t.Fatalf("expected no stored session, got %v", err)
	}
}

func TestDeviceCommandClassifies(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	cases := []struct {
		name   string
		args   []string
		mode   string
		layout string
	}{
		{name: "phone", args: []string{"--width", "390", "--height", "844"}, mode: "mobile", layout: "mobile"},
		{name: "tablet portrait", args: []string{"--width", "800", "--height", "1200"}, mode: "mobile", layout: "tablet-portrait"},
		{name: "tablet landscape", args: []string{"--width", "1000", "--height", "700"}, mode: "desktop", layout: "tablet-landscape"},
		{name: "desktop", args: []string{"--width", "1440", "--height", "900"}, mode: "desktop", layout: "desktop"},
	}
	for _, tc := range cases {
		out, err := h.run(t, "", append([]string{"device"}, tc.args...)...)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		lines := strings.Split(out, "\n")
		if got := strings.Fields(lines[0]); len(got) != 2 || got[1] != tc.mode {
			t.Fatalf("%s: mode line %q", tc.name, lines[0])
		}
		if got := strings.Fields(lines[1]); len(got) != 2 || got[1] != tc.layout {
			t.Fatalf("%s: layout line %q", tc.name, lines[1])
		}
	}

	if _, err := h.run(t, "", "device", "--width", "0"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error for zero width, got %v", err)
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	if _, err := h.run(t, "", "bogus"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if _, err := h.run(t, "", "device", "--nope"); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error for unknown flag, got %v", err)
	}
	if _, err := New(h.cfg, Options{View: "tv"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage error for view, got %v", err)
	}

	out, err := h.run(t, "", "help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(out, "recycle-bin") || !strings.Contains(out, "serve") {
		t.Fatalf("usage misses commands:\n%s", out)
	}
}

func TestParseArgsAllowsFlagsAfterPositionals(t *testing.T) {
	t.Parallel()

	fs := newFlagSet("stores update")
	name := fs.String("name", "", "")
	positional, err := parseArgs(fs, []string{"s1", "--name", "Fresh", "extra"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *name != "Fresh" || len(positional) != 2 || positional[0] != "s1" || positional[1] != "extra" {
		t.Fatalf("unexpected parse result name=%q positional=%v", *name, positional)
	}
	if !visited(fs)["name"] {
		t.Fatalf("name flag should be marked as set")
	}
}

func TestMainExitCodes(t *testing.T) {
	t.Parallel()
	h := newCLIHarness(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	yaml := "api:\n  base_url: " + h.cfg.API.BaseURL + "\nsession:\n  file: " + h.cfg.Session.File + "\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := Main(context.Background(), []string{"--config", cfgPath, "device", "--width", "390", "--height", "844"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "mobile") {
		t.Fatalf("unexpected device output %q", stdout.String())
	}

	stderr.Reset()
	if code := Main(context.Background(), []string{"--config", cfgPath, "stores", "list"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1 when signed out, got %d", code)
	}
	if !strings.Contains(stderr.String(), "not signed in") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}

	if code := Main(context.Background(), []string{"--config", cfgPath, "--view", "tv", "device"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for bad view, got %d", code)
	}
}
