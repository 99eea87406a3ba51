package filestate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
)

func TestSessionRepoPersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "session.json")
	ctx := context.Background()

	session := model.ConsoleSession{
		ID:      "cli",
		User:    &model.SessionUser{ID: "u1", Email: "ops@x.io", Role: enums.RoleAdmin},
		Cookies: []model.StoredCookie{{Name: "admin_token", Value: "v1"}},
	}
	if err := NewSessionRepo(path).Save(ctx, session, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("session file should be private, got %v", info.Mode().Perm())
	}

	got, err := NewSessionRepo(path).Get(ctx, "cli")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.User == nil || got.User.Email != "ops@x.io" || got.Cookies[0].Value != "v1" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if _, err := NewSessionRepo(path).Get(ctx, "other"); !errors.Is(err, consolesvc.ErrSessionNotFound) {
		t.Fatalf("expected not found for other id, got %v", err)
	}

	current, err := NewSessionRepo(path).Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.ID != "cli" {
		t.Fatalf("unexpected current session: %+v", current)
	}
}

func TestSessionRepoExpiryAndDelete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	repo := NewSessionRepo(path)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := repo.Get(ctx, "cli"); !errors.Is(err, consolesvc.ErrSessionNotFound) {
		t.Fatalf("missing file should be not found, got %v", err)
	}
	if err := repo.Save(ctx, model.ConsoleSession{ID: "cli"}, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := repo.Get(ctx, "cli"); !errors.Is(err, consolesvc.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}

	if err := repo.Delete(ctx, "cli"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "cli"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
}
