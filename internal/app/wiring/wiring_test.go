package wiring

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/config"
	s3infra "github.com/Taha-Raees/zetratech-front/internal/infra/s3"
	"github.com/Taha-Raees/zetratech-front/internal/repo/adminhttp"
	"github.com/Taha-Raees/zetratech-front/internal/repo/filestate"
)

func TestExportSinkFallsBackToDisk(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Session.File = filepath.Join(t.TempDir(), "session.json")

	if _, ok := ExportSink(cfg, zap.NewNop()).(*filestate.ExportSink); !ok {
		t.Fatalf("expected disk sink without s3 config")
	}
	if got := ExportDir(cfg); got != filepath.Join(filepath.Dir(cfg.Session.File), "exports") {
		t.Fatalf("unexpected export dir: %s", got)
	}

	cfg.S3.Endpoint = "localhost:9000"
	cfg.S3.Bucket = "exports"
	if _, ok := ExportSink(cfg, zap.NewNop()).(*s3infra.Archive); !ok {
		t.Fatalf("expected bucket archive when s3 is configured")
	}
}

func TestNewServicesBindsEveryService(t *testing.T) {
	t.Parallel()

	client, err := adminhttp.NewClient(adminhttp.Options{BaseURL: "http://localhost:3001"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	services := NewServices(Dependencies{Client: client})
	if services.Auth == nil || services.Stores == nil || services.Subscriptions == nil || services.Users == nil ||
		services.Packages == nil || services.Analytics == nil || services.Integrity == nil ||
		services.RecycleBin == nil || services.Audit == nil || services.Catalog == nil || services.Overview == nil {
		t.Fatalf("service left unbound: %+v", services)
	}
}
