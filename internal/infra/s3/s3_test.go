package s3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewArchiveValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewArchive(Config{Endpoint: "localhost:9000"}); err == nil {
		t.Fatalf("expected error for missing bucket")
	}
	if _, err := NewArchive(Config{Bucket: "exports"}); err == nil {
		t.Fatalf("expected error for missing endpoint")
	}
}

func TestArchivePresignGetIsSigned(t *testing.T) {
	t.Parallel()

	archive, err := NewArchive(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "exports",
	})
	if err != nil {
		t.Fatalf("new archive: %v", err)
	}

	link, err := archive.PresignGet(context.Background(), "audit-exports/a.csv", time.Minute)
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if !strings.Contains(link, "/exports/audit-exports/a.csv") || !strings.Contains(link, "X-Amz-Signature=") {
		t.Fatalf("unexpected presigned url: %s", link)
	}
}

func TestArchiveStoreUploadsUnderExportPrefix(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method: %s", r.Method)
		}
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	archive, err := NewArchive(Config{
		Endpoint:  strings.TrimPrefix(server.URL, "http://"),
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "exports",
	})
	if err != nil {
		t.Fatalf("new archive: %v", err)
	}

	link, err := archive.Store(context.Background(), "audit-logs-2024-05-01.csv", "text/csv", []byte("id\n1\n"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if gotPath != "/exports/audit-exports/audit-logs-2024-05-01.csv" {
		t.Fatalf("unexpected object path: %s", gotPath)
	}
	if !strings.Contains(link, "audit-exports/audit-logs-2024-05-01.csv") {
		t.Fatalf("unexpected link: %s", link)
	}
}
