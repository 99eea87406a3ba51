package filestate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportSink writes exports into a local directory when no bucket is configured.
type ExportSink struct {
	dir string
}

func NewExportSink(dir string) *ExportSink {
	return &ExportSink{dir: dir}
}

func (s *ExportSink) Store(_ context.Context, name string, _ string, data []byte) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("export name is empty")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.dir, base)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
