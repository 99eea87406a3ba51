package wiring

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/config"
	s3infra "github.com/Taha-Raees/zetratech-front/internal/infra/s3"
	"github.com/Taha-Raees/zetratech-front/internal/repo/filestate"
	auditsvc "github.com/Taha-Raees/zetratech-front/internal/services/audit"
)

// ExportSink archives audit exports in the configured bucket, or next to the
// console session file when no bucket is set.
func ExportSink(cfg config.Config, log *zap.Logger) auditsvc.ArchiveSink {
	local := filestate.NewExportSink(ExportDir(cfg))
	if !cfg.S3.Enabled() {
		return local
	}

	archive, err := s3infra.NewArchive(s3infra.Config{
		Endpoint:   cfg.S3.Endpoint,
		AccessKey:  cfg.S3.AccessKey,
		SecretKey:  cfg.S3.SecretKey,
		Bucket:     cfg.S3.Bucket,
		UseSSL:     cfg.S3.UseSSL,
		PresignTTL: cfg.S3.PresignTTL,
	})
	if err != nil {
		if log != nil {
			log.Warn("s3 init failed, exports stay on disk", zap.Error(err))
		}
		return local
	}
	return archive
}

func ExportDir(cfg config.Config) string {
	return filepath.Join(filepath.Dir(cfg.Session.File), "exports")
}
