package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("audit service is not initialized")

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Repo interface {
	Logs(ctx context.Context, filter model.AuditFilter) ([]model.AuditLog, error)
	EntityLogs(ctx context.Context, entityType, entityID string, limit int) ([]model.AuditLog, error)
	Users(ctx context.Context) ([]model.User, error)
	EntityTypes(ctx context.Context) ([]string, error)
	Actions(ctx context.Context) ([]string, error)
	Export(ctx context.Context, params model.AuditExportParams) (model.ExportDocument, error)
}

// ArchiveSink keeps an exported document and returns where it can be fetched.
type ArchiveSink interface {
	Store(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

type ExportResult struct {
	Name        string
	ContentType string
	Size        int
	Location    string
	Data        []byte
}

type Service struct {
	repo      Repo
	sink      ArchiveSink
	validator *validate.Validator
	now       func() time.Time
}

func NewService(repo Repo, sink ArchiveSink) *Service {
	return &Service{
		repo:      repo,
		sink:      sink,
		validator: validate.New(),
		now:       time.Now,
	}
}

func (s *Service) Logs(ctx context.Context, filter model.AuditFilter) ([]model.AuditLog, error) {
	if s.repo == nil {
		return []model.AuditLog{}, nil
	}
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.Logs(ctx, filter)
}

func (s *Service) EntityLogs(ctx context.Context, entityType, entityID string, limit int) ([]model.AuditLog, error) {
	if s.repo == nil {
		return []model.AuditLog{}, nil
	}
	entityType, err := s.validator.ID("entityType", entityType)
	if err != nil {
		return nil, err
	}
	entityID, err = s.validator.ID("entityId", entityID)
	if err != nil {
		return nil, err
	}
	return s.repo.EntityLogs(ctx, entityType, entityID, clampLimit(limit))
}

func (s *Service) Users(ctx context.Context) ([]model.User, error) {
	if s.repo == nil {
		return []model.User{}, nil
	}
	return s.repo.Users(ctx)
}

func (s *Service) EntityTypes(ctx context.Context) ([]string, error) {
	if s.repo == nil {
		return []string{}, nil
	}
	return s.repo.EntityTypes(ctx)
}

func (s *Service) Actions(ctx context.Context) ([]string, error) {
	if s.repo == nil {
		return []string{}, nil
	}
	return s.repo.Actions(ctx)
}

// Export fetches the export from the API and hands it to the sink when one is set.
func (s *Service) Export(ctx context.Context, params model.AuditExportParams) (ExportResult, error) {
	if s.repo == nil {
		return ExportResult{}, ErrNotInitialized
	}
	if params.Format == "" {
		params.Format = enums.ExportFormatCSV
	}
	if err := s.validator.Struct(params); err != nil {
		return ExportResult{}, err
	}

	doc, err := s.repo.Export(ctx, params)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{
		Name:        fmt.Sprintf("audit-logs-%s.%s", s.now().UTC().Format("2006-01-02"), params.Format.Extension()),
		ContentType: doc.ContentType,
		Size:        len(doc.Data),
		Data:        doc.Data,
	}
	if s.sink == nil {
		return result, nil
	}

	location, err := s.sink.Store(ctx, result.Name, result.ContentType, doc.Data)
	if err != nil {
		return ExportResult{}, fmt.Errorf("archive audit export: %w", err)
	}
	result.Location = location
	return result, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
