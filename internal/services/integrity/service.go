package integrity

import (
	"context"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.DatabaseConstraint, error)
}

type Report struct {
	Items   []model.DatabaseConstraint
	OK      int
	Warning int
	Error   int
}

func (r Report) Healthy() bool {
	return r.Warning == 0 && r.Error == 0
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Constraints(ctx context.Context) (Report, error) {
	if s.repo == nil {
		return Report{}, nil
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{Items: items}
	for _, item := range items {
		switch item.Status {
		case enums.ConstraintStatusOK:
			report.OK++
		case enums.ConstraintStatusWarning:
			report.Warning++
		default:
			report.Error++
		}
	}
	return report, nil
}
