package analytics

import (
	"context"
	"errors"
	"sort"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

var ErrNotInitialized = errors.New("analytics service is not initialized")

type Repo interface {
	Dashboard(ctx context.Context) (model.Dashboard, error)
}

// Summary is the dashboard plus the figures the pages derive from it.
type Summary struct {
	model.Dashboard
	AverageRevenuePerStore float64
	ActiveShare            float64
	BestMonth              *model.MonthlyRevenue
}

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (Summary, error) {
	if s.repo == nil {
		return Summary{}, ErrNotInitialized
	}
	dashboard, err := s.repo.Dashboard(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(dashboard), nil
}

func Summarize(dashboard model.Dashboard) Summary {
	summary := Summary{Dashboard: dashboard}
	if dashboard.TotalStores > 0 {
		summary.AverageRevenuePerStore = dashboard.TotalRevenue / float64(dashboard.TotalStores)
		summary.ActiveShare = float64(dashboard.TotalActiveSubscriptions) / float64(dashboard.TotalStores)
	}
	for i := range dashboard.MonthlyRevenue {
		month := dashboard.MonthlyRevenue[i]
		if summary.BestMonth == nil || month.Revenue > summary.BestMonth.Revenue {
			summary.BestMonth = &month
		}
	}

	top := append([]model.TopStore(nil), dashboard.TopStores...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Revenue > top[j].Revenue })
	summary.TopStores = top
	return summary
}
