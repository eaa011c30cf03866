package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/repository"
)

type dashboardService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos *repository.Repositories, logger *zap.Logger) *dashboardService {
	return &dashboardService{
		repos:  repos,
		logger: logger,
	}
}

// Summary assembles everything the dashboard page renders: stat tiles,
// recent sales, the revenue-versus-goal series, and the top sellers with
// their progress share relative to the best one.
func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	stats, err := s.repos.Dashboard.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recentSales, err := s.repos.Dashboard.RecentSales(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repos.Dashboard.RevenueOverview(ctx)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.repos.Dashboard.TopProducts(ctx)
	if err != nil {
		return nil, err
	}

	// the series is stored best-seller first
	maxSales := 0
	if len(topProducts) > 0 {
		maxSales = topProducts[0].Sales
	}

	topViews := make([]TopProductView, len(topProducts))
	for i, p := range topProducts {
		view := TopProductView{
			Name:  p.Name,
			Sales: p.Sales,
			Fill:  p.Fill,
		}
		if maxSales > 0 {
			view.Percent = float64(p.Sales) / float64(maxSales) * 100
		}
		topViews[i] = view
	}

	return &DashboardSummary{
		Stats:            stats,
		RecentSales:      recentSales,
		RecentSalesCount: len(recentSales),
		RevenueOverview:  revenue,
		TopProducts:      topViews,
	}, nil
}
