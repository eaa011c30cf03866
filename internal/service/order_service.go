package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/domain"
	"github.com/shsakib002/e-comm/internal/repository"
)

type orderService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repos *repository.Repositories, logger *zap.Logger) *orderService {
	return &orderService{
		repos:  repos,
		logger: logger,
	}
}

// ListOrders returns stored orders, filtered by the status tab.
func (s *orderService) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	return s.repos.Order.List(ctx, repository.OrderFilter{Status: status})
}

// GetOrder returns one stored order.
func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repos.Order.GetByID(ctx, id)
}
