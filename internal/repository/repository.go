package repository

import (
	"context"

	"github.com/shsakib002/e-comm/internal/domain"
)

// ProductFilter narrows a product listing. Query is a case-insensitive
// substring match on the product name; Status "" or "all" matches every
// lifecycle status.
type ProductFilter struct {
	Query  string
	Status string
}

// OrderFilter narrows an order listing by status; "" or "all" matches all.
type OrderFilter struct {
	Status string
}

// ProductRepository provides read access to the product catalog plus
// in-memory creation for the back-office create flow.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

// OrderRepository provides read access to stored orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
}

// DashboardRepository provides the precomputed dashboard series.
type DashboardRepository interface {
	Stats(ctx context.Context) ([]domain.Stat, error)
	RecentSales(ctx context.Context) ([]domain.RecentSale, error)
	RevenueOverview(ctx context.Context) ([]domain.RevenueData, error)
	TopProducts(ctx context.Context) ([]domain.TopProduct, error)
}

// Repositories bundles the data-source interfaces handed to services. The
// fixture store implements all of them today; a real backend can implement
// the same interfaces without touching the callers.
type Repositories struct {
	Product   ProductRepository
	Order     OrderRepository
	Dashboard DashboardRepository
}
