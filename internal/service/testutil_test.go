package service

import (
	"context"
	"strings"

	"github.com/shsakib002/e-comm/internal/domain"
	"github.com/shsakib002/e-comm/internal/repository"
	apperrors "github.com/shsakib002/e-comm/pkg/errors"
)

// stubRepos is a slice-backed implementation of the repository interfaces,
// seeded per test.
type stubRepos struct {
	products    []domain.Product
	orders      []domain.Order
	stats       []domain.Stat
	recentSales []domain.RecentSale
	revenue     []domain.RevenueData
	topProducts []domain.TopProduct
}

func (s *stubRepos) repositories() *repository.Repositories {
	return &repository.Repositories{
		Product:   (*stubProductRepo)(s),
		Order:     (*stubOrderRepo)(s),
		Dashboard: (*stubDashboardRepo)(s),
	}
}

type stubProductRepo stubRepos

func (r *stubProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "product", ID: id}
}

func (r *stubProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if filter.Status != "" && !strings.EqualFold(filter.Status, "all") &&
			!strings.EqualFold(filter.Status, string(p.Status)) {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Query)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) Create(ctx context.Context, product *domain.Product) error {
	r.products = append(r.products, *product)
	return nil
}

type stubOrderRepo stubRepos

func (r *stubOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "order", ID: id}
}

func (r *stubOrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if filter.Status != "" && !strings.EqualFold(filter.Status, "all") &&
			!strings.EqualFold(filter.Status, string(o.Status)) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

type stubDashboardRepo stubRepos

func (r *stubDashboardRepo) Stats(ctx context.Context) ([]domain.Stat, error) {
	return r.stats, nil
}

func (r *stubDashboardRepo) RecentSales(ctx context.Context) ([]domain.RecentSale, error) {
	return r.recentSales, nil
}

func (r *stubDashboardRepo) RevenueOverview(ctx context.Context) ([]domain.RevenueData, error) {
	return r.revenue, nil
}

func (r *stubDashboardRepo) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	return r.topProducts, nil
}

func seedCatalog() *stubRepos {
	return &stubRepos{
		products: []domain.Product{
			{
				ID: "p1", Name: "Canvas Tote", Category: "Accessories",
				Price: 20.00, Stock: 40, Status: domain.ProductStatusActive,
			},
			{
				ID: "p2", Name: "Logo Tee", Category: "Apparel",
				Price: 10.00, Status: domain.ProductStatusActive,
				Variants: []domain.Variant{
					{ID: "v1", Type: domain.VariantTypeSize, Value: "Medium", Price: 12.50, Stock: 12},
					{ID: "v2", Type: domain.VariantTypeSize, Value: "Large", Price: 13.50, Stock: 7},
				},
			},
		},
		orders: []domain.Order{
			{
				ID: "ord-1", CustomerName: "Ben Ortiz", CustomerEmail: "ben@example.com",
				Date: "2025-11-02", Status: domain.OrderStatusPending,
				Items: []domain.OrderItem{
					{ProductID: "p1", ProductName: "Canvas Tote", Quantity: 1, Price: 20.00},
				},
				PaymentMethod: "PayPal",
				Subtotal:      20.00, Shipping: 5.00, Tax: 2.00, Total: 27.00,
			},
			{
				ID: "ord-2", CustomerName: "Ava Chen", CustomerEmail: "ava@example.com",
				Date: "2025-10-20", Status: domain.OrderStatusFulfilled,
				Items: []domain.OrderItem{
					{ProductID: "p2", ProductName: "Logo Tee", Quantity: 2, Price: 12.50, VariantType: "Size", VariantValue: "Medium"},
				},
				Subtotal: 25.00, Shipping: 15.00, Tax: 2.50, Total: 42.50,
			},
		},
	}
}
