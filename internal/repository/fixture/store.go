package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/domain"
	"github.com/shsakib002/e-comm/internal/repository"
	"github.com/shsakib002/e-comm/pkg/errors"
)

// dataset mirrors the layout of the static JSON fixture file.
type dataset struct {
	Stats           []domain.Stat        `json:"stats"`
	RecentSales     []domain.RecentSale  `json:"recentSales"`
	RevenueData     []domain.RevenueData `json:"revenueData"`
	TopProductsData []domain.TopProduct  `json:"topProductsData"`
	Products        []domain.Product     `json:"products"`
	Orders          []domain.Order       `json:"orders"`
}

// Store is the read-only fixture standing in for a real backend. Products
// created at runtime live only in memory; nothing is written back to disk.
type Store struct {
	mu     sync.RWMutex
	data   dataset
	logger *zap.Logger
}

// Load reads and parses the fixture file at path.
func Load(path string, logger *zap.Logger) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var data dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}

	s := &Store{data: data, logger: logger}
	if problems := s.Verify(); len(problems) > 0 {
		for _, p := range problems {
			logger.Warn("fixture integrity problem", zap.String("problem", p))
		}
	}

	logger.Info("fixture loaded",
		zap.String("path", path),
		zap.Int("products", len(data.Products)),
		zap.Int("orders", len(data.Orders)),
	)

	return s, nil
}

// NewRepositories wires the store behind the repository interfaces.
func NewRepositories(s *Store) *repository.Repositories {
	return &repository.Repositories{
		Product:   productRepo{s},
		Order:     orderRepo{s},
		Dashboard: s,
	}
}

// productRepo and orderRepo adapt the store's named methods onto the
// repository interfaces, which both use GetByID/List.
type productRepo struct{ s *Store }

func (r productRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.s.ProductByID(ctx, id)
}

func (r productRepo) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return r.s.ListProducts(ctx, filter)
}

func (r productRepo) Create(ctx context.Context, product *domain.Product) error {
	return r.s.CreateProduct(ctx, product)
}

type orderRepo struct{ s *Store }

func (r orderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.s.OrderByID(ctx, id)
}

func (r orderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	return r.s.ListOrders(ctx, filter)
}

// Verify checks the fixture's internal consistency and returns a human
// readable description of every violation found:
//   - duplicate product IDs
//   - duplicate variant IDs within one product
//   - unknown product status, order status, or variant type values
//   - stored order totals that contradict their own items and shipping
func (s *Store) Verify() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var problems []string

	productIDs := make(map[string]bool)
	for _, p := range s.data.Products {
		if productIDs[p.ID] {
			problems = append(problems, fmt.Sprintf("duplicate product id %q", p.ID))
		}
		productIDs[p.ID] = true

		if !p.Status.IsValid() {
			problems = append(problems, fmt.Sprintf("product %q has unknown status %q", p.ID, p.Status))
		}

		variantIDs := make(map[string]bool)
		for _, v := range p.Variants {
			if variantIDs[v.ID] {
				problems = append(problems, fmt.Sprintf("product %q has duplicate variant id %q", p.ID, v.ID))
			}
			variantIDs[v.ID] = true
			if !v.Type.IsValid() {
				problems = append(problems, fmt.Sprintf("product %q variant %q has unknown type %q", p.ID, v.ID, v.Type))
			}
		}
	}

	orderIDs := make(map[string]bool)
	for _, o := range s.data.Orders {
		if orderIDs[o.ID] {
			problems = append(problems, fmt.Sprintf("duplicate order id %q", o.ID))
		}
		orderIDs[o.ID] = true

		if !o.Status.IsValid() {
			problems = append(problems, fmt.Sprintf("order %q has unknown status %q", o.ID, o.Status))
		}

		subtotal := 0.0
		for _, item := range o.Items {
			subtotal += item.Price * float64(item.Quantity)
		}
		tax := subtotal * domain.TaxRate
		total := subtotal + tax + o.Shipping
		if !centsEqual(subtotal, o.Subtotal) {
			problems = append(problems, fmt.Sprintf("order %q stored subtotal %.2f does not match items (%.2f)", o.ID, o.Subtotal, subtotal))
		}
		if !centsEqual(tax, o.Tax) {
			problems = append(problems, fmt.Sprintf("order %q stored tax %.2f does not match subtotal (%.2f)", o.ID, o.Tax, tax))
		}
		if !centsEqual(total, o.Total) {
			problems = append(problems, fmt.Sprintf("order %q stored total %.2f does not match subtotal+tax+shipping (%.2f)", o.ID, o.Total, total))
		}
	}

	return problems
}

func centsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

// ProductByID returns the product with the given ID.
func (s *Store) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Products {
		if s.data.Products[i].ID == id {
			p := cloneProduct(s.data.Products[i])
			return &p, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "product", ID: id}
}

// ListProducts returns the products matching the filter, in fixture order.
func (s *Store) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	products := make([]domain.Product, 0, len(s.data.Products))
	for _, p := range s.data.Products {
		if !statusMatches(filter.Status, string(p.Status)) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		products = append(products, cloneProduct(p))
	}
	return products, nil
}

// CreateProduct appends a product to the in-memory catalog.
func (s *Store) CreateProduct(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Products {
		if s.data.Products[i].ID == product.ID {
			return &errors.ErrValidation{Field: "id", Message: "product id already exists"}
		}
	}

	s.data.Products = append(s.data.Products, cloneProduct(*product))
	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("variants", len(product.Variants)),
	)
	return nil
}

// OrderByID returns the order with the given ID.
func (s *Store) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Orders {
		if s.data.Orders[i].ID == id {
			o := cloneOrder(s.data.Orders[i])
			return &o, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: id}
}

// ListOrders returns the orders matching the filter, in fixture order.
func (s *Store) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.data.Orders))
	for _, o := range s.data.Orders {
		if !statusMatches(filter.Status, string(o.Status)) {
			continue
		}
		orders = append(orders, cloneOrder(o))
	}
	return orders, nil
}

// Stats returns the dashboard stat tiles.
func (s *Store) Stats(ctx context.Context) ([]domain.Stat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Stat(nil), s.data.Stats...), nil
}

// RecentSales returns the dashboard recent sales list.
func (s *Store) RecentSales(ctx context.Context) ([]domain.RecentSale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RecentSale(nil), s.data.RecentSales...), nil
}

// RevenueOverview returns the monthly revenue-versus-goal series.
func (s *Store) RevenueOverview(ctx context.Context) ([]domain.RevenueData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RevenueData(nil), s.data.RevenueData...), nil
}

// TopProducts returns the top-selling products series.
func (s *Store) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TopProduct(nil), s.data.TopProductsData...), nil
}

// statusMatches compares a filter status against a record status the way
// the dashboard tabs do: case-insensitive, with "" and "all" matching
// everything.
func statusMatches(filter, status string) bool {
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return strings.EqualFold(filter, status)
}

func cloneProduct(p domain.Product) domain.Product {
	p.Variants = append([]domain.Variant(nil), p.Variants...)
	return p
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return o
}
