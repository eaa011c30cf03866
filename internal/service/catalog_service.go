package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/domain"
	"github.com/shsakib002/e-comm/internal/repository"
	"github.com/shsakib002/e-comm/pkg/errors"
)

type catalogService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repos *repository.Repositories, logger *zap.Logger) *catalogService {
	return &catalogService{
		repos:  repos,
		logger: logger,
	}
}

// ListProducts returns products matching the search term and status tab.
func (s *catalogService) ListProducts(ctx context.Context, query, status string) ([]domain.Product, error) {
	return s.repos.Product.List(ctx, repository.ProductFilter{
		Query:  strings.TrimSpace(query),
		Status: status,
	})
}

// GetProduct returns one product with its variants.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repos.Product.GetByID(ctx, id)
}

// CreateProduct validates the create form, assigns IDs and stores the
// product in the in-memory catalog.
func (s *catalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if len(strings.TrimSpace(req.Name)) < 3 {
		return nil, &errors.ErrValidation{Field: "name", Message: "product name must be at least 3 characters"}
	}
	if len(strings.TrimSpace(req.Category)) < 2 {
		return nil, &errors.ErrValidation{Field: "category", Message: "category is required"}
	}
	if req.Price <= 0 {
		return nil, &errors.ErrValidation{Field: "price", Message: "price must be a positive number"}
	}
	if req.Stock < 0 {
		return nil, &errors.ErrValidation{Field: "stock", Message: "stock cannot be negative"}
	}
	status := domain.ProductStatus(req.Status)
	if !status.IsValid() {
		return nil, &errors.ErrValidation{Field: "status", Message: "unknown product status"}
	}

	variants := make([]domain.Variant, 0, len(req.Variants))
	for _, v := range req.Variants {
		variantType := domain.VariantType(v.Type)
		if !variantType.IsValid() {
			return nil, &errors.ErrValidation{Field: "variants.type", Message: "unknown variant type"}
		}
		if strings.TrimSpace(v.Value) == "" {
			return nil, &errors.ErrValidation{Field: "variants.value", Message: "value is required"}
		}
		if v.Price <= 0 {
			return nil, &errors.ErrValidation{Field: "variants.price", Message: "price must be a positive number"}
		}
		if v.Stock < 0 {
			return nil, &errors.ErrValidation{Field: "variants.stock", Message: "stock cannot be negative"}
		}
		variants = append(variants, domain.Variant{
			ID:    "var_" + uuid.New().String(),
			Type:  variantType,
			Value: v.Value,
			Price: v.Price,
			Stock: v.Stock,
		})
	}

	product := &domain.Product{
		ID:          "prod_" + uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Status:      status,
		Description: req.Description,
		Image:       req.Image,
		Variants:    variants,
	}

	if err := s.repos.Product.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
