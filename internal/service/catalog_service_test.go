package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/domain"
	apperrors "github.com/shsakib002/e-comm/pkg/errors"
)

func newCatalogService() *catalogService {
	return NewCatalogService(seedCatalog().repositories(), zap.NewNop())
}

func TestListProducts_SearchAndStatus(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.ListProducts(ctx, "  tee ", "active")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p2", byName[0].ID)

	none, err := svc.ListProducts(ctx, "tee", "archived")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetProduct(t *testing.T) {
	svc := newCatalogService()

	p, err := svc.GetProduct(context.Background(), "p2")
	require.NoError(t, err)
	assert.True(t, p.HasVariants())

	_, err = svc.GetProduct(context.Background(), "p404")
	var notFound *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestCreateProduct_AssignsIDs(t *testing.T) {
	svc := newCatalogService()

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{
		Name:     "Desk Lamp",
		Category: "Home",
		Price:    45.0,
		Stock:    18,
		Status:   "Draft",
		Variants: []CreateVariantRequest{
			{Type: "Color", Value: "Black", Price: 45.0, Stock: 10},
			{Type: "Color", Value: "White", Price: 47.5, Stock: 8},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProductStatusDraft, p.Status)
	require.Len(t, p.Variants, 2)
	assert.NotEmpty(t, p.Variants[0].ID)
	assert.NotEqual(t, p.Variants[0].ID, p.Variants[1].ID)

	// the created product is immediately visible to the catalog
	got, err := svc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", got.Name)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := newCatalogService()

	valid := func() CreateProductRequest {
		return CreateProductRequest{
			Name:     "Desk Lamp",
			Category: "Home",
			Price:    45.0,
			Stock:    18,
			Status:   "Active",
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *CreateProductRequest)
		wantField string
	}{
		{"short name", func(r *CreateProductRequest) { r.Name = "ab" }, "name"},
		{"missing category", func(r *CreateProductRequest) { r.Category = " " }, "category"},
		{"zero price", func(r *CreateProductRequest) { r.Price = 0 }, "price"},
		{"negative stock", func(r *CreateProductRequest) { r.Stock = -1 }, "stock"},
		{"bad status", func(r *CreateProductRequest) { r.Status = "Live" }, "status"},
		{"bad variant type", func(r *CreateProductRequest) {
			r.Variants = []CreateVariantRequest{{Type: "Flavor", Value: "S", Price: 1}}
		}, "variants.type"},
		{"empty variant value", func(r *CreateProductRequest) {
			r.Variants = []CreateVariantRequest{{Type: "Size", Value: " ", Price: 1}}
		}, "variants.value"},
		{"zero variant price", func(r *CreateProductRequest) {
			r.Variants = []CreateVariantRequest{{Type: "Size", Value: "S", Price: 0}}
		}, "variants.price"},
		{"negative variant stock", func(r *CreateProductRequest) {
			r.Variants = []CreateVariantRequest{{Type: "Size", Value: "S", Price: 1, Stock: -2}}
		}, "variants.stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			_, err := svc.CreateProduct(context.Background(), req)

			var validationErr *apperrors.ErrValidation
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestOrderService(t *testing.T) {
	svc := NewOrderService(seedCatalog().repositories(), zap.NewNop())
	ctx := context.Background()

	all, err := svc.ListOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	fulfilled, err := svc.ListOrders(ctx, "fulfilled")
	require.NoError(t, err)
	require.Len(t, fulfilled, 1)
	assert.Equal(t, "ord-2", fulfilled[0].ID)

	o, err := svc.GetOrder(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "Ben Ortiz", o.CustomerName)

	_, err = svc.GetOrder(ctx, "ord-404")
	var notFound *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}
