package service

import (
	"github.com/shsakib002/e-comm/internal/domain"
)

// CreateProductRequest is the product create form payload.
type CreateProductRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category" binding:"required"`
	Price       float64                `json:"price" binding:"required"`
	Stock       int                    `json:"stock"`
	Status      string                 `json:"status" binding:"required"`
	Image       string                 `json:"image"`
	Variants    []CreateVariantRequest `json:"variants"`
}

// CreateVariantRequest is one variant row of the product create form.
type CreateVariantRequest struct {
	Type  string  `json:"type" binding:"required"`
	Value string  `json:"value" binding:"required"`
	Price float64 `json:"price" binding:"required"`
	Stock int     `json:"stock"`
}

// CreateDraftRequest opens a composer session. OrderID seeds the draft from
// a stored order (edit flow); empty means a fresh draft.
type CreateDraftRequest struct {
	OrderID string `json:"order_id"`
}

// AddItemRequest adds one line to a draft. VariantID is required when the
// product carries variants.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// SetShippingRequest replaces a draft's shipping charge.
type SetShippingRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// SubmitOrderRequest finalizes a draft into an order bundle.
type SubmitOrderRequest struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Status        string `json:"status"`
	Street        string `json:"street" binding:"required"`
	City          string `json:"city" binding:"required"`
	ZipCode       string `json:"zip_code" binding:"required"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

// DraftView is the client-facing snapshot of a composer session. Clients
// rebuild their pending product/variant selection from scratch after every
// successful mutation, so the full item list and totals come back each time.
type DraftView struct {
	ID        string             `json:"id"`
	OrderID   string             `json:"orderId,omitempty"`
	Items     []domain.OrderItem `json:"items"`
	Totals    domain.Totals      `json:"totals"`
	Submitted bool               `json:"submitted"`
}

// DashboardSummary bundles every projection the dashboard page renders.
type DashboardSummary struct {
	Stats            []domain.Stat        `json:"stats"`
	RecentSales      []domain.RecentSale  `json:"recentSales"`
	RecentSalesCount int                  `json:"recentSalesCount"`
	RevenueOverview  []domain.RevenueData `json:"revenueOverview"`
	TopProducts      []TopProductView     `json:"topProducts"`
}

// TopProductView is a top-seller entry with its progress share relative to
// the best seller.
type TopProductView struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Fill    string  `json:"fill"`
	Percent float64 `json:"percent"`
}
