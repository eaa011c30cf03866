package domain

// ProductStatus represents a product's lifecycle status
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "Active"
	ProductStatusDraft    ProductStatus = "Draft"
	ProductStatusArchived ProductStatus = "Archived"
)

// IsValid checks if the product status is valid
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusDraft, ProductStatusArchived:
		return true
	default:
		return false
	}
}

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusFulfilled OrderStatus = "Fulfilled"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	if s == newStatus {
		return true
	}
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusFulfilled || newStatus == OrderStatusCancelled
	case OrderStatusFulfilled, OrderStatusCancelled:
		return false // Terminal states
	default:
		return false
	}
}

// VariantType is the dimension a variant varies along
type VariantType string

const (
	VariantTypeSize     VariantType = "Size"
	VariantTypeColor    VariantType = "Color"
	VariantTypeMaterial VariantType = "Material"
	VariantTypeLayout   VariantType = "Layout"
)

// IsValid checks if the variant type is valid
func (t VariantType) IsValid() bool {
	switch t {
	case VariantTypeSize, VariantTypeColor, VariantTypeMaterial, VariantTypeLayout:
		return true
	default:
		return false
	}
}
