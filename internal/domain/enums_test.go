package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusFulfilled.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.False(t, OrderStatus("Shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusFulfilled, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, true},
		{OrderStatusFulfilled, OrderStatusPending, false},
		{OrderStatusFulfilled, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusFulfilled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestProductStatusIsValid(t *testing.T) {
	assert.True(t, ProductStatusActive.IsValid())
	assert.True(t, ProductStatusDraft.IsValid())
	assert.True(t, ProductStatusArchived.IsValid())
	assert.False(t, ProductStatus("Live").IsValid())
}

func TestVariantTypeIsValid(t *testing.T) {
	assert.True(t, VariantTypeSize.IsValid())
	assert.True(t, VariantTypeLayout.IsValid())
	assert.False(t, VariantType("Flavor").IsValid())
}

func TestFindVariant(t *testing.T) {
	p := &Product{
		ID: "p9",
		Variants: []Variant{
			{ID: "v1", Type: VariantTypeColor, Value: "Blue", Price: 9.99},
			{ID: "v2", Type: VariantTypeColor, Value: "Red", Price: 10.99},
		},
	}

	v := p.FindVariant("v2")
	assert.NotNil(t, v)
	assert.Equal(t, "Red", v.Value)
	assert.Nil(t, p.FindVariant("v3"))
	assert.True(t, p.HasVariants())
	assert.False(t, (&Product{ID: "p0"}).HasVariants())
}
