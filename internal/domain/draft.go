package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/shsakib002/e-comm/pkg/errors"
)

const (
	// TaxRate is the flat tax rate applied to the order subtotal.
	TaxRate = 0.10

	// DefaultShipping is the shipping charge on a freshly created draft.
	// An edited order keeps whatever shipping it was stored with.
	DefaultShipping = 15.00
)

// Totals are the derived monetary fields of a draft. They are recomputed
// from the line items and shipping after every mutation and are never set
// directly, so they cannot drift from the items they summarize.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Draft is an in-memory order being composed or edited. It owns the
// authoritative line-item list and shipping figure for one order and keeps
// the totals continuously consistent with them. A draft is single-owner:
// it performs no I/O and is not safe for concurrent use.
type Draft struct {
	ID        string
	items     []OrderItem
	totals    Totals
	submitted bool

	// set when the draft edits an existing order
	sourceOrderID string
	sourceStatus  OrderStatus
}

// NewDraft creates an empty draft with the default shipping charge.
func NewDraft() *Draft {
	d := &Draft{
		ID:     uuid.New().String(),
		totals: Totals{Shipping: DefaultShipping},
	}
	d.recompute()
	return d
}

// DraftFromOrder seeds a draft from a stored order (the edit flow).
// Items and shipping are copied from the order's snapshot; stored lines
// without a line ID get one assigned.
func DraftFromOrder(order *Order) *Draft {
	items := make([]OrderItem, len(order.Items))
	copy(items, order.Items)
	for i := range items {
		if items[i].LineID == "" {
			items[i].LineID = uuid.New().String()
		}
	}

	d := &Draft{
		ID:            uuid.New().String(),
		items:         items,
		totals:        Totals{Shipping: order.Shipping},
		sourceOrderID: order.ID,
		sourceStatus:  order.Status,
	}
	d.recompute()
	return d
}

// Items returns a copy of the current line items.
func (d *Draft) Items() []OrderItem {
	items := make([]OrderItem, len(d.items))
	copy(items, d.items)
	return items
}

// Totals returns the current derived totals.
func (d *Draft) Totals() Totals {
	return d.totals
}

// Submitted reports whether the draft has been finalized.
func (d *Draft) Submitted() bool {
	return d.submitted
}

// SourceOrderID returns the ID of the order being edited, or "" for a
// fresh draft.
func (d *Draft) SourceOrderID() string {
	return d.sourceOrderID
}

// AddItem appends a line-item snapshot for the given product selection and
// recomputes the totals. The unit price is the variant's price when a
// variant is given, otherwise the product's base price. Precondition
// failures leave the draft unchanged:
//   - product is nil
//   - the product has variants but no variant was chosen
//   - quantity is not a positive integer
func (d *Draft) AddItem(product *Product, variant *Variant, quantity int) (Totals, error) {
	if d.submitted {
		return d.totals, &errors.ErrDraftSubmitted{DraftID: d.ID}
	}
	if product == nil {
		return d.totals, &errors.ErrMissingProduct{}
	}
	if product.HasVariants() && variant == nil {
		return d.totals, &errors.ErrVariantRequired{ProductID: product.ID}
	}
	if quantity < 1 {
		return d.totals, &errors.ErrInvalidQuantity{Quantity: quantity}
	}

	item := OrderItem{
		LineID:      uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price,
	}
	if variant != nil {
		item.Price = variant.Price
		item.VariantType = string(variant.Type)
		item.VariantValue = variant.Value
	}

	d.items = append(d.items, item)
	d.recompute()
	return d.totals, nil
}

// RemoveItem deletes every line whose (productID, variantValue) pair
// matches and recomputes the totals. variantValue "" means a line with no
// variant. Removing a pair that is not present is a no-op.
func (d *Draft) RemoveItem(productID, variantValue string) (Totals, error) {
	if d.submitted {
		return d.totals, &errors.ErrDraftSubmitted{DraftID: d.ID}
	}

	kept := d.items[:0]
	for _, item := range d.items {
		if item.ProductID == productID && item.VariantValue == variantValue {
			continue
		}
		kept = append(kept, item)
	}
	d.items = kept
	d.recompute()
	return d.totals, nil
}

// RemoveLine deletes the single line with the given line ID and recomputes
// the totals. Unknown line IDs are a no-op.
func (d *Draft) RemoveLine(lineID string) (Totals, error) {
	if d.submitted {
		return d.totals, &errors.ErrDraftSubmitted{DraftID: d.ID}
	}

	kept := d.items[:0]
	for _, item := range d.items {
		if item.LineID == lineID {
			continue
		}
		kept = append(kept, item)
	}
	d.items = kept
	d.recompute()
	return d.totals, nil
}

// SetShipping replaces the shipping charge and recomputes the total.
// Negative amounts are rejected; tax is unaffected since it is
// subtotal-based.
func (d *Draft) SetShipping(amount float64) (Totals, error) {
	if d.submitted {
		return d.totals, &errors.ErrDraftSubmitted{DraftID: d.ID}
	}
	if amount < 0 {
		return d.totals, &errors.ErrInvalidShipping{Amount: amount}
	}

	d.totals.Shipping = amount
	d.recompute()
	return d.totals, nil
}

// Submission carries the form fields that finalize a draft into an order.
type Submission struct {
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	Status          OrderStatus
	ShippingAddress ShippingAddress
	PaymentMethod   string
}

// Finalize turns the draft into a complete order bundle ready to hand off
// to a persistence collaborator. The draft must contain at least one item
// and, when it edits an existing order, the status change must be a valid
// transition from the stored status. A finalized draft rejects further
// mutation.
func (d *Draft) Finalize(sub Submission) (*Order, error) {
	if d.submitted {
		return nil, &errors.ErrDraftSubmitted{DraftID: d.ID}
	}
	if len(d.items) == 0 {
		return nil, &errors.ErrEmptyOrder{}
	}

	status := sub.Status
	if status == "" {
		status = OrderStatusPending
	}
	if !status.IsValid() {
		return nil, &errors.ErrValidation{Field: "status", Message: "unknown order status"}
	}
	if d.sourceOrderID != "" && !d.sourceStatus.CanTransitionTo(status) {
		return nil, &errors.ErrInvalidStateTransition{From: d.sourceStatus, To: status}
	}

	orderID := d.sourceOrderID
	if orderID == "" {
		orderID = uuid.New().String()
	}

	order := &Order{
		ID:              orderID,
		CustomerID:      sub.CustomerID,
		CustomerName:    sub.CustomerName,
		CustomerEmail:   sub.CustomerEmail,
		Date:            time.Now().UTC().Format("2006-01-02"),
		Status:          status,
		Items:           d.Items(),
		ShippingAddress: sub.ShippingAddress,
		PaymentMethod:   sub.PaymentMethod,
		Subtotal:        d.totals.Subtotal,
		Shipping:        d.totals.Shipping,
		Tax:             d.totals.Tax,
		Total:           d.totals.Total,
	}

	d.submitted = true
	return order, nil
}

// recompute folds the line items into the derived totals:
//
//	subtotal = Σ price * quantity
//	tax      = subtotal * TaxRate
//	total    = subtotal + tax + shipping
func (d *Draft) recompute() {
	subtotal := 0.0
	for _, item := range d.items {
		subtotal += item.Price * float64(item.Quantity)
	}
	d.totals.Subtotal = subtotal
	d.totals.Tax = subtotal * TaxRate
	d.totals.Total = subtotal + d.totals.Tax + d.totals.Shipping
}
