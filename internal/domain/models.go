package domain

// Product represents a catalog product. A product with variants is sellable
// only through one of its variants; base price and stock apply otherwise.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Variants    []Variant     `json:"variants,omitempty"`
}

// HasVariants reports whether the product must be sold through a variant.
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// FindVariant returns the variant with the given ID, or nil.
// Variant IDs are unique within their parent product only.
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// Variant is a priced, stocked sub-option of a product. Price is an
// absolute value, not a delta on the product's base price.
type Variant struct {
	ID    string      `json:"id"`
	Type  VariantType `json:"type"`
	Value string      `json:"value"`
	Price float64     `json:"price"`
	Stock int         `json:"stock"`
}

// OrderItem is one line of an order: a snapshot of product name, unit price
// and variant taken at add-time. LineID identifies the line itself, since
// (ProductID, VariantValue) is not unique across repeated additions.
type OrderItem struct {
	LineID       string  `json:"lineId"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	VariantType  string  `json:"variantType,omitempty"`
	VariantValue string  `json:"variantValue,omitempty"`
}

// ShippingAddress is the order's destination.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Order is a stored or finalized order, including its derived totals.
// Subtotal, Tax and Total are recomputed from Items and Shipping before the
// record leaves the composer; they are carried here so the bundle is
// self-contained and ready to serialize for a future persistence API.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId,omitempty"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	Date            string          `json:"date"`
	Status          OrderStatus     `json:"status"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Subtotal        float64         `json:"subtotal"`
	Shipping        float64         `json:"shipping"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
}

// Stat is one statistic tile on the dashboard.
type Stat struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

// RecentSale is one entry in the dashboard's recent sales list.
type RecentSale struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Amount string `json:"amount"`
	Avatar string `json:"avatar"`
}

// RevenueData is one month of the revenue-versus-goal overview chart.
type RevenueData struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Goal    float64 `json:"goal"`
}

// TopProduct is one slice of the top-selling products ranking.
type TopProduct struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
	Fill  string `json:"fill"`
}
