// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// CartLine represents one purchasable selection in the remote cart: a product,
// an optional variant and a quantity. Prices are in minor units (cents).
type CartLine struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	ProductVariantID *string   `json:"product_variant_id,omitempty"`
	ProductName      string    `json:"product_name,omitempty"`
	VariantName      string    `json:"variant_name,omitempty"`
	Quantity         int       `json:"quantity"`
	UnitPrice        int64     `json:"unit_price"`
	Subtotal         int64     `json:"subtotal"`
	AddedAt          time.Time `json:"added_at"`
}

// Cart is the cart as reported by the remote cart service. Item order is the
// server's insertion order. TotalAmount is optional in the wire format;
// consumers must go through Subtotal, which recomputes from the line array
// when it is absent.
type Cart struct {
	ID          string     `json:"id,omitempty"`
	Items       []CartLine `json:"items"`
	TotalAmount *int64     `json:"total_amount,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CartTotals represents totals recomputed client-side from the line array
type CartTotals struct {
	ItemCount     int   `json:"item_count"`     // Number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`
	TotalAmount   int64 `json:"total_amount"`
}
