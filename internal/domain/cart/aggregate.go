// internal/domain/cart/aggregate.go
package cart

import (
	"errors"
	"fmt"
)

// Typed refusals for cart mutations. These are pre-condition failures decided
// locally before any network call; the remote cart service remains the final
// authority and may still reject a mutation that passed here.
var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// TotalItemCount returns the sum of quantities across all lines. The remote
// service's own item count field is ignored on purpose: it has been observed
// null or stale, so the count is always recomputed from the line array.
func (c *Cart) TotalItemCount() int {
	if c == nil {
		return 0
	}

	total := 0
	for _, line := range c.Items {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the cart total in minor units. The server-reported
// TotalAmount is preferred when present; otherwise the total is recomputed
// as the sum of line subtotals.
func (c *Cart) Subtotal() int64 {
	if c == nil {
		return 0
	}

	if c.TotalAmount != nil {
		return *c.TotalAmount
	}

	var sum int64
	for _, line := range c.Items {
		sum += line.Subtotal
	}
	return sum
}

// ComputedSubtotal always recomputes from the line array, ignoring the
// server-reported total. Subtotal and ComputedSubtotal must agree whenever
// the server supplies a consistent total.
func (c *Cart) ComputedSubtotal() int64 {
	if c == nil {
		return 0
	}

	var sum int64
	for _, line := range c.Items {
		sum += line.Subtotal
	}
	return sum
}

// Totals recomputes the full totals view from the line array. Called after
// every snapshot apply so rendered totals are never stale.
func (c *Cart) Totals() CartTotals {
	if c == nil {
		return CartTotals{}
	}

	totals := CartTotals{ItemCount: len(c.Items)}
	for _, line := range c.Items {
		totals.TotalQuantity += line.Quantity
		totals.SubTotal += line.Subtotal
	}

	totals.TotalAmount = totals.SubTotal
	if c.TotalAmount != nil {
		totals.TotalAmount = *c.TotalAmount
	}
	return totals
}

// FindLine returns the line keyed by (productID, variantID), or nil. A line
// without a variant only matches a query without a variant: a query for the
// bare product must not pick up a variant-specific line, and vice versa.
func (c *Cart) FindLine(productID string, variantID *string) *CartLine {
	if c == nil {
		return nil
	}

	for i := range c.Items {
		line := &c.Items[i]
		if line.ProductID != productID {
			continue
		}
		if line.ProductVariantID == nil && variantID == nil {
			return line
		}
		if line.ProductVariantID != nil && variantID != nil &&
			*line.ProductVariantID == *variantID {
			return line
		}
	}
	return nil
}

// CheckAddQuantity decides whether requested units of a product can be added
// on top of an existing line (nil when the product is not in the cart yet)
// given the available stock. Non-positive requests are refused outright, not
// clamped.
func CheckAddQuantity(line *CartLine, requested, stock int) error {
	if requested <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, requested)
	}
	if stock <= 0 {
		return fmt.Errorf("%w: product is out of stock", ErrInsufficientStock)
	}

	existing := 0
	if line != nil {
		existing = line.Quantity
	}

	if existing+requested > stock {
		return fmt.Errorf("%w: %d in cart, %d requested, %d available",
			ErrInsufficientStock, existing, requested, stock)
	}
	return nil
}

// CanAddQuantity is the boolean form of CheckAddQuantity.
func CanAddQuantity(line *CartLine, requested, stock int) bool {
	return CheckAddQuantity(line, requested, stock) == nil
}
