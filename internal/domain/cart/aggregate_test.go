package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestTotalItemCount(t *testing.T) {
	tests := []struct {
		name     string
		cart     *Cart
		expected int
	}{
		{
			name:     "nil cart counts zero",
			cart:     nil,
			expected: 0,
		},
		{
			name:     "empty cart counts zero",
			cart:     &Cart{Items: []CartLine{}},
			expected: 0,
		},
		{
			name: "quantities are summed across lines",
			cart: &Cart{Items: []CartLine{
				{Quantity: 2},
				{Quantity: 3},
			}},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cart.TotalItemCount())
		})
	}
}

func TestSubtotal(t *testing.T) {
	t.Run("falls back to sum of line subtotals when server total absent", func(t *testing.T) {
		c := &Cart{Items: []CartLine{
			{Quantity: 2, UnitPrice: 100, Subtotal: 200},
			{Quantity: 1, UnitPrice: 250, Subtotal: 250},
		}}

		assert.Equal(t, int64(450), c.Subtotal())
		assert.Equal(t, int64(450), c.ComputedSubtotal())
	})

	t.Run("prefers server total when present", func(t *testing.T) {
		c := &Cart{
			Items:       []CartLine{{Quantity: 1, UnitPrice: 100, Subtotal: 100}},
			TotalAmount: int64Ptr(100),
		}

		assert.Equal(t, int64(100), c.Subtotal())
		// Server total and recomputation must agree for consistent data
		assert.Equal(t, c.ComputedSubtotal(), c.Subtotal())
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		c := &Cart{Items: []CartLine{
			{Quantity: 3, UnitPrice: 50, Subtotal: 150},
		}}

		first := c.Subtotal()
		second := c.Subtotal()
		assert.Equal(t, first, second)
	})

	t.Run("nil cart yields zero", func(t *testing.T) {
		var c *Cart
		assert.Equal(t, int64(0), c.Subtotal())
	})
}

func TestTotals(t *testing.T) {
	c := &Cart{Items: []CartLine{
		{Quantity: 2, UnitPrice: 100, Subtotal: 200},
		{Quantity: 1, UnitPrice: 250, Subtotal: 250},
	}}

	totals := c.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(450), totals.SubTotal)
	assert.Equal(t, int64(450), totals.TotalAmount)
}

func TestFindLine(t *testing.T) {
	c := &Cart{Items: []CartLine{
		{ID: "L1", ProductID: "P1"},
		{ID: "L2", ProductID: "P1", ProductVariantID: strPtr("V1")},
		{ID: "L3", ProductID: "P2", ProductVariantID: strPtr("V2")},
	}}

	t.Run("variantless query only matches the variantless line", func(t *testing.T) {
		line := c.FindLine("P1", nil)
		require.NotNil(t, line)
		assert.Equal(t, "L1", line.ID)
	})

	t.Run("variant query only matches the variant line", func(t *testing.T) {
		line := c.FindLine("P1", strPtr("V1"))
		require.NotNil(t, line)
		assert.Equal(t, "L2", line.ID)
	})

	t.Run("variant query does not match a different variant", func(t *testing.T) {
		assert.Nil(t, c.FindLine("P2", strPtr("V1")))
	})

	t.Run("variantless query does not match a variant-only product", func(t *testing.T) {
		assert.Nil(t, c.FindLine("P2", nil))
	})

	t.Run("nil cart finds nothing", func(t *testing.T) {
		var empty *Cart
		assert.Nil(t, empty.FindLine("P1", nil))
	})
}

func TestCheckAddQuantity(t *testing.T) {
	tests := []struct {
		name      string
		existing  *CartLine
		requested int
		stock     int
		wantErr   error
	}{
		{
			name:      "fits within stock",
			existing:  &CartLine{Quantity: 8},
			requested: 2,
			stock:     10,
			wantErr:   nil,
		},
		{
			name:      "would exceed stock",
			existing:  &CartLine{Quantity: 8},
			requested: 3,
			stock:     10,
			wantErr:   ErrInsufficientStock,
		},
		{
			name:      "no existing line",
			existing:  nil,
			requested: 5,
			stock:     5,
			wantErr:   nil,
		},
		{
			name:      "zero quantity is refused, not clamped",
			existing:  nil,
			requested: 0,
			stock:     10,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "negative quantity is refused",
			existing:  nil,
			requested: -1,
			stock:     10,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "out of stock",
			existing:  nil,
			requested: 1,
			stock:     0,
			wantErr:   ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAddQuantity(tt.existing, tt.requested, tt.stock)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, CanAddQuantity(tt.existing, tt.requested, tt.stock))
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, CanAddQuantity(tt.existing, tt.requested, tt.stock))
			}
		})
	}
}

func TestCartScenario(t *testing.T) {
	// Two lines: product A without variant, product B with variant V1
	c := &Cart{Items: []CartLine{
		{ID: "L1", ProductID: "A", Quantity: 2, UnitPrice: 100, Subtotal: 200},
		{ID: "L2", ProductID: "B", ProductVariantID: strPtr("V1"), Quantity: 1, UnitPrice: 250, Subtotal: 250},
	}}

	assert.Equal(t, 3, c.TotalItemCount())
	assert.Equal(t, int64(450), c.Subtotal())
}
