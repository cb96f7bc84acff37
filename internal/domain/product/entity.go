// internal/domain/product/entity.go
package product

import (
	"time"
)

// Product represents a product as returned by the remote product service.
// Prices are in minor units (cents).
type Product struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku,omitempty"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         int64     `json:"price"`
	OriginalPrice *int64    `json:"original_price,omitempty"` // Pre-discount price, absent when never discounted
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CategoryID    string    `json:"category_id,omitempty"`
	RegionID      string    `json:"region_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Images   []ProductImage   `json:"images,omitempty"`
	Variants []ProductVariant `json:"variants,omitempty"`
}

// ProductVariant represents a concrete purchasable configuration of a
// product. PriceAdjustment is added to the product's base price.
type ProductVariant struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	SKU             string `json:"sku,omitempty"`
	Color           string `json:"color,omitempty"`
	Size            string `json:"size,omitempty"`
	PriceAdjustment int64  `json:"price_adjustment"`
	StockQuantity   int    `json:"stock_quantity"`
	IsActive        bool   `json:"is_active"`
}

// ProductImage represents a product image
type ProductImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order"`
	IsPrimary bool   `json:"is_primary"`
}

// Category represents a product category from the remote catalog service
type Category struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug,omitempty"`
	ParentID  *string `json:"parent_id,omitempty"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
}

// Region represents a sales region used for catalog filtering
type Region struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	IsActive bool   `json:"is_active"`
}

// EffectivePrice returns the product's price with the variant's adjustment
// applied
func (p *Product) EffectivePrice(v *ProductVariant) int64 {
	if v == nil {
		return p.Price
	}
	return p.Price + v.PriceAdjustment
}

// IsInStock reports whether the product itself has stock. Variant stock is
// judged per variant, not here.
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}

// PrimaryImage returns the image flagged primary, falling back to the first
// image by sort order. Returns nil for a product without images.
func (p *Product) PrimaryImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}

	best := 0
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
		if p.Images[i].SortOrder < p.Images[best].SortOrder {
			best = i
		}
	}
	return &p.Images[best]
}
