// internal/domain/product/filter.go
package product

import (
	"fmt"
	"strings"
)

// VariantPredicate decides whether a variant is the one the caller wants
type VariantPredicate func(v *ProductVariant) bool

// ColorIs builds a predicate matching variants by color name. Comparison is
// case-insensitive and diacritic-folded, so "đen", "Đen" and "den" all
// match a variant whose color is "Đen".
func ColorIs(name string) VariantPredicate {
	want := foldAccents(name)
	return func(v *ProductVariant) bool {
		return foldAccents(v.Color) == want
	}
}

// HasMatch reports whether any active variant satisfies the predicate.
// Inactive variants are never selectable, whatever the predicate says.
func (p *Product) HasMatch(pred VariantPredicate) bool {
	return p.SelectMatch(pred) != nil
}

// SelectMatch returns the first active variant satisfying the predicate, in
// the product's existing variant order, or nil when there is none. A nil
// result is a normal negative, not an error.
func (p *Product) SelectMatch(pred VariantPredicate) *ProductVariant {
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.IsActive && pred(v) {
			return v
		}
	}
	return nil
}

// ProjectForVariant returns a copy of the product narrowed to a single
// variant: price carries the variant's adjustment, stock is the variant's
// stock, the variant list collapses to that variant and images are filtered
// by the matcher. The input product is never mutated.
//
// Passing a variant that does not belong to the product is a contract
// violation and returns an error.
func ProjectForVariant(p *Product, v *ProductVariant, matcher VariantImageMatcher) (*Product, error) {
	if v.ProductID != p.ID {
		return nil, fmt.Errorf("variant %s does not belong to product %s", v.ID, p.ID)
	}
	if matcher == nil {
		matcher = DefaultImageMatcher
	}

	projected := *p
	projected.Price = p.EffectivePrice(v)
	projected.StockQuantity = v.StockQuantity
	projected.Variants = []ProductVariant{*v}

	images := matcher.Match(v, p.Images)
	if len(images) == 0 {
		// No heuristic match: keep the primary image so the projection
		// is still presentable
		if primary := p.PrimaryImage(); primary != nil {
			images = []ProductImage{*primary}
		}
	}
	projected.Images = images

	return &projected, nil
}

// foldAccents lowercases s and strips combining marks, normalizing
// Vietnamese diacritics for comparison purposes.
func foldAccents(s string) string {
	folded := stripMarks(s)
	return strings.ToLower(strings.TrimSpace(folded))
}
