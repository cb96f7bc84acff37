// internal/domain/product/imagematcher.go
package product

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// VariantImageMatcher selects the subset of a product's images that depict a
// given variant. The backend does not supply a variant→image mapping, so the
// default implementation sniffs alt text and file names; replace it with an
// explicit mapping strategy if the backend ever provides one.
type VariantImageMatcher interface {
	Match(v *ProductVariant, images []ProductImage) []ProductImage
}

// DefaultImageMatcher is the matcher used when callers pass nil
var DefaultImageMatcher VariantImageMatcher = AltTextMatcher{}

// AltTextMatcher matches images whose alt text or URL contains the variant's
// color name, compared case-insensitively with diacritics folded. Known to
// be fragile; it exists because the catalog carries no structured link
// between variants and images.
type AltTextMatcher struct{}

func (AltTextMatcher) Match(v *ProductVariant, images []ProductImage) []ProductImage {
	needle := foldAccents(v.Color)
	if needle == "" {
		return nil
	}

	var matched []ProductImage
	for _, img := range images {
		if strings.Contains(foldAccents(img.AltText), needle) ||
			strings.Contains(foldAccents(img.URL), needle) {
			matched = append(matched, img)
		}
	}
	return matched
}

var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripMarks removes combining marks after NFD decomposition. Đ/đ is a
// standalone letter rather than d plus a mark, so it is mapped by hand.
func stripMarks(s string) string {
	stripped, _, err := transform.String(markStripper, s)
	if err != nil {
		stripped = s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 'đ':
			return 'd'
		case 'Đ':
			return 'D'
		}
		return r
	}, stripped)
}
