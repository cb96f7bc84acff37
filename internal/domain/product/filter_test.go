package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct() *Product {
	return &Product{
		ID:            "P1",
		Name:          "Áo thun",
		Price:         20000,
		StockQuantity: 50,
		IsActive:      true,
		Images: []ProductImage{
			{ID: "I1", URL: "https://cdn.example.com/ao-thun.jpg", IsPrimary: true, SortOrder: 0},
			{ID: "I2", URL: "https://cdn.example.com/ao-thun-den.jpg", AltText: "Áo thun màu đen", SortOrder: 1},
			{ID: "I3", URL: "https://cdn.example.com/ao-thun-trang.jpg", AltText: "Áo thun màu trắng", SortOrder: 2},
		},
		Variants: []ProductVariant{
			{ID: "V1", ProductID: "P1", Color: "Đen", PriceAdjustment: 0, StockQuantity: 10, IsActive: true},
			{ID: "V2", ProductID: "P1", Color: "Trắng", PriceAdjustment: 5000, StockQuantity: 3, IsActive: true},
			{ID: "V3", ProductID: "P1", Color: "Xanh", PriceAdjustment: 2000, StockQuantity: 7, IsActive: false},
		},
	}
}

func TestColorIs(t *testing.T) {
	tests := []struct {
		name  string
		query string
		color string
		match bool
	}{
		{"exact match", "Đen", "Đen", true},
		{"accent folded", "den", "Đen", true},
		{"lowercase accented query", "đen", "Den", true},
		{"tonal marks folded", "trang", "Trắng", true},
		{"case insensitive", "XANH", "Xanh", true},
		{"whitespace trimmed", "  đen  ", "Đen", true},
		{"different color", "đỏ", "Đen", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := ColorIs(tt.query)
			assert.Equal(t, tt.match, pred(&ProductVariant{Color: tt.color}))
		})
	}
}

func TestSelectMatch(t *testing.T) {
	p := testProduct()

	t.Run("finds active variant by color", func(t *testing.T) {
		v := p.SelectMatch(ColorIs("den"))
		require.NotNil(t, v)
		assert.Equal(t, "V1", v.ID)
	})

	t.Run("skips inactive variants", func(t *testing.T) {
		assert.Nil(t, p.SelectMatch(ColorIs("xanh")))
		assert.False(t, p.HasMatch(ColorIs("xanh")))
	})

	t.Run("no match is nil, not an error", func(t *testing.T) {
		assert.Nil(t, p.SelectMatch(ColorIs("vàng")))
	})

	t.Run("first active match wins", func(t *testing.T) {
		always := func(v *ProductVariant) bool { return true }
		v := p.SelectMatch(always)
		require.NotNil(t, v)
		assert.Equal(t, "V1", v.ID)
	})
}

func TestProjectForVariant(t *testing.T) {
	t.Run("narrows price, stock, variants and images", func(t *testing.T) {
		p := testProduct()
		v := p.SelectMatch(ColorIs("trắng"))
		require.NotNil(t, v)

		projected, err := ProjectForVariant(p, v, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(25000), projected.Price)
		assert.Equal(t, 3, projected.StockQuantity)
		require.Len(t, projected.Variants, 1)
		assert.Equal(t, "V2", projected.Variants[0].ID)
		require.Len(t, projected.Images, 1)
		assert.Equal(t, "I3", projected.Images[0].ID)
	})

	t.Run("does not mutate the input product", func(t *testing.T) {
		p := testProduct()
		v := p.SelectMatch(ColorIs("trắng"))
		require.NotNil(t, v)

		_, err := ProjectForVariant(p, v, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), p.Price)
		assert.Equal(t, 50, p.StockQuantity)
		assert.Len(t, p.Variants, 3)
		assert.Len(t, p.Images, 3)
	})

	t.Run("falls back to the primary image when nothing matches", func(t *testing.T) {
		p := testProduct()
		v := &ProductVariant{ID: "V4", ProductID: "P1", Color: "Hồng", StockQuantity: 1, IsActive: true}

		projected, err := ProjectForVariant(p, v, nil)
		require.NoError(t, err)

		require.Len(t, projected.Images, 1)
		assert.Equal(t, "I1", projected.Images[0].ID)
	})

	t.Run("rejects a variant from another product", func(t *testing.T) {
		p := testProduct()
		foreign := &ProductVariant{ID: "VX", ProductID: "P2", Color: "Đen"}

		_, err := ProjectForVariant(p, foreign, nil)
		assert.Error(t, err)
	})
}

func TestAltTextMatcher(t *testing.T) {
	p := testProduct()
	matcher := AltTextMatcher{}

	t.Run("matches alt text with folded diacritics", func(t *testing.T) {
		matched := matcher.Match(&p.Variants[0], p.Images)
		require.Len(t, matched, 1)
		assert.Equal(t, "I2", matched[0].ID)
	})

	t.Run("matches by URL when alt text is empty", func(t *testing.T) {
		images := []ProductImage{
			{ID: "I1", URL: "https://cdn.example.com/shirt-den-front.jpg"},
			{ID: "I2", URL: "https://cdn.example.com/shirt-trang-front.jpg"},
		}
		matched := matcher.Match(&ProductVariant{Color: "Đen"}, images)
		require.Len(t, matched, 1)
		assert.Equal(t, "I1", matched[0].ID)
	})

	t.Run("colorless variant matches nothing", func(t *testing.T) {
		assert.Nil(t, matcher.Match(&ProductVariant{}, p.Images))
	})
}

func TestPrimaryImage(t *testing.T) {
	t.Run("prefers the flagged image", func(t *testing.T) {
		p := testProduct()
		img := p.PrimaryImage()
		require.NotNil(t, img)
		assert.Equal(t, "I1", img.ID)
	})

	t.Run("falls back to lowest sort order", func(t *testing.T) {
		p := &Product{Images: []ProductImage{
			{ID: "I1", SortOrder: 2},
			{ID: "I2", SortOrder: 1},
		}}
		img := p.PrimaryImage()
		require.NotNil(t, img)
		assert.Equal(t, "I2", img.ID)
	})

	t.Run("nil without images", func(t *testing.T) {
		p := &Product{}
		assert.Nil(t, p.PrimaryImage())
	})
}

func TestEffectivePrice(t *testing.T) {
	p := testProduct()

	assert.Equal(t, int64(20000), p.EffectivePrice(nil))
	assert.Equal(t, int64(25000), p.EffectivePrice(&p.Variants[1]))
}
