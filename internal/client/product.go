// internal/client/product.go
package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/domain/product"
)

// ProductClient wraps the remote product service
type ProductClient struct {
	*Client
}

// NewProductClient creates a product service client
func NewProductClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *ProductClient {
	return &ProductClient{Client: newClient(baseURL, timeout, logger)}
}

// ListParams are the catalog browsing filters forwarded to the product
// service
type ListParams struct {
	CategoryID string
	RegionID   string
	Search     string
	Page       int
	Limit      int
}

// GetByID retrieves one product with its variants and images
func (c *ProductClient) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var result product.Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/"+id, nil, "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List retrieves products matching the given filters
func (c *ProductClient) List(ctx context.Context, params ListParams) ([]product.Product, error) {
	query := url.Values{}
	if params.CategoryID != "" {
		query.Set("category_id", params.CategoryID)
	}
	if params.RegionID != "" {
		query.Set("region_id", params.RegionID)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var result []product.Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/products", query, "", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
