// internal/client/catalog.go
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/domain/product"
)

// CatalogClient wraps the remote category/region services used for catalog
// navigation and regional filtering
type CatalogClient struct {
	*Client
}

// NewCatalogClient creates a catalog service client
func NewCatalogClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *CatalogClient {
	return &CatalogClient{Client: newClient(baseURL, timeout, logger)}
}

// Categories retrieves the category tree, flattened in display order
func (c *CatalogClient) Categories(ctx context.Context) ([]product.Category, error) {
	var result []product.Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, "", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Regions retrieves the active sales regions
func (c *CatalogClient) Regions(ctx context.Context) ([]product.Region, error) {
	var result []product.Region
	if err := c.do(ctx, http.MethodGet, "/api/v1/regions", nil, "", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
