// internal/client/clients.go
package client

import (
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/config"
)

// Clients bundles one client per remote backend service
type Clients struct {
	Cart    *CartClient
	Order   *OrderClient
	Product *ProductClient
	Catalog *CatalogClient
	Auth    *AuthClient
}

// NewClients builds the full client set from config
func NewClients(cfg *config.Config, logger *logrus.Logger) *Clients {
	timeout := cfg.Services.Timeout
	return &Clients{
		Cart:    NewCartClient(cfg.Services.CartBaseURL, timeout, logger),
		Order:   NewOrderClient(cfg.Services.OrderBaseURL, timeout, logger),
		Product: NewProductClient(cfg.Services.ProductBaseURL, timeout, logger),
		Catalog: NewCatalogClient(cfg.Services.CatalogBaseURL, timeout, logger),
		Auth:    NewAuthClient(cfg.Services.AuthBaseURL, timeout, logger),
	}
}
