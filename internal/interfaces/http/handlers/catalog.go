// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/product"
	"github.com/your-org/storefront-gateway/internal/infrastructure/redis"
)

// CatalogHandler exposes categories and sales regions. Both change rarely,
// so responses are cached in Redis for the configured TTL.
type CatalogHandler struct {
	clients *client.Clients
	cache   *redis.Client
	config  *config.Config
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(clients *client.Clients, cache *redis.Client, cfg *config.Config, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		clients: clients,
		cache:   cache,
		config:  cfg,
		logger:  logger,
	}
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	const cacheKey = "catalog:categories"

	var categories []product.Category
	if h.cache != nil {
		if err := h.cache.GetJSON(c.Request.Context(), cacheKey, &categories); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Categories retrieved successfully",
				"data":    categories,
			})
			return
		}
	}

	categories, err := h.clients.Catalog.Categories(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("catalog service call failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog service unavailable"})
		return
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(c.Request.Context(), cacheKey, categories, h.config.Cache.CatalogTTL); err != nil {
			h.logger.WithError(err).Warn("category cache write failed")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetRegions handles GET /regions
func (h *CatalogHandler) GetRegions(c *gin.Context) {
	const cacheKey = "catalog:regions"

	var regions []product.Region
	if h.cache != nil {
		if err := h.cache.GetJSON(c.Request.Context(), cacheKey, &regions); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Regions retrieved successfully",
				"data":    regions,
			})
			return
		}
	}

	regions, err := h.clients.Catalog.Regions(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("catalog service call failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog service unavailable"})
		return
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(c.Request.Context(), cacheKey, regions, h.config.Cache.CatalogTTL); err != nil {
			h.logger.WithError(err).Warn("region cache write failed")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Regions retrieved successfully",
		"data":    regions,
	})
}
