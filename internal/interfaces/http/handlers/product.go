// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/product"
)

// ProductHandler exposes the product catalog, including single-variant
// projections (a product narrowed to one color with adjusted price, that
// variant's stock and a filtered image set).
type ProductHandler struct {
	clients *client.Clients
	matcher product.VariantImageMatcher
	config  *config.Config
	logger  *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(clients *client.Clients, cfg *config.Config, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		clients: clients,
		matcher: product.DefaultImageMatcher,
		config:  cfg,
		logger:  logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := client.ListParams{
		CategoryID: c.Query("category_id"),
		RegionID:   c.Query("region_id"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}

	products, err := h.clients.Product.List(c.Request.Context(), params)
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	prod, err := h.clients.Product.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    prod,
	})
}

// GetProductVariant handles GET /products/:id/variant?color=...
// It returns the product projected onto the first active variant matching
// the requested color. No matching variant is a normal negative, reported
// as 404 with an explicit message rather than an empty projection.
func (h *ProductHandler) GetProductVariant(c *gin.Context) {
	color := c.Query("color")
	if color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color query parameter is required"})
		return
	}

	prod, err := h.clients.Product.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.remoteError(c, err)
		return
	}

	variant := prod.SelectMatch(product.ColorIs(color))
	if variant == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active variant matches the requested color"})
		return
	}

	projected, err := product.ProjectForVariant(prod, variant, h.matcher)
	if err != nil {
		h.logger.WithError(err).Error("variant projection failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project variant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product variant retrieved successfully",
		"data":    projected,
	})
}

func (h *ProductHandler) remoteError(c *gin.Context, err error) {
	if errors.Is(err, client.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	h.logger.WithError(err).Error("product service call failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "Product service unavailable"})
}
