// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/domain/product"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
)

// CartHandler exposes the cart with totals recomputed from the line array.
// Mutations run a local stock pre-check, then delegate to the remote cart
// service and apply the returned cart to the snapshot store; totals are
// recomputed on every apply so they are never rendered stale.
type CartHandler struct {
	clients *client.Clients
	store   *cart.Store
	config  *config.Config
	logger  *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(clients *client.Clients, store *cart.Store, cfg *config.Config, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		clients: clients,
		store:   store,
		config:  cfg,
		logger:  logger,
	}
}

// cartView is the cart plus totals recomputed client-side
type cartView struct {
	Items  []cart.CartLine `json:"items"`
	Totals cart.CartTotals `json:"totals"`
}

func newCartView(c *cart.Cart) cartView {
	items := c.Items
	if items == nil {
		items = []cart.CartLine{}
	}
	return cartView{Items: items, Totals: c.Totals()}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	token := middleware.GetTokenFromContext(c)

	seq := h.store.Begin(sessionID)
	fetched, err := h.clients.Cart.FetchCart(c.Request.Context(), token)
	if err != nil {
		// Fall back to the last applied snapshot rather than failing the page
		h.logger.WithError(err).Warn("cart fetch failed, serving last snapshot")
		snapshot := h.store.Get(c.Request.Context(), sessionID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart retrieved from snapshot",
			"data":    newCartView(snapshot),
		})
		return
	}

	if !h.store.Apply(c.Request.Context(), sessionID, seq, fetched) {
		// A newer request finished first; render its result instead
		fetched = h.store.Get(c.Request.Context(), sessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    newCartView(fetched),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	token := middleware.GetTokenFromContext(c)

	var req client.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Local pre-condition check before any mutation call. The remote cart
	// service is still the final authority and may reject what passed here.
	prod, err := h.clients.Product.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.remoteError(c, err)
		return
	}

	stock, refusal := h.availableStock(prod, req.ProductVariantID)
	if refusal != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": refusal})
		return
	}

	snapshot := h.store.Get(c.Request.Context(), sessionID)
	existing := snapshot.FindLine(req.ProductID, req.ProductVariantID)
	if err := cart.CheckAddQuantity(existing, req.Quantity, stock); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	seq := h.store.Begin(sessionID)
	updated, err := h.clients.Cart.AddItem(c.Request.Context(), token, &req)
	if err != nil {
		h.remoteError(c, err)
		return
	}
	if !h.store.Apply(c.Request.Context(), sessionID, seq, updated) {
		updated = h.store.Get(c.Request.Context(), sessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    newCartView(updated),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := h.sessionID(c)
	token := middleware.GetTokenFromContext(c)
	lineID := c.Param("id")

	var req client.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Quantity <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": cart.ErrInvalidQuantity.Error(),
		})
		return
	}

	seq := h.store.Begin(sessionID)
	updated, err := h.clients.Cart.UpdateQuantity(c.Request.Context(), token, lineID, req.Quantity)
	if err != nil {
		h.remoteError(c, err)
		return
	}
	if !h.store.Apply(c.Request.Context(), sessionID, seq, updated) {
		updated = h.store.Get(c.Request.Context(), sessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    newCartView(updated),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	token := middleware.GetTokenFromContext(c)
	lineID := c.Param("id")

	seq := h.store.Begin(sessionID)
	updated, err := h.clients.Cart.RemoveItem(c.Request.Context(), token, lineID)
	if err != nil {
		h.remoteError(c, err)
		return
	}
	if !h.store.Apply(c.Request.Context(), sessionID, seq, updated) {
		updated = h.store.Get(c.Request.Context(), sessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    newCartView(updated),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	token := middleware.GetTokenFromContext(c)

	if _, err := h.clients.Cart.Clear(c.Request.Context(), token); err != nil {
		h.remoteError(c, err)
		return
	}
	h.store.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    newCartView(&cart.Cart{}),
	})
}

// GetCartCount handles GET /cart/count. The count is always recomputed from
// the line array, never read from a server-side counter.
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := h.sessionID(c)
	token := middleware.GetTokenFromContext(c)

	seq := h.store.Begin(sessionID)
	fetched, err := h.clients.Cart.FetchCart(c.Request.Context(), token)
	if err != nil {
		fetched = h.store.Get(c.Request.Context(), sessionID)
	} else if !h.store.Apply(c.Request.Context(), sessionID, seq, fetched) {
		fetched = h.store.Get(c.Request.Context(), sessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": fetched.TotalItemCount(),
		},
	})
}

// availableStock resolves the stock the pre-check runs against: the
// variant's stock when a variant is requested, the product's otherwise.
// Returns a refusal message for inactive products/variants.
func (h *CartHandler) availableStock(prod *product.Product, variantID *string) (int, string) {
	if !prod.IsActive {
		return 0, "Product is no longer available"
	}
	if variantID == nil {
		return prod.StockQuantity, ""
	}

	for i := range prod.Variants {
		v := &prod.Variants[i]
		if v.ID != *variantID {
			continue
		}
		if !v.IsActive {
			return 0, "Product variant is no longer available"
		}
		return v.StockQuantity, ""
	}
	return 0, "Product variant not found"
}

func (h *CartHandler) remoteError(c *gin.Context, err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	h.logger.WithError(err).Error("cart service call failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "Cart service unavailable"})
}

// sessionID keys the snapshot store: the user ID for authenticated
// requests, a session cookie otherwise
func (h *CartHandler) sessionID(c *gin.Context) string {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return "user:" + userID
	}

	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		// Set session cookie (24 hours)
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}
	return "session:" + sessionID
}
