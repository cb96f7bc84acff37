// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/order"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
)

// OrderHandler exposes orders together with their derived progress
// projection: a step index for the linear progress bar and a synthesized
// event timeline, since the backend keeps no order status history.
type OrderHandler struct {
	clients *client.Clients
	config  *config.Config
	logger  *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(clients *client.Clients, cfg *config.Config, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		clients: clients,
		config:  cfg,
		logger:  logger,
	}
}

// orderView is an order plus its derived progress projection
type orderView struct {
	Order       *order.Order          `json:"order"`
	CurrentStep int                   `json:"current_step"`
	Cancelled   bool                  `json:"cancelled"`
	Timeline    []order.TimelineEvent `json:"timeline"`
}

func newOrderView(o *order.Order) orderView {
	return orderView{
		Order:       o,
		CurrentStep: o.Status.StepIndex(),
		Cancelled:   o.Status == order.OrderStatusCancelled,
		Timeline:    order.SynthesizeTimeline(o),
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, err := h.clients.Order.ListMine(c.Request.Context(), token, page, limit)
	if err != nil {
		h.remoteError(c, err)
		return
	}

	views := make([]orderView, len(orders))
	for i := range orders {
		views[i] = newOrderView(&orders[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    views,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	o, err := h.clients.Order.GetByID(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    newOrderView(o),
	})
}

// GetOrderByNumber handles GET /orders/number/:number
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	o, err := h.clients.Order.GetByNumber(c.Request.Context(), token, c.Param("number"))
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    newOrderView(o),
	})
}

// CancelOrder handles PUT /orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a missing reason is fine
	_ = c.ShouldBindJSON(&req)

	o, err := h.clients.Order.Cancel(c.Request.Context(), token, c.Param("id"), req.Reason)
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"data":    newOrderView(o),
	})
}

// AdminUpdateStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) AdminUpdateStatus(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	var req client.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.clients.Order.UpdateStatus(c.Request.Context(), token, c.Param("id"), &req)
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    newOrderView(o),
	})
}

// AdminValidatePayment handles PUT /admin/orders/:id/payment/validate
func (h *OrderHandler) AdminValidatePayment(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	o, err := h.clients.Order.ValidatePayment(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment validated successfully",
		"data":    newOrderView(o),
	})
}

// AdminRefundPayment handles PUT /admin/orders/:id/payment/refund
func (h *OrderHandler) AdminRefundPayment(c *gin.Context) {
	token := middleware.GetTokenFromContext(c)

	o, err := h.clients.Order.RefundPayment(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		h.remoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment refunded successfully",
		"data":    newOrderView(o),
	})
}

func (h *OrderHandler) remoteError(c *gin.Context, err error) {
	if errors.Is(err, client.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	h.logger.WithError(err).Error("order service call failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "Order service unavailable"})
}
