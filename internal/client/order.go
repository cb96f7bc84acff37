// internal/client/order.go
package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/domain/order"
)

// OrderClient wraps the remote order service
type OrderClient struct {
	*Client
}

// NewOrderClient creates an order service client
func NewOrderClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *OrderClient {
	return &OrderClient{Client: newClient(baseURL, timeout, logger)}
}

// UpdateStatusRequest is the admin payload for moving an order to a new status
type UpdateStatusRequest struct {
	Status order.OrderStatus `json:"status"`
	Note   string            `json:"note,omitempty"`
}

// GetByID retrieves one order
func (c *OrderClient) GetByID(ctx context.Context, token, id string) (*order.Order, error) {
	var result order.Order
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders/"+id, nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByNumber retrieves one order by its public order number
func (c *OrderClient) GetByNumber(ctx context.Context, token, number string) (*order.Order, error) {
	var result order.Order
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders/number/"+number, nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMine retrieves the caller's orders, newest first
func (c *OrderClient) ListMine(ctx context.Context, token string, page, limit int) ([]order.Order, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result []order.Order
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders", query, token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus moves an order to a new status (admin only)
func (c *OrderClient) UpdateStatus(ctx context.Context, token, id string, req *UpdateStatusRequest) (*order.Order, error) {
	var result order.Order
	if err := c.do(ctx, http.MethodPut, "/api/v1/orders/"+id+"/status", nil, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Cancel cancels an order, optionally recording a reason
func (c *OrderClient) Cancel(ctx context.Context, token, id, reason string) (*order.Order, error) {
	var result order.Order
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/orders/"+id+"/cancel", nil, token, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidatePayment confirms an order's payment (admin only). The result shape
// is an updated order, re-projected by the caller.
func (c *OrderClient) ValidatePayment(ctx context.Context, token, id string) (*order.Order, error) {
	var result order.Order
	if err := c.do(ctx, http.MethodPut, "/api/v1/orders/"+id+"/payment/validate", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RefundPayment refunds an order's payment (admin only)
func (c *OrderClient) RefundPayment(ctx context.Context, token, id string) (*order.Order, error) {
	var result order.Order
	if err := c.do(ctx, http.MethodPut, "/api/v1/orders/"+id+"/payment/refund", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
