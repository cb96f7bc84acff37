// internal/client/cart.go
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/domain/cart"
)

// CartClient wraps the remote cart service. Every mutation returns the
// authoritative server-side cart; the gateway never assumes its local
// pre-check matches the server's final decision.
type CartClient struct {
	*Client
}

// NewCartClient creates a cart service client
func NewCartClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *CartClient {
	return &CartClient{Client: newClient(baseURL, timeout, logger)}
}

// AddItemRequest is the payload for adding a product to the cart
type AddItemRequest struct {
	ProductID        string  `json:"product_id"`
	ProductVariantID *string `json:"product_variant_id,omitempty"`
	Quantity         int     `json:"quantity"`
}

// UpdateQuantityRequest sets a line's quantity directly
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// FetchCart retrieves the caller's cart
func (c *CartClient) FetchCart(ctx context.Context, token string) (*cart.Cart, error) {
	var result cart.Cart
	if err := c.do(ctx, http.MethodGet, "/api/v1/cart", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddItem adds a product (optionally a specific variant) to the cart
func (c *CartClient) AddItem(ctx context.Context, token string, req *AddItemRequest) (*cart.Cart, error) {
	var result cart.Cart
	if err := c.do(ctx, http.MethodPost, "/api/v1/cart/items", nil, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateQuantity sets the quantity of an existing cart line
func (c *CartClient) UpdateQuantity(ctx context.Context, token, lineID string, quantity int) (*cart.Cart, error) {
	var result cart.Cart
	req := &UpdateQuantityRequest{Quantity: quantity}
	if err := c.do(ctx, http.MethodPut, "/api/v1/cart/items/"+lineID, nil, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveItem removes a cart line
func (c *CartClient) RemoveItem(ctx context.Context, token, lineID string) (*cart.Cart, error) {
	var result cart.Cart
	if err := c.do(ctx, http.MethodDelete, "/api/v1/cart/items/"+lineID, nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Clear empties the cart
func (c *CartClient) Clear(ctx context.Context, token string) (*cart.Cart, error) {
	var result cart.Cart
	if err := c.do(ctx, http.MethodDelete, "/api/v1/cart", nil, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
