// internal/domain/order/entity.go
package order

import (
	"time"
)

// OrderStatus represents the order's position in its fulfillment lifecycle
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusShipping       OrderStatus = "SHIPPING"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// PaymentStatus represents the status of the order's payment record,
// independent of the order status itself
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Order represents an order as returned by the remote order service
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          string      `json:"user_id,omitempty"`
	Status          OrderStatus `json:"status"`
	Payment         *Payment    `json:"payment,omitempty"`
	Items           []OrderItem `json:"order_items"`
	SubtotalAmount  int64       `json:"subtotal_amount"`
	ShippingAmount  int64       `json:"shipping_amount"`
	DiscountAmount  int64       `json:"discount_amount"`
	TotalAmount     int64       `json:"total_amount"`
	Note            string      `json:"note,omitempty"`
	CancelledReason *string     `json:"cancelled_reason,omitempty"`
	ShippingAddress *Address    `json:"shipping_address,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a purchased line. Name, variant and
// price are frozen at order-creation time and must not be re-read from the
// live product catalog.
type OrderItem struct {
	ID               string  `json:"id"`
	ProductID        string  `json:"product_id"`
	ProductVariantID *string `json:"product_variant_id,omitempty"`
	Name             string  `json:"name"`
	VariantName      string  `json:"variant_name,omitempty"`
	Quantity         int     `json:"quantity"`
	Price            int64   `json:"price"`
	Subtotal         int64   `json:"subtotal"`
}

// Payment represents the order's payment record
type Payment struct {
	ID          string        `json:"id"`
	Method      string        `json:"method,omitempty"`
	Amount      int64         `json:"amount"`
	Status      PaymentStatus `json:"status"`
	PaymentDate *time.Time    `json:"payment_date,omitempty"`
}

// Address is the shipping address snapshot embedded in an order
type Address struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine  string `json:"address_line"`
	Ward         string `json:"ward,omitempty"`
	District     string `json:"district,omitempty"`
	Province     string `json:"province,omitempty"`
	RegionID     string `json:"region_id,omitempty"`
	IsDefault    bool   `json:"is_default,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// IsTerminal reports whether the order can make no further forward progress
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}

// CanBeCancelled reports whether cancellation is still reachable. CANCELLED
// is absorbing and DELIVERED is terminal, every other state may cancel.
func (o *Order) CanBeCancelled() bool {
	return !o.IsTerminal()
}

// HasCompletedPayment reports whether the order carries a completed payment
func (o *Order) HasCompletedPayment() bool {
	return o.Payment != nil && o.Payment.Status == PaymentStatusCompleted
}
