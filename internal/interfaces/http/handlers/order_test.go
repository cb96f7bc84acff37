package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/order"
)

func newOrderTestRouter(t *testing.T, handlerFn http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderSrv := httptest.NewServer(handlerFn)
	t.Cleanup(orderSrv.Close)

	logger := testLogger()
	clients := &client.Clients{
		Order: client.NewOrderClient(orderSrv.URL, 5*time.Second, logger),
	}
	handler := NewOrderHandler(clients, &config.Config{}, logger)

	router := gin.New()
	router.GET("/orders/:id", handler.GetOrder)
	return router
}

func TestGetOrderProjection(t *testing.T) {
	router := newOrderTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "Order retrieved successfully",
			"data": {
				"id": "O1",
				"order_number": "ORD-001",
				"status": "SHIPPING",
				"payment": {"id": "PAY1", "status": "COMPLETED", "amount": 450, "payment_date": "2024-01-01T00:10:00Z"},
				"created_at": "2024-01-01T00:00:00Z",
				"updated_at": "2024-01-01T02:00:00Z"
			}
		}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/O1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Order       *order.Order          `json:"order"`
			CurrentStep int                   `json:"current_step"`
			Cancelled   bool                  `json:"cancelled"`
			Timeline    []order.TimelineEvent `json:"timeline"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Data.CurrentStep)
	assert.False(t, resp.Data.Cancelled)

	// created + payment + three synthesized transitions
	require.Len(t, resp.Data.Timeline, 5)
	assert.Equal(t, order.EventStatusChange, resp.Data.Timeline[0].Type)
	assert.Equal(t, order.OrderStatusShipping, resp.Data.Timeline[0].ToStatus)
}

func TestGetOrderCancelledProjection(t *testing.T) {
	router := newOrderTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"message": "Order retrieved successfully",
			"data": {
				"id": "O2",
				"order_number": "ORD-002",
				"status": "CANCELLED",
				"cancelled_reason": "out of stock",
				"created_at": "2024-01-01T00:00:00Z",
				"updated_at": "2024-01-01T01:00:00Z"
			}
		}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/O2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			CurrentStep int                   `json:"current_step"`
			Cancelled   bool                  `json:"cancelled"`
			Timeline    []order.TimelineEvent `json:"timeline"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, order.CancelledStepIndex, resp.Data.CurrentStep)
	assert.True(t, resp.Data.Cancelled)
	require.Len(t, resp.Data.Timeline, 2)
	assert.Equal(t, order.EventCancelled, resp.Data.Timeline[0].Type)
	assert.Equal(t, "out of stock", resp.Data.Timeline[0].Detail)
}

func TestGetOrderNotFound(t *testing.T) {
	router := newOrderTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Order not found"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
